package resource

import (
	"time"

	"github.com/rmg-x/consolectl/pkg/model"
)

type SampleResource struct {
	ID        int32     `json:"id"`
	ConsoleID int32     `json:"consoleId"`
	Cell      int32     `json:"cell"`
	RSX       int32     `json:"rsx"`
	Timestamp time.Time `json:"timestamp"`
}

type SampleListResource struct {
	Members []*SampleResource `json:"members"`
}

func NewSample(m *model.Sample) (out *SampleResource) {
	out = &SampleResource{
		ID:        m.ID,
		ConsoleID: m.ConsoleID,
		Cell:      m.Cell,
		RSX:       m.RSX,
		Timestamp: m.Timestamp,
	}

	return // out
}

func NewSampleList(m []model.Sample) (out *SampleListResource) {
	out = &SampleListResource{
		Members: make([]*SampleResource, 0),
	}

	for _, elem := range m {
		elem := elem
		out.Members = append(out.Members, NewSample(&elem))
	}

	return // out
}
