package resource

import (
	"fmt"
	"sort"
	"time"

	"github.com/rmg-x/consolectl/pkg/model"
)

type ConsoleResource struct {
	ID        int32      `json:"id"`
	Name      string     `json:"name"`
	Host      string     `json:"host"`
	Port      int        `json:"port"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ConsoleListResource struct {
	Members []*ConsoleResource `json:"members"`
}

func NewConsole(m *model.Console) (out *ConsoleResource) {
	out = &ConsoleResource{
		ID:    m.ID,
		Name:  m.Name,
		Host:  m.Host,
		Port:  m.Port,
		Notes: m.Notes,
	}

	if !m.CreatedAt.IsZero() {
		out.CreatedAt = &time.Time{}
		*out.CreatedAt = m.CreatedAt.Round(time.Second)
	}
	if !m.UpdatedAt.IsZero() {
		out.UpdatedAt = &time.Time{}
		*out.UpdatedAt = m.UpdatedAt.Round(time.Second)
	}

	return // out
}

func NewConsoleList(m map[int32]model.Console) (out *ConsoleListResource) {
	out = &ConsoleListResource{
		Members: make([]*ConsoleResource, 0),
	}

	for _, elem := range m {
		out.Members = append(out.Members, NewConsole(&elem))
	}

	// Default sort by ID
	sort.Slice(out.Members, func(i, j int) bool {
		return out.Members[i].ID < out.Members[j].ID
	})

	return // out
}

func ValidateConsole(r *ConsoleResource) (m *model.Console, err error) {
	if r.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if r.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if r.Port < 0 || r.Port > 65535 {
		return nil, fmt.Errorf("port is out of range")
	}

	m = &model.Console{
		Name:  r.Name,
		Host:  r.Host,
		Port:  r.Port,
		Notes: r.Notes,
	}

	return m, nil
}
