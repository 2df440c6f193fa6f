package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/rmg-x/consolectl/pkg/model"
)

type sampleStore struct {
	store  map[int32]model.Sample
	nextID int32
	sync.RWMutex
}

func newSampleStore() *sampleStore {
	return &sampleStore{
		store:  make(map[int32]model.Sample),
		nextID: 1,
	}
}

func (s *sampleStore) FetchAll() (models map[int32]model.Sample, err error) {
	s.RLock()
	defer s.RUnlock()
	models = make(map[int32]model.Sample, len(s.store))

	for id, m := range s.store {
		models[id] = m
	}

	return models, nil
}

func (s *sampleStore) FetchByConsoleID(consoleID int32) ([]model.Sample, error) {
	s.RLock()
	defer s.RUnlock()

	models := make([]model.Sample, 0)
	for _, m := range s.store {
		if m.ConsoleID == consoleID {
			models = append(models, m)
		}
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})

	return models, nil
}

func (s *sampleStore) Create(m *model.Sample) error {
	s.Lock()
	defer s.Unlock()

	m.ID = s.getNextID()
	m.CreatedAt = time.Now().Round(time.Second).UTC()
	m.UpdatedAt = time.Now().Round(time.Second).UTC()

	s.store[m.ID] = *m

	return nil
}

func (s *sampleStore) getNextID() int32 {
	id := s.nextID
	s.nextID++
	return id
}
