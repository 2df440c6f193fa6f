package memory

import (
	"sync"
	"time"

	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
)

type consoleStore struct {
	store  map[int32]model.Console
	nextID int32
	sync.RWMutex
}

func newConsoleStore() *consoleStore {
	return &consoleStore{
		store:  make(map[int32]model.Console),
		nextID: 1,
	}
}

func (s *consoleStore) FetchAll() (models map[int32]model.Console, err error) {
	s.RLock()
	defer s.RUnlock()
	models = make(map[int32]model.Console, len(s.store))

	for id, m := range s.store {
		models[id] = m
	}

	return models, nil
}

func (s *consoleStore) FindByID(id int32) (*model.Console, error) {
	s.RLock()
	defer s.RUnlock()
	if m, ok := s.store[id]; ok {
		return &m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *consoleStore) FindByName(name string) (*model.Console, error) {
	s.RLock()
	defer s.RUnlock()

	for _, m := range s.store {
		if m.Name == name {
			return &m, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *consoleStore) Create(m *model.Console) error {
	s.Lock()
	defer s.Unlock()

	m.ID = s.getNextID()
	m.CreatedAt = time.Now().Round(time.Second).UTC()
	m.UpdatedAt = time.Now().Round(time.Second).UTC()

	s.store[m.ID] = *m

	return nil
}

func (s *consoleStore) Update(m *model.Console) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.store[m.ID]; !ok {
		return storage.ErrNotFound
	}

	m.UpdatedAt = time.Now().Round(time.Second).UTC()
	s.store[m.ID] = *m

	return nil
}

func (s *consoleStore) Delete(id int32) error {
	s.Lock()
	defer s.Unlock()

	_, ok := s.store[id]
	if !ok {
		return storage.ErrNotFound
	}

	delete(s.store, id)

	return nil
}

func (s *consoleStore) getNextID() int32 {
	id := s.nextID
	s.nextID++
	return id
}
