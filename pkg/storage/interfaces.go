package storage

import "github.com/rmg-x/consolectl/pkg/model"

// Interface is implemented by the storage
type Interface interface {
	Consoles() ConsoleStore
	Samples() SampleStore
	Events() EventStore
}

// ConsoleStore is responsible for managing the Console model
type ConsoleStore interface {
	FetchAll() (map[int32]model.Console, error)
	FindByID(id int32) (*model.Console, error)
	FindByName(name string) (*model.Console, error)
	Create(m *model.Console) error
	Update(m *model.Console) error
	Delete(id int32) error
}

// SampleStore is responsible for managing the Sample model
type SampleStore interface {
	FetchAll() (map[int32]model.Sample, error)
	FetchByConsoleID(consoleID int32) ([]model.Sample, error)
	Create(m *model.Sample) error
}

// EventStore is responsible for managing the Event model
type EventStore interface {
	FetchAll() (map[int32]model.Event, error)
	FindByID(id int32) (*model.Event, error)
	Create(m *model.Event) error
}
