package memory

import "github.com/rmg-x/consolectl/pkg/storage"

// store contains all memory-based sub-stores for managing the persistent models
type store struct {
	consoles *consoleStore
	samples  *sampleStore
	events   *eventStore
}

// NewStore creates a new memory-based Storage interface
func NewStore() storage.Interface {
	return &store{
		consoles: newConsoleStore(),
		samples:  newSampleStore(),
		events:   newEventStore(),
	}
}

// Consoles returns a sub-store for managing the Console model
func (s *store) Consoles() storage.ConsoleStore {
	return s.consoles
}

// Samples returns a sub-store for managing the Sample model
func (s *store) Samples() storage.SampleStore {
	return s.samples
}

// Events returns a sub-store for managing the Event model
func (s *store) Events() storage.EventStore {
	return s.events
}
