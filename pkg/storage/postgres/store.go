package postgres

import (
	"github.com/jmoiron/sqlx"
	// PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/rmg-x/consolectl/pkg/storage"
)

// store contains all PostgreSQL based sub-stores for managing the models
type store struct {
	consoles *consoleStore
	samples  *sampleStore
	events   *eventStore
}

// NewStore creates a new PostgreSQL based Storage interface
func NewStore(db *sqlx.DB) storage.Interface {
	return &store{
		consoles: newConsoleStore(db),
		samples:  newSampleStore(db),
		events:   newEventStore(db),
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
