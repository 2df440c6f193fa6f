package model

import "time"

// Console is a model of the persistency layer
type Console struct {
	ID        int32
	Name      string
	Host      string
	Port      int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
