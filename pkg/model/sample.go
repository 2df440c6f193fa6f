package model

import "time"

// Sample is a model of the persistency layer
type Sample struct {
	ID        int32
	ConsoleID int32
	Cell      int32
	RSX       int32
	Timestamp time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
