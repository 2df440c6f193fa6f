package model

import "time"

type Event struct {
	ID        int32
	ConsoleID int32
	Topic     string
	Timestamp time.Time
	Details   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
