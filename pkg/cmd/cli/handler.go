package cli

import "github.com/rmg-x/consolectl/config"

type Handler struct {
	Console   *ConsoleHandler
	Migration *MigrateHandler
}

func NewHandler(c *config.Config) *Handler {
	return &Handler{
		Console:   newConsoleHandler(c),
		Migration: newMigrateHandler(c),
	}
}
