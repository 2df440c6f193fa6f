package api

import (
	"github.com/labstack/echo"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/rmg-x/consolectl/pkg/ccapi"
	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
)

// Handler contains all properties to serve the API
type Handler struct {
	nc    *nats.Conn
	store storage.Interface

	// dial builds the protocol client for a console, replaceable in tests.
	dial func(m *model.Console) *ccapi.Client
}

// NewHandler create a new API handler
func NewHandler(nc *nats.Conn, store storage.Interface) *Handler {
	return &Handler{
		nc:    nc,
		store: store,
		dial: func(m *model.Console) *ccapi.Client {
			return ccapi.New(m.Host, ccapi.WithPort(m.Port))
		},
	}
}

// RegisterRoutes attaches the handlers to the echo web server
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	log.Debug("Register API routes")
	api := e.Group("/api/v1")
	api.GET("/consoles", h.handleFetchConsoles)
	api.POST("/consoles", h.handleCreateConsole)
	api.GET("/consoles/:id", h.handleGetConsoleByID)
	api.DELETE("/consoles/:id", h.handleDeleteConsole)

	api.GET("/consoles/:id/samples", h.handleFetchSamples)

	api.POST("/consoles/:id/notify", h.handleNotify)
	api.POST("/consoles/:id/buzzer", h.handleBuzzer)

	api.GET("/events", h.handleFetchEvents)

	api.Any("/realtime-events", h.realtimeEventsHandler())
}
