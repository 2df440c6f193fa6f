package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	log "github.com/sirupsen/logrus"

	"github.com/rmg-x/consolectl/pkg/ccapi"
	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
)

type notifyRequest struct {
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

type buzzerRequest struct {
	Type string `json:"type"`
}

type proxyReply struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
}

// handleNotify forwards an on-screen notification to the console.
func (h *Handler) handleNotify(c echo.Context) error {
	m, errRes := h.lookupConsole(c)
	if m == nil {
		return errRes
	}

	req := &notifyRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, err)
	}

	icon := ccapi.IconInfo
	if req.Icon != "" {
		parsed, err := ccapi.ParseNotifyIcon(req.Icon)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		icon = parsed
	}

	requestID := uuid.NewString()
	log.WithFields(log.Fields{
		"request_id": requestID,
		"console":    m.Name,
	}).Info("Forwarding notification to console")

	client := h.dial(m)
	if err := client.Notify(c.Request().Context(), icon, req.Message); err != nil {
		return h.proxyError(c, requestID, err)
	}

	return c.JSON(http.StatusOK, &proxyReply{RequestID: requestID, Status: "ok"})
}

// handleBuzzer rings the console buzzer.
func (h *Handler) handleBuzzer(c echo.Context) error {
	m, errRes := h.lookupConsole(c)
	if m == nil {
		return errRes
	}

	req := &buzzerRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, err)
	}

	buzzer := ccapi.BuzzerSingle
	if req.Type != "" {
		parsed, err := ccapi.ParseBuzzerType(req.Type)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		buzzer = parsed
	}

	requestID := uuid.NewString()
	log.WithFields(log.Fields{
		"request_id": requestID,
		"console":    m.Name,
	}).Info("Forwarding buzzer request to console")

	client := h.dial(m)
	if err := client.RingBuzzer(c.Request().Context(), buzzer); err != nil {
		return h.proxyError(c, requestID, err)
	}

	return c.JSON(http.StatusOK, &proxyReply{RequestID: requestID, Status: "ok"})
}

func (h *Handler) lookupConsole(c echo.Context) (*model.Console, error) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return nil, c.JSON(http.StatusBadRequest, err)
	}

	m, err := h.store.Consoles().FindByID(int32(id))
	if err != nil && err == storage.ErrNotFound {
		return nil, c.JSON(http.StatusNotFound, err)
	} else if err != nil {
		return nil, c.JSON(http.StatusInternalServerError, err)
	}

	return m, nil
}

func (h *Handler) proxyError(c echo.Context, requestID string, err error) error {
	status := http.StatusBadGateway
	if ccapi.IsStatusError(err) {
		status = http.StatusUnprocessableEntity
	}

	return c.JSON(status, map[string]string{
		"requestId": requestID,
		"error":     err.Error(),
	})
}
