package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo"

	"github.com/rmg-x/consolectl/pkg/api/resource"
	"github.com/rmg-x/consolectl/pkg/storage"
)

func (h *Handler) handleFetchSamples(c echo.Context) error {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, err)
	}

	_, err = h.store.Consoles().FindByID(int32(id))
	if err != nil && err == storage.ErrNotFound {
		return c.JSON(http.StatusNotFound, err)
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}

	m, err := h.store.Samples().FetchByConsoleID(int32(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, resource.NewSampleList(m))
}
