package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListTrash(c echo.Context) error {
	entries, err := h.trashSvc.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) RestoreTrash(c echo.Context) error {
	if err := h.trashSvc.Restore(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) PurgeTrash(c echo.Context) error {
	if err := h.trashSvc.Purge(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
