package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

func (h *Handler) CreateStaff(c echo.Context) error {
	var req model.CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	st, err := h.catalogSvc.CreateStaff(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, st)
}

func (h *Handler) GetStaff(c echo.Context) error {
	st, err := h.catalogSvc.GetStaff(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) ListStaff(c echo.Context) error {
	includeDeleted, err := boolQueryParam(c, "includeDeleted")
	if err != nil {
		return err
	}
	staff, err := h.catalogSvc.ListStaff(c.Request().Context(), includeDeleted)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *Handler) UpdateStaff(c echo.Context) error {
	var req model.UpdateStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	st, err := h.catalogSvc.UpdateStaff(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) DeleteStaff(c echo.Context) error {
	entry, err := h.trashSvc.SoftDelete(c.Request().Context(), model.TableStaff, c.Param("id"), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}
