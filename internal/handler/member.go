package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

func (h *Handler) CreateMember(c echo.Context) error {
	var req model.CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	member, err := h.catalogSvc.CreateMember(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) GetMember(c echo.Context) error {
	member, err := h.catalogSvc.GetMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) ListMembers(c echo.Context) error {
	includeDeleted, err := boolQueryParam(c, "includeDeleted")
	if err != nil {
		return err
	}
	members, err := h.catalogSvc.ListMembers(c.Request().Context(), includeDeleted)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) UpdateMember(c echo.Context) error {
	var req model.UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	member, err := h.catalogSvc.UpdateMember(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) DeleteMember(c echo.Context) error {
	entry, err := h.trashSvc.SoftDelete(c.Request().Context(), model.TableMembers, c.Param("id"), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}
