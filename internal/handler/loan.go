package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	loan, err := h.loanSvc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) GetLoan(c echo.Context) error {
	loan, err := h.loanSvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	includeDeleted, err := boolQueryParam(c, "includeDeleted")
	if err != nil {
		return err
	}
	f := model.LoanFilter{
		MemberID:       c.QueryParam("memberId"),
		BookID:         c.QueryParam("bookId"),
		Status:         model.LoanStatus(c.QueryParam("status")),
		IncludeDeleted: includeDeleted,
	}
	loans, err := h.loanSvc.List(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	var req model.ReturnLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	loan, err := h.loanSvc.Return(c.Request().Context(), c.Param("id"), req.Date)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

// RefreshOverdue re-derives overdue state against the supplied
// reference date. Callers simulate time by passing date explicitly.
func (h *Handler) RefreshOverdue(c echo.Context) error {
	reference, err := dateQueryParam(c, "date")
	if err != nil {
		return err
	}

	updated, err := h.loanSvc.RefreshOverdue(c.Request().Context(), reference)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": updated, "referenceDate": reference})
}

func (h *Handler) DeleteLoan(c echo.Context) error {
	entry, err := h.trashSvc.SoftDelete(c.Request().Context(), model.TableLoans, c.Param("id"), actor(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entry)
}
