package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/perpusid/perpustakaan-service/internal/model"
)

// reportRange reads from/to query parameters. Defaults mirror the
// report screens: current month start through the reference day.
func reportRange(c echo.Context) (model.DateRange, error) {
	to, err := dateQueryParam(c, "to")
	if err != nil {
		return model.DateRange{}, err
	}
	from := model.NewDate(to.Year(), to.Month(), 1)
	if param := c.QueryParam("from"); param != "" {
		if from, err = model.ParseDate(param); err != nil {
			return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if to.Before(from) {
		return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, "from is after to")
	}
	return model.DateRange{From: from, To: to}, nil
}

func (h *Handler) PopularBooks(c echo.Context) error {
	rng, err := reportRange(c)
	if err != nil {
		return err
	}
	items, err := h.reportSvc.PopularBooks(c.Request().Context(), rng)
	if err != nil {
		return httpError(err)
	}
	if c.QueryParam("format") == "csv" {
		records := [][]string{{"Title", "Author", "Category", "Loans"}}
		for _, it := range items {
			records = append(records, []string{it.Title, it.Author, it.Category, strconv.Itoa(it.LoanCount)})
		}
		return writeCSV(c, "popular-books.csv", records)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ActiveMembers(c echo.Context) error {
	rng, err := reportRange(c)
	if err != nil {
		return err
	}
	items, err := h.reportSvc.ActiveMembers(c.Request().Context(), rng)
	if err != nil {
		return httpError(err)
	}
	if c.QueryParam("format") == "csv" {
		records := [][]string{{"Name", "MemberNumber", "Email", "CompletedLoans", "OutstandingLoans"}}
		for _, it := range items {
			records = append(records, []string{
				it.FullName, it.MemberNumber, it.Email,
				strconv.Itoa(it.CompletedLoans), strconv.Itoa(it.OutstandingLoans),
			})
		}
		return writeCSV(c, "active-members.csv", records)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MonthlyTrend(c echo.Context) error {
	reference, err := dateQueryParam(c, "date")
	if err != nil {
		return err
	}
	items, err := h.reportSvc.MonthlyTrend(c.Request().Context(), reference)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) OverdueReport(c echo.Context) error {
	reference, err := dateQueryParam(c, "date")
	if err != nil {
		return err
	}
	items, err := h.reportSvc.Overdue(c.Request().Context(), reference)
	if err != nil {
		return httpError(err)
	}
	if c.QueryParam("format") == "csv" {
		records := [][]string{{"MemberName", "BookTitle", "BorrowDate", "PlannedReturnDate", "DaysLate", "Fine"}}
		for _, it := range items {
			records = append(records, []string{
				it.MemberName, it.BookTitle,
				it.BorrowDate.String(), it.PlannedReturnDate.String(),
				strconv.Itoa(it.DaysLate), strconv.FormatInt(it.Fine, 10),
			})
		}
		return writeCSV(c, "overdue.csv", records)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) StatsReport(c echo.Context) error {
	reference, err := dateQueryParam(c, "date")
	if err != nil {
		return err
	}
	stats, err := h.reportSvc.Stats(c.Request().Context(), reference)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func writeCSV(c echo.Context, filename string, records [][]string) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	return csv.NewWriter(c.Response()).WriteAll(records)
}
