package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/errs"
	"github.com/perpusid/perpustakaan-service/internal/model"
	md "github.com/perpusid/perpustakaan-service/pkg/middleware"
	"github.com/perpusid/perpustakaan-service/pkg/validate"
)

// ActorHeader names who performs a delete; it ends up on the trash
// entry.
const ActorHeader = "X-Actor"

type Handler struct {
	catalogSvc CatalogService
	loanSvc    LoanService
	trashSvc   TrashService
	reportSvc  ReportService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, loanSvc LoanService, trashSvc TrashService, reportSvc ReportService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		loanSvc:    loanSvc,
		trashSvc:   trashSvc,
		reportSvc:  reportSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:id", h.GetBook)
	api.PATCH("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/members", h.ListMembers)
	api.POST("/members", h.CreateMember)
	api.GET("/members/:id", h.GetMember)
	api.PATCH("/members/:id", h.UpdateMember)
	api.DELETE("/members/:id", h.DeleteMember)

	api.GET("/staff", h.ListStaff)
	api.POST("/staff", h.CreateStaff)
	api.GET("/staff/:id", h.GetStaff)
	api.PATCH("/staff/:id", h.UpdateStaff)
	api.DELETE("/staff/:id", h.DeleteStaff)

	api.GET("/loans", h.ListLoans)
	api.POST("/loans", h.CreateLoan)
	api.POST("/loans/refresh-overdue", h.RefreshOverdue)
	api.GET("/loans/:id", h.GetLoan)
	api.POST("/loans/:id/return", h.ReturnLoan)
	api.DELETE("/loans/:id", h.DeleteLoan)

	api.GET("/trash", h.ListTrash)
	api.POST("/trash/:id/restore", h.RestoreTrash)
	api.DELETE("/trash/:id", h.PurgeTrash)

	api.GET("/reports/popular-books", h.PopularBooks)
	api.GET("/reports/active-members", h.ActiveMembers)
	api.GET("/reports/monthly-trend", h.MonthlyTrend)
	api.GET("/reports/overdue", h.OverdueReport)
	api.GET("/reports/stats", h.StatsReport)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the sentinel taxonomy onto status codes. Anything
// unrecognized is a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrMemberInactive):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrAlreadyDeleted),
		errors.Is(err, errs.ErrLoanActive):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrGone):
		return echo.NewHTTPError(http.StatusGone, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// dateQueryParam reads a YYYY-MM-DD query parameter, defaulting to the
// server's current day. The engines themselves never read the clock;
// this boundary is the only place a default "today" exists.
func dateQueryParam(c echo.Context, name string) (model.Date, error) {
	param := c.QueryParam(name)
	if param == "" {
		return model.Today(), nil
	}
	d, err := model.ParseDate(param)
	if err != nil {
		return model.Date{}, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return d, nil
}

func boolQueryParam(c echo.Context, name string) (bool, error) {
	param := c.QueryParam(name)
	if param == "" {
		return false, nil
	}
	switch param {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
}

func actor(c echo.Context) string {
	if a := c.Request().Header.Get(ActorHeader); a != "" {
		return a
	}
	return "-"
}
