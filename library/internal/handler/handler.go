package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhaven/library-service/library/internal/errs"
	md "github.com/bookhaven/library-service/pkg/middleware"
	"github.com/bookhaven/library-service/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySrv LibraryService, log *zap.Logger) *Handler {
	h := &Handler{
		librarySvc: librarySrv,
		log:        log,
	}
	return h
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

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.PATCH("/books/:bookUid", h.UpdateBook)
	api.DELETE("/books/:bookUid", h.DeleteBook)
	api.GET("/books/:bookUid/reservations", h.GetBookReservations)

	api.POST("/members", h.CreateMember)
	api.GET("/members", h.ListMembers)
	api.GET("/members/:memberUid", h.GetMember)
	api.PATCH("/members/:memberUid", h.UpdateMember)
	api.DELETE("/members/:memberUid", h.DeleteMember)
	api.GET("/members/:memberUid/can-borrow", h.CanBorrow)
	api.GET("/members/:memberUid/reservations", h.GetMemberReservations)

	api.POST("/loans", h.CreateLoan)
	api.GET("/loans/active", h.GetActiveLoans)
	api.GET("/loans/overdue", h.GetOverdueLoans)
	api.POST("/loans/:loanUid/return", h.ReturnBook)
	api.POST("/loans/:loanUid/extend", h.ExtendLoan)

	api.POST("/reservations", h.CreateReservation)
	api.POST("/reservations/:reservationUid/cancel", h.CancelReservation)

	api.GET("/reports/active-loans", h.ActiveLoansReport)
	api.GET("/reports/overdue", h.OverdueReport)
	api.GET("/reports/popular-books", h.PopularBooks)
	api.GET("/reports/member-activity", h.MemberActivity)
	api.GET("/reports/statistics", h.LibraryStatistics)

	api.POST("/jobs/overdue-sweep", h.OverdueSweep)
	api.POST("/jobs/reminder-sweep", h.ReminderSweep)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain sentinels to HTTP status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrIneligible),
		errors.Is(err, errs.ErrBookUnavailable),
		errors.Is(err, errs.ErrBookAvailable),
		errors.Is(err, errs.ErrDuplicateReservation),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrTerminalState),
		errors.Is(err, errs.ErrHasOtherOverdue),
		errors.Is(err, errs.ErrHasActiveLoans),
		errors.Is(err, errs.ErrHasReservations):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
