package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) ActiveLoansReport(c echo.Context) error {
	report, err := h.librarySvc.ActiveLoansReport(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) OverdueReport(c echo.Context) error {
	report, err := h.librarySvc.OverdueReport(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *Handler) PopularBooks(c echo.Context) error {
	limit, err := limitParam(c, 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.librarySvc.PopularBooks(c.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) MemberActivity(c echo.Context) error {
	limit, err := limitParam(c, 10)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	members, err := h.librarySvc.MemberActivity(c.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) LibraryStatistics(c echo.Context) error {
	stats, err := h.librarySvc.LibraryStatistics(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) OverdueSweep(c echo.Context) error {
	count, err := h.librarySvc.OverdueSweep(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"notices": count})
}

func (h *Handler) ReminderSweep(c echo.Context) error {
	count, err := h.librarySvc.ReminderSweep(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reminders": count})
}

func limitParam(c echo.Context, def int) (int, error) {
	limitStr := c.QueryParam("limit")
	if limitStr == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, errors.New("limit is invalid")
	}
	return limit, nil
}
