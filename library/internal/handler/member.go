package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/library-service/library/internal/model"
)

func (h *Handler) CreateMember(c echo.Context) error {
	var req model.CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	member, err := h.librarySvc.CreateMember(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) GetMember(c echo.Context) error {
	memberUid := c.Param("memberUid")
	detail, err := h.librarySvc.GetMember(c.Request().Context(), memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListMembers(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	status := model.MemberStatus(c.QueryParam("status"))
	members, err := h.librarySvc.ListMembers(c.Request().Context(), status, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) UpdateMember(c echo.Context) error {
	memberUid := c.Param("memberUid")
	var req model.UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	member, err := h.librarySvc.UpdateMember(c.Request().Context(), memberUid, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) DeleteMember(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if err := h.librarySvc.DeleteMember(c.Request().Context(), memberUid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CanBorrow(c echo.Context) error {
	memberUid := c.Param("memberUid")
	ok, reason, err := h.librarySvc.CanBorrow(c.Request().Context(), memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"canBorrow": ok, "reason": reason})
}

func (h *Handler) GetMemberReservations(c echo.Context) error {
	memberUid := c.Param("memberUid")
	reservations, err := h.librarySvc.GetMemberReservations(c.Request().Context(), memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}
