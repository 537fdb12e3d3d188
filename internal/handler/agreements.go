package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreateAgreement registers an agreement for a user.
func (h *Handler) CreateAgreement(c echo.Context) error {
	var in model.InsertAgreement
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.UserID == "" || in.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId and type required"})
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "endDate precedes startDate"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Store.CreateAgreement(ctx, in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create agreement failed"})
	}
	return c.JSON(http.StatusCreated, a)
}

// ListAgreements returns the caller's agreements.  Admins may inspect
// another user's with ?userId=.
func (h *Handler) ListAgreements(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if q := c.QueryParam("userId"); q != "" && isAdmin(c) {
		uid = q
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	agrs, err := h.Store.GetUserAgreements(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch agreements failed"})
	}
	return c.JSON(http.StatusOK, agrs)
}

// ListExpiringAgreements returns active agreements ending within ?days
// (default 30), past-due ones included.
func (h *Handler) ListExpiringAgreements(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	agrs, err := h.Store.GetExpiringAgreements(ctx, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch agreements failed"})
	}
	return c.JSON(http.StatusOK, agrs)
}

func (h *Handler) UpdateAgreement(c echo.Context) error {
	var upd model.AgreementUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, found, err := h.Store.UpdateAgreement(ctx, c.Param("id"), upd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update agreement failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "agreement not found"})
	}
	return c.JSON(http.StatusOK, a)
}

// RequestRenewal flags an agreement for renewal, then moves its status
// to pending_renewal with a follow-up update.  The two writes are not
// atomic; a reader in between sees the flag set with the old status,
// which the dashboard tolerates.
func (h *Handler) RequestRenewal(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	found, err := h.Store.RequestAgreementRenewal(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "request renewal failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "agreement not found"})
	}

	status := model.AgreementStatusPendingRenewal
	a, _, err := h.Store.UpdateAgreement(ctx, id, model.AgreementUpdate{Status: &status})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update agreement failed"})
	}

	h.logActivity(c, &uid, model.ActivityRenewal,
		fmt.Sprintf("requested renewal of agreement %s", id),
		map[string]any{"agreementId": id})

	return c.JSON(http.StatusOK, a)
}

// SweepExpiredAgreements settles overdue active agreements.  Exposed for
// an external scheduler; the server never runs it on its own.
func (h *Handler) SweepExpiredAgreements(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	n, err := h.Store.MarkExpiredAgreements(ctx, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "sweep failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"expired": n})
}
