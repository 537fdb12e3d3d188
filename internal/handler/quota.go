package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// quotaResp decorates a counter with its computed remaining amount so
// clients never see a stale stored value.
type quotaResp struct {
	model.QuotaUsage
	RemainingQuota int `json:"remainingQuota"`
}

func toQuotaResp(list []model.QuotaUsage) []quotaResp {
	out := make([]quotaResp, 0, len(list))
	for _, q := range list {
		out = append(out, quotaResp{QuotaUsage: q, RemainingQuota: q.Remaining()})
	}
	return out
}

// CreateQuotaUsage establishes a counter for a (user, quotaType) pair.
func (h *Handler) CreateQuotaUsage(c echo.Context) error {
	var in model.InsertQuotaUsage
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.UserID == "" || in.QuotaType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId and quotaType required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	q, err := h.Store.CreateQuotaUsage(ctx, in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create quota failed"})
	}
	return c.JSON(http.StatusCreated, quotaResp{QuotaUsage: q, RemainingQuota: q.Remaining()})
}

// ListQuotaUsage returns the caller's counters; admins may inspect
// another user's with ?userId=.
func (h *Handler) ListQuotaUsage(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if q := c.QueryParam("userId"); q != "" && isAdmin(c) {
		uid = q
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	quotas, err := h.Store.GetUserQuotaUsage(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch quota failed"})
	}
	return c.JSON(http.StatusOK, toQuotaResp(quotas))
}

type incrementQuotaReq struct {
	UserID    string `json:"userId"`
	QuotaType string `json:"quotaType"`
	Amount    int    `json:"amount"`
}

// IncrementQuotaUsage adds an amount (possibly negative, for
// corrections) to a counter.  Regular users touch only their own
// counters; admins may name another user.
func (h *Handler) IncrementQuotaUsage(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req incrementQuotaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.QuotaType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quotaType required"})
	}
	target := uid
	if req.UserID != "" && isAdmin(c) {
		target = req.UserID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	found, err := h.Store.UpdateQuotaUsage(ctx, target, req.QuotaType, req.Amount)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update quota failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "quota counter not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "updated"})
}

type resetQuotaReq struct {
	QuotaType string `json:"quotaType"`
}

// ResetQuota zeroes one counter and pushes its reset date a month out.
func (h *Handler) ResetQuota(c echo.Context) error {
	var req resetQuotaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.QuotaType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "quotaType required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	found, err := h.Store.ResetUserQuota(ctx, c.Param("userId"), req.QuotaType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset quota failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "quota counter not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "reset"})
}
