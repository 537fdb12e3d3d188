package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

type createRequestReq struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type reviewRequestReq struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// CreateRequest files a request for the authenticated user.  Whatever
// the client claims, the stored status is pending.
func (h *Handler) CreateRequest(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Type == "" || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type and title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := h.Store.CreateRequest(ctx, model.InsertRequest{
		UserID:      uid,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
	}

	h.logActivity(c, &uid, model.ActivityRequest,
		fmt.Sprintf("filed request %q", r.Title),
		map[string]any{"requestId": r.ID, "requestType": r.Type})

	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) ListRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reqs, err := h.Store.GetAllRequests(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch requests failed"})
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *Handler) ListPendingRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reqs, err := h.Store.GetPendingRequests(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch requests failed"})
	}
	return c.JSON(http.StatusOK, reqs)
}

// ReviewRequest settles or reprioritizes a request.  A status change
// stamps the reviewing admin and the review instant together.
func (h *Handler) ReviewRequest(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reviewRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != nil {
		switch *req.Status {
		case model.RequestStatusApproved, model.RequestStatusRejected:
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
	}

	upd := model.RequestUpdate{Status: req.Status, Priority: req.Priority}
	if req.Status != nil {
		now := time.Now()
		upd.ReviewedBy = &uid
		upd.ReviewedAt = &now
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, found, err := h.Store.UpdateRequest(ctx, c.Param("id"), upd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update request failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
	}

	if req.Status != nil {
		h.logActivity(c, &uid, model.ActivityReview,
			fmt.Sprintf("request %q %s", r.Title, r.Status),
			map[string]any{"requestId": r.ID})
	}
	return c.JSON(http.StatusOK, r)
}
