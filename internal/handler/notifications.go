package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// SendNotification creates a broadcast or targeted notification.
func (h *Handler) SendNotification(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in model.InsertNotification
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.Title == "" || in.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and message required"})
	}
	if in.TargetType != "" && in.TargetType != model.TargetAll && in.TargetID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "targetId required for targeted notifications"})
	}
	in.SentBy = &uid

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Store.CreateNotification(ctx, in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create notification failed"})
	}

	h.logActivity(c, &uid, model.ActivityNotification,
		fmt.Sprintf("sent notification %q to %s", n.Title, n.TargetType),
		map[string]any{"notificationId": n.ID})

	return c.JSON(http.StatusCreated, n)
}

// ListMyNotifications returns broadcasts plus notifications addressed to
// the caller, newest first.
func (h *Handler) ListMyNotifications(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	notifs, err := h.Store.GetUserNotifications(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch notifications failed"})
	}
	return c.JSON(http.StatusOK, notifs)
}

// MarkNotificationRead flips the shared read flag on one notification.
func (h *Handler) MarkNotificationRead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	found, err := h.Store.MarkNotificationRead(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "mark read failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "notification not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "read"})
}
