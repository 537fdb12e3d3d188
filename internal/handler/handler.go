// Package handler defines the HTTP handlers of the admin API.
package handler

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/config"
	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/queue"
	queue_publisher "github.com/rakhadavin/dukcapil-admin/internal/service"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

// Handler bundles the dependencies shared by every endpoint.
type Handler struct {
	Cfg   config.Config
	Store store.Store
}

func New(cfg config.Config, st store.Store) *Handler {
	if st == nil {
		panic("nil store passed to handler.New")
	}
	return &Handler{Cfg: cfg, Store: st}
}

// getUserID extracts the authenticated user id stored by the JWT
// middleware.
func getUserID(c echo.Context) (string, error) {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("invalid user_id in context")
}

func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == model.RoleAdmin
}

// logActivity records an audit entry and fans it out to the broker.
// Failures are logged and swallowed; auditing never fails the request
// that triggered it.
func (h *Handler) logActivity(c echo.Context, userID *string, typ, desc string, meta map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	act, err := h.Store.CreateActivity(ctx, model.InsertActivity{
		UserID:      userID,
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		c.Logger().Warnf("log activity failed: %v", err)
		return
	}

	ev := queue.ActivityLoggedEvent{
		ActivityID:  act.ID,
		Type:        act.Type,
		Description: act.Description,
		Metadata:    act.Metadata,
		OccurredAt:  act.CreatedAt.UTC().Format(time.RFC3339),
	}
	if act.UserID != nil {
		ev.UserID = *act.UserID
	}
	go func() {
		_ = queue_publisher.PublishActivityLogged(context.Background(), ev)
	}()
}
