package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// ListUsers returns every account for the admin user table.
func (h *Handler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Store.GetAllUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch users failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUser applies an admin partial update (role change, activation
// toggle, quota edit).
func (h *Handler) UpdateUser(c echo.Context) error {
	var upd model.UserUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if upd.Role != nil && *upd.Role != model.RoleAdmin && *upd.Role != model.RoleUser {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, found, err := h.Store.UpdateUser(ctx, c.Param("id"), upd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update user failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, user)
}

// ListUserActivities returns one user's audit trail, newest first.
func (h *Handler) ListUserActivities(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acts, err := h.Store.GetUserActivities(ctx, c.Param("id"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch activities failed"})
	}
	return c.JSON(http.StatusOK, acts)
}
