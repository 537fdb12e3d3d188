package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// ListActivities returns the newest audit records across all users.
func (h *Handler) ListActivities(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acts, err := h.Store.GetActivities(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch activities failed"})
	}
	return c.JSON(http.StatusOK, acts)
}
