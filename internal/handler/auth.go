package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/utils"
)

// ----- DTOs -----

// loginReq carries the identity claims forwarded by the trusted identity
// provider together with the shared provider secret.  The secret is
// verified against a bcrypt hash from configuration, so a leaked
// environment dump does not expose the plain value.
type loginReq struct {
	UserID          string  `json:"userId"`
	Email           *string `json:"email"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
	ProviderSecret  string  `json:"providerSecret"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type loginResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Login verifies the provider secret, bootstraps the user record via
// upsert, records a login activity and issues an access token.  The role
// embedded in the token comes from the stored record, never from the
// request.
func (h *Handler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "userId required"})
	}
	if !utils.VerifySecret(h.Cfg.ProviderSecretHash, req.ProviderSecret) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid provider secret"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Store.UpsertUser(ctx, model.UpsertUser{
		ID:              req.UserID,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "upsert user failed"})
	}
	if !user.IsActive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account disabled"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	h.logActivity(c, &user.ID, model.ActivityLogin,
		fmt.Sprintf("%s logged in", displayName(user)), nil)

	return c.JSON(http.StatusOK, loginResp{
		User:   user,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me returns the authenticated user's own record.
func (h *Handler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, found, err := h.Store.GetUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch user failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, user)
}

func displayName(u model.User) string {
	parts := []string{}
	if u.FirstName != nil && *u.FirstName != "" {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil && *u.LastName != "" {
		parts = append(parts, *u.LastName)
	}
	if len(parts) == 0 {
		return u.ID
	}
	return strings.Join(parts, " ")
}
