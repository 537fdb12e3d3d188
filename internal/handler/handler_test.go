package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rakhadavin/dukcapil-admin/internal/config"
	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store/memory"
	"github.com/rakhadavin/dukcapil-admin/internal/utils"
)

const testProviderSecret = "provider-secret"

func newTestHandler(t *testing.T) (*Handler, *memory.Store) {
	t.Helper()
	hash, err := utils.HashSecret(testProviderSecret, 4)
	require.NoError(t, err)

	st := memory.New()
	cfg := config.Config{
		Env:                "test",
		JWTSecret:          "test-secret",
		AccessTTLMin:       15,
		ProviderSecretHash: hash,
	}
	return New(cfg, st), st
}

func doJSON(h echo.HandlerFunc, method, target, body string, setup func(echo.Context)) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	return rec, h(c)
}

func asUser(id, role string) func(echo.Context) {
	return func(c echo.Context) {
		c.Set("user_id", id)
		c.Set("role", role)
	}
}

func TestLoginBootstrapsUser(t *testing.T) {
	h, st := newTestHandler(t)

	body := `{"userId":"user-9","email":"siti@example.com","firstName":"Siti","providerSecret":"` + testProviderSecret + `"}`
	rec, err := doJSON(h.Login, http.MethodPost, "/api/auth/login", body, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User   model.User `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "user-9", resp.User.ID)
	require.Equal(t, model.RoleUser, resp.User.Role)
	require.Equal(t, 100, resp.User.Quota)
	require.NotEmpty(t, resp.Access.Token)

	u, found, err := st.GetUser(t.Context(), "user-9")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "siti@example.com", *u.Email)

	acts, err := st.GetUserActivities(t.Context(), "user-9", 0)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	require.Equal(t, model.ActivityLogin, acts[0].Type)
}

func TestLoginRejectsBadSecret(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, err := doJSON(h.Login, http.MethodPost, "/api/auth/login",
		`{"userId":"user-9","providerSecret":"nope"}`, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	h, st := newTestHandler(t)

	inactive := false
	_, err := st.UpsertUser(t.Context(), model.UpsertUser{ID: "user-9", IsActive: &inactive})
	require.NoError(t, err)

	rec, err := doJSON(h.Login, http.MethodPost, "/api/auth/login",
		`{"userId":"user-9","providerSecret":"`+testProviderSecret+`"}`, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateRequestAlwaysPending(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"type":"extension","title":"Perpanjangan Akses","status":"approved"}`
	rec, err := doJSON(h.CreateRequest, http.MethodPost, "/api/requests", body, asUser("user-1", model.RoleUser))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code)

	var r model.Request
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	require.Equal(t, model.RequestStatusPending, r.Status)
	require.Equal(t, "user-1", r.UserID)
}

func TestReviewRequestStampsReviewer(t *testing.T) {
	h, st := newTestHandler(t)

	r, err := st.CreateRequest(t.Context(), model.InsertRequest{
		UserID: "user-1", Type: "access", Title: "Akses Database",
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/requests/"+r.ID, strings.NewReader(`{"status":"approved"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(r.ID)
	asUser("admin-1", model.RoleAdmin)(c)

	require.NoError(t, h.ReviewRequest(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Request
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, model.RequestStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedBy)
	require.Equal(t, "admin-1", *got.ReviewedBy)
	require.NotNil(t, got.ReviewedAt)
}

func TestReviewRequestRejectsBadStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	rec, err := doJSON(h.ReviewRequest, http.MethodPatch, "/api/requests/x",
		`{"status":"done"}`, asUser("admin-1", model.RoleAdmin))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/ghost/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	asUser("user-1", model.RoleUser)(c)

	require.NoError(t, h.MarkNotificationRead(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	h, st := newTestHandler(t)
	st.Seed()

	rec, err := doJSON(h.Stats, http.MethodGet, "/api/stats", "", asUser("admin-123", model.RoleAdmin))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 3, stats["totalUsers"])
	require.Equal(t, 2, stats["pendingRequests"])
}
