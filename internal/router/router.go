// Package router wires the HTTP surface: the public auth endpoint, the
// authenticated user routes and the admin-only management routes.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/rakhadavin/dukcapil-admin/internal/config"
	"github.com/rakhadavin/dukcapil-admin/internal/handler"
	"github.com/rakhadavin/dukcapil-admin/internal/middleware"
	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// Register wires every route on the Echo instance.  Everything under
// /api requires a valid access token; the admin subgroup additionally
// requires the admin role.  GET-heavy routes sit behind the Redis
// response cache, and the whole /api group behind the token bucket.
func Register(e *echo.Echo, h *handler.Handler, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.POST("/api/auth/login", h.Login)

	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Routes available to every authenticated user.
	api.GET("/auth/user", h.Me)
	api.POST("/documents", h.CreateDocument)
	api.GET("/documents", h.ListDocuments, cache)
	api.GET("/documents/:id", h.GetDocument)
	api.POST("/requests", h.CreateRequest)
	api.GET("/notifications", h.ListMyNotifications)
	api.PATCH("/notifications/:id/read", h.MarkNotificationRead)
	api.GET("/agreements", h.ListAgreements)
	api.POST("/agreements/:id/renewal", h.RequestRenewal)
	api.GET("/quota-usage", h.ListQuotaUsage)
	api.PATCH("/quota-usage", h.IncrementQuotaUsage)
	api.POST("/pnbp-transactions", h.CreatePnbpTransaction)
	api.GET("/pnbp-transactions", h.ListTransactions)

	// Admin-only management routes.
	admin := api.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/stats", h.Stats, cache)
	admin.GET("/users", h.ListUsers, cache)
	admin.PATCH("/users/:id", h.UpdateUser)
	admin.GET("/users/:id/activities", h.ListUserActivities)
	admin.GET("/activities", h.ListActivities, cache)
	admin.PATCH("/documents/:id", h.UpdateDocument)
	admin.DELETE("/documents/:id", h.DeleteDocument)
	admin.GET("/requests", h.ListRequests)
	admin.GET("/requests/pending", h.ListPendingRequests)
	admin.PATCH("/requests/:id", h.ReviewRequest)
	admin.POST("/notifications", h.SendNotification)
	admin.POST("/agreements", h.CreateAgreement)
	admin.GET("/agreements/expiring", h.ListExpiringAgreements)
	admin.PATCH("/agreements/:id", h.UpdateAgreement)
	admin.POST("/agreements/sweep-expired", h.SweepExpiredAgreements)
	admin.POST("/quota-usage", h.CreateQuotaUsage)
	admin.POST("/quota-usage/:userId/reset", h.ResetQuota)
	admin.PATCH("/pnbp-transactions/:id/status", h.SettleTransaction)
}
