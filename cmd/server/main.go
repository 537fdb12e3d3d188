package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/config"
	"github.com/rakhadavin/dukcapil-admin/internal/database"
	"github.com/rakhadavin/dukcapil-admin/internal/handler"
	"github.com/rakhadavin/dukcapil-admin/internal/queue"
	"github.com/rakhadavin/dukcapil-admin/internal/router"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
	"github.com/rakhadavin/dukcapil-admin/internal/store/memory"
	"github.com/rakhadavin/dukcapil-admin/internal/store/mysqlstore"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env directly

	cfg := config.Load()

	var st store.Store
	switch cfg.StoreDriver {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		st = mysqlstore.New(db)
	case "memory":
		mem := memory.New()
		if cfg.SeedData {
			mem.Seed()
			log.Println("memory store seeded with sample data")
		}
		st = mem
	default:
		log.Fatalf("unknown STORE_DRIVER: %q", cfg.StoreDriver)
	}

	// Background audit consumer; it reconnects on its own and never
	// stops the server.
	go func() {
		if err := queue.StartAuditConsumer(); err != nil {
			log.Printf("audit consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	h := handler.New(cfg, st)
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
