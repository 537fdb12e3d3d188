// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  StoreDriver selects the persistence
// backend: "memory" for the map-backed store, "mysql" for the database.
type Config struct {
	Env                string // application environment (dev/test/prod)
	Port               string // HTTP port to listen on
	StoreDriver        string // "memory" or "mysql"
	SeedData           bool   // load the sample fixture on boot (memory driver)
	DBUser             string // database username (mysql driver)
	DBPass             string // database password (optional)
	DBHost             string // database host address
	DBPort             string // database port number
	DBName             string // database name
	JWTSecret          string // secret used to sign JWTs
	AccessTTLMin       int    // access token time-to-live in minutes
	ProviderSecretHash string // bcrypt hash the identity provider must match
}

// Load reads configuration from the environment.  Required variables are
// enforced by must() and missing values exit with a fatal log message.
// Database variables are only required when the mysql driver is chosen.
func Load() Config {
	cfg := Config{
		Env:                must("APP_ENV"),
		Port:               must("APP_PORT"),
		StoreDriver:        getenv("STORE_DRIVER", "memory"),
		SeedData:           getenv("SEED_DATA", "false") == "true",
		JWTSecret:          must("JWT_SECRET"),
		AccessTTLMin:       mustInt("ACCESS_TOKEN_TTL_MIN"),
		ProviderSecretHash: must("PROVIDER_SECRET_HASH"),
	}
	if cfg.StoreDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
