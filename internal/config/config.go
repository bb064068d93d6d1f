// Package config loads application configuration from environment
// variables. A .env file in the working directory is applied first when
// present, so local development does not need exported variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Required variables are
// enforced by must() and missing values abort startup with a fatal log.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	DBHost         string        // database host; empty switches to the in-memory store
	DBPort         string        // database port number
	DBUser         string        // database username
	DBPass         string        // database password (optional)
	DBName         string        // database name
	JWTSecret      string        // secret used to sign JWTs
	AccessTTLMin   int           // access token time-to-live in minutes
	RefreshTTLDays int           // refresh token time-to-live in days
	BcryptCost     int           // bcrypt cost for password hashing
	IssuerToken    string        // capability token for the ticket-issuance hook
	ChainGenesis   time.Time     // instant height 0 started
	BlockInterval  time.Duration // duration of one block
}

// Load reads the configuration from the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envStr("DB_PORT", "3306"),
		DBUser:         os.Getenv("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		IssuerToken:    must("ISSUER_TOKEN"),
		ChainGenesis:   time.Unix(envInt64("CHAIN_GENESIS_UNIX", 0), 0).UTC(),
		BlockInterval:  time.Duration(envInt64("CHAIN_BLOCK_SECONDS", 10)) * time.Second,
	}
	if cfg.DBHost != "" {
		cfg.DBUser = must("DB_USER")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application exits with a fatal log.
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

func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
