package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/chain"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/config"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/database"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/handler"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/middleware"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/queue"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/repository"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/router"
)

func main() {
	cfg := config.Load()
	heights := chain.NewSystem(cfg.ChainGenesis, cfg.BlockInterval)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)

	var store ledger.Store
	if cfg.DBHost != "" {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		store = repository.NewStore(db)

		auth := handler.NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db))
		router.RegisterAuth(e, auth, cfg.JWTSecret)
	} else {
		// No database configured: run on the in-memory store. Accounts
		// need MySQL, so the auth surface is unavailable in this mode.
		log.Printf("DB_HOST not set; using in-memory store (records are not persisted)")
		store = ledger.NewMemStore()
	}

	led := ledger.New(store, heights)
	lh := handler.NewLedgerHandler(led)

	// Redis-backed rate limiting and response caching on the public read
	// surface; both become no-ops when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	read := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}
	router.RegisterLedger(e, lh, cfg.JWTSecret, read...)
	router.RegisterIssuance(e, handler.NewIssuanceHandler(led), cfg.IssuerToken)

	// Audit consumer for seats.sold events; reconnects forever in the
	// background.
	go func() {
		if err := queue.StartSalesConsumer(); err != nil {
			log.Printf("sales consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
