// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/handler"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication. Currently
// only the health check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the account endpoints. Register, login, refresh
// and logout live under /v1/auth and need no session; /v1/me requires a
// valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterLedger registers the record-keeping endpoints.
//
// Mutating routes require a valid JWT; whether the principal may actually
// mutate is the ledger's decision (registry membership and, for event
// status, per-record ownership). Read-only routes are public and run
// through the shared read middleware chain (rate limit, cache) supplied by
// the caller.
func RegisterLedger(e *echo.Echo, h *handler.LedgerHandler, jwtSecret string, read ...echo.MiddlewareFunc) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	// ---- Access registry ----
	g.POST("/registry/initialize", h.InitializeRegistry)
	g.POST("/registry/organizers", h.AddOrganizer)

	// ---- Venues ----
	g.POST("/venues", h.CreateVenue)

	// ---- Events ----
	g.POST("/events", h.CreateEvent)
	g.PATCH("/events/:id/status", h.UpdateEventStatus)

	// ---- Seat categories ----
	g.POST("/events/:id/categories", h.CreateCategory)

	// Public read surface.
	pub := e.Group("/v1", read...)
	pub.GET("/registry/organizers/:principal", h.GetOrganizer)
	pub.GET("/venues/:id", h.GetVenue)
	pub.GET("/events/:id", h.GetEvent)
	pub.GET("/events/:id/active", h.GetEventActive)
	pub.GET("/events/:id/categories", h.ListEventCategories)
	pub.GET("/categories/:id", h.GetCategory)
}

// RegisterIssuance registers the hook the ticket-issuance collaborator
// calls; it is gated by the issuer capability token, not by JWT.
func RegisterIssuance(e *echo.Echo, h *handler.IssuanceHandler, issuerToken string) {
	g := e.Group("/v1", middleware.RequireIssuer(issuerToken))
	g.POST("/categories/:id/sell", h.SellSeats)
}
