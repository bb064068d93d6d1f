// Package middleware provides shared request processing: JWT
// authentication, the issuance capability gate, Redis response caching and
// rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// PrincipalKey is the echo context key under which JWTAuth stores the
// authenticated principal identity (the token's subject).
const PrincipalKey = "principal"

// JWTAuth returns a middleware that validates a Bearer access token and
// injects the token's subject into the request context. The provided
// secret must match the one used when issuing tokens. Handlers read the
// identity back via Principal(c); the ledger only ever sees this explicit
// principal string, never the token.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing subject"})
			}

			c.Set(PrincipalKey, sub)
			// Rate limiting keys off user_id when present.
			c.Set("user_id", sub)
			return next(c)
		}
	}
}

// Principal returns the authenticated principal stored by JWTAuth, or an
// empty string when the request is unauthenticated.
func Principal(c echo.Context) string {
	if v, ok := c.Get(PrincipalKey).(string); ok {
		return v
	}
	return ""
}
