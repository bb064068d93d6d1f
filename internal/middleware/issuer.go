package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// IssuerTokenHeader carries the capability token identifying the ticket
// issuance collaborator.
const IssuerTokenHeader = "X-Issuer-Token"

// RequireIssuer gates the seat-availability hook behind a static capability
// token. Only the issuance collaborator holds the token; everything else,
// organizers included, gets a 403. The comparison is constant time.
func RequireIssuer(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(IssuerTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "issuer token required"})
			}
			return next(c)
		}
	}
}
