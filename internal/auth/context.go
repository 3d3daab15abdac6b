package auth

import (
	"github.com/labstack/echo/v4"
)

// IdentityFromContext extracts the authenticated identity from the echo
// context populated by the JWT middleware. Returns nil when the request
// carries no validated token.
func IdentityFromContext(c echo.Context) *Identity {
	identity, ok := c.Get("user").(*Identity)
	if !ok {
		return nil
	}
	return identity
}
