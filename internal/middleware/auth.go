// Package middleware contains the Fiber middleware used by the HTTP server.
package middleware

import (
	"strings"

	"quill/internal/auth"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the Fiber locals key under which the resolved identity
// is stored. Handlers read it through IdentityFrom.
const IdentityKey = "identity"

// bearerToken extracts the token from the Authorization header.
// Returns "" when the header is missing or not a Bearer scheme.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth resolves the bearer token and rejects the request with 401
// when no valid identity can be established.
func RequireAuth(resolver *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := resolver.Resolve(c.UserContext(), bearerToken(c))
		if identity == nil {
			return models.RespondWithError(c, models.NewUnauthenticatedError("Authentication required."))
		}
		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// OptionalAuth resolves the bearer token when one is present but never
// rejects the request. Invalid or missing credentials simply leave the
// request anonymous.
func OptionalAuth(resolver *auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity := resolver.Resolve(c.UserContext(), bearerToken(c)); identity != nil {
			c.Locals(IdentityKey, identity)
		}
		return c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireAuth or
// OptionalAuth, or nil when the request is anonymous.
func IdentityFrom(c *fiber.Ctx) *models.Identity {
	if identity, ok := c.Locals(IdentityKey).(*models.Identity); ok {
		return identity
	}
	return nil
}
