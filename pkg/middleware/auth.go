// Package middleware provides the JWT guard applied to protected routes.
package middleware

import (
	"github.com/eaglebank/eaglebank/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected returns middleware that verifies the bearer token and stores
// the parsed *jwt.Token under c.Locals("user"). Missing, malformed, and
// expired tokens all get the same 401 so callers cannot distinguish why the
// token was rejected.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, _ error) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":   "about:blank",
		"title":  "Unauthorized",
		"status": fiber.StatusUnauthorized,
		"detail": "Missing or invalid bearer token",
	})
}
