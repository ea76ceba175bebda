package common

import (
	"errors"

	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingToken is returned when a protected handler runs without a
// verified token in the request context.
var ErrMissingToken = errors.New("missing user context")

// CurrentUserID extracts the acting user id from the verified token the JWT
// middleware stored on the context.
func CurrentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", ErrMissingToken
	}
	return authSvc.ParseUserID(token)
}
