// Package auth exposes the login endpoint.
package auth

import (
	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	"github.com/eaglebank/eaglebank/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the auth endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/v1/auth/login", Login(authSvc))
}

// Login authenticates a user and returns a JWT.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /v1/auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid email or password", err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", LoginResponse{Token: token})
	}
}
