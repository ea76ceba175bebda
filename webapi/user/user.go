// Package user exposes the user registration and profile endpoints.
package user

import (
	"regexp"

	"github.com/eaglebank/eaglebank/pkg/config"
	userdomain "github.com/eaglebank/eaglebank/pkg/domain/user"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/middleware"
	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	usersvc "github.com/eaglebank/eaglebank/pkg/service/user"
	"github.com/eaglebank/eaglebank/webapi/common"
	"github.com/gofiber/fiber/v2"
)

var userIDPattern = regexp.MustCompile(`^usr-[A-Za-z0-9]+$`)

// Routes registers the user endpoints. Everything except registration
// requires a bearer token.
func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/v1/users", CreateUser(userSvc))
	app.Get("/v1/users/:userId", middleware.JwtProtected(cfg.Jwt), GetUser(userSvc, authSvc))
	app.Patch("/v1/users/:userId", middleware.JwtProtected(cfg.Jwt), UpdateUser(userSvc, authSvc))
	app.Delete("/v1/users/:userId", middleware.JwtProtected(cfg.Jwt), DeleteUser(userSvc, authSvc))
}

// requireSelf resolves the path user id and checks it against the token's
// user id. A malformed id is a 400; someone else's id is a 403 regardless of
// whether that user exists, so the endpoint cannot be used to probe for ids.
func requireSelf(c *fiber.Ctx, authSvc *authsvc.Service) (string, error) {
	id := c.Params("userId")
	if !userIDPattern.MatchString(id) {
		return "", common.ProblemDetailsJSON(c, "Invalid user ID", nil,
			"User ID must match usr-<alphanumeric>", fiber.StatusBadRequest)
	}
	actingID, err := common.CurrentUserID(c, authSvc)
	if err != nil {
		return "", common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
	}
	if id != actingID {
		return "", common.ProblemDetailsJSON(c, "Forbidden", nil,
			"You are not allowed to access another user's details", fiber.StatusForbidden)
	}
	return id, nil
}

// CreateUser registers a new user.
// @Summary Create a new user
// @Description Register a user with name, address, phone number, email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /v1/users [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateUserRequest](c)
		if input == nil {
			return err
		}
		created, err := userSvc.Create(c.Context(), usersvc.CreateInput{
			Name:        input.Name,
			Email:       input.Email,
			Password:    input.Password,
			PhoneNumber: input.PhoneNumber,
			Address:     toDomainAddress(input.Address),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", ToResponse(created))
	}
}

// GetUser returns the authenticated user's own details.
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/users/{userId} [get]
// @Security Bearer
func GetUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireSelf(c, authSvc)
		if id == "" {
			return err
		}
		u, err := userSvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", ToResponse(u))
	}
}

// UpdateUser applies a partial update to the authenticated user's details.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/users/{userId} [patch]
// @Security Bearer
func UpdateUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireSelf(c, authSvc)
		if id == "" {
			return err
		}
		input, err := common.BindAndValidate[UpdateUserRequest](c)
		if input == nil {
			return err
		}
		update := usersvc.UpdateInput{
			Name:        input.Name,
			Email:       input.Email,
			Password:    input.Password,
			PhoneNumber: input.PhoneNumber,
		}
		if input.Address != nil {
			addr := toDomainAddress(*input.Address)
			update.Address = &addr
		}
		u, err := userSvc.Update(c.Context(), id, update)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated", ToResponse(u))
	}
}

// DeleteUser removes the authenticated user. A user who still has open
// accounts gets a conflict.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 204 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /v1/users/{userId} [delete]
// @Security Bearer
func DeleteUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireSelf(c, authSvc)
		if id == "" {
			return err
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToResponse maps a user read model to the public payload.
func ToResponse(u *dto.UserRead) UserResponse {
	return UserResponse{
		ID:   u.ID,
		Name: u.Name,
		Address: AddressResponse{
			Line1:    u.Address.Line1,
			Line2:    u.Address.Line2,
			Line3:    u.Address.Line3,
			Town:     u.Address.Town,
			County:   u.Address.County,
			Postcode: u.Address.Postcode,
		},
		PhoneNumber:      u.PhoneNumber,
		Email:            u.Email,
		CreatedTimestamp: u.CreatedAt,
		UpdatedTimestamp: u.UpdatedAt,
	}
}

func toDomainAddress(a AddressRequest) userdomain.Address {
	return userdomain.Address{
		Line1:    a.Line1,
		Line2:    a.Line2,
		Line3:    a.Line3,
		Town:     a.Town,
		County:   a.County,
		Postcode: a.Postcode,
	}
}
