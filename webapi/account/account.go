// Package account exposes the account endpoints.
package account

import (
	"regexp"

	"github.com/eaglebank/eaglebank/pkg/config"
	accountdomain "github.com/eaglebank/eaglebank/pkg/domain/account"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/middleware"
	accountsvc "github.com/eaglebank/eaglebank/pkg/service/account"
	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	"github.com/eaglebank/eaglebank/webapi/common"
	"github.com/gofiber/fiber/v2"
)

var accountNumberPattern = regexp.MustCompile(`^01\d{6}$`)

// Routes registers the account endpoints. All of them require a bearer
// token.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	guard := middleware.JwtProtected(cfg.Jwt)
	app.Post("/v1/accounts", guard, CreateAccount(accountSvc, authSvc))
	app.Get("/v1/accounts", guard, ListAccounts(accountSvc, authSvc))
	app.Get("/v1/accounts/:accountNumber", guard, GetAccount(accountSvc, authSvc))
	app.Patch("/v1/accounts/:accountNumber", guard, UpdateAccount(accountSvc, authSvc))
	app.Delete("/v1/accounts/:accountNumber", guard, DeleteAccount(accountSvc, authSvc))
}

// ParamAccountNumber validates the accountNumber path parameter. On failure
// the 400 response is already written and the returned string is empty.
func ParamAccountNumber(c *fiber.Ctx) (string, error) {
	number := c.Params("accountNumber")
	if !accountNumberPattern.MatchString(number) {
		return "", common.ProblemDetailsJSON(c, "Invalid account number", nil,
			"Account number must match 01 followed by six digits", fiber.StatusBadRequest)
	}
	return number, nil
}

// CreateAccount opens a new account for the authenticated user.
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /v1/accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		created, err := accountSvc.Create(c.Context(), userID, accountsvc.CreateInput{
			Name:        input.Name,
			AccountType: accountdomain.Type(input.AccountType),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToResponse(created))
	}
}

// ListAccounts returns the authenticated user's accounts.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /v1/accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		accounts, err := accountSvc.List(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		out := make([]AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, ToResponse(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts found", out)
	}
}

// GetAccount returns one account the authenticated user owns.
// @Summary Get account by account number
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber} [get]
// @Security Bearer
func GetAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := ParamAccountNumber(c)
		if number == "" {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		a, err := accountSvc.Get(c.Context(), number, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", ToResponse(a))
	}
}

// UpdateAccount applies a partial update to an account the authenticated
// user owns.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param request body UpdateAccountRequest true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber} [patch]
// @Security Bearer
func UpdateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := ParamAccountNumber(c)
		if number == "" {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		update := accountsvc.UpdateInput{Name: input.Name}
		if input.AccountType != nil {
			at := accountdomain.Type(*input.AccountType)
			update.AccountType = &at
		}
		a, err := accountSvc.Update(c.Context(), number, userID, update)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", ToResponse(a))
	}
}

// DeleteAccount closes an account the authenticated user owns.
// @Summary Delete account
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 204 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := ParamAccountNumber(c)
		if number == "" {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		if err := accountSvc.Delete(c.Context(), number, userID); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToResponse maps an account read model to the public payload.
func ToResponse(a *dto.AccountRead) AccountResponse {
	return AccountResponse{
		AccountNumber:    a.AccountNumber,
		SortCode:         a.SortCode,
		Name:             a.Name,
		AccountType:      a.AccountType,
		Balance:          a.Balance,
		Currency:         a.Currency,
		CreatedTimestamp: a.CreatedAt,
		UpdatedTimestamp: a.UpdatedAt,
	}
}
