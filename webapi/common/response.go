// Package common holds the response envelope, the RFC 9457 problem
// rendering, and request binding shared by every handler package.
package common

import (
	"errors"

	accountdomain "github.com/eaglebank/eaglebank/pkg/domain/account"
	userdomain "github.com/eaglebank/eaglebank/pkg/domain/user"
	accountsvc "github.com/eaglebank/eaglebank/pkg/service/account"
	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	usersvc "github.com/eaglebank/eaglebank/pkg/service/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // URI reference identifying the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference for this occurrence
	Errors   any    `json:"errors,omitempty"`   // Additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an application/problem+json response. extras may
// carry a string detail and/or an int status override; without a status the
// error is mapped through ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	status := 0
	detail := ""
	for _, extra := range extras {
		switch v := extra.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		status = ErrorToStatusCode(err)
	}
	if detail == "" && err != nil && status < fiber.StatusInternalServerError {
		detail = err.Error()
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Unknown errors
// are a 500: they are infrastructure failures, not client mistakes.
func ErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, accountdomain.ErrAccountNotFound),
		errors.Is(err, accountdomain.ErrTransactionNotFound),
		errors.Is(err, userdomain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, accountdomain.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, accountdomain.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, accountdomain.ErrCurrencyMismatch),
		errors.Is(err, accountdomain.ErrAmountNotPositive):
		return fiber.StatusBadRequest
	case errors.Is(err, userdomain.ErrEmailTaken),
		errors.Is(err, usersvc.ErrHasOpenAccounts),
		errors.Is(err, accountsvc.ErrAccountNumberExhausted):
		return fiber.StatusConflict
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure the error response is already written
// and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
