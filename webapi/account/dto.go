package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for POST /v1/accounts.
type CreateAccountRequest struct {
	Name        string `json:"name" validate:"required"`
	AccountType string `json:"accountType" validate:"required,oneof=personal"`
}

// UpdateAccountRequest is the payload for PATCH
// /v1/accounts/{accountNumber}. Absent fields are left untouched.
type UpdateAccountRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	AccountType *string `json:"accountType" validate:"omitempty,oneof=personal"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	AccountNumber    string          `json:"accountNumber"`
	SortCode         string          `json:"sortCode"`
	Name             string          `json:"name"`
	AccountType      string          `json:"accountType"`
	Balance          decimal.Decimal `json:"balance"`
	Currency         string          `json:"currency"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}
