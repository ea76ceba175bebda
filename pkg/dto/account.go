package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized view of an account.
type AccountRead struct {
	AccountNumber string
	SortCode      string
	Name          string
	AccountType   string
	Balance       decimal.Decimal
	Currency      string
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountCreate carries the data needed to persist a new account.
type AccountCreate struct {
	AccountNumber string
	SortCode      string
	Name          string
	AccountType   string
	Balance       decimal.Decimal
	Currency      string
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AccountUpdate updates one or more fields of an account. Nil fields are
// left untouched.
type AccountUpdate struct {
	Name        *string
	AccountType *string
	Balance     *decimal.Decimal
	UpdatedAt   *time.Time
}
