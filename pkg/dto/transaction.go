package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized view of a transaction. Transactions
// are immutable, so there is no update DTO.
type TransactionRead struct {
	ID            string
	AccountNumber string
	Amount        decimal.Decimal
	Currency      string
	Type          string
	Reference     string
	UserID        string
	CreatedAt     time.Time
}

// TransactionCreate carries the data needed to persist a new transaction.
type TransactionCreate struct {
	ID            string
	AccountNumber string
	Amount        decimal.Decimal
	Currency      string
	Type          string
	Reference     string
	UserID        string
	CreatedAt     time.Time
}
