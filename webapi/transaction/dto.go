package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for POST
// /v1/accounts/{accountNumber}/transactions. Amount bounds are checked in
// the handler because zero is a legal amount and the required tag would
// reject it.
type CreateTransactionRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency" validate:"required,oneof=GBP"`
	Type      string          `json:"type" validate:"required,oneof=deposit withdrawal"`
	Reference string          `json:"reference" validate:"omitempty,max=255"`
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Type             string          `json:"type"`
	Reference        string          `json:"reference,omitempty"`
	UserID           string          `json:"userId"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
}
