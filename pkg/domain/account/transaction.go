package account

import (
	"time"

	"github.com/eaglebank/eaglebank/pkg/currency"
	"github.com/shopspring/decimal"
)

// TransactionType is the kind of balance mutation a transaction records.
type TransactionType string

const (
	// Deposit adds funds to an account.
	Deposit TransactionType = "deposit"
	// Withdrawal removes funds from an account.
	Withdrawal TransactionType = "withdrawal"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Deposit || t == Withdrawal
}

// Transaction is the immutable record tied to a balance change. Once
// persisted it is never updated or deleted.
type Transaction struct {
	ID            string
	AccountNumber string
	Amount        decimal.Decimal
	Currency      currency.Code
	Type          TransactionType
	Reference     string
	UserID        string
	CreatedAt     time.Time
}

// NewTransaction builds the record for a validated request. The id is
// assigned by the caller (see idgen.TransactionID).
func NewTransaction(
	id, accountNumber string,
	amount decimal.Decimal,
	code currency.Code,
	kind TransactionType,
	reference, userID string,
) *Transaction {
	return &Transaction{
		ID:            id,
		AccountNumber: accountNumber,
		Amount:        amount,
		Currency:      code,
		Type:          kind,
		Reference:     reference,
		UserID:        userID,
		CreatedAt:     time.Now().UTC(),
	}
}
