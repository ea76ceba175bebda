// Package account contains the bank account aggregate and the transaction
// record it produces. All balance arithmetic is exact decimal arithmetic;
// floating point never enters the ledger.
package account

import (
	"errors"
	"time"

	"github.com/eaglebank/eaglebank/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when a transaction cannot be found
	// under the addressed account.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotOwner is returned when a user acts on an account they do not own.
	ErrNotOwner = errors.New("you are not allowed to access this resource")

	// ErrCurrencyMismatch is returned when a transaction's currency differs
	// from its account's currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountNotPositive is returned when a transaction amount is negative.
	ErrAmountNotPositive = errors.New("transaction amount must not be negative")
)

// Type is the account category.
type Type string

// Personal is the only account category currently offered.
const Personal Type = "personal"

// IsValid reports whether t is a known account category.
func (t Type) IsValid() bool {
	return t == Personal
}

// Account is the aggregate the ledger engine mutates.
//
// Invariants:
//   - (AccountNumber, SortCode) is unique across all accounts.
//   - Balance is always denominated in Currency.
//   - UpdatedAt >= CreatedAt and is refreshed on every mutation.
//   - Ownership (UserID) never changes after creation.
type Account struct {
	AccountNumber string
	SortCode      string
	Name          string
	AccountType   Type
	Balance       decimal.Decimal
	Currency      currency.Code
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Open creates an account with zero balance and current timestamps. The
// account number and sort code are assigned by the caller, which owns the
// uniqueness retry loop.
func Open(accountNumber, sortCode, name string, accountType Type, userID string) (*Account, error) {
	if !accountType.IsValid() {
		return nil, errors.New("unknown account type")
	}
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	now := time.Now().UTC()
	return &Account{
		AccountNumber: accountNumber,
		SortCode:      sortCode,
		Name:          name,
		AccountType:   accountType,
		Balance:       decimal.Zero,
		Currency:      currency.DefaultCurrency,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewFromData hydrates an Account from stored data.
func NewFromData(
	accountNumber, sortCode, name string,
	accountType Type,
	balance decimal.Decimal,
	code currency.Code,
	userID string,
	created, updated time.Time,
) *Account {
	return &Account{
		AccountNumber: accountNumber,
		SortCode:      sortCode,
		Name:          name,
		AccountType:   accountType,
		Balance:       balance,
		Currency:      code,
		UserID:        userID,
		CreatedAt:     created,
		UpdatedAt:     updated,
	}
}

// AuthorizeOwner checks that userID owns this account. Every service
// operation targeting a specific account calls this, even when an outer
// layer already has: the engine is the last line of defense for mutations.
func (a *Account) AuthorizeOwner(userID string) error {
	if a.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

// ValidateTransaction checks all invariants a transaction request must
// satisfy against the current account state, in the order the ledger
// applies them: currency agreement first, then funds sufficiency for
// withdrawals. Comparison is exact; no tolerance is applied.
func (a *Account) ValidateTransaction(kind TransactionType, amount decimal.Decimal, code currency.Code) error {
	if amount.IsNegative() {
		return ErrAmountNotPositive
	}
	if a.Currency != code {
		return ErrCurrencyMismatch
	}
	if kind == Withdrawal && a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// Apply mutates the balance for a validated transaction and refreshes the
// updated timestamp. Callers must have run ValidateTransaction first.
func (a *Account) Apply(kind TransactionType, amount decimal.Decimal) {
	if kind == Deposit {
		a.Balance = a.Balance.Add(amount)
	} else {
		a.Balance = a.Balance.Sub(amount)
	}
	a.UpdatedAt = time.Now().UTC()
}
