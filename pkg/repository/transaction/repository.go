// Package transaction defines the transaction store contract.
package transaction

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/dto"
)

// Repository is the transaction store. Records are immutable: there is no
// update or delete. Implementations surface domain.ErrNotFound for absent
// transactions.
type Repository interface {
	// Create inserts a new transaction record.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// Get retrieves a transaction by its id.
	Get(ctx context.Context, id string) (*dto.TransactionRead, error)

	// ListByAccount lists all transactions posted against an account;
	// order is unspecified.
	ListByAccount(ctx context.Context, accountNumber string) ([]*dto.TransactionRead, error)
}
