// Package account defines the account store contract.
package account

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/dto"
)

// Repository is the account store. Implementations surface
// domain.ErrNotFound for absent accounts and domain.ErrAlreadyExists for
// (account number, sort code) uniqueness violations.
type Repository interface {
	// Create inserts a new account record.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get retrieves an account by its account number.
	Get(ctx context.Context, accountNumber string) (*dto.AccountRead, error)

	// GetForUpdate retrieves an account by its account number, locking the
	// row for the duration of the surrounding unit of work. Balance
	// mutations go through this to serialize concurrent transactions on the
	// same account.
	GetForUpdate(ctx context.Context, accountNumber string) (*dto.AccountRead, error)

	// ListByUser lists all accounts owned by a user; order is unspecified.
	ListByUser(ctx context.Context, userID string) ([]*dto.AccountRead, error)

	// ExistsByNumberAndSortCode reports whether the (account number, sort
	// code) pair is already taken. Used by the creation retry loop.
	ExistsByNumberAndSortCode(ctx context.Context, accountNumber, sortCode string) (bool, error)

	// Update applies a partial update to an account.
	Update(ctx context.Context, accountNumber string, update dto.AccountUpdate) error

	// Delete removes an account by its account number.
	Delete(ctx context.Context, accountNumber string) error
}
