// Package repository defines the unit of work contract tying the stores to
// a single transaction boundary.
package repository

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/repository/account"
	"github.com/eaglebank/eaglebank/pkg/repository/transaction"
	"github.com/eaglebank/eaglebank/pkg/repository/user"
)

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. Repositories obtained from the UnitOfWork passed to Do share
// the same database transaction, so the ledger's two writes (transaction
// record plus updated account) either both commit or both roll back.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back and the error propagated.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// AccountRepository returns the account store bound to the current
	// transaction, or to the base session outside Do.
	AccountRepository() account.Repository

	// TransactionRepository returns the transaction store bound to the
	// current transaction, or to the base session outside Do.
	TransactionRepository() transaction.Repository

	// UserRepository returns the user store bound to the current
	// transaction, or to the base session outside Do.
	UserRepository() user.Repository
}
