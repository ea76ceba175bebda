// Package ledger is the engine that mutates account balances and writes
// the immutable transaction record tied to each mutation.
//
// A transaction-creation attempt moves through Requested -> Validated ->
// Applied -> Persisted, or short-circuits to Rejected at any validation
// step. The load, the balance mutation, and both writes run inside one
// unit of work with the account row locked, so concurrent transactions on
// the same account serialize instead of racing on a stale balance, and the
// transaction record and the balance change commit together or not at all.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/eaglebank/eaglebank/pkg/currency"
	"github.com/eaglebank/eaglebank/pkg/domain"
	accountdomain "github.com/eaglebank/eaglebank/pkg/domain/account"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/eaglebank/eaglebank/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service applies balance-changing operations atomically with their
// transaction record.
type Service struct {
	uow    repository.UnitOfWork
	ids    *idgen.Generator
	logger *slog.Logger
}

// New creates a ledger Service.
func New(uow repository.UnitOfWork, ids *idgen.Generator, logger *slog.Logger) *Service {
	return &Service{uow: uow, ids: ids, logger: logger}
}

// CreateInput carries a validated transaction request. Field-level shape
// checks (amount bounds, known type) belong to the transport layer; the
// engine re-checks every business invariant itself.
type CreateInput struct {
	Amount    decimal.Decimal
	Currency  currency.Code
	Type      accountdomain.TransactionType
	Reference string
}

// CreateTransaction validates the request against the account, mutates the
// balance, and persists the updated account together with the new
// transaction record. Ownership is re-verified here even when an outer
// layer already checked it: the engine is the last line of defense for the
// mutation.
func (s *Service) CreateTransaction(
	ctx context.Context,
	accountNumber, userID string,
	in CreateInput,
) (out *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		transactions := uow.TransactionRepository()

		read, loadErr := accounts.GetForUpdate(ctx, accountNumber)
		if loadErr != nil {
			if errors.Is(loadErr, domain.ErrNotFound) {
				return accountdomain.ErrAccountNotFound
			}
			return loadErr
		}
		a := hydrate(read)

		if authErr := a.AuthorizeOwner(userID); authErr != nil {
			return authErr
		}
		if valErr := a.ValidateTransaction(in.Type, in.Amount, in.Currency); valErr != nil {
			return valErr
		}

		a.Apply(in.Type, in.Amount)

		record := accountdomain.NewTransaction(
			s.ids.TransactionID(),
			a.AccountNumber,
			in.Amount,
			in.Currency,
			in.Type,
			in.Reference,
			userID,
		)

		if createErr := transactions.Create(ctx, dto.TransactionCreate{
			ID:            record.ID,
			AccountNumber: record.AccountNumber,
			Amount:        record.Amount,
			Currency:      record.Currency.String(),
			Type:          string(record.Type),
			Reference:     record.Reference,
			UserID:        record.UserID,
			CreatedAt:     record.CreatedAt,
		}); createErr != nil {
			return createErr
		}
		if updateErr := accounts.Update(ctx, a.AccountNumber, dto.AccountUpdate{
			Balance:   &a.Balance,
			UpdatedAt: &a.UpdatedAt,
		}); updateErr != nil {
			return updateErr
		}

		out, err = transactions.Get(ctx, record.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("transaction posted",
		"transaction_id", out.ID,
		"account_number", accountNumber,
		"type", out.Type,
		"amount", out.Amount,
	)
	return out, nil
}

// ListTransactions returns all transactions for an account the caller
// owns.
func (s *Service) ListTransactions(ctx context.Context, accountNumber, userID string) ([]*dto.TransactionRead, error) {
	read, err := s.uow.AccountRepository().Get(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, accountdomain.ErrAccountNotFound
		}
		return nil, err
	}
	if authErr := hydrate(read).AuthorizeOwner(userID); authErr != nil {
		return nil, authErr
	}
	return s.uow.TransactionRepository().ListByAccount(ctx, accountNumber)
}

// GetTransaction returns a single transaction addressed through its
// account. A transaction that exists but belongs to a different account is
// NotFound, not Forbidden: from the caller's perspective it does not exist
// under the addressed account.
func (s *Service) GetTransaction(ctx context.Context, userID, accountNumber, transactionID string) (*dto.TransactionRead, error) {
	read, err := s.uow.AccountRepository().Get(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, accountdomain.ErrAccountNotFound
		}
		return nil, err
	}
	if authErr := hydrate(read).AuthorizeOwner(userID); authErr != nil {
		return nil, authErr
	}
	txn, err := s.uow.TransactionRepository().Get(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, accountdomain.ErrTransactionNotFound
		}
		return nil, err
	}
	if txn.AccountNumber != accountNumber {
		return nil, accountdomain.ErrTransactionNotFound
	}
	return txn, nil
}

func hydrate(read *dto.AccountRead) *accountdomain.Account {
	return accountdomain.NewFromData(
		read.AccountNumber,
		read.SortCode,
		read.Name,
		accountdomain.Type(read.AccountType),
		read.Balance,
		currency.Code(read.Currency),
		read.UserID,
		read.CreatedAt,
		read.UpdatedAt,
	)
}
