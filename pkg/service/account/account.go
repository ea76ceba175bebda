// Package account provides business logic for opening and managing bank
// accounts.
package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/eaglebank/eaglebank/pkg/domain"
	accountdomain "github.com/eaglebank/eaglebank/pkg/domain/account"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/eaglebank/eaglebank/pkg/repository"
	accountrepo "github.com/eaglebank/eaglebank/pkg/repository/account"
)

// ErrAccountNumberExhausted is returned when the collision retry loop runs
// out of attempts without finding a free (account number, sort code) pair.
var ErrAccountNumberExhausted = errors.New("could not allocate a unique account number")

// Service provides account operations.
type Service struct {
	uow         repository.UnitOfWork
	ids         *idgen.Generator
	maxAttempts int
	logger      *slog.Logger
}

// New creates an account Service. maxAttempts caps the account-number
// collision retry loop.
func New(uow repository.UnitOfWork, ids *idgen.Generator, maxAttempts int, logger *slog.Logger) *Service {
	return &Service{uow: uow, ids: ids, maxAttempts: maxAttempts, logger: logger}
}

// CreateInput carries an account-opening request.
type CreateInput struct {
	Name        string
	AccountType accountdomain.Type
}

// UpdateInput carries a partial account update; nil fields are untouched.
type UpdateInput struct {
	Name        *string
	AccountType *accountdomain.Type
}

// Create opens an account for userID with zero balance, a generated sort
// code, and an account number retried against the store until unique.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (out *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		sortCode := s.ids.SortCode()
		number, allocErr := s.uniqueAccountNumber(ctx, accounts, sortCode)
		if allocErr != nil {
			return allocErr
		}
		a, openErr := accountdomain.Open(number, sortCode, in.Name, in.AccountType, userID)
		if openErr != nil {
			return openErr
		}
		if createErr := accounts.Create(ctx, dto.AccountCreate{
			AccountNumber: a.AccountNumber,
			SortCode:      a.SortCode,
			Name:          a.Name,
			AccountType:   string(a.AccountType),
			Balance:       a.Balance,
			Currency:      a.Currency.String(),
			UserID:        a.UserID,
			CreatedAt:     a.CreatedAt,
			UpdatedAt:     a.UpdatedAt,
		}); createErr != nil {
			return createErr
		}
		out, err = accounts.Get(ctx, a.AccountNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account created", "account_number", out.AccountNumber, "user_id", userID)
	return out, nil
}

// Get retrieves an account, enforcing load-then-authorize ordering: an
// absent account is NotFound even for a caller who would not own it.
func (s *Service) Get(ctx context.Context, accountNumber, userID string) (*dto.AccountRead, error) {
	read, err := s.uow.AccountRepository().Get(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, accountdomain.ErrAccountNotFound
		}
		return nil, err
	}
	if read.UserID != userID {
		return nil, accountdomain.ErrNotOwner
	}
	return read, nil
}

// List returns all accounts owned by userID.
func (s *Service) List(ctx context.Context, userID string) ([]*dto.AccountRead, error) {
	return s.uow.AccountRepository().ListByUser(ctx, userID)
}

// Update applies a partial update to an account the caller owns and
// refreshes the updated timestamp.
func (s *Service) Update(ctx context.Context, accountNumber, userID string, in UpdateInput) (out *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		read, getErr := accounts.Get(ctx, accountNumber)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return accountdomain.ErrAccountNotFound
			}
			return getErr
		}
		if read.UserID != userID {
			return accountdomain.ErrNotOwner
		}
		update := dto.AccountUpdate{Name: in.Name}
		if in.AccountType != nil {
			if !in.AccountType.IsValid() {
				return errors.New("unknown account type")
			}
			at := string(*in.AccountType)
			update.AccountType = &at
		}
		now := time.Now().UTC()
		update.UpdatedAt = &now
		if updateErr := accounts.Update(ctx, accountNumber, update); updateErr != nil {
			return updateErr
		}
		out, err = accounts.Get(ctx, accountNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes an account the caller owns.
func (s *Service) Delete(ctx context.Context, accountNumber, userID string) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts := uow.AccountRepository()
		read, err := accounts.Get(ctx, accountNumber)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return accountdomain.ErrAccountNotFound
			}
			return err
		}
		if read.UserID != userID {
			return accountdomain.ErrNotOwner
		}
		return accounts.Delete(ctx, accountNumber)
	})
}

// uniqueAccountNumber generates candidate numbers until the (number, sort
// code) pair is free. The loop is capped: past maxAttempts the caller gets
// a conflict instead of an unbounded spin.
func (s *Service) uniqueAccountNumber(ctx context.Context, accounts accountrepo.Repository, sortCode string) (string, error) {
	for range s.maxAttempts {
		number := s.ids.AccountNumber()
		taken, err := accounts.ExistsByNumberAndSortCode(ctx, number, sortCode)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
		s.logger.Warn("account number collision, retrying", "sort_code", sortCode)
	}
	return "", ErrAccountNumberExhausted
}
