// Package user provides business logic for user registration and profile
// management.
package user

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/eaglebank/eaglebank/pkg/domain"
	userdomain "github.com/eaglebank/eaglebank/pkg/domain/user"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/eaglebank/eaglebank/pkg/repository"
	"github.com/eaglebank/eaglebank/pkg/utils"
)

// ErrHasOpenAccounts is returned when deleting a user who still owns one or
// more accounts.
var ErrHasOpenAccounts = errors.New("user still has open accounts")

// Service provides user operations.
type Service struct {
	uow    repository.UnitOfWork
	ids    *idgen.Generator
	logger *slog.Logger
}

// New creates a user Service.
func New(uow repository.UnitOfWork, ids *idgen.Generator, logger *slog.Logger) *Service {
	return &Service{uow: uow, ids: ids, logger: logger}
}

// CreateInput carries a registration request.
type CreateInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     userdomain.Address
}

// UpdateInput carries a partial profile update; nil fields are untouched.
type UpdateInput struct {
	Name        *string
	Email       *string
	Password    *string
	PhoneNumber *string
	Address     *userdomain.Address
}

// Create registers a new user. Duplicate emails are rejected.
func (s *Service) Create(ctx context.Context, in CreateInput) (out *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users := uow.UserRepository()
		if _, lookupErr := users.GetByEmail(ctx, in.Email); lookupErr == nil {
			return userdomain.ErrEmailTaken
		} else if !errors.Is(lookupErr, domain.ErrNotFound) {
			return lookupErr
		}
		u, buildErr := userdomain.New(
			s.ids.UserID(), in.Name, in.Email, in.Password, in.PhoneNumber, in.Address)
		if buildErr != nil {
			return buildErr
		}
		if createErr := users.Create(ctx, dto.UserCreate{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Password:    u.Password,
			PhoneNumber: u.PhoneNumber,
			Address:     addressToDTO(u.Address),
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.UpdatedAt,
		}); createErr != nil {
			if errors.Is(createErr, domain.ErrAlreadyExists) {
				return userdomain.ErrEmailTaken
			}
			return createErr
		}
		out, err = users.Get(ctx, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", "user_id", out.ID)
	return out, nil
}

// Get retrieves a user by id.
func (s *Service) Get(ctx context.Context, userID string) (*dto.UserRead, error) {
	u, err := s.uow.UserRepository().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update applies a partial update: only the supplied fields overwrite the
// stored record, and the updated timestamp is refreshed.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (out *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users := uow.UserRepository()
		if _, getErr := users.Get(ctx, userID); getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return userdomain.ErrUserNotFound
			}
			return getErr
		}
		update := dto.UserUpdate{
			Name:        in.Name,
			Email:       in.Email,
			PhoneNumber: in.PhoneNumber,
		}
		if in.Password != nil {
			hashed, hashErr := utils.HashPassword(*in.Password)
			if hashErr != nil {
				return hashErr
			}
			update.Password = &hashed
		}
		if in.Address != nil {
			addr := addressToDTO(*in.Address)
			update.Address = &addr
		}
		now := time.Now().UTC()
		update.UpdatedAt = &now
		if updateErr := users.Update(ctx, userID, update); updateErr != nil {
			return updateErr
		}
		out, err = users.Get(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a user. A user who still owns accounts cannot be deleted;
// the accounts have to be closed first.
func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users := uow.UserRepository()
		if _, err := users.Get(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return userdomain.ErrUserNotFound
			}
			return err
		}
		accounts, err := uow.AccountRepository().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(accounts) > 0 {
			return ErrHasOpenAccounts
		}
		return users.Delete(ctx, userID)
	})
}

func addressToDTO(a userdomain.Address) dto.AddressRead {
	return dto.AddressRead{
		Line1:    a.Line1,
		Line2:    a.Line2,
		Line3:    a.Line3,
		Town:     a.Town,
		County:   a.County,
		Postcode: a.Postcode,
	}
}
