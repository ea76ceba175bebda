// Package user defines the user store contract.
package user

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/dto"
)

// Repository is the user store. Implementations surface domain.ErrNotFound
// for absent users and domain.ErrAlreadyExists for duplicate emails.
type Repository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, create dto.UserCreate) error

	// Get retrieves a user by id.
	Get(ctx context.Context, id string) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// Update applies a partial update to a user.
	Update(ctx context.Context, id string, update dto.UserUpdate) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id string) error
}
