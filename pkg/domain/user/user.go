// Package user contains the user entity and its invariants.
package user

import (
	"errors"
	"time"

	"github.com/eaglebank/eaglebank/pkg/utils"
)

var (
	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email is already in use")
)

// Address is a user's postal address.
type Address struct {
	Line1    string
	Line2    string
	Line3    string
	Town     string
	County   string
	Postcode string
}

// User represents a registered customer. A user owns zero or more accounts
// and is the sole authorization principal in the system.
type User struct {
	ID          string
	Name        string
	Email       string
	Password    string // bcrypt hash
	PhoneNumber string
	Address     Address
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates a User with a hashed password and current timestamps.
// The id is assigned by the caller (see idgen.UserID).
func New(id, name, email, password, phoneNumber string, addr Address) (*User, error) {
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if !utils.IsEmail(email) {
		return nil, errors.New("invalid email address")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:          id,
		Name:        name,
		Email:       email,
		Password:    hashed,
		PhoneNumber: phoneNumber,
		Address:     addr,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewFromData hydrates a User from stored data.
func NewFromData(
	id, name, email, password, phoneNumber string,
	addr Address,
	created, updated time.Time,
) *User {
	return &User{
		ID:          id,
		Name:        name,
		Email:       email,
		Password:    password,
		PhoneNumber: phoneNumber,
		Address:     addr,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
