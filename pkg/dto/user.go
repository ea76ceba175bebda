package dto

import "time"

// AddressRead mirrors the embedded address on a user record.
type AddressRead struct {
	Line1    string
	Line2    string
	Line3    string
	Town     string
	County   string
	Postcode string
}

// UserRead is a read-optimized view of a user.
type UserRead struct {
	ID          string
	Name        string
	Email       string
	Password    string // bcrypt hash, never serialized to clients
	PhoneNumber string
	Address     AddressRead
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserCreate carries the data needed to persist a new user.
type UserCreate struct {
	ID          string
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     AddressRead
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserUpdate updates one or more fields of a user. Nil fields are left
// untouched.
type UserUpdate struct {
	Name        *string
	Email       *string
	Password    *string
	PhoneNumber *string
	Address     *AddressRead
	UpdatedAt   *time.Time
}
