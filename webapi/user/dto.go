package user

import "time"

// AddressRequest carries the embedded postal address on user payloads.
type AddressRequest struct {
	Line1    string `json:"line1" validate:"required"`
	Line2    string `json:"line2"`
	Line3    string `json:"line3"`
	Town     string `json:"town" validate:"required"`
	County   string `json:"county" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

// CreateUserRequest is the payload for POST /v1/users.
type CreateUserRequest struct {
	Name        string         `json:"name" validate:"required"`
	Address     AddressRequest `json:"address" validate:"required"`
	PhoneNumber string         `json:"phoneNumber" validate:"required,e164"`
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,min=6,max=72"`
}

// UpdateUserRequest is the payload for PATCH /v1/users/{userId}. Absent
// fields are left untouched.
type UpdateUserRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1"`
	Address     *AddressRequest `json:"address"`
	PhoneNumber *string         `json:"phoneNumber" validate:"omitempty,e164"`
	Email       *string         `json:"email" validate:"omitempty,email"`
	Password    *string         `json:"password" validate:"omitempty,min=6,max=72"`
}

// AddressResponse mirrors AddressRequest on the way out.
type AddressResponse struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// UserResponse is the public view of a user. The password hash never
// leaves the service layer.
type UserResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Address          AddressResponse `json:"address"`
	PhoneNumber      string          `json:"phoneNumber"`
	Email            string          `json:"email"`
	CreatedTimestamp time.Time       `json:"createdTimestamp"`
	UpdatedTimestamp time.Time       `json:"updatedTimestamp"`
}
