package user

import "time"

// User represents a user record in the database. The address is flattened
// into the row; it has no identity of its own.
type User struct {
	ID              string `gorm:"type:varchar(32);primaryKey"`
	Name            string `gorm:"type:varchar(255);not null"`
	Email           string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password        string `gorm:"type:varchar(72);not null"`
	PhoneNumber     string `gorm:"type:varchar(32);not null"`
	AddressLine1    string `gorm:"type:varchar(255);not null"`
	AddressLine2    string `gorm:"type:varchar(255)"`
	AddressLine3    string `gorm:"type:varchar(255)"`
	AddressTown     string `gorm:"type:varchar(255);not null"`
	AddressCounty   string `gorm:"type:varchar(255);not null"`
	AddressPostcode string `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
