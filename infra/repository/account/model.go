package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record in the database. The account number
// alone is the primary key; the (account_number, sort_code) pair carries an
// extra unique index so allocation collisions surface as duplicate-key
// errors.
type Account struct {
	AccountNumber string          `gorm:"type:varchar(8);primaryKey"`
	SortCode      string          `gorm:"type:varchar(8);not null;uniqueIndex:idx_accounts_number_sort_code,priority:2"`
	Name          string          `gorm:"type:varchar(255);not null"`
	AccountType   string          `gorm:"type:varchar(32);not null"`
	Balance       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'GBP'"`
	UserID        string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
