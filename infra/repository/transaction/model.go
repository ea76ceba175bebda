package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record in the database. Rows are
// append-only; there is no update path.
type Transaction struct {
	ID            string          `gorm:"type:varchar(16);primaryKey"`
	AccountNumber string          `gorm:"type:varchar(8);not null;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	Type          string          `gorm:"type:varchar(16);not null"`
	Reference     string          `gorm:"type:varchar(255)"`
	UserID        string          `gorm:"type:varchar(32);not null"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
