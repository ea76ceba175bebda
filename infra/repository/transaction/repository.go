// Package transaction implements the transaction repository on gorm.
package transaction

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/dto"
	repo "github.com/eaglebank/eaglebank/pkg/repository/transaction"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	txn := Transaction{
		ID:            create.ID,
		AccountNumber: create.AccountNumber,
		Amount:        create.Amount,
		Currency:      create.Currency,
		Type:          create.Type,
		Reference:     create.Reference,
		UserID:        create.UserID,
		CreatedAt:     create.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&txn).Error
}

// Get implements transaction.Repository.
func (r *repository) Get(ctx context.Context, id string) (*dto.TransactionRead, error) {
	var txn Transaction
	if err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&txn), nil
}

// ListByAccount implements transaction.Repository. Newest first, matching
// statement order.
func (r *repository) ListByAccount(ctx context.Context, accountNumber string) ([]*dto.TransactionRead, error) {
	var txns []Transaction
	if err := r.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		Order("created_at DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txns))
	for i := range txns {
		result = append(result, mapModelToDTO(&txns[i]))
	}
	return result, nil
}

// mapModelToDTO maps a gorm model to a read-optimized DTO.
func mapModelToDTO(txn *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:            txn.ID,
		AccountNumber: txn.AccountNumber,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Type:          txn.Type,
		Reference:     txn.Reference,
		UserID:        txn.UserID,
		CreatedAt:     txn.CreatedAt,
	}
}
