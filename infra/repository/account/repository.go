// Package account implements the account repository on gorm.
package account

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/dto"
	repo "github.com/eaglebank/eaglebank/pkg/repository/account"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&acct).Error
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).
		First(&acct, "account_number = ?", accountNumber).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// GetForUpdate implements account.Repository. The SELECT ... FOR UPDATE lock
// holds until the surrounding transaction commits, serializing concurrent
// balance mutations on the same account.
func (r *repository) GetForUpdate(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "account_number = ?", accountNumber).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// ListByUser implements account.Repository.
func (r *repository) ListByUser(ctx context.Context, userID string) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&accts).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// ExistsByNumberAndSortCode implements account.Repository.
func (r *repository) ExistsByNumberAndSortCode(ctx context.Context, accountNumber, sortCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).
		Where("account_number = ? AND sort_code = ?", accountNumber, sortCode).
		Count(&count).Error
	return count > 0, err
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, accountNumber string, update dto.AccountUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Account{}).
		Where("account_number = ?", accountNumber).
		Updates(updates).Error
}

// Delete implements account.Repository.
func (r *repository) Delete(ctx context.Context, accountNumber string) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, "account_number = ?", accountNumber)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// mapCreateDTOToModel maps AccountCreate DTO to the gorm model.
func mapCreateDTOToModel(create dto.AccountCreate) Account {
	return Account{
		AccountNumber: create.AccountNumber,
		SortCode:      create.SortCode,
		Name:          create.Name,
		AccountType:   create.AccountType,
		Balance:       create.Balance,
		Currency:      create.Currency,
		UserID:        create.UserID,
		CreatedAt:     create.CreatedAt,
		UpdatedAt:     create.UpdatedAt,
	}
}

// mapUpdateDTOToModel maps AccountUpdate DTO to a map for gorm Updates.
func mapUpdateDTOToModel(update dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.AccountType != nil {
		updates["account_type"] = *update.AccountType
	}
	if update.Balance != nil {
		updates["balance"] = *update.Balance
	}
	if update.UpdatedAt != nil {
		updates["updated_at"] = *update.UpdatedAt
	}
	return updates
}

// mapModelToDTO maps a gorm model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		AccountNumber: acct.AccountNumber,
		SortCode:      acct.SortCode,
		Name:          acct.Name,
		AccountType:   acct.AccountType,
		Balance:       acct.Balance,
		Currency:      acct.Currency,
		UserID:        acct.UserID,
		CreatedAt:     acct.CreatedAt,
		UpdatedAt:     acct.UpdatedAt,
	}
}
