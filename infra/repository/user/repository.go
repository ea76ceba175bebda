// Package user implements the user repository on gorm.
package user

import (
	"context"

	"github.com/eaglebank/eaglebank/pkg/dto"
	repo "github.com/eaglebank/eaglebank/pkg/repository/user"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a user repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements user.Repository.
func (r *repository) Create(ctx context.Context, create dto.UserCreate) error {
	u := User{
		ID:              create.ID,
		Name:            create.Name,
		Email:           create.Email,
		Password:        create.Password,
		PhoneNumber:     create.PhoneNumber,
		AddressLine1:    create.Address.Line1,
		AddressLine2:    create.Address.Line2,
		AddressLine3:    create.Address.Line3,
		AddressTown:     create.Address.Town,
		AddressCounty:   create.Address.County,
		AddressPostcode: create.Address.Postcode,
		CreatedAt:       create.CreatedAt,
		UpdatedAt:       create.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(&u).Error
}

// Get implements user.Repository.
func (r *repository) Get(ctx context.Context, id string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

// GetByEmail implements user.Repository.
func (r *repository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

// Update implements user.Repository.
func (r *repository) Update(ctx context.Context, id string, update dto.UserUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete implements user.Repository.
func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// mapUpdateDTOToModel maps UserUpdate DTO to a map for gorm Updates.
func mapUpdateDTOToModel(update dto.UserUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.Password != nil {
		updates["password"] = *update.Password
	}
	if update.PhoneNumber != nil {
		updates["phone_number"] = *update.PhoneNumber
	}
	if update.Address != nil {
		updates["address_line1"] = update.Address.Line1
		updates["address_line2"] = update.Address.Line2
		updates["address_line3"] = update.Address.Line3
		updates["address_town"] = update.Address.Town
		updates["address_county"] = update.Address.County
		updates["address_postcode"] = update.Address.Postcode
	}
	if update.UpdatedAt != nil {
		updates["updated_at"] = *update.UpdatedAt
	}
	return updates
}

// mapModelToDTO maps a gorm model to a read-optimized DTO.
func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Password:    u.Password,
		PhoneNumber: u.PhoneNumber,
		Address: dto.AddressRead{
			Line1:    u.AddressLine1,
			Line2:    u.AddressLine2,
			Line3:    u.AddressLine3,
			Town:     u.AddressTown,
			County:   u.AddressCounty,
			Postcode: u.AddressPostcode,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
