package repository

import (
	"errors"

	"github.com/eaglebank/eaglebank/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts gorm errors to domain errors so database
// concerns stay inside the infrastructure layer. The chain is traversed
// because gorm wraps driver errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	return err
}

// WrapError runs a gorm operation and maps its error.
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
