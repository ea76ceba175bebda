package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eaglebank/eaglebank/pkg/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{
			"wrapped not found",
			fmt.Errorf("query failed: %w", gorm.ErrRecordNotFound),
			domain.ErrNotFound,
		},
		{"unrelated", errors.New("connection reset"), errors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapGormErrorToDomain(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.EqualError(t, got, tt.want.Error())
		})
	}
}
