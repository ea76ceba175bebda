package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), dto.UserCreate{
		ID:          "usr-abc123def456",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Password:    "$2a$10$hash",
		PhoneNumber: "+447700900123",
		Address: dto.AddressRead{
			Line1:    "1 High Street",
			Town:     "London",
			County:   "Greater London",
			Postcode: "E1 6AN",
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	assert.NoError(err)
}

func TestRepository_GetByEmail(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "password", "phone_number",
		"address_line1", "address_line2", "address_line3",
		"address_town", "address_county", "address_postcode",
		"created_at", "updated_at",
	}).AddRow("usr-abc123def456", "Jane Doe", "jane@example.com", "$2a$10$hash",
		"+447700900123", "1 High Street", "", "", "London", "Greater London",
		"E1 6AN", now, now)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = (.+)`).
		WillReturnRows(rows)

	read, err := repo.GetByEmail(context.Background(), "jane@example.com")
	assert.NoError(err)
	assert.Equal("usr-abc123def456", read.ID)
	assert.Equal("London", read.Address.Town)
}

func TestRepository_Get_NotFound(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	read, err := repo.Get(context.Background(), "usr-missing000")
	assert.Nil(read)
	assert.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestRepository_Update_AddressFlattened(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	addr := dto.AddressRead{
		Line1:    "2 Low Street",
		Town:     "Leeds",
		County:   "West Yorkshire",
		Postcode: "LS1 1AA",
	}
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), "usr-abc123def456", dto.UserUpdate{
		Address:   &addr,
		UpdatedAt: &now,
	})
	assert.NoError(err)
	assert.NoError(mock.ExpectationsWereMet())
}
