package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/shopspring/decimal"
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

	create := dto.TransactionCreate{
		ID:            "tan-1a2b3c",
		AccountNumber: "01234567",
		Amount:        decimal.RequireFromString("25.00"),
		Currency:      "GBP",
		Type:          "deposit",
		UserID:        "usr-abc123def456",
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	assert.Error(repo.Create(context.Background(), create))
}

func TestRepository_Get(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "account_number", "amount", "currency", "type",
		"reference", "user_id", "created_at",
	}).AddRow("tan-1a2b3c", "01234567", "25.00", "GBP", "deposit",
		"salary", "usr-abc123def456", now)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = (.+)`).
		WillReturnRows(rows)

	read, err := repo.Get(context.Background(), "tan-1a2b3c")
	assert.NoError(err)
	assert.Equal("tan-1a2b3c", read.ID)
	assert.Equal("01234567", read.AccountNumber)
	assert.True(read.Amount.Equal(decimal.RequireFromString("25.00")))
	assert.Equal("salary", read.Reference)
}

func TestRepository_ListByAccount_NewestFirst(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "account_number", "amount", "currency", "type",
		"reference", "user_id", "created_at",
	}).
		AddRow("tan-fff000", "01234567", "10.00", "GBP", "withdrawal", "", "usr-a", now).
		AddRow("tan-aaa111", "01234567", "50.00", "GBP", "deposit", "", "usr-a", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE account_number = (.+) ORDER BY created_at DESC`).
		WillReturnRows(rows)

	txns, err := repo.ListByAccount(context.Background(), "01234567")
	assert.NoError(err)
	assert.Len(txns, 2)
	assert.Equal("tan-fff000", txns[0].ID)
}
