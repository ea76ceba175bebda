package account

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

func sampleCreate() dto.AccountCreate {
	now := time.Now().UTC()
	return dto.AccountCreate{
		AccountNumber: "01234567",
		SortCode:      "12-34-56",
		Name:          "Everyday",
		AccountType:   "personal",
		Balance:       decimal.Zero,
		Currency:      "GBP",
		UserID:        "usr-abc123def456",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRepository_Create(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(repo.Create(context.Background(), sampleCreate()))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	assert.Error(repo.Create(context.Background(), sampleCreate()))
}

func TestRepository_Get(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"account_number", "sort_code", "name", "account_type",
		"balance", "currency", "user_id", "created_at", "updated_at",
	}).AddRow("01234567", "12-34-56", "Everyday", "personal",
		"150.50", "GBP", "usr-abc123def456", now, now)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE account_number = (.+)`).
		WithArgs("01234567", 1).
		WillReturnRows(rows)

	read, err := repo.Get(context.Background(), "01234567")
	assert.NoError(err)
	assert.Equal("01234567", read.AccountNumber)
	assert.True(read.Balance.Equal(decimal.RequireFromString("150.50")))
	assert.Equal("usr-abc123def456", read.UserID)
}

func TestRepository_Get_NotFound(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE account_number = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"account_number"}))

	read, err := repo.Get(context.Background(), "01000000")
	assert.Nil(read)
	assert.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestRepository_GetForUpdate_LocksRow(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"account_number", "sort_code", "name", "account_type",
		"balance", "currency", "user_id", "created_at", "updated_at",
	}).AddRow("01234567", "12-34-56", "Everyday", "personal",
		"10.00", "GBP", "usr-abc123def456", now, now)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE account_number = (.+) FOR UPDATE`).
		WillReturnRows(rows)

	read, err := repo.GetForUpdate(context.Background(), "01234567")
	assert.NoError(err)
	assert.Equal("01234567", read.AccountNumber)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestRepository_ExistsByNumberAndSortCode(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE account_number = (.+) AND sort_code = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	taken, err := repo.ExistsByNumberAndSortCode(context.Background(), "01234567", "12-34-56")
	assert.NoError(err)
	assert.True(taken)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE account_number = (.+) AND sort_code = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err = repo.ExistsByNumberAndSortCode(context.Background(), "01999999", "12-34-56")
	assert.NoError(err)
	assert.False(taken)
}

func TestRepository_Update(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	name := "Renamed"
	balance := decimal.RequireFromString("75.25")
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE account_number = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), "01234567", dto.AccountUpdate{
		Name:      &name,
		Balance:   &balance,
		UpdatedAt: &now,
	})
	assert.NoError(err)

	// No fields set: no statement should run.
	assert.NoError(repo.Update(context.Background(), "01234567", dto.AccountUpdate{}))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE account_number = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "01000000")
	assert.ErrorIs(err, gorm.ErrRecordNotFound)
}
