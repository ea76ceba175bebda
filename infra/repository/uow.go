// Package repository provides the gorm-backed unit of work. Repository
// methods obtained through it return domain errors, not gorm errors.
package repository

import (
	"context"

	infraaccount "github.com/eaglebank/eaglebank/infra/repository/account"
	infratransaction "github.com/eaglebank/eaglebank/infra/repository/transaction"
	infrauser "github.com/eaglebank/eaglebank/infra/repository/user"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/repository"
	accountrepo "github.com/eaglebank/eaglebank/pkg/repository/account"
	transactionrepo "github.com/eaglebank/eaglebank/pkg/repository/transaction"
	userrepo "github.com/eaglebank/eaglebank/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the transaction's
// session, so every write in the closure commits or rolls back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside a database transaction. fn receives a UoW bound to the
// transaction session; returning an error rolls everything back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction when inside Do, the root connection
// otherwise. Reads outside Do are fine; writes should go through Do.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() accountrepo.Repository {
	return &accountAdapter{inner: infraaccount.New(u.session())}
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() transactionrepo.Repository {
	return &transactionAdapter{inner: infratransaction.New(u.session())}
}

// UserRepository implements repository.UnitOfWork.
func (u *UoW) UserRepository() userrepo.Repository {
	return &userAdapter{inner: infrauser.New(u.session())}
}

// The adapters translate gorm errors at the layer boundary so the services
// only ever see domain errors.

type accountAdapter struct {
	inner accountrepo.Repository
}

func (a *accountAdapter) Create(ctx context.Context, create dto.AccountCreate) error {
	return MapGormErrorToDomain(a.inner.Create(ctx, create))
}

func (a *accountAdapter) Get(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	read, err := a.inner.Get(ctx, accountNumber)
	return read, MapGormErrorToDomain(err)
}

func (a *accountAdapter) GetForUpdate(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	read, err := a.inner.GetForUpdate(ctx, accountNumber)
	return read, MapGormErrorToDomain(err)
}

func (a *accountAdapter) ListByUser(ctx context.Context, userID string) ([]*dto.AccountRead, error) {
	reads, err := a.inner.ListByUser(ctx, userID)
	return reads, MapGormErrorToDomain(err)
}

func (a *accountAdapter) ExistsByNumberAndSortCode(ctx context.Context, accountNumber, sortCode string) (bool, error) {
	exists, err := a.inner.ExistsByNumberAndSortCode(ctx, accountNumber, sortCode)
	return exists, MapGormErrorToDomain(err)
}

func (a *accountAdapter) Update(ctx context.Context, accountNumber string, update dto.AccountUpdate) error {
	return MapGormErrorToDomain(a.inner.Update(ctx, accountNumber, update))
}

func (a *accountAdapter) Delete(ctx context.Context, accountNumber string) error {
	return MapGormErrorToDomain(a.inner.Delete(ctx, accountNumber))
}

type transactionAdapter struct {
	inner transactionrepo.Repository
}

func (a *transactionAdapter) Create(ctx context.Context, create dto.TransactionCreate) error {
	return MapGormErrorToDomain(a.inner.Create(ctx, create))
}

func (a *transactionAdapter) Get(ctx context.Context, id string) (*dto.TransactionRead, error) {
	read, err := a.inner.Get(ctx, id)
	return read, MapGormErrorToDomain(err)
}

func (a *transactionAdapter) ListByAccount(ctx context.Context, accountNumber string) ([]*dto.TransactionRead, error) {
	reads, err := a.inner.ListByAccount(ctx, accountNumber)
	return reads, MapGormErrorToDomain(err)
}

type userAdapter struct {
	inner userrepo.Repository
}

func (a *userAdapter) Create(ctx context.Context, create dto.UserCreate) error {
	return MapGormErrorToDomain(a.inner.Create(ctx, create))
}

func (a *userAdapter) Get(ctx context.Context, id string) (*dto.UserRead, error) {
	read, err := a.inner.Get(ctx, id)
	return read, MapGormErrorToDomain(err)
}

func (a *userAdapter) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	read, err := a.inner.GetByEmail(ctx, email)
	return read, MapGormErrorToDomain(err)
}

func (a *userAdapter) Update(ctx context.Context, id string, update dto.UserUpdate) error {
	return MapGormErrorToDomain(a.inner.Update(ctx, id, update))
}

func (a *userAdapter) Delete(ctx context.Context, id string) error {
	return MapGormErrorToDomain(a.inner.Delete(ctx, id))
}
