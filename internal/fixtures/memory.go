// Package fixtures provides in-memory store implementations for tests.
// They honor the same contracts as the gorm-backed stores, including the
// sentinel errors, so services under test behave exactly as they do
// against the real database.
package fixtures

import (
	"context"
	"sync"

	"github.com/eaglebank/eaglebank/pkg/domain"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/repository"
	accountrepo "github.com/eaglebank/eaglebank/pkg/repository/account"
	transactionrepo "github.com/eaglebank/eaglebank/pkg/repository/transaction"
	userrepo "github.com/eaglebank/eaglebank/pkg/repository/user"
)

// MemoryUoW is an in-memory UnitOfWork. Do is not transactional; tests
// that need rollback semantics assert on the sentinel errors instead.
type MemoryUoW struct {
	mu           sync.Mutex
	accounts     *memoryAccountRepo
	transactions *memoryTransactionRepo
	users        *memoryUserRepo
}

// NewMemoryUoW creates an empty in-memory unit of work.
func NewMemoryUoW() *MemoryUoW {
	u := &MemoryUoW{}
	u.accounts = &memoryAccountRepo{uow: u, byNumber: map[string]dto.AccountRead{}}
	u.transactions = &memoryTransactionRepo{uow: u, byID: map[string]dto.TransactionRead{}}
	u.users = &memoryUserRepo{uow: u, byID: map[string]dto.UserRead{}}
	return u
}

// Do runs fn with the same repositories; the mutex serializes concurrent
// units of work, standing in for the database row lock.
func (u *MemoryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(u)
}

// AccountRepository implements repository.UnitOfWork.
func (u *MemoryUoW) AccountRepository() accountrepo.Repository { return u.accounts }

// TransactionRepository implements repository.UnitOfWork.
func (u *MemoryUoW) TransactionRepository() transactionrepo.Repository { return u.transactions }

// UserRepository implements repository.UnitOfWork.
func (u *MemoryUoW) UserRepository() userrepo.Repository { return u.users }

type memoryAccountRepo struct {
	uow      *MemoryUoW
	byNumber map[string]dto.AccountRead
}

func (r *memoryAccountRepo) Create(_ context.Context, create dto.AccountCreate) error {
	for _, a := range r.byNumber {
		if a.AccountNumber == create.AccountNumber && a.SortCode == create.SortCode {
			return domain.ErrAlreadyExists
		}
	}
	if _, ok := r.byNumber[create.AccountNumber]; ok {
		return domain.ErrAlreadyExists
	}
	r.byNumber[create.AccountNumber] = dto.AccountRead{
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
	return nil
}

func (r *memoryAccountRepo) Get(_ context.Context, accountNumber string) (*dto.AccountRead, error) {
	a, ok := r.byNumber[accountNumber]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *memoryAccountRepo) GetForUpdate(ctx context.Context, accountNumber string) (*dto.AccountRead, error) {
	return r.Get(ctx, accountNumber)
}

func (r *memoryAccountRepo) ListByUser(_ context.Context, userID string) ([]*dto.AccountRead, error) {
	var out []*dto.AccountRead
	for _, a := range r.byNumber {
		if a.UserID == userID {
			copied := a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryAccountRepo) ExistsByNumberAndSortCode(_ context.Context, accountNumber, sortCode string) (bool, error) {
	a, ok := r.byNumber[accountNumber]
	return ok && a.SortCode == sortCode, nil
}

func (r *memoryAccountRepo) Update(_ context.Context, accountNumber string, update dto.AccountUpdate) error {
	a, ok := r.byNumber[accountNumber]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.AccountType != nil {
		a.AccountType = *update.AccountType
	}
	if update.Balance != nil {
		a.Balance = *update.Balance
	}
	if update.UpdatedAt != nil {
		a.UpdatedAt = *update.UpdatedAt
	}
	r.byNumber[accountNumber] = a
	return nil
}

func (r *memoryAccountRepo) Delete(_ context.Context, accountNumber string) error {
	if _, ok := r.byNumber[accountNumber]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byNumber, accountNumber)
	return nil
}

type memoryTransactionRepo struct {
	uow  *MemoryUoW
	byID map[string]dto.TransactionRead
}

func (r *memoryTransactionRepo) Create(_ context.Context, create dto.TransactionCreate) error {
	if _, ok := r.byID[create.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.byID[create.ID] = dto.TransactionRead{
		ID:            create.ID,
		AccountNumber: create.AccountNumber,
		Amount:        create.Amount,
		Currency:      create.Currency,
		Type:          create.Type,
		Reference:     create.Reference,
		UserID:        create.UserID,
		CreatedAt:     create.CreatedAt,
	}
	return nil
}

func (r *memoryTransactionRepo) Get(_ context.Context, id string) (*dto.TransactionRead, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *memoryTransactionRepo) ListByAccount(_ context.Context, accountNumber string) ([]*dto.TransactionRead, error) {
	var out []*dto.TransactionRead
	for _, t := range r.byID {
		if t.AccountNumber == accountNumber {
			copied := t
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memoryUserRepo struct {
	uow  *MemoryUoW
	byID map[string]dto.UserRead
}

func (r *memoryUserRepo) Create(_ context.Context, create dto.UserCreate) error {
	for _, u := range r.byID {
		if u.Email == create.Email {
			return domain.ErrAlreadyExists
		}
	}
	r.byID[create.ID] = dto.UserRead{
		ID:          create.ID,
		Name:        create.Name,
		Email:       create.Email,
		Password:    create.Password,
		PhoneNumber: create.PhoneNumber,
		Address:     create.Address,
		CreatedAt:   create.CreatedAt,
		UpdatedAt:   create.UpdatedAt,
	}
	return nil
}

func (r *memoryUserRepo) Get(_ context.Context, id string) (*dto.UserRead, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*dto.UserRead, error) {
	for _, u := range r.byID {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) Update(_ context.Context, id string, update dto.UserUpdate) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Password != nil {
		u.Password = *update.Password
	}
	if update.PhoneNumber != nil {
		u.PhoneNumber = *update.PhoneNumber
	}
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.UpdatedAt != nil {
		u.UpdatedAt = *update.UpdatedAt
	}
	r.byID[id] = u
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
