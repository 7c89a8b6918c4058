package waitlistmock

import (
	"context"

	domain "hrms-loan-service/internal/domain/waitlist"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying waitlist.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, e *domain.Entry) error
	GetByEntryIDFn             func(ctx context.Context, entryID string) (*domain.Entry, error)
	GetByEntryIDForUpdateFn    func(ctx context.Context, entryID string) (*domain.Entry, error)
	GetActiveByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) (*domain.Entry, error)
	SaveFn                     func(ctx context.Context, e *domain.Entry) error
	ListWaitingFn              func(ctx context.Context) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByEntryID(ctx context.Context, entryID string) (*domain.Entry, error) {
	if m.GetByEntryIDFn != nil {
		return m.GetByEntryIDFn(ctx, entryID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEntryIDForUpdate(ctx context.Context, entryID string) (*domain.Entry, error) {
	if m.GetByEntryIDForUpdateFn != nil {
		return m.GetByEntryIDForUpdateFn(ctx, entryID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetActiveByLoanRequestID(ctx context.Context, loanRequestID uint64) (*domain.Entry, error) {
	if m.GetActiveByLoanRequestIDFn != nil {
		return m.GetActiveByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, e *domain.Entry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListWaiting(ctx context.Context) ([]domain.Entry, error) {
	if m.ListWaitingFn != nil {
		return m.ListWaitingFn(ctx)
	}
	return nil, nil
}
