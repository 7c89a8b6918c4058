package repaymentmock

import (
	"context"

	domain "hrms-loan-service/internal/domain/repayment"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying repayment.Repository.
type Repo struct {
	CreateBatchFn           func(ctx context.Context, entries []domain.Entry) error
	GetByEntryIDFn          func(ctx context.Context, entryID string) (*domain.Entry, error)
	GetByEntryIDForUpdateFn func(ctx context.Context, entryID string) (*domain.Entry, error)
	SaveFn                  func(ctx context.Context, e *domain.Entry) error
	ListByLoanRequestIDFn   func(ctx context.Context, loanRequestID uint64) ([]domain.Entry, error)
	CountPendingFn          func(ctx context.Context, loanRequestID uint64) (int64, error)
}

func (m *Repo) CreateBatch(ctx context.Context, entries []domain.Entry) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, entries)
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

func (m *Repo) Save(ctx context.Context, e *domain.Entry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]domain.Entry, error) {
	if m.ListByLoanRequestIDFn != nil {
		return m.ListByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, nil
}

func (m *Repo) CountPending(ctx context.Context, loanRequestID uint64) (int64, error) {
	if m.CountPendingFn != nil {
		return m.CountPendingFn(ctx, loanRequestID)
	}
	return 0, nil
}
