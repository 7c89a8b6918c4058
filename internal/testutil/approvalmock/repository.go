package approvalmock

import (
	"context"

	domain "hrms-loan-service/internal/domain/approval"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying approval.Repository. The real
// repository is append-only and so is this one.
type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.ApprovalRecord) error
	ListByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) ([]domain.ApprovalRecord, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.ApprovalRecord) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]domain.ApprovalRecord, error) {
	if m.ListByLoanRequestIDFn != nil {
		return m.ListByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, nil
}
