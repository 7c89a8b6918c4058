package approval

import "context"

type Repository interface {
	Create(ctx context.Context, a *ApprovalRecord) error
	// ListByLoanRequestID returns records ordered by decided_at ascending.
	ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]ApprovalRecord, error)
}
