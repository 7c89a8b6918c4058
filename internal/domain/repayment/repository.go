package repayment

import "context"

type Repository interface {
	// CreateBatch inserts the full schedule in one go; the caller wraps it
	// in the disbursement transaction.
	CreateBatch(ctx context.Context, entries []Entry) error
	GetByEntryID(ctx context.Context, entryID string) (*Entry, error)
	GetByEntryIDForUpdate(ctx context.Context, entryID string) (*Entry, error)
	Save(ctx context.Context, e *Entry) error
	ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]Entry, error)
	CountPending(ctx context.Context, loanRequestID uint64) (int64, error)
}
