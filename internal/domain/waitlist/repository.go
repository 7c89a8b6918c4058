package waitlist

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByEntryID(ctx context.Context, entryID string) (*Entry, error)
	GetByEntryIDForUpdate(ctx context.Context, entryID string) (*Entry, error)
	// GetActiveByLoanRequestID returns the waiting entry for a request, if any.
	GetActiveByLoanRequestID(ctx context.Context, loanRequestID uint64) (*Entry, error)
	Save(ctx context.Context, e *Entry) error
	// ListWaiting returns all waiting entries ordered oldest-first; the
	// usecase layers score ordering on top.
	ListWaiting(ctx context.Context) ([]Entry, error)
}
