package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	// GetByRequestIDForUpdate locks the row for the remainder of the
	// enclosing transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LoanRequest, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*LoanRequest, error)
	GetByID(ctx context.Context, id uint64) (*LoanRequest, error)
	// GetActiveByEmployeeID returns the newest non-terminal request, if any.
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (*LoanRequest, error)
	// Save persists with an optimistic lock_version check and returns
	// ErrVersionConflict when the row moved underneath the caller.
	Save(ctx context.Context, l *LoanRequest) error
	ListByStatus(ctx context.Context, s Status) ([]LoanRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LoanRequest, error)
}
