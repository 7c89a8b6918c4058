package policy

import "context"

// Repository doubles as the PolicyResolver: resolution is a lookup keyed by
// position level. Repository-backed rather than a constant map so policy
// changes do not require a redeploy.
type Repository interface {
	GetByPositionLevel(ctx context.Context, level string) (*LoanPolicy, error)
	Create(ctx context.Context, p *LoanPolicy) error
	Save(ctx context.Context, p *LoanPolicy) error
	List(ctx context.Context) ([]LoanPolicy, error)
}
