package policymock

import (
	"context"

	domain "hrms-loan-service/internal/domain/policy"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying policy.Repository.
type Repo struct {
	GetByPositionLevelFn func(ctx context.Context, level string) (*domain.LoanPolicy, error)
	CreateFn             func(ctx context.Context, p *domain.LoanPolicy) error
	SaveFn               func(ctx context.Context, p *domain.LoanPolicy) error
	ListFn               func(ctx context.Context) ([]domain.LoanPolicy, error)
}

func (m *Repo) GetByPositionLevel(ctx context.Context, level string) (*domain.LoanPolicy, error) {
	if m.GetByPositionLevelFn != nil {
		return m.GetByPositionLevelFn(ctx, level)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Create(ctx context.Context, p *domain.LoanPolicy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.LoanPolicy) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.LoanPolicy, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
