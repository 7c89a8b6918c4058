package loanmock

import (
	"context"

	domain "hrms-loan-service/internal/domain/loan"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying loan.Repository. Fill in only
// the fields a test needs; unfilled getters report not-found.
type Repo struct {
	CreateFn                  func(ctx context.Context, l *domain.LoanRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByIDForUpdateFn        func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	GetByIDFn                 func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	GetActiveByEmployeeIDFn   func(ctx context.Context, employeeID string) (*domain.LoanRequest, error)
	SaveFn                    func(ctx context.Context, l *domain.LoanRequest) error
	ListByStatusFn            func(ctx context.Context, s domain.Status) ([]domain.LoanRequest, error)
	ListByEmployeeFn          func(ctx context.Context, employeeID string) ([]domain.LoanRequest, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetActiveByEmployeeID(ctx context.Context, employeeID string) (*domain.LoanRequest, error) {
	if m.GetActiveByEmployeeIDFn != nil {
		return m.GetActiveByEmployeeIDFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.LoanRequest, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, nil
}

func (m *Repo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.LoanRequest, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}
