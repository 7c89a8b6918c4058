package mysql

import (
	"context"

	loanDomain "hrms-loan-service/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

// activeStatuses: everything that blocks a second in-flight request.
var activeStatuses = []loanDomain.Status{
	loanDomain.StatusHRReview,
	loanDomain.StatusManagerReview,
	loanDomain.StatusVPReview,
	loanDomain.StatusCEOReview,
	loanDomain.StatusApproved,
	loanDomain.StatusDeferred,
	loanDomain.StatusDisbursed,
	loanDomain.StatusRepaying,
}

func (r *LoanRequestRepository) Create(ctx context.Context, l *loanDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Save applies an optimistic version check on top of the row lock: the
// update only lands if lock_version is unchanged since the read.
func (r *LoanRequestRepository) Save(ctx context.Context, l *loanDomain.LoanRequest) error {
	prev := l.LockVersion
	l.LockVersion++
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanRequest{}).
		Where("id = ? AND lock_version = ?", l.ID, prev).
		Select("*").Omit("id", "created_at").
		Updates(l)
	if res.Error != nil {
		l.LockVersion = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		l.LockVersion = prev
		return loanDomain.ErrVersionConflict
	}
	return nil
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (*loanDomain.LoanRequest, error) {
	var out loanDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("employee_id = ? AND status IN ?", employeeID, activeStatuses).
		Order("submitted_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) ListByStatus(ctx context.Context, s loanDomain.Status) ([]loanDomain.LoanRequest, error) {
	var out []loanDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("status = ?", s).
		Order("submitted_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]loanDomain.LoanRequest, error) {
	var out []loanDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("submitted_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
