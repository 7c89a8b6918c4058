package mysql

import (
	"context"

	repaymentDomain "hrms-loan-service/internal/domain/repayment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

func (r *RepaymentRepository) CreateBatch(ctx context.Context, entries []repaymentDomain.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *RepaymentRepository) GetByEntryID(ctx context.Context, entryID string) (*repaymentDomain.Entry, error) {
	var out repaymentDomain.Entry
	res := r.db.WithContext(ctx).Where("entry_id = ?", entryID).First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) GetByEntryIDForUpdate(ctx context.Context, entryID string) (*repaymentDomain.Entry, error) {
	var out repaymentDomain.Entry
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("entry_id = ?", entryID).
		First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) Save(ctx context.Context, e *repaymentDomain.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *RepaymentRepository) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]repaymentDomain.Entry, error) {
	var out []repaymentDomain.Entry
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("month_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) CountPending(ctx context.Context, loanRequestID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&repaymentDomain.Entry{}).
		Where("loan_request_id = ? AND status = ?", loanRequestID, repaymentDomain.StatusPending).
		Count(&n)
	return n, res.Error
}
