package mysql

import (
	"context"

	approvalDomain "hrms-loan-service/internal/domain/approval"

	"gorm.io/gorm"
)

// ApprovalRecordRepository is append-only: decisions are audit facts and the
// repository exposes no update or delete path.
type ApprovalRecordRepository struct{ db *gorm.DB }

func NewApprovalRecordRepository(db *gorm.DB) *ApprovalRecordRepository {
	return &ApprovalRecordRepository{db: db}
}

func (r *ApprovalRecordRepository) Create(ctx context.Context, a *approvalDomain.ApprovalRecord) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApprovalRecordRepository) ListByLoanRequestID(ctx context.Context, loanRequestID uint64) ([]approvalDomain.ApprovalRecord, error) {
	var out []approvalDomain.ApprovalRecord
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ?", loanRequestID).
		Order("decided_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
