package mysql

import (
	"context"

	waitlistDomain "hrms-loan-service/internal/domain/waitlist"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WaitlistRepository struct{ db *gorm.DB }

func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, e *waitlistDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *WaitlistRepository) GetByEntryID(ctx context.Context, entryID string) (*waitlistDomain.Entry, error) {
	var out waitlistDomain.Entry
	res := r.db.WithContext(ctx).Where("entry_id = ?", entryID).First(&out)
	return &out, res.Error
}

func (r *WaitlistRepository) GetByEntryIDForUpdate(ctx context.Context, entryID string) (*waitlistDomain.Entry, error) {
	var out waitlistDomain.Entry
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("entry_id = ?", entryID).
		First(&out)
	return &out, res.Error
}

func (r *WaitlistRepository) GetActiveByLoanRequestID(ctx context.Context, loanRequestID uint64) (*waitlistDomain.Entry, error) {
	var out waitlistDomain.Entry
	res := r.db.WithContext(ctx).
		Where("loan_request_id = ? AND status = ?", loanRequestID, waitlistDomain.StatusWaiting).
		First(&out)
	return &out, res.Error
}

func (r *WaitlistRepository) Save(ctx context.Context, e *waitlistDomain.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// ListWaiting returns oldest-first; effective score ordering happens in the
// usecase where the age component is computed.
func (r *WaitlistRepository) ListWaiting(ctx context.Context) ([]waitlistDomain.Entry, error) {
	var out []waitlistDomain.Entry
	res := r.db.WithContext(ctx).
		Where("status = ?", waitlistDomain.StatusWaiting).
		Order("queued_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
