package approval

import (
	"errors"
	"time"

	"hrms-loan-service/internal/domain/loan"
)

var ErrNotFound = errors.New("approval record not found")

// ApprovalRecord captures one decision event. Rows are append-only: the
// repository exposes no update or delete.
type ApprovalRecord struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	RecordID string `gorm:"column:record_id;type:char(32);not null;uniqueIndex:ux_approval_records_record_id"`
	// FK to loan_requests.id (numeric)
	LoanRequestID uint64 `gorm:"column:loan_request_id;not null;index"`

	ApprovalStep loan.Status   `gorm:"column:approval_step;size:16;not null"`
	Decision     loan.Decision `gorm:"column:decision;size:16;not null"`
	ActorID      string        `gorm:"column:actor_id;type:char(32);not null"`
	Notes        string        `gorm:"column:notes;type:text"`
	// Step-specific structured payload (HR checklist, VP disbursement plan)
	// serialized as JSON.
	ChecklistJSON string    `gorm:"column:checklist_json;type:text"`
	DecidedAt     time.Time `gorm:"column:decided_at;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ApprovalRecord) TableName() string { return "approval_records" }
