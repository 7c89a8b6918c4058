package waitlist

import (
	"errors"
	"time"

	"hrms-loan-service/internal/domain/loan"
)

var (
	ErrNotFound              = errors.New("waiting list entry not found")
	ErrNotWaiting            = errors.New("waiting list entry is not waiting")
	ErrReconfirmationPending = errors.New("employee reconfirmation pending")
)

type EntryStatus string

const (
	StatusWaiting  EntryStatus = "waiting"
	StatusPromoted EntryStatus = "promoted"
	StatusExpired  EntryStatus = "expired"
)

// Entry queues a deferred request until capital frees up. At most one active
// entry exists per loan request.
type Entry struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EntryID string `gorm:"column:entry_id;type:char(32);not null;uniqueIndex:ux_waiting_list_entry_id"`
	// FK to loan_requests.id (numeric)
	LoanRequestID uint64 `gorm:"column:loan_request_id;not null;index"`

	PriorityScore int             `gorm:"column:priority_score;not null"`
	ReasonType    loan.ReasonType `gorm:"column:reason_type;size:16"`
	Status        EntryStatus     `gorm:"column:status;size:16;default:'waiting'"`

	ReconfirmRequired bool `gorm:"column:reconfirm_required;default:false"`
	// QueuedAt is the age clock: set on creation, refreshed by
	// reconfirmation. Staleness and the age score component read it.
	QueuedAt time.Time `gorm:"column:queued_at;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string { return "waiting_list_entries" }
