package repayment

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("repayment entry not found")
	ErrAlreadySettled = errors.New("repayment entry already settled")
)

type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusDeducted EntryStatus = "deducted"
	StatusMissed   EntryStatus = "missed"
)

// Entry is one amortization period of a disbursed loan. The full set for a
// loan is generated atomically at disbursement; principal amounts sum to the
// original principal and remaining_balance reaches zero at the final month.
type Entry struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EntryID string `gorm:"column:entry_id;type:char(32);not null;uniqueIndex:ux_repayment_entries_entry_id"`
	// FK to loan_requests.id (numeric)
	LoanRequestID uint64 `gorm:"column:loan_request_id;not null;uniqueIndex:ux_repayment_entries_loan_month,priority:1"`
	MonthNumber   int    `gorm:"column:month_number;not null;uniqueIndex:ux_repayment_entries_loan_month,priority:2"`

	DueDate          time.Time `gorm:"column:due_date;type:date;not null"`
	PrincipalAmount  float64   `gorm:"column:principal_amount;type:decimal(18,2)"`
	InterestAmount   float64   `gorm:"column:interest_amount;type:decimal(18,2)"`
	TotalAmount      float64   `gorm:"column:total_amount;type:decimal(18,2)"`
	RemainingBalance float64   `gorm:"column:remaining_balance;type:decimal(18,2)"`

	Status EntryStatus `gorm:"column:status;size:16;default:'pending'"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Entry) TableName() string { return "repayment_entries" }
