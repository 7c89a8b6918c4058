package workflow

import (
	"time"

	"hrms-loan-service/internal/domain/loan"
	"hrms-loan-service/internal/domain/repayment"
)

type DecideInput struct {
	RequestID string
	ActorID   string
	ActorRole loan.Role
	Decision  loan.Decision
	Payload   loan.DecisionPayload
}

type DecisionDTO struct {
	RequestID     string        `json:"request_id"`
	Status        loan.Status   `json:"status"`
	Step          loan.Status   `json:"step"`
	Decision      loan.Decision `json:"decision"`
	DecidedAt     time.Time     `json:"decided_at"`
	WaitlistEntry string        `json:"waitlist_entry_id,omitempty"`
}

type DisburseInput struct {
	RequestID        string
	DisbursementDate time.Time
}

type DisbursementDTO struct {
	RequestID          string      `json:"request_id"`
	Status             loan.Status `json:"status"`
	MonthlyInstallment float64     `json:"monthly_installment"`
	FirstDueDate       time.Time   `json:"first_due_date"`
	Entries            int         `json:"entries"`
}

type OutcomeDTO struct {
	EntryID     string                `json:"entry_id"`
	EntryStatus repayment.EntryStatus `json:"entry_status"`
	LoanStatus  loan.Status           `json:"loan_status"`
}

type WaitingItemDTO struct {
	EntryID           string          `json:"entry_id"`
	RequestID         string          `json:"request_id"`
	EmployeeID        string          `json:"employee_id"`
	Amount            float64         `json:"amount"`
	ReasonType        loan.ReasonType `json:"reason_type"`
	PriorityScore     int             `json:"priority_score"`
	EffectiveScore    int             `json:"effective_score"`
	ReconfirmRequired bool            `json:"reconfirm_required"`
	QueuedAt          time.Time       `json:"queued_at"`
}

type PromotionDTO struct {
	EntryID   string      `json:"entry_id"`
	RequestID string      `json:"request_id"`
	Status    loan.Status `json:"status"`
}
