package submission

import (
	"time"

	"hrms-loan-service/internal/domain/loan"
)

type SubmitInput struct {
	EmployeeID           string          `json:"employee_id"`
	Amount               float64         `json:"amount"`
	TermMonths           int             `json:"term_months"`
	ReasonType           loan.ReasonType `json:"reason_type"`
	ReasonDetail         string          `json:"reason_detail"`
	AutoDeductionConsent bool            `json:"auto_deduction_consent"`
	ESignature           string          `json:"e_signature"`
}

type LoanRequestDTO struct {
	RequestID                   string          `json:"request_id"`
	EmployeeID                  string          `json:"employee_id"`
	Amount                      float64         `json:"amount"`
	TermMonths                  int             `json:"term_months"`
	ReasonType                  loan.ReasonType `json:"reason_type"`
	Status                      loan.Status     `json:"status"`
	ApprovalChain               loan.Chain      `json:"approval_chain"`
	PositionLevel               string          `json:"position_level"`
	AnnualRatePercent           float64         `json:"annual_rate_percent"`
	PriorOutstandingAmount      float64         `json:"prior_outstanding_amount"`
	EstimatedMonthlyInstallment float64         `json:"estimated_monthly_installment"`
	SubmittedAt                 time.Time       `json:"submitted_at"`
	DisbursedAt                 *time.Time      `json:"disbursed_at,omitempty"`
}

func toDTO(l *loan.LoanRequest) *LoanRequestDTO {
	return &LoanRequestDTO{
		RequestID:                   l.RequestID,
		EmployeeID:                  l.EmployeeID,
		Amount:                      l.Amount,
		TermMonths:                  l.TermMonths,
		ReasonType:                  l.ReasonType,
		Status:                      l.Status,
		ApprovalChain:               l.ApprovalChain,
		PositionLevel:               l.PositionLevelSnapshot,
		AnnualRatePercent:           l.AnnualRateSnapshot,
		PriorOutstandingAmount:      l.PriorOutstandingAmount,
		EstimatedMonthlyInstallment: l.EstimatedMonthlyInstallment,
		SubmittedAt:                 l.SubmittedAt,
		DisbursedAt:                 l.DisbursedAt,
	}
}
