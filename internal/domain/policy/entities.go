package policy

import (
	"errors"
	"time"

	"hrms-loan-service/internal/domain/loan"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("loan policy not found")

// LoanPolicy is the per-position-level eligibility rule set. The workflow
// never reads a policy after submission: the resolved constraints are
// snapshotted onto the request so edits here stay prospective.
type LoanPolicy struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	PositionLevel string `gorm:"size:32;uniqueIndex:ux_loan_policies_level_active"`

	MaxLoanAmount             float64    `gorm:"type:decimal(18,2)"`
	AllowedTermsMonths        string     `gorm:"size:64"` // CSV, see loan.EncodeTerms
	AnnualInterestRatePercent float64    `gorm:"type:decimal(6,3)"`
	ApprovalChain             loan.Chain `gorm:"size:16;default:'standard'"`

	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (LoanPolicy) TableName() string { return "loan_policies" }

// AllowsTerm reports whether termMonths is in the allowed set.
func (p *LoanPolicy) AllowsTerm(termMonths int) bool {
	for _, t := range loan.DecodeTerms(p.AllowedTermsMonths) {
		if t == termMonths {
			return true
		}
	}
	return false
}
