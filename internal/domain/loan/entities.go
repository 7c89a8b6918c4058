package loan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusSubmitted     Status = "submitted"
	StatusHRReview      Status = "hr_review"
	StatusManagerReview Status = "manager_review"
	StatusVPReview      Status = "vp_review"
	StatusCEOReview     Status = "ceo_review"
	StatusApproved      Status = "approved"
	StatusDisbursed     Status = "disbursed"
	StatusRepaying      Status = "repaying"
	StatusClosed        Status = "closed"
	StatusRejected      Status = "rejected"
	StatusDeferred      Status = "deferred"
)

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionDeferred Decision = "deferred"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleVP       Role = "vp"
	RoleCEO      Role = "ceo"
	RoleAdmin    Role = "admin"
)

// Chain is selected once at submission from the policy and stored on the
// request, so a later policy edit cannot reroute an in-flight request.
type Chain string

const (
	ChainStandard  Chain = "standard"
	ChainExecutive Chain = "executive"
)

type ReasonType string

const (
	ReasonMedical   ReasonType = "medical"
	ReasonEmergency ReasonType = "emergency"
	ReasonEducation ReasonType = "education"
	ReasonHousing   ReasonType = "housing"
	ReasonFamily    ReasonType = "family"
	ReasonPersonal  ReasonType = "personal"
	ReasonOther     ReasonType = "other"
)

var (
	ErrNotFound        = errors.New("loan request not found")
	ErrVersionConflict = errors.New("loan request version conflict")

	// transition errors
	ErrUnauthorizedTransition = errors.New("actor not authorized for this transition")
	// self-approval is a kind of unauthorized transition, so errors.Is on
	// ErrUnauthorizedTransition matches it too
	ErrSelfApproval      = fmt.Errorf("%w: actor may not decide on own request", ErrUnauthorizedTransition)
	ErrInvalidTransition = errors.New("decision not valid for current status")
	ErrValidationFailed  = errors.New("decision payload validation failed")

	// submission errors
	ErrPolicyNotFound      = errors.New("no loan policy for position level")
	ErrAmountExceedsPolicy = errors.New("amount exceeds policy ceiling")
	ErrTermNotAllowed      = errors.New("term not allowed by policy")
	ErrConsentRequired     = errors.New("auto deduction consent is required")
	ErrSignatureRequired   = errors.New("e-signature is required")
	ErrPendingRequest      = errors.New("employee already has an active loan request")
	ErrInfeasibleTerms     = errors.New("rate/term combination infeasible for principal")
)

type LoanRequest struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	RequestID  string `gorm:"size:32;uniqueIndex:ux_loan_requests_request_id_active" json:"request_id"`
	EmployeeID string `gorm:"size:32;index:idx_loan_requests_employee" json:"employee_id"`

	Amount       float64    `gorm:"type:decimal(18,2)" json:"amount"`
	TermMonths   int        `gorm:"column:term_months" json:"term_months"`
	ReasonType   ReasonType `gorm:"size:16" json:"reason_type"`
	ReasonDetail string     `gorm:"type:text" json:"reason_detail"`

	AutoDeductionConsent bool   `gorm:"column:auto_deduction_consent" json:"auto_deduction_consent"`
	ESignature           string `gorm:"size:128;column:e_signature" json:"-"`

	Status        Status `gorm:"size:16;index:idx_loan_requests_status" json:"status"`
	ApprovalChain Chain  `gorm:"size:16" json:"approval_chain"`

	// Policy snapshot taken at submission. A later policy change must not
	// retroactively alter an outstanding request.
	PositionLevelSnapshot string  `gorm:"size:32" json:"position_level"`
	MaxAmountSnapshot     float64 `gorm:"type:decimal(18,2)" json:"-"`
	AllowedTermsSnapshot  string  `gorm:"size:64" json:"-"`
	AnnualRateSnapshot    float64 `gorm:"type:decimal(6,3)" json:"annual_rate_percent"`

	PriorOutstandingAmount      float64 `gorm:"type:decimal(18,2)" json:"prior_outstanding_amount"`
	EstimatedMonthlyInstallment float64 `gorm:"type:decimal(18,2)" json:"estimated_monthly_installment"`

	SubmittedAt time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	DisbursedAt *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`

	LockVersion     uint64         `gorm:"column:lock_version;default:0" json:"-"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// Terminal reports whether no further transitions are possible. Terminal
// requests are retained for audit, never deleted.
func (l *LoanRequest) Terminal() bool {
	return l.Status == StatusRejected || l.Status == StatusClosed
}

// AllowedTerms decodes the CSV snapshot column.
func (l *LoanRequest) AllowedTerms() []int {
	return DecodeTerms(l.AllowedTermsSnapshot)
}

func DecodeTerms(csv string) []int {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// EncodeTerms renders a term set into the CSV snapshot form.
func EncodeTerms(terms []int) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		parts = append(parts, strconv.Itoa(t))
	}
	return strings.Join(parts, ",")
}
