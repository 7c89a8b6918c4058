package submission

import (
	"context"
	"errors"
	"strings"
	"time"

	"hrms-loan-service/internal/amortization"
	"hrms-loan-service/internal/domain/employee"
	"hrms-loan-service/internal/domain/loan"
	"hrms-loan-service/internal/domain/policy"
	"hrms-loan-service/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	loans     loan.Repository
	policies  policy.Repository
	directory employee.Directory
}

func NewUsecase(loans loan.Repository, policies policy.Repository, dir employee.Directory) *Usecase {
	return &Usecase{loans: loans, policies: policies, directory: dir}
}

// Submit validates a request against the resolved policy and creates it in
// its first review state. Draft/submitted collapse: a valid submission goes
// straight to hr_review. The policy constraints and approval chain are
// snapshotted so later policy edits stay prospective.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanRequestDTO, error) {
	if !in.AutoDeductionConsent {
		return nil, loan.ErrConsentRequired
	}
	if strings.TrimSpace(in.ESignature) == "" {
		return nil, loan.ErrSignatureRequired
	}
	if in.Amount <= 0 {
		return nil, loan.ErrAmountExceedsPolicy
	}

	prof, err := u.directory.Get(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	pol, err := u.policies.GetByPositionLevel(ctx, prof.PositionLevel)
	switch {
	case errors.Is(err, policy.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return nil, loan.ErrPolicyNotFound
	case err != nil:
		return nil, err
	}

	if in.Amount > pol.MaxLoanAmount {
		return nil, loan.ErrAmountExceedsPolicy
	}
	if !pol.AllowsTerm(in.TermMonths) {
		return nil, loan.ErrTermNotAllowed
	}

	// Block a second in-flight request for the same employee.
	pending, err := u.loans.GetActiveByEmployeeID(ctx, in.EmployeeID)
	switch {
	case err == nil && pending != nil:
		return nil, loan.ErrPendingRequest
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, loan.ErrNotFound):
		return nil, err
	}

	estimate, err := amortization.Estimate(
		decimal.NewFromFloat(in.Amount),
		decimal.NewFromFloat(pol.AnnualInterestRatePercent),
		in.TermMonths,
	)
	if err != nil {
		// infeasible rate/term is a policy problem, caught at submission
		return nil, loan.ErrInfeasibleTerms
	}

	now := time.Now().UTC()
	l := &loan.LoanRequest{
		RequestID:            id.NewID32(),
		EmployeeID:           in.EmployeeID,
		Amount:               in.Amount,
		TermMonths:           in.TermMonths,
		ReasonType:           in.ReasonType,
		ReasonDetail:         in.ReasonDetail,
		AutoDeductionConsent: in.AutoDeductionConsent,
		ESignature:           in.ESignature,

		Status:        loan.FirstReviewStatus(pol.ApprovalChain),
		ApprovalChain: pol.ApprovalChain,

		PositionLevelSnapshot: prof.PositionLevel,
		MaxAmountSnapshot:     pol.MaxLoanAmount,
		AllowedTermsSnapshot:  pol.AllowedTermsMonths,
		AnnualRateSnapshot:    pol.AnnualInterestRatePercent,

		PriorOutstandingAmount:      prof.PriorOutstandingAmount,
		EstimatedMonthlyInstallment: estimate.InexactFloat64(),

		SubmittedAt:     now,
		StatusUpdatedAt: now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*LoanRequestDTO, error) {
	l, err := u.loans.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByStatus(ctx context.Context, s loan.Status) ([]LoanRequestDTO, error) {
	ls, err := u.loans.ListByStatus(ctx, s)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListByEmployee(ctx context.Context, employeeID string) ([]LoanRequestDTO, error) {
	ls, err := u.loans.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func toDTOs(ls []loan.LoanRequest) []LoanRequestDTO {
	out := make([]LoanRequestDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}
