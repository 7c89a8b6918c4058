package uow

import (
	"context"

	"hrms-loan-service/internal/domain/approval"
	"hrms-loan-service/internal/domain/loan"
	"hrms-loan-service/internal/domain/policy"
	"hrms-loan-service/internal/domain/repayment"
	"hrms-loan-service/internal/domain/waitlist"
)

type Repos struct {
	Loans      loan.Repository
	Policies   policy.Repository
	Approvals  approval.Repository
	Repayments repayment.Repository
	Waitlist   waitlist.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan request row first, then pass it in
	WithinLoanTx(ctx context.Context, requestID string, fn func(r Repos, l *loan.LoanRequest) error) error
}
