package payroll

import (
	"context"

	"hrms-loan-service/internal/domain/repayment"
)

// DeductionSink tells payroll that a deduction is expected for a schedule
// entry. Payroll reports the outcome back through the workflow's
// RecordRepaymentOutcome operation.
type DeductionSink interface {
	Schedule(ctx context.Context, e repayment.Entry) error
}
