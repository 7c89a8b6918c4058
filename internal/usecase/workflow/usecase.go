package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"hrms-loan-service/internal/amortization"
	"hrms-loan-service/internal/domain/approval"
	"hrms-loan-service/internal/domain/loan"
	"hrms-loan-service/internal/domain/payroll"
	"hrms-loan-service/internal/domain/repayment"
	"hrms-loan-service/internal/domain/uow"
	"hrms-loan-service/internal/domain/waitlist"
	"hrms-loan-service/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase drives every status change after submission. Each operation runs
// inside a unit of work that locks the loan request row first, so two
// concurrent decisions can never both apply to the same status.
type Usecase struct {
	uow         uow.UnitOfWork
	sink        payroll.DeductionSink
	prioritizer *waitlist.Prioritizer
	now         func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, sink payroll.DeductionSink, pr *waitlist.Prioritizer) *Usecase {
	return &Usecase{uow: tx, sink: sink, prioritizer: pr, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the time source, for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Decide applies one role-gated decision. The status change and its
// ApprovalRecord persist atomically; a deferral also enqueues the request
// on the waiting list inside the same transaction.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrInvalidTransition
	}
	var dto *DecisionDTO

	err := u.uow.WithinLoanTx(ctx, in.RequestID, func(r uow.Repos, l *loan.LoanRequest) error {
		out, err := loan.Transition(l, in.ActorID, in.ActorRole, in.Decision, in.Payload)
		if err != nil {
			return err
		}

		now := u.now()
		rec := &approval.ApprovalRecord{
			RecordID:      id.NewID32(),
			LoanRequestID: l.ID,
			ApprovalStep:  out.Step,
			Decision:      in.Decision,
			ActorID:       in.ActorID,
			Notes:         in.Payload.Notes,
			ChecklistJSON: marshalPayload(in.Payload),
			DecidedAt:     now,
		}
		if err := r.Approvals.Create(ctx, rec); err != nil {
			return err
		}

		dto = &DecisionDTO{
			RequestID: l.RequestID,
			Status:    out.Next,
			Step:      out.Step,
			Decision:  in.Decision,
			DecidedAt: now,
		}

		if out.Next == loan.StatusDeferred {
			entry := &waitlist.Entry{
				EntryID:       id.NewID32(),
				LoanRequestID: l.ID,
				PriorityScore: u.prioritizer.Score(l.ReasonType, decimal.NewFromFloat(l.Amount)),
				ReasonType:    l.ReasonType,
				Status:        waitlist.StatusWaiting,
				QueuedAt:      now,
			}
			if err := r.Waitlist.Create(ctx, entry); err != nil {
				return err
			}
			dto.WaitlistEntry = entry.EntryID
		}

		l.Status = out.Next
		l.StatusUpdatedAt = now
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Disburse generates the authoritative repayment schedule from the policy
// snapshot and persists it with the status change in one transaction.
// Payroll is notified after commit; a sink failure is logged, not fatal,
// since payroll re-syncs from the schedule.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*DisbursementDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrInvalidTransition
	}
	var (
		dto     *DisbursementDTO
		entries []repayment.Entry
	)

	err := u.uow.WithinLoanTx(ctx, in.RequestID, func(r uow.Repos, l *loan.LoanRequest) error {
		if l.Status != loan.StatusApproved {
			return loan.ErrInvalidTransition
		}

		sched, err := amortization.ComputeSchedule(
			decimal.NewFromFloat(l.Amount),
			decimal.NewFromFloat(l.AnnualRateSnapshot),
			l.TermMonths,
		)
		if err != nil {
			return err
		}

		disbursedAt := in.DisbursementDate.UTC()
		entries = make([]repayment.Entry, 0, len(sched.Lines))
		for _, line := range sched.Lines {
			entries = append(entries, repayment.Entry{
				EntryID:          id.NewID32(),
				LoanRequestID:    l.ID,
				MonthNumber:      line.Month,
				DueDate:          disbursedAt.AddDate(0, line.Month, 0),
				PrincipalAmount:  line.Principal.InexactFloat64(),
				InterestAmount:   line.Interest.InexactFloat64(),
				TotalAmount:      line.Total.InexactFloat64(),
				RemainingBalance: line.Balance.InexactFloat64(),
				Status:           repayment.StatusPending,
			})
		}
		if err := r.Repayments.CreateBatch(ctx, entries); err != nil {
			return err
		}

		l.Status = loan.StatusDisbursed
		l.DisbursedAt = &disbursedAt
		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &DisbursementDTO{
			RequestID:          l.RequestID,
			Status:             l.Status,
			MonthlyInstallment: sched.Payment.InexactFloat64(),
			FirstDueDate:       entries[0].DueDate,
			Entries:            len(entries),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if u.sink != nil {
		for _, e := range entries {
			if err := u.sink.Schedule(ctx, e); err != nil {
				log.Printf("payroll sink: schedule entry %s: %v", e.EntryID, err)
			}
		}
	}
	return dto, nil
}

// RecordRepaymentOutcome marks one schedule entry deducted or missed, as
// reported by payroll. The first recorded outcome moves the loan from
// disbursed to repaying; the final deducted entry closes it.
func (u *Usecase) RecordRepaymentOutcome(ctx context.Context, entryID string, outcome repayment.EntryStatus) (*OutcomeDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrInvalidTransition
	}
	if outcome != repayment.StatusDeducted && outcome != repayment.StatusMissed {
		return nil, loan.ErrValidationFailed
	}
	var dto *OutcomeDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, err := r.Repayments.GetByEntryIDForUpdate(ctx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repayment.ErrNotFound
			}
			return err
		}
		if e.Status != repayment.StatusPending {
			return repayment.ErrAlreadySettled
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, e.LoanRequestID)
		if err != nil {
			return err
		}
		if l.Terminal() {
			return loan.ErrInvalidTransition
		}

		e.Status = outcome
		if err := r.Repayments.Save(ctx, e); err != nil {
			return err
		}

		switch l.Status {
		case loan.StatusDisbursed:
			l.Status = loan.StatusRepaying
		case loan.StatusRepaying:
			// stays
		default:
			return loan.ErrInvalidTransition
		}

		if outcome == repayment.StatusDeducted {
			pending, err := r.Repayments.CountPending(ctx, e.LoanRequestID)
			if err != nil {
				return err
			}
			if pending == 0 {
				l.Status = loan.StatusClosed
			}
		}

		l.StatusUpdatedAt = u.now()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &OutcomeDTO{EntryID: e.EntryID, EntryStatus: e.Status, LoanStatus: l.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// PromoteFromWaitingList re-enters a deferred request into hr_review.
// Staleness is evaluated here, lazily: a stale entry flips to
// reconfirm_required and the promotion fails until the employee reconfirms.
func (u *Usecase) PromoteFromWaitingList(ctx context.Context, entryID string) (*PromotionDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrInvalidTransition
	}
	var dto *PromotionDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, err := r.Waitlist.GetByEntryIDForUpdate(ctx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return waitlist.ErrNotFound
			}
			return err
		}
		if e.Status != waitlist.StatusWaiting {
			return waitlist.ErrNotWaiting
		}

		now := u.now()
		if !e.ReconfirmRequired && u.prioritizer.Stale(e, now) {
			e.ReconfirmRequired = true
			if err := r.Waitlist.Save(ctx, e); err != nil {
				return err
			}
		}
		if e.ReconfirmRequired {
			return waitlist.ErrReconfirmationPending
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, e.LoanRequestID)
		if err != nil {
			return err
		}
		if l.Status != loan.StatusDeferred {
			return loan.ErrInvalidTransition
		}

		l.Status = loan.StatusHRReview
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		e.Status = waitlist.StatusPromoted
		if err := r.Waitlist.Save(ctx, e); err != nil {
			return err
		}

		dto = &PromotionDTO{EntryID: e.EntryID, RequestID: l.RequestID, Status: l.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reconfirm is the employee's answer to a stale waiting entry: it clears the
// reconfirmation flag and restarts the age clock. The stored priority score
// is untouched.
func (u *Usecase) Reconfirm(ctx context.Context, entryID, actorID string) error {
	if u.uow == nil {
		return loan.ErrInvalidTransition
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		e, err := r.Waitlist.GetByEntryIDForUpdate(ctx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return waitlist.ErrNotFound
			}
			return err
		}
		if e.Status != waitlist.StatusWaiting {
			return waitlist.ErrNotWaiting
		}

		l, err := r.Loans.GetByIDForUpdate(ctx, e.LoanRequestID)
		if err != nil {
			return err
		}
		// only the requesting employee can reconfirm their circumstances
		if l.EmployeeID != actorID {
			return loan.ErrUnauthorizedTransition
		}

		e.ReconfirmRequired = false
		e.QueuedAt = u.now()
		return r.Waitlist.Save(ctx, e)
	})
}

// ListWaiting returns the queue ordered by effective score (stored score
// plus age), ties broken oldest-first. Staleness is computed on read but
// not persisted; the authoritative flip happens inside the promote lock.
func (u *Usecase) ListWaiting(ctx context.Context) ([]WaitingItemDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrInvalidTransition
	}
	var out []WaitingItemDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		entries, err := r.Waitlist.ListWaiting(ctx)
		if err != nil {
			return err
		}
		now := u.now()
		out = make([]WaitingItemDTO, 0, len(entries))
		for i := range entries {
			e := &entries[i]
			l, err := r.Loans.GetByID(ctx, e.LoanRequestID)
			if err != nil {
				return err
			}
			out = append(out, WaitingItemDTO{
				EntryID:           e.EntryID,
				RequestID:         l.RequestID,
				EmployeeID:        l.EmployeeID,
				Amount:            l.Amount,
				ReasonType:        e.ReasonType,
				PriorityScore:     e.PriorityScore,
				EffectiveScore:    u.prioritizer.EffectiveScore(e, now),
				ReconfirmRequired: e.ReconfirmRequired || u.prioritizer.Stale(e, now),
				QueuedAt:          e.QueuedAt,
			})
		}
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].EffectiveScore != out[j].EffectiveScore {
				return out[i].EffectiveScore > out[j].EffectiveScore
			}
			return out[i].QueuedAt.Before(out[j].QueuedAt)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func marshalPayload(p loan.DecisionPayload) string {
	b, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(b)
}
