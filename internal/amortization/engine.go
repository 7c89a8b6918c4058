// Package amortization computes fixed-payment (EMI) repayment schedules.
// All arithmetic is decimal so the result is reproducible and auditable;
// floats appear only at the storage boundary.
package amortization

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrBadInput = errors.New("amortization: principal, rate and term must be valid")
	// ErrInfeasibleTerms means the rounding correction in the final period
	// would need a negative principal component, i.e. the level payment
	// never outruns the interest. Surfaced at submission time.
	ErrInfeasibleTerms = errors.New("amortization: rate/term combination infeasible for principal")
)

var (
	hundred     = decimal.NewFromInt(100)
	twelve      = decimal.NewFromInt(12)
	one         = decimal.NewFromInt(1)
	ratePrec    = int32(12)
	moneyPlaces = int32(2)
)

// Line is one period of a schedule. Balance is the remaining balance after
// the period's payment.
type Line struct {
	Month     int
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Total     decimal.Decimal
	Balance   decimal.Decimal
}

type Schedule struct {
	// Payment is the level installment, rounded to the minor unit. The
	// final period's total may differ by the absorbed rounding remainder.
	Payment decimal.Decimal
	Lines   []Line
}

// Estimate returns the level payment for display and eligibility checks.
// It runs the full schedule so infeasible combinations fail here, at
// submission, rather than at disbursement.
func Estimate(principal, annualRatePercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	s, err := ComputeSchedule(principal, annualRatePercent, termMonths)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Payment, nil
}

// ComputeSchedule produces the authoritative period-by-period breakdown.
//
// Monthly rate r = annual/100/12. Zero rate degenerates to principal/term.
// Otherwise the level payment is P = principal*r*(1+r)^n / ((1+r)^n - 1).
// Per-period amounts round to the minor unit; the final period's principal
// absorbs the accumulated rounding remainder so the balance lands exactly
// at zero.
func ComputeSchedule(principal, annualRatePercent decimal.Decimal, termMonths int) (*Schedule, error) {
	if principal.LessThanOrEqual(decimal.Zero) || annualRatePercent.IsNegative() || termMonths < 1 {
		return nil, ErrBadInput
	}
	principal = principal.Round(moneyPlaces)
	n := int64(termMonths)

	if annualRatePercent.IsZero() {
		return zeroRateSchedule(principal, termMonths)
	}

	r := annualRatePercent.DivRound(hundred, ratePrec).DivRound(twelve, ratePrec)
	pow := one.Add(r).Pow(decimal.NewFromInt(n))
	payment := principal.Mul(r).Mul(pow).DivRound(pow.Sub(one), ratePrec).Round(moneyPlaces)

	lines := make([]Line, 0, termMonths)
	balance := principal
	for i := 1; i <= termMonths; i++ {
		interest := balance.Mul(r).Round(moneyPlaces)
		var prin, total decimal.Decimal
		if i < termMonths {
			prin = payment.Sub(interest)
			total = payment
		} else {
			// last period absorbs the rounding remainder
			prin = balance
			total = prin.Add(interest)
		}
		if prin.IsNegative() {
			return nil, ErrInfeasibleTerms
		}
		balance = balance.Sub(prin)
		lines = append(lines, Line{
			Month:     i,
			Principal: prin,
			Interest:  interest,
			Total:     total,
			Balance:   balance,
		})
	}
	// balance is exactly zero by construction of the last period
	return &Schedule{Payment: payment, Lines: lines}, nil
}

func zeroRateSchedule(principal decimal.Decimal, termMonths int) (*Schedule, error) {
	payment := principal.DivRound(decimal.NewFromInt(int64(termMonths)), moneyPlaces)
	lines := make([]Line, 0, termMonths)
	balance := principal
	for i := 1; i <= termMonths; i++ {
		prin := payment
		if i == termMonths {
			prin = balance
		}
		if prin.IsNegative() {
			return nil, ErrInfeasibleTerms
		}
		balance = balance.Sub(prin)
		lines = append(lines, Line{
			Month:     i,
			Principal: prin,
			Interest:  decimal.Zero,
			Total:     prin,
			Balance:   balance,
		})
	}
	return &Schedule{Payment: payment, Lines: lines}, nil
}
