package waitlist

import (
	"time"

	"hrms-loan-service/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// Weights control the priority formula. The exact weighting is a policy
// knob, so it is injected rather than hardcoded.
type Weights struct {
	// Reason multiplies the reason-class rank (0..3).
	Reason int
	// Amount multiplies the inverse amount bucket (0..5) so smaller,
	// easier-to-fund requests edge ahead when capital is scarce.
	Amount int
	// AgePerDay is added per whole day spent in the queue.
	AgePerDay int
}

func DefaultWeights() Weights {
	return Weights{Reason: 100, Amount: 10, AgePerDay: 1}
}

// reasonRank: emergency/medical-class reasons outrank everything else.
var reasonRank = map[loan.ReasonType]int{
	loan.ReasonMedical:   3,
	loan.ReasonEmergency: 3,
	loan.ReasonEducation: 2,
	loan.ReasonHousing:   1,
	loan.ReasonFamily:    1,
	loan.ReasonPersonal:  0,
	loan.ReasonOther:     0,
}

var amountBuckets = []struct {
	ceiling decimal.Decimal
	rank    int
}{
	{decimal.NewFromInt(5_000), 5},
	{decimal.NewFromInt(10_000), 4},
	{decimal.NewFromInt(25_000), 3},
	{decimal.NewFromInt(50_000), 2},
	{decimal.NewFromInt(100_000), 1},
}

type Prioritizer struct {
	weights    Weights
	staleAfter time.Duration
}

func NewPrioritizer(w Weights, staleAfter time.Duration) *Prioritizer {
	return &Prioritizer{weights: w, staleAfter: staleAfter}
}

// Score computes the static reason/amount component stored on the entry.
// The age component is deliberately excluded: it is recomputed on every
// read via EffectiveScore so the stored score never needs refreshing.
func (p *Prioritizer) Score(reason loan.ReasonType, amount decimal.Decimal) int {
	score := reasonRank[reason] * p.weights.Reason
	score += p.amountRank(amount) * p.weights.Amount
	return score
}

func (p *Prioritizer) amountRank(amount decimal.Decimal) int {
	for _, b := range amountBuckets {
		if amount.LessThanOrEqual(b.ceiling) {
			return b.rank
		}
	}
	return 0
}

// EffectiveScore is the stored score plus queue age. Reconfirmation resets
// QueuedAt, so the age component (and only that component) restarts.
func (p *Prioritizer) EffectiveScore(e *Entry, now time.Time) int {
	ageDays := int(now.Sub(e.QueuedAt).Hours() / 24)
	if ageDays < 0 {
		ageDays = 0
	}
	return e.PriorityScore + ageDays*p.weights.AgePerDay
}

// Stale reports whether the entry has waited past the staleness window and
// needs the employee to reconfirm before promotion. Evaluated lazily on
// read/promote; there is no background timer.
func (p *Prioritizer) Stale(e *Entry, now time.Time) bool {
	if p.staleAfter <= 0 {
		return false
	}
	return now.Sub(e.QueuedAt) > p.staleAfter
}
