package payroll

import (
	"context"
	"encoding/json"
	"time"

	"hrms-loan-service/internal/domain/repayment"

	"github.com/redis/go-redis/v9"
)

const queueKey = "payroll:deductions"

// RedisSink hands scheduled deductions to the payroll system through a
// redis list; payroll drains it on its own cycle. Delivery here is
// best-effort: the repayment schedule in the database stays the source of
// truth and payroll re-syncs from it.
type RedisSink struct{ rdb *redis.Client }

func NewRedisSink(rdb *redis.Client) *RedisSink { return &RedisSink{rdb: rdb} }

type deductionMsg struct {
	EntryID       string    `json:"entry_id"`
	LoanRequestID uint64    `json:"loan_request_id"`
	MonthNumber   int       `json:"month_number"`
	DueDate       time.Time `json:"due_date"`
	Amount        float64   `json:"amount"`
}

func (s *RedisSink) Schedule(ctx context.Context, e repayment.Entry) error {
	payload, err := json.Marshal(deductionMsg{
		EntryID:       e.EntryID,
		LoanRequestID: e.LoanRequestID,
		MonthNumber:   e.MonthNumber,
		DueDate:       e.DueDate,
		Amount:        e.TotalAmount,
	})
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, queueKey, payload).Err()
}
