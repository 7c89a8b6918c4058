package employee

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("employee not found")

// Profile is the slice of the employee record the loan workflow needs.
type Profile struct {
	EmployeeID             string
	PositionLevel          string
	PriorOutstandingAmount float64
}

// Directory is the external employee master; the HR system owns it.
type Directory interface {
	Get(ctx context.Context, employeeID string) (*Profile, error)
}
