package mysql

import (
	"context"
	"errors"

	employeeDomain "hrms-loan-service/internal/domain/employee"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// employeeProfile is the locally synced slice of the HR employee master.
// The HR system owns the data; this table is a read replica the submission
// flow resolves position levels and outstanding balances from.
type employeeProfile struct {
	ID                     uint64  `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID             string  `gorm:"column:employee_id;type:char(32);not null;uniqueIndex:ux_employee_profiles_employee_id"`
	PositionLevel          string  `gorm:"column:position_level;size:32;not null"`
	PriorOutstandingAmount float64 `gorm:"column:prior_outstanding_amount;type:decimal(18,2);default:0"`
}

func (employeeProfile) TableName() string { return "employee_profiles" }

type EmployeeDirectory struct{ db *gorm.DB }

func NewEmployeeDirectory(db *gorm.DB) *EmployeeDirectory { return &EmployeeDirectory{db: db} }

func (d *EmployeeDirectory) Get(ctx context.Context, employeeID string) (*employeeDomain.Profile, error) {
	var row employeeProfile
	res := d.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&row)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, employeeDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &employeeDomain.Profile{
		EmployeeID:             row.EmployeeID,
		PositionLevel:          row.PositionLevel,
		PriorOutstandingAmount: row.PriorOutstandingAmount,
	}, nil
}

// Upsert refreshes one profile from the HR sync feed.
func (d *EmployeeDirectory) Upsert(ctx context.Context, p *employeeDomain.Profile) error {
	row := employeeProfile{
		EmployeeID:             p.EmployeeID,
		PositionLevel:          p.PositionLevel,
		PriorOutstandingAmount: p.PriorOutstandingAmount,
	}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"position_level", "prior_outstanding_amount"}),
		}).
		Create(&row).Error
}

// Migrate creates the replica table; used by the API bootstrap.
func (d *EmployeeDirectory) Migrate() error {
	return d.db.AutoMigrate(&employeeProfile{})
}
