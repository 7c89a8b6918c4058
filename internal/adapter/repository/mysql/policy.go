package mysql

import (
	"context"
	"errors"

	policyDomain "hrms-loan-service/internal/domain/policy"

	"gorm.io/gorm"
)

type PolicyRepository struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) *PolicyRepository { return &PolicyRepository{db: db} }

func (r *PolicyRepository) GetByPositionLevel(ctx context.Context, level string) (*policyDomain.LoanPolicy, error) {
	var out policyDomain.LoanPolicy
	res := r.db.WithContext(ctx).Where("position_level = ?", level).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, policyDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *PolicyRepository) Create(ctx context.Context, p *policyDomain.LoanPolicy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PolicyRepository) Save(ctx context.Context, p *policyDomain.LoanPolicy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PolicyRepository) List(ctx context.Context) ([]policyDomain.LoanPolicy, error) {
	var out []policyDomain.LoanPolicy
	res := r.db.WithContext(ctx).Order("position_level ASC").Find(&out)
	return out, res.Error
}
