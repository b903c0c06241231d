package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	instDomain "microloan-backend/internal/domain/installment"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, rows []*instDomain.Installment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(rows).Error
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]*instDomain.Installment, error) {
	var out []*instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("sequence ASC").
		Find(&out)
	return out, res.Error
}

// ListOutstandingByLoanIDForUpdate locks the unsettled installments of a
// loan in allocation order. Sequence order equals due-date order because
// the schedule is generated monotonically.
func (r *InstallmentRepository) ListOutstandingByLoanIDForUpdate(ctx context.Context, loanID uint64) ([]*instDomain.Installment, error) {
	var out []*instDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ? AND state IN ?", loanID, []instDomain.State{instDomain.StatePending, instDomain.StatePartial}).
		Order("sequence ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *instDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InstallmentRepository) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&instDomain.Installment{}).Error
}
