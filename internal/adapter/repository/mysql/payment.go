package mysql

import (
	"context"

	"gorm.io/gorm"

	instDomain "microloan-backend/internal/domain/installment"
	paymentDomain "microloan-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Record) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// CreateDetail writes one allocation row. It re-checks the overrun
// invariant against the installment it targets: the allocator's min()
// clamp should make a violation impossible, this is the storage layer's
// last line of defense.
func (r *PaymentRepository) CreateDetail(ctx context.Context, d *paymentDomain.Detail) error {
	var inst instDomain.Installment
	if err := r.db.WithContext(ctx).First(&inst, d.InstallmentID).Error; err != nil {
		return err
	}
	if d.AmountApplied.GreaterThan(inst.Outstanding()) {
		return paymentDomain.ErrAllocationOverrun
	}
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Record, error) {
	var out paymentDomain.Record
	res := r.db.WithContext(ctx).
		Preload("Details").
		Where("payment_id = ?", paymentID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]*paymentDomain.Record, error) {
	var out []*paymentDomain.Record
	res := r.db.WithContext(ctx).
		Preload("Details").
		Where("loan_id = ?", loanID).
		Order("paid_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
