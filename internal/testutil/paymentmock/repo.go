package paymentmock

import (
	"context"

	domain "microloan-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Record) error
	CreateDetailFn   func(ctx context.Context, d *domain.Detail) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.Record, error)
	ListByLoanIDFn   func(ctx context.Context, loanID uint64) ([]*domain.Record, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) CreateDetail(ctx context.Context, d *domain.Detail) error {
	if m.CreateDetailFn != nil {
		return m.CreateDetailFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Record, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.Record, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
