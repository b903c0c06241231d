package installmentmock

import (
	"context"

	domain "microloan-backend/internal/domain/installment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn                      func(ctx context.Context, rows []*domain.Installment) error
	ListByLoanIDFn                     func(ctx context.Context, loanID uint64) ([]*domain.Installment, error)
	ListOutstandingByLoanIDForUpdateFn func(ctx context.Context, loanID uint64) ([]*domain.Installment, error)
	SaveFn                             func(ctx context.Context, i *domain.Installment) error
	DeleteByLoanIDFn                   func(ctx context.Context, loanID uint64) error
}

func (m *Repo) CreateBatch(ctx context.Context, rows []*domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rows)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOutstandingByLoanIDForUpdate(ctx context.Context, loanID uint64) ([]*domain.Installment, error) {
	if m.ListOutstandingByLoanIDForUpdateFn != nil {
		return m.ListOutstandingByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, i *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *Repo) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}
