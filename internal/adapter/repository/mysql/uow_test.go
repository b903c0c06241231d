package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	instDomain "microloan-backend/internal/domain/installment"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/id"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	instRepo := NewInstallmentRepository(db)

	loanID := id.New32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.ID == 0 {
			t.Fatalf("loan auto ID not set")
		}
		return r.Installments.CreateBatch(ctx, []*instDomain.Installment{{
			LoanID:     l.ID,
			Sequence:   1,
			Amount:     decimal.NewFromInt(100),
			AmountPaid: decimal.Zero,
			State:      instDomain.StatePending,
			LateFee:    decimal.Zero,
		}})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Both writes visible after commit
	l, err := loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	rows, err := instRepo.ListByLoanID(ctx, l.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("installment not visible after commit: rows=%d err=%v", len(rows), err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	loanID := id.New32()
	sentinel := errors.New("boom")

	var numericID uint64
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(loanID, "cccccccccccccccccccccccccccccccc")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		numericID = l.ID
		if err := r.Installments.CreateBatch(ctx, []*instDomain.Installment{{
			LoanID:     l.ID,
			Sequence:   1,
			Amount:     decimal.NewFromInt(100),
			AmountPaid: decimal.Zero,
			State:      instDomain.StatePending,
			LateFee:    decimal.Zero,
		}}); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected loan gone after rollback, got %v", err)
	}
	rows, err := NewInstallmentRepository(db).ListByLoanID(ctx, numericID)
	if err != nil || len(rows) != 0 {
		t.Fatalf("expected installments gone after rollback: rows=%d err=%v", len(rows), err)
	}
}

func TestGormUoW_ReposShareTransaction(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)

	// A write made through one repo must be visible to another repo
	// inside the same transaction before commit.
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(id.New32(), "dddddddddddddddddddddddddddddddd")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		got, err := r.Loans.GetByLoanID(ctx, l.LoanID)
		if err != nil {
			return err
		}
		if got.ID != l.ID {
			t.Fatalf("tx read mismatch: %d vs %d", got.ID, l.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx err: %v", err)
	}
}

var _ uow.UnitOfWork = (*GormUoW)(nil)
