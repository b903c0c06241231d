package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainInstallment "microloan-backend/internal/domain/installment"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/internal/testutil/installmentmock"
	"microloan-backend/internal/testutil/loanmock"
	"microloan-backend/internal/testutil/paymentmock"
)

func queryFixture() (*Queries, *domainPayment.Record) {
	rec := &domainPayment.Record{
		ID:        1,
		PaymentID: "dddddddddddddddddddddddddddddddd",
		LoanID:    3,
		ClientID:  "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		Amount:    decimal.NewFromInt(250),
		Method:    domainPayment.PayMethodCash,
		PaidAt:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Details: []domainPayment.Detail{
			{PaymentRecordID: 1, InstallmentID: 11, AmountApplied: decimal.NewFromInt(100)},
			{PaymentRecordID: 1, InstallmentID: 12, AmountApplied: decimal.NewFromInt(150)},
		},
	}

	payments := &paymentmock.Repo{
		GetByPaymentIDFn: func(ctx context.Context, id string) (*domainPayment.Record, error) {
			if id != rec.PaymentID {
				return nil, gorm.ErrRecordNotFound
			}
			return rec, nil
		},
		ListByLoanIDFn: func(ctx context.Context, loanID uint64) ([]*domainPayment.Record, error) {
			return []*domainPayment.Record{rec}, nil
		},
	}
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, id string) (*domainLoan.Loan, error) {
			return &domainLoan.Loan{ID: 3, LoanID: id}, nil
		},
	}
	installments := &installmentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, loanID uint64) ([]*domainInstallment.Installment, error) {
			return []*domainInstallment.Installment{
				{ID: 11, Sequence: 1, State: domainInstallment.StateCompleted},
				{ID: 12, Sequence: 2, State: domainInstallment.StatePartial},
			}, nil
		},
	}
	return NewQueries(payments, loans, installments), rec
}

func TestQueriesGet_MapsDetailsToSequences(t *testing.T) {
	q, rec := queryFixture()

	dto, err := q.Get(context.Background(), rec.PaymentID)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.PaymentID != rec.PaymentID || !dto.Amount.Equal(rec.Amount) {
		t.Fatalf("dto mismatch: %+v", dto)
	}
	if len(dto.Allocations) != 2 {
		t.Fatalf("allocations: %d", len(dto.Allocations))
	}
	if dto.Allocations[0].InstallmentSequence != 1 || dto.Allocations[1].InstallmentSequence != 2 {
		t.Fatalf("sequence mapping: %+v", dto.Allocations)
	}
	if dto.Allocations[1].ResultingState != string(domainInstallment.StatePartial) {
		t.Fatalf("state mapping: %+v", dto.Allocations[1])
	}
}

func TestQueriesGet_NotFound(t *testing.T) {
	q, _ := queryFixture()

	_, err := q.Get(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, domainPayment.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestQueriesListByLoan(t *testing.T) {
	q, rec := queryFixture()

	dtos, err := q.ListByLoan(context.Background(), loanID)
	if err != nil {
		t.Fatalf("ListByLoan err: %v", err)
	}
	if len(dtos) != 1 || dtos[0].PaymentID != rec.PaymentID {
		t.Fatalf("list: %+v", dtos)
	}
}
