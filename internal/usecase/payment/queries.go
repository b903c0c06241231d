package payment

import (
	"context"

	domainInstallment "microloan-backend/internal/domain/installment"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
)

// Queries reads payment records and their allocation ledgers outside of
// any transaction.
type Queries struct {
	payments     domainPayment.Repository
	loans        domainLoan.Repository
	installments domainInstallment.Repository
}

func NewQueries(payments domainPayment.Repository, loans domainLoan.Repository, installments domainInstallment.Repository) *Queries {
	return &Queries{payments: payments, loans: loans, installments: installments}
}

// Get returns one payment with its allocations mapped back to
// installment sequence numbers.
func (q *Queries) Get(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	rec, err := q.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, domainPayment.ErrNotFound
	}
	return q.toDTO(ctx, rec)
}

// ListByLoan returns all payments recorded against a loan, newest first.
func (q *Queries) ListByLoan(ctx context.Context, loanID string) ([]*PaymentDTO, error) {
	l, err := q.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, domainLoan.ErrNotFound
	}
	recs, err := q.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*PaymentDTO, 0, len(recs))
	for _, rec := range recs {
		dto, err := q.toDTO(ctx, rec)
		if err != nil {
			return nil, err
		}
		dto.LoanID = l.LoanID
		out = append(out, dto)
	}
	return out, nil
}

func (q *Queries) toDTO(ctx context.Context, rec *domainPayment.Record) (*PaymentDTO, error) {
	insts, err := q.installments.ListByLoanID(ctx, rec.LoanID)
	if err != nil {
		return nil, err
	}
	seqByID := make(map[uint64]*domainInstallment.Installment, len(insts))
	for _, i := range insts {
		seqByID[i.ID] = i
	}

	allocations := make([]AllocationDTO, 0, len(rec.Details))
	for _, det := range rec.Details {
		a := AllocationDTO{AmountApplied: det.AmountApplied}
		if inst, ok := seqByID[det.InstallmentID]; ok {
			a.InstallmentSequence = inst.Sequence
			a.ResultingState = string(inst.State)
		}
		allocations = append(allocations, a)
	}

	return &PaymentDTO{
		PaymentID:   rec.PaymentID,
		ClientID:    rec.ClientID,
		Amount:      rec.Amount,
		Method:      string(rec.Method),
		Reference:   rec.Reference,
		PaidAt:      rec.PaidAt,
		Allocations: allocations,
	}, nil
}
