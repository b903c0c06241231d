package uow

import (
	"context"

	"microloan-backend/internal/domain/client"
	"microloan-backend/internal/domain/creditconfig"
	"microloan-backend/internal/domain/installment"
	"microloan-backend/internal/domain/journal"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/payment"
)

type Repos struct {
	Loans        loan.Repository
	Installments installment.Repository
	Payments     payment.Repository
	Configs      creditconfig.Repository
	Clients      client.Repository
	Journals     journal.Repository
}

// UnitOfWork runs a function with every repository bound to one database
// transaction. Approval (schedule generation + state flip), payment
// allocation (record + details + installment mutations) and config
// activation (deactivate-all + activate-one) all require this.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row up-front, then runs fn.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
