package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Record) error
	// CreateDetail rejects amounts above the installment's outstanding
	// balance with ErrAllocationOverrun.
	CreateDetail(ctx context.Context, d *Detail) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Record, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]*Record, error)
}
