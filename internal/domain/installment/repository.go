package installment

import "context"

type Repository interface {
	// CreateBatch persists a full schedule in one call; the caller wraps
	// it in the approval transaction.
	CreateBatch(ctx context.Context, rows []*Installment) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]*Installment, error)
	// ListOutstandingByLoanIDForUpdate returns pending and partial
	// installments in ascending sequence order, locked for the
	// surrounding allocation transaction.
	ListOutstandingByLoanIDForUpdate(ctx context.Context, loanID uint64) ([]*Installment, error)
	Save(ctx context.Context, i *Installment) error
	DeleteByLoanID(ctx context.Context, loanID uint64) error
}
