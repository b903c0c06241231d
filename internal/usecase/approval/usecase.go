package approval

import (
	"context"
	"fmt"
	"time"

	"microloan-backend/internal/domain/creditconfig"
	"microloan-backend/internal/domain/installment"
	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/schedule"
	"microloan-backend/internal/domain/uow"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type ApproveInput struct {
	LoanID     string
	ApprovedBy string // operator's public id, informational
}

type ApprovalDTO struct {
	LoanID       string     `json:"loan_id"`
	State        string     `json:"state"`
	Installment  string     `json:"installment"`
	Installments int        `json:"installments"`
	ApprovedAt   time.Time  `json:"approved_at"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// Approve flips a pending loan to approved and materializes its full
// installment schedule. The snapshot of rate and method, the schedule
// rows and the state flip commit together or not at all; a loan is never
// left approved with a partial schedule.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*ApprovalDTO, error) {
	if u.uow == nil {
		return nil, domainLoan.ErrInvalidTransition
	}
	var dto *ApprovalDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, in.LoanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}

		// State guard: only pending → approved, exactly once.
		if l.State != domainLoan.StatePending {
			if l.State == domainLoan.StateApproved {
				return domainLoan.ErrAlreadyApproved
			}
			return domainLoan.ErrInvalidTransition
		}

		// Belt and braces: a pending loan must not already own a schedule.
		if existing, err := r.Installments.ListByLoanID(ctx, l.ID); err != nil {
			return err
		} else if len(existing) > 0 {
			return domainLoan.ErrAlreadyApproved
		}

		cfg, err := r.Configs.GetActive(ctx)
		if err != nil {
			return err
		}
		if !cfg.ValidateAmount(l.Principal) || !cfg.ValidatePeriods(l.TermMonths) {
			return fmt.Errorf("%w: loan terms outside the active configuration's limits",
				creditconfig.ErrInvalidBounds)
		}

		// Snapshot rate and method; never re-read the config afterwards.
		l.AnnualRate = cfg.AnnualRate
		l.Method = cfg.Method

		payment, err := schedule.ComputeInstallment(l.Principal, l.AnnualRate, l.TermMonths, l.Method)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		rows, err := schedule.BuildSchedule(l.Principal, l.AnnualRate, l.TermMonths, payment, now)
		if err != nil {
			return err
		}

		batch := make([]*installment.Installment, 0, len(rows))
		for _, row := range rows {
			batch = append(batch, &installment.Installment{
				LoanID:   l.ID,
				Sequence: row.Sequence,
				DueDate:  row.DueDate,
				Amount:   row.ActualInstallment,
				State:    installment.StatePending,
			})
		}
		if err := r.Installments.CreateBatch(ctx, batch); err != nil {
			return err
		}

		last := rows[len(rows)-1].DueDate
		l.Installment = payment
		l.State = domainLoan.StateApproved
		l.ApprovedAt = &now
		l.DueDate = &last
		l.StateUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &ApprovalDTO{
			LoanID:       l.LoanID,
			State:        string(l.State),
			Installment:  payment.StringFixed(2),
			Installments: len(batch),
			ApprovedAt:   now,
			DueDate:      l.DueDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject closes a pending loan request. Terminal.
func (u *Usecase) Reject(ctx context.Context, loanID string) error {
	if u.uow == nil {
		return domainLoan.ErrInvalidTransition
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return domainLoan.ErrNotFound
		}
		if l.State != domainLoan.StatePending {
			return domainLoan.ErrInvalidTransition
		}
		l.State = domainLoan.StateRejected
		l.StateUpdatedAt = time.Now().UTC()
		return r.Loans.Save(ctx, l)
	})
}
