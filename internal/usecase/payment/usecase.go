package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainInstallment "microloan-backend/internal/domain/installment"
	domainLoan "microloan-backend/internal/domain/loan"
	domainPayment "microloan-backend/internal/domain/payment"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/id"
)

// StrictNoOverpayCredit: funds left over after every outstanding
// installment is settled are discarded, not carried forward as a
// prepayment. Flip this flag once product defines an advance-credit
// behavior.
const StrictNoOverpayCredit = true

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type RegisterInput struct {
	LoanID      string
	Amount      decimal.Decimal
	Method      string
	JournalCode string
	Reference   string
	Note        string
}

type AllocationDTO struct {
	InstallmentSequence int             `json:"installment_sequence"`
	AmountApplied       decimal.Decimal `json:"amount_applied"`
	ResultingState      string          `json:"resulting_state"`
}

type PaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	LoanID      string          `json:"loan_id"`
	ClientID    string          `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Applied     decimal.Decimal `json:"applied"`
	Discarded   decimal.Decimal `json:"discarded"`
	Method      string          `json:"method"`
	JournalCode string          `json:"journal_code,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	PaidAt      time.Time       `json:"paid_at"`
	Allocations []AllocationDTO `json:"allocations"`
}

// Register records an incoming payment and allocates it across the
// loan's outstanding installments, earliest sequence first, no
// skip-ahead. The payment record, every allocation detail and every
// installment mutation commit as one transaction.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*PaymentDTO, error) {
	if u.uow == nil {
		return nil, domainPayment.ErrNotFound
	}
	if !in.Amount.IsPositive() {
		return nil, domainPayment.ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.State != domainLoan.StateApproved {
			return domainLoan.ErrInvalidTransition
		}

		var journalID *uint64
		var journalCode string
		if in.JournalCode != "" {
			j, err := r.Journals.GetByCode(ctx, in.JournalCode)
			if err != nil {
				return err
			}
			journalID = &j.ID
			journalCode = j.Code
		}

		rec := &domainPayment.Record{
			PaymentID: id.New32(),
			LoanID:    l.ID,
			ClientID:  l.ClientID,
			JournalID: journalID,
			Amount:    in.Amount,
			Method:    payMethod(in.Method),
			Reference: in.Reference,
			Note:      in.Note,
			PaidAt:    time.Now().UTC(),
		}
		if err := r.Payments.Create(ctx, rec); err != nil {
			return err
		}

		outstanding, err := r.Installments.ListOutstandingByLoanIDForUpdate(ctx, l.ID)
		if err != nil {
			return err
		}

		allocations, applied, err := allocate(ctx, r, rec, outstanding, in.Amount)
		if err != nil {
			return err
		}

		dto = &PaymentDTO{
			PaymentID:   rec.PaymentID,
			LoanID:      l.LoanID,
			ClientID:    l.ClientID,
			Amount:      in.Amount,
			Applied:     applied,
			Discarded:   in.Amount.Sub(applied),
			Method:      string(rec.Method),
			JournalCode: journalCode,
			Reference:   rec.Reference,
			PaidAt:      rec.PaidAt,
			Allocations: allocations,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// allocate walks the ordered outstanding installments and greedily
// applies funds: min(remaining, installment outstanding) each step. A
// full cover completes the installment and stamps its paid date; a
// partial cover leaves it partial with the cumulative amount recorded.
func allocate(ctx context.Context, r uow.Repos, rec *domainPayment.Record,
	outstanding []*domainInstallment.Installment, amount decimal.Decimal) ([]AllocationDTO, decimal.Decimal, error) {

	remaining := amount
	applied := decimal.Zero
	out := make([]AllocationDTO, 0, len(outstanding))

	for _, inst := range outstanding {
		if !remaining.IsPositive() {
			break
		}
		owed := inst.Outstanding()
		apply := decimal.Min(remaining, owed)
		if !apply.IsPositive() {
			break
		}

		if err := r.Payments.CreateDetail(ctx, &domainPayment.Detail{
			PaymentRecordID: rec.ID,
			InstallmentID:   inst.ID,
			AmountApplied:   apply,
		}); err != nil {
			return nil, decimal.Zero, err
		}

		inst.AmountPaid = inst.AmountPaid.Add(apply)
		if apply.Equal(owed) {
			now := time.Now().UTC()
			inst.State = domainInstallment.StateCompleted
			inst.PaidAt = &now
		} else {
			inst.State = domainInstallment.StatePartial
		}
		if err := r.Installments.Save(ctx, inst); err != nil {
			return nil, decimal.Zero, err
		}

		remaining = remaining.Sub(apply)
		applied = applied.Add(apply)
		out = append(out, AllocationDTO{
			InstallmentSequence: inst.Sequence,
			AmountApplied:       apply,
			ResultingState:      string(inst.State),
		})
	}

	// remaining > 0 here means the loan is fully settled; the surplus is
	// dropped (StrictNoOverpayCredit).
	return out, applied, nil
}

func payMethod(s string) domainPayment.PayMethod {
	switch domainPayment.PayMethod(s) {
	case domainPayment.PayMethodTransfer, domainPayment.PayMethodCheque, domainPayment.PayMethodCard:
		return domainPayment.PayMethod(s)
	default:
		return domainPayment.PayMethodCash
	}
}
