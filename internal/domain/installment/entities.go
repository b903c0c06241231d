package installment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("installment not found")

type State string

const (
	StatePending   State = "pending"
	StatePartial   State = "partial"
	StateCompleted State = "completed"
	StateOverdue   State = "overdue"
)

// Installment is one scheduled repayment of a loan. Sequence numbers are
// contiguous 1..term per loan; AmountPaid accumulates across payment
// allocations and never exceeds Amount.
type Installment struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID uint64 `gorm:"column:loan_id;not null;index;uniqueIndex:ux_installments_loan_seq" json:"-"`

	Sequence   int             `gorm:"column:sequence;not null;uniqueIndex:ux_installments_loan_seq" json:"sequence"`
	DueDate    time.Time       `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	AmountPaid decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"amount_paid"`
	State      State           `gorm:"type:enum('pending','partial','completed','overdue');default:'pending'" json:"state"`
	PaidAt     *time.Time      `gorm:"column:paid_at" json:"paid_at,omitempty"`
	LateFee    decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"late_fee"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "installments" }

// Outstanding is the scheduled amount still owed on this installment.
func (i *Installment) Outstanding() decimal.Decimal {
	return i.Amount.Sub(i.AmountPaid)
}

// Settled reports whether the installment needs no further allocation.
func (i *Installment) Settled() bool {
	return i.State == StateCompleted || !i.Outstanding().IsPositive()
}

// PastDue reports whether an unsettled installment's due date has passed.
func (i *Installment) PastDue(now time.Time) bool {
	return !i.Settled() && now.After(i.DueDate)
}
