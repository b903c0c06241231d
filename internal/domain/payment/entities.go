package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("payment not found")
	ErrInvalidAmount = errors.New("payment amount must be positive")
	// ErrAllocationOverrun means an allocation tried to apply more to an
	// installment than it still owes. The allocator's min() clamp makes
	// this unreachable; the repository enforces it anyway as a final
	// invariant check before writing a detail row.
	ErrAllocationOverrun = errors.New("allocation exceeds installment outstanding amount")
)

type PayMethod string

const (
	PayMethodCash     PayMethod = "cash"
	PayMethodTransfer PayMethod = "transfer"
	PayMethodCheque   PayMethod = "cheque"
	PayMethodCard     PayMethod = "card"
)

// Record is an incoming payment event against a loan. Its allocation
// across installments is captured by Detail rows created in the same
// transaction.
type Record struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id"`

	LoanID    uint64  `gorm:"column:loan_id;not null;index"`
	ClientID  string  `gorm:"column:client_id;size:32;index"`
	JournalID *uint64 `gorm:"column:journal_id;index"`

	Amount    decimal.Decimal `gorm:"type:decimal(18,2)"`
	Method    PayMethod       `gorm:"type:enum('cash','transfer','cheque','card');default:'cash'"`
	Reference string          `gorm:"size:100"`
	Note      string          `gorm:"type:text"`
	PaidAt    time.Time       `gorm:"column:paid_at;autoCreateTime"`

	Details []Detail `gorm:"foreignKey:PaymentRecordID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Record) TableName() string { return "payment_records" }

// Detail joins one payment record to one installment with the amount
// applied. A record never splits into two details for the same
// installment (composite unique index).
type Detail struct {
	ID              uint64 `gorm:"primaryKey;column:id"`
	PaymentRecordID uint64 `gorm:"column:payment_record_id;not null;uniqueIndex:ux_details_payment_installment"`
	InstallmentID   uint64 `gorm:"column:installment_id;not null;index;uniqueIndex:ux_details_payment_installment"`

	AmountApplied decimal.Decimal `gorm:"type:decimal(18,2)"`
	AppliedAt     time.Time       `gorm:"column:applied_at;autoCreateTime"`
}

func (Detail) TableName() string { return "payment_allocation_details" }
