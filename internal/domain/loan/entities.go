package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/schedule"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan state transition")
	ErrAlreadyApproved   = errors.New("loan already approved")
)

// State is the persisted lifecycle state. A loan is only ever written as
// pending, approved or rejected; active/overdue/completed are derived
// from the installment set at read time (see Status).
type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

// Status is the effective, possibly derived, state exposed to callers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRejected  Status = "rejected"
	StatusActive    Status = "active"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

type Type string

const (
	TypePersonal   Type = "personal"
	TypeCommercial Type = "commercial"
	TypeEmergency  Type = "emergency"
)

type Loan struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	ClientID string `gorm:"size:32;index:idx_loans_client_active" json:"client_id"`

	Principal  decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	AnnualRate decimal.Decimal `gorm:"type:decimal(6,2)" json:"annual_rate"`
	// Method and AnnualRate are snapshotted from the active credit
	// configuration at approval; the schedule never re-reads the config.
	Method      schedule.Method `gorm:"size:20" json:"method"`
	TermMonths  int             `gorm:"column:term_months" json:"term_months"`
	Installment decimal.Decimal `gorm:"type:decimal(18,2)" json:"installment"`

	Type           Type           `gorm:"type:enum('personal','commercial','emergency');default:'personal'" json:"type"`
	State          State          `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"state"`
	RequestedAt    time.Time      `gorm:"autoCreateTime" json:"requested_at"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	DueDate        *time.Time     `gorm:"type:date" json:"due_date,omitempty"`
	StateUpdatedAt time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy      string         `gorm:"size:32" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// TotalDue is principal plus flat interest, the figure the standard
// calculation spreads across the term.
func (l *Loan) TotalDue() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return l.Principal.Add(l.Principal.Mul(l.AnnualRate).Div(hundred))
}
