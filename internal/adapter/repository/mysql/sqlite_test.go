package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, no DECIMAL) ---
//
// The domain structs carry MySQL column types sqlite cannot migrate.
// These shadows mirror the column names with sqlite-safe types; the
// repositories under test still read and write the domain structs.

type loanSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	LoanID         string         `gorm:"size:32;column:loan_id"`
	ClientID       string         `gorm:"size:32;column:client_id"`
	Principal      string         `gorm:"column:principal"`
	AnnualRate     string         `gorm:"column:annual_rate"`
	Method         string         `gorm:"column:method"`
	TermMonths     int            `gorm:"column:term_months"`
	Installment    string         `gorm:"column:installment"`
	Type           string         `gorm:"type:text;column:type"`
	State          string         `gorm:"type:text;column:state"`
	RequestedAt    time.Time      `gorm:"column:requested_at"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at"`
	DueDate        *time.Time     `gorm:"column:due_date"`
	StateUpdatedAt time.Time      `gorm:"column:state_updated_at"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy      string         `gorm:"column:deleted_by"`
}

func (loanSQLite) TableName() string { return "loans" }

type installmentSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id"`
	LoanID     uint64     `gorm:"column:loan_id"`
	Sequence   int        `gorm:"column:sequence"`
	DueDate    time.Time  `gorm:"column:due_date"`
	Amount     string     `gorm:"column:amount"`
	AmountPaid string     `gorm:"column:amount_paid;default:0"`
	State      string     `gorm:"type:text;column:state"`
	PaidAt     *time.Time `gorm:"column:paid_at"`
	LateFee    string     `gorm:"column:late_fee;default:0"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type paymentRecordSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	PaymentID string    `gorm:"size:32;column:payment_id"`
	LoanID    uint64    `gorm:"column:loan_id"`
	ClientID  string    `gorm:"size:32;column:client_id"`
	JournalID *uint64   `gorm:"column:journal_id"`
	Amount    string    `gorm:"column:amount"`
	Method    string    `gorm:"type:text;column:method"`
	Reference string    `gorm:"column:reference"`
	Note      string    `gorm:"column:note"`
	PaidAt    time.Time `gorm:"column:paid_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (paymentRecordSQLite) TableName() string { return "payment_records" }

type paymentDetailSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	PaymentRecordID uint64    `gorm:"column:payment_record_id"`
	InstallmentID   uint64    `gorm:"column:installment_id"`
	AmountApplied   string    `gorm:"column:amount_applied"`
	AppliedAt       time.Time `gorm:"column:applied_at"`
}

func (paymentDetailSQLite) TableName() string { return "payment_allocation_details" }

type configSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	ConfigID       string    `gorm:"size:32;column:config_id"`
	Name           string    `gorm:"column:name"`
	Description    string    `gorm:"column:description"`
	AnnualRate     string    `gorm:"column:annual_rate"`
	Method         string    `gorm:"column:method"`
	DefaultPeriods int       `gorm:"column:default_periods"`
	MinAmount      string    `gorm:"column:min_amount"`
	MaxAmount      string    `gorm:"column:max_amount"`
	MinPeriods     int       `gorm:"column:min_periods"`
	MaxPeriods     int       `gorm:"column:max_periods"`
	OpeningFeePct  string    `gorm:"column:opening_fee_pct;default:0"`
	AdminFee       string    `gorm:"column:admin_fee;default:0"`
	ExtraPayments  bool      `gorm:"column:extra_payments"`
	Active         bool      `gorm:"column:active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (configSQLite) TableName() string { return "credit_configs" }

type clientSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	ClientID    string         `gorm:"size:32;column:client_id"`
	FirstName   string         `gorm:"column:first_name"`
	LastName    string         `gorm:"column:last_name"`
	NationalID  string         `gorm:"column:national_id"`
	Phone       string         `gorm:"column:phone"`
	Email       string         `gorm:"column:email"`
	Address     string         `gorm:"column:address"`
	BirthDate   *time.Time     `gorm:"column:birth_date"`
	State       string         `gorm:"type:text;column:state"`
	CreditScore int            `gorm:"column:credit_score"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (clientSQLite) TableName() string { return "clients" }

type journalSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	Code        string    `gorm:"column:code"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Active      bool      `gorm:"column:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (journalSQLite) TableName() string { return "journals" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe shadow schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&loanSQLite{},
		&installmentSQLite{},
		&paymentRecordSQLite{},
		&paymentDetailSQLite{},
		&configSQLite{},
		&clientSQLite{},
		&journalSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
