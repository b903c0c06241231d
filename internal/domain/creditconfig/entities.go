package creditconfig

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"microloan-backend/internal/domain/schedule"
)

var (
	ErrNotFound      = errors.New("credit configuration not found")
	ErrNoActive      = errors.New("no active credit configuration")
	ErrInvalidBounds = errors.New("invalid credit configuration bounds")
)

// Config is the lending policy applied to new loans: rate, calculation
// method, amount/term limits and fees. At most one config is active at a
// time; loans snapshot rate and method at approval, so editing a config
// never rewrites an existing schedule.
type Config struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ConfigID string `gorm:"column:config_id;type:char(32);not null;uniqueIndex:ux_credit_configs_config_id" json:"config_id"`

	Name        string `gorm:"size:200" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	AnnualRate decimal.Decimal `gorm:"type:decimal(5,2)" json:"annual_rate"`
	Method     schedule.Method `gorm:"size:20;default:'standard'" json:"method"`

	DefaultPeriods int             `gorm:"default:12" json:"default_periods"`
	MinAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"min_amount"`
	MaxAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"max_amount"`
	MinPeriods     int             `gorm:"default:1" json:"min_periods"`
	MaxPeriods     int             `gorm:"default:60" json:"max_periods"`

	OpeningFeePct decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"opening_fee_pct"`
	AdminFee      decimal.Decimal `gorm:"type:decimal(8,2);default:0" json:"admin_fee"`
	ExtraPayments bool            `gorm:"default:true" json:"extra_payments"`

	Active bool `gorm:"default:false;index" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Config) TableName() string { return "credit_configs" }

// Validate enforces bound consistency before persistence.
func (c *Config) Validate() error {
	if c.MinAmount.GreaterThanOrEqual(c.MaxAmount) {
		return fmt.Errorf("%w: min amount %s must be below max amount %s", ErrInvalidBounds, c.MinAmount, c.MaxAmount)
	}
	if c.MinPeriods >= c.MaxPeriods {
		return fmt.Errorf("%w: min periods %d must be below max periods %d", ErrInvalidBounds, c.MinPeriods, c.MaxPeriods)
	}
	if c.DefaultPeriods < c.MinPeriods || c.DefaultPeriods > c.MaxPeriods {
		return fmt.Errorf("%w: default periods %d outside [%d,%d]", ErrInvalidBounds, c.DefaultPeriods, c.MinPeriods, c.MaxPeriods)
	}
	if c.AnnualRate.IsNegative() || c.AnnualRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: annual rate %s outside [0,100]", ErrInvalidBounds, c.AnnualRate)
	}
	return nil
}

// ValidateAmount checks min <= amount <= max, inclusive.
func (c *Config) ValidateAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(c.MinAmount) && amount.LessThanOrEqual(c.MaxAmount)
}

// ValidatePeriods checks min <= n <= max, inclusive.
func (c *Config) ValidatePeriods(n int) bool {
	return n >= c.MinPeriods && n <= c.MaxPeriods
}

// MonthlyRate is the display figure annual/12. The french method does
// its own compounding; this is not that rate.
func (c *Config) MonthlyRate() decimal.Decimal {
	return c.AnnualRate.Div(decimal.NewFromInt(12))
}
