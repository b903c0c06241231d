package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Row is one line of an amortization table. Money fields are rounded to
// 2 fractional digits for presentation; the builder carries unrounded
// balances between iterations so rounding never accumulates.
type Row struct {
	Sequence             int             `json:"sequence"`
	DueDate              time.Time       `json:"due_date"`
	OpeningBalance       decimal.Decimal `json:"opening_balance"`
	ScheduledInstallment decimal.Decimal `json:"scheduled_installment"`
	ActualInstallment    decimal.Decimal `json:"actual_installment"`
	Principal            decimal.Decimal `json:"principal"`
	Interest             decimal.Decimal `json:"interest"`
	ClosingBalance       decimal.Decimal `json:"closing_balance"`
}

// BuildSchedule produces the full installment schedule by iterative
// balance reduction. The last row absorbs rounding drift: its principal
// component is the remaining balance exactly, so the closing balance of
// the final row is always zero. Due dates land on the first day of each
// month following start, regardless of start's day-of-month.
func BuildSchedule(principal, annualRate decimal.Decimal, periods int, fixedInstallment decimal.Decimal, start time.Time) ([]Row, error) {
	if periods <= 0 || !principal.IsPositive() {
		return nil, ErrInvalidInput
	}

	monthlyRate := annualRate.Div(hundred).Div(twelve)
	balance := principal
	due := start

	rows := make([]Row, 0, periods)
	for seq := 1; seq <= periods; seq++ {
		interest := balance.Mul(monthlyRate)

		principalPart := fixedInstallment.Sub(interest)
		actual := fixedInstallment
		if seq == periods {
			principalPart = balance
			actual = principalPart.Add(interest)
		}

		newBalance := balance.Sub(principalPart)
		if newBalance.IsNegative() {
			newBalance = decimal.Zero
		}

		due = nextMonthStart(due)
		rows = append(rows, Row{
			Sequence:             seq,
			DueDate:              due,
			OpeningBalance:       balance.Round(2),
			ScheduledInstallment: fixedInstallment.Round(2),
			ActualInstallment:    actual.Round(2),
			Principal:            principalPart.Round(2),
			Interest:             interest.Round(2),
			ClosingBalance:       newBalance.Round(2),
		})

		balance = newBalance
		if !balance.IsPositive() {
			break
		}
	}
	return rows, nil
}

// nextMonthStart returns the first day of the month after t.
func nextMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
