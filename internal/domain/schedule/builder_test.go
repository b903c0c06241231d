package schedule

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule_ThreeMonths(t *testing.T) {
	// 1,000 at 12% for 3 months with a fixed 340.29 installment.
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	rows, err := BuildSchedule(d("1000"), d("12.00"), 3, d("340.29"), start)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), rows[0].DueDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rows[1].DueDate)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), rows[2].DueDate)

	// First row: interest = 1000 * 0.01 = 10.00
	assert.True(t, rows[0].Interest.Equal(d("10.00")), "interest = %s", rows[0].Interest)
	assert.True(t, rows[0].Principal.Equal(d("330.29")), "principal = %s", rows[0].Principal)

	last := rows[2]
	assert.True(t, last.ClosingBalance.IsZero(), "closing = %s", last.ClosingBalance)
	// Last row settles the remaining balance exactly.
	assert.True(t, last.Principal.Equal(last.OpeningBalance),
		"last principal %s != opening %s", last.Principal, last.OpeningBalance)
}

func TestBuildSchedule_PrincipalSumsToLoanAmount(t *testing.T) {
	principal := d("10000")
	payment, err := ComputeInstallment(principal, d("15.00"), 12, MethodFrench)
	require.NoError(t, err)

	rows, err := BuildSchedule(principal, d("15.00"), 12, payment, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 12)

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Principal)
	}
	assert.True(t, total.Sub(principal).Abs().LessThanOrEqual(d("0.01")),
		"principal components sum to %s, want ~%s", total, principal)
	assert.True(t, rows[11].ClosingBalance.IsZero())
}

func TestBuildSchedule_DatesAreConsecutiveMonthStarts(t *testing.T) {
	rows, err := BuildSchedule(d("6000"), d("10.00"), 24, d("276.87"), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 24)

	prev := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, prev, rows[0].DueDate)
	for _, r := range rows[1:] {
		want := time.Date(prev.Year(), prev.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, r.DueDate, "row %d", r.Sequence)
		assert.Equal(t, 1, r.DueDate.Day())
		prev = r.DueDate
	}
}

func TestBuildSchedule_StopsEarlyWhenBalanceHitsZero(t *testing.T) {
	// Oversized installment clears the balance on the first row.
	rows, err := BuildSchedule(d("500"), d("12.00"), 6, d("1000"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].ClosingBalance.IsZero())
}

func TestBuildSchedule_ZeroRate(t *testing.T) {
	rows, err := BuildSchedule(d("1200"), decimal.Zero, 12, d("100"), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 12)
	for _, r := range rows {
		assert.True(t, r.Interest.IsZero(), "row %d interest = %s", r.Sequence, r.Interest)
	}
	assert.True(t, rows[11].ClosingBalance.IsZero())
}

func TestBuildSchedule_InvalidInput(t *testing.T) {
	_, err := BuildSchedule(d("1000"), d("12"), 0, d("100"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BuildSchedule(decimal.Zero, d("12"), 12, d("100"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
