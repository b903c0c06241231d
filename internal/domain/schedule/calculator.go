package schedule

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput  = errors.New("principal and periods must be positive")
	ErrUnknownMethod = errors.New("unknown calculation method")
)

// Method selects the installment formula. The set is closed: adding a
// method means extending the switch in ComputeInstallment.
type Method string

const (
	MethodStandard Method = "standard"
	MethodFrench   Method = "french"
	MethodGerman   Method = "german"
	MethodAmerican Method = "american"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodStandard, MethodFrench, MethodGerman, MethodAmerican:
		return Method(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

var hundred = decimal.NewFromInt(100)

// ComputeInstallment returns the fixed periodic payment for a loan.
// annualRate is a percentage (15.00 means 15%). The result is rounded to
// 2 fractional digits, half away from zero, at the final step only.
func ComputeInstallment(principal, annualRate decimal.Decimal, periods int, method Method) (decimal.Decimal, error) {
	if periods <= 0 || !principal.IsPositive() {
		return decimal.Zero, ErrInvalidInput
	}

	switch method {
	case MethodFrench:
		return frenchInstallment(principal, annualRate, periods), nil
	case MethodStandard, MethodGerman, MethodAmerican:
		// german/american have no distinct formula here; they follow the
		// flat standard calculation until product defines them.
		return standardInstallment(principal, annualRate, periods), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// standardInstallment: flat interest, no compounding.
// payment = (principal + principal*rate/100) / periods
func standardInstallment(principal, annualRate decimal.Decimal, periods int) decimal.Decimal {
	total := principal.Add(principal.Mul(annualRate).Div(hundred))
	return total.DivRound(decimal.NewFromInt(int64(periods)), 2)
}

// frenchInstallment: fixed-payment annuity.
// payment = P * [i*(1+i)^n] / [(1+i)^n - 1], i = annual/100/12.
// Intermediate math in float64, single rounding at the end.
func frenchInstallment(principal, annualRate decimal.Decimal, periods int) decimal.Decimal {
	p, _ := principal.Float64()
	rate, _ := annualRate.Float64()

	monthly := rate / 100 / 12
	if monthly == 0 {
		return principal.DivRound(decimal.NewFromInt(int64(periods)), 2)
	}

	pow := math.Pow(1+monthly, float64(periods))
	payment := p * (monthly * pow) / (pow - 1)
	return decimal.NewFromFloat(payment).Round(2)
}
