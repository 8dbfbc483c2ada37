// Package dealcalc holds the deal structuring engine: amortization, lease
// payments, deal structure, scenario generation and profit roll-up.
// Every function is pure and safe for concurrent use.
package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

var (
	one          = decimal.NewFromInt(1)
	twelve       = decimal.NewFromInt(12)
	hundred      = decimal.NewFromInt(100)
	leaseDivisor = decimal.NewFromInt(2400)
)

// centPlaces is the scale payments and money results are rounded to.
const centPlaces = 2

// roundCents rounds half away from zero to the cent. Results of the engine
// are never negative, so this is round half up.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(centPlaces)
}

// MonthlyRate converts an APR percent into a monthly fractional rate.
func MonthlyRate(aprPercent decimal.Decimal) decimal.Decimal {
	return aprPercent.Div(hundred).Div(twelve)
}

// ComputeMonthlyPayment returns the fixed monthly payment that amortizes
// principal over termMonths at aprPercent, rounded to the cent.
//
// At 0% APR the payment is principal/termMonths rounded half up, so
// payment × termMonths can fall short of principal by up to termMonths/2
// cents (100 over 3 months is 33.33, totalling 99.99). No final-payment
// adjustment is made.
func ComputeMonthlyPayment(principal, aprPercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: principal cannot be negative (got %s)", apperrors.ErrInvalidInput, principal)
	}
	if termMonths < 1 {
		return decimal.Zero, fmt.Errorf("%w: term must be at least 1 month (got %d)", apperrors.ErrInvalidInput, termMonths)
	}
	if aprPercent.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: APR cannot be negative (got %s)", apperrors.ErrInvalidInput, aprPercent)
	}

	n := decimal.NewFromInt(int64(termMonths))
	r := MonthlyRate(aprPercent)
	if r.IsZero() {
		return roundCents(principal.Div(n)), nil
	}

	growth := one.Add(r).Pow(n)
	payment := principal.Mul(r).Mul(growth).Div(growth.Sub(one))
	return roundCents(payment), nil
}

// TotalOfPayments is payment × termMonths.
func TotalOfPayments(payment decimal.Decimal, termMonths int) decimal.Decimal {
	return payment.Mul(decimal.NewFromInt(int64(termMonths)))
}
