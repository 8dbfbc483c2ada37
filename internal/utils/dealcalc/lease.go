package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LeasePayment is the result of a lease calculation.
type LeasePayment struct {
	Payment       decimal.Decimal
	ResidualValue decimal.Decimal
	Depreciation  decimal.Decimal
	RentCharge    decimal.Decimal
}

// ComputeLeasePayment prices a lease with the residual-based approximation
// used on the deal desk: depreciation + (capCost + residual) × monthly rate.
// rate is an APR percent unless isMoneyFactor is set, in which case it is
// used directly as the monthly rate. Tax on the payment is not modeled.
func ComputeLeasePayment(capCost, residualPercent, rate decimal.Decimal, isMoneyFactor bool, termMonths int) (LeasePayment, error) {
	if capCost.IsNegative() {
		return LeasePayment{}, fmt.Errorf("%w: cap cost cannot be negative (got %s)", apperrors.ErrInvalidInput, capCost)
	}
	if termMonths < 1 {
		return LeasePayment{}, fmt.Errorf("%w: lease term must be at least 1 month (got %d)", apperrors.ErrInvalidInput, termMonths)
	}
	if rate.IsNegative() {
		return LeasePayment{}, fmt.Errorf("%w: lease rate cannot be negative (got %s)", apperrors.ErrInvalidInput, rate)
	}
	if residualPercent.IsNegative() || residualPercent.GreaterThan(hundred) {
		return LeasePayment{}, fmt.Errorf("%w: residual percent must be between 0 and 100 (got %s)", apperrors.ErrInvalidInput, residualPercent)
	}

	monthlyRate := rate
	if !isMoneyFactor {
		monthlyRate = rate.Div(leaseDivisor)
	}

	residual := capCost.Mul(residualPercent).Div(hundred)
	depreciation := capCost.Sub(residual).Div(decimal.NewFromInt(int64(termMonths)))
	rent := capCost.Add(residual).Mul(monthlyRate)

	return LeasePayment{
		Payment:       roundCents(depreciation.Add(rent)),
		ResidualValue: roundCents(residual),
		Depreciation:  roundCents(depreciation),
		RentCharge:    roundCents(rent),
	}, nil
}
