package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultReservePoints is the dealer's finance reserve over buy rate.
var DefaultReservePoints = decimal.NewFromInt(2)

// defaultReserveTerm is used when a deal has no term yet.
const defaultReserveTerm = 60

// GrossInputs describes a closed deal for gross calculation.
type GrossInputs struct {
	SalePrice      decimal.Decimal
	VehicleCost    decimal.Decimal
	TradeAllowance decimal.Decimal
	TradePayoff    decimal.Decimal
	FinanceAmount  decimal.Decimal
	TermMonths     int
	Category       domain.VehicleCategory
	Products       []domain.FiProductLine
}

// GrossConfig holds dealership gross policy.
type GrossConfig struct {
	ReservePoints decimal.Decimal
	PackCosts     domain.PackCosts
}

// DefaultGrossConfig returns the standard reserve points and pack schedule.
func DefaultGrossConfig() GrossConfig {
	return GrossConfig{ReservePoints: DefaultReservePoints, PackCosts: domain.DefaultPackCosts()}
}

// CalculateDealGross computes front-end gross (net of positive trade equity),
// finance reserve, product gross, pack and net gross.
func CalculateDealGross(in GrossInputs, cfg GrossConfig) (domain.GrossCalculation, error) {
	if in.TermMonths < 0 {
		return domain.GrossCalculation{}, fmt.Errorf("%w: term cannot be negative", apperrors.ErrInvalidInput)
	}
	if in.FinanceAmount.IsNegative() {
		return domain.GrossCalculation{}, fmt.Errorf("%w: finance amount cannot be negative", apperrors.ErrInvalidInput)
	}

	tradeAdjustment := decimal.Max(decimal.Zero, in.TradeAllowance.Sub(in.TradePayoff))
	frontEnd := in.SalePrice.Sub(in.VehicleCost).Sub(tradeAdjustment)

	term := in.TermMonths
	if term == 0 {
		term = defaultReserveTerm
	}
	reserve := roundCents(in.FinanceAmount.
		Mul(cfg.ReservePoints).Div(hundred).
		Mul(decimal.NewFromInt(int64(term))).Div(twelve))

	productGross := decimal.Zero
	for _, p := range in.Products {
		if p.Selected {
			productGross = productGross.Add(p.RetailPrice().Sub(p.Cost))
		}
	}

	category := in.Category
	if category == "" {
		category = domain.VehicleUsed
	}
	pack, ok := cfg.PackCosts[category]
	if !ok {
		return domain.GrossCalculation{}, fmt.Errorf("%w: unknown vehicle category %q", apperrors.ErrInvalidInput, in.Category)
	}

	return domain.GrossCalculation{
		FrontEndGross:  frontEnd,
		FinanceReserve: reserve,
		ProductGross:   productGross,
		PackCost:       pack,
		NetGross:       frontEnd.Add(reserve).Add(productGross).Sub(pack),
	}, nil
}
