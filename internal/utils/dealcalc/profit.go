package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyzeProfit rolls up front-end, back-end, holdback and incentive profit.
// The margin is rounded to two places and is zero for a zero sale price,
// which is the placeholder state before a vehicle is chosen.
func AnalyzeProfit(salePrice, vehicleCost decimal.Decimal, products []domain.FiProductLine, holdback, incentives decimal.Decimal) (domain.ProfitBreakdown, error) {
	if salePrice.IsNegative() {
		return domain.ProfitBreakdown{}, fmt.Errorf("%w: sale price cannot be negative", apperrors.ErrInvalidInput)
	}
	if vehicleCost.IsNegative() {
		return domain.ProfitBreakdown{}, fmt.Errorf("%w: vehicle cost cannot be negative", apperrors.ErrInvalidInput)
	}

	frontEnd := salePrice.Sub(vehicleCost)
	backEnd := decimal.Zero
	for _, p := range products {
		if p.Selected {
			backEnd = backEnd.Add(p.Markup)
		}
	}
	total := frontEnd.Add(backEnd).Add(holdback).Add(incentives)

	margin := decimal.Zero
	if !salePrice.IsZero() {
		margin = total.Div(salePrice).Mul(hundred).Round(centPlaces)
	}

	return domain.ProfitBreakdown{
		FrontEnd:            frontEnd,
		BackEnd:             backEnd,
		Holdback:            holdback,
		Incentives:          incentives,
		TotalProfit:         total,
		ProfitMarginPercent: margin,
	}, nil
}
