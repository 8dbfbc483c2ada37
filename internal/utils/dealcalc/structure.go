package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxBasis selects what the sales tax is levied on.
type TaxBasis string

const (
	// TaxBasisPriceLessTrade taxes vehicle price minus trade allowance.
	TaxBasisPriceLessTrade TaxBasis = "PRICE_LESS_TRADE"
	// TaxBasisPriceFeesLessTrade also taxes doc, title and misc fees.
	TaxBasisPriceFeesLessTrade TaxBasis = "PRICE_FEES_LESS_TRADE"
)

// ParseTaxBasis returns the tax basis for a configuration value. Empty selects
// the default basis.
func ParseTaxBasis(s string) (TaxBasis, error) {
	switch TaxBasis(s) {
	case "", TaxBasisPriceLessTrade:
		return TaxBasisPriceLessTrade, nil
	case TaxBasisPriceFeesLessTrade:
		return TaxBasisPriceFeesLessTrade, nil
	default:
		return "", fmt.Errorf("unknown tax basis %q", s)
	}
}

// StructureOptions tunes BuildStructureWithOptions.
type StructureOptions struct {
	TaxBasis TaxBasis
}

// BuildStructure computes taxable base, sales tax, product totals and the
// finance amount, taxing price minus trade.
func BuildStructure(inputs domain.DealInputs) (domain.DealStructure, error) {
	return BuildStructureWithOptions(inputs, StructureOptions{TaxBasis: TaxBasisPriceLessTrade})
}

// BuildStructureWithOptions is BuildStructure with a configurable tax basis.
// A finance amount that would be negative is clamped to zero and reported
// with a NEGATIVE_FINANCE_AMOUNT warning.
func BuildStructureWithOptions(inputs domain.DealInputs, opts StructureOptions) (domain.DealStructure, error) {
	if err := inputs.Validate(); err != nil {
		return domain.DealStructure{}, err
	}

	fees := inputs.TotalFees()
	taxableBase := inputs.VehiclePrice.Sub(inputs.TradeAllowance)
	if opts.TaxBasis == TaxBasisPriceFeesLessTrade {
		taxableBase = taxableBase.Add(fees)
	}
	salesTax := decimal.Zero
	if taxableBase.IsPositive() {
		salesTax = roundCents(taxableBase.Mul(inputs.SalesTaxRate).Div(hundred))
	}

	productsCost := decimal.Zero
	productsRetail := decimal.Zero
	for _, p := range inputs.SelectedProducts() {
		productsCost = productsCost.Add(p.Cost)
		productsRetail = productsRetail.Add(p.RetailPrice())
	}

	financeAmount := inputs.VehiclePrice.
		Sub(inputs.TradeAllowance).
		Sub(inputs.CashDown).
		Sub(inputs.Rebates).
		Add(salesTax).
		Add(fees).
		Add(productsRetail)

	var warnings []domain.Warning
	if financeAmount.IsNegative() {
		warnings = append(warnings, domain.Warning{
			Code:    domain.WarningNegativeFinanceAmount,
			Message: fmt.Sprintf("credits exceed amount due by %s; no loan needed", financeAmount.Neg().StringFixed(centPlaces)),
		})
		financeAmount = decimal.Zero
	}

	return domain.DealStructure{
		TaxableBase:            taxableBase,
		SalesTax:               salesTax,
		SelectedProductsCost:   productsCost,
		SelectedProductsRetail: productsRetail,
		TotalFees:              fees,
		TradeEquity:            inputs.TradeAllowance.Sub(inputs.TradePayoff),
		FinanceAmount:          financeAmount,
		Warnings:               warnings,
	}, nil
}
