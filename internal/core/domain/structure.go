package domain

import "github.com/shopspring/decimal"

// DealStructure is the money roll-up of one DealInputs snapshot.
type DealStructure struct {
	TaxableBase            decimal.Decimal `json:"taxableBase"`
	SalesTax               decimal.Decimal `json:"salesTax"`
	SelectedProductsCost   decimal.Decimal `json:"selectedProductsCost"`
	SelectedProductsRetail decimal.Decimal `json:"selectedProductsRetail"`
	TotalFees              decimal.Decimal `json:"totalFees"`
	TradeEquity            decimal.Decimal `json:"tradeEquity"` // Allowance minus payoff, may be negative
	FinanceAmount          decimal.Decimal `json:"financeAmount"`
	Warnings               []Warning       `json:"warnings,omitempty"`
}

// HasWarning reports whether the structure carries the given warning.
func (s DealStructure) HasWarning(code WarningCode) bool {
	for _, w := range s.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
