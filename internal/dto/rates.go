package dto

import "github.com/shopspring/decimal"

// LenderQuoteRequest asks a lender to price a structure.
type LenderQuoteRequest struct {
	CreditScore   int             `json:"creditScore" binding:"required,min=300,max=850"`
	FinanceAmount decimal.Decimal `json:"financeAmount" binding:"nonnegdecimal"`
	VehiclePrice  decimal.Decimal `json:"vehiclePrice" binding:"nonnegdecimal"`
	TermMonths    int             `json:"termMonths" binding:"required,min=1,max=120"`
}

// TaxRateResponse is the sales tax rate for a state.
type TaxRateResponse struct {
	State        string          `json:"state"`
	SalesTaxRate decimal.Decimal `json:"salesTaxRate"`
}
