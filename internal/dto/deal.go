package dto

import (
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FiProductLineRequest is one F&I product line on a deal.
type FiProductLineRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost" binding:"nonnegdecimal"`
	Markup    decimal.Decimal `json:"markup" binding:"nonnegdecimal"`
	Selected  bool            `json:"selected"`
}

// DealInputsRequest carries the raw negotiation state of a deal.
// When SalesTaxRate is omitted the rate is looked up from State.
type DealInputsRequest struct {
	VehiclePrice   decimal.Decimal        `json:"vehiclePrice" binding:"nonnegdecimal"`
	TradeAllowance decimal.Decimal        `json:"tradeAllowance" binding:"nonnegdecimal"`
	TradePayoff    decimal.Decimal        `json:"tradePayoff" binding:"nonnegdecimal"`
	CashDown       decimal.Decimal        `json:"cashDown" binding:"nonnegdecimal"`
	Rebates        decimal.Decimal        `json:"rebates" binding:"nonnegdecimal"`
	SalesTaxRate   *decimal.Decimal       `json:"salesTaxRate,omitempty"`
	State          string                 `json:"state,omitempty" binding:"omitempty,len=2,alpha"`
	DocFee         decimal.Decimal        `json:"docFee" binding:"nonnegdecimal"`
	TitleFee       decimal.Decimal        `json:"titleFee" binding:"nonnegdecimal"`
	MiscFees       decimal.Decimal        `json:"miscFees" binding:"nonnegdecimal"`
	FiProducts     []FiProductLineRequest `json:"fiProducts" binding:"omitempty,dive"`
}

// ToDomain converts the request into an immutable DealInputs snapshot using
// the already resolved sales tax rate.
func (r DealInputsRequest) ToDomain(salesTaxRate decimal.Decimal) domain.DealInputs {
	return domain.DealInputs{
		VehiclePrice:   r.VehiclePrice,
		TradeAllowance: r.TradeAllowance,
		TradePayoff:    r.TradePayoff,
		CashDown:       r.CashDown,
		Rebates:        r.Rebates,
		SalesTaxRate:   salesTaxRate,
		DocFee:         r.DocFee,
		TitleFee:       r.TitleFee,
		MiscFees:       r.MiscFees,
		FiProducts:     ToDomainFiProducts(r.FiProducts),
	}
}

// ToDomainFiProducts converts F&I product requests preserving their order.
func ToDomainFiProducts(lines []FiProductLineRequest) []domain.FiProductLine {
	products := make([]domain.FiProductLine, len(lines))
	for i, l := range lines {
		products[i] = domain.FiProductLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Cost:      l.Cost,
			Markup:    l.Markup,
			Selected:  l.Selected,
		}
	}
	return products
}

// ToDealInputsRequest converts a stored snapshot back into request form.
func ToDealInputsRequest(in domain.DealInputs) DealInputsRequest {
	rate := in.SalesTaxRate
	lines := make([]FiProductLineRequest, len(in.FiProducts))
	for i, p := range in.FiProducts {
		lines[i] = FiProductLineRequest{ProductID: p.ProductID, Name: p.Name, Cost: p.Cost, Markup: p.Markup, Selected: p.Selected}
	}
	return DealInputsRequest{
		VehiclePrice:   in.VehiclePrice,
		TradeAllowance: in.TradeAllowance,
		TradePayoff:    in.TradePayoff,
		CashDown:       in.CashDown,
		Rebates:        in.Rebates,
		SalesTaxRate:   &rate,
		DocFee:         in.DocFee,
		TitleFee:       in.TitleFee,
		MiscFees:       in.MiscFees,
		FiProducts:     lines,
	}
}

// FinanceTermsRequest is one candidate finance offer.
type FinanceTermsRequest struct {
	APRPercent decimal.Decimal `json:"aprPercent" binding:"nonnegdecimal"`
	TermMonths int             `json:"termMonths" binding:"required,min=1,max=120"`
}

// LeaseTermsRequest is one candidate lease offer.
type LeaseTermsRequest struct {
	Rate            decimal.Decimal `json:"rate" binding:"nonnegdecimal"`
	RateKind        string          `json:"rateKind" binding:"omitempty,oneof=APR MONEY_FACTOR"`
	TermMonths      int             `json:"termMonths" binding:"required,min=1,max=120"`
	ResidualPercent decimal.Decimal `json:"residualPercent" binding:"nonnegdecimal"`
	AnnualMileage   int             `json:"annualMileage" binding:"min=0"`
}

// ToDomainFinanceTerms converts finance term requests preserving their order.
func ToDomainFinanceTerms(reqs []FinanceTermsRequest) []domain.FinanceTerms {
	terms := make([]domain.FinanceTerms, len(reqs))
	for i, r := range reqs {
		terms[i] = domain.FinanceTerms{APRPercent: r.APRPercent, TermMonths: r.TermMonths}
	}
	return terms
}

// ToDomainLeaseTerms converts lease term requests preserving their order.
func ToDomainLeaseTerms(reqs []LeaseTermsRequest) []domain.LeaseTerms {
	terms := make([]domain.LeaseTerms, len(reqs))
	for i, r := range reqs {
		terms[i] = domain.LeaseTerms{
			Rate:            r.Rate,
			RateKind:        domain.LeaseRateKind(r.RateKind),
			TermMonths:      r.TermMonths,
			ResidualPercent: r.ResidualPercent,
			AnnualMileage:   r.AnnualMileage,
		}
	}
	return terms
}

// GenerateScenariosRequest asks for a comparable scenario set.
type GenerateScenariosRequest struct {
	Inputs       DealInputsRequest     `json:"inputs"`
	FinanceTerms []FinanceTermsRequest `json:"financeTerms" binding:"omitempty,dive"`
	LeaseTerms   []LeaseTermsRequest   `json:"leaseTerms" binding:"omitempty,dive"`
}

// ScenariosResponse is the computed scenario set with its deal structure.
type ScenariosResponse struct {
	Structure domain.DealStructure `json:"structure"`
	Scenarios []domain.Scenario    `json:"scenarios"`
	Cached    bool                 `json:"cached"`
}

// ProfitRequest describes a finalized deal for profit analysis.
type ProfitRequest struct {
	SalePrice   decimal.Decimal        `json:"salePrice" binding:"nonnegdecimal"`
	VehicleCost decimal.Decimal        `json:"vehicleCost" binding:"nonnegdecimal"`
	FiProducts  []FiProductLineRequest `json:"fiProducts" binding:"omitempty,dive"`
	Holdback    decimal.Decimal        `json:"holdback"`
	Incentives  decimal.Decimal        `json:"incentives"`
}

// PaymentRequest asks for a single amortization quote.
type PaymentRequest struct {
	Principal  decimal.Decimal `json:"principal" binding:"nonnegdecimal"`
	APRPercent decimal.Decimal `json:"aprPercent" binding:"nonnegdecimal"`
	TermMonths int             `json:"termMonths" binding:"required,min=1,max=120"`
}

// PaymentResponse is a single amortization quote.
type PaymentResponse struct {
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	TotalOfPayments decimal.Decimal `json:"totalOfPayments"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
}

// GrossRequest describes a closed deal for gross and recap posting.
type GrossRequest struct {
	DealNumber     string                 `json:"dealNumber"`
	VIN            string                 `json:"vin"`
	TradeVIN       string                 `json:"tradeVin"`
	BuyerName      string                 `json:"buyerName"`
	Category       string                 `json:"category" binding:"omitempty,oneof=new used certified"`
	SalePrice      decimal.Decimal        `json:"salePrice" binding:"nonnegdecimal"`
	VehicleCost    decimal.Decimal        `json:"vehicleCost" binding:"nonnegdecimal"`
	TradeAllowance decimal.Decimal        `json:"tradeAllowance" binding:"nonnegdecimal"`
	TradePayoff    decimal.Decimal        `json:"tradePayoff" binding:"nonnegdecimal"`
	CashDown       decimal.Decimal        `json:"cashDown" binding:"nonnegdecimal"`
	SalesTax       decimal.Decimal        `json:"salesTax" binding:"nonnegdecimal"`
	DocFee         decimal.Decimal        `json:"docFee" binding:"nonnegdecimal"`
	FinanceAmount  decimal.Decimal        `json:"financeAmount" binding:"nonnegdecimal"`
	TermMonths     int                    `json:"termMonths" binding:"min=0,max=120"`
	FiProducts     []FiProductLineRequest `json:"fiProducts" binding:"omitempty,dive"`
}

// GrossResponse is the deal gross and its recap posting.
type GrossResponse struct {
	Gross        domain.GrossCalculation  `json:"gross"`
	Entries      []domain.AccountingEntry `json:"entries"`
	TotalDebits  decimal.Decimal          `json:"totalDebits"`
	TotalCredits decimal.Decimal          `json:"totalCredits"`
}
