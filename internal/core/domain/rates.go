package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CreditTier is a lender pricing band derived from a customer credit score.
type CreditTier string

const (
	TierExcellent CreditTier = "excellent"
	TierGood      CreditTier = "good"
	TierFair      CreditTier = "fair"
	TierPoor      CreditTier = "poor"
)

// CreditTierForScore maps a credit score to its pricing tier.
func CreditTierForScore(score int) CreditTier {
	switch {
	case score >= 750:
		return TierExcellent
	case score >= 680:
		return TierGood
	case score >= 620:
		return TierFair
	default:
		return TierPoor
	}
}

// LenderType classifies a lender.
type LenderType string

const (
	LenderBank        LenderType = "bank"
	LenderCreditUnion LenderType = "credit_union"
	LenderCaptive     LenderType = "captive"
	LenderSubprime    LenderType = "subprime"
)

// Lender is a finance source with a buy-rate sheet per credit tier.
type Lender struct {
	LenderID string                         `json:"lenderID"`
	Name     string                         `json:"name"`
	Type     LenderType                     `json:"type"`
	Rates    map[CreditTier]decimal.Decimal `json:"rates"` // APR percent per tier
	MaxTerm  int                            `json:"maxTerm"`
	MaxLTV   decimal.Decimal                `json:"maxLtv"` // Percent of vehicle price
}

// RateFor returns the lender's APR for a credit score.
func (l Lender) RateFor(score int) (decimal.Decimal, CreditTier) {
	tier := CreditTierForScore(score)
	return l.Rates[tier], tier
}

// LenderQuote is a lender's decision on a specific structure.
type LenderQuote struct {
	LenderID       string          `json:"lenderID"`
	LenderName     string          `json:"lenderName"`
	CreditTier     CreditTier      `json:"creditTier"`
	APRPercent     decimal.Decimal `json:"aprPercent"`
	TermMonths     int             `json:"termMonths"`
	FinanceAmount  decimal.Decimal `json:"financeAmount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	LTVPercent     decimal.Decimal `json:"ltvPercent"`
	Approved       bool            `json:"approved"`
	Reasons        []string        `json:"reasons,omitempty"`
}

func rates(excellent, good, fair, poor string) map[CreditTier]decimal.Decimal {
	return map[CreditTier]decimal.Decimal{
		TierExcellent: decimal.RequireFromString(excellent),
		TierGood:      decimal.RequireFromString(good),
		TierFair:      decimal.RequireFromString(fair),
		TierPoor:      decimal.RequireFromString(poor),
	}
}

// DefaultLenders returns the built-in rate sheets.
func DefaultLenders() []Lender {
	return []Lender{
		{LenderID: "chase-auto", Name: "Chase Auto Finance", Type: LenderBank,
			Rates: rates("4.9", "6.2", "8.9", "12.5"), MaxTerm: 72, MaxLTV: decimal.NewFromInt(110)},
		{LenderID: "toyota-financial", Name: "Toyota Financial Services", Type: LenderCaptive,
			Rates: rates("3.9", "5.5", "7.8", "10.9"), MaxTerm: 84, MaxLTV: decimal.NewFromInt(120)},
		{LenderID: "credit-union", Name: "Local Credit Union", Type: LenderCreditUnion,
			Rates: rates("4.2", "5.8", "8.2", "11.8"), MaxTerm: 75, MaxLTV: decimal.NewFromInt(105)},
		{LenderID: "santander", Name: "Santander Consumer", Type: LenderSubprime,
			Rates: rates("6.9", "9.2", "13.5", "18.9"), MaxTerm: 84, MaxLTV: decimal.NewFromInt(130)},
	}
}

// FeeSchedule holds the state tax table and the standard dealer fees.
type FeeSchedule struct {
	StateTaxRates  map[string]decimal.Decimal `json:"stateTaxRates"` // Percent
	DefaultTaxRate decimal.Decimal            `json:"defaultTaxRate"`
	DocFee         decimal.Decimal            `json:"docFee"`
	TitleFee       decimal.Decimal            `json:"titleFee"`
	LicenseFee     decimal.Decimal            `json:"licenseFee"`
}

// TaxRateFor returns the sales tax percent for a two-letter state code,
// falling back to the default rate for unknown states.
func (f FeeSchedule) TaxRateFor(state string) decimal.Decimal {
	if rate, ok := f.StateTaxRates[strings.ToUpper(strings.TrimSpace(state))]; ok {
		return rate
	}
	return f.DefaultTaxRate
}

// DefaultFeeSchedule returns the built-in fee schedule.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		StateTaxRates: map[string]decimal.Decimal{
			"CA": decimal.RequireFromString("8.25"),
			"NY": decimal.NewFromInt(8),
			"TX": decimal.RequireFromString("6.25"),
			"FL": decimal.NewFromInt(6),
			"WA": decimal.RequireFromString("6.5"),
			"OR": decimal.Zero,
			"MT": decimal.Zero,
			"NH": decimal.Zero,
			"DE": decimal.Zero,
		},
		DefaultTaxRate: decimal.NewFromInt(7),
		DocFee:         decimal.NewFromInt(299),
		TitleFee:       decimal.NewFromInt(50),
		LicenseFee:     decimal.NewFromInt(75),
	}
}

// FiProduct is a catalog entry for an F&I product.
type FiProduct struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Cost        decimal.Decimal `json:"cost"`
	RetailPrice decimal.Decimal `json:"retailPrice"`
}

// Line converts a catalog product into an unselected deal line.
func (p FiProduct) Line() FiProductLine {
	return FiProductLine{
		ProductID: p.ProductID,
		Name:      p.Name,
		Cost:      p.Cost,
		Markup:    p.RetailPrice.Sub(p.Cost),
	}
}

// DefaultFiProducts returns the standard F&I menu.
func DefaultFiProducts() []FiProduct {
	return []FiProduct{
		{ProductID: "extended_warranty", Name: "Extended Warranty", Category: "warranty",
			Cost: decimal.NewFromInt(1247), RetailPrice: decimal.NewFromInt(2495)},
		{ProductID: "gap_coverage", Name: "GAP Coverage", Category: "gap",
			Cost: decimal.NewFromInt(199), RetailPrice: decimal.NewFromInt(795)},
		{ProductID: "tire_wheel", Name: "Tire & Wheel Protection", Category: "tire_wheel",
			Cost: decimal.NewFromInt(295), RetailPrice: decimal.NewFromInt(1295)},
		{ProductID: "maintenance_plan", Name: "Maintenance Plan", Category: "maintenance",
			Cost: decimal.NewFromInt(695), RetailPrice: decimal.NewFromInt(1895)},
		{ProductID: "paint_protection", Name: "Paint Protection", Category: "protection",
			Cost: decimal.NewFromInt(295), RetailPrice: decimal.NewFromInt(1495)},
	}
}
