package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FiProductLine is one finance & insurance product offered on a deal.
// RetailPrice is always Cost + Markup; only selected lines contribute to the
// finance amount and to back-end profit.
type FiProductLine struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`   // Dealer cost
	Markup    decimal.Decimal `json:"markup"` // Retail minus cost
	Selected  bool            `json:"selected"`
}

// RetailPrice returns the price charged to the customer for the product.
func (p FiProductLine) RetailPrice() decimal.Decimal {
	return p.Cost.Add(p.Markup)
}

// DealInputs is an immutable snapshot of a deal's negotiation state.
// The engine never mutates it; callers re-run the calculation on every change.
type DealInputs struct {
	VehiclePrice   decimal.Decimal `json:"vehiclePrice"`
	TradeAllowance decimal.Decimal `json:"tradeAllowance"`
	TradePayoff    decimal.Decimal `json:"tradePayoff"`
	CashDown       decimal.Decimal `json:"cashDown"`
	Rebates        decimal.Decimal `json:"rebates"`
	SalesTaxRate   decimal.Decimal `json:"salesTaxRate"` // Percent, 0-100
	DocFee         decimal.Decimal `json:"docFee"`
	TitleFee       decimal.Decimal `json:"titleFee"`
	MiscFees       decimal.Decimal `json:"miscFees"`
	FiProducts     []FiProductLine `json:"fiProducts"`
}

// SelectedProducts returns the selected F&I lines in their original order.
func (in DealInputs) SelectedProducts() []FiProductLine {
	selected := make([]FiProductLine, 0, len(in.FiProducts))
	for _, p := range in.FiProducts {
		if p.Selected {
			selected = append(selected, p)
		}
	}
	return selected
}

// TotalFees is the sum of doc, title and misc fees.
func (in DealInputs) TotalFees() decimal.Decimal {
	return in.DocFee.Add(in.TitleFee).Add(in.MiscFees)
}

// Validate checks every field of the snapshot and reports all violations at once.
func (in DealInputs) Validate() error {
	var problems []string

	if in.VehiclePrice.IsNegative() {
		problems = append(problems, "vehicle price cannot be negative")
	}
	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"trade allowance", in.TradeAllowance},
		{"trade payoff", in.TradePayoff},
		{"cash down", in.CashDown},
		{"rebates", in.Rebates},
		{"doc fee", in.DocFee},
		{"title fee", in.TitleFee},
		{"misc fees", in.MiscFees},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			problems = append(problems, f.name+" cannot be negative")
		}
	}
	if in.SalesTaxRate.IsNegative() || in.SalesTaxRate.GreaterThan(decimal.NewFromInt(100)) {
		problems = append(problems, "sales tax rate must be between 0 and 100")
	}

	seen := make(map[string]struct{}, len(in.FiProducts))
	for i, p := range in.FiProducts {
		label := p.ProductID
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		} else {
			if _, dup := seen[p.ProductID]; dup {
				problems = append(problems, fmt.Sprintf("F&I product %s listed more than once", p.ProductID))
			}
			seen[p.ProductID] = struct{}{}
		}
		if p.Cost.IsNegative() {
			problems = append(problems, fmt.Sprintf("F&I product %s cost cannot be negative", label))
		}
		if p.Markup.IsNegative() {
			problems = append(problems, fmt.Sprintf("F&I product %s markup cannot be negative", label))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

// FinanceTerms is one candidate retail finance offer.
type FinanceTerms struct {
	APRPercent decimal.Decimal `json:"aprPercent"`
	TermMonths int             `json:"termMonths"`
}

// Validate reports a negative APR or a term shorter than one month.
func (t FinanceTerms) Validate() error {
	if t.APRPercent.IsNegative() {
		return fmt.Errorf("%w: APR cannot be negative", apperrors.ErrInvalidInput)
	}
	if t.TermMonths < 1 {
		return fmt.Errorf("%w: term must be at least 1 month", apperrors.ErrInvalidInput)
	}
	return nil
}

// LeaseRateKind says how LeaseTerms.Rate is expressed.
type LeaseRateKind string

const (
	LeaseRateAPR         LeaseRateKind = "APR"
	LeaseRateMoneyFactor LeaseRateKind = "MONEY_FACTOR"
)

// LeaseTerms is one candidate lease offer.
type LeaseTerms struct {
	Rate            decimal.Decimal `json:"rate"`
	RateKind        LeaseRateKind   `json:"rateKind"` // Empty means APR
	TermMonths      int             `json:"termMonths"`
	ResidualPercent decimal.Decimal `json:"residualPercent"`
	AnnualMileage   int             `json:"annualMileage"`
}

// Validate checks the lease terms for values the lease calculator cannot use.
func (t LeaseTerms) Validate() error {
	var errs []error
	if t.Rate.IsNegative() {
		errs = append(errs, errors.New("lease rate cannot be negative"))
	}
	switch t.RateKind {
	case "", LeaseRateAPR, LeaseRateMoneyFactor:
	default:
		errs = append(errs, fmt.Errorf("unknown lease rate kind %q", t.RateKind))
	}
	if t.TermMonths < 1 {
		errs = append(errs, errors.New("lease term must be at least 1 month"))
	}
	if t.ResidualPercent.IsNegative() || t.ResidualPercent.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, errors.New("residual percent must be between 0 and 100"))
	}
	if t.AnnualMileage < 0 {
		errs = append(errs, errors.New("annual mileage cannot be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, errors.Join(errs...))
	}
	return nil
}

// IsMoneyFactor reports whether Rate is a money factor rather than an APR.
func (t LeaseTerms) IsMoneyFactor() bool {
	return t.RateKind == LeaseRateMoneyFactor
}
