package dealcalc

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LoanToValue returns financeAmount as a percent of vehiclePrice, rounded to
// two places. A zero vehicle price yields zero.
func LoanToValue(financeAmount, vehiclePrice decimal.Decimal) decimal.Decimal {
	if vehiclePrice.IsZero() {
		return decimal.Zero
	}
	return financeAmount.Div(vehiclePrice).Mul(hundred).Round(centPlaces)
}

// QuoteLender prices a structure against a lender's rate sheet. Approval is
// decided by the lender's maximum term and loan-to-value.
func QuoteLender(lender domain.Lender, creditScore int, financeAmount, vehiclePrice decimal.Decimal, termMonths int) (domain.LenderQuote, error) {
	if creditScore < 300 || creditScore > 850 {
		return domain.LenderQuote{}, fmt.Errorf("%w: credit score must be between 300 and 850 (got %d)", apperrors.ErrInvalidInput, creditScore)
	}
	rate, tier := lender.RateFor(creditScore)
	payment, err := ComputeMonthlyPayment(financeAmount, rate, termMonths)
	if err != nil {
		return domain.LenderQuote{}, err
	}

	quote := domain.LenderQuote{
		LenderID:       lender.LenderID,
		LenderName:     lender.Name,
		CreditTier:     tier,
		APRPercent:     rate,
		TermMonths:     termMonths,
		FinanceAmount:  financeAmount,
		MonthlyPayment: payment,
		LTVPercent:     LoanToValue(financeAmount, vehiclePrice),
		Approved:       true,
	}
	if lender.MaxTerm > 0 && termMonths > lender.MaxTerm {
		quote.Approved = false
		quote.Reasons = append(quote.Reasons, fmt.Sprintf("term %d exceeds lender maximum of %d months", termMonths, lender.MaxTerm))
	}
	if lender.MaxLTV.IsPositive() && quote.LTVPercent.GreaterThan(lender.MaxLTV) {
		quote.Approved = false
		quote.Reasons = append(quote.Reasons, fmt.Sprintf("LTV %s%% exceeds lender maximum of %s%%", quote.LTVPercent.StringFixed(2), lender.MaxLTV.String()))
	}
	return quote, nil
}
