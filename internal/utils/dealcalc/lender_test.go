package dealcalc_test

import (
	"testing"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/utils/dealcalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lender(t *testing.T, id string) domain.Lender {
	t.Helper()
	for _, l := range domain.DefaultLenders() {
		if l.LenderID == id {
			return l
		}
	}
	t.Fatalf("lender %s not in defaults", id)
	return domain.Lender{}
}

func TestQuoteLender_Approved(t *testing.T) {
	q, err := dealcalc.QuoteLender(lender(t, "toyota-financial"), 760, dec("27600"), dec("32900"), 72)
	require.NoError(t, err)

	assert.True(t, q.Approved)
	assert.Empty(t, q.Reasons)
	assert.Equal(t, domain.TierExcellent, q.CreditTier)
	assert.Equal(t, "3.9", q.APRPercent.String())
	assert.Equal(t, "430.55", q.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "83.89", q.LTVPercent.StringFixed(2))
}

func TestQuoteLender_TermTooLong(t *testing.T) {
	q, err := dealcalc.QuoteLender(lender(t, "chase-auto"), 600, dec("27600"), dec("32900"), 84)
	require.NoError(t, err)

	assert.False(t, q.Approved)
	assert.Equal(t, domain.TierPoor, q.CreditTier)
	assert.Equal(t, "494.63", q.MonthlyPayment.StringFixed(2))
	require.Len(t, q.Reasons, 1)
	assert.Contains(t, q.Reasons[0], "exceeds lender maximum of 72 months")
}

func TestQuoteLender_LTVTooHigh(t *testing.T) {
	q, err := dealcalc.QuoteLender(lender(t, "credit-union"), 650, dec("36000"), dec("32900"), 60)
	require.NoError(t, err)

	assert.False(t, q.Approved)
	assert.Equal(t, domain.TierFair, q.CreditTier)
	assert.Equal(t, "733.40", q.MonthlyPayment.StringFixed(2))
	assert.Equal(t, "109.42", q.LTVPercent.StringFixed(2))
	require.Len(t, q.Reasons, 1)
	assert.Contains(t, q.Reasons[0], "LTV 109.42%")
}

func TestQuoteLender_InvalidScore(t *testing.T) {
	_, err := dealcalc.QuoteLender(lender(t, "santander"), 120, dec("1000"), dec("1000"), 12)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestLoanToValue_ZeroPrice(t *testing.T) {
	assert.True(t, dealcalc.LoanToValue(dec("1000"), decimal.Zero).IsZero())
}
