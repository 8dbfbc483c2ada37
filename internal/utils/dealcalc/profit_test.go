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

func TestAnalyzeProfit(t *testing.T) {
	products := []domain.FiProductLine{
		{ProductID: "extended_warranty", Cost: dec("1247"), Markup: dec("750"), Selected: true},
		{ProductID: "gap_coverage", Cost: dec("199"), Markup: dec("295"), Selected: true},
		{ProductID: "tire_wheel", Cost: dec("295"), Markup: dec("380"), Selected: true},
		{ProductID: "paint_protection", Cost: dec("295"), Markup: dec("1200"), Selected: false},
	}

	got, err := dealcalc.AnalyzeProfit(dec("32900"), dec("24500"), products, dec("650"), dec("1000"))
	require.NoError(t, err)

	assert.Equal(t, "8400", got.FrontEnd.String())
	assert.Equal(t, "1425", got.BackEnd.String())
	assert.Equal(t, "650", got.Holdback.String())
	assert.Equal(t, "1000", got.Incentives.String())
	assert.Equal(t, "11475", got.TotalProfit.String())
	assert.Equal(t, "34.88", got.ProfitMarginPercent.StringFixed(2))
	assert.Equal(t, "34.9", got.ProfitMarginPercent.Round(1).String())
}

func TestAnalyzeProfit_ZeroSalePrice(t *testing.T) {
	got, err := dealcalc.AnalyzeProfit(decimal.Zero, decimal.Zero, nil, dec("650"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, got.ProfitMarginPercent.IsZero())
	assert.Equal(t, "650", got.TotalProfit.String())
}

func TestAnalyzeProfit_LosingFrontEnd(t *testing.T) {
	got, err := dealcalc.AnalyzeProfit(dec("20000"), dec("21000"), nil, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "-1000", got.FrontEnd.String())
	assert.Equal(t, "-5.00", got.ProfitMarginPercent.StringFixed(2))
}

func TestAnalyzeProfit_InvalidInput(t *testing.T) {
	_, err := dealcalc.AnalyzeProfit(dec("-1"), dec("100"), nil, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = dealcalc.AnalyzeProfit(dec("100"), dec("-1"), nil, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
