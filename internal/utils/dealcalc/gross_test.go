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

func sampleGrossInputs() dealcalc.GrossInputs {
	return dealcalc.GrossInputs{
		SalePrice:      dec("32900"),
		VehicleCost:    dec("24500"),
		TradeAllowance: dec("8500"),
		TradePayoff:    dec("6000"),
		FinanceAmount:  dec("27600"),
		TermMonths:     72,
		Category:       domain.VehicleUsed,
		Products:       sampleProducts(),
	}
}

func TestCalculateDealGross(t *testing.T) {
	got, err := dealcalc.CalculateDealGross(sampleGrossInputs(), dealcalc.DefaultGrossConfig())
	require.NoError(t, err)

	assert.Equal(t, "5900", got.FrontEndGross.String())
	assert.Equal(t, "3312.00", got.FinanceReserve.StringFixed(2))
	assert.Equal(t, "2248", got.ProductGross.String())
	assert.Equal(t, "300", got.PackCost.String())
	assert.Equal(t, "11160.00", got.NetGross.StringFixed(2))
}

func TestCalculateDealGross_Defaults(t *testing.T) {
	in := sampleGrossInputs()
	in.TermMonths = 0
	in.Category = ""
	in.TradePayoff = dec("9000") // Negative equity does not reduce front-end gross.

	got, err := dealcalc.CalculateDealGross(in, dealcalc.DefaultGrossConfig())
	require.NoError(t, err)
	assert.Equal(t, "8400", got.FrontEndGross.String())
	assert.Equal(t, "2760.00", got.FinanceReserve.StringFixed(2))
	assert.Equal(t, "300", got.PackCost.String())
}

func TestCalculateDealGross_CategoryPack(t *testing.T) {
	in := sampleGrossInputs()
	in.Category = domain.VehicleNew
	got, err := dealcalc.CalculateDealGross(in, dealcalc.DefaultGrossConfig())
	require.NoError(t, err)
	assert.Equal(t, "500", got.PackCost.String())

	in.Category = "salvage"
	_, err = dealcalc.CalculateDealGross(in, dealcalc.DefaultGrossConfig())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCalculateDealGross_CustomReservePoints(t *testing.T) {
	cfg := dealcalc.DefaultGrossConfig()
	cfg.ReservePoints = decimal.NewFromInt(1)
	got, err := dealcalc.CalculateDealGross(sampleGrossInputs(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "1656.00", got.FinanceReserve.StringFixed(2))
}
