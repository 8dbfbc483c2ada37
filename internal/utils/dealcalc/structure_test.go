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

func sampleProducts() []domain.FiProductLine {
	return []domain.FiProductLine{
		{ProductID: "extended_warranty", Name: "Extended Warranty", Cost: dec("1247"), Markup: dec("1248"), Selected: true},
		{ProductID: "gap_coverage", Name: "GAP Coverage", Cost: dec("199"), Markup: dec("596"), Selected: false},
		{ProductID: "tire_wheel", Name: "Tire & Wheel Protection", Cost: dec("295"), Markup: dec("1000"), Selected: true},
	}
}

func taxedInputs() domain.DealInputs {
	return domain.DealInputs{
		VehiclePrice:   dec("32900"),
		TradeAllowance: dec("8500"),
		TradePayoff:    dec("6000"),
		CashDown:       dec("3000"),
		Rebates:        dec("500"),
		SalesTaxRate:   dec("8.25"),
		DocFee:         dec("299"),
		TitleFee:       dec("50"),
		MiscFees:       dec("75"),
		FiProducts:     sampleProducts(),
	}
}

func TestBuildStructure(t *testing.T) {
	got, err := dealcalc.BuildStructure(taxedInputs())
	require.NoError(t, err)

	assert.Equal(t, "24400", got.TaxableBase.String())
	assert.Equal(t, "2013.00", got.SalesTax.StringFixed(2))
	assert.Equal(t, "1542", got.SelectedProductsCost.String())
	assert.Equal(t, "3790", got.SelectedProductsRetail.String())
	assert.Equal(t, "424", got.TotalFees.String())
	assert.Equal(t, "2500", got.TradeEquity.String())
	assert.Equal(t, "27127.00", got.FinanceAmount.StringFixed(2))
	assert.Empty(t, got.Warnings)
}

func TestBuildStructure_FeesInTaxBase(t *testing.T) {
	got, err := dealcalc.BuildStructureWithOptions(taxedInputs(), dealcalc.StructureOptions{TaxBasis: dealcalc.TaxBasisPriceFeesLessTrade})
	require.NoError(t, err)

	assert.Equal(t, "24824", got.TaxableBase.String())
	assert.Equal(t, "2047.98", got.SalesTax.StringFixed(2))
	assert.Equal(t, "27161.98", got.FinanceAmount.StringFixed(2))
}

func TestBuildStructure_SampleDeal(t *testing.T) {
	in := domain.DealInputs{
		VehiclePrice:   dec("32900"),
		TradeAllowance: dec("8500"),
		CashDown:       dec("3000"),
		DocFee:         dec("299"),
		TitleFee:       dec("50"),
		MiscFees:       dec("5851"),
	}
	got, err := dealcalc.BuildStructure(in)
	require.NoError(t, err)
	assert.Equal(t, "27600", got.FinanceAmount.String())
	assert.True(t, got.SalesTax.IsZero())
}

func TestBuildStructure_ClampsNegativeFinanceAmount(t *testing.T) {
	in := domain.DealInputs{
		VehiclePrice:   dec("15000"),
		TradeAllowance: dec("9000"),
		CashDown:       dec("8000"),
		SalesTaxRate:   dec("6"),
	}
	got, err := dealcalc.BuildStructure(in)
	require.NoError(t, err)

	assert.True(t, got.FinanceAmount.IsZero())
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, domain.WarningNegativeFinanceAmount, got.Warnings[0].Code)
	assert.True(t, got.HasWarning(domain.WarningNegativeFinanceAmount))
	assert.Contains(t, got.Warnings[0].Message, "1640.00")
}

func TestBuildStructure_TradeAbovePrice(t *testing.T) {
	in := domain.DealInputs{
		VehiclePrice:   dec("10000"),
		TradeAllowance: dec("12000"),
		SalesTaxRate:   dec("7"),
	}
	got, err := dealcalc.BuildStructure(in)
	require.NoError(t, err)
	assert.True(t, got.SalesTax.IsZero(), "no tax on a negative taxable base")
	assert.True(t, got.FinanceAmount.IsZero())
	assert.True(t, got.HasWarning(domain.WarningNegativeFinanceAmount))
}

func TestBuildStructure_Idempotent(t *testing.T) {
	in := taxedInputs()
	first, err := dealcalc.BuildStructure(in)
	require.NoError(t, err)
	second, err := dealcalc.BuildStructure(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, taxedInputs(), in, "inputs must not be mutated")
}

func TestBuildStructure_InvalidInputs(t *testing.T) {
	in := taxedInputs()
	in.CashDown = dec("-1")
	in.SalesTaxRate = dec("120")

	_, err := dealcalc.BuildStructure(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "cash down cannot be negative")
	assert.Contains(t, err.Error(), "sales tax rate must be between 0 and 100")
}

func TestParseTaxBasis(t *testing.T) {
	basis, err := dealcalc.ParseTaxBasis("")
	require.NoError(t, err)
	assert.Equal(t, dealcalc.TaxBasisPriceLessTrade, basis)

	basis, err = dealcalc.ParseTaxBasis("PRICE_FEES_LESS_TRADE")
	require.NoError(t, err)
	assert.Equal(t, dealcalc.TaxBasisPriceFeesLessTrade, basis)

	_, err = dealcalc.ParseTaxBasis("PRE_REBATE")
	assert.Error(t, err)
}

func TestBuildStructure_ZeroPricePlaceholder(t *testing.T) {
	got, err := dealcalc.BuildStructure(domain.DealInputs{})
	require.NoError(t, err)
	assert.True(t, got.FinanceAmount.Equal(decimal.Zero))
	assert.Empty(t, got.Warnings)
}
