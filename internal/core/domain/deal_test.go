package domain_test

import (
	"testing"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFiProductLine_RetailPrice(t *testing.T) {
	p := domain.FiProductLine{Cost: dec("199"), Markup: dec("596")}
	assert.Equal(t, "795", p.RetailPrice().String())
}

func TestDealInputs_SelectedProducts(t *testing.T) {
	in := domain.DealInputs{FiProducts: []domain.FiProductLine{
		{ProductID: "a", Selected: true},
		{ProductID: "b"},
		{ProductID: "c", Selected: true},
	}}
	got := in.SelectedProducts()
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ProductID)
	assert.Equal(t, "c", got[1].ProductID)
}

func TestDealInputs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		inputs  domain.DealInputs
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid snapshot",
			inputs: domain.DealInputs{VehiclePrice: dec("32900"), SalesTaxRate: dec("8.25"), DocFee: dec("299")},
		},
		{
			name:   "zero value placeholder",
			inputs: domain.DealInputs{},
		},
		{
			name:    "negative trade allowance",
			inputs:  domain.DealInputs{TradeAllowance: dec("-1")},
			wantErr: true,
			errMsg:  "trade allowance cannot be negative",
		},
		{
			name:    "tax rate above 100",
			inputs:  domain.DealInputs{SalesTaxRate: dec("100.01")},
			wantErr: true,
			errMsg:  "sales tax rate must be between 0 and 100",
		},
		{
			name: "negative product markup",
			inputs: domain.DealInputs{FiProducts: []domain.FiProductLine{
				{ProductID: "gap_coverage", Cost: dec("199"), Markup: dec("-5")},
			}},
			wantErr: true,
			errMsg:  "F&I product gap_coverage markup cannot be negative",
		},
		{
			name: "duplicate product id",
			inputs: domain.DealInputs{FiProducts: []domain.FiProductLine{
				{ProductID: "gap_coverage"},
				{ProductID: "gap_coverage"},
			}},
			wantErr: true,
			errMsg:  "listed more than once",
		},
		{
			name: "unnamed product reported by position",
			inputs: domain.DealInputs{FiProducts: []domain.FiProductLine{
				{Cost: dec("-1")},
			}},
			wantErr: true,
			errMsg:  "F&I product #0 cost cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inputs.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFinanceTerms_Validate(t *testing.T) {
	assert.NoError(t, domain.FinanceTerms{APRPercent: decimal.Zero, TermMonths: 60}.Validate())
	assert.ErrorIs(t, domain.FinanceTerms{APRPercent: dec("-1"), TermMonths: 60}.Validate(), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, domain.FinanceTerms{APRPercent: dec("4"), TermMonths: 0}.Validate(), apperrors.ErrInvalidInput)
}

func TestLeaseTerms_Validate(t *testing.T) {
	valid := domain.LeaseTerms{Rate: dec("3.9"), TermMonths: 36, ResidualPercent: dec("60"), AnnualMileage: 12000}
	assert.NoError(t, valid.Validate())
	assert.False(t, valid.IsMoneyFactor())

	mf := valid
	mf.RateKind = domain.LeaseRateMoneyFactor
	assert.True(t, mf.IsMoneyFactor())

	bad := valid
	bad.RateKind = "POINTS"
	bad.ResidualPercent = dec("120")
	err := bad.Validate()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "unknown lease rate kind")
	assert.Contains(t, err.Error(), "residual percent must be between 0 and 100")
}

func TestScenarioID(t *testing.T) {
	assert.Equal(t, "finance-72", domain.ScenarioID(domain.ScenarioFinance, 72))
	assert.Equal(t, "lease-36", domain.ScenarioID(domain.ScenarioLease, 36))
}
