package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorksheetMapping_PreservesSelectionCycle(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	w := domain.Worksheet{
		WorksheetID:  "ws-1",
		CustomerName: "Jordan Reyes",
		VIN:          "1HGCM82633A004352",
		Inputs: domain.DealInputs{
			VehiclePrice: decimal.RequireFromString("32900"),
			SalesTaxRate: decimal.RequireFromString("8.25"),
			FiProducts:   []domain.FiProductLine{{ProductID: "gap_coverage", Cost: decimal.NewFromInt(199), Markup: decimal.NewFromInt(596), Selected: true}},
		},
		FinanceTerms: []domain.FinanceTerms{{APRPercent: decimal.RequireFromString("4.29"), TermMonths: 72}},
		VehicleCost:  decimal.RequireFromString("24500"),
		Holdback:     decimal.RequireFromString("650"),
		Version:      2,
		AuditFields:  domain.AuditFields{CreatedAt: now, CreatedBy: "sp-1", LastUpdatedAt: now, LastUpdatedBy: "sp-2"},
	}
	w.ReplaceScenarios([]domain.Scenario{{ID: "finance-72", Kind: domain.ScenarioFinance, TermMonths: 72, MonthlyPayment: decimal.RequireFromString("435.46")}})
	_, err := w.SelectScenario("finance-72")
	require.NoError(t, err)
	require.NoError(t, w.RecordProfit(domain.ProfitBreakdown{TotalProfit: decimal.NewFromInt(9000)}))

	m, err := ToModelWorksheet(w)
	require.NoError(t, err)
	assert.Equal(t, "PROFIT_COMPUTED", m.Status)
	assert.Equal(t, "finance-72", m.SelectedScenarioID)
	assert.Equal(t, "sp-2", m.LastUpdatedBy)

	back, err := ToDomainWorksheet(m)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProfitComputed, back.Status)
	assert.Equal(t, "finance-72", back.SelectedScenarioID)
	require.Len(t, back.Scenarios, 1)
	assert.True(t, back.Scenarios[0].MonthlyPayment.Equal(decimal.RequireFromString("435.46")))
	assert.True(t, back.Inputs.SalesTaxRate.Equal(decimal.RequireFromString("8.25")))
	assert.True(t, back.Inputs.FiProducts[0].Selected)
	require.NotNil(t, back.Profit)
	assert.Equal(t, "9000", back.Profit.TotalProfit.String())
	assert.Equal(t, 2, back.Version)
	assert.Equal(t, now, back.CreatedAt)
}

func TestToDomainWorksheet_CorruptDocument(t *testing.T) {
	_, err := ToDomainWorksheet(models.Worksheet{WorksheetID: "ws-bad", Document: []byte("{not json")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ws-bad")
}
