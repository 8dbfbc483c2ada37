package domain_test

import (
	"testing"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorksheet_SelectionCycle(t *testing.T) {
	w := &domain.Worksheet{Status: domain.StatusNoScenarios}

	_, err := w.SelectScenario("finance-60")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, w.RecordProfit(domain.ProfitBreakdown{}), apperrors.ErrConflict)

	w.ReplaceScenarios([]domain.Scenario{{ID: "finance-60"}, {ID: "lease-36"}})
	assert.Equal(t, domain.StatusScenariosGenerated, w.Status)

	_, err = w.SelectScenario("finance-72")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, domain.StatusScenariosGenerated, w.Status)

	s, err := w.SelectScenario("lease-36")
	require.NoError(t, err)
	assert.Equal(t, "lease-36", s.ID)
	assert.Equal(t, domain.StatusScenarioSelected, w.Status)

	require.NoError(t, w.RecordProfit(domain.ProfitBreakdown{TotalProfit: dec("11475")}))
	assert.Equal(t, domain.StatusProfitComputed, w.Status)
	require.NotNil(t, w.Profit)

	// New inputs invalidate everything derived from the old snapshot.
	w.ReplaceScenarios([]domain.Scenario{{ID: "finance-48"}})
	assert.Equal(t, domain.StatusScenariosGenerated, w.Status)
	assert.Empty(t, w.SelectedScenarioID)
	assert.Nil(t, w.Profit)

	w.ReplaceScenarios(nil)
	assert.Equal(t, domain.StatusNoScenarios, w.Status)
}
