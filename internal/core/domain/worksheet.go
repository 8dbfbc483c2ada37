package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// WorksheetStatus tracks the deal desk selection cycle.
type WorksheetStatus string

const (
	StatusNoScenarios        WorksheetStatus = "NO_SCENARIOS"
	StatusScenariosGenerated WorksheetStatus = "SCENARIOS_GENERATED"
	StatusScenarioSelected   WorksheetStatus = "SCENARIO_SELECTED"
	StatusProfitComputed     WorksheetStatus = "PROFIT_COMPUTED"
)

// Worksheet is a saved deal desk session: the input snapshot, the terms the
// salesperson offered, the scenario set computed from them and, once chosen,
// the selected scenario and its profit.
type Worksheet struct {
	WorksheetID        string           `json:"worksheetID"`
	CustomerName       string           `json:"customerName"`
	VIN                string           `json:"vin"`
	Status             WorksheetStatus  `json:"status"`
	Inputs             DealInputs       `json:"inputs"`
	FinanceTerms       []FinanceTerms   `json:"financeTerms"`
	LeaseTerms         []LeaseTerms     `json:"leaseTerms"`
	Scenarios          []Scenario       `json:"scenarios"`
	SelectedScenarioID string           `json:"selectedScenarioID,omitempty"`
	VehicleCost        decimal.Decimal  `json:"vehicleCost"`
	Holdback           decimal.Decimal  `json:"holdback"`
	Incentives         decimal.Decimal  `json:"incentives"`
	Profit             *ProfitBreakdown `json:"profit,omitempty"`
	Version            int              `json:"version"`
	AuditFields
}

// ReplaceScenarios installs a freshly computed scenario set. Any previous
// selection and profit were derived from the old inputs and are discarded.
func (w *Worksheet) ReplaceScenarios(scenarios []Scenario) {
	w.Scenarios = scenarios
	w.SelectedScenarioID = ""
	w.Profit = nil
	if len(scenarios) == 0 {
		w.Status = StatusNoScenarios
		return
	}
	w.Status = StatusScenariosGenerated
}

// SelectScenario marks one of the current scenarios as chosen.
func (w *Worksheet) SelectScenario(scenarioID string) (Scenario, error) {
	if w.Status == StatusNoScenarios || len(w.Scenarios) == 0 {
		return Scenario{}, fmt.Errorf("%w: worksheet has no scenarios to select from", apperrors.ErrConflict)
	}
	s, ok := FindScenario(w.Scenarios, scenarioID)
	if !ok {
		return Scenario{}, fmt.Errorf("%w: scenario %s not found on worksheet", apperrors.ErrNotFound, scenarioID)
	}
	w.SelectedScenarioID = s.ID
	w.Profit = nil
	w.Status = StatusScenarioSelected
	return s, nil
}

// RecordProfit attaches the profit breakdown for the selected scenario.
func (w *Worksheet) RecordProfit(p ProfitBreakdown) error {
	if w.SelectedScenarioID == "" {
		return fmt.Errorf("%w: no scenario selected", apperrors.ErrConflict)
	}
	w.Profit = &p
	w.Status = StatusProfitComputed
	return nil
}

// WorksheetCursor is a position in the newest-first worksheet listing.
type WorksheetCursor struct {
	CreatedAt   time.Time
	WorksheetID string
}
