package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ScenarioKind distinguishes retail finance offers from leases.
type ScenarioKind string

const (
	ScenarioFinance ScenarioKind = "finance"
	ScenarioLease   ScenarioKind = "lease"
)

// ScenarioID builds the identifier of a scenario: kind + "-" + termMonths.
func ScenarioID(kind ScenarioKind, termMonths int) string {
	return fmt.Sprintf("%s-%d", kind, termMonths)
}

// Scenario is one fully computed finance or lease offer. A scenario set is
// rebuilt from scratch whenever the deal inputs change; scenarios are never
// updated in place.
type Scenario struct {
	ID              string          `json:"id"`
	Label           string          `json:"label"`
	Kind            ScenarioKind    `json:"kind"`
	TermMonths      int             `json:"termMonths"`
	RatePercent     decimal.Decimal `json:"ratePercent"` // APR, or money factor for money-factor leases
	FinanceAmount   decimal.Decimal `json:"financeAmount"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	TotalOfPayments decimal.Decimal `json:"totalOfPayments"`
	TotalInterest   decimal.Decimal `json:"totalInterest"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	ResidualValue   decimal.Decimal `json:"residualValue"` // Lease only
	AnnualMileage   int             `json:"annualMileage,omitempty"`
	Warnings        []Warning       `json:"warnings,omitempty"`
}

// IsLease reports whether the scenario is a lease offer.
func (s Scenario) IsLease() bool {
	return s.Kind == ScenarioLease
}

// FindScenario returns the scenario with the given id.
func FindScenario(scenarios []Scenario, id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// WarningCode identifies a non-fatal condition found while structuring a deal.
type WarningCode string

const (
	// WarningNegativeFinanceAmount means credits exceed the amount due; the
	// finance amount was clamped to zero and the deal is cash-only.
	WarningNegativeFinanceAmount WarningCode = "NEGATIVE_FINANCE_AMOUNT"
)

// Warning is surfaced to the caller alongside a valid result.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
