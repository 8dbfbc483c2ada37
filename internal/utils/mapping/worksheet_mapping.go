package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/models"
	"github.com/shopspring/decimal"
)

// worksheetDocument is the JSONB payload of a worksheet row.
type worksheetDocument struct {
	Inputs       domain.DealInputs       `json:"inputs"`
	FinanceTerms []domain.FinanceTerms   `json:"financeTerms"`
	LeaseTerms   []domain.LeaseTerms     `json:"leaseTerms"`
	Scenarios    []domain.Scenario       `json:"scenarios"`
	VehicleCost  decimal.Decimal         `json:"vehicleCost"`
	Holdback     decimal.Decimal         `json:"holdback"`
	Incentives   decimal.Decimal         `json:"incentives"`
	Profit       *domain.ProfitBreakdown `json:"profit,omitempty"`
}

// ToModelWorksheet converts a domain.Worksheet to a models.Worksheet
func ToModelWorksheet(w domain.Worksheet) (models.Worksheet, error) {
	doc, err := json.Marshal(worksheetDocument{
		Inputs:       w.Inputs,
		FinanceTerms: w.FinanceTerms,
		LeaseTerms:   w.LeaseTerms,
		Scenarios:    w.Scenarios,
		VehicleCost:  w.VehicleCost,
		Holdback:     w.Holdback,
		Incentives:   w.Incentives,
		Profit:       w.Profit,
	})
	if err != nil {
		return models.Worksheet{}, fmt.Errorf("failed to encode worksheet %s: %w", w.WorksheetID, err)
	}
	return models.Worksheet{
		WorksheetID:        w.WorksheetID,
		CustomerName:       w.CustomerName,
		VIN:                w.VIN,
		Status:             string(w.Status),
		SelectedScenarioID: w.SelectedScenarioID,
		Document:           doc,
		Version:            w.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     w.CreatedAt,
			CreatedBy:     w.CreatedBy,
			LastUpdatedAt: w.LastUpdatedAt,
			LastUpdatedBy: w.LastUpdatedBy,
		},
	}, nil
}

// ToDomainWorksheet converts a models.Worksheet to a domain.Worksheet
func ToDomainWorksheet(m models.Worksheet) (domain.Worksheet, error) {
	var doc worksheetDocument
	if err := json.Unmarshal(m.Document, &doc); err != nil {
		return domain.Worksheet{}, fmt.Errorf("failed to decode worksheet %s: %w", m.WorksheetID, err)
	}
	return domain.Worksheet{
		WorksheetID:        m.WorksheetID,
		CustomerName:       m.CustomerName,
		VIN:                m.VIN,
		Status:             domain.WorksheetStatus(m.Status),
		Inputs:             doc.Inputs,
		FinanceTerms:       doc.FinanceTerms,
		LeaseTerms:         doc.LeaseTerms,
		Scenarios:          doc.Scenarios,
		SelectedScenarioID: m.SelectedScenarioID,
		VehicleCost:        doc.VehicleCost,
		Holdback:           doc.Holdback,
		Incentives:         doc.Incentives,
		Profit:             doc.Profit,
		Version:            m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

// ToDomainWorksheetSlice converts a slice of models.Worksheet to a slice of domain.Worksheet
func ToDomainWorksheetSlice(ms []models.Worksheet) ([]domain.Worksheet, error) {
	ds := make([]domain.Worksheet, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainWorksheet(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}
