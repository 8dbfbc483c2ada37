package dto

import (
	"time"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorksheetRequest opens a new deal worksheet and computes its first
// scenario set.
type CreateWorksheetRequest struct {
	UserID       string                `json:"userID" binding:"required"` // Salesperson opening the worksheet
	CustomerName string                `json:"customerName" binding:"required"`
	VIN          string                `json:"vin" binding:"omitempty,len=17,alphanum"`
	Inputs       DealInputsRequest     `json:"inputs"`
	FinanceTerms []FinanceTermsRequest `json:"financeTerms" binding:"omitempty,dive"`
	LeaseTerms   []LeaseTermsRequest   `json:"leaseTerms" binding:"omitempty,dive"`
	VehicleCost  decimal.Decimal       `json:"vehicleCost" binding:"nonnegdecimal"`
	Holdback     decimal.Decimal       `json:"holdback"`
	Incentives   decimal.Decimal       `json:"incentives"`
}

// UpdateWorksheetInputsRequest replaces the inputs and candidate terms of a
// worksheet. Version must match the stored worksheet.
type UpdateWorksheetInputsRequest struct {
	UserID       string                `json:"userID" binding:"required"`
	Version      int                   `json:"version" binding:"min=1"`
	Inputs       DealInputsRequest     `json:"inputs"`
	FinanceTerms []FinanceTermsRequest `json:"financeTerms" binding:"omitempty,dive"`
	LeaseTerms   []LeaseTermsRequest   `json:"leaseTerms" binding:"omitempty,dive"`
}

// SelectScenarioRequest picks one scenario on a worksheet.
type SelectScenarioRequest struct {
	UserID     string `json:"userID" binding:"required"`
	Version    int    `json:"version" binding:"min=1"`
	ScenarioID string `json:"scenarioID" binding:"required"`
}

// ListWorksheetsParams defines parameters for listing worksheets.
type ListWorksheetsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// WorksheetResponse is the API view of a worksheet.
type WorksheetResponse struct {
	WorksheetID        string                  `json:"worksheetID"`
	CustomerName       string                  `json:"customerName"`
	VIN                string                  `json:"vin,omitempty"`
	Status             domain.WorksheetStatus  `json:"status"`
	Inputs             domain.DealInputs       `json:"inputs"`
	FinanceTerms       []domain.FinanceTerms   `json:"financeTerms"`
	LeaseTerms         []domain.LeaseTerms     `json:"leaseTerms"`
	Scenarios          []domain.Scenario       `json:"scenarios"`
	SelectedScenarioID string                  `json:"selectedScenarioID,omitempty"`
	Profit             *domain.ProfitBreakdown `json:"profit,omitempty"`
	Version            int                     `json:"version"`
	CreatedAt          time.Time               `json:"createdAt"`
	CreatedBy          string                  `json:"createdBy"`
	LastUpdatedAt      time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy      string                  `json:"lastUpdatedBy"`
}

// ToWorksheetResponse converts a domain worksheet to its API view.
func ToWorksheetResponse(w *domain.Worksheet) WorksheetResponse {
	return WorksheetResponse{
		WorksheetID:        w.WorksheetID,
		CustomerName:       w.CustomerName,
		VIN:                w.VIN,
		Status:             w.Status,
		Inputs:             w.Inputs,
		FinanceTerms:       w.FinanceTerms,
		LeaseTerms:         w.LeaseTerms,
		Scenarios:          w.Scenarios,
		SelectedScenarioID: w.SelectedScenarioID,
		Profit:             w.Profit,
		Version:            w.Version,
		CreatedAt:          w.CreatedAt,
		CreatedBy:          w.CreatedBy,
		LastUpdatedAt:      w.LastUpdatedAt,
		LastUpdatedBy:      w.LastUpdatedBy,
	}
}

// ListWorksheetsResponse is a page of worksheets.
type ListWorksheetsResponse struct {
	Worksheets []WorksheetResponse `json:"worksheets"`
	NextToken  string              `json:"nextToken,omitempty"`
}
