package services

import (
	"context"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/dto"
)

// WorksheetReaderSvc defines read operations for deal worksheets
type WorksheetReaderSvc interface {
	// GetWorksheetByID retrieves a worksheet by id.
	GetWorksheetByID(ctx context.Context, worksheetID string) (*domain.Worksheet, error)

	// ListWorksheets returns a page of worksheets, newest first.
	ListWorksheets(ctx context.Context, params dto.ListWorksheetsParams) (*dto.ListWorksheetsResponse, error)
}

// WorksheetWriterSvc defines the deal desk selection cycle on a worksheet
type WorksheetWriterSvc interface {
	// CreateWorksheet opens a worksheet and computes its scenario set.
	CreateWorksheet(ctx context.Context, req dto.CreateWorksheetRequest) (*domain.Worksheet, error)

	// UpdateInputs replaces the inputs, recomputes scenarios and clears any selection.
	UpdateInputs(ctx context.Context, worksheetID string, req dto.UpdateWorksheetInputsRequest) (*domain.Worksheet, error)

	// SelectScenario marks a scenario as chosen and computes its profit.
	SelectScenario(ctx context.Context, worksheetID string, req dto.SelectScenarioRequest) (*domain.Worksheet, error)
}

// WorksheetSvcFacade combines all worksheet service interfaces
type WorksheetSvcFacade interface {
	WorksheetReaderSvc
	WorksheetWriterSvc
}
