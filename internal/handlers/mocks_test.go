package handlers_test

import (
	"context"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock DealService ---
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) BuildStructure(ctx context.Context, req dto.DealInputsRequest) (*domain.DealStructure, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DealStructure), args.Error(1)
}
func (m *MockDealService) GenerateScenarios(ctx context.Context, req dto.GenerateScenariosRequest) (*dto.ScenariosResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ScenariosResponse), args.Error(1)
}
func (m *MockDealService) QuotePayment(ctx context.Context, req dto.PaymentRequest) (*dto.PaymentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentResponse), args.Error(1)
}
func (m *MockDealService) AnalyzeProfit(ctx context.Context, req dto.ProfitRequest) (*domain.ProfitBreakdown, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitBreakdown), args.Error(1)
}
func (m *MockDealService) CalculateGross(ctx context.Context, req dto.GrossRequest) (*dto.GrossResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GrossResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DealSvcFacade = (*MockDealService)(nil)

// --- Mock WorksheetService ---
type MockWorksheetService struct {
	mock.Mock
}

func (m *MockWorksheetService) GetWorksheetByID(ctx context.Context, worksheetID string) (*domain.Worksheet, error) {
	args := m.Called(ctx, worksheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worksheet), args.Error(1)
}
func (m *MockWorksheetService) ListWorksheets(ctx context.Context, params dto.ListWorksheetsParams) (*dto.ListWorksheetsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListWorksheetsResponse), args.Error(1)
}
func (m *MockWorksheetService) CreateWorksheet(ctx context.Context, req dto.CreateWorksheetRequest) (*domain.Worksheet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worksheet), args.Error(1)
}
func (m *MockWorksheetService) UpdateInputs(ctx context.Context, worksheetID string, req dto.UpdateWorksheetInputsRequest) (*domain.Worksheet, error) {
	args := m.Called(ctx, worksheetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worksheet), args.Error(1)
}
func (m *MockWorksheetService) SelectScenario(ctx context.Context, worksheetID string, req dto.SelectScenarioRequest) (*domain.Worksheet, error) {
	args := m.Called(ctx, worksheetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worksheet), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.WorksheetSvcFacade = (*MockWorksheetService)(nil)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
