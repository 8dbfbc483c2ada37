package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// --- Mock WorksheetRepository ---
type MockWorksheetRepository struct {
	mock.Mock
}

func (m *MockWorksheetRepository) FindWorksheetByID(ctx context.Context, worksheetID string) (*domain.Worksheet, error) {
	args := m.Called(ctx, worksheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worksheet), args.Error(1)
}

func (m *MockWorksheetRepository) ListWorksheets(ctx context.Context, limit int, after *domain.WorksheetCursor) ([]domain.Worksheet, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worksheet), args.Error(1)
}

func (m *MockWorksheetRepository) SaveWorksheet(ctx context.Context, worksheet domain.Worksheet) error {
	args := m.Called(ctx, worksheet)
	return args.Error(0)
}

func (m *MockWorksheetRepository) UpdateWorksheet(ctx context.Context, worksheet domain.Worksheet, expectedVersion int) error {
	args := m.Called(ctx, worksheet, expectedVersion)
	return args.Error(0)
}

// --- Mock ScenarioCache ---
type MockScenarioCache struct {
	mock.Mock
}

func (m *MockScenarioCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockScenarioCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
