package services

import (
	"context"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines lookups against the rate and fee tables
type RateReaderSvc interface {
	// ListLenders returns the configured lender rate sheets.
	ListLenders(ctx context.Context) []domain.Lender

	// GetFeeSchedule returns the dealership fee schedule.
	GetFeeSchedule(ctx context.Context) domain.FeeSchedule

	// TaxRateFor returns the sales tax rate for a state, or the default rate.
	TaxRateFor(ctx context.Context, state string) decimal.Decimal

	// ListFiProducts returns the F&I product catalog.
	ListFiProducts(ctx context.Context) []domain.FiProduct
}

// RateQuoteSvc defines lender pricing operations
type RateQuoteSvc interface {
	// QuoteLender prices a structure against one lender's rate sheet.
	QuoteLender(ctx context.Context, lenderID string, req dto.LenderQuoteRequest) (*domain.LenderQuote, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateQuoteSvc
}
