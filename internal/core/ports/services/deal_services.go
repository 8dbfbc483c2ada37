package services

import (
	"context"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	"github.com/SscSPs/deal_desk/internal/dto"
)

// DealStructureSvc defines deal structuring operations
type DealStructureSvc interface {
	// BuildStructure derives the finance amount and its components from raw inputs.
	BuildStructure(ctx context.Context, req dto.DealInputsRequest) (*domain.DealStructure, error)

	// GenerateScenarios computes comparable finance and lease scenarios,
	// serving repeated requests from the scenario cache when one is configured.
	GenerateScenarios(ctx context.Context, req dto.GenerateScenariosRequest) (*dto.ScenariosResponse, error)

	// QuotePayment computes a single amortized payment.
	QuotePayment(ctx context.Context, req dto.PaymentRequest) (*dto.PaymentResponse, error)
}

// DealProfitSvc defines profit and gross operations
type DealProfitSvc interface {
	// AnalyzeProfit splits the profit of a finalized deal into its components.
	AnalyzeProfit(ctx context.Context, req dto.ProfitRequest) (*domain.ProfitBreakdown, error)

	// CalculateGross computes deal gross and the accounting recap for a closed deal.
	CalculateGross(ctx context.Context, req dto.GrossRequest) (*dto.GrossResponse, error)
}

// DealSvcFacade combines all deal calculation service interfaces
type DealSvcFacade interface {
	DealStructureSvc
	DealProfitSvc
}
