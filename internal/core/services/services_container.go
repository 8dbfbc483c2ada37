package services

import (
	"fmt"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/platform/config"
	"github.com/SscSPs/deal_desk/internal/utils/dealcalc"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	taxBasis, err := dealcalc.ParseTaxBasis(cfg.TaxBasis)
	if err != nil {
		return nil, fmt.Errorf("invalid DEAL_TAX_BASIS: %w", err)
	}
	structureOpts := dealcalc.StructureOptions{TaxBasis: taxBasis}

	container := &portssvc.ServiceContainer{}

	// Rates first since the other services resolve tax rates through it
	container.Rate = NewRateService(WithDefaultTaxRate(cfg.DefaultTaxRate))

	dealOpts := []DealServiceOption{
		WithStructureOptions(structureOpts),
		WithGrossConfig(dealcalc.GrossConfig{
			ReservePoints: cfg.FinanceReservePoints,
			PackCosts:     domain.DefaultPackCosts(),
		}),
	}
	if repos.ScenarioCache != nil {
		dealOpts = append(dealOpts, WithScenarioCache(repos.ScenarioCache, cfg.ScenarioCacheTTL))
	}
	container.Deal = NewDealService(container.Rate, dealOpts...)

	if repos.WorksheetRepo != nil {
		container.Worksheet = NewWorksheetService(
			repos.WorksheetRepo,
			container.Rate,
			WithWorksheetStructureOptions(structureOpts),
		)
	}

	return container, nil
}
