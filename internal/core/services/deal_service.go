package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/deal_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/SscSPs/deal_desk/internal/utils/dealcalc"
	"github.com/shopspring/decimal"
)

const scenarioCacheKeyPrefix = "dealdesk:scenarios:"

// dealService exposes the calculation engine to handlers. It owns no state
// beyond its configuration and an optional scenario cache.
type dealService struct {
	BaseService
	rates         portssvc.RateReaderSvc
	cache         portsrepo.ScenarioCache
	cacheTTL      time.Duration
	structureOpts dealcalc.StructureOptions
	grossCfg      dealcalc.GrossConfig
}

// DealServiceOption is a functional option for configuring the deal service
type DealServiceOption func(*dealService)

// WithScenarioCache enables caching of computed scenario sets
func WithScenarioCache(cache portsrepo.ScenarioCache, ttl time.Duration) DealServiceOption {
	return func(s *dealService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithStructureOptions sets the tax basis used when structuring deals
func WithStructureOptions(opts dealcalc.StructureOptions) DealServiceOption {
	return func(s *dealService) {
		s.structureOpts = opts
	}
}

// WithGrossConfig sets the finance reserve points and pack schedule
func WithGrossConfig(cfg dealcalc.GrossConfig) DealServiceOption {
	return func(s *dealService) {
		s.grossCfg = cfg
	}
}

// NewDealService creates a deal calculation service. Rates resolve the sales
// tax rate for requests that give a state instead of a rate.
func NewDealService(rates portssvc.RateReaderSvc, options ...DealServiceOption) portssvc.DealSvcFacade {
	svc := &dealService{
		rates:         rates,
		structureOpts: dealcalc.StructureOptions{TaxBasis: dealcalc.TaxBasisPriceLessTrade},
		grossCfg:      dealcalc.DefaultGrossConfig(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DealSvcFacade = (*dealService)(nil)

// resolveDealInputs fills in the sales tax rate from the state tax table when
// the request does not carry one.
func resolveDealInputs(ctx context.Context, rates portssvc.RateReaderSvc, req dto.DealInputsRequest) domain.DealInputs {
	if req.SalesTaxRate != nil {
		return req.ToDomain(*req.SalesTaxRate)
	}
	return req.ToDomain(rates.TaxRateFor(ctx, req.State))
}

func (s *dealService) BuildStructure(ctx context.Context, req dto.DealInputsRequest) (*domain.DealStructure, error) {
	inputs := resolveDealInputs(ctx, s.rates, req)
	structure, err := dealcalc.BuildStructureWithOptions(inputs, s.structureOpts)
	if err != nil {
		return nil, err
	}
	if structure.HasWarning(domain.WarningNegativeFinanceAmount) {
		s.LogInfo(ctx, "Deal credits exceed amount due", slog.String("finance_amount", structure.FinanceAmount.String()))
	}
	return &structure, nil
}

// scenarioCacheEntry is the cached form of a computed scenario set.
type scenarioCacheEntry struct {
	Structure domain.DealStructure `json:"structure"`
	Scenarios []domain.Scenario    `json:"scenarios"`
}

func (s *dealService) GenerateScenarios(ctx context.Context, req dto.GenerateScenariosRequest) (*dto.ScenariosResponse, error) {
	inputs := resolveDealInputs(ctx, s.rates, req.Inputs)
	financeTerms := dto.ToDomainFinanceTerms(req.FinanceTerms)
	leaseTerms := dto.ToDomainLeaseTerms(req.LeaseTerms)

	key, err := s.scenarioCacheKey(inputs, financeTerms, leaseTerms)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenario cache key: %w", err)
	}
	if entry, ok := s.cachedScenarios(ctx, key); ok {
		return &dto.ScenariosResponse{Structure: entry.Structure, Scenarios: entry.Scenarios, Cached: true}, nil
	}

	structure, err := dealcalc.BuildStructureWithOptions(inputs, s.structureOpts)
	if err != nil {
		return nil, err
	}
	scenarios, err := dealcalc.GenerateScenariosForStructure(inputs, structure, financeTerms, leaseTerms)
	if err != nil {
		return nil, err
	}

	s.storeScenarios(ctx, key, scenarioCacheEntry{Structure: structure, Scenarios: scenarios})
	s.LogDebug(ctx, "Scenarios generated", slog.Int("count", len(scenarios)))
	return &dto.ScenariosResponse{Structure: structure, Scenarios: scenarios}, nil
}

func (s *dealService) scenarioCacheKey(inputs domain.DealInputs, financeTerms []domain.FinanceTerms, leaseTerms []domain.LeaseTerms) (string, error) {
	payload, err := json.Marshal(struct {
		TaxBasis     dealcalc.TaxBasis     `json:"taxBasis"`
		Inputs       domain.DealInputs     `json:"inputs"`
		FinanceTerms []domain.FinanceTerms `json:"financeTerms"`
		LeaseTerms   []domain.LeaseTerms   `json:"leaseTerms"`
	}{s.structureOpts.TaxBasis, inputs, financeTerms, leaseTerms})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return scenarioCacheKeyPrefix + hex.EncodeToString(sum[:]), nil
}

// cachedScenarios looks up a scenario set. Cache failures are logged and
// treated as a miss.
func (s *dealService) cachedScenarios(ctx context.Context, key string) (scenarioCacheEntry, bool) {
	if s.cache == nil {
		return scenarioCacheEntry{}, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.LogWarn(ctx, err, "Scenario cache lookup failed", slog.String("key", key))
		return scenarioCacheEntry{}, false
	}
	if !ok {
		return scenarioCacheEntry{}, false
	}
	var entry scenarioCacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.LogWarn(ctx, err, "Scenario cache entry is corrupt", slog.String("key", key))
		return scenarioCacheEntry{}, false
	}
	return entry, true
}

func (s *dealService) storeScenarios(ctx context.Context, key string, entry scenarioCacheEntry) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode scenario cache entry", slog.String("key", key))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.LogWarn(ctx, err, "Scenario cache store failed", slog.String("key", key))
	}
}

func (s *dealService) QuotePayment(ctx context.Context, req dto.PaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := dealcalc.ComputeMonthlyPayment(req.Principal, req.APRPercent, req.TermMonths)
	if err != nil {
		return nil, err
	}
	total := dealcalc.TotalOfPayments(payment, req.TermMonths)
	interest := total.Sub(req.Principal)
	if interest.IsNegative() {
		interest = decimal.Zero
	}
	return &dto.PaymentResponse{MonthlyPayment: payment, TotalOfPayments: total, TotalInterest: interest}, nil
}

func (s *dealService) AnalyzeProfit(ctx context.Context, req dto.ProfitRequest) (*domain.ProfitBreakdown, error) {
	profit, err := dealcalc.AnalyzeProfit(req.SalePrice, req.VehicleCost, dto.ToDomainFiProducts(req.FiProducts), req.Holdback, req.Incentives)
	if err != nil {
		return nil, err
	}
	return &profit, nil
}

func (s *dealService) CalculateGross(ctx context.Context, req dto.GrossRequest) (*dto.GrossResponse, error) {
	products := dto.ToDomainFiProducts(req.FiProducts)
	gross, err := dealcalc.CalculateDealGross(dealcalc.GrossInputs{
		SalePrice:      req.SalePrice,
		VehicleCost:    req.VehicleCost,
		TradeAllowance: req.TradeAllowance,
		TradePayoff:    req.TradePayoff,
		FinanceAmount:  req.FinanceAmount,
		TermMonths:     req.TermMonths,
		Category:       domain.VehicleCategory(req.Category),
		Products:       products,
	}, s.grossCfg)
	if err != nil {
		return nil, err
	}

	entries := dealcalc.GenerateAccountingEntries(
		domain.DealRecap{DealNumber: req.DealNumber, VIN: req.VIN, TradeVIN: req.TradeVIN, BuyerName: req.BuyerName},
		dealcalc.RecapAmounts{
			SalePrice:      req.SalePrice,
			TradeAllowance: req.TradeAllowance,
			TradePayoff:    req.TradePayoff,
			CashDown:       req.CashDown,
			SalesTax:       req.SalesTax,
			DocFee:         req.DocFee,
		},
		gross,
	)
	debits, credits := dealcalc.EntryTotals(entries)

	s.LogInfo(ctx, "Deal gross calculated",
		slog.String("deal_number", req.DealNumber),
		slog.String("net_gross", gross.NetGross.String()))
	return &dto.GrossResponse{Gross: gross, Entries: entries, TotalDebits: debits, TotalCredits: credits}, nil
}
