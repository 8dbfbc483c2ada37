package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/SscSPs/deal_desk/internal/utils/dealcalc"
	"github.com/shopspring/decimal"
)

// rateService serves the lender rate sheets, fee schedule and F&I catalog.
// The tables are read-only after construction.
type rateService struct {
	BaseService
	lenders    []domain.Lender
	fees       domain.FeeSchedule
	fiProducts []domain.FiProduct
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*rateService)

// WithLenders replaces the built-in lender rate sheets
func WithLenders(lenders []domain.Lender) RateServiceOption {
	return func(s *rateService) {
		s.lenders = lenders
	}
}

// WithFeeSchedule replaces the built-in fee schedule
func WithFeeSchedule(fees domain.FeeSchedule) RateServiceOption {
	return func(s *rateService) {
		s.fees = fees
	}
}

// WithDefaultTaxRate overrides the rate used for states missing from the tax table
func WithDefaultTaxRate(rate decimal.Decimal) RateServiceOption {
	return func(s *rateService) {
		s.fees.DefaultTaxRate = rate
	}
}

// WithFiProducts replaces the built-in F&I catalog
func WithFiProducts(products []domain.FiProduct) RateServiceOption {
	return func(s *rateService) {
		s.fiProducts = products
	}
}

// NewRateService creates a rate service seeded with the default tables
func NewRateService(options ...RateServiceOption) portssvc.RateSvcFacade {
	svc := &rateService{
		lenders:    domain.DefaultLenders(),
		fees:       domain.DefaultFeeSchedule(),
		fiProducts: domain.DefaultFiProducts(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) ListLenders(ctx context.Context) []domain.Lender {
	out := make([]domain.Lender, len(s.lenders))
	copy(out, s.lenders)
	return out
}

func (s *rateService) GetFeeSchedule(ctx context.Context) domain.FeeSchedule {
	return s.fees
}

func (s *rateService) TaxRateFor(ctx context.Context, state string) decimal.Decimal {
	return s.fees.TaxRateFor(state)
}

func (s *rateService) ListFiProducts(ctx context.Context) []domain.FiProduct {
	out := make([]domain.FiProduct, len(s.fiProducts))
	copy(out, s.fiProducts)
	return out
}

func (s *rateService) QuoteLender(ctx context.Context, lenderID string, req dto.LenderQuoteRequest) (*domain.LenderQuote, error) {
	var lender *domain.Lender
	for i := range s.lenders {
		if s.lenders[i].LenderID == lenderID {
			lender = &s.lenders[i]
			break
		}
	}
	if lender == nil {
		return nil, fmt.Errorf("%w: lender %s", apperrors.ErrNotFound, lenderID)
	}

	quote, err := dealcalc.QuoteLender(*lender, req.CreditScore, req.FinanceAmount, req.VehiclePrice, req.TermMonths)
	if err != nil {
		s.LogDebug(ctx, "Lender quote rejected input", slog.String("lender_id", lenderID), slog.String("error", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Lender quote computed",
		slog.String("lender_id", lenderID),
		slog.String("tier", string(quote.CreditTier)),
		slog.Bool("approved", quote.Approved))
	return &quote, nil
}
