package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/deal_desk/internal/core/ports/services"
	"github.com/SscSPs/deal_desk/internal/dto"
	"github.com/SscSPs/deal_desk/internal/utils/dealcalc"
	"github.com/SscSPs/deal_desk/internal/utils/pagination"
	"github.com/google/uuid"
)

const defaultWorksheetPageSize = 20

// worksheetService drives the deal desk selection cycle on persisted
// worksheets: inputs change, scenarios are regenerated, one is selected and
// its profit recorded.
type worksheetService struct {
	BaseService
	repo          portsrepo.WorksheetRepositoryFacade
	rates         portssvc.RateReaderSvc
	structureOpts dealcalc.StructureOptions
	now           func() time.Time
}

// WorksheetServiceOption is a functional option for configuring the worksheet service
type WorksheetServiceOption func(*worksheetService)

// WithWorksheetStructureOptions sets the tax basis used when regenerating scenarios
func WithWorksheetStructureOptions(opts dealcalc.StructureOptions) WorksheetServiceOption {
	return func(s *worksheetService) {
		s.structureOpts = opts
	}
}

// WithClock overrides the time source used for audit fields
func WithClock(now func() time.Time) WorksheetServiceOption {
	return func(s *worksheetService) {
		s.now = now
	}
}

// NewWorksheetService creates a worksheet service
func NewWorksheetService(repo portsrepo.WorksheetRepositoryFacade, rates portssvc.RateReaderSvc, options ...WorksheetServiceOption) portssvc.WorksheetSvcFacade {
	svc := &worksheetService{
		repo:          repo,
		rates:         rates,
		structureOpts: dealcalc.StructureOptions{TaxBasis: dealcalc.TaxBasisPriceLessTrade},
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.WorksheetSvcFacade = (*worksheetService)(nil)

func (s *worksheetService) CreateWorksheet(ctx context.Context, req dto.CreateWorksheetRequest) (*domain.Worksheet, error) {
	inputs := resolveDealInputs(ctx, s.rates, req.Inputs)
	financeTerms := dto.ToDomainFinanceTerms(req.FinanceTerms)
	leaseTerms := dto.ToDomainLeaseTerms(req.LeaseTerms)

	scenarios, err := dealcalc.GenerateScenariosWithOptions(inputs, financeTerms, leaseTerms, s.structureOpts)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	worksheet := domain.Worksheet{
		WorksheetID:  uuid.NewString(),
		CustomerName: req.CustomerName,
		VIN:          req.VIN,
		Inputs:       inputs,
		FinanceTerms: financeTerms,
		LeaseTerms:   leaseTerms,
		VehicleCost:  req.VehicleCost,
		Holdback:     req.Holdback,
		Incentives:   req.Incentives,
		Version:      1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.UserID,
		},
	}
	worksheet.ReplaceScenarios(scenarios)

	if err := s.repo.SaveWorksheet(ctx, worksheet); err != nil {
		s.LogError(ctx, err, "Failed to save worksheet", slog.String("worksheet_id", worksheet.WorksheetID))
		return nil, fmt.Errorf("failed to create worksheet: %w", err)
	}

	s.LogInfo(ctx, "Worksheet created",
		slog.String("worksheet_id", worksheet.WorksheetID),
		slog.String("user_id", req.UserID),
		slog.Int("scenarios", len(scenarios)))
	return &worksheet, nil
}

func (s *worksheetService) GetWorksheetByID(ctx context.Context, worksheetID string) (*domain.Worksheet, error) {
	worksheet, err := s.repo.FindWorksheetByID(ctx, worksheetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find worksheet", slog.String("worksheet_id", worksheetID))
		}
		return nil, err
	}
	return worksheet, nil
}

func (s *worksheetService) ListWorksheets(ctx context.Context, params dto.ListWorksheetsParams) (*dto.ListWorksheetsResponse, error) {
	if params.Limit <= 0 {
		params.Limit = defaultWorksheetPageSize
	}
	var cursor *domain.WorksheetCursor
	if params.NextToken != "" {
		createdAt, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &domain.WorksheetCursor{CreatedAt: createdAt, WorksheetID: id}
	}

	// One extra row tells us whether another page exists.
	worksheets, err := s.repo.ListWorksheets(ctx, params.Limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list worksheets")
		return nil, fmt.Errorf("failed to list worksheets: %w", err)
	}

	resp := &dto.ListWorksheetsResponse{Worksheets: make([]dto.WorksheetResponse, 0, len(worksheets))}
	if len(worksheets) > params.Limit {
		worksheets = worksheets[:params.Limit]
		last := worksheets[len(worksheets)-1]
		resp.NextToken = pagination.EncodeToken(last.CreatedAt, last.WorksheetID)
	}
	for i := range worksheets {
		resp.Worksheets = append(resp.Worksheets, dto.ToWorksheetResponse(&worksheets[i]))
	}
	return resp, nil
}

// loadForUpdate fetches a worksheet and rejects stale versions before any
// recalculation is attempted.
func (s *worksheetService) loadForUpdate(ctx context.Context, worksheetID string, version int) (*domain.Worksheet, error) {
	worksheet, err := s.GetWorksheetByID(ctx, worksheetID)
	if err != nil {
		return nil, err
	}
	if worksheet.Version != version {
		return nil, fmt.Errorf("%w: worksheet %s is at version %d, not %d", apperrors.ErrConflict, worksheetID, worksheet.Version, version)
	}
	return worksheet, nil
}

func (s *worksheetService) save(ctx context.Context, worksheet *domain.Worksheet, userID string) error {
	expected := worksheet.Version
	worksheet.Version++
	worksheet.LastUpdatedAt = s.now().UTC()
	worksheet.LastUpdatedBy = userID
	if err := s.repo.UpdateWorksheet(ctx, *worksheet, expected); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update worksheet", slog.String("worksheet_id", worksheet.WorksheetID))
		}
		return err
	}
	return nil
}

func (s *worksheetService) UpdateInputs(ctx context.Context, worksheetID string, req dto.UpdateWorksheetInputsRequest) (*domain.Worksheet, error) {
	worksheet, err := s.loadForUpdate(ctx, worksheetID, req.Version)
	if err != nil {
		return nil, err
	}

	inputs := resolveDealInputs(ctx, s.rates, req.Inputs)
	financeTerms := dto.ToDomainFinanceTerms(req.FinanceTerms)
	leaseTerms := dto.ToDomainLeaseTerms(req.LeaseTerms)
	scenarios, err := dealcalc.GenerateScenariosWithOptions(inputs, financeTerms, leaseTerms, s.structureOpts)
	if err != nil {
		return nil, err
	}

	worksheet.Inputs = inputs
	worksheet.FinanceTerms = financeTerms
	worksheet.LeaseTerms = leaseTerms
	worksheet.ReplaceScenarios(scenarios)

	if err := s.save(ctx, worksheet, req.UserID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Worksheet inputs updated",
		slog.String("worksheet_id", worksheetID),
		slog.Int("version", worksheet.Version))
	return worksheet, nil
}

func (s *worksheetService) SelectScenario(ctx context.Context, worksheetID string, req dto.SelectScenarioRequest) (*domain.Worksheet, error) {
	worksheet, err := s.loadForUpdate(ctx, worksheetID, req.Version)
	if err != nil {
		return nil, err
	}

	if _, err := worksheet.SelectScenario(req.ScenarioID); err != nil {
		return nil, err
	}
	profit, err := dealcalc.AnalyzeProfit(
		worksheet.Inputs.VehiclePrice,
		worksheet.VehicleCost,
		worksheet.Inputs.FiProducts,
		worksheet.Holdback,
		worksheet.Incentives,
	)
	if err != nil {
		return nil, err
	}
	if err := worksheet.RecordProfit(profit); err != nil {
		return nil, err
	}

	if err := s.save(ctx, worksheet, req.UserID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Worksheet scenario selected",
		slog.String("worksheet_id", worksheetID),
		slog.String("scenario_id", req.ScenarioID),
		slog.String("total_profit", profit.TotalProfit.String()))
	return worksheet, nil
}
