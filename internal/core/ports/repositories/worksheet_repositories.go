package repositories

import (
	"context"

	"github.com/SscSPs/deal_desk/internal/core/domain"
)

// WorksheetReader defines read operations for deal worksheets
type WorksheetReader interface {
	// FindWorksheetByID retrieves a worksheet by its id.
	FindWorksheetByID(ctx context.Context, worksheetID string) (*domain.Worksheet, error)

	// ListWorksheets returns up to limit worksheets ordered newest first, ties
	// broken by descending id. When after is non-nil only worksheets that sort
	// after that position are returned.
	ListWorksheets(ctx context.Context, limit int, after *domain.WorksheetCursor) ([]domain.Worksheet, error)
}

// WorksheetWriter defines write operations for deal worksheets
type WorksheetWriter interface {
	// SaveWorksheet inserts a new worksheet.
	SaveWorksheet(ctx context.Context, worksheet domain.Worksheet) error

	// UpdateWorksheet replaces a worksheet if its stored version matches
	// expectedVersion, returning apperrors.ErrConflict otherwise.
	UpdateWorksheet(ctx context.Context, worksheet domain.Worksheet, expectedVersion int) error
}

// WorksheetRepositoryFacade combines all worksheet-related repository interfaces
type WorksheetRepositoryFacade interface {
	WorksheetReader
	WorksheetWriter
}

// WorksheetRepositoryWithTx extends WorksheetRepositoryFacade with transaction capabilities
type WorksheetRepositoryWithTx interface {
	WorksheetRepositoryFacade
	TransactionManager
}
