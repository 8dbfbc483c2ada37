package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/deal_desk/internal/apperrors"
	"github.com/SscSPs/deal_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	"github.com/SscSPs/deal_desk/internal/models"
	"github.com/SscSPs/deal_desk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const worksheetColumns = `worksheet_id, customer_name, vin, status, selected_scenario_id, document, version,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxWorksheetRepository struct {
	BaseRepository
}

// newPgxWorksheetRepository creates a new repository for deal worksheets.
func newPgxWorksheetRepository(pool *pgxpool.Pool) portsrepo.WorksheetRepositoryWithTx {
	return &PgxWorksheetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WorksheetRepositoryWithTx = (*PgxWorksheetRepository)(nil)

func scanWorksheet(row pgx.Row) (models.Worksheet, error) {
	var m models.Worksheet
	err := row.Scan(
		&m.WorksheetID,
		&m.CustomerName,
		&m.VIN,
		&m.Status,
		&m.SelectedScenarioID,
		&m.Document,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveWorksheet inserts a new worksheet.
func (r *PgxWorksheetRepository) SaveWorksheet(ctx context.Context, worksheet domain.Worksheet) error {
	m, err := mapping.ToModelWorksheet(worksheet)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO deal_worksheets (` + worksheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.WorksheetID,
		m.CustomerName,
		m.VIN,
		m.Status,
		m.SelectedScenarioID,
		m.Document,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: worksheet %s already exists", apperrors.ErrDuplicate, m.WorksheetID)
		}
		return fmt.Errorf("failed to save worksheet %s: %w", m.WorksheetID, err)
	}
	return nil
}

// FindWorksheetByID retrieves a worksheet by its id.
func (r *PgxWorksheetRepository) FindWorksheetByID(ctx context.Context, worksheetID string) (*domain.Worksheet, error) {
	query := `SELECT ` + worksheetColumns + ` FROM deal_worksheets WHERE worksheet_id = $1;`

	m, err := scanWorksheet(r.Pool.QueryRow(ctx, query, worksheetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find worksheet %s: %w", worksheetID, err)
	}

	w, err := mapping.ToDomainWorksheet(m)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWorksheets returns worksheets newest first using keyset pagination.
func (r *PgxWorksheetRepository) ListWorksheets(ctx context.Context, limit int, after *domain.WorksheetCursor) ([]domain.Worksheet, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		query := `SELECT ` + worksheetColumns + `
			FROM deal_worksheets
			ORDER BY created_at DESC, worksheet_id DESC
			LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, limit)
	} else {
		query := `SELECT ` + worksheetColumns + `
			FROM deal_worksheets
			WHERE (created_at, worksheet_id) < ($1, $2)
			ORDER BY created_at DESC, worksheet_id DESC
			LIMIT $3;`
		rows, err = r.Pool.Query(ctx, query, after.CreatedAt, after.WorksheetID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query worksheets: %w", err)
	}
	defer rows.Close()

	modelWorksheets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Worksheet, error) {
		return scanWorksheet(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan worksheets: %w", err)
	}

	return mapping.ToDomainWorksheetSlice(modelWorksheets)
}

// UpdateWorksheet replaces a worksheet when the stored version still matches.
// The row is locked while its version is checked so that a missing worksheet
// and a lost update are reported separately.
func (r *PgxWorksheetRepository) UpdateWorksheet(ctx context.Context, worksheet domain.Worksheet, expectedVersion int) (err error) {
	m, err := mapping.ToModelWorksheet(worksheet)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var storedVersion int
	err = tx.QueryRow(ctx, `SELECT version FROM deal_worksheets WHERE worksheet_id = $1 FOR UPDATE;`, m.WorksheetID).
		Scan(&storedVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock worksheet %s: %w", m.WorksheetID, err)
	}
	if storedVersion != expectedVersion {
		err = fmt.Errorf("%w: worksheet %s is at version %d, expected %d",
			apperrors.ErrConflict, m.WorksheetID, storedVersion, expectedVersion)
		return err
	}

	query := `
		UPDATE deal_worksheets
		SET customer_name = $1, vin = $2, status = $3, selected_scenario_id = $4, document = $5,
			version = $6, last_updated_at = $7, last_updated_by = $8
		WHERE worksheet_id = $9;
	`
	if _, err = tx.Exec(ctx, query,
		m.CustomerName,
		m.VIN,
		m.Status,
		m.SelectedScenarioID,
		m.Document,
		m.Version,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.WorksheetID,
	); err != nil {
		return fmt.Errorf("failed to update worksheet %s: %w", m.WorksheetID, err)
	}

	return r.Commit(ctx, tx)
}
