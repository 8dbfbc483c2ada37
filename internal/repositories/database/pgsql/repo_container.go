package pgsql

import (
	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories. The scenario
// cache lives outside the database and is attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cache portsrepo.ScenarioCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorksheetRepo: newPgxWorksheetRepository(dbPool),
		ScenarioCache: cache,
	}
}
