package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by stores that run multi-statement
// updates, such as the version check and write of a worksheet save.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on an already closed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
