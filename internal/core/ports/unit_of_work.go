package ports

import (
	"context"
)

// UnitOfWorkFactory opens a fresh transaction scope per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups quote writes of one command into a single transaction.
// Callers Begin, defer Rollback and Commit on success. Rollback after Commit
// returns an error that the deferred call ignores.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// QuoteRepository returns a repository bound to the open transaction.
	QuoteRepository() QuoteRepository
}
