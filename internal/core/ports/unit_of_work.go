package ports

import "context"

// UnitOfWork scopes repository work to one business transaction. The
// durable adapter maps it onto a database transaction; the in-memory
// adapter's transaction lifecycle is a no-op because every repository
// operation there is already atomic.
type UnitOfWork interface {
	// Begin starts the transaction. Calling Begin on an already started
	// unit of work is a no-op.
	Begin(ctx context.Context) error

	// Commit finalizes the transaction.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Safe to defer after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order registry bound to this unit of
	// work's transaction.
	OrderRepository() OrderRepository
}
