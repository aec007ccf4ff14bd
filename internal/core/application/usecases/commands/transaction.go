package commands

import (
	"context"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"
)

// inTransaction runs fn inside a unit of work. The transaction is rolled back
// unless fn succeeds and the commit goes through. Begin and commit failures
// are wrapped as transient store errors; errors from fn pass through
// untouched so callers keep the domain error taxonomy.
func inTransaction(ctx context.Context, uow TxManager, fn func(ctx context.Context) error) error {
	if err := uow.Begin(ctx); err != nil {
		return errs.NewTransientStoreError("begin transaction", err)
	}

	// Rollback after commit is a no-op in the adapter.
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return errs.NewTransientStoreError("commit transaction", err)
	}

	return nil
}
