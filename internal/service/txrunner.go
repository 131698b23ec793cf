package service

import (
	"context"

	"github.com/FutureNHS/futurenhs-platform/core/db"
	"github.com/FutureNHS/futurenhs-platform/core/db/sqlc"
	"github.com/FutureNHS/futurenhs-platform/internal/store"
)

// StoreProvider exposes the stores an operation works with. Inside WithTx
// every store it returns is bound to the same transaction.
type StoreProvider interface {
	Users() store.UserStore
	Teams() store.TeamStore
	Workspaces() store.WorkspaceStore
	// DeferConstraints postpones deferrable foreign key checks to commit.
	DeferConstraints(ctx context.Context) error
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
