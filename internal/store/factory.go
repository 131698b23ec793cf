package store

import (
	"context"
	"fmt"

	"github.com/FutureNHS/futurenhs-platform/core/db/sqlc"
)

// Stores hands out stores sharing one query set. Built over the pool it
// serves reads; built over a transaction it is the unit of work's view.
type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.queries)
}

func (s *Stores) Teams() TeamStore {
	return newTeamStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

// DeferConstraints postpones deferrable foreign key checks to commit.
// Only meaningful when the stores are bound to a transaction.
func (s *Stores) DeferConstraints(ctx context.Context) error {
	if err := s.queries.DeferAllConstraints(ctx); err != nil {
		return fmt.Errorf("deferring constraints: %w", err)
	}
	return nil
}
