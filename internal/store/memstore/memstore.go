// Package memstore is an in-memory implementation of the stores and of the
// unit of work around them. Transactions run against a copy of the committed
// state which replaces it only on commit, so a failed transaction leaves no
// trace. Transactions are serialized.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/store"
)

// FaultFunc is consulted before every store operation; a non-nil error is
// returned from that operation. Operation names look like "teams.AddMember".
type FaultFunc func(op string) error

type DB struct {
	mu    sync.Mutex
	state *state
	fault FaultFunc
}

func New() *DB {
	return &DB{state: newState()}
}

// SetFault installs (or with nil clears) the fault hook.
func (db *DB) SetFault(fn FaultFunc) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.fault = fn
}

// Stores returns stores reading and writing the committed state directly,
// outside any transaction.
func (db *DB) Stores() *Stores {
	return &Stores{db: db}
}

// WithTx runs fn against a private copy of the state and publishes the copy
// when fn succeeds and every deferred constraint holds.
func (db *DB) WithTx(ctx context.Context, fn func(stores *Stores) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	tx := &Stores{db: db, tx: db.state.clone()}
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.tx.checkConstraints(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	db.state = tx.tx
	return nil
}

// AddUser seeds a user directly into the committed state.
func (db *DB) AddUser(u model.User) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.state.users[u.ID] = u
}

// MembershipCount is the number of (team, user) rows committed.
func (db *DB) MembershipCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := 0
	for _, members := range db.state.members {
		n += len(members)
	}
	return n
}

// TeamCount is the number of teams committed.
func (db *DB) TeamCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.state.teams)
}

// Stores is the memstore counterpart of store.Stores. When tx is nil every
// call locks the DB and operates on the committed state.
type Stores struct {
	db *DB
	tx *state
}

func (s *Stores) Users() store.UserStore {
	return &userStore{s}
}

func (s *Stores) Teams() store.TeamStore {
	return &teamStore{s}
}

func (s *Stores) Workspaces() store.WorkspaceStore {
	return &workspaceStore{s}
}

func (s *Stores) DeferConstraints(_ context.Context) error {
	return s.run("db.DeferConstraints", func(st *state) error {
		st.deferred = true
		return nil
	})
}

// run executes op against the transaction state, or against the committed
// state under the DB lock.
func (s *Stores) run(op string, fn func(st *state) error) error {
	if s.tx != nil {
		if err := s.db.checkFault(op); err != nil {
			return err
		}
		return fn(s.tx)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.checkFault(op); err != nil {
		return err
	}
	return fn(s.db.state)
}

// checkFault must be called with db.mu held.
func (db *DB) checkFault(op string) error {
	if db.fault == nil {
		return nil
	}
	return db.fault(op)
}
