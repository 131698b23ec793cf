package service

import (
	"github.com/FutureNHS/futurenhs-platform/internal/queue"
)

type Services struct {
	stores    StoreProvider
	txRunner  TxRunner
	publisher queue.Publisher
}

// NewServices wires services over stores for reads outside a transaction,
// txRunner for units of work and publisher for post-commit events.
func NewServices(stores StoreProvider, txRunner TxRunner, publisher queue.Publisher) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		publisher: publisher,
	}
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores, s.txRunner, s.publisher)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores, s.txRunner)
}
