package store

import (
	"context"
	"errors"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore is the user directory: it resolves external identities to users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByAuthID(ctx context.Context, authID model.AuthID) (*model.User, error)
	GetOrCreate(ctx context.Context, user *model.User) error
	SetPlatformAdmin(ctx context.Context, authID model.AuthID, isPlatformAdmin bool) (*model.User, error)
}

// TeamStore defines the contract for team and team membership data access.
// AddMember and RemoveMember are idempotent.
type TeamStore interface {
	Create(ctx context.Context, team *model.Team) error
	GetByID(ctx context.Context, id int64) (*model.Team, error)
	Delete(ctx context.Context, id int64) error
	Members(ctx context.Context, teamID int64) ([]model.User, error)
	// MembersDifference lists users in team a that are not in team b.
	MembersDifference(ctx context.Context, a, b int64) ([]model.User, error)
	IsMember(ctx context.Context, teamID, userID int64) (bool, error)
	AddMember(ctx context.Context, teamID, userID int64) error
	RemoveMember(ctx context.Context, teamID, userID int64) error
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	Create(ctx context.Context, ws *model.Workspace) error
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	List(ctx context.Context) ([]model.Workspace, error)
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) (*model.Workspace, error)
}
