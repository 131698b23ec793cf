package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/FutureNHS/futurenhs-platform/common/id"
	"github.com/FutureNHS/futurenhs-platform/common/logger"
	"github.com/FutureNHS/futurenhs-platform/internal/domain"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/queue"
	"github.com/FutureNHS/futurenhs-platform/internal/store"
)

const workspaceComponent = "workspaces.service"

// WorkspaceService owns workspaces and the admins/members team pair behind
// each one. Mutations run in a single unit of work; events are published only
// after it commits. When publishing fails the committed result is returned
// together with an error matching ErrEventNotPublished.
type WorkspaceService interface {
	Create(ctx context.Context, title, description string, requester model.AuthID) (*model.Workspace, error)
	Get(ctx context.Context, id int64) (*model.Workspace, error)
	List(ctx context.Context) ([]model.Workspace, error)
	Update(ctx context.Context, id int64, title, description string) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) (*model.Workspace, error)
	Members(ctx context.Context, workspaceID int64, filter *model.RoleFilter) ([]model.User, error)
	IsAdmin(ctx context.Context, workspaceID, userID int64) (bool, error)
	ChangeMembership(ctx context.Context, workspaceID, targetUserID int64, role model.Role, requester model.AuthID) (*model.Workspace, error)
}

type workspaceService struct {
	stores    StoreProvider
	txRunner  TxRunner
	publisher queue.Publisher
}

func NewWorkspaceService(stores StoreProvider, txRunner TxRunner, publisher queue.Publisher) WorkspaceService {
	return &workspaceService{
		stores:    stores,
		txRunner:  txRunner,
		publisher: publisher,
	}
}

func (s *workspaceService) Create(ctx context.Context, title, description string, requester model.AuthID) (*model.Workspace, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		AuthID:    logger.Ptr(requester.String()),
		Operation: logger.Ptr("workspace.create"),
		Component: workspaceComponent,
	})
	sc := logger.StartSpan(ctx, "workspace.create")
	defer sc.End()
	ctx = sc.Context()

	var (
		ws    *model.Workspace
		actor *model.User
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		user, err := resolveRequester(ctx, sp.Users(), requester)
		if err != nil {
			return err
		}
		if !user.IsPlatformAdmin {
			return fmt.Errorf("%w: only platform admins can create workspaces", ErrUnauthorized)
		}
		actor = user

		// The workspace row and its teams reference each other's ids; FK checks
		// run at commit.
		if err := sp.DeferConstraints(ctx); err != nil {
			return err
		}

		admins := &model.Team{ID: id.New(), Title: model.AdminsTeamTitle(title)}
		if err := sp.Teams().Create(ctx, admins); err != nil {
			return fmt.Errorf("creating admins team: %w", err)
		}
		members := &model.Team{ID: id.New(), Title: model.MembersTeamTitle(title)}
		if err := sp.Teams().Create(ctx, members); err != nil {
			return fmt.Errorf("creating members team: %w", err)
		}

		ws = &model.Workspace{
			ID:            id.New(),
			Title:         title,
			Description:   description,
			AdminsTeamID:  admins.ID,
			MembersTeamID: members.ID,
		}
		if err := sp.Workspaces().Create(ctx, ws); err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		logFailure(ctx, "failed to create workspace", err)
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &ws.ID, UserID: &actor.ID})
	sc.SetInt64("workspace.id", ws.ID)
	slog.InfoContext(ctx, "workspace created", "title", ws.Title)

	return ws, s.publish(ctx, domain.NewEvent(id.Format(ws.ID), domain.WorkspaceCreatedData{
		WorkspaceID: id.Format(ws.ID),
		UserID:      id.Format(actor.ID),
		Title:       ws.Title,
	}))
}

func (s *workspaceService) Get(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		return nil, storeErr(err, "workspace", "getting workspace")
	}
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context) ([]model.Workspace, error) {
	workspaces, err := s.stores.Workspaces().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return workspaces, nil
}

// Update changes title and description only. It performs no authorization
// check and publishes no event.
func (s *workspaceService) Update(ctx context.Context, workspaceID int64, title, description string) (*model.Workspace, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &workspaceID,
		Operation:   logger.Ptr("workspace.update"),
		Component:   workspaceComponent,
	})

	ws := &model.Workspace{ID: workspaceID, Title: title, Description: description}
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Workspaces().Update(ctx, ws); err != nil {
			return storeErr(err, "workspace", "updating workspace")
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "failed to update workspace", err)
		return nil, err
	}

	slog.InfoContext(ctx, "workspace updated")
	return ws, nil
}

// Delete removes the workspace together with both of its teams and their
// memberships. It performs no authorization check and publishes no event.
func (s *workspaceService) Delete(ctx context.Context, workspaceID int64) (*model.Workspace, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &workspaceID,
		Operation:   logger.Ptr("workspace.delete"),
		Component:   workspaceComponent,
	})
	sc := logger.StartSpan(ctx, "workspace.delete")
	defer sc.End()
	ctx = sc.Context()

	var ws *model.Workspace
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		ws, err = sp.Workspaces().Delete(ctx, workspaceID)
		if err != nil {
			return storeErr(err, "workspace", "deleting workspace")
		}
		for _, teamID := range []int64{ws.AdminsTeamID, ws.MembersTeamID} {
			if err := sp.Teams().Delete(ctx, teamID); err != nil && !errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("deleting team %d: %w", teamID, err)
			}
		}
		return nil
	})
	if err != nil {
		sc.RecordError(err)
		logFailure(ctx, "failed to delete workspace", err)
		return nil, err
	}

	slog.InfoContext(ctx, "workspace deleted")
	return ws, nil
}

// Members lists workspace users. A nil filter lists the members team, Admin
// the admins team and NonAdmin the members team minus the admins team.
func (s *workspaceService) Members(ctx context.Context, workspaceID int64, filter *model.RoleFilter) ([]model.User, error) {
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		return nil, storeErr(err, "workspace", "getting workspace")
	}

	teams := s.stores.Teams()
	var users []model.User
	switch {
	case filter == nil:
		users, err = teams.Members(ctx, ws.MembersTeamID)
	case *filter == model.RoleFilterAdmin:
		users, err = teams.Members(ctx, ws.AdminsTeamID)
	case *filter == model.RoleFilterNonAdmin:
		users, err = teams.MembersDifference(ctx, ws.MembersTeamID, ws.AdminsTeamID)
	default:
		return nil, fmt.Errorf("%w: unknown role filter %q", ErrInvalidOperation, *filter)
	}
	if err != nil {
		return nil, fmt.Errorf("listing workspace members: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// IsAdmin reports whether userID is in the workspace's admins team. Unknown
// users are not admins.
func (s *workspaceService) IsAdmin(ctx context.Context, workspaceID, userID int64) (bool, error) {
	if _, err := s.stores.Users().GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("getting user: %w", err)
	}
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		return false, storeErr(err, "workspace", "getting workspace")
	}
	admin, err := s.stores.Teams().IsMember(ctx, ws.AdminsTeamID, userID)
	if err != nil {
		return false, fmt.Errorf("checking admins team membership: %w", err)
	}
	return admin, nil
}

func (s *workspaceService) ChangeMembership(ctx context.Context, workspaceID, targetUserID int64, role model.Role, requester model.AuthID) (*model.Workspace, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID:  &workspaceID,
		TargetUserID: &targetUserID,
		AuthID:       logger.Ptr(requester.String()),
		Operation:    logger.Ptr("workspace.change_membership"),
		Component:    workspaceComponent,
	})
	sc := logger.StartSpan(ctx, "workspace.change_membership")
	defer sc.End()
	ctx = sc.Context()
	sc.SetInt64("workspace.id", workspaceID)

	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidOperation, role)
	}

	var (
		ws    *model.Workspace
		actor *model.User
	)
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		user, err := resolveRequester(ctx, sp.Users(), requester)
		if err != nil {
			return err
		}
		actor = user

		if user.ID == targetUserID {
			return fmt.Errorf("%w: users cannot change their own workspace membership", ErrInvalidOperation)
		}

		ws, err = sp.Workspaces().GetByID(ctx, workspaceID)
		if err != nil {
			return storeErr(err, "workspace", "getting workspace")
		}

		if !user.IsPlatformAdmin {
			admin, err := isAdmin(ctx, sp, ws, user.ID)
			if err != nil {
				return err
			}
			if !admin {
				return fmt.Errorf("%w: only platform admins and workspace admins can change membership", ErrUnauthorized)
			}
		}

		// Unknown targets are only reported to requesters with standing.
		if _, err := sp.Users().GetByID(ctx, targetUserID); err != nil {
			return storeErr(err, "user", "getting target user")
		}

		return applyRole(ctx, sp.Teams(), ws, targetUserID, role)
	})
	if err != nil {
		sc.RecordError(err)
		logFailure(ctx, "failed to change workspace membership", err, "role", role)
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &actor.ID})
	slog.InfoContext(ctx, "workspace membership changed", "role", role)

	return ws, s.publish(ctx, domain.NewEvent(id.Format(ws.ID), domain.WorkspaceMembershipChangedData{
		RequestingUserID:    id.Format(actor.ID),
		AffectedWorkspaceID: id.Format(ws.ID),
		AffectedUserID:      id.Format(targetUserID),
		AffectedRole:        role.String(),
	}))
}

// applyRole converges the user's team memberships on role. Add and remove are
// idempotent, so reapplying a role writes nothing new.
func applyRole(ctx context.Context, teams store.TeamStore, ws *model.Workspace, userID int64, role model.Role) error {
	var err error
	switch role {
	case model.RoleAdmin:
		if err = teams.AddMember(ctx, ws.AdminsTeamID, userID); err == nil {
			err = teams.AddMember(ctx, ws.MembersTeamID, userID)
		}
	case model.RoleNonAdmin:
		if err = teams.RemoveMember(ctx, ws.AdminsTeamID, userID); err == nil {
			err = teams.AddMember(ctx, ws.MembersTeamID, userID)
		}
	case model.RoleNonMember:
		if err = teams.RemoveMember(ctx, ws.AdminsTeamID, userID); err == nil {
			err = teams.RemoveMember(ctx, ws.MembersTeamID, userID)
		}
	}
	if err != nil {
		return fmt.Errorf("applying role %s: %w", role, err)
	}
	return nil
}

func isAdmin(ctx context.Context, sp StoreProvider, ws *model.Workspace, userID int64) (bool, error) {
	if _, err := sp.Users().GetByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("getting user: %w", err)
	}
	admin, err := sp.Teams().IsMember(ctx, ws.AdminsTeamID, userID)
	if err != nil {
		return false, fmt.Errorf("checking admins team membership: %w", err)
	}
	return admin, nil
}

func resolveRequester(ctx context.Context, users store.UserStore, authID model.AuthID) (*model.User, error) {
	user, err := users.GetByAuthID(ctx, authID)
	if err != nil {
		return nil, storeErr(err, "requesting user", "resolving requesting user")
	}
	return user, nil
}

func (s *workspaceService) publish(ctx context.Context, ev domain.Event) error {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		slog.ErrorContext(ctx, "failed to publish event",
			"error", err,
			"event_id", ev.ID.String(),
			"event_type", ev.Type,
		)
		return fmt.Errorf("%w: %w", ErrEventNotPublished, err)
	}
	return nil
}

// logFailure logs caller errors at warn and everything else at error.
func logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidOperation) {
		slog.WarnContext(ctx, msg, args...)
		return
	}
	slog.ErrorContext(ctx, msg, args...)
}
