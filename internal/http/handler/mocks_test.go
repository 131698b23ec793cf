package handler_test

import (
	"context"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

type mockWorkspaceService struct {
	createFn           func(ctx context.Context, title, description string, requester model.AuthID) (*model.Workspace, error)
	getFn              func(ctx context.Context, id int64) (*model.Workspace, error)
	listFn             func(ctx context.Context) ([]model.Workspace, error)
	updateFn           func(ctx context.Context, id int64, title, description string) (*model.Workspace, error)
	deleteFn           func(ctx context.Context, id int64) (*model.Workspace, error)
	membersFn          func(ctx context.Context, workspaceID int64, filter *model.RoleFilter) ([]model.User, error)
	isAdminFn          func(ctx context.Context, workspaceID, userID int64) (bool, error)
	changeMembershipFn func(ctx context.Context, workspaceID, targetUserID int64, role model.Role, requester model.AuthID) (*model.Workspace, error)
}

func (m *mockWorkspaceService) Create(ctx context.Context, title, description string, requester model.AuthID) (*model.Workspace, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, description, requester)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Get(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceService) List(ctx context.Context) ([]model.Workspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Update(ctx context.Context, id int64, title, description string) (*model.Workspace, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, title, description)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Delete(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Members(ctx context.Context, workspaceID int64, filter *model.RoleFilter) ([]model.User, error) {
	if m.membersFn != nil {
		return m.membersFn(ctx, workspaceID, filter)
	}
	return nil, nil
}

func (m *mockWorkspaceService) IsAdmin(ctx context.Context, workspaceID, userID int64) (bool, error) {
	if m.isAdminFn != nil {
		return m.isAdminFn(ctx, workspaceID, userID)
	}
	return false, nil
}

func (m *mockWorkspaceService) ChangeMembership(ctx context.Context, workspaceID, targetUserID int64, role model.Role, requester model.AuthID) (*model.Workspace, error) {
	if m.changeMembershipFn != nil {
		return m.changeMembershipFn(ctx, workspaceID, targetUserID, role, requester)
	}
	return nil, nil
}

type mockUserService struct {
	getOrCreateFn      func(ctx context.Context, authID model.AuthID, name, email string) (*model.User, error)
	getByAuthIDFn      func(ctx context.Context, authID model.AuthID) (*model.User, error)
	setPlatformAdminFn func(ctx context.Context, requester, target model.AuthID, isPlatformAdmin bool) (*model.User, error)
}

func (m *mockUserService) GetOrCreate(ctx context.Context, authID model.AuthID, name, email string) (*model.User, error) {
	if m.getOrCreateFn != nil {
		return m.getOrCreateFn(ctx, authID, name, email)
	}
	return nil, nil
}

func (m *mockUserService) GetByAuthID(ctx context.Context, authID model.AuthID) (*model.User, error) {
	if m.getByAuthIDFn != nil {
		return m.getByAuthIDFn(ctx, authID)
	}
	return nil, nil
}

func (m *mockUserService) SetPlatformAdmin(ctx context.Context, requester, target model.AuthID, isPlatformAdmin bool) (*model.User, error) {
	if m.setPlatformAdminFn != nil {
		return m.setPlatformAdminFn(ctx, requester, target, isPlatformAdmin)
	}
	return nil, nil
}
