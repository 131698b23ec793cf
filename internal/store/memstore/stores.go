package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/store"
)

type userStore struct{ s *Stores }

func (u *userStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	var out *model.User
	err := u.s.run("users.GetByID", func(st *state) error {
		user, ok := st.users[id]
		if !ok {
			return store.ErrNotFound
		}
		out = &user
		return nil
	})
	return out, err
}

func (u *userStore) GetByAuthID(_ context.Context, authID model.AuthID) (*model.User, error) {
	var out *model.User
	err := u.s.run("users.GetByAuthID", func(st *state) error {
		user, ok := st.userByAuthID(authID)
		if !ok {
			return store.ErrNotFound
		}
		out = &user
		return nil
	})
	return out, err
}

func (u *userStore) GetOrCreate(_ context.Context, user *model.User) error {
	return u.s.run("users.GetOrCreate", func(st *state) error {
		if existing, ok := st.userByAuthID(user.AuthID); ok {
			*user = existing
			return nil
		}
		if _, ok := st.users[user.ID]; ok {
			return fmt.Errorf("get or create user: duplicate id %d", user.ID)
		}
		now := time.Now().UTC()
		user.CreatedAt, user.UpdatedAt = now, now
		st.users[user.ID] = *user
		return nil
	})
}

func (u *userStore) SetPlatformAdmin(_ context.Context, authID model.AuthID, isPlatformAdmin bool) (*model.User, error) {
	var out *model.User
	err := u.s.run("users.SetPlatformAdmin", func(st *state) error {
		user, ok := st.userByAuthID(authID)
		if !ok {
			return store.ErrNotFound
		}
		user.IsPlatformAdmin = isPlatformAdmin
		user.UpdatedAt = time.Now().UTC()
		st.users[user.ID] = user
		out = &user
		return nil
	})
	return out, err
}

type teamStore struct{ s *Stores }

func (t *teamStore) Create(_ context.Context, team *model.Team) error {
	return t.s.run("teams.Create", func(st *state) error {
		if _, ok := st.teams[team.ID]; ok {
			return fmt.Errorf("creating team: duplicate id %d", team.ID)
		}
		team.CreatedAt = time.Now().UTC()
		st.teams[team.ID] = *team
		return nil
	})
}

func (t *teamStore) GetByID(_ context.Context, id int64) (*model.Team, error) {
	var out *model.Team
	err := t.s.run("teams.GetByID", func(st *state) error {
		team, ok := st.teams[id]
		if !ok {
			return store.ErrNotFound
		}
		out = &team
		return nil
	})
	return out, err
}

func (t *teamStore) Delete(_ context.Context, id int64) error {
	return t.s.run("teams.Delete", func(st *state) error {
		if _, ok := st.teams[id]; !ok {
			return store.ErrNotFound
		}
		delete(st.teams, id)
		delete(st.members, id)
		return nil
	})
}

func (t *teamStore) Members(_ context.Context, teamID int64) ([]model.User, error) {
	users := []model.User{}
	err := t.s.run("teams.Members", func(st *state) error {
		for userID := range st.members[teamID] {
			users = append(users, st.users[userID])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sortedUsers(users), nil
}

func (t *teamStore) MembersDifference(_ context.Context, a, b int64) ([]model.User, error) {
	users := []model.User{}
	err := t.s.run("teams.MembersDifference", func(st *state) error {
		for userID := range st.members[a] {
			if _, inB := st.members[b][userID]; !inB {
				users = append(users, st.users[userID])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sortedUsers(users), nil
}

func (t *teamStore) IsMember(_ context.Context, teamID, userID int64) (bool, error) {
	var found bool
	err := t.s.run("teams.IsMember", func(st *state) error {
		_, found = st.members[teamID][userID]
		return nil
	})
	return found, err
}

func (t *teamStore) AddMember(_ context.Context, teamID, userID int64) error {
	return t.s.run("teams.AddMember", func(st *state) error {
		if _, ok := st.teams[teamID]; !ok {
			return fmt.Errorf("adding member to team: team %d does not exist", teamID)
		}
		if _, ok := st.users[userID]; !ok {
			return fmt.Errorf("adding member to team: user %d does not exist", userID)
		}
		if st.members[teamID] == nil {
			st.members[teamID] = make(map[int64]struct{})
		}
		st.members[teamID][userID] = struct{}{}
		return nil
	})
}

func (t *teamStore) RemoveMember(_ context.Context, teamID, userID int64) error {
	return t.s.run("teams.RemoveMember", func(st *state) error {
		delete(st.members[teamID], userID)
		return nil
	})
}

type workspaceStore struct{ s *Stores }

func (w *workspaceStore) Create(_ context.Context, ws *model.Workspace) error {
	return w.s.run("workspaces.Create", func(st *state) error {
		if _, ok := st.workspaces[ws.ID]; ok {
			return fmt.Errorf("creating workspace: duplicate id %d", ws.ID)
		}
		if !st.deferred {
			if err := st.checkWorkspaceTeams(*ws); err != nil {
				return fmt.Errorf("creating workspace: %w", err)
			}
		}
		now := time.Now().UTC()
		ws.CreatedAt, ws.UpdatedAt = now, now
		st.workspaces[ws.ID] = *ws
		return nil
	})
}

func (w *workspaceStore) GetByID(_ context.Context, id int64) (*model.Workspace, error) {
	var out *model.Workspace
	err := w.s.run("workspaces.GetByID", func(st *state) error {
		ws, ok := st.workspaces[id]
		if !ok {
			return store.ErrNotFound
		}
		out = &ws
		return nil
	})
	return out, err
}

func (w *workspaceStore) List(_ context.Context) ([]model.Workspace, error) {
	out := []model.Workspace{}
	err := w.s.run("workspaces.List", func(st *state) error {
		for _, ws := range st.workspaces {
			out = append(out, ws)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortWorkspaces(out)
	return out, nil
}

func (w *workspaceStore) Update(_ context.Context, ws *model.Workspace) error {
	return w.s.run("workspaces.Update", func(st *state) error {
		existing, ok := st.workspaces[ws.ID]
		if !ok {
			return store.ErrNotFound
		}
		existing.Title = ws.Title
		existing.Description = ws.Description
		existing.UpdatedAt = time.Now().UTC()
		st.workspaces[ws.ID] = existing
		*ws = existing
		return nil
	})
}

func (w *workspaceStore) Delete(_ context.Context, id int64) (*model.Workspace, error) {
	var out *model.Workspace
	err := w.s.run("workspaces.Delete", func(st *state) error {
		ws, ok := st.workspaces[id]
		if !ok {
			return store.ErrNotFound
		}
		delete(st.workspaces, id)
		out = &ws
		return nil
	})
	return out, err
}
