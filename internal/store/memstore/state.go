package memstore

import (
	"fmt"
	"maps"
	"sort"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

type state struct {
	users      map[int64]model.User
	teams      map[int64]model.Team
	members    map[int64]map[int64]struct{}
	workspaces map[int64]model.Workspace

	// deferred is set by DeferConstraints and scoped to one transaction.
	deferred bool
}

func newState() *state {
	return &state{
		users:      make(map[int64]model.User),
		teams:      make(map[int64]model.Team),
		members:    make(map[int64]map[int64]struct{}),
		workspaces: make(map[int64]model.Workspace),
	}
}

func (s *state) clone() *state {
	c := &state{
		users:      maps.Clone(s.users),
		teams:      maps.Clone(s.teams),
		members:    make(map[int64]map[int64]struct{}, len(s.members)),
		workspaces: maps.Clone(s.workspaces),
	}
	for teamID, users := range s.members {
		c.members[teamID] = maps.Clone(users)
	}
	return c
}

func (s *state) userByAuthID(authID model.AuthID) (model.User, bool) {
	for _, u := range s.users {
		if u.AuthID == authID {
			return u, true
		}
	}
	return model.User{}, false
}

// checkWorkspaceTeams is the foreign key check from workspaces to teams.
func (s *state) checkWorkspaceTeams(ws model.Workspace) error {
	if ws.AdminsTeamID == ws.MembersTeamID {
		return fmt.Errorf("workspace %d: admins and members teams must differ", ws.ID)
	}
	for _, teamID := range []int64{ws.AdminsTeamID, ws.MembersTeamID} {
		if _, ok := s.teams[teamID]; !ok {
			return fmt.Errorf("workspace %d references missing team %d", ws.ID, teamID)
		}
	}
	return nil
}

func (s *state) checkConstraints() error {
	for _, ws := range s.workspaces {
		if err := s.checkWorkspaceTeams(ws); err != nil {
			return err
		}
	}
	s.deferred = false
	return nil
}

// sortedUsers orders users the same way the SQL queries do.
func sortedUsers(users []model.User) []model.User {
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})
	return users
}

func sortWorkspaces(workspaces []model.Workspace) {
	sort.Slice(workspaces, func(i, j int) bool {
		if !workspaces[i].CreatedAt.Equal(workspaces[j].CreatedAt) {
			return workspaces[i].CreatedAt.Before(workspaces[j].CreatedAt)
		}
		return workspaces[i].ID < workspaces[j].ID
	})
}
