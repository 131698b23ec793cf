package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/FutureNHS/futurenhs-platform/core/db/sqlc"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/jackc/pgx/v5"
)

type teamStore struct {
	queries *sqlc.Queries
}

func newTeamStore(queries *sqlc.Queries) TeamStore {
	return &teamStore{queries: queries}
}

func (s *teamStore) Create(ctx context.Context, team *model.Team) error {
	row, err := s.queries.CreateTeam(ctx, sqlc.CreateTeamParams{
		ID:    team.ID,
		Title: team.Title,
	})
	if err != nil {
		return fmt.Errorf("creating team: %w", err)
	}
	*team = *toTeamModel(row)
	return nil
}

func (s *teamStore) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	row, err := s.queries.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting team: %w", err)
	}
	return toTeamModel(row), nil
}

func (s *teamStore) Delete(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *teamStore) Members(ctx context.Context, teamID int64) ([]model.User, error) {
	rows, err := s.queries.ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("getting team members: %w", err)
	}
	return toUserModels(rows), nil
}

func (s *teamStore) MembersDifference(ctx context.Context, a, b int64) ([]model.User, error) {
	rows, err := s.queries.ListTeamMembersDifference(ctx, sqlc.ListTeamMembersDifferenceParams{
		TeamA: a,
		TeamB: b,
	})
	if err != nil {
		return nil, fmt.Errorf("getting members of team %d not in team %d: %w", a, b, err)
	}
	return toUserModels(rows), nil
}

func (s *teamStore) IsMember(ctx context.Context, teamID, userID int64) (bool, error) {
	found, err := s.queries.IsTeamMember(ctx, sqlc.IsTeamMemberParams{
		TeamID: teamID,
		UserID: userID,
	})
	if err != nil {
		return false, fmt.Errorf("checking team membership: %w", err)
	}
	return found, nil
}

func (s *teamStore) AddMember(ctx context.Context, teamID, userID int64) error {
	if err := s.queries.AddTeamMember(ctx, sqlc.AddTeamMemberParams{
		TeamID: teamID,
		UserID: userID,
	}); err != nil {
		return fmt.Errorf("adding member to team: %w", err)
	}
	return nil
}

func (s *teamStore) RemoveMember(ctx context.Context, teamID, userID int64) error {
	if err := s.queries.RemoveTeamMember(ctx, sqlc.RemoveTeamMemberParams{
		TeamID: teamID,
		UserID: userID,
	}); err != nil {
		return fmt.Errorf("removing member from team: %w", err)
	}
	return nil
}

func toTeamModel(row sqlc.Team) *model.Team {
	return &model.Team{
		ID:        row.ID,
		Title:     row.Title,
		CreatedAt: row.CreatedAt.Time,
	}
}
