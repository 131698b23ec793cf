package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/FutureNHS/futurenhs-platform/core/db/sqlc"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/jackc/pgx/v5"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:            ws.ID,
		Title:         ws.Title,
		Description:   ws.Description,
		AdminsTeamID:  ws.AdminsTeamID,
		MembersTeamID: ws.MembersTeamID,
	})
	if err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) List(ctx context.Context) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return toWorkspaceModels(rows), nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:          ws.ID,
		Title:       ws.Title,
		Description: ws.Description,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("updating workspace: %w", err)
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.DeleteWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("deleting workspace: %w", err)
	}
	return toWorkspaceModel(row), nil
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		AdminsTeamID:  row.AdminsTeamID,
		MembersTeamID: row.MembersTeamID,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func toWorkspaceModels(rows []sqlc.Workspace) []model.Workspace {
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result
}
