package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/FutureNHS/futurenhs-platform/core/db/sqlc"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByAuthID(ctx context.Context, authID model.AuthID) (*model.User, error) {
	row, err := s.queries.GetUserByAuthID(ctx, toPgUUID(authID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user by auth id: %w", err)
	}
	return toUserModel(row), nil
}

// GetOrCreate inserts the user unless one with the same auth id exists, in
// which case user is overwritten with the stored row.
func (s *userStore) GetOrCreate(ctx context.Context, user *model.User) error {
	row, err := s.queries.GetOrCreateUser(ctx, sqlc.GetOrCreateUserParams{
		ID:           user.ID,
		AuthID:       toPgUUID(user.AuthID),
		Name:         user.Name,
		EmailAddress: user.EmailAddress,
	})
	if err != nil {
		return fmt.Errorf("get or create user: %w", err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) SetPlatformAdmin(ctx context.Context, authID model.AuthID, isPlatformAdmin bool) (*model.User, error) {
	row, err := s.queries.SetUserPlatformAdmin(ctx, sqlc.SetUserPlatformAdminParams{
		AuthID:          toPgUUID(authID),
		IsPlatformAdmin: isPlatformAdmin,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("setting platform admin: %w", err)
	}
	return toUserModel(row), nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:              row.ID,
		AuthID:          model.AuthID(row.AuthID.Bytes),
		Name:            row.Name,
		EmailAddress:    row.EmailAddress,
		IsPlatformAdmin: row.IsPlatformAdmin,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func toUserModels(rows []sqlc.User) []model.User {
	result := make([]model.User, len(rows))
	for i, row := range rows {
		result[i] = *toUserModel(row)
	}
	return result
}

func toPgUUID(id model.AuthID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}
