package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FutureNHS/futurenhs-platform/common/id"
	"github.com/FutureNHS/futurenhs-platform/common/logger"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

// UserService registers authenticated identities and manages the platform
// admin flag.
type UserService interface {
	GetOrCreate(ctx context.Context, authID model.AuthID, name, email string) (*model.User, error)
	GetByAuthID(ctx context.Context, authID model.AuthID) (*model.User, error)
	SetPlatformAdmin(ctx context.Context, requester, target model.AuthID, isPlatformAdmin bool) (*model.User, error)
}

type userService struct {
	stores   StoreProvider
	txRunner TxRunner
}

func NewUserService(stores StoreProvider, txRunner TxRunner) UserService {
	return &userService{
		stores:   stores,
		txRunner: txRunner,
	}
}

// GetOrCreate returns the user registered for authID, registering it first
// if needed. Name and email of an existing user are left alone.
func (s *userService) GetOrCreate(ctx context.Context, authID model.AuthID, name, email string) (*model.User, error) {
	user := &model.User{
		ID:           id.New(),
		AuthID:       authID,
		Name:         name,
		EmailAddress: email,
	}

	if err := s.stores.Users().GetOrCreate(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to get or create user",
			"error", err,
			"auth_id", authID.String(),
		)
		return nil, fmt.Errorf("getting or creating user: %w", err)
	}

	slog.InfoContext(ctx, "user resolved", "user_id", user.ID)
	return user, nil
}

func (s *userService) GetByAuthID(ctx context.Context, authID model.AuthID) (*model.User, error) {
	user, err := s.stores.Users().GetByAuthID(ctx, authID)
	if err != nil {
		return nil, storeErr(err, "user", "getting user")
	}
	return user, nil
}

// SetPlatformAdmin grants or revokes platform admin on target. Only platform
// admins may do this.
func (s *userService) SetPlatformAdmin(ctx context.Context, requester, target model.AuthID, isPlatformAdmin bool) (*model.User, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		AuthID:    logger.Ptr(requester.String()),
		Operation: logger.Ptr("user.set_platform_admin"),
		Component: "users.service",
	})

	var updated *model.User
	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		actor, err := resolveRequester(ctx, sp.Users(), requester)
		if err != nil {
			return err
		}
		if !actor.IsPlatformAdmin {
			return fmt.Errorf("%w: only platform admins can change platform admin status", ErrUnauthorized)
		}

		updated, err = sp.Users().SetPlatformAdmin(ctx, target, isPlatformAdmin)
		if err != nil {
			return storeErr(err, "user", "setting platform admin")
		}
		return nil
	})
	if err != nil {
		logFailure(ctx, "failed to set platform admin", err, "target_auth_id", target.String())
		return nil, err
	}

	slog.InfoContext(ctx, "platform admin updated",
		"target_user_id", updated.ID,
		"is_platform_admin", updated.IsPlatformAdmin,
	)
	return updated, nil
}
