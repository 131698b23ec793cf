package dto

import (
	"time"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email,max=255"`
}

type SetPlatformAdminRequest struct {
	IsPlatformAdmin *bool `json:"is_platform_admin" binding:"required"`
}

type UserResponse struct {
	ID              int64     `json:"id,string"`
	AuthID          string    `json:"auth_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IsPlatformAdmin bool      `json:"is_platform_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:              u.ID,
		AuthID:          u.AuthID.String(),
		Name:            u.Name,
		Email:           u.EmailAddress,
		IsPlatformAdmin: u.IsPlatformAdmin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func ToUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *ToUserResponse(&users[i]))
	}
	return out
}
