package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthID is the identity token issued by the external auth provider.
type AuthID = uuid.UUID

type User struct {
	ID              int64     `json:"id"`
	AuthID          AuthID    `json:"auth_id"`
	Name            string    `json:"name"`
	EmailAddress    string    `json:"email_address"`
	IsPlatformAdmin bool      `json:"is_platform_admin"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
