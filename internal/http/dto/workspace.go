package dto

import (
	"time"

	"github.com/FutureNHS/futurenhs-platform/internal/model"
)

type CreateWorkspaceRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=4000"`
}

type UpdateWorkspaceRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=4000"`
}

type ChangeMembershipRequest struct {
	Role string `json:"role" binding:"required"`
}

type WorkspaceResponse struct {
	ID            int64     `json:"id,string"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AdminsTeamID  int64     `json:"admins_team_id,string"`
	MembersTeamID int64     `json:"members_team_id,string"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WorkspaceMutationResponse answers mutations that publish an event.
// EventPublished is false when the change committed but the event was lost.
type WorkspaceMutationResponse struct {
	Workspace      *WorkspaceResponse `json:"workspace"`
	EventPublished bool               `json:"event_published"`
}

type IsAdminResponse struct {
	WorkspaceID int64 `json:"workspace_id,string"`
	UserID      int64 `json:"user_id,string"`
	IsAdmin     bool  `json:"is_admin"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:            ws.ID,
		Title:         ws.Title,
		Description:   ws.Description,
		AdminsTeamID:  ws.AdminsTeamID,
		MembersTeamID: ws.MembersTeamID,
		CreatedAt:     ws.CreatedAt,
		UpdatedAt:     ws.UpdatedAt,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []WorkspaceResponse {
	out := make([]WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		out = append(out, *ToWorkspaceResponse(&workspaces[i]))
	}
	return out
}
