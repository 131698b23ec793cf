package model

import "time"

type Workspace struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AdminsTeamID  int64     `json:"admins_team_id"`
	MembersTeamID int64     `json:"members_team_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
