package model

import "time"

// Team is a named group of users. Every team backs exactly one workspace,
// either as its admins team or as its members team.
type Team struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func AdminsTeamTitle(workspaceTitle string) string {
	return workspaceTitle + " Admins"
}

func MembersTeamTitle(workspaceTitle string) string {
	return workspaceTitle + " Members"
}
