package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event published to external consumers.
type EventType string

const (
	EventTypeWorkspaceCreated           EventType = "WorkspaceCreated"
	EventTypeWorkspaceMembershipChanged EventType = "WorkspaceMembershipChanged"

	// Folder events come from the folder service sharing the event bus.
	// They are defined so the publisher accepts them; nothing here emits them.
	EventTypeFolderCreated EventType = "FolderCreated"
	EventTypeFolderUpdated EventType = "FolderUpdated"
	EventTypeFolderDeleted EventType = "FolderDeleted"
)

const eventDataVersion = "1"

// Event is the envelope published after a unit of work commits. Subject is
// the id of the aggregate the event is about and is used as the partition key.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Type        EventType `json:"eventType"`
	Time        time.Time `json:"eventTime"`
	DataVersion string    `json:"dataVersion"`
	Data        EventData `json:"data"`
}

// EventData is implemented by every payload type.
type EventData interface {
	EventType() EventType
}

func NewEvent(subject string, data EventData) Event {
	return Event{
		ID:          uuid.New(),
		Subject:     subject,
		Type:        data.EventType(),
		Time:        time.Now().UTC(),
		DataVersion: eventDataVersion,
		Data:        data,
	}
}

type WorkspaceCreatedData struct {
	WorkspaceID string `json:"workspaceId"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
}

func (WorkspaceCreatedData) EventType() EventType { return EventTypeWorkspaceCreated }

type WorkspaceMembershipChangedData struct {
	RequestingUserID    string `json:"requestingUserId"`
	AffectedWorkspaceID string `json:"affectedWorkspaceId"`
	AffectedUserID      string `json:"affectedUserId"`
	AffectedRole        string `json:"affectedRole"`
}

func (WorkspaceMembershipChangedData) EventType() EventType {
	return EventTypeWorkspaceMembershipChanged
}

type FolderCreatedData struct {
	FolderID    string `json:"folderId"`
	WorkspaceID string `json:"workspaceId"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (FolderCreatedData) EventType() EventType { return EventTypeFolderCreated }

type FolderUpdatedData struct {
	FolderID    string `json:"folderId"`
	WorkspaceID string `json:"workspaceId"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (FolderUpdatedData) EventType() EventType { return EventTypeFolderUpdated }

type FolderDeletedData struct {
	FolderID    string `json:"folderId"`
	WorkspaceID string `json:"workspaceId"`
	UserID      string `json:"userId"`
}

func (FolderDeletedData) EventType() EventType { return EventTypeFolderDeleted }

// EventPayloads returns a zero value of every payload type, keyed by type.
func EventPayloads() map[EventType]EventData {
	return map[EventType]EventData{
		EventTypeWorkspaceCreated:           WorkspaceCreatedData{},
		EventTypeWorkspaceMembershipChanged: WorkspaceMembershipChangedData{},
		EventTypeFolderCreated:              FolderCreatedData{},
		EventTypeFolderUpdated:              FolderUpdatedData{},
		EventTypeFolderDeleted:              FolderDeletedData{},
	}
}
