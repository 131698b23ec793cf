package example

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleNonAdmin Role = "NonAdmin"
)

type EventType string

const (
	EventTypeWorkspaceCreated EventType = "WorkspaceCreated"
)

type Membership struct {
	Role Role
}

type Event struct {
	Type    EventType
	Subject string
}

func bad() {
	m := &Membership{}
	m.Role = "Owner" // want "enum field Role assigned string literal"

	_ = Event{Type: "WorkspaceDeleted", Subject: "1"} // want "enum field Type assigned string literal"
}

func good() {
	m := &Membership{}
	m.Role = RoleNonAdmin

	_ = Event{Type: EventTypeWorkspaceCreated, Subject: "1"}
}

func alsoGood() {
	// Variable, not literal.
	role := RoleAdmin
	m := &Membership{Role: role}
	_ = m
}
