package model

import (
	"fmt"
	"strings"
)

// Role is derived from team membership and never stored:
// Admin is in both teams, NonAdmin only in the members team, NonMember in neither.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleNonAdmin  Role = "NonAdmin"
	RoleNonMember Role = "NonMember"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleNonAdmin, RoleNonMember:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts "Admin", "non_admin", "non-member" and similar spellings.
func ParseRole(s string) (Role, error) {
	switch normalizeEnum(s) {
	case "admin":
		return RoleAdmin, nil
	case "nonadmin":
		return RoleNonAdmin, nil
	case "nonmember":
		return RoleNonMember, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RoleFilter selects a subset of workspace members when listing.
type RoleFilter string

const (
	RoleFilterAdmin    RoleFilter = "Admin"
	RoleFilterNonAdmin RoleFilter = "NonAdmin"
)

// ParseRoleFilter returns nil for an empty string, meaning "all members".
func ParseRoleFilter(s string) (*RoleFilter, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var f RoleFilter
	switch normalizeEnum(s) {
	case "admin":
		f = RoleFilterAdmin
	case "nonadmin":
		f = RoleFilterNonAdmin
	default:
		return nil, fmt.Errorf("unknown role filter %q", s)
	}
	return &f, nil
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
