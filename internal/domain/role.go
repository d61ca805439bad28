package domain

import "fmt"

// Role is the closed set of administrator profiles.
type Role string

const (
	RoleAdmin  Role = "Adm"
	RoleEditor Role = "Editor"
)

// ParseRole maps a wire-level profile string onto the known role set.
// The string form only exists at the token and JSON boundaries; all
// internal comparisons go through Role values produced here.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleEditor:
		return RoleEditor, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role belongs to the known set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}
