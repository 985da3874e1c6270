package models

import "fmt"

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleUser   Role = "User"
)

// Roles lists every valid role.
var Roles = []Role{RoleAdmin, RoleEditor, RoleUser}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole converts a stored role name back into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Principal is the authenticated caller the authorization layer attaches to
// a request.
type Principal struct {
	UserID int64
	Role   Role
}
