// Package policy decides who may do what. It knows nothing about HTTP or
// storage: callers pass the authenticated principal and, for resource level
// rules, the resource itself.
package policy

import "github.com/dmitrijs2005/blogkeeper/internal/server/models"

// Operation is a protected action of the API.
type Operation int

const (
	CreateBlog Operation = iota + 1
	AssignEditor
	EditBlog
	DeleteBlog
	PostComment
	DeleteComment
)

var operationNames = map[Operation]string{
	CreateBlog:    "create_blog",
	AssignEditor:  "assign_editor",
	EditBlog:      "edit_blog",
	DeleteBlog:    "delete_blog",
	PostComment:   "post_comment",
	DeleteComment: "delete_comment",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown"
}

// AllowedRoles is the role allow-list of op. An empty list means any
// authenticated principal. Unknown operations get nil and are denied by Allows.
func AllowedRoles(op Operation) []models.Role {
	switch op {
	case CreateBlog, AssignEditor, DeleteBlog:
		return []models.Role{models.RoleAdmin}
	case EditBlog:
		return []models.Role{models.RoleAdmin, models.RoleEditor}
	case PostComment, DeleteComment:
		return []models.Role{models.RoleAdmin, models.RoleEditor, models.RoleUser}
	}
	return nil
}

// Allows reports whether role passes the allow-list of op.
func Allows(op Operation, role models.Role) bool {
	if _, ok := operationNames[op]; !ok || !role.Valid() {
		return false
	}
	roles := AllowedRoles(op)
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanEditBlog: admins edit anything, editors only blogs assigned to them.
func CanEditBlog(p models.Principal, b *models.Blog) bool {
	switch p.Role {
	case models.RoleAdmin:
		return true
	case models.RoleEditor:
		return b.AssignedEditorID != nil && *b.AssignedEditorID == p.UserID
	}
	return false
}

// CanDeleteComment: only the author, whatever their role.
func CanDeleteComment(p models.Principal, c *models.Comment) bool {
	return c.UserID == p.UserID
}

// CanBeAssignedEditor: only users holding the Editor role can be assigned.
func CanBeAssignedEditor(u *models.User) bool {
	return u != nil && u.Role == models.RoleEditor
}

// SignupRole is the role a new account receives. The very first account
// bootstraps the system as Admin; afterwards only Editor may be requested,
// anything else falls back to User.
func SignupRole(existingUsers int64, requested string) models.Role {
	if existingUsers == 0 {
		return models.RoleAdmin
	}
	if models.Role(requested) == models.RoleEditor {
		return models.RoleEditor
	}
	return models.RoleUser
}
