package services

import (
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

// User facing messages. Transports show them verbatim.
const (
	MsgMissingFields        = "Please provide all required fields"
	MsgPasswordTooShort     = "Password must be at least 8 characters long"
	MsgInvalidEmail         = "Please provide a valid email address"
	MsgEmailTaken           = "User already exists with given email"
	MsgUsernameTaken        = "User already exists with given username"
	MsgMissingCredentials   = "Please provide email and password"
	MsgUserNotFound         = "User not found"
	MsgIncorrectPassword    = "Incorrect password"
	MsgInvalidToken         = "Invalid Access Token"
	MsgMissingTitleContent  = "Please provide title and content"
	MsgMissingEditorID      = "Please provide assignedEditorId"
	MsgInvalidEditor        = "Invalid assignedEditorId Or User is not an Editor"
	MsgBlogNotFound         = "Blog not found"
	MsgEditorAlreadySet     = "Editor already assigned to this blog"
	MsgNotAssignedEditor    = "You are not assigned to edit this blog"
	MsgMissingBlogUpdate    = "Please provide title or content to update"
	MsgMissingComment       = "Please provide a comment to post"
	MsgCommentNotFound      = "Comment not found"
	MsgCannotDeleteComment  = "You are not authorized to delete this comment"
	MsgNotAuthorizedForRole = "You are not authorized to perform this action"
)

var (
	ErrMissingFields       = common.NewError(common.ErrorValidation, MsgMissingFields)
	ErrPasswordTooShort    = common.NewError(common.ErrorValidation, MsgPasswordTooShort)
	ErrInvalidEmail        = common.NewError(common.ErrorValidation, MsgInvalidEmail)
	ErrEmailTaken          = common.NewError(common.ErrorConflict, MsgEmailTaken)
	ErrUsernameTaken       = common.NewError(common.ErrorConflict, MsgUsernameTaken)
	ErrMissingCredentials  = common.NewError(common.ErrorValidation, MsgMissingCredentials)
	ErrUserNotFound        = common.NewError(common.ErrorNotFound, MsgUserNotFound)
	ErrIncorrectPassword   = common.NewError(common.ErrorInvalidCredentials, MsgIncorrectPassword)
	ErrInvalidAccessToken  = common.NewError(common.ErrorUnauthorized, MsgInvalidToken)
	ErrMissingTitleContent = common.NewError(common.ErrorValidation, MsgMissingTitleContent)
	ErrMissingEditorID     = common.NewError(common.ErrorValidation, MsgMissingEditorID)
	ErrInvalidEditor       = common.NewError(common.ErrorValidation, MsgInvalidEditor)
	ErrBlogNotFound        = common.NewError(common.ErrorNotFound, MsgBlogNotFound)
	ErrEditorAlreadySet    = common.NewError(common.ErrorConflict, MsgEditorAlreadySet)
	ErrNotAssignedEditor   = common.NewError(common.ErrorForbidden, MsgNotAssignedEditor)
	ErrMissingBlogUpdate   = common.NewError(common.ErrorValidation, MsgMissingBlogUpdate)
	ErrMissingComment      = common.NewError(common.ErrorValidation, MsgMissingComment)
	ErrCommentNotFound     = common.NewError(common.ErrorNotFound, MsgCommentNotFound)
	ErrCannotDeleteComment = common.NewError(common.ErrorForbidden, MsgCannotDeleteComment)
	ErrRoleNotAllowed      = common.NewError(common.ErrorForbidden, MsgNotAuthorizedForRole)
)

// internal wraps an unexpected failure so it matches common.ErrorInternal
// while keeping the cause for logs.
func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
}
