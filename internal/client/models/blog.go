// Package models holds the API documents as the CLI sees them.
package models

import "time"

type Blog struct {
	BlogID           int64     `json:"blogId"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	AssignedEditorID *int64    `json:"assignedEditorId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Comment struct {
	CommentID int64     `json:"commentId"`
	BlogID    int64     `json:"blogId"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
