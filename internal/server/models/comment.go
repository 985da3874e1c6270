package models

import "time"

type Comment struct {
	CommentID int64     `json:"commentId"`
	BlogID    int64     `json:"blogId"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
