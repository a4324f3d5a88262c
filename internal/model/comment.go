package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID          uuid.UUID `json:"id"`
	PostID      uuid.UUID `json:"postId"`
	Username    string    `json:"username"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}
