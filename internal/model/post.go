package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Content   string     `json:"content"`
	Image     []string   `json:"image"`
	CreatedAt time.Time  `json:"createdAt"`
	Comments  []*Comment `json:"comments,omitempty"`
}
