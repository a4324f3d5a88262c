package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Bio            *string   `json:"bio"`
	ProfilePicture []byte    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
