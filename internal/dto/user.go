package dto

import (
	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type EditProfileRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"` // base64, optional data-URI prefix
}

type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type LoginResponse struct {
	Message   string `json:"message"`
	Token     string `json:"token"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SessionResponse struct {
	IsLoggedIn bool   `json:"isLoggedIn"`
	UserID     string `json:"userId,omitempty"`
	Username   string `json:"username,omitempty"`
}

type ProfileResponse struct {
	Success         bool          `json:"success"`
	Username        string        `json:"username"`
	Name            string        `json:"name"`
	PostsCount      int64         `json:"postsCount"`
	FollowersCount  int64         `json:"followersCount"`
	FollowingsCount int64         `json:"followingsCount"`
	Bio             string        `json:"bio"`
	Posts           []*model.Post `json:"posts"`
}

type FoundUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       *string   `json:"bio"`
}

func FoundUserFromModel(user *model.User) *FoundUser {
	return &FoundUser{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
	}
}
