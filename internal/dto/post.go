package dto

import "github.com/chiekin/CW2-social-networking-website/internal/model"

type CreatePostRequest struct {
	Username string   `json:"username" binding:"required"`
	Content  string   `json:"content"`
	Image    []string `json:"image"`
}

type CreatePostResponse struct {
	Success bool        `json:"success"`
	Post    *model.Post `json:"post"`
}

type CreateCommentRequest struct {
	Username    string `json:"username" binding:"required"`
	CommentText string `json:"commentText" binding:"required"`
}

type CreateCommentResponse struct {
	Message string         `json:"message"`
	Comment *model.Comment `json:"comment"`
}

type FollowRequest struct {
	FollowedID string `json:"followedId" binding:"required"`
}
