package service

import (
	"context"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher is the seam to the message broker; failures to publish are
// logged by services and never surfaced to clients.
type Publisher interface {
	Publish(ctx context.Context, queue string, payload interface{}) error
}

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error)
}

type User interface {
	FindProfile(ctx context.Context, username string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.EditProfileRequest) error
	Search(ctx context.Context, query string, limit int, offset int) ([]*dto.FoundUser, error)
}

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	Search(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error)
	CreateComment(ctx context.Context, postID uuid.UUID, req dto.CreateCommentRequest) (*model.Comment, error)
}

type Follow interface {
	Follow(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error
	Unfollow(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error
}

type Service struct {
	Auth
	User
	Post
	Follow
}

func New(logger *zap.Logger, repo *repository.Repository, publisher Publisher) *Service {
	return &Service{
		Auth:   newAuthService(logger, repo),
		User:   newUserService(logger, repo),
		Post:   newPostService(logger, repo, publisher),
		Follow: newFollowService(logger, repo, publisher),
	}
}
