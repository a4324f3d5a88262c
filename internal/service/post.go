package service

import (
	"context"
	"strings"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/rabbitmq"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	publisher Publisher
}

func newPostService(logger *zap.Logger, repo *repository.Repository, publisher Publisher) Post {
	return &postService{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
	}
}

type newPostEvent struct {
	PostID   string `json:"postId"`
	Username string `json:"username"`
}

func (s *postService) Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error) {
	// A post needs text or at least one image; both empty carries nothing.
	if strings.TrimSpace(req.Content) == "" && len(req.Image) == 0 {
		return nil, ErrEmptyPost
	}

	post := model.Post{
		Username: req.Username,
		Content:  req.Content,
		Image:    req.Image,
	}
	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create post in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.publisher.Publish(ctx, rabbitmq.NEW_POST_QUEUE, newPostEvent{
		PostID:   createdPost.ID.String(),
		Username: createdPost.Username,
	}); err != nil {
		s.logger.Sugar().Errorf("failed to publish to queue(%s): %s", rabbitmq.NEW_POST_QUEUE, err.Error())
	}

	return createdPost, nil
}

func (s *postService) FindAll(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.repo.Postgres.Post.FindAllWithComments(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	return posts, nil
}

func (s *postService) Search(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error) {
	posts, err := s.repo.Postgres.Post.Search(ctx, query, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search posts(%s) in postgres: %s", query, err.Error())
		return nil, ErrInternal
	}

	if posts == nil {
		posts = []*model.Post{}
	}
	return posts, nil
}

func (s *postService) CreateComment(ctx context.Context, postID uuid.UUID, req dto.CreateCommentRequest) (*model.Comment, error) {
	exists, err := s.repo.Postgres.Post.ExistsWithID(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%s) in postgres: %s", postID.String(), err.Error())
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := model.Comment{
		PostID:      postID,
		Username:    req.Username,
		CommentText: req.CommentText,
	}
	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create comment in postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}
