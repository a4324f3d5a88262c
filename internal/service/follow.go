package service

import (
	"context"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/rabbitmq"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/chiekin/CW2-social-networking-website/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type followService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	publisher Publisher
}

func newFollowService(logger *zap.Logger, repo *repository.Repository, publisher Publisher) Follow {
	return &followService{
		logger:    logger,
		repo:      repo,
		publisher: publisher,
	}
}

type followEvent struct {
	FollowerID string `json:"followerId"`
	FollowedID string `json:"followedId"`
}

func (s *followService) Follow(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	exists, err := s.repo.Postgres.Follow.Exists(ctx, followerID, followedID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check follow pair in postgres: %s", err.Error())
		return ErrInternal
	}
	if exists {
		return ErrAlreadyFollowing
	}

	if err := s.repo.Postgres.Follow.Create(ctx, model.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}); err != nil {
		// Concurrent duplicate requests land here; the unique constraint
		// decides, not the pre-check above.
		if postgres.IsUniqueViolation(err) {
			return ErrAlreadyFollowing
		}

		s.logger.Sugar().Errorf("failed to create follow pair in postgres: %s", err.Error())
		return ErrInternal
	}

	if err := s.publisher.Publish(ctx, rabbitmq.FOLLOWS_QUEUE, followEvent{
		FollowerID: followerID.String(),
		FollowedID: followedID.String(),
	}); err != nil {
		s.logger.Sugar().Errorf("failed to publish to queue(%s): %s", rabbitmq.FOLLOWS_QUEUE, err.Error())
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error {
	deleted, err := s.repo.Postgres.Follow.Delete(ctx, followerID, followedID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to delete follow pair in postgres: %s", err.Error())
		return ErrInternal
	}
	if deleted == 0 {
		return ErrNotFollowing
	}

	return nil
}
