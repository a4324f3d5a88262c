package service

import (
	"context"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/chiekin/CW2-social-networking-website/internal/repository/redisrepo"
	"github.com/chiekin/CW2-social-networking-website/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const PROFILE_CACHE_TTL = time.Hour

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newUserService(logger *zap.Logger, repo *repository.Repository) User {
	return &userService{
		logger: logger,
		repo:   repo,
	}
}

func (s *userService) FindProfile(ctx context.Context, username string) (*dto.ProfileResponse, error) {
	profileCache, err := redisrepo.Get[dto.ProfileResponse](s.repo.Redis.Default, ctx, redisrepo.ProfileKey(username))
	if err == nil && profileCache != nil {
		return profileCache, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get profile(%s) from redis: %s", username, err.Error())
		return nil, ErrInternal
	}

	user, err := s.repo.Postgres.User.FindByUsername(ctx, username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", username, err.Error())
		return nil, ErrInternal
	}

	postsCount, err := s.repo.Postgres.Post.CountByUsername(ctx, user.Username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count posts for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	followersCount, err := s.repo.Postgres.Follow.CountFollowers(ctx, user.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count followers for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	followingsCount, err := s.repo.Postgres.Follow.CountFollowings(ctx, user.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count followings for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	posts, err := s.repo.Postgres.Post.FindByUsername(ctx, user.Username)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts for user(%s): %s", username, err.Error())
		return nil, ErrInternal
	}

	bio := "No bio available"
	if user.Bio != nil && *user.Bio != "" {
		bio = *user.Bio
	}

	profile := &dto.ProfileResponse{
		Success:         true,
		Username:        user.Username,
		Name:            user.FirstName + " " + user.LastName,
		PostsCount:      postsCount,
		FollowersCount:  followersCount,
		FollowingsCount: followingsCount,
		Bio:             bio,
		Posts:           posts,
	}

	if err := s.repo.Redis.SetJSON(ctx, redisrepo.ProfileKey(username), profile, PROFILE_CACHE_TTL); err != nil {
		s.logger.Sugar().Errorf("failed to set profile(%s) in redis: %s", username, err.Error())
	}

	return profile, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.EditProfileRequest) error {
	user, err := s.repo.Postgres.User.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) in postgres: %s", id.String(), err.Error())
		return ErrInternal
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil && *req.FirstName != "" {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil && *req.Bio != "" {
		updates["bio"] = *req.Bio
	}
	if req.ProfilePicture != nil && *req.ProfilePicture != "" {
		picture, err := utils.NormalizeAvatar(*req.ProfilePicture)
		if err != nil {
			return ErrInvalidImage
		}
		updates["profile_picture"] = picture
	}

	if err := s.repo.Postgres.User.UpdateByID(ctx, id, updates); err != nil {
		if err == pgx.ErrNoRows {
			return ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to update user(%s) in postgres: %s", id.String(), err.Error())
		return ErrInternal
	}

	if err := s.repo.Redis.Del(ctx, redisrepo.ProfileKey(user.Username)).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate profile(%s) in redis: %s", user.Username, err.Error())
	}

	return nil
}

func (s *userService) Search(ctx context.Context, query string, limit int, offset int) ([]*dto.FoundUser, error) {
	users, err := s.repo.Postgres.User.SearchByUsername(ctx, query, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search users(%s) in postgres: %s", query, err.Error())
		return nil, ErrInternal
	}

	found := make([]*dto.FoundUser, 0, len(users))
	for _, user := range users {
		found = append(found, dto.FoundUserFromModel(user))
	}

	return found, nil
}
