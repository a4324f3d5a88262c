package service

import (
	"context"
	"testing"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/rabbitmq"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFollow(t *testing.T) {
	ctx := context.Background()
	followerID := uuid.New()
	followedID := uuid.New()

	t.Run("success publishes follow event", func(t *testing.T) {
		mocks := newRepoMocks()
		pub := &publisherMock{}
		services := New(zap.NewNop(), mocks.repository(), pub)

		err := services.Follow.Follow(ctx, followerID, followedID)
		require.NoError(t, err)

		require.Len(t, pub.queues, 1)
		assert.Equal(t, rabbitmq.FOLLOWS_QUEUE, pub.queues[0])
	})

	t.Run("self follow rejected", func(t *testing.T) {
		mocks := newRepoMocks()
		services := New(zap.NewNop(), mocks.repository(), &publisherMock{})

		err := services.Follow.Follow(ctx, followerID, followerID)
		assert.ErrorIs(t, err, ErrSelfFollow)
	})

	t.Run("duplicate from pre-check", func(t *testing.T) {
		mocks := newRepoMocks()
		mocks.follow.exists = func(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (bool, error) {
			return true, nil
		}
		services := New(zap.NewNop(), mocks.repository(), &publisherMock{})

		err := services.Follow.Follow(ctx, followerID, followedID)
		assert.ErrorIs(t, err, ErrAlreadyFollowing)
	})

	t.Run("duplicate from unique constraint", func(t *testing.T) {
		mocks := newRepoMocks()
		mocks.follow.create = func(ctx context.Context, follow model.Follow) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "follows_pair_key"}
		}
		pub := &publisherMock{}
		services := New(zap.NewNop(), mocks.repository(), pub)

		err := services.Follow.Follow(ctx, followerID, followedID)
		assert.ErrorIs(t, err, ErrAlreadyFollowing)
		assert.Empty(t, pub.queues, "no event for a follow that did not happen")
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()
	followerID := uuid.New()
	followedID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mocks := newRepoMocks()
		mocks.follow.delete = func(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (int64, error) {
			return 1, nil
		}
		services := New(zap.NewNop(), mocks.repository(), &publisherMock{})

		err := services.Follow.Unfollow(ctx, followerID, followedID)
		assert.NoError(t, err)
	})

	t.Run("not following", func(t *testing.T) {
		mocks := newRepoMocks()
		services := New(zap.NewNop(), mocks.repository(), &publisherMock{})

		err := services.Follow.Unfollow(ctx, followerID, followedID)
		assert.ErrorIs(t, err, ErrNotFollowing)
	})
}
