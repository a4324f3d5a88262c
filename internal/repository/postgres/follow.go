package postgres

import (
	"context"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

func (r *followRepo) Create(ctx context.Context, follow model.Follow) error {
	follow.CreatedAt = time.Now()
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO follows(follower_id, followed_id, created_at) VALUES($1, $2, $3)",
		follow.FollowerID,
		follow.FollowedID,
		follow.CreatedAt,
	)
	return err
}

func (r *followRepo) Delete(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		"DELETE FROM follows f WHERE f.follower_id = $1 AND f.followed_id = $2",
		followerID,
		followedID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *followRepo) Exists(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM follows f WHERE f.follower_id = $1 AND f.followed_id = $2)",
		followerID,
		followedID,
	).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *followRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM follows f WHERE f.followed_id = $1", userID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followRepo) CountFollowings(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM follows f WHERE f.follower_id = $1", userID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
