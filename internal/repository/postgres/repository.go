package postgres

import (
	"context"
	"errors"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmailOrUsername(ctx context.Context, email string, username string) (*model.User, error)
	UpdateByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	SearchByUsername(ctx context.Context, username string, limit int, offset int) ([]*model.User, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindAllWithComments(ctx context.Context) ([]*model.Post, error)
	FindByUsername(ctx context.Context, username string) ([]*model.Post, error)
	Search(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error)
	ExistsWithID(ctx context.Context, id uuid.UUID) (bool, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
}

type Follow interface {
	Create(ctx context.Context, follow model.Follow) error
	Delete(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (int64, error)
	Exists(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowings(ctx context.Context, userID uuid.UUID) (int64, error)
}

type PostgresRepository struct {
	User
	Post
	Comment
	Follow
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:    newUserRepo(db),
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		Follow:  newFollowRepo(db),
	}
}

// IsUniqueViolation reports whether err is a violation of a UNIQUE
// constraint; the storage layer is the authority on uniqueness, the
// pre-check queries only exist for friendlier error messages.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ConstraintName returns the name of the violated constraint, or "" when err
// is not a constraint violation.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
