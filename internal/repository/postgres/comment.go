package postgres

import (
	"context"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO comments(id, post_id, username, comment_text, created_at) VALUES($1, $2, $3, $4, $5)",
		comment.ID,
		comment.PostID,
		comment.Username,
		comment.CommentText,
		comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
