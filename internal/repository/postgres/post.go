package postgres

import (
	"context"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.ID = uuid.New()
	post.CreatedAt = time.Now()
	if post.Image == nil {
		post.Image = []string{}
	}
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO contents(id, username, content, image, created_at) VALUES($1, $2, $3, $4, $5)",
		post.ID,
		post.Username,
		post.Content,
		post.Image,
		post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) FindAllWithComments(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`
		SELECT
		p.id, p.username, p.content, p.image, p.created_at, c.id, c.username, c.comment_text, c.created_at
		FROM contents p
		LEFT JOIN comments c ON p.id = c.post_id
		ORDER BY p.created_at DESC, c.created_at ASC
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	postMap := make(map[uuid.UUID]*model.Post)
	var ordered []*model.Post
	for rows.Next() {
		var (
			postID           uuid.UUID
			postUsername     string
			postContent      string
			postImage        []string
			postCreatedAt    time.Time
			commentID        *uuid.UUID
			commentUsername  *string
			commentText      *string
			commentCreatedAt *time.Time
		)
		if err := rows.Scan(
			&postID,
			&postUsername,
			&postContent,
			&postImage,
			&postCreatedAt,
			&commentID,
			&commentUsername,
			&commentText,
			&commentCreatedAt,
		); err != nil {
			return nil, err
		}

		post, exists := postMap[postID]
		if !exists {
			post = &model.Post{
				ID:        postID,
				Username:  postUsername,
				Content:   postContent,
				Image:     postImage,
				CreatedAt: postCreatedAt,
				Comments:  []*model.Comment{},
			}
			postMap[postID] = post
			ordered = append(ordered, post)
		}

		if commentID != nil && commentUsername != nil && commentText != nil && commentCreatedAt != nil {
			post.Comments = append(post.Comments, &model.Comment{
				ID:          *commentID,
				PostID:      postID,
				Username:    *commentUsername,
				CommentText: *commentText,
				CreatedAt:   *commentCreatedAt,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ordered, nil
}

func (r *postRepo) FindByUsername(ctx context.Context, username string) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`
		SELECT p.id, p.username, p.content, p.image, p.created_at
		FROM contents p
		WHERE p.username = $1
		ORDER BY p.created_at DESC
		`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepo) Search(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error) {
	maximumLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`
		SELECT p.id, p.username, p.content, p.image, p.created_at
		FROM contents p
		WHERE p.content ILIKE '%' || $1 || '%' OR p.username ILIKE '%' || $1 || '%'
		ORDER BY p.created_at DESC
		LIMIT $2
		OFFSET $3
		`,
		query,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepo) ExistsWithID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM contents p WHERE p.id = $1)", id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *postRepo) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM contents p WHERE p.username = $1", username).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func scanPosts(rows pgx.Rows) ([]*model.Post, error) {
	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.Username,
			&post.Content,
			&post.Image,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
