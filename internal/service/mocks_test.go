package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/chiekin/CW2-social-networking-website/internal/repository/postgres"
	"github.com/chiekin/CW2-social-networking-website/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

type userRepoMock struct {
	create                func(ctx context.Context, user model.User) (*model.User, error)
	findByID              func(ctx context.Context, id uuid.UUID) (*model.User, error)
	findByUsername        func(ctx context.Context, username string) (*model.User, error)
	findByEmailOrUsername func(ctx context.Context, email string, username string) (*model.User, error)
	updateByID            func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	searchByUsername      func(ctx context.Context, username string, limit int, offset int) ([]*model.User, error)
}

func (m *userRepoMock) Create(ctx context.Context, user model.User) (*model.User, error) {
	if m.create == nil {
		user.ID = uuid.New()
		user.CreatedAt = time.Now()
		return &user, nil
	}
	return m.create(ctx, user)
}

func (m *userRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.findByID == nil {
		return nil, pgx.ErrNoRows
	}
	return m.findByID(ctx, id)
}

func (m *userRepoMock) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.findByUsername == nil {
		return nil, pgx.ErrNoRows
	}
	return m.findByUsername(ctx, username)
}

func (m *userRepoMock) FindByEmailOrUsername(ctx context.Context, email string, username string) (*model.User, error) {
	if m.findByEmailOrUsername == nil {
		return nil, pgx.ErrNoRows
	}
	return m.findByEmailOrUsername(ctx, email, username)
}

func (m *userRepoMock) UpdateByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if m.updateByID == nil {
		return nil
	}
	return m.updateByID(ctx, id, updates)
}

func (m *userRepoMock) SearchByUsername(ctx context.Context, username string, limit int, offset int) ([]*model.User, error) {
	if m.searchByUsername == nil {
		return nil, nil
	}
	return m.searchByUsername(ctx, username, limit, offset)
}

type postRepoMock struct {
	create              func(ctx context.Context, post model.Post) (*model.Post, error)
	findAllWithComments func(ctx context.Context) ([]*model.Post, error)
	findByUsername      func(ctx context.Context, username string) ([]*model.Post, error)
	search              func(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error)
	existsWithID        func(ctx context.Context, id uuid.UUID) (bool, error)
	countByUsername     func(ctx context.Context, username string) (int64, error)
}

func (m *postRepoMock) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	if m.create == nil {
		post.ID = uuid.New()
		post.CreatedAt = time.Now()
		return &post, nil
	}
	return m.create(ctx, post)
}

func (m *postRepoMock) FindAllWithComments(ctx context.Context) ([]*model.Post, error) {
	if m.findAllWithComments == nil {
		return nil, nil
	}
	return m.findAllWithComments(ctx)
}

func (m *postRepoMock) FindByUsername(ctx context.Context, username string) ([]*model.Post, error) {
	if m.findByUsername == nil {
		return nil, nil
	}
	return m.findByUsername(ctx, username)
}

func (m *postRepoMock) Search(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error) {
	if m.search == nil {
		return nil, nil
	}
	return m.search(ctx, query, limit, offset)
}

func (m *postRepoMock) ExistsWithID(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsWithID == nil {
		return false, nil
	}
	return m.existsWithID(ctx, id)
}

func (m *postRepoMock) CountByUsername(ctx context.Context, username string) (int64, error) {
	if m.countByUsername == nil {
		return 0, nil
	}
	return m.countByUsername(ctx, username)
}

type commentRepoMock struct {
	create func(ctx context.Context, comment model.Comment) (*model.Comment, error)
}

func (m *commentRepoMock) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if m.create == nil {
		comment.ID = uuid.New()
		comment.CreatedAt = time.Now()
		return &comment, nil
	}
	return m.create(ctx, comment)
}

type followRepoMock struct {
	create          func(ctx context.Context, follow model.Follow) error
	delete          func(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (int64, error)
	exists          func(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (bool, error)
	countFollowers  func(ctx context.Context, userID uuid.UUID) (int64, error)
	countFollowings func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *followRepoMock) Create(ctx context.Context, follow model.Follow) error {
	if m.create == nil {
		return nil
	}
	return m.create(ctx, follow)
}

func (m *followRepoMock) Delete(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (int64, error) {
	if m.delete == nil {
		return 0, nil
	}
	return m.delete(ctx, followerID, followedID)
}

func (m *followRepoMock) Exists(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) (bool, error) {
	if m.exists == nil {
		return false, nil
	}
	return m.exists(ctx, followerID, followedID)
}

func (m *followRepoMock) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.countFollowers == nil {
		return 0, nil
	}
	return m.countFollowers(ctx, userID)
}

func (m *followRepoMock) CountFollowings(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.countFollowings == nil {
		return 0, nil
	}
	return m.countFollowings(ctx, userID)
}

type redisMock struct {
	store   map[string]string
	deleted []string
}

func newRedisMock() *redisMock {
	return &redisMock{store: make(map[string]string)}
}

func (m *redisMock) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = string(valueJSON)
	return nil
}

func (m *redisMock) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if value, ok := m.store[key]; ok {
		cmd.SetVal(value)
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (m *redisMock) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	var deleted int64
	for _, key := range keys {
		if _, ok := m.store[key]; ok {
			delete(m.store, key)
			deleted++
		}
		m.deleted = append(m.deleted, key)
	}
	cmd.SetVal(deleted)
	return cmd
}

type publisherMock struct {
	queues   []string
	payloads []interface{}
	err      error
}

func (m *publisherMock) Publish(ctx context.Context, queue string, payload interface{}) error {
	m.queues = append(m.queues, queue)
	m.payloads = append(m.payloads, payload)
	return m.err
}

type repoMocks struct {
	user    *userRepoMock
	post    *postRepoMock
	comment *commentRepoMock
	follow  *followRepoMock
	redis   *redisMock
}

func newRepoMocks() *repoMocks {
	return &repoMocks{
		user:    &userRepoMock{},
		post:    &postRepoMock{},
		comment: &commentRepoMock{},
		follow:  &followRepoMock{},
		redis:   newRedisMock(),
	}
}

func (m *repoMocks) repository() *repository.Repository {
	return &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User:    m.user,
			Post:    m.post,
			Comment: m.comment,
			Follow:  m.follow,
		},
		Redis: &redisrepo.RedisRepository{Default: m.redis},
	}
}
