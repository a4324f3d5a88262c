package handler

import (
	"context"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/service"
	"github.com/google/uuid"
)

type authServiceMock struct {
	register func(ctx context.Context, req dto.RegisterRequest) (string, error)
	login    func(ctx context.Context, req dto.LoginRequest) (*model.User, string, error)
}

func (m *authServiceMock) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if m.register == nil {
		return "token", nil
	}
	return m.register(ctx, req)
}

func (m *authServiceMock) Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error) {
	if m.login == nil {
		return &model.User{}, "token", nil
	}
	return m.login(ctx, req)
}

type userServiceMock struct {
	findProfile func(ctx context.Context, username string) (*dto.ProfileResponse, error)
	update      func(ctx context.Context, id uuid.UUID, req dto.EditProfileRequest) error
	search      func(ctx context.Context, query string, limit int, offset int) ([]*dto.FoundUser, error)
}

func (m *userServiceMock) FindProfile(ctx context.Context, username string) (*dto.ProfileResponse, error) {
	if m.findProfile == nil {
		return &dto.ProfileResponse{Success: true, Username: username}, nil
	}
	return m.findProfile(ctx, username)
}

func (m *userServiceMock) Update(ctx context.Context, id uuid.UUID, req dto.EditProfileRequest) error {
	if m.update == nil {
		return nil
	}
	return m.update(ctx, id, req)
}

func (m *userServiceMock) Search(ctx context.Context, query string, limit int, offset int) ([]*dto.FoundUser, error) {
	if m.search == nil {
		return nil, nil
	}
	return m.search(ctx, query, limit, offset)
}

type postServiceMock struct {
	create        func(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error)
	findAll       func(ctx context.Context) ([]*model.Post, error)
	search        func(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error)
	createComment func(ctx context.Context, postID uuid.UUID, req dto.CreateCommentRequest) (*model.Comment, error)
}

func (m *postServiceMock) Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error) {
	if m.create == nil {
		return &model.Post{ID: uuid.New(), Username: req.Username, Content: req.Content, Image: req.Image}, nil
	}
	return m.create(ctx, req)
}

func (m *postServiceMock) FindAll(ctx context.Context) ([]*model.Post, error) {
	if m.findAll == nil {
		return []*model.Post{}, nil
	}
	return m.findAll(ctx)
}

func (m *postServiceMock) Search(ctx context.Context, query string, limit int, offset int) ([]*model.Post, error) {
	if m.search == nil {
		return []*model.Post{}, nil
	}
	return m.search(ctx, query, limit, offset)
}

func (m *postServiceMock) CreateComment(ctx context.Context, postID uuid.UUID, req dto.CreateCommentRequest) (*model.Comment, error) {
	if m.createComment == nil {
		return &model.Comment{ID: uuid.New(), PostID: postID, Username: req.Username, CommentText: req.CommentText}, nil
	}
	return m.createComment(ctx, postID, req)
}

type followServiceMock struct {
	follow   func(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error
	unfollow func(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error
}

func (m *followServiceMock) Follow(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error {
	if m.follow == nil {
		return nil
	}
	return m.follow(ctx, followerID, followedID)
}

func (m *followServiceMock) Unfollow(ctx context.Context, followerID uuid.UUID, followedID uuid.UUID) error {
	if m.unfollow == nil {
		return nil
	}
	return m.unfollow(ctx, followerID, followedID)
}

type serviceMocks struct {
	auth   *authServiceMock
	user   *userServiceMock
	post   *postServiceMock
	follow *followServiceMock
}

func newServiceMocks() *serviceMocks {
	return &serviceMocks{
		auth:   &authServiceMock{},
		user:   &userServiceMock{},
		post:   &postServiceMock{},
		follow: &followServiceMock{},
	}
}

func (m *serviceMocks) services() *service.Service {
	return &service.Service{
		Auth:   m.auth,
		User:   m.user,
		Post:   m.post,
		Follow: m.follow,
	}
}
