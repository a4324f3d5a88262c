package service

import (
	"context"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/dto"
	"github.com/chiekin/CW2-social-networking-website/internal/model"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/chiekin/CW2-social-networking-website/internal/repository/postgres"
	"github.com/chiekin/CW2-social-networking-website/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	REGISTRATION_TOKEN_EXPIRY = time.Hour
	LOGIN_TOKEN_EXPIRY        = time.Hour * 24
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type authService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newAuthService(logger *zap.Logger, repo *repository.Repository) Auth {
	return &authService{
		logger: logger,
		repo:   repo,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if !usernamePattern.MatchString(req.Username) {
		return "", ErrInvalidUsernameFormat
	}
	if !emailPattern.MatchString(req.Email) {
		return "", ErrInvalidEmailFormat
	}

	// Pre-check for a friendly message; the unique constraints stay
	// authoritative under concurrent registrations.
	existing, err := s.repo.Postgres.User.FindByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil && err != pgx.ErrNoRows {
		s.logger.Sugar().Errorf("failed to check existing user in postgres: %s", err.Error())
		return "", ErrInternal
	}
	if existing != nil {
		if existing.Username == req.Username {
			return "", ErrUsernameTaken
		}
		return "", ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate password hash: %s", err.Error())
		return "", ErrInternal
	}

	newUser := model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	}
	createdUser, err := s.repo.Postgres.User.Create(ctx, newUser)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			if strings.Contains(postgres.ConstraintName(err), "email") {
				return "", ErrEmailTaken
			}
			return "", ErrUsernameTaken
		}

		s.logger.Sugar().Errorf("failed to create user in postgres: %s", err.Error())
		return "", ErrInternal
	}

	token, err := utils.GenerateJWT(jwt.MapClaims{
		"userId":   createdUser.ID.String(),
		"username": createdUser.Username,
	}, []byte(os.Getenv("SECRET_KEY")), REGISTRATION_TOKEN_EXPIRY)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt: %s", err.Error())
		return "", ErrInternal
	}

	return token, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error) {
	user, err := s.repo.Postgres.User.FindByUsername(ctx, req.Username)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", ErrInvalidCredentials
		}

		s.logger.Sugar().Errorf("failed to get user(%s) from postgres: %s", req.Username, err.Error())
		return nil, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(jwt.MapClaims{
		"userId":   user.ID.String(),
		"username": user.Username,
	}, []byte(os.Getenv("SECRET_KEY")), LOGIN_TOKEN_EXPIRY)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate jwt: %s", err.Error())
		return nil, "", ErrInternal
	}

	return user, token, nil
}
