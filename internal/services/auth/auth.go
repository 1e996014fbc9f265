package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Unti1/AlsocodeTestTask/internal/models"
	"github.com/Unti1/AlsocodeTestTask/internal/repositories"
	"github.com/Unti1/AlsocodeTestTask/pkg/logger"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords,
// so responses do not reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserStore is the persistence contract of the auth service.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	ByUsername(ctx context.Context, username string) (models.User, error)
}

// TokenStore keeps opaque session tokens with a TTL.
type TokenStore interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

type Service struct {
	users    UserStore
	tokens   TokenStore
	tokenTTL time.Duration
	l        *logger.Logger
}

func NewService(users UserStore, tokens TokenStore, tokenTTL time.Duration, l *logger.Logger) *Service {
	return &Service{users: users, tokens: tokens, tokenTTL: tokenTTL, l: l}
}

// Register creates a user with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, username, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "hash password")
	}

	user, err := s.users.Create(ctx, username, email, string(hash))
	if err != nil {
		return models.User{}, err
	}

	s.l.Info("user registered", map[string]any{"username": username})
	return user, nil
}

// Login verifies the password and issues an opaque session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.ByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", errors.Wrap(err, "lookup user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.tokens.Save(ctx, token, user.ID, s.tokenTTL); err != nil {
		return "", errors.Wrap(err, "save token")
	}

	return token, nil
}

// Logout revokes a session token. Revoking an unknown token is not an
// error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Delete(ctx, token)
}

// Verify resolves a session token to the owning user id.
func (s *Service) Verify(ctx context.Context, token string) (int64, error) {
	return s.tokens.Resolve(ctx, token)
}
