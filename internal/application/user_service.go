package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cryptofolio/wallet-api/internal/domain/entity"
	repo "github.com/cryptofolio/wallet-api/internal/domain/repository"
	"github.com/cryptofolio/wallet-api/pkg/helpers"
)

var (
	// ErrEmailTaken mirrors the email uniqueness constraint.
	ErrEmailTaken = errors.New("User with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password, so a caller cannot tell which half failed.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrUserNotFound is returned by lookups for absent users.
	ErrUserNotFound = errors.New("User not found")
)

// UserService is the account directory: it creates users, checks
// credentials and issues session tokens.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

// AuthResult is returned by SignUp and SignIn: a bearer token plus the
// redacted user view.
type AuthResult struct {
	Token  string            `json:"token"`
	Expiry time.Time         `json:"-"`
	User   entity.PublicUser `json:"user"`
}

// normalizeEmail lowercases and trims so uniqueness and lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a user with the given credentials and signs them in.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	// Early-fail duplicate check; the DB constraint is authoritative.
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user created")
	return s.issue(u)
}

// SignIn checks the credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *UserService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, err
	}
	return &AuthResult{Token: token, Expiry: exp, User: u.Public()}, nil
}

// FindByID looks up a user by id.
func (s *UserService) FindByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// FindByEmail looks up a user by normalized email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
