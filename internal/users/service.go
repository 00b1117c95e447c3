package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/shared/auth"
)

// ErrInvalidCredentials is returned by Login when the email is unknown or the
// password does not match. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError carries a field-level message suitable for the response body.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Field + ": " + e.Message }

const minPasswordLength = 8

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates an account and returns it with a signed session token.
func (s *Service) Register(ctx context.Context, email, name, password string) (User, string, error) {
	if s == nil || s.Repo == nil {
		return User{}, "", errors.New("users service not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return User{}, "", ValidationError{Field: "email", Message: "a valid email is required"}
	}
	if len(password) < minPasswordLength {
		return User{}, "", ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, "", err
	}
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	if s == nil || s.Repo == nil {
		return User{}, "", errors.New("users service not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, "", ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) signToken(user User) (string, error) {
	return auth.SignJWT(auth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}
