package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skycast/backend/internal/apperror"
	"github.com/skycast/backend/internal/domain"
)

// bcryptCost matches the conventional work factor used at registration.
// Hashes are never recomputed in place for existing accounts.
const bcryptCost = 10

var validate = validator.New()

// AuthService handles account registration and credential verification
type AuthService struct {
	users domain.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account. Email is normalized to lowercase, username
// keeps its casing. Email uniqueness is checked before username uniqueness.
// The plaintext password is hashed immediately and never stored or logged.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)

	if err := validate.Struct(input); err != nil {
		return apperror.NewValidation("Email, username and password (min 6 characters) are required")
	}

	emailTaken, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("auth: checking email: %w", err))
	}
	if emailTaken {
		return apperror.NewConflict("Email already in use")
	}

	usernameTaken, err := s.users.UsernameExists(ctx, input.Username)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("auth: checking username: %w", err))
	}
	if usernameTaken {
		return apperror.NewConflict("Username already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("auth: hashing password: %w", err))
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return apperror.NewInternal(fmt.Errorf("auth: creating user: %w", err))
	}

	return nil
}

// Authenticate verifies credentials and returns the matching principal.
// Unknown email and wrong password both yield the same generic failure so
// the endpoint cannot be used to probe which emails are registered.
func (s *AuthService) Authenticate(ctx context.Context, input domain.LoginInput) (domain.Principal, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return domain.Principal{}, apperror.NewUnauthorized("Invalid email or password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.Principal{}, apperror.NewInternal(fmt.Errorf("auth: finding user: %w", err))
	}
	if user == nil {
		return domain.Principal{}, apperror.NewUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return domain.Principal{}, apperror.NewUnauthorized("Invalid email or password")
	}

	return domain.Principal{UserID: user.ID, Username: user.Username}, nil
}
