package service

import (
	"context"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/skycast/backend/internal/domain"
)

// --- Mock Repository ---

// mockUserRepo implements domain.UserRepository for testing.
type mockUserRepo struct {
	createFn         func(ctx context.Context, user domain.User) error
	findByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	emailExistsFn    func(ctx context.Context, email string) (bool, error)
	usernameExistsFn func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.usernameExistsFn != nil {
		return m.usernameExistsFn(ctx, username)
	}
	return false, nil
}

// --- Register ---

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{})

	cases := []struct {
		name  string
		input domain.RegisterInput
	}{
		{"empty email", domain.RegisterInput{Email: "   ", Username: "alice", Password: "secret1"}},
		{"empty username", domain.RegisterInput{Email: "a@example.com", Username: "  ", Password: "secret1"}},
		{"short username", domain.RegisterInput{Email: "a@example.com", Username: "al", Password: "secret1"}},
		{"short password", domain.RegisterInput{Email: "a@example.com", Username: "alice", Password: "12345"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Register(context.Background(), tc.input)
			if code := appErrorCode(t, err); code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", code)
			}
		})
	}
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	var created *domain.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user domain.User) error {
			created = &user
			return nil
		},
	}

	svc := NewAuthService(repo)
	err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "  Alice@Example.COM ",
		Username: " alice ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected user to be created")
	}

	if created.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.Username != "alice" {
		t.Fatalf("expected trimmed username, got %q", created.Username)
	}
	if created.ID == "" {
		t.Fatal("expected a generated user id")
	}
	if created.PasswordHash == "secret1" || created.PasswordHash == "" {
		t.Fatal("expected password to be stored as a hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterEmailConflictCheckedFirst(t *testing.T) {
	usernameChecked := false
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		usernameExistsFn: func(ctx context.Context, username string) (bool, error) {
			usernameChecked = true
			return false, nil
		},
	}

	svc := NewAuthService(repo)
	err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "taken@example.com",
		Username: "newname",
		Password: "secret1",
	})
	if code := appErrorCode(t, err); code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
	if usernameChecked {
		t.Fatal("username uniqueness must not be checked after an email conflict")
	}
}

func TestRegisterUsernameConflict(t *testing.T) {
	repo := &mockUserRepo{
		usernameExistsFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	svc := NewAuthService(repo)
	err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "fresh@example.com",
		Username: "taken",
		Password: "secret1",
	})
	if code := appErrorCode(t, err); code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}
}

// --- Authenticate ---

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	stored := &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: string(hash),
	}
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}

	svc := NewAuthService(repo)

	principal, err := svc.Authenticate(context.Background(), domain.LoginInput{
		Email:    " Alice@Example.com ",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.UserID != "user-1" || principal.Username != "alice" {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	// Wrong password and unknown email must fail identically.
	_, err = svc.Authenticate(context.Background(), domain.LoginInput{Email: "alice@example.com", Password: "wrong"})
	if code := appErrorCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}

	_, err = svc.Authenticate(context.Background(), domain.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	if code := appErrorCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", code)
	}
}
