package service

import (
	"errors"
	"testing"

	"controlling_oven/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type fakeAuthRepo struct {
	createID  int
	createErr error
	user      *models.User
	getErr    error

	lastUsername string
	lastHash     string
}

func (f *fakeAuthRepo) Create(username, hash string) (int, error) {
	f.lastUsername = username
	f.lastHash = hash
	return f.createID, f.createErr
}

func (f *fakeAuthRepo) GetByUsername(username string) (*models.User, error) {
	f.lastUsername = username
	return f.user, f.getErr
}

func TestAuthService_SignUp_HashesPassword(t *testing.T) {
	repo := &fakeAuthRepo{createID: 3}
	svc := NewAuthService(repo)

	id, err := svc.SignUp("baker", "s3cret")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if id != 3 {
		t.Fatalf("id: got %d, want 3", id)
	}
	if repo.lastHash == "s3cret" || repo.lastHash == "" {
		t.Fatalf("password must be stored hashed, got %q", repo.lastHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepo{})

	if _, err := svc.SignUp("baker", "   "); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeAuthRepo{user: &models.User{ID: 42, Username: "baker", PasswordHash: string(hash)}}
	svc := NewAuthService(repo)

	token, err := svc.GenerateToken("baker", "s3cret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	uid, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if uid != 42 {
		t.Fatalf("user id: got %d, want 42", uid)
	}
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)

	t.Run("unknown user", func(t *testing.T) {
		svc := NewAuthService(&fakeAuthRepo{user: nil})
		if _, err := svc.GenerateToken("ghost", "x"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(&fakeAuthRepo{user: &models.User{ID: 1, PasswordHash: string(hash)}})
		if _, err := svc.GenerateToken("baker", "wrong"); !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		svc := NewAuthService(&fakeAuthRepo{getErr: errors.New("db down")})
		if _, err := svc.GenerateToken("baker", "x"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	svc := NewAuthService(&fakeAuthRepo{})

	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
