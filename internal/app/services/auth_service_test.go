package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/auth"
)

func testAuthService(t *testing.T, tokenExp time.Duration) (AuthService, *fakeUserStore) {
	t.Helper()

	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	users := &fakeUserStore{users: map[string]*models.User{
		"admin@school.edu": {
			ID:           "admin-1",
			Email:        "admin@school.edu",
			PasswordHash: hash,
			Name:         "Site Admin",
			Role:         models.RoleAdmin,
		},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    tokenExp,
		TokenIssuer: "test",
	})

	return NewAuthService(users, jwtService), users
}

func TestLoginIssuesSessionToken(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, time.Hour)

	result, err := svc.Login(context.Background(), "Admin@School.edu ", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("no token issued")
	}
	if result.Session.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", result.Session.Role)
	}
	if result.ExpiresIn != int(time.Hour.Seconds()) {
		t.Errorf("expiresIn = %d, want %d", result.ExpiresIn, int(time.Hour.Seconds()))
	}

	// The token must round-trip back into the same session.
	session, err := svc.SessionFromToken(result.Token)
	if err != nil {
		t.Fatalf("SessionFromToken: %v", err)
	}
	if session.UserID != "admin-1" || session.Role != models.RoleAdmin {
		t.Errorf("session = %+v", session)
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, time.Hour)
	ctx := context.Background()

	_, wrongPass := svc.Login(ctx, "admin@school.edu", "nope")
	if !errors.Is(wrongPass, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want invalid credentials", wrongPass)
	}

	_, unknown := svc.Login(ctx, "nobody@school.edu", "secret123")
	if !errors.Is(unknown, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want invalid credentials", unknown)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, time.Hour)

	_, err := svc.Login(context.Background(), "", "")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want validation failure", err)
	}
}

func TestSessionFromEmptyTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, time.Hour)

	session, err := svc.SessionFromToken("")
	if err != nil {
		t.Fatalf("SessionFromToken: %v", err)
	}
	if session != nil {
		t.Errorf("empty token produced session %+v", session)
	}
}

func TestSessionFromExpiredToken(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, -time.Minute)

	result, err := svc.Login(context.Background(), "admin@school.edu", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = svc.SessionFromToken(result.Token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("got %v, want token expired", err)
	}
}

func TestSessionFromGarbageToken(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, time.Hour)

	_, err := svc.SessionFromToken("not-a-token")
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("got %v, want token invalid", err)
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	t.Parallel()

	svc, _ := testAuthService(t, time.Hour)
	ctx := context.Background()

	if err := svc.Logout(ctx, nil); err != nil {
		t.Errorf("anonymous logout: %v", err)
	}
	if err := svc.Logout(ctx, adminSession()); err != nil {
		t.Errorf("admin logout: %v", err)
	}
}
