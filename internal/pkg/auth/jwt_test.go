package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/anupamk/vidyalaya/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := testService(time.Hour)
	user := &models.User{
		ID:    "user-1",
		Email: "admin@school.edu",
		Name:  "Site Admin",
		Role:  models.RoleAdmin,
	}

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "admin@school.edu" {
		t.Errorf("claims = %+v", claims)
	}

	session := claims.Session()
	if session.Role != models.RoleAdmin {
		t.Errorf("session role = %q, want admin", session.Role)
	}
}

func TestClaimsSessionNormalizesUnknownRole(t *testing.T) {
	t.Parallel()

	claims := &Claims{UserID: "u", Role: "superuser"}
	if got := claims.Session().Role; got != models.RoleGuest {
		t.Errorf("unknown role resolved to %q, want guest", got)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	svc := testService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: "u"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("got %v, want ErrExpiredToken", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Parallel()

	svc := testService(time.Hour)
	token, _, err := svc.GenerateToken(&models.User{ID: "u"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header: got %v, want ErrInvalidFormat", err)
	}

	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("bearer prefix: token=%q err=%v", token, err)
	}

	token, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("bare token: token=%q err=%v", token, err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in the clear")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("wrong password accepted")
	}
}
