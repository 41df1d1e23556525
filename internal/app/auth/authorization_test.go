package auth

import (
	"errors"
	"testing"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

func TestRequireRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		session  *models.Session
		required models.Role
		wantErr  bool
	}{
		{"nil session", nil, models.RoleGuest, true},
		{"guest needs guest", &models.Session{Role: models.RoleGuest}, models.RoleGuest, false},
		{"teacher needs admin", &models.Session{Role: models.RoleTeacher}, models.RoleAdmin, true},
		{"admin needs admin", &models.Session{Role: models.RoleAdmin}, models.RoleAdmin, false},
		{"admin needs teacher", &models.Session{Role: models.RoleAdmin}, models.RoleTeacher, false},
		{"unknown role needs student", &models.Session{Role: models.Role("x")}, models.RoleStudent, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := RequireRole(c.session, c.required)
			if c.wantErr {
				if !errors.Is(err, apperrors.ErrPermissionDenied) {
					t.Errorf("got %v, want permission denied", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	if err := RequireAdmin(&models.Session{Role: models.RoleAdmin}); err != nil {
		t.Errorf("admin rejected: %v", err)
	}
	if err := RequireAdmin(&models.Session{Role: models.RoleTeacher}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("teacher accepted: %v", err)
	}
}
