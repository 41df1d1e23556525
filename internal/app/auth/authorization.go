package auth

import (
	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

// RequireRole is the single checkpoint every mutating operation passes.
// It fails when no session is present or the session's role ranks below
// the required one. Content services call this before their first store
// round-trip, so unauthorized callers never produce partial side effects;
// any route-level role middleware is a convenience on top of this check.
func RequireRole(session *models.Session, required models.Role) error {
	if session == nil {
		return apperrors.NewForbiddenError("authentication required")
	}
	if !session.Role.AtLeast(required) {
		return apperrors.NewForbiddenError("insufficient role for this operation")
	}
	return nil
}

// RequireAdmin is shorthand for the only role that may mutate content.
func RequireAdmin(session *models.Session) error {
	return RequireRole(session, models.RoleAdmin)
}
