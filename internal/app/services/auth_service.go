package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/auth"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
)

// LoginResult is the session plus the token that carries it.
type LoginResult struct {
	Session   *models.Session `json:"session"`
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"`
}

// AuthService authenticates principals and resolves sessions from tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	SessionFromToken(token string) (*models.Session, error)
	Logout(ctx context.Context, session *models.Session) error
}

// userStore is the slice of the users collection the service consumes.
type userStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   userStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo userStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates by email and password and issues a session token.
// Unknown emails and wrong passwords both surface as ErrInvalidCredentials
// so callers cannot probe which accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &LoginResult{
		Session: &models.Session{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		},
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// SessionFromToken resolves the session a bearer token carries. An empty
// token yields a nil session with no error: the caller is simply not
// authenticated yet. Expired and malformed tokens map to the token errors
// of the application taxonomy.
func (s *authServiceImpl) SessionFromToken(token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.NewCustomError(apperrors.ErrTokenInvalid, err.Error())
	}

	return claims.Session(), nil
}

// Logout always succeeds locally: the token is stateless, so clearing the
// session is the client discarding it. The event is recorded regardless.
func (s *authServiceImpl) Logout(ctx context.Context, session *models.Session) error {
	if session != nil {
		logger.Info().Str("userID", session.UserID).Msg("User logged out")
	}
	return nil
}
