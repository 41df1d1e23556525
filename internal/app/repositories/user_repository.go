package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
)

// ErrEmailAlreadyExists is returned when an account with the email exists.
var ErrEmailAlreadyExists = errors.New("email already exists")

// UserRepository handles account records backing the identity provider.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, email, password_hash, name, role, created_at"

func scanUser(row squirrel.RowScanner) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	// Principals with an unknown stored role resolve to guest.
	u.Role = models.ParseRole(role)
	return &u, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapQueryError(err, "error getting user by email")
	}
	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapQueryError(err, "error getting user by ID")
	}
	return user, nil
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password_hash", "name", "role").
		Values(user.Email, user.PasswordHash, user.Name, string(user.Role)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create user query: %w", err)
	}

	var id string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return "", ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return "", apperrors.NewStoreError(err, "error creating user")
	}

	return id, nil
}

// Count returns the number of user accounts. Used by the seeder to
// decide whether a default admin must be provisioned.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, apperrors.NewStoreError(err, "error counting users")
	}
	return count, nil
}
