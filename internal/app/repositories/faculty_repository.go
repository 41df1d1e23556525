package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
)

// FacultyRepository handles the faculty collection. Rows are ordered by
// display_order ascending so editors control the public sequence.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const facultyColumns = "id, name, name_hi, position, position_hi, department, qualification, experience, display_order, photo_url, created_at, last_updated"

func scanFacultyMember(row squirrel.RowScanner) (*models.FacultyMember, error) {
	var (
		m          models.FacultyMember
		nameHi     string
		positionHi string
	)
	err := row.Scan(&m.ID, &m.Name.Default, &nameHi, &m.Position.Default, &positionHi,
		&m.Department, &m.Qualification, &m.Experience, &m.Order, &m.PhotoURL,
		&m.CreatedAt, &m.LastUpdated)
	if err != nil {
		return nil, err
	}
	m.Name = models.NewLocalizedText(m.Name.Default, nameHi)
	m.Position = models.NewLocalizedText(m.Position.Default, positionHi)
	return &m, nil
}

// Create inserts a faculty member and reads back the store-assigned id
// and timestamps.
func (r *FacultyRepository) Create(ctx context.Context, member *models.FacultyMember) (*models.FacultyMember, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "name_hi", "position", "position_hi", "department",
			"qualification", "experience", "display_order", "photo_url").
		Values(member.Name.Default, member.Name.Translation(models.LocaleHindi),
			member.Position.Default, member.Position.Translation(models.LocaleHindi),
			member.Department, member.Qualification, member.Experience,
			member.Order, member.PhotoURL).
		Suffix("RETURNING id, created_at, last_updated").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	created := *member
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt, &created.LastUpdated)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return nil, apperrors.NewStoreError(err, "error creating faculty member")
	}

	return &created, nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id string) (*models.FacultyMember, error) {
	sql, args, err := r.sb.Select(facultyColumns).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	member, err := scanFacultyMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapQueryError(err, "error getting faculty member by ID")
	}
	return member, nil
}

// List retrieves faculty members ordered by display order ascending,
// optionally filtered by department.
func (r *FacultyRepository) List(ctx context.Context, department string, limit int) ([]*models.FacultyMember, error) {
	builder := r.sb.Select(facultyColumns).
		From("faculty").
		OrderBy("display_order ASC").
		Limit(uint64(limit))
	if department != "" {
		builder = builder.Where(squirrel.Eq{"department": department})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, apperrors.NewStoreError(err, "error querying faculty")
	}
	defer rows.Close()

	members := []*models.FacultyMember{}
	for rows.Next() {
		member, err := scanFacultyMember(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err, "error scanning faculty row")
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating faculty rows")
	}

	return members, nil
}

// ListDepartments returns the distinct non-empty department values.
func (r *FacultyRepository) ListDepartments(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT department").
		From("faculty").
		Where(squirrel.NotEq{"department": ""}).
		OrderBy("department ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list departments query")
		return nil, apperrors.NewStoreError(err, "error querying departments")
	}
	defer rows.Close()

	departments := []string{}
	for rows.Next() {
		var dept string
		if err := rows.Scan(&dept); err != nil {
			return nil, apperrors.NewStoreError(err, "error scanning department row")
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating department rows")
	}

	return departments, nil
}

// Update applies a partial update and stamps last_updated.
func (r *FacultyRepository) Update(ctx context.Context, id string, update models.FacultyUpdate) error {
	builder := r.sb.Update("faculty").
		Set("last_updated", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.NameHindi != nil {
		builder = builder.Set("name_hi", *update.NameHindi)
	}
	if update.Position != nil {
		builder = builder.Set("position", *update.Position)
	}
	if update.PositionHindi != nil {
		builder = builder.Set("position_hi", *update.PositionHindi)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Qualification != nil {
		builder = builder.Set("qualification", *update.Qualification)
	}
	if update.Experience != nil {
		builder = builder.Set("experience", *update.Experience)
	}
	if update.Order != nil {
		builder = builder.Set("display_order", *update.Order)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error executing update faculty query")
		return apperrors.NewStoreError(err, "error updating faculty member")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetPhotoURL stores the resolvable reference of an uploaded photo.
// The upload must have completed before this is called so no committed
// row ever points at a missing asset.
func (r *FacultyRepository) SetPhotoURL(ctx context.Context, id string, photoURL string) error {
	sql, args, err := r.sb.Update("faculty").
		Set("photo_url", photoURL).
		Set("last_updated", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set photo query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error executing set photo query")
		return apperrors.NewStoreError(err, "error setting faculty photo")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a faculty member.
func (r *FacultyRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error executing delete faculty query")
		return apperrors.NewStoreError(err, "error deleting faculty member")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
