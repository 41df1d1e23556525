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

// NoticeRepository handles the notices collection. Rows are ordered by
// publish date, newest first; that is the only ordering the repository
// guarantees.
type NoticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const noticeColumns = "id, title, title_hi, content, content_hi, is_active, publish_date, last_updated"

func scanNotice(row squirrel.RowScanner) (*models.Notice, error) {
	var (
		n         models.Notice
		titleHi   string
		contentHi string
	)
	err := row.Scan(&n.ID, &n.Title.Default, &titleHi, &n.Content.Default, &contentHi,
		&n.IsActive, &n.PublishDate, &n.LastUpdated)
	if err != nil {
		return nil, err
	}
	n.Title = models.NewLocalizedText(n.Title.Default, titleHi)
	n.Content = models.NewLocalizedText(n.Content.Default, contentHi)
	return &n, nil
}

// Create inserts a notice. The store assigns the id and both timestamps;
// they are read back into the returned value.
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (*models.Notice, error) {
	sql, args, err := r.sb.Insert("notices").
		Columns("title", "title_hi", "content", "content_hi", "is_active").
		Values(notice.Title.Default, notice.Title.Translation(models.LocaleHindi),
			notice.Content.Default, notice.Content.Translation(models.LocaleHindi),
			notice.IsActive).
		Suffix("RETURNING id, publish_date, last_updated").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create notice query: %w", err)
	}

	created := *notice
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.PublishDate, &created.LastUpdated)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create notice query")
		return nil, apperrors.NewStoreError(err, "error creating notice")
	}

	return &created, nil
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(ctx context.Context, id string) (*models.Notice, error) {
	sql, args, err := r.sb.Select(noticeColumns).
		From("notices").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get notice query: %w", err)
	}

	notice, err := scanNotice(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapQueryError(err, "error getting notice by ID")
	}
	return notice, nil
}

// List retrieves notices ordered by publish date descending. When
// activeOnly is set, inactive notices are filtered out.
func (r *NoticeRepository) List(ctx context.Context, activeOnly bool, limit int) ([]*models.Notice, error) {
	builder := r.sb.Select(noticeColumns).
		From("notices").
		OrderBy("publish_date DESC").
		Limit(uint64(limit))
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notices query")
		return nil, apperrors.NewStoreError(err, "error querying notices")
	}
	defer rows.Close()

	notices := []*models.Notice{}
	for rows.Next() {
		notice, err := scanNotice(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err, "error scanning notice row")
		}
		notices = append(notices, notice)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating notice rows")
	}

	return notices, nil
}

// Update applies a partial update and stamps last_updated. Returns
// ErrNotFound when no row matches the id.
func (r *NoticeRepository) Update(ctx context.Context, id string, update models.NoticeUpdate) error {
	builder := r.sb.Update("notices").
		Set("last_updated", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.TitleHindi != nil {
		builder = builder.Set("title_hi", *update.TitleHindi)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.ContentHindi != nil {
		builder = builder.Set("content_hi", *update.ContentHindi)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update notice query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("noticeID", id).Msg("Error executing update notice query")
		return apperrors.NewStoreError(err, "error updating notice")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a notice. Delete is final; there is no soft delete.
func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("notices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete notice query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("noticeID", id).Msg("Error executing delete notice query")
		return apperrors.NewStoreError(err, "error deleting notice")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
