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

// GalleryRepository handles the gallery collection. Rows are ordered by
// creation time, newest first.
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const galleryColumns = "id, title, title_hi, description, description_hi, category, image_url, filename, created_at, last_updated"

func scanGalleryItem(row squirrel.RowScanner) (*models.GalleryItem, error) {
	var (
		item          models.GalleryItem
		titleHi       string
		descriptionHi string
	)
	err := row.Scan(&item.ID, &item.Title.Default, &titleHi, &item.Description.Default, &descriptionHi,
		&item.Category, &item.ImageURL, &item.Filename, &item.CreatedAt, &item.LastUpdated)
	if err != nil {
		return nil, err
	}
	item.Title = models.NewLocalizedText(item.Title.Default, titleHi)
	item.Description = models.NewLocalizedText(item.Description.Default, descriptionHi)
	return &item, nil
}

// Create inserts a gallery item. The image must already be uploaded;
// ImageURL and Filename are required at this point.
func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error) {
	sql, args, err := r.sb.Insert("gallery").
		Columns("title", "title_hi", "description", "description_hi", "category", "image_url", "filename").
		Values(item.Title.Default, item.Title.Translation(models.LocaleHindi),
			item.Description.Default, item.Description.Translation(models.LocaleHindi),
			item.Category, item.ImageURL, item.Filename).
		Suffix("RETURNING id, created_at, last_updated").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create gallery query: %w", err)
	}

	created := *item
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.CreatedAt, &created.LastUpdated)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery query")
		return nil, apperrors.NewStoreError(err, "error creating gallery item")
	}

	return &created, nil
}

// GetByID retrieves a gallery item by ID
func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	sql, args, err := r.sb.Select(galleryColumns).
		From("gallery").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get gallery query: %w", err)
	}

	item, err := scanGalleryItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapQueryError(err, "error getting gallery item by ID")
	}
	return item, nil
}

// List retrieves gallery items newest first, optionally filtered by category.
func (r *GalleryRepository) List(ctx context.Context, category string, limit int) ([]*models.GalleryItem, error) {
	builder := r.sb.Select(galleryColumns).
		From("gallery").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if category != "" {
		builder = builder.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list gallery query")
		return nil, apperrors.NewStoreError(err, "error querying gallery")
	}
	defer rows.Close()

	items := []*models.GalleryItem{}
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, apperrors.NewStoreError(err, "error scanning gallery row")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating gallery rows")
	}

	return items, nil
}

// ListCategories returns the distinct non-empty category values.
func (r *GalleryRepository) ListCategories(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT category").
		From("gallery").
		Where(squirrel.NotEq{"category": ""}).
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list categories query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list categories query")
		return nil, apperrors.NewStoreError(err, "error querying categories")
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, apperrors.NewStoreError(err, "error scanning category row")
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err, "error iterating category rows")
	}

	return categories, nil
}

// Update applies a partial metadata update and stamps last_updated.
func (r *GalleryRepository) Update(ctx context.Context, id string, update models.GalleryUpdate) error {
	builder := r.sb.Update("gallery").
		Set("last_updated", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.TitleHindi != nil {
		builder = builder.Set("title_hi", *update.TitleHindi)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.DescriptionHindi != nil {
		builder = builder.Set("description_hi", *update.DescriptionHindi)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update gallery query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("galleryID", id).Msg("Error executing update gallery query")
		return apperrors.NewStoreError(err, "error updating gallery item")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a gallery item document.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	sql, args, err := r.sb.Delete("gallery").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete gallery query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("galleryID", id).Msg("Error executing delete gallery query")
		return apperrors.NewStoreError(err, "error deleting gallery item")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
