package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/anupamk/vidyalaya/internal/app/auth"
	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/filestorage"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
)

const defaultGalleryLimit = 20

// galleryAssetDir is the subdirectory gallery images are stored under.
const galleryAssetDir = "gallery"

// GalleryListOptions filters a gallery listing.
type GalleryListOptions struct {
	Category string
	Limit    int
}

// GalleryCreateInput carries the metadata for a new gallery item. The
// image binary arrives separately; title and image are required.
type GalleryCreateInput struct {
	Title            string
	TitleHindi       string
	Description      string
	DescriptionHindi string
	Category         string
}

// GalleryService defines the interface for gallery operations.
type GalleryService interface {
	List(ctx context.Context, opts GalleryListOptions) ([]*models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (*models.GalleryItem, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, session *models.Session, input GalleryCreateInput, image *multipart.FileHeader) (*models.GalleryItem, error)
	Update(ctx context.Context, session *models.Session, id string, update models.GalleryUpdate) error
	Delete(ctx context.Context, session *models.Session, id string) error
}

// galleryStore is the slice of the gallery collection the service consumes.
type galleryStore interface {
	Create(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (*models.GalleryItem, error)
	List(ctx context.Context, category string, limit int) ([]*models.GalleryItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, update models.GalleryUpdate) error
	Delete(ctx context.Context, id string) error
}

// galleryServiceImpl implements the GalleryService interface
type galleryServiceImpl struct {
	galleryRepo galleryStore
	assets      filestorage.Store
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(galleryRepo galleryStore, assets filestorage.Store) GalleryService {
	return &galleryServiceImpl{
		galleryRepo: galleryRepo,
		assets:      assets,
	}
}

// List retrieves gallery items newest first. No role is required.
func (s *galleryServiceImpl) List(ctx context.Context, opts GalleryListOptions) ([]*models.GalleryItem, error) {
	limit := clampLimit(opts.Limit, defaultGalleryLimit)

	items, err := s.galleryRepo.List(ctx, opts.Category, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery: %w", err)
	}
	return items, nil
}

// GetByID retrieves a gallery item by ID.
func (s *galleryServiceImpl) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("gallery id is required")
	}

	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery item: %w", err)
	}
	return item, nil
}

// Categories returns the distinct category values across all items.
func (s *galleryServiceImpl) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.galleryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving categories: %w", err)
	}
	return categories, nil
}

// Create uploads the image and then writes the document that references
// it, so a committed item never points at a missing asset. Admin role is
// checked before anything else.
func (s *galleryServiceImpl) Create(ctx context.Context, session *models.Session, input GalleryCreateInput, image *multipart.FileHeader) (*models.GalleryItem, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("gallery title is required")
	}
	if image == nil {
		return nil, apperrors.NewValidationError("gallery image is required")
	}

	key := filestorage.Key("", image.Filename)
	url, err := s.assets.Save(image, galleryAssetDir, key)
	if err != nil {
		return nil, fmt.Errorf("error uploading gallery image: %w", err)
	}

	item := &models.GalleryItem{
		Title:       models.NewLocalizedText(input.Title, input.TitleHindi),
		Description: models.NewLocalizedText(input.Description, input.DescriptionHindi),
		Category:    input.Category,
		ImageURL:    url,
		Filename:    key,
	}

	created, err := s.galleryRepo.Create(ctx, item)
	if err != nil {
		// The uploaded image is orphaned; reclaim it best-effort.
		if delErr := s.assets.Delete(url); delErr != nil {
			logger.Warn().Err(delErr).Str("imageUrl", url).Msg("Failed to clean up image after create failure")
		}
		return nil, fmt.Errorf("error creating gallery item: %w", err)
	}
	return created, nil
}

// Update applies a partial metadata update. Admin role is checked first.
func (s *galleryServiceImpl) Update(ctx context.Context, session *models.Session, id string, update models.GalleryUpdate) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("gallery id is required")
	}
	if update.IsZero() {
		return apperrors.NewValidationError("no fields to update")
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return apperrors.NewValidationError("gallery title cannot be emptied")
	}

	if err := s.galleryRepo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("error updating gallery item: %w", err)
	}
	return nil
}

// Delete removes a gallery item. A failing image delete is logged and
// does not abort the document delete.
func (s *galleryServiceImpl) Delete(ctx context.Context, session *models.Session, id string) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("gallery id is required")
	}

	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving gallery item: %w", err)
	}

	if item.ImageURL != "" {
		if err := s.assets.Delete(item.ImageURL); err != nil {
			logger.Warn().Err(err).Str("galleryID", id).Str("imageUrl", item.ImageURL).Msg("Failed to delete gallery image, removing document anyway")
		}
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting gallery item: %w", err)
	}
	return nil
}
