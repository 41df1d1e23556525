package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anupamk/vidyalaya/internal/app/auth"
	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

// List limits. Omitted or non-positive limits fall back to the
// per-collection default; nothing may exceed the hard cap.
const (
	defaultNoticeLimit = 20
	maxListLimit       = 500
)

// clampLimit normalizes a caller-supplied list limit.
func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// NoticeListOptions filters a notice listing.
type NoticeListOptions struct {
	ActiveOnly bool
	Limit      int
}

// NoticeCreateInput carries the fields for a new notice. Title and
// content are required; the Hindi translations are optional.
type NoticeCreateInput struct {
	Title        string
	TitleHindi   string
	Content      string
	ContentHindi string
	IsActive     *bool
}

// NoticeService defines the interface for notice operations.
type NoticeService interface {
	List(ctx context.Context, opts NoticeListOptions) ([]*models.Notice, error)
	GetByID(ctx context.Context, id string) (*models.Notice, error)
	Create(ctx context.Context, session *models.Session, input NoticeCreateInput) (*models.Notice, error)
	Update(ctx context.Context, session *models.Session, id string, update models.NoticeUpdate) error
	Delete(ctx context.Context, session *models.Session, id string) error
}

// noticeStore is the slice of the notices collection the service consumes.
type noticeStore interface {
	Create(ctx context.Context, notice *models.Notice) (*models.Notice, error)
	GetByID(ctx context.Context, id string) (*models.Notice, error)
	List(ctx context.Context, activeOnly bool, limit int) ([]*models.Notice, error)
	Update(ctx context.Context, id string, update models.NoticeUpdate) error
	Delete(ctx context.Context, id string) error
}

// noticeServiceImpl implements the NoticeService interface
type noticeServiceImpl struct {
	noticeRepo noticeStore
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeRepo noticeStore) NoticeService {
	return &noticeServiceImpl{
		noticeRepo: noticeRepo,
	}
}

// List retrieves notices newest first. No role is required.
func (s *noticeServiceImpl) List(ctx context.Context, opts NoticeListOptions) ([]*models.Notice, error) {
	limit := clampLimit(opts.Limit, defaultNoticeLimit)

	notices, err := s.noticeRepo.List(ctx, opts.ActiveOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notices: %w", err)
	}
	return notices, nil
}

// GetByID retrieves a notice by ID.
func (s *noticeServiceImpl) GetByID(ctx context.Context, id string) (*models.Notice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("notice id is required")
	}

	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notice: %w", err)
	}
	return notice, nil
}

// Create creates a notice. Admin role is checked before any store call.
func (s *noticeServiceImpl) Create(ctx context.Context, session *models.Session, input NoticeCreateInput) (*models.Notice, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("notice title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("notice content is required")
	}

	// New notices are active unless the caller says otherwise.
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	notice := &models.Notice{
		Title:    models.NewLocalizedText(input.Title, input.TitleHindi),
		Content:  models.NewLocalizedText(input.Content, input.ContentHindi),
		IsActive: isActive,
	}

	created, err := s.noticeRepo.Create(ctx, notice)
	if err != nil {
		return nil, fmt.Errorf("error creating notice: %w", err)
	}
	return created, nil
}

// Update applies a partial update. Admin role is checked before any
// store call; the id and publish date cannot be expressed in the update.
func (s *noticeServiceImpl) Update(ctx context.Context, session *models.Session, id string, update models.NoticeUpdate) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("notice id is required")
	}
	if update.IsZero() {
		return apperrors.NewValidationError("no fields to update")
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return apperrors.NewValidationError("notice title cannot be emptied")
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return apperrors.NewValidationError("notice content cannot be emptied")
	}

	if err := s.noticeRepo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("error updating notice: %w", err)
	}
	return nil
}

// Delete removes a notice. Delete is final.
func (s *noticeServiceImpl) Delete(ctx context.Context, session *models.Session, id string) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("notice id is required")
	}

	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}
	return nil
}
