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

const defaultFacultyLimit = 100

// facultyAssetDir is the subdirectory faculty photos are stored under.
const facultyAssetDir = "faculty"

// FacultyListOptions filters a faculty listing.
type FacultyListOptions struct {
	Department string
	Limit      int
}

// FacultyCreateInput carries the fields for a new faculty member.
// Name and position are required.
type FacultyCreateInput struct {
	Name          string
	NameHindi     string
	Position      string
	PositionHindi string
	Department    string
	Qualification string
	Experience    string
	Order         *int
}

// FacultyService defines the interface for faculty operations.
type FacultyService interface {
	List(ctx context.Context, opts FacultyListOptions) ([]*models.FacultyMember, error)
	GetByID(ctx context.Context, id string) (*models.FacultyMember, error)
	Departments(ctx context.Context) ([]string, error)
	Create(ctx context.Context, session *models.Session, input FacultyCreateInput) (*models.FacultyMember, error)
	Update(ctx context.Context, session *models.Session, id string, update models.FacultyUpdate) error
	UploadPhoto(ctx context.Context, session *models.Session, id string, photo *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, session *models.Session, id string) error
}

// facultyStore is the slice of the faculty collection the service consumes.
type facultyStore interface {
	Create(ctx context.Context, member *models.FacultyMember) (*models.FacultyMember, error)
	GetByID(ctx context.Context, id string) (*models.FacultyMember, error)
	List(ctx context.Context, department string, limit int) ([]*models.FacultyMember, error)
	ListDepartments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, update models.FacultyUpdate) error
	SetPhotoURL(ctx context.Context, id string, photoURL string) error
	Delete(ctx context.Context, id string) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo facultyStore
	assets      filestorage.Store
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo facultyStore, assets filestorage.Store) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
		assets:      assets,
	}
}

// List retrieves faculty members in display order. No role is required.
func (s *facultyServiceImpl) List(ctx context.Context, opts FacultyListOptions) ([]*models.FacultyMember, error) {
	limit := clampLimit(opts.Limit, defaultFacultyLimit)

	members, err := s.facultyRepo.List(ctx, opts.Department, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return members, nil
}

// GetByID retrieves a faculty member by ID.
func (s *facultyServiceImpl) GetByID(ctx context.Context, id string) (*models.FacultyMember, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("faculty id is required")
	}

	member, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}
	return member, nil
}

// Departments returns the distinct department values across all members.
func (s *facultyServiceImpl) Departments(ctx context.Context) ([]string, error) {
	departments, err := s.facultyRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// Create creates a faculty member. Admin role is checked before any
// store call. Unspecified display order gets the end-of-list sentinel.
func (s *facultyServiceImpl) Create(ctx context.Context, session *models.Session, input FacultyCreateInput) (*models.FacultyMember, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("faculty name is required")
	}
	if strings.TrimSpace(input.Position) == "" {
		return nil, apperrors.NewValidationError("faculty position is required")
	}

	order := models.DefaultFacultyOrder
	if input.Order != nil {
		order = *input.Order
	}

	member := &models.FacultyMember{
		Name:          models.NewLocalizedText(input.Name, input.NameHindi),
		Position:      models.NewLocalizedText(input.Position, input.PositionHindi),
		Department:    input.Department,
		Qualification: input.Qualification,
		Experience:    input.Experience,
		Order:         order,
	}

	created, err := s.facultyRepo.Create(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("error creating faculty member: %w", err)
	}
	return created, nil
}

// Update applies a partial update. Admin role is checked first.
func (s *facultyServiceImpl) Update(ctx context.Context, session *models.Session, id string, update models.FacultyUpdate) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("faculty id is required")
	}
	if update.IsZero() {
		return apperrors.NewValidationError("no fields to update")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return apperrors.NewValidationError("faculty name cannot be emptied")
	}
	if update.Position != nil && strings.TrimSpace(*update.Position) == "" {
		return apperrors.NewValidationError("faculty position cannot be emptied")
	}

	if err := s.facultyRepo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("error updating faculty member: %w", err)
	}
	return nil
}

// UploadPhoto stores a photo for an existing member and records its URL.
// The upload completes before the document write, so the stored reference
// always resolves. A previously stored photo is removed best-effort.
func (s *facultyServiceImpl) UploadPhoto(ctx context.Context, session *models.Session, id string, photo *multipart.FileHeader) (string, error) {
	if err := auth.RequireAdmin(session); err != nil {
		return "", err
	}

	if strings.TrimSpace(id) == "" {
		return "", apperrors.NewValidationError("faculty id is required")
	}
	if photo == nil {
		return "", apperrors.NewValidationError("photo file is required")
	}

	member, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("error retrieving faculty member: %w", err)
	}

	key := filestorage.Key(id, photo.Filename)
	url, err := s.assets.Save(photo, facultyAssetDir, key)
	if err != nil {
		return "", fmt.Errorf("error uploading faculty photo: %w", err)
	}

	if err := s.facultyRepo.SetPhotoURL(ctx, id, url); err != nil {
		return "", fmt.Errorf("error recording faculty photo: %w", err)
	}

	// The old photo is unreferenced now; losing it on failure is acceptable.
	if member.PhotoURL != "" && member.PhotoURL != url {
		if err := s.assets.Delete(member.PhotoURL); err != nil {
			logger.Warn().Err(err).Str("facultyID", id).Str("photoUrl", member.PhotoURL).Msg("Failed to delete replaced faculty photo")
		}
	}

	return url, nil
}

// Delete removes a faculty member. A failing photo delete is logged and
// does not abort the document delete: the editorial intent must succeed
// even when the binary is already missing.
func (s *facultyServiceImpl) Delete(ctx context.Context, session *models.Session, id string) error {
	if err := auth.RequireAdmin(session); err != nil {
		return err
	}

	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("faculty id is required")
	}

	member, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving faculty member: %w", err)
	}

	if member.PhotoURL != "" {
		if err := s.assets.Delete(member.PhotoURL); err != nil {
			logger.Warn().Err(err).Str("facultyID", id).Str("photoUrl", member.PhotoURL).Msg("Failed to delete faculty photo, removing document anyway")
		}
	}

	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting faculty member: %w", err)
	}
	return nil
}
