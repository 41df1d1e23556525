package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

func TestFacultyCreateAppliesDefaultOrder(t *testing.T) {
	t.Parallel()

	store := &fakeFacultyStore{}
	svc := NewFacultyService(store, &fakeAssetStore{})

	created, err := svc.Create(context.Background(), adminSession(), FacultyCreateInput{
		Name:     "Dr. Anita Sharma",
		Position: "Principal",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Order != models.DefaultFacultyOrder {
		t.Errorf("order = %d, want sentinel %d", created.Order, models.DefaultFacultyOrder)
	}

	order := 1
	ordered, err := svc.Create(context.Background(), adminSession(), FacultyCreateInput{
		Name:     "Mr. Verma",
		Position: "Teacher",
		Order:    &order,
	})
	if err != nil {
		t.Fatalf("Create ordered: %v", err)
	}
	if ordered.Order != 1 {
		t.Errorf("explicit order = %d, want 1", ordered.Order)
	}
}

func TestFacultyCreateRequiresNameAndPosition(t *testing.T) {
	t.Parallel()

	svc := NewFacultyService(&fakeFacultyStore{}, &fakeAssetStore{})

	_, err := svc.Create(context.Background(), adminSession(), FacultyCreateInput{Position: "Teacher"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("missing name: got %v, want validation failure", err)
	}
	_, err = svc.Create(context.Background(), adminSession(), FacultyCreateInput{Name: "X"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("missing position: got %v, want validation failure", err)
	}
}

func TestFacultyMutationsRejectNonAdminBeforeStore(t *testing.T) {
	t.Parallel()

	store := &fakeFacultyStore{}
	assets := &fakeAssetStore{}
	svc := NewFacultyService(store, assets)
	ctx := context.Background()

	if _, err := svc.Create(ctx, teacherSession(), FacultyCreateInput{Name: "n", Position: "p"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Create: got %v, want permission denied", err)
	}
	if _, err := svc.UploadPhoto(ctx, nil, "faculty-1", &multipart.FileHeader{Filename: "a.jpg"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("UploadPhoto: got %v, want permission denied", err)
	}
	if err := svc.Delete(ctx, teacherSession(), "faculty-1"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Delete: got %v, want permission denied", err)
	}

	if store.calls != 0 {
		t.Errorf("store saw %d calls from an unauthorized caller", store.calls)
	}
	if len(assets.saved) != 0 {
		t.Errorf("assets saw %d saves from an unauthorized caller", len(assets.saved))
	}
}

func TestFacultyUploadPhotoReplacesPrevious(t *testing.T) {
	t.Parallel()

	store := &fakeFacultyStore{}
	assets := &fakeAssetStore{}
	svc := NewFacultyService(store, assets)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminSession(), FacultyCreateInput{Name: "n", Position: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := svc.UploadPhoto(ctx, adminSession(), created.ID, &multipart.FileHeader{Filename: "one.jpg"})
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	stored, _ := store.GetByID(ctx, created.ID)
	if stored.PhotoURL != first {
		t.Errorf("photo url = %q, want %q", stored.PhotoURL, first)
	}

	second, err := svc.UploadPhoto(ctx, adminSession(), created.ID, &multipart.FileHeader{Filename: "two.jpg"})
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if second == first {
		t.Fatalf("second upload returned the first url")
	}
	// The replaced photo must be reclaimed.
	found := false
	for _, d := range assets.deleted {
		if d == first {
			found = true
		}
	}
	if !found {
		t.Errorf("replaced photo %q was not deleted (deleted: %v)", first, assets.deleted)
	}
}

func TestFacultyUploadPhotoUnknownMemberSkipsSave(t *testing.T) {
	t.Parallel()

	assets := &fakeAssetStore{}
	svc := NewFacultyService(&fakeFacultyStore{}, assets)

	_, err := svc.UploadPhoto(context.Background(), adminSession(), "missing", &multipart.FileHeader{Filename: "a.jpg"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("got %v, want not found", err)
	}
	if len(assets.saved) != 0 {
		t.Errorf("asset was saved for a missing member")
	}
}

func TestFacultyDeleteSurvivesAssetFailure(t *testing.T) {
	t.Parallel()

	store := &fakeFacultyStore{}
	assets := &fakeAssetStore{}
	svc := NewFacultyService(store, assets)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminSession(), FacultyCreateInput{Name: "n", Position: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.UploadPhoto(ctx, adminSession(), created.ID, &multipart.FileHeader{Filename: "a.jpg"}); err != nil {
		t.Fatalf("upload: %v", err)
	}

	// The binary is gone or unreachable; the profile must still go away.
	assets.failDelete = true
	if err := svc.Delete(ctx, adminSession(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("member still present after delete")
	}
}

func TestFacultyDepartments(t *testing.T) {
	t.Parallel()

	store := &fakeFacultyStore{}
	svc := NewFacultyService(store, &fakeAssetStore{})
	ctx := context.Background()

	for _, dept := range []string{"Science", "Science", "Arts", ""} {
		if _, err := svc.Create(ctx, adminSession(), FacultyCreateInput{Name: "n", Position: "p", Department: dept}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	departments, err := svc.Departments(ctx)
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(departments) != 2 {
		t.Errorf("got %v, want two distinct departments", departments)
	}
}
