package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

func TestGalleryCreateRequiresImage(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{}
	svc := NewGalleryService(store, &fakeAssetStore{})

	_, err := svc.Create(context.Background(), adminSession(), GalleryCreateInput{Title: "Annual day"}, nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want validation failure", err)
	}
	if store.calls != 0 {
		t.Errorf("store was touched despite missing image")
	}
}

func TestGalleryCreateUploadsBeforeInsert(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{}
	assets := &fakeAssetStore{}
	svc := NewGalleryService(store, assets)

	created, err := svc.Create(context.Background(), adminSession(), GalleryCreateInput{
		Title:    "Annual day",
		Category: "event",
	}, &multipart.FileHeader{Filename: "day.jpg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ImageURL == "" {
		t.Fatal("created item has no image url")
	}
	if len(assets.saved) != 1 || assets.saved[0] != created.ImageURL {
		t.Errorf("saved assets %v do not match item url %q", assets.saved, created.ImageURL)
	}
	if created.Filename == "" {
		t.Error("created item has no asset key")
	}
}

func TestGalleryCreateCleansUpOnInsertFailure(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{failCreate: true}
	assets := &fakeAssetStore{}
	svc := NewGalleryService(store, assets)

	_, err := svc.Create(context.Background(), adminSession(), GalleryCreateInput{Title: "x"}, &multipart.FileHeader{Filename: "x.jpg"})
	if !errors.Is(err, apperrors.ErrStoreUnavailable) {
		t.Fatalf("got %v, want store failure", err)
	}
	if len(assets.saved) != 1 {
		t.Fatalf("expected one upload attempt, got %d", len(assets.saved))
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != assets.saved[0] {
		t.Errorf("orphaned upload was not reclaimed (deleted: %v)", assets.deleted)
	}
}

func TestGalleryCreateFailedUploadSkipsInsert(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{}
	assets := &fakeAssetStore{failSave: true}
	svc := NewGalleryService(store, assets)

	_, err := svc.Create(context.Background(), adminSession(), GalleryCreateInput{Title: "x"}, &multipart.FileHeader{Filename: "x.jpg"})
	if !errors.Is(err, apperrors.ErrAssetIO) {
		t.Fatalf("got %v, want asset failure", err)
	}
	if store.calls != 0 {
		t.Errorf("document was written despite failed upload")
	}
}

func TestGalleryDeleteRemovesImage(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{}
	assets := &fakeAssetStore{}
	svc := NewGalleryService(store, assets)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminSession(), GalleryCreateInput{Title: "x"}, &multipart.FileHeader{Filename: "x.jpg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, adminSession(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(assets.deleted) != 1 || assets.deleted[0] != created.ImageURL {
		t.Errorf("image %q was not deleted (deleted: %v)", created.ImageURL, assets.deleted)
	}
	if _, err := store.GetByID(ctx, created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("item still present after delete")
	}
}

func TestGalleryMutationsRejectNonAdmin(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{}
	assets := &fakeAssetStore{}
	svc := NewGalleryService(store, assets)
	ctx := context.Background()

	if _, err := svc.Create(ctx, teacherSession(), GalleryCreateInput{Title: "x"}, &multipart.FileHeader{Filename: "x.jpg"}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Create: got %v, want permission denied", err)
	}
	title := "y"
	if err := svc.Update(ctx, nil, "gallery-1", models.GalleryUpdate{Title: &title}); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Update: got %v, want permission denied", err)
	}
	if err := svc.Delete(ctx, teacherSession(), "gallery-1"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("Delete: got %v, want permission denied", err)
	}
	if store.calls != 0 || len(assets.saved) != 0 {
		t.Errorf("stores saw calls from an unauthorized caller")
	}
}

func TestGalleryListByCategory(t *testing.T) {
	t.Parallel()

	store := &fakeGalleryStore{}
	svc := NewGalleryService(store, &fakeAssetStore{})
	ctx := context.Background()

	for _, cat := range []string{"event", "event", "campus"} {
		if _, err := svc.Create(ctx, adminSession(), GalleryCreateInput{Title: "t", Category: cat}, &multipart.FileHeader{Filename: "f.jpg"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	events, err := svc.List(ctx, GalleryListOptions{Category: "event"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d event items, want 2", len(events))
	}

	categories, err := svc.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("got %v, want two distinct categories", categories)
	}
}
