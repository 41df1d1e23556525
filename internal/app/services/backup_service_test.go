package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
)

func seededBackupService(t *testing.T, backupDir string) (BackupService, *fakeNoticeStore, *fakeFacultyStore, *fakeGalleryStore) {
	t.Helper()

	notices := &fakeNoticeStore{}
	faculty := &fakeFacultyStore{}
	gallery := &fakeGalleryStore{}

	for i := 0; i < 3; i++ {
		notices.notices = append(notices.notices, &models.Notice{
			ID:       fmt.Sprintf("notice-%d", i+1),
			Title:    models.NewLocalizedText(fmt.Sprintf("Notice %d", i+1), ""),
			Content:  models.NewLocalizedText("body", ""),
			IsActive: true,
		})
	}
	faculty.members = append(faculty.members, &models.FacultyMember{
		ID:       "faculty-1",
		Name:     models.NewLocalizedText("Dr. Sharma", ""),
		Position: models.NewLocalizedText("Principal", ""),
		Order:    1,
	})
	gallery.items = append(gallery.items, &models.GalleryItem{
		ID:       "gallery-1",
		Title:    models.NewLocalizedText("Annual day", ""),
		ImageURL: "http://assets.test/gallery/a.jpg",
	})

	return NewBackupService(notices, faculty, gallery, backupDir), notices, faculty, gallery
}

func TestBackupCollectionsSnapshotsEverything(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := seededBackupService(t, t.TempDir())

	snapshot, err := svc.BackupCollections(context.Background(), FullBackupCollections())
	if err != nil {
		t.Fatalf("BackupCollections: %v", err)
	}
	if len(snapshot[CollectionNotices]) != 3 {
		t.Errorf("notices = %d, want 3", len(snapshot[CollectionNotices]))
	}
	if len(snapshot[CollectionFaculty]) != 1 {
		t.Errorf("faculty = %d, want 1", len(snapshot[CollectionFaculty]))
	}
	if len(snapshot[CollectionGallery]) != 1 {
		t.Errorf("gallery = %d, want 1", len(snapshot[CollectionGallery]))
	}
}

func TestBackupCollectionsIsAllOrNothing(t *testing.T) {
	t.Parallel()

	svc, _, faculty, _ := seededBackupService(t, t.TempDir())
	faculty.failAll = true

	snapshot, err := svc.BackupCollections(context.Background(), FullBackupCollections())
	if err == nil {
		t.Fatal("expected error when one collection fails")
	}
	if snapshot != nil {
		t.Errorf("partial snapshot returned alongside error")
	}
}

func TestBackupCollectionRejectsUnknownName(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := seededBackupService(t, t.TempDir())

	_, err := svc.BackupCollection(context.Background(), "settings", 10)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want validation failure", err)
	}
}

func TestBackupCollectionsRejectsEmptySet(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := seededBackupService(t, t.TempDir())

	_, err := svc.BackupCollections(context.Background(), nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("got %v, want validation failure", err)
	}
}

func TestWriteBackupArtifactNameAndShape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc, _, _, _ := seededBackupService(t, dir)
	ctx := context.Background()

	snapshot, err := svc.BackupCollections(ctx, FullBackupCollections())
	if err != nil {
		t.Fatalf("BackupCollections: %v", err)
	}

	path, err := svc.WriteBackup(snapshot, "")
	if err != nil {
		t.Fatalf("WriteBackup: %v", err)
	}

	wantName := fmt.Sprintf("%s-%s.json", DefaultBackupPrefix, time.Now().Format("2006-01-02"))
	if filepath.Base(path) != wantName {
		t.Errorf("artifact name = %q, want %q", filepath.Base(path), wantName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	var decoded map[string][]map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(decoded[CollectionNotices]) != 3 {
		t.Errorf("artifact notices = %d, want 3", len(decoded[CollectionNotices]))
	}
	// Documents must carry their ids so a restore can re-seed them.
	if id, _ := decoded[CollectionNotices][0]["id"].(string); id == "" {
		t.Error("snapshot document lost its id")
	}
}

func TestCreateFullBackupReportsFailureAsResult(t *testing.T) {
	t.Parallel()

	svc, notices, _, _ := seededBackupService(t, t.TempDir())
	notices.failAll = true

	result := svc.CreateFullBackup(context.Background())
	if result.Success {
		t.Fatal("backup reported success despite store failure")
	}
	if result.Err == nil {
		t.Error("failed result carries no error")
	}
	if result.FilePath != "" {
		t.Errorf("failed result carries a file path: %q", result.FilePath)
	}
}

func TestCreateFullBackupWritesArtifact(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc, _, _, _ := seededBackupService(t, dir)

	result := svc.CreateFullBackup(context.Background())
	if !result.Success {
		t.Fatalf("backup failed: %v", result.Err)
	}
	if _, err := os.Stat(result.FilePath); err != nil {
		t.Errorf("artifact missing at %q: %v", result.FilePath, err)
	}
}
