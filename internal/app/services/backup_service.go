package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
)

// Collection names accepted by the backup module.
const (
	CollectionNotices = "notices"
	CollectionFaculty = "faculty"
	CollectionGallery = "gallery"
)

// DefaultBackupDocLimit caps how many documents one collection snapshot
// may carry.
const DefaultBackupDocLimit = 1000

// DefaultBackupPrefix names the artifact of a full site backup.
const DefaultBackupPrefix = "school-website-backup"

// defaultBackupCollections is the fixed set a full backup snapshots.
var defaultBackupCollections = []string{CollectionNotices, CollectionFaculty, CollectionGallery}

// Snapshot maps collection names to their raw documents, ids included,
// suitable for later re-seeding.
type Snapshot map[string][]interface{}

// BackupResult reports a full-backup attempt. It is returned instead of
// an error because the caller is a UI action that must render either
// outcome.
type BackupResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"filePath,omitempty"`
	Err      error  `json:"-"`
}

// BackupService snapshots content collections into a portable artifact.
type BackupService interface {
	BackupCollection(ctx context.Context, name string, maxDocs int) ([]interface{}, error)
	BackupCollections(ctx context.Context, names []string) (Snapshot, error)
	WriteBackup(data Snapshot, prefix string) (string, error)
	CreateFullBackup(ctx context.Context) BackupResult
}

// backupServiceImpl implements the BackupService interface
type backupServiceImpl struct {
	noticeRepo  noticeStore
	facultyRepo facultyStore
	galleryRepo galleryStore
	backupDir   string
}

// NewBackupService creates a new backup service instance writing
// artifacts into backupDir.
func NewBackupService(noticeRepo noticeStore, facultyRepo facultyStore, galleryRepo galleryStore, backupDir string) BackupService {
	return &backupServiceImpl{
		noticeRepo:  noticeRepo,
		facultyRepo: facultyRepo,
		galleryRepo: galleryRepo,
		backupDir:   backupDir,
	}
}

// BackupCollection reads up to maxDocs documents of one collection
// through the same list path the content services use.
func (s *backupServiceImpl) BackupCollection(ctx context.Context, name string, maxDocs int) ([]interface{}, error) {
	if maxDocs <= 0 {
		maxDocs = DefaultBackupDocLimit
	}

	switch name {
	case CollectionNotices:
		notices, err := s.noticeRepo.List(ctx, false, maxDocs)
		if err != nil {
			return nil, fmt.Errorf("error backing up notices: %w", err)
		}
		docs := make([]interface{}, len(notices))
		for i, n := range notices {
			docs[i] = n
		}
		return docs, nil

	case CollectionFaculty:
		members, err := s.facultyRepo.List(ctx, "", maxDocs)
		if err != nil {
			return nil, fmt.Errorf("error backing up faculty: %w", err)
		}
		docs := make([]interface{}, len(members))
		for i, m := range members {
			docs[i] = m
		}
		return docs, nil

	case CollectionGallery:
		items, err := s.galleryRepo.List(ctx, "", maxDocs)
		if err != nil {
			return nil, fmt.Errorf("error backing up gallery: %w", err)
		}
		docs := make([]interface{}, len(items))
		for i, it := range items {
			docs[i] = it
		}
		return docs, nil

	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown collection: %s", name))
	}
}

// BackupCollections snapshots each named collection in turn. Any single
// failure fails the whole snapshot: a silently incomplete backup is
// strictly worse than a visibly failed one.
func (s *backupServiceImpl) BackupCollections(ctx context.Context, names []string) (Snapshot, error) {
	if len(names) == 0 {
		return nil, apperrors.NewValidationError("no collections named for backup")
	}

	snapshot := Snapshot{}
	for _, name := range names {
		docs, err := s.BackupCollection(ctx, name, DefaultBackupDocLimit)
		if err != nil {
			return nil, fmt.Errorf("backup of %s failed: %w", name, err)
		}
		snapshot[name] = docs
	}
	return snapshot, nil
}

// WriteBackup serializes the snapshot into a timestamped JSON artifact
// and returns its path. Write failures surface, never swallowed.
func (s *backupServiceImpl) WriteBackup(data Snapshot, prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultBackupPrefix
	}

	if err := os.MkdirAll(s.backupDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}

	filename := fmt.Sprintf("%s-%s.json", prefix, time.Now().Format("2006-01-02"))
	path := filepath.Join(s.backupDir, filename)

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup artifact: %w", err)
	}

	logger.Info().Str("path", path).Int("collections", len(data)).Msg("Backup artifact written")
	return path, nil
}

// CreateFullBackup snapshots the fixed default collection set and writes
// the artifact, reporting success or failure as a result value.
func (s *backupServiceImpl) CreateFullBackup(ctx context.Context) BackupResult {
	snapshot, err := s.BackupCollections(ctx, defaultBackupCollections)
	if err != nil {
		logger.Error().Err(err).Msg("Full backup failed")
		return BackupResult{Success: false, Err: err}
	}

	path, err := s.WriteBackup(snapshot, DefaultBackupPrefix)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to write full backup")
		return BackupResult{Success: false, Err: err}
	}

	return BackupResult{Success: true, FilePath: path}
}

// FullBackupCollections returns the fixed set a full backup covers.
func FullBackupCollections() []string {
	out := make([]string, len(defaultBackupCollections))
	copy(out, defaultBackupCollections)
	return out
}
