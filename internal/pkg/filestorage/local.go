package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anupamk/vidyalaya/internal/pkg/apperrors"
	"github.com/anupamk/vidyalaya/internal/pkg/logger"
)

// LocalStorage persists assets on the local filesystem and serves them
// through the static uploads route.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is prepended to returned asset references.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	// Ensure the base path exists
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Key derives a collision-resistant asset key from the owning document's
// id and the upload time, keeping the original extension.
func Key(ownerID, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	if ownerID == "" {
		ownerID = uuid.New().String()
	}
	return fmt.Sprintf("%s-%d%s", ownerID, time.Now().UnixMilli(), ext)
}

// Save stores the uploaded binary under subdir/key and returns its URL.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subdir, key string) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewAssetError(nil, "no file to upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", apperrors.NewAssetError(err, "failed to open uploaded file")
	}
	defer file.Close()

	dirPath := ls.basePath
	if subdir != "" {
		dirPath = filepath.Join(ls.basePath, subdir)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create asset subdirectory")
			return "", apperrors.NewAssetError(err, "failed to create asset subdirectory")
		}
	}

	dstPath := filepath.Join(dirPath, key)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", apperrors.NewAssetError(err, "failed to create destination file")
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		// Remove the partially written file
		_ = os.Remove(dstPath)
		return "", apperrors.NewAssetError(err, "failed to save file content")
	}

	url := ls.baseURL + "/" + key
	if subdir != "" {
		url = ls.baseURL + "/" + subdir + "/" + key
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("key", key).Str("url", url).Msg("Asset saved")
	return url, nil
}

// Delete removes the binary behind a previously returned URL. A missing
// file counts as a successful delete so the operation is idempotent.
func (ls *LocalStorage) Delete(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	physicalPath := ls.physicalPath(fileURL)
	if physicalPath == "" {
		return apperrors.NewAssetError(nil, fmt.Sprintf("invalid asset reference: %s", fileURL))
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Asset to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete asset")
		return apperrors.NewAssetError(err, "failed to delete asset")
	}

	logger.Info().Str("path", physicalPath).Msg("Asset deleted")
	return nil
}

// physicalPath resolves a returned URL back to its location under
// basePath. The last two path segments carry subdir/key; a bare key has
// only one.
func (ls *LocalStorage) physicalPath(fileURL string) string {
	trimmed := fileURL
	if ls.baseURL != "" && strings.HasPrefix(fileURL, ls.baseURL+"/") {
		trimmed = strings.TrimPrefix(fileURL, ls.baseURL+"/")
	} else {
		segments := strings.Split(strings.Trim(fileURL, "/"), "/")
		if len(segments) >= 2 {
			trimmed = strings.Join(segments[len(segments)-2:], "/")
		} else {
			trimmed = segments[0]
		}
	}

	key := filepath.Clean(trimmed)
	if key == "" || key == "." || strings.HasPrefix(key, "..") {
		return ""
	}
	return filepath.Join(ls.basePath, key)
}
