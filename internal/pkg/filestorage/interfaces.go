package filestorage

import (
	"mime/multipart"
)

// Store is the asset store contract the content services consume:
// persist a binary under a collision-resistant key and return a
// resolvable reference; delete by that reference.
type Store interface {
	// Save stores the uploaded binary under subdir/key and returns the
	// resolvable URL for it.
	Save(fileHeader *multipart.FileHeader, subdir, key string) (string, error)

	// Delete removes the binary behind a previously returned URL. A URL
	// whose binary is already gone is not an error.
	Delete(fileURL string) error
}
