package models

import "time"

// GalleryItem represents a bilingual image record. ImageURL is required:
// an item without an image is not a valid entity. Filename is the internal
// asset key used to locate the stored binary for deletion.
type GalleryItem struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"imageUrl"`
	Filename    string        `json:"filename"`
	CreatedAt   time.Time     `json:"createdAt"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// GalleryUpdate carries the metadata fields an admin may change on a
// gallery item. The image itself is immutable; replacing an image means
// deleting the item and uploading a new one.
type GalleryUpdate struct {
	Title            *string
	TitleHindi       *string
	Description      *string
	DescriptionHindi *string
	Category         *string
}

// IsZero reports whether the update would change nothing.
func (u GalleryUpdate) IsZero() bool {
	return u.Title == nil && u.TitleHindi == nil && u.Description == nil &&
		u.DescriptionHindi == nil && u.Category == nil
}
