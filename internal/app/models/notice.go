package models

import "time"

// Notice represents a bilingual announcement shown on the public site.
// PublishDate is assigned by the store at creation and never edited;
// LastUpdated is refreshed on every mutation.
type Notice struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Content     LocalizedText `json:"content"`
	IsActive    bool          `json:"isActive"`
	PublishDate time.Time     `json:"publishDate"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// NoticeUpdate carries the fields an admin may change on a notice.
// Nil fields are left untouched. The id and publish date are not
// representable here, so they cannot be mutated.
type NoticeUpdate struct {
	Title        *string
	TitleHindi   *string
	Content      *string
	ContentHindi *string
	IsActive     *bool
}

// IsZero reports whether the update would change nothing.
func (u NoticeUpdate) IsZero() bool {
	return u.Title == nil && u.TitleHindi == nil && u.Content == nil &&
		u.ContentHindi == nil && u.IsActive == nil
}
