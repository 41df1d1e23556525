package models

import "time"

// DefaultFacultyOrder is the display-order sentinel applied when a new
// faculty member is created without an explicit order, so unordered
// entries sort after every ordered one.
const DefaultFacultyOrder = 999

// FacultyMember represents a bilingual staff profile.
type FacultyMember struct {
	ID            string        `json:"id"`
	Name          LocalizedText `json:"name"`
	Position      LocalizedText `json:"position"`
	Department    string        `json:"department"`
	Qualification string        `json:"qualification"`
	Experience    string        `json:"experience"`
	Order         int           `json:"order"`
	PhotoURL      string        `json:"photoUrl,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdated   time.Time     `json:"lastUpdated"`
}

// FacultyUpdate carries the fields an admin may change on a faculty member.
// Nil fields are left untouched.
type FacultyUpdate struct {
	Name          *string
	NameHindi     *string
	Position      *string
	PositionHindi *string
	Department    *string
	Qualification *string
	Experience    *string
	Order         *int
}

// IsZero reports whether the update would change nothing.
func (u FacultyUpdate) IsZero() bool {
	return u.Name == nil && u.NameHindi == nil && u.Position == nil &&
		u.PositionHindi == nil && u.Department == nil && u.Qualification == nil &&
		u.Experience == nil && u.Order == nil
}
