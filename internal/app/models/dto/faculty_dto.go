package dto

// CreateFacultyRequest carries the fields for a new faculty member.
type CreateFacultyRequest struct {
	Name          string `json:"name" binding:"required" example:"Dr. Anita Sharma"`
	NameHi        string `json:"nameHi,omitempty" example:"डॉ. अनीता शर्मा"`
	Position      string `json:"position" binding:"required" example:"Principal"`
	PositionHi    string `json:"positionHi,omitempty"`
	Department    string `json:"department,omitempty" example:"Science"`
	Qualification string `json:"qualification,omitempty" example:"M.Sc., Ph.D."`
	Experience    string `json:"experience,omitempty" example:"15 years"`
	Order         *int   `json:"order,omitempty" example:"1"`
}

// UpdateFacultyRequest carries a partial faculty update.
type UpdateFacultyRequest struct {
	Name          *string `json:"name,omitempty"`
	NameHi        *string `json:"nameHi,omitempty"`
	Position      *string `json:"position,omitempty"`
	PositionHi    *string `json:"positionHi,omitempty"`
	Department    *string `json:"department,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
	Experience    *string `json:"experience,omitempty"`
	Order         *int    `json:"order,omitempty"`
}

// PhotoResponse reports the stored reference of an uploaded photo.
type PhotoResponse struct {
	PhotoURL string `json:"photoUrl"`
}
