package dto

// CreateNoticeRequest carries the fields for a new notice. The Hindi
// translations are optional; readers fall back to the English value.
type CreateNoticeRequest struct {
	Title     string `json:"title" binding:"required" example:"Admission open"`
	TitleHi   string `json:"titleHi,omitempty" example:"प्रवेश खुला है"`
	Content   string `json:"content" binding:"required" example:"Apply before 30 June"`
	ContentHi string `json:"contentHi,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UpdateNoticeRequest carries a partial notice update. Absent fields are
// left untouched.
type UpdateNoticeRequest struct {
	Title     *string `json:"title,omitempty"`
	TitleHi   *string `json:"titleHi,omitempty"`
	Content   *string `json:"content,omitempty"`
	ContentHi *string `json:"contentHi,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}
