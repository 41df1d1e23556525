package dto

// CreateGalleryRequest carries the metadata of a gallery upload. It binds
// from the multipart form that also carries the image file.
type CreateGalleryRequest struct {
	Title         string `form:"title" binding:"required" example:"Annual day 2026"`
	TitleHi       string `form:"titleHi" example:"वार्षिक दिवस 2026"`
	Description   string `form:"description"`
	DescriptionHi string `form:"descriptionHi"`
	Category      string `form:"category" example:"event"`
}

// UpdateGalleryRequest carries a partial gallery metadata update. The
// image itself cannot be changed.
type UpdateGalleryRequest struct {
	Title         *string `json:"title,omitempty"`
	TitleHi       *string `json:"titleHi,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionHi *string `json:"descriptionHi,omitempty"`
	Category      *string `json:"category,omitempty"`
}
