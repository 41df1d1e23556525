package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/app/models/dto"
	"github.com/anupamk/vidyalaya/internal/app/services"
	"github.com/anupamk/vidyalaya/internal/middleware"
)

// GalleryController handles the photo gallery endpoints
type GalleryController struct {
	galleryService services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// List returns gallery items, newest first
// @Summary List gallery items
// @Description Lists gallery items ordered by creation time descending
// @Tags gallery
// @Produce json
// @Param category query string false "Filter by category"
// @Param limit query int false "Maximum number of items" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryItem} "Gallery items"
// @Router /gallery [get]
func (c *GalleryController) List(ctx *gin.Context) {
	opts := services.GalleryListOptions{
		Category: ctx.Query("category"),
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "limit must be an integer")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("limit")))
			return
		}
		opts.Limit = limit
	}

	items, err := c.galleryService.List(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// Get returns a single gallery item
// @Summary Get a gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} dto.APIResponse{data=models.GalleryItem} "Gallery item"
// @Failure 404 {object} dto.ErrorResponse "Gallery item not found"
// @Router /gallery/{id} [get]
func (c *GalleryController) Get(ctx *gin.Context) {
	item, err := c.galleryService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// Categories returns the distinct categories in use
// @Summary List gallery categories
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Categories"
// @Router /gallery/categories [get]
func (c *GalleryController) Categories(ctx *gin.Context) {
	categories, err := c.galleryService.Categories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories))
}

// Create uploads an image and publishes it as a gallery item
// @Summary Create a gallery item
// @Description Uploads an image with its metadata. The image is stored before the item is published. Admin only.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param titleHi formData string false "Title in Hindi"
// @Param description formData string false "Description"
// @Param descriptionHi formData string false "Description in Hindi"
// @Param category formData string false "Category"
// @Param image formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=models.GalleryItem} "Created item"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /gallery [post]
func (c *GalleryController) Create(ctx *gin.Context) {
	var req dto.CreateGalleryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "An image file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("image")))
		return
	}

	session := middleware.SessionFromContext(ctx)
	item, err := c.galleryService.Create(ctx, session, services.GalleryCreateInput{
		Title:            req.Title,
		TitleHindi:       req.TitleHi,
		Description:      req.Description,
		DescriptionHindi: req.DescriptionHi,
		Category:         req.Category,
	}, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// Update applies a partial metadata update to a gallery item
// @Summary Update a gallery item
// @Description Updates the metadata of a gallery item. The image itself cannot be replaced. Admin only.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Param request body dto.UpdateGalleryRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Gallery item not found"
// @Router /gallery/{id} [put]
func (c *GalleryController) Update(ctx *gin.Context) {
	var req dto.UpdateGalleryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)
	err := c.galleryService.Update(ctx, session, ctx.Param("id"), models.GalleryUpdate{
		Title:            req.Title,
		TitleHindi:       req.TitleHi,
		Description:      req.Description,
		DescriptionHindi: req.DescriptionHi,
		Category:         req.Category,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Gallery item updated"}))
}

// Delete removes a gallery item and its stored image
// @Summary Delete a gallery item
// @Description Removes the item and its stored image. Admin only.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Gallery item not found"
// @Router /gallery/{id} [delete]
func (c *GalleryController) Delete(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)
	if err := c.galleryService.Delete(ctx, session, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Gallery item deleted"}))
}
