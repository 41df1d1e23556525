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

// NoticeController handles the notice board endpoints
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
	}
}

// List returns published notices, newest first
// @Summary List notices
// @Description Lists notices ordered by publish date descending
// @Tags notices
// @Produce json
// @Param activeOnly query bool false "Only active notices" default(false)
// @Param limit query int false "Maximum number of notices" default(20)
// @Success 200 {object} dto.APIResponse{data=[]models.Notice} "Notices"
// @Router /notices [get]
func (c *NoticeController) List(ctx *gin.Context) {
	opts := services.NoticeListOptions{
		ActiveOnly: ctx.Query("activeOnly") == "true",
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

	notices, err := c.noticeService.List(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notices))
}

// Get returns a single notice
// @Summary Get a notice
// @Tags notices
// @Produce json
// @Param id path string true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Router /notices/{id} [get]
func (c *NoticeController) Get(ctx *gin.Context) {
	notice, err := c.noticeService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(notice))
}

// Create publishes a new notice
// @Summary Create a notice
// @Description Publishes a new notice. Admin only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoticeRequest true "Notice fields"
// @Success 201 {object} dto.APIResponse{data=models.Notice} "Created notice"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /notices [post]
func (c *NoticeController) Create(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)
	notice, err := c.noticeService.Create(ctx, session, services.NoticeCreateInput{
		Title:        req.Title,
		TitleHindi:   req.TitleHi,
		Content:      req.Content,
		ContentHindi: req.ContentHi,
		IsActive:     req.IsActive,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(notice))
}

// Update applies a partial update to a notice
// @Summary Update a notice
// @Description Updates the provided fields of a notice. Admin only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Router /notices/{id} [put]
func (c *NoticeController) Update(ctx *gin.Context) {
	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)
	err := c.noticeService.Update(ctx, session, ctx.Param("id"), models.NoticeUpdate{
		Title:        req.Title,
		TitleHindi:   req.TitleHi,
		Content:      req.Content,
		ContentHindi: req.ContentHi,
		IsActive:     req.IsActive,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Notice updated"}))
}

// Delete removes a notice
// @Summary Delete a notice
// @Description Permanently removes a notice. Admin only.
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Router /notices/{id} [delete]
func (c *NoticeController) Delete(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)
	if err := c.noticeService.Delete(ctx, session, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Notice deleted"}))
}
