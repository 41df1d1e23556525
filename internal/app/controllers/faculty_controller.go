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

// FacultyController handles the faculty directory endpoints
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// List returns faculty members in display order
// @Summary List faculty
// @Description Lists faculty members ordered by their display order
// @Tags faculty
// @Produce json
// @Param department query string false "Filter by department"
// @Param limit query int false "Maximum number of members" default(100)
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyMember} "Faculty members"
// @Router /faculty [get]
func (c *FacultyController) List(ctx *gin.Context) {
	opts := services.FacultyListOptions{
		Department: ctx.Query("department"),
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

	members, err := c.facultyService.List(ctx, opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}

// Get returns a single faculty member
// @Summary Get a faculty member
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) Get(ctx *gin.Context) {
	member, err := c.facultyService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member))
}

// Departments returns the distinct department names in use
// @Summary List departments
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Departments"
// @Router /faculty/departments [get]
func (c *FacultyController) Departments(ctx *gin.Context) {
	departments, err := c.facultyService.Departments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments))
}

// Create adds a faculty member
// @Summary Create a faculty member
// @Description Adds a member to the faculty directory. Admin only.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty fields"
// @Success 201 {object} dto.APIResponse{data=models.FacultyMember} "Created member"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /faculty [post]
func (c *FacultyController) Create(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)
	member, err := c.facultyService.Create(ctx, session, services.FacultyCreateInput{
		Name:          req.Name,
		NameHindi:     req.NameHi,
		Position:      req.Position,
		PositionHindi: req.PositionHi,
		Department:    req.Department,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Order:         req.Order,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member))
}

// Update applies a partial update to a faculty member
// @Summary Update a faculty member
// @Description Updates the provided fields of a faculty member. Admin only.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [put]
func (c *FacultyController) Update(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	session := middleware.SessionFromContext(ctx)
	err := c.facultyService.Update(ctx, session, ctx.Param("id"), models.FacultyUpdate{
		Name:          req.Name,
		NameHindi:     req.NameHi,
		Position:      req.Position,
		PositionHindi: req.PositionHi,
		Department:    req.Department,
		Qualification: req.Qualification,
		Experience:    req.Experience,
		Order:         req.Order,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Faculty member updated"}))
}

// UploadPhoto stores a profile photo for a faculty member
// @Summary Upload a faculty photo
// @Description Stores a profile photo and records its URL on the member. Replaces any previous photo. Admin only.
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Stored photo URL"
// @Failure 400 {object} dto.ErrorResponse "Missing photo file"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id}/photo [post]
func (c *FacultyController) UploadPhoto(ctx *gin.Context) {
	photo, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A photo file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("photo")))
		return
	}

	session := middleware.SessionFromContext(ctx)
	photoURL, err := c.facultyService.UploadPhoto(ctx, session, ctx.Param("id"), photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PhotoResponse{PhotoURL: photoURL}))
}

// Delete removes a faculty member
// @Summary Delete a faculty member
// @Description Removes a member and their stored photo. Admin only.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) Delete(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)
	if err := c.facultyService.Delete(ctx, session, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Faculty member deleted"}))
}
