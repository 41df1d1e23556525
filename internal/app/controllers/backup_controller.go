package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anupamk/vidyalaya/internal/app/models/dto"
	"github.com/anupamk/vidyalaya/internal/app/services"
	"github.com/anupamk/vidyalaya/internal/middleware"
)

// BackupController handles the administrative backup endpoints
type BackupController struct {
	backupService services.BackupService
}

// NewBackupController creates a new BackupController
func NewBackupController(backupService services.BackupService) *BackupController {
	return &BackupController{
		backupService: backupService,
	}
}

// Create snapshots the content collections into a backup artifact
// @Summary Create a backup
// @Description Snapshots the requested collections (all of them by default) into a dated JSON artifact on the server. Admin only.
// @Tags backup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BackupRequest false "Collections to snapshot"
// @Success 200 {object} dto.APIResponse{data=dto.BackupResponse} "Backup written"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 503 {object} dto.ErrorResponse "Content store unavailable"
// @Router /admin/backup [post]
func (c *BackupController) Create(ctx *gin.Context) {
	var req dto.BackupRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			return
		}
	}

	if len(req.Collections) == 0 {
		result := c.backupService.CreateFullBackup(ctx)
		if !result.Success {
			middleware.HandleAPIError(ctx, result.Err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BackupResponse{
			Success:  true,
			FilePath: result.FilePath,
		}))
		return
	}

	snapshot, err := c.backupService.BackupCollections(ctx, req.Collections)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	filePath, err := c.backupService.WriteBackup(snapshot, services.DefaultBackupPrefix)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.BackupResponse{
		Success:  true,
		FilePath: filePath,
	}))
}

// Download streams a fresh full snapshot to the caller
// @Summary Download a backup
// @Description Builds a full snapshot of every content collection and streams it as a JSON attachment. Admin only.
// @Tags backup
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.Snapshot "Snapshot"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 503 {object} dto.ErrorResponse "Content store unavailable"
// @Router /admin/backup/download [get]
func (c *BackupController) Download(ctx *gin.Context) {
	snapshot, err := c.backupService.BackupCollections(ctx, services.FullBackupCollections())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.json", services.DefaultBackupPrefix, time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.JSON(http.StatusOK, snapshot)
}
