package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anupamk/vidyalaya/internal/app/controllers"
	"github.com/anupamk/vidyalaya/internal/app/models"
	"github.com/anupamk/vidyalaya/internal/app/models/dto"
	"github.com/anupamk/vidyalaya/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	noticeController *controllers.NoticeController,
	facultyController *controllers.FacultyController,
	galleryController *controllers.GalleryController,
	backupController *controllers.BackupController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	// Anyone can read the published content; no session needed.
	notices := v1.Group("/notices")
	{
		notices.GET("", noticeController.List)
		notices.GET("/:id", noticeController.Get)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.GET("", facultyController.List)
		faculty.GET("/departments", facultyController.Departments)
		faculty.GET("/:id", facultyController.Get)
	}

	gallery := v1.Group("/gallery")
	{
		gallery.GET("", galleryController.List)
		gallery.GET("/categories", galleryController.Categories)
		gallery.GET("/:id", galleryController.Get)
	}

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authMiddleware.OptionalJWTAuth(), authController.Logout)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// --- Admin routes ---
	// The role gate here is a convenience; the services check the session
	// again before touching anything.
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		noticesAdmin := admin.Group("/notices")
		{
			noticesAdmin.POST("", noticeController.Create)
			noticesAdmin.PUT("/:id", noticeController.Update)
			noticesAdmin.DELETE("/:id", noticeController.Delete)
		}

		facultyAdmin := admin.Group("/faculty")
		{
			facultyAdmin.POST("", facultyController.Create)
			facultyAdmin.PUT("/:id", facultyController.Update)
			facultyAdmin.DELETE("/:id", facultyController.Delete)
			facultyAdmin.POST("/:id/photo", facultyController.UploadPhoto)
		}

		galleryAdmin := admin.Group("/gallery")
		{
			galleryAdmin.POST("", galleryController.Create)
			galleryAdmin.PUT("/:id", galleryController.Update)
			galleryAdmin.DELETE("/:id", galleryController.Delete)
		}

		backup := admin.Group("/admin/backup")
		{
			backup.POST("", backupController.Create)
			backup.GET("/download", backupController.Download)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Success:   true,
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
