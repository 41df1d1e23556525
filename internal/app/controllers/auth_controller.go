package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anupamk/vidyalaya/internal/app/models/dto"
	"github.com/anupamk/vidyalaya/internal/app/services"
	"github.com/anupamk/vidyalaya/internal/middleware"
)

// AuthController handles login, logout and session lookup
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a principal and issues a session token
// @Summary Log in
// @Description Authenticates by email and password and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		Session: dto.SessionResponse{
			UserID: result.Session.UserID,
			Email:  result.Session.Email,
			Name:   result.Session.Name,
			Role:   string(result.Session.Role),
		},
	}))
}

// Logout ends the current session
// @Summary Log out
// @Description Clears the session. Always succeeds for the caller.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)

	if err := c.authService.Logout(ctx, session); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Logged out"}))
}

// Me returns the session of the calling principal
// @Summary Current session
// @Description Returns the authenticated principal and its resolved role
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse} "Session"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	session := middleware.SessionFromContext(ctx)
	if session == nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SessionResponse{
		UserID: session.UserID,
		Email:  session.Email,
		Name:   session.Name,
		Role:   string(session.Role),
	}))
}
