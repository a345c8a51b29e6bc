package controller

import (
	"errors"

	"pathwise_backend/internal/service"
	"pathwise_backend/internal/util"
	"pathwise_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService     *service.AuthService
	ProgressService *service.ProgressService
}

func NewAuthController(authService *service.AuthService, progressService *service.ProgressService) *AuthController {
	return &AuthController{
		AuthService:     authService,
		ProgressService: progressService,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary Register a new learner
// @Description Creates an account keyed by email with an empty learning profile
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "registration payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "missing or malformed fields"
// @Failure 409 {object} util.Response "email already registered"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	account, err := c.AuthService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, "email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"email": account.Email,
		"name":  account.Name,
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log a learner in
// @Description Verifies credentials, records the login event and returns a JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, account, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, "invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// Best effort; a failed history write must not fail the login.
	if err := c.ProgressService.RecordLogin(account.Email, ctx.ClientIP(), ctx.Request.UserAgent()); err != nil {
		logger.Log.Warn("failed to record login", zap.String("email", account.Email), zap.Error(err))
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"email":   account.Email,
			"name":    account.Name,
			"profile": account.Profile.Data(),
		},
	})
}

// GetProfile godoc
// @Summary Fetch the caller's profile
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	account, err := c.AuthService.GetProfile(claims.Email)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"email":   account.Email,
		"name":    account.Name,
		"profile": account.Profile.Data(),
	})
}
