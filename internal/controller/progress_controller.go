package controller

import (
	"errors"

	"pathwise_backend/internal/service"
	"pathwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// swagger:model QuizProgressRequest
type QuizProgressRequest struct {
	Course    string  `json:"course" binding:"required"`
	Topic     string  `json:"topic" binding:"required"`
	Score     int     `json:"score"`
	Total     int     `json:"total" binding:"required"`
	TimeSpent float64 `json:"time_spent"`
}

// RecordQuiz godoc
// @Summary Record a completed quiz
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuizProgressRequest true "quiz result"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /progress/quiz [post]
func (c *ProgressController) RecordQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ProgressService.RecordQuiz(claims.Email, service.QuizSubmission{
		Course:    req.Course,
		Topic:     req.Topic,
		Score:     req.Score,
		Total:     req.Total,
		TimeSpent: req.TimeSpent,
	})
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"recorded": true})
}

// swagger:model RoadmapProgressRequest
type RoadmapProgressRequest struct {
	RoadmapID          string   `json:"roadmap_id"`
	Topic              string   `json:"topic"`
	CompletedSubtopics []string `json:"completed_subtopics"`
	CurrentWeek        int      `json:"current_week"`
	ProgressPercentage float64  `json:"progress_percentage"`
	TimeSpent          float64  `json:"time_spent"`
}

// RecordRoadmapProgress godoc
// @Summary Record progress against a roadmap
// @Description The entry for the roadmap id is replaced, not merged
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body RoadmapProgressRequest true "roadmap progress"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /progress/roadmap [post]
func (c *ProgressController) RecordRoadmapProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RoadmapProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ProgressService.RecordRoadmapProgress(claims.Email, service.RoadmapProgressSubmission{
		RoadmapID:          req.RoadmapID,
		Topic:              req.Topic,
		CompletedSubtopics: req.CompletedSubtopics,
		CurrentWeek:        req.CurrentWeek,
		ProgressPercentage: req.ProgressPercentage,
		TimeSpent:          req.TimeSpent,
	})
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"recorded": true})
}

// RecordLogin godoc
// @Summary Record a login event for the caller
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /progress/login [post]
func (c *ProgressController) RecordLogin(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProgressService.RecordLogin(claims.Email, ctx.ClientIP(), ctx.Request.UserAgent()); err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"recorded": true})
}

// swagger:model LearningTimeRequest
type LearningTimeRequest struct {
	Minutes float64 `json:"minutes" binding:"required,gt=0"`
}

// UpdateLearningTime godoc
// @Summary Credit manually reported study minutes
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body LearningTimeRequest true "minutes studied"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "user not found"
// @Router /progress/learning-time [post]
func (c *ProgressController) UpdateLearningTime(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LearningTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.UpdateLearningTime(claims.Email, req.Minutes); err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"recorded": true})
}

// GetProgress godoc
// @Summary Fetch the caller's progress projection
// @Description Returns quiz history, roadmap progress, the ten most recent logins and the profile
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProgressView}
// @Failure 404 {object} util.Response "user not found"
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.ProgressService.GetProgress(claims.Email)
	if err != nil {
		c.writeProgressError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

func (c *ProgressController) writeProgressError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx)
		return
	}
	util.LogInternalError(ctx, err)
}
