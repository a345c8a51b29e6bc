package controller

import (
	"errors"
	"net/http"

	"pathwise_backend/internal/llm"
	"pathwise_backend/internal/service"
	"pathwise_backend/internal/util"
	"pathwise_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type GenerationController struct {
	RoadmapService   *service.RoadmapService
	ResourceService  *service.ResourceService
	TranslateService *service.TranslateService
	ExportService    *service.ExportService
}

func NewGenerationController(
	roadmapService *service.RoadmapService,
	resourceService *service.ResourceService,
	translateService *service.TranslateService,
	exportService *service.ExportService,
) *GenerationController {
	return &GenerationController{
		RoadmapService:   roadmapService,
		ResourceService:  resourceService,
		TranslateService: translateService,
		ExportService:    exportService,
	}
}

// swagger:model RoadmapRequest
type RoadmapRequest struct {
	Topic          string `json:"topic"`
	Time           string `json:"time"`
	KnowledgeLevel string `json:"knowledge_level"`
}

// GenerateRoadmap godoc
// @Summary Generate a week-structured learning roadmap
// @Tags generation
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body RoadmapRequest true "learning goal"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "topic failed validation"
// @Failure 502 {object} util.Response "generator failed or violated the roadmap contract"
// @Router /roadmap [post]
func (c *GenerationController) GenerateRoadmap(ctx *gin.Context) {
	var req RoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Topic == "" {
		req.Topic = "Machine Learning"
	}
	if req.Time == "" {
		req.Time = "4 weeks"
	}
	if req.KnowledgeLevel == "" {
		req.KnowledgeLevel = "Absolute Beginner"
	}

	roadmap, err := c.RoadmapService.Generate(ctx.Request.Context(), req.Topic, req.Time, req.KnowledgeLevel)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("roadmap", "error").Inc()
		var schemaErr *util.SchemaError
		var genErr *llm.GenerationError
		switch {
		case errors.Is(err, util.ErrInvalidTopic):
			util.BadRequest(ctx, util.ErrInvalidTopic.Error())
		case errors.As(err, &schemaErr):
			util.Error(ctx, http.StatusBadGateway, "generator returned an invalid roadmap")
		case errors.As(err, &genErr):
			util.Error(ctx, http.StatusBadGateway, "generation failed")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.GenerationCounter.WithLabelValues("roadmap", "success").Inc()
	util.Success(ctx, roadmap)
}

// swagger:model QuizRequest
type QuizRequest struct {
	Course      string `json:"course" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	Subtopic    string `json:"subtopic" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// GenerateQuiz godoc
// @Summary Generate a free-text quiz for a subtopic
// @Tags generation
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuizRequest true "quiz subject"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "required fields not provided"
// @Failure 502 {object} util.Response "generation failed"
// @Router /quiz [post]
func (c *GenerationController) GenerateQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	text, err := c.ResourceService.GenerateQuiz(ctx.Request.Context(), req.Course, req.Topic, req.Subtopic, req.Description)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("quiz", "error").Inc()
		util.Error(ctx, http.StatusBadGateway, "generation failed")
		return
	}

	monitoring.GenerationCounter.WithLabelValues("quiz", "success").Inc()
	util.Success(ctx, gin.H{"quiz": text})
}

// swagger:model ResourceRequest
type ResourceRequest struct {
	Course         string `json:"course" binding:"required"`
	KnowledgeLevel string `json:"knowledge_level" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Time           string `json:"time" binding:"required"`
	RequestType    string `json:"request_type"`
}

// GenerateResource godoc
// @Summary Generate study content for a learning goal
// @Description request_type "structured_learning" demands five markdown sections; anything else is basic free text
// @Tags generation
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ResourceRequest true "resource request"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "required fields not provided"
// @Failure 502 {object} util.Response "generation failed"
// @Router /generate-resource [post]
func (c *GenerationController) GenerateResource(ctx *gin.Context) {
	var req ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.RequestType == "" {
		req.RequestType = service.ResourceTypeBasic
	}

	text, err := c.ResourceService.GenerateResource(ctx.Request.Context(), req.Course, req.KnowledgeLevel, req.Description, req.Time, req.RequestType)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("resource", "error").Inc()
		util.Error(ctx, http.StatusBadGateway, "generation failed")
		return
	}

	monitoring.GenerationCounter.WithLabelValues("resource", "success").Inc()
	util.Success(ctx, gin.H{"resource": text})
}

// swagger:model TranslateRequest
type TranslateRequest struct {
	TextArr []string `json:"textArr" binding:"required,min=1"`
	ToLang  string   `json:"toLang" binding:"required"`
}

// Translate godoc
// @Summary Translate a batch of text segments
// @Description Returns exactly one translated segment per input segment, in order
// @Tags generation
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body TranslateRequest true "segments and target language"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "required fields not provided"
// @Failure 502 {object} util.Response "translation failed"
// @Router /translate [post]
func (c *GenerationController) Translate(ctx *gin.Context) {
	var req TranslateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	translated, err := c.TranslateService.Translate(ctx.Request.Context(), req.TextArr, req.ToLang)
	if err != nil {
		monitoring.GenerationCounter.WithLabelValues("translate", "error").Inc()
		util.Error(ctx, http.StatusBadGateway, "translation failed")
		return
	}

	monitoring.GenerationCounter.WithLabelValues("translate", "success").Inc()
	util.Success(ctx, gin.H{"translations": translated})
}

// swagger:model ExportRequest
type ExportRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ExportResource godoc
// @Summary Archive a generated resource for later retrieval
// @Tags generation
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ExportRequest true "resource to archive"
// @Success 201 {object} util.Response
// @Router /resources/export [post]
func (c *GenerationController) ExportResource(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	url, err := c.ExportService.Export(ctx.Request.Context(), claims.Email, req.Title, req.Content)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"url": url})
}
