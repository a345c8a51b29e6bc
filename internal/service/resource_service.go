package service

import (
	"context"
	"strings"

	"pathwise_backend/internal/llm"
)

// Resource request types.
const (
	ResourceTypeBasic      = "basic"
	ResourceTypeStructured = "structured_learning"
)

// ResourceService generates free-form study content: quizzes and learning
// resources. The output contract is free text, so no structural
// validation is applied beyond trimming.
type ResourceService struct {
	Generator llm.Generator
	Prompts   PromptBuilder
}

func NewResourceService(generator llm.Generator) *ResourceService {
	return &ResourceService{Generator: generator}
}

func (s *ResourceService) GenerateQuiz(ctx context.Context, course, topic, subtopic, description string) (string, error) {
	raw, err := s.Generator.Generate(ctx, s.Prompts.Quiz(course, topic, subtopic, description))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (s *ResourceService) GenerateResource(ctx context.Context, course, knowledgeLevel, description, duration, requestType string) (string, error) {
	var req llm.Request
	if requestType == ResourceTypeStructured {
		req = s.Prompts.StructuredResource(course, knowledgeLevel, description, duration)
	} else {
		req = s.Prompts.Resource(course, knowledgeLevel, description, duration)
	}

	raw, err := s.Generator.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
