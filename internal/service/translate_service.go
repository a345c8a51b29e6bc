package service

import (
	"context"
	"strings"

	"pathwise_backend/internal/llm"
	"pathwise_backend/internal/util"
)

// TranslateService translates batches of text segments. The batch prompt
// joins all segments with a delimiter token; when the response does not
// split back into exactly one segment per input, it falls back to one
// generation call per segment and uses those results unconditionally.
// Partial results are never returned.
type TranslateService struct {
	Generator llm.Generator
	Prompts   PromptBuilder
}

func NewTranslateService(generator llm.Generator) *TranslateService {
	return &TranslateService{Generator: generator}
}

func (s *TranslateService) Translate(ctx context.Context, segments []string, target string) ([]string, error) {
	raw, err := s.Generator.Generate(ctx, s.Prompts.Translate(segments, target))
	if err != nil {
		return nil, &util.TranslationError{Err: err}
	}

	parts := strings.Split(raw, TranslateSeparator)
	if len(parts) == len(segments) {
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = strings.TrimSpace(p)
		}
		return out, nil
	}

	// Segment count drifted; the batch result is discarded wholesale.
	return s.translateEach(ctx, segments, target)
}

func (s *TranslateService) translateEach(ctx context.Context, segments []string, target string) ([]string, error) {
	out := make([]string, len(segments))
	for i, segment := range segments {
		raw, err := s.Generator.Generate(ctx, s.Prompts.TranslateSingle(segment, target))
		if err != nil {
			return nil, &util.TranslationError{Err: err}
		}
		out[i] = strings.TrimSpace(raw)
	}
	return out, nil
}
