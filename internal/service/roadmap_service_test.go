package service

import (
	"context"
	"errors"
	"testing"

	"pathwise_backend/internal/llm"
	"pathwise_backend/internal/util"
)

const validRoadmapJSON = `{
	"week 1": {
		"topic": " Introduction to Go ",
		"subtopics": [
			{"subtopic": "Setup", "time": "30 minutes", "description": " Install the toolchain "},
			{"subtopic": "Hello World", "time": "1 hour", "description": "First program"}
		]
	},
	"week 2": {
		"topic": "Concurrency",
		"subtopics": [
			{"subtopic": "Goroutines", "time": "2 hours", "description": "Lightweight threads"}
		]
	}
}`

func TestGenerateRoadmap(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResponse{Text: validRoadmapJSON})
	svc := NewRoadmapService(mock, nil, 0)

	roadmap, err := svc.Generate(context.Background(), "Go Programming", "2 weeks", "Beginner")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roadmap) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(roadmap))
	}

	week1, ok := roadmap["week 1"]
	if !ok {
		t.Fatal("missing week 1")
	}
	if week1.Topic != "Introduction to Go" {
		t.Errorf("topic not trimmed: %q", week1.Topic)
	}
	if len(week1.Subtopics) != 2 {
		t.Fatalf("expected 2 subtopics, got %d", len(week1.Subtopics))
	}
	if week1.Subtopics[0].Description != "Install the toolchain" {
		t.Errorf("description not trimmed: %q", week1.Subtopics[0].Description)
	}

	if mock.CallCount() != 1 {
		t.Errorf("expected exactly one generation call, got %d", mock.CallCount())
	}
	if !mock.Calls[0].JSONOutput {
		t.Error("roadmap generation must request JSON output")
	}
}

func TestGenerateRoadmapMalformedJSON(t *testing.T) {
	mock := llm.NewMockGenerator(llm.MockResponse{Text: "here is your roadmap: week 1 ..."})
	svc := NewRoadmapService(mock, nil, 0)

	roadmap, err := svc.Generate(context.Background(), "Go Programming", "2 weeks", "Beginner")
	if roadmap != nil {
		t.Error("no partial roadmap may be returned on a schema violation")
	}

	var schemaErr *util.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("schema violations must not be retried, got %d calls", mock.CallCount())
	}
}

func TestGenerateRoadmapRejectsBadTopic(t *testing.T) {
	mock := llm.NewMockGenerator()
	svc := NewRoadmapService(mock, nil, 0)

	_, err := svc.Generate(context.Background(), "12345", "4 weeks", "Beginner")
	if !errors.Is(err, util.ErrInvalidTopic) {
		t.Fatalf("expected ErrInvalidTopic, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("no generation call may be attempted for an invalid topic")
	}
}

func TestGenerateRoadmapGenerationFailure(t *testing.T) {
	transport := &llm.GenerationError{Err: errors.New("deadline exceeded")}
	mock := llm.NewMockGenerator(llm.MockResponse{Err: transport})
	svc := NewRoadmapService(mock, nil, 0)

	_, err := svc.Generate(context.Background(), "Go Programming", "2 weeks", "Beginner")
	var genErr *llm.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}
