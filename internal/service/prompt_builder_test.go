package service

import (
	"strings"
	"testing"
)

func TestRoadmapPromptContract(t *testing.T) {
	var b PromptBuilder
	req := b.Roadmap("Rust", "6 weeks", "Intermediate")

	if !req.JSONOutput {
		t.Error("roadmap requests must declare the JSON output contract")
	}
	if !strings.Contains(req.System, `"week 1"`) {
		t.Error("system instruction should carry the worked example")
	}
	if !strings.Contains(req.System, "lowercase") {
		t.Error("system instruction should demand lower-case keys")
	}
	for _, want := range []string{"Rust", "6 weeks", "Intermediate", "16 hours every week"} {
		if !strings.Contains(req.Prompt, want) {
			t.Errorf("prompt missing %q: %s", want, req.Prompt)
		}
	}
}

func TestQuizAndResourcePromptsAreFreeText(t *testing.T) {
	var b PromptBuilder

	quiz := b.Quiz("Python", "Basics", "Loops", "for and while loops")
	if quiz.JSONOutput {
		t.Error("quiz output contract is free text")
	}
	if quiz.System == "" {
		t.Error("quiz should set the tutor persona")
	}

	res := b.Resource("Python", "Beginner", "learn decorators", "2 hours")
	if res.JSONOutput {
		t.Error("resource output contract is free text")
	}
	for _, want := range []string{"Python", "Beginner", "learn decorators", "2 hours"} {
		if !strings.Contains(res.Prompt, want) {
			t.Errorf("resource prompt missing %q", want)
		}
	}
}

func TestStructuredResourcePromptSections(t *testing.T) {
	var b PromptBuilder
	req := b.StructuredResource("Go", "Beginner", "learn goroutines", "2 hours")

	sections := []string{
		"# Introduction to [Topic]",
		"# Core Concepts and Theory",
		"# Practical Applications and Examples",
		"# Advanced Concepts (if time allows)",
		"# Summary and Next Steps",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(req.Prompt, section)
		if idx < 0 {
			t.Fatalf("structured prompt missing section %q", section)
		}
		if idx < last {
			t.Fatalf("section %q out of order", section)
		}
		last = idx
	}

	if !strings.Contains(req.Prompt, "approximately 120 minutes") {
		t.Errorf("expected 2 hours normalized to 120 minutes, prompt: %s", req.Prompt)
	}
}

func TestNormalizeDurationMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"2 hours", 120},
		{"1.5 hours", 90},
		{"45 min", 45},
		{"30 minutes", 30},
		{"90", 30},        // no unit token
		{"soon", 30},      // unparseable
		{"", 30},          // absent
		{"0.5 hour", 30},
	}

	for _, tt := range tests {
		if got := normalizeDurationMinutes(tt.duration); got != tt.want {
			t.Errorf("normalizeDurationMinutes(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}

func TestTranslatePromptJoinsSegments(t *testing.T) {
	var b PromptBuilder
	req := b.Translate([]string{"hello", "world"}, "fr")

	if !strings.Contains(req.Prompt, "hello"+TranslateSeparator+"world") {
		t.Errorf("segments not joined by separator: %s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "fr") {
		t.Error("target language missing from prompt")
	}

	single := b.TranslateSingle("hello", "fr")
	if single.Prompt != "translate to fr: hello" {
		t.Errorf("unexpected single-segment prompt: %q", single.Prompt)
	}
	if strings.Contains(single.Prompt, TranslateSeparator) {
		t.Error("per-segment fallback must not carry the separator")
	}
}
