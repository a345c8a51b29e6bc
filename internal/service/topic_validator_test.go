package service

import "testing"

func TestIsValidTopic(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  bool
	}{
		{"real topic", "Machine Learning", true},
		{"single word topic", "Golang", true},
		{"topic with punctuation", "C++ basics", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"single character", "a", false},
		{"digits only", "12345", false},
		{"punctuation only", "!!!???", false},
		{"mostly symbols", "a#$%^&*()", false},
		{"repeated letter", "aaaaaa", false},
		{"repeated digit", "111", false},
		{"no vowels long", "xyzqwrst", false},
		{"no vowels short ok", "js", true},
		{"short with vowel", "AI", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTopic(tt.topic); got != tt.want {
				t.Errorf("IsValidTopic(%q) = %v, want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestIsValidTopicTrimsBeforeChecking(t *testing.T) {
	if !IsValidTopic("  Data Science  ") {
		t.Error("expected padded topic to pass")
	}
	if IsValidTopic(" a ") {
		t.Error("expected single letter to fail after trimming")
	}
}
