package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pathwise_backend/internal/config"
)

func TestExportWritesLocalFile(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}
	svc := NewExportService(provider)

	url, err := svc.Export(context.Background(), "ada@example.com", "Intro to Go!", "# Intro\n\nhello")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/exports/ada@example.com/intro-to-go-") {
		t.Errorf("unexpected url %q", url)
	}
	if !strings.HasSuffix(url, ".md") {
		t.Errorf("url %q should end in .md", url)
	}

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if string(written) != "# Intro\n\nhello" {
		t.Errorf("content round-trip mismatch: %q", written)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Intro to Go!", "intro-to-go"},
		{"  C++ / Rust  ", "c-rust"},
		{"!!!", "resource"},
		{"", "resource"},
		{strings.Repeat("a", 100), strings.Repeat("a", 48)},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
