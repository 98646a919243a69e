package md2office

import (
	"testing"
	"time"
)

func TestTargetValid(t *testing.T) {
	tests := []struct {
		target Target
		want   bool
	}{
		{"", true},
		{TargetAuto, true},
		{TargetSheet, true},
		{TargetDocument, true},
		{"slides", false},
		{"AUTO", false},
	}

	for _, tt := range tests {
		if got := tt.target.valid(); got != tt.want {
			t.Errorf("Target(%q).valid() = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestServiceOptions(t *testing.T) {
	s := New(
		WithTimeout(5*time.Second),
		WithPandocPath("/opt/pandoc"),
		WithReferenceDoc("ref.docx"),
		WithOutputDir("/tmp/out"),
		WithKeepFiles(true),
	)

	if s.cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", s.cfg.timeout)
	}
	if s.cfg.pandocPath != "/opt/pandoc" {
		t.Errorf("pandocPath = %q", s.cfg.pandocPath)
	}
	if s.cfg.referenceDoc != "ref.docx" {
		t.Errorf("referenceDoc = %q", s.cfg.referenceDoc)
	}
	if s.cfg.outputDir != "/tmp/out" {
		t.Errorf("outputDir = %q", s.cfg.outputDir)
	}
	if !s.cfg.keepFiles {
		t.Error("keepFiles not set")
	}

	conv, ok := s.docxConverter.(*PandocConverter)
	if !ok {
		t.Fatalf("docxConverter is %T, want *PandocConverter", s.docxConverter)
	}
	if conv.Path != "/opt/pandoc" || conv.ReferenceDoc != "ref.docx" {
		t.Errorf("converter = %q/%q, want configured values", conv.Path, conv.ReferenceDoc)
	}
}

func TestServiceDefaults(t *testing.T) {
	s := New()
	if s.cfg.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", s.cfg.timeout, defaultTimeout)
	}
	if s.cfg.pandocPath != "pandoc" {
		t.Errorf("pandocPath = %q, want %q", s.cfg.pandocPath, "pandoc")
	}
	if s.preprocessor == nil || s.sheetWriter == nil || s.docxConverter == nil {
		t.Error("default collaborators not wired")
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) should panic")
		}
	}()
	WithTimeout(0)
}
