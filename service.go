package md2office

import (
	"context"
	"fmt"

	"github.com/hotpaste/go-md2office/internal/fileutil"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ MarkdownPreprocessor = (*ClipboardPreprocessor)(nil)
	_ DocxConverter        = (*PandocConverter)(nil)
	_ CommandRunner        = (*ExecRunner)(nil)
	_ SpreadsheetWriter    = (*WorkbookWriter)(nil)
)

// Service orchestrates the clipboard-to-document pipeline: table detection,
// inline parsing, and routing to the spreadsheet or document flow.
// Create with New(), then call Paste() per clipboard payload. The Service
// holds no per-call state; concurrent Paste calls are safe as long as the
// injected collaborators are.
type Service struct {
	cfg           serviceConfig
	preprocessor  MarkdownPreprocessor
	docxConverter DocxConverter
	sheetWriter   SpreadsheetWriter
	renderer      TableRenderer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithPandocPath, WithRenderer).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:          serviceConfig{timeout: defaultTimeout, pandocPath: "pandoc"},
		preprocessor: &ClipboardPreprocessor{},
		sheetWriter:  &WorkbookWriter{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the pandoc converter if not injected (e.g., by tests)
	if s.docxConverter == nil {
		conv := NewPandocConverter(s.cfg.pandocPath)
		conv.ReferenceDoc = s.cfg.referenceDoc
		s.docxConverter = conv
	}

	return s
}

// Paste runs the pipeline for one clipboard payload and reports what was
// produced. The context bounds the external conversion step; parsing itself
// is pure and completes in input-proportional time.
func (s *Service) Paste(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	target := input.Target
	if target == "" {
		target = TargetAuto
	}

	switch target {
	case TargetSheet:
		table, ok := ParseTable(input.Markdown)
		if !ok {
			return nil, ErrNotATable
		}
		return s.pasteTable(ctx, table, input)

	case TargetDocument:
		return s.pasteDocument(ctx, input)

	default: // TargetAuto
		if table, ok := ParseTable(input.Markdown); ok {
			return s.pasteTable(ctx, table, input)
		}
		return s.pasteDocument(ctx, input)
	}
}

// pasteTable handles the sheet flow: live rendering when a renderer is
// configured, workbook generation otherwise.
func (s *Service) pasteTable(ctx context.Context, table Table, input Input) (*Result, error) {
	if s.renderer != nil {
		opts := RenderOptions{KeepFormat: !input.PlainText}
		if err := s.renderer.RenderTable(ctx, table, opts); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
		return &Result{Kind: KindRendered, Rows: len(table)}, nil
	}

	path, err := s.outputPath(input, "xlsx")
	if err != nil {
		return nil, err
	}

	opts := WorkbookOptions{KeepFormat: !input.PlainText}
	if err := s.sheetWriter.WriteTable(table, path, opts); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return &Result{Kind: KindWorkbook, Rows: len(table), OutputPath: path}, nil
}

// pasteDocument handles the document flow: preprocess then convert to DOCX.
func (s *Service) pasteDocument(ctx context.Context, input Input) (*Result, error) {
	markdown := s.preprocessor.PreprocessMarkdown(input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	path, err := s.outputPath(input, "docx")
	if err != nil {
		return nil, err
	}

	if err := s.docxConverter.ConvertFile(ctx, markdown, path); err != nil {
		return nil, fmt.Errorf("converting to docx: %w", err)
	}
	return &Result{Kind: KindDocument, OutputPath: path}, nil
}

// outputPath resolves where a generated file goes: the input's explicit
// path wins, otherwise a timestamped name under the configured directory
// (or the temp directory when files are not kept).
func (s *Service) outputPath(input Input, extension string) (string, error) {
	if input.OutputPath != "" {
		return input.OutputPath, nil
	}
	if s.cfg.keepFiles && s.cfg.outputDir == "" {
		return "", ErrNoOutputDir
	}
	path, err := fileutil.OutputPath(s.cfg.keepFiles, s.cfg.outputDir, extension)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}
	return path, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if !input.Target.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, input.Target)
	}
	return nil
}
