package md2office

import "time"

// Target selects which paste flow handles the clipboard payload.
type Target string

// Paste targets.
const (
	// TargetAuto routes tables to the sheet flow and everything else to
	// the document flow.
	TargetAuto Target = "auto"

	// TargetSheet requires a Markdown table and renders or writes it.
	TargetSheet Target = "sheet"

	// TargetDocument converts the whole payload to DOCX.
	TargetDocument Target = "document"
)

// valid reports whether t is a known target. The empty target is accepted
// and means TargetAuto.
func (t Target) valid() bool {
	switch t {
	case "", TargetAuto, TargetSheet, TargetDocument:
		return true
	}
	return false
}

// Input contains one paste invocation's parameters.
type Input struct {
	Markdown string // clipboard payload (required)
	Target   Target // flow selection (empty = auto)

	// OutputPath overrides the generated output file location. Ignored by
	// the sheet flow when a live renderer is configured.
	OutputPath string

	// PlainText strips Markdown styling instead of reproducing it in the
	// spreadsheet output.
	PlainText bool
}

// ResultKind identifies what a paste produced.
type ResultKind string

// Result kinds.
const (
	KindRendered ResultKind = "rendered" // table written into a live session
	KindWorkbook ResultKind = "workbook" // standalone XLSX file
	KindDocument ResultKind = "document" // standalone DOCX file
)

// Result reports the outcome of a successful paste.
type Result struct {
	Kind       ResultKind
	Rows       int    // table rows handled (zero for the document flow)
	OutputPath string // file produced (empty for live rendering)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout      time.Duration
	pandocPath   string
	referenceDoc string
	outputDir    string
	keepFiles    bool
}

// defaultTimeout bounds the external pandoc call when no timeout is
// specified. Parsing itself is pure and needs no deadline.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2office: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithPandocPath sets the pandoc executable used by the document flow.
// Defaults to "pandoc" on PATH.
func WithPandocPath(path string) Option {
	return func(s *Service) {
		s.cfg.pandocPath = path
	}
}

// WithReferenceDoc sets an optional pandoc reference document whose styles
// are applied to generated DOCX files.
func WithReferenceDoc(path string) Option {
	return func(s *Service) {
		s.cfg.referenceDoc = path
	}
}

// WithOutputDir sets the directory for generated files when the input does
// not name an output path.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		s.cfg.outputDir = dir
	}
}

// WithKeepFiles keeps generated files in the output directory instead of
// the system temp directory.
func WithKeepFiles(keep bool) Option {
	return func(s *Service) {
		s.cfg.keepFiles = keep
	}
}

// WithRenderer installs a live-session table renderer. When set, the sheet
// flow writes through it instead of generating a workbook file.
func WithRenderer(r TableRenderer) Option {
	return func(s *Service) {
		s.renderer = r
	}
}
