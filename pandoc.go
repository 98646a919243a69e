package md2office

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DocxConverter abstracts Markdown to DOCX conversion to allow different
// backends (and fakes in tests).
type DocxConverter interface {
	// ConvertFile writes the converted document to outputPath.
	ConvertFile(ctx context.Context, markdown, outputPath string) error

	// Convert returns the converted document as bytes without touching
	// the filesystem.
	Convert(ctx context.Context, markdown string) ([]byte, error)
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses. The stdin string is fed to the process.
type CommandRunner interface {
	Run(ctx context.Context, stdin string, name string, args ...string) (stdout []byte, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, stdin string, name string, args ...string) ([]byte, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.String(), err
}

// PandocConverter converts Markdown to DOCX by invoking the pandoc CLI.
// Markdown is fed on stdin, so no input file is written to disk.
type PandocConverter struct {
	Path         string // pandoc executable (default "pandoc")
	ReferenceDoc string // optional --reference-doc template
	Runner       CommandRunner
}

// NewPandocConverter creates a PandocConverter with a real command runner.
// An empty path means pandoc is resolved from PATH.
func NewPandocConverter(path string) *PandocConverter {
	if path == "" {
		path = "pandoc"
	}
	return &PandocConverter{Path: path, Runner: &ExecRunner{}}
}

// ConvertFile converts Markdown content to a DOCX file at outputPath.
// Uses tex_math_dollars and raw_tex so preprocessed formulas survive, and
// tango highlighting for fenced code blocks.
func (c *PandocConverter) ConvertFile(ctx context.Context, markdown, outputPath string) error {
	if markdown == "" {
		return ErrEmptyMarkdown
	}
	_, stderr, err := c.Runner.Run(ctx, markdown, c.Path, c.args(outputPath)...)
	if err != nil {
		return c.wrapError(stderr, err)
	}
	return nil
}

// Convert converts Markdown content to DOCX bytes via pandoc's stdout.
func (c *PandocConverter) Convert(ctx context.Context, markdown string) ([]byte, error) {
	if markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	stdout, stderr, err := c.Runner.Run(ctx, markdown, c.Path, c.args("-")...)
	if err != nil {
		return nil, c.wrapError(stderr, err)
	}
	return stdout, nil
}

// args builds the pandoc argument list for the given output target
// (a file path or "-" for stdout).
func (c *PandocConverter) args(output string) []string {
	args := []string{
		"-f", "markdown+tex_math_dollars+raw_tex",
		"-t", "docx",
		"-o", output,
		"--highlight-style", "tango",
	}
	if c.ReferenceDoc != "" {
		args = append(args, "--reference-doc", c.ReferenceDoc)
	}
	return args
}

// wrapError maps a failed pandoc invocation to a sentinel error carrying
// pandoc's stderr.
func (c *PandocConverter) wrapError(stderr string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrPandocNotFound, c.Path)
	}
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("%w: %s", ErrPandocFailed, stderr)
	}
	return fmt.Errorf("%w: %v", ErrPandocFailed, err)
}
