package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hotpaste/go-md2office"
)

// pasteService is the interface run depends on, satisfied by
// md2office.Service and by fakes in tests.
type pasteService interface {
	Paste(ctx context.Context, input md2office.Input) (*md2office.Result, error)
}

// serviceFactory builds the paste service from resolved configuration.
// Injectable so tests can run the CLI without pandoc or file output.
type serviceFactory func(cfg *Config, fl *cliFlags) pasteService

// newService is the production factory.
func newService(cfg *Config, fl *cliFlags) pasteService {
	opts := []md2office.Option{
		md2office.WithPandocPath(cfg.PandocPath),
		md2office.WithOutputDir(cfg.SaveDir),
		md2office.WithKeepFiles(cfg.KeepFile),
	}
	if cfg.ReferenceDocx != "" {
		opts = append(opts, md2office.WithReferenceDoc(cfg.ReferenceDocx))
	}
	if fl.timeout > 0 {
		opts = append(opts, md2office.WithTimeout(fl.timeout))
	}
	return md2office.New(opts...)
}

// run is the testable CLI entry point. It reads Markdown from the
// positional file argument or stdin, resolves config and flags, and pastes
// through the service.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, factory serviceFactory) int {
	fl, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if fl.version {
		fmt.Fprintf(stdout, "md2office %s\n", Version)
		return exitOK
	}

	cfg, err := resolveConfig(fl)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	markdown, err := readMarkdown(positional, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	svc := factory(cfg, fl)

	input := md2office.Input{
		Markdown:   markdown,
		Target:     md2office.Target(firstNonEmpty(fl.target, cfg.InsertTarget)),
		OutputPath: fl.out,
		PlainText:  fl.plain || !cfg.ExcelKeepFormat,
	}

	result, err := svc.Paste(context.Background(), input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	if !fl.quiet {
		printResult(stdout, result)
	}
	return exitOK
}

// resolveConfig loads the config file (explicit flag or standard locations)
// and applies flag overrides on top.
func resolveConfig(fl *cliFlags) (*Config, error) {
	var cfg *Config
	var err error
	if fl.config != "" {
		cfg, err = LoadConfig(fl.config)
	} else {
		cfg, err = LoadConfigOrDefault()
	}
	if err != nil {
		return nil, err
	}

	if fl.pandocPath != "" {
		cfg.PandocPath = fl.pandocPath
	}
	if fl.referenceDoc != "" {
		cfg.ReferenceDocx = fl.referenceDoc
	}
	if fl.saveDir != "" {
		cfg.SaveDir = os.ExpandEnv(fl.saveDir)
	}
	if fl.keepFile {
		cfg.KeepFile = true
	}
	return cfg, nil
}

// readMarkdown reads the payload from the first positional argument, or
// stdin when no file is named (hotkey front ends pipe the clipboard in).
func readMarkdown(positional []string, stdin io.Reader) (string, error) {
	if len(positional) > 0 {
		content, err := os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(content), nil
}

// printResult reports what the paste produced.
func printResult(w io.Writer, result *md2office.Result) {
	switch result.Kind {
	case md2office.KindRendered:
		fmt.Fprintf(w, "Inserted %d table rows\n", result.Rows)
	case md2office.KindWorkbook:
		fmt.Fprintf(w, "Created %s (%d rows)\n", result.OutputPath, result.Rows)
	default:
		fmt.Fprintf(w, "Created %s\n", result.OutputPath)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
