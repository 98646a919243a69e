package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	// common
	config  string
	quiet   bool
	verbose bool
	version bool

	// routing
	target string
	out    string

	// conversion
	pandocPath   string
	referenceDoc string
	saveDir      string
	keepFile     bool
	plain        bool
	timeout      time.Duration
}

// parseFlags parses command-line arguments and returns the flags plus the
// remaining positional arguments (the optional input file).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fl := &cliFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	fs.StringVarP(&fl.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&fl.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&fl.version, "version", false, "print version and exit")

	fs.StringVarP(&fl.target, "target", "t", "", "paste target: auto, sheet, or document")
	fs.StringVarP(&fl.out, "out", "o", "", "output file path (default: generated name)")

	fs.StringVar(&fl.pandocPath, "pandoc", "", "pandoc executable path")
	fs.StringVar(&fl.referenceDoc, "reference-doc", "", "pandoc reference document for DOCX styling")
	fs.StringVar(&fl.saveDir, "save-dir", "", "directory for kept output files")
	fs.BoolVar(&fl.keepFile, "keep-file", false, "keep generated files in the save directory")
	fs.BoolVar(&fl.plain, "plain", false, "strip Markdown styling instead of reproducing it")
	fs.DurationVar(&fl.timeout, "timeout", 0, "conversion timeout (default 30s)")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return fl, fs.Args(), nil
}
