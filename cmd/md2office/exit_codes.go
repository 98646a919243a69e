package main

import (
	"errors"

	"github.com/hotpaste/go-md2office"
)

// Exit codes. Scripted callers can distinguish "clipboard was not a table"
// and "pandoc missing" from generic failures.
const (
	exitOK            = 0
	exitError         = 1
	exitUsage         = 2
	exitNotATable     = 3
	exitPandocMissing = 4
)

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, md2office.ErrNotATable):
		return exitNotATable
	case errors.Is(err, md2office.ErrPandocNotFound):
		return exitPandocMissing
	case errors.Is(err, md2office.ErrEmptyMarkdown), errors.Is(err, md2office.ErrInvalidTarget):
		return exitUsage
	default:
		return exitError
	}
}
