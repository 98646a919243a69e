// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrSaveDirEmpty           = errors.New("save directory cannot be empty when keeping files")
)

// outputTimestamp is the layout for generated file names.
const outputTimestamp = "20060102_150405"

// Now is the clock used for output file names; replaceable in tests.
var Now = time.Now

// OutputPath generates a timestamped path for a converted file, e.g.
// md_paste_20240131_143005.docx. When keepFile is set the file goes under
// saveDir (created if missing); otherwise it goes to the system temp
// directory so callers can discard it after insertion.
func OutputPath(keepFile bool, saveDir, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}

	name := "md_paste_" + Now().Format(outputTimestamp) + "." + extension

	if !keepFile {
		return filepath.Join(os.TempDir(), name), nil
	}
	if saveDir == "" {
		return "", ErrSaveDirEmpty
	}
	if err := EnsureDir(saveDir); err != nil {
		return "", err
	}
	return filepath.Join(saveDir, name), nil
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// WriteTempFile creates a temporary file with the given content and
// extension. Returns the file path and a cleanup function to remove it.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "md2office-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsFilePath returns true if the string looks like a file path rather than
// a bare name.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
