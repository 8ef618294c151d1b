package main

import (
	"errors"
	"os"

	"github.com/npillmayer/cclip/clipboard"
	"github.com/npillmayer/cclip/config"
	"github.com/npillmayer/cclip/textfile"
)

// Exit codes for the cclip CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Text copied
	ExitGeneral   = 1 // General/unexpected error, e.g. encoding failures
	ExitUsage     = 2 // Invalid flags or config
	ExitIO        = 3 // Input cannot be read
	ExitClipboard = 4 // Clipboard errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Clipboard errors (exit 4)
	if errors.Is(err, clipboard.ErrClipboard) ||
		errors.Is(err, clipboard.ErrNoPayload) {
		return ExitClipboard
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrEmptyInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, textfile.ErrUnknownCodepage) {
		return ExitUsage
	}

	return ExitGeneral
}
