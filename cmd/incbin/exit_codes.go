package main

import (
	"errors"
	"os"

	"github.com/maja42/incbin"
	"github.com/maja42/incbin/internal/config"
)

// Exit codes for the incbin CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Output generated (or nothing to do)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Output not writable
)

// ErrUsage wraps command line parsing errors.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, incbin.ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, incbin.ErrNoOutput) ||
		errors.Is(err, incbin.ErrNoAssets) ||
		errors.Is(err, incbin.ErrInvalidGuard) ||
		errors.Is(err, incbin.ErrSymbolCollision) ||
		errors.Is(err, incbin.ErrUnrecognizedOutput) {
		return ExitUsage
	}

	return ExitGeneral
}
