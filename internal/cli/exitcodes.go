package cli

import "errors"

// Exit codes for readmecheck.
const (
	// ExitSuccess indicates successful execution above any score threshold.
	ExitSuccess = 0

	// ExitBelowThreshold indicates a score under the configured minimum.
	ExitBelowThreshold = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates the document could not be read.
	ExitIOError = 74
)

// Sentinel errors mapped to exit codes.
var (
	// ErrBelowThreshold is returned when a README scores below min_score.
	ErrBelowThreshold = errors.New("score below threshold")

	// ErrInputUnavailable is returned when a README cannot be read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrConfig is returned when configuration cannot be loaded.
	ErrConfig = errors.New("configuration error")
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrBelowThreshold):
		return ExitBelowThreshold
	case errors.Is(err, ErrInputUnavailable):
		return ExitIOError
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
