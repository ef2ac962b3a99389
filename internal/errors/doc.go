// Package errors provides error handling conventions for the
// waybar-system-health CLI.
//
// This package defines sentinel errors for configuration failures,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. Construction and wrapping helpers
// delegate to github.com/cockroachdb/errors so stack traces survive.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, healtherrors.ErrUnknownModule) {
//	    // handle a bad ignore file line
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid flags, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := healtherrors.NewConfigError(healtherrors.ErrInvalidConfig)
//	var exitErr *healtherrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
