// Package logging provides structured logging for waybar-system-health
// using slog.
//
// Logs always go to stderr (or a log file); stdout is reserved for the
// waybar payload. The package supports a colorized TTY text format and
// JSON, verbosity-derived levels, and helpers for testing.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("check finished", "module", "Units", "severity", "ok")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
