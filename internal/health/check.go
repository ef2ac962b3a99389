package health

import "context"

// Check is the interface every diagnostic module implements.
type Check interface {
	// Name returns the display name used in tooltips and the short text.
	Name() string

	// Check inspects live system state and returns a verdict.
	// Ordinary failures (missing tool, command failure, unparseable output)
	// are reported as WARN or CRITICAL results, never as errors.
	Check(ctx context.Context) Result

	// IgnoreRules returns the rules bound to this check at construction.
	IgnoreRules() IgnoreRules
}
