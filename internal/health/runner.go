package health

import (
	"context"
	"time"

	"github.com/Dieterbe/waybar-system-health/internal/logging"
)

// Runner executes health checks one after another and aggregates their results.
type Runner struct {
	checks []Check
}

// NewRunner creates a new runner without checks.
func NewRunner() *Runner {
	return &Runner{
		checks: make([]Check, 0),
	}
}

// AddCheck registers a check. Checks run in registration order.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Len returns the number of registered checks.
func (r *Runner) Len() int {
	return len(r.checks)
}

// Run executes all registered checks sequentially and returns a report.
// With no registered checks the report has no merged result; callers are
// expected to register at least one check.
func (r *Runner) Run(ctx context.Context) *Report {
	logger := logging.FromContext(ctx)

	report := &Report{
		Timestamp: time.Now().UTC(),
		Checks:    make([]CheckReport, 0, len(r.checks)),
	}

	named := make([]NamedResult, 0, len(r.checks))
	for _, check := range r.checks {
		start := time.Now()
		result := check.Check(ctx)
		elapsed := time.Since(start)

		logger.Info("check finished",
			"module", check.Name(),
			"severity", result.Severity.String(),
			"duration", elapsed.Round(time.Millisecond))

		report.Checks = append(report.Checks, CheckReport{
			Name:     check.Name(),
			Result:   result,
			Duration: elapsed,
		})
		named = append(named, NamedResult{Name: "# " + check.Name(), Result: result})

		switch result.Severity {
		case SeverityOK:
			report.Summary.OK++
		case SeverityWarn:
			report.Summary.Warn++
		case SeverityCritical:
			report.Summary.Critical++
		}
	}

	if len(named) > 0 {
		report.Merged = Merge(named...)
	}

	return report
}

// CheckReport is the outcome of one check within a run.
type CheckReport struct {
	Name     string        `json:"name"`
	Result   Result        `json:"result"`
	Duration time.Duration `json:"duration_ns"`
}

// Report aggregates all check results with timing and summary.
type Report struct {
	// Timestamp is when the run started.
	Timestamp time.Time `json:"timestamp"`

	// Checks contains the outcome of each check in run order.
	Checks []CheckReport `json:"checks"`

	// Merged combines every check result under a "# <name>" header.
	Merged Result `json:"merged"`

	// Summary contains counts by severity.
	Summary Summary `json:"summary"`
}

// Summary counts check results by severity.
type Summary struct {
	OK       int `json:"ok"`
	Warn     int `json:"warn"`
	Critical int `json:"critical"`
}

// Severity returns the overall severity of the run.
func (r *Report) Severity() Severity {
	return r.Merged.Severity
}
