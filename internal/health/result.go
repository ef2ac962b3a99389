// Package health defines the shared vocabulary of the health checks:
// severities, results, the worst-of merge, ignore rules and the Check
// contract, plus the Runner that aggregates checks into a waybar payload.
package health

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity indicates how bad a check result is.
// The zero value is SeverityOK.
type Severity int

const (
	// SeverityOK indicates the check found nothing wrong.
	SeverityOK Severity = iota

	// SeverityWarn indicates a degraded or undeterminable state.
	SeverityWarn

	// SeverityCritical indicates a failure that needs attention.
	SeverityCritical
)

// String returns the lowercase name used for the payload class.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityWarn:
		return "warn"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	v, ok := ParseSeverity(string(text))
	if !ok {
		return errors.Newf("unknown severity %q", text)
	}
	*s = v
	return nil
}

// ParseSeverity is the inverse of Severity.String.
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToLower(name) {
	case "ok":
		return SeverityOK, true
	case "warn":
		return SeverityWarn, true
	case "critical":
		return SeverityCritical, true
	}
	return SeverityOK, false
}

// rank is the explicit total order OK < WARN < CRITICAL.
var rank = map[Severity]int{
	SeverityOK:       0,
	SeverityWarn:     1,
	SeverityCritical: 2,
}

// Worst returns the most severe of the given severities.
//
// Every aggregation point supplies at least one severity; calling Worst
// without arguments is a programming error and panics.
func Worst(severities ...Severity) Severity {
	if len(severities) == 0 {
		panic("health: Worst called without severities")
	}
	worst := severities[0]
	for _, s := range severities[1:] {
		if rank[s] > rank[worst] {
			worst = s
		}
	}
	return worst
}

// Marker returns the status glyph used at the start of per-item detail lines.
func Marker(s Severity) string {
	switch s {
	case SeverityCritical:
		return "✗"
	case SeverityWarn:
		return "!"
	default:
		return "✓"
	}
}

// Result is the outcome of a check: a severity plus the tooltip lines
// explaining it. Treat it as immutable once returned.
type Result struct {
	Severity Severity `json:"severity"`
	Lines    []string `json:"lines"`
}

// NewResult builds a Result, copying lines.
func NewResult(severity Severity, lines ...string) Result {
	return Result{
		Severity: severity,
		Lines:    append([]string(nil), lines...),
	}
}

// NamedResult labels a Result for merging.
type NamedResult struct {
	Name   string `json:"name"`
	Result Result `json:"result"`
}

// Merge combines results into one. The severity is the worst of all inputs.
// For each entry in order the lines are a blank separator (except before the
// first entry), a "<name>:" header, then the entry's own lines verbatim.
// Merge panics when called without entries, like Worst.
func Merge(entries ...NamedResult) Result {
	severities := make([]Severity, 0, len(entries))
	var lines []string
	for i, e := range entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, e.Name+":")
		lines = append(lines, e.Result.Lines...)
		severities = append(severities, e.Result.Severity)
	}

	return Result{
		Severity: Worst(severities...),
		Lines:    lines,
	}
}
