package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"

	"github.com/Dieterbe/waybar-system-health/internal/health"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes health reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the health report to the output.
func (r *Reporter) Report(report *health.Report) error {
	if report == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(report)
	default:
		return r.reportText(report)
	}
}

func (r *Reporter) reportJSON(report *health.Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(report), "encoding JSON report")
}

func (r *Reporter) reportText(report *health.Report) error {
	for i, c := range report.Checks {
		if i > 0 {
			fmt.Fprintln(r.out)
		}

		paint := severityColor(c.Result.Severity)
		fmt.Fprintf(r.out, "%s %s %s\n",
			paint.Sprint(health.Marker(c.Result.Severity)),
			color.New(color.Bold).Sprint(c.Name),
			color.New(color.FgHiBlack).Sprintf("(%s)", c.Duration.Round(time.Millisecond)),
		)
		for _, ln := range c.Result.Lines {
			if strings.TrimSpace(ln) == "" {
				fmt.Fprintln(r.out)
				continue
			}
			fmt.Fprintln(r.out, "    "+ln)
		}
	}

	if len(report.Checks) > 0 {
		fmt.Fprintln(r.out)
	}

	summary := []string{
		color.GreenString("%d ok", report.Summary.OK),
	}
	if report.Summary.Warn > 0 {
		summary = append(summary, color.YellowString("%d warn", report.Summary.Warn))
	}
	if report.Summary.Critical > 0 {
		summary = append(summary, color.RedString("%d critical", report.Summary.Critical))
	}
	fmt.Fprintf(r.out, "%s: %s\n",
		severityColor(report.Severity()).Sprint(strings.ToUpper(report.Severity().String())),
		strings.Join(summary, ", "),
	)

	return nil
}

func severityColor(s health.Severity) *color.Color {
	switch s {
	case health.SeverityCritical:
		return color.New(color.FgRed)
	case health.SeverityWarn:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
