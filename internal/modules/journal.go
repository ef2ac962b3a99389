package modules

import (
	"context"
	"strconv"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// maxJournalLines bounds the recent entries shown in the tooltip.
const maxJournalLines = 15

var journalArgv = []string{"journalctl", "-b", "-p", "err..emerg", "--no-pager", "-o", "short-iso"}

// JournalCheck counts journal entries of priority err or worse since boot.
type JournalCheck struct {
	runner sysexec.Runner
	ignore health.IgnoreRules
}

var _ health.Check = (*JournalCheck)(nil)

// NewJournalCheck creates the journal check. Ignore rules apply to whole log lines.
func NewJournalCheck(runner sysexec.Runner, ignore health.IgnoreRules) *JournalCheck {
	return &JournalCheck{runner: runner, ignore: ignore}
}

// Name returns the display name.
func (c *JournalCheck) Name() string { return "Journal" }

// IgnoreRules returns the log line rules.
func (c *JournalCheck) IgnoreRules() health.IgnoreRules { return c.ignore }

// Check reads the journal and reports surviving error lines.
func (c *JournalCheck) Check(ctx context.Context) health.Result {
	out := c.runner.Run(ctx, journalArgv)
	if out.NotFound() {
		return health.NewResult(health.SeverityWarn, "journalctl missing")
	}
	if out.Code != 0 && strings.TrimSpace(out.Stdout) == "" {
		// Only the first stderr line is kept.
		note := firstLine(out.Stderr)
		if note == "" {
			note = "cannot read journal"
		}
		return health.NewResult(health.SeverityWarn,
			"Journal errors (err..emerg): (not readable)",
			"  "+note,
			"",
			"Tip: add user to systemd-journal group, then re-login.",
		)
	}

	var kept []string
	for _, ln := range splitLines(out.Stdout) {
		if strings.TrimSpace(ln) == "" || c.ignore.Match(ln) {
			continue
		}
		kept = append(kept, ln)
	}

	count := len(kept)
	if count == 0 {
		return health.NewResult(health.SeverityOK, "No errors found in journal")
	}

	recent := kept[max(0, count-maxJournalLines):]
	lines := []string{
		"Journal errors (err..emerg): " + strconv.Itoa(count),
		"",
		"Most recent:",
	}
	for _, ln := range recent {
		lines = append(lines, "  "+ln)
	}
	if count > len(recent) {
		lines = append(lines, moreLine("  ", count-len(recent)))
	}
	return health.NewResult(health.SeverityCritical, lines...)
}
