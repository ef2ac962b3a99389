package modules

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// DefaultRootFSType is the filesystem the btrfs check expects on /.
const DefaultRootFSType = "btrfs"

// maxDeviceStatLines bounds the interesting device stat lines shown.
const maxDeviceStatLines = 12

var (
	// [/dev/nvme0n1p2].write_io_errs    0
	deviceStatRe = regexp.MustCompile(`^\[.+\]\.(\S+)\s+(\d+)$`)

	// csum_errors: 0
	scrubErrorRe = regexp.MustCompile(`(\w+_errors?):\s*(\d+)`)
)

// BtrfsCheck inspects btrfs device error counters and the last scrub.
// It only runs when the root filesystem is of the expected type.
type BtrfsCheck struct {
	runner sysexec.Runner
	ignore health.IgnoreRules
	fstype string
}

var _ health.Check = (*BtrfsCheck)(nil)

// NewBtrfsCheck creates the btrfs check. An empty fstype means DefaultRootFSType.
// Ignore rules apply to device stats and scrub output lines.
func NewBtrfsCheck(runner sysexec.Runner, ignore health.IgnoreRules, fstype string) *BtrfsCheck {
	if fstype == "" {
		fstype = DefaultRootFSType
	}
	return &BtrfsCheck{runner: runner, ignore: ignore, fstype: fstype}
}

// Name returns the display name.
func (c *BtrfsCheck) Name() string { return "Btrfs" }

// IgnoreRules returns the output line rules.
func (c *BtrfsCheck) IgnoreRules() health.IgnoreRules { return c.ignore }

// Check verifies the root filesystem type, then merges device stats and scrub status.
func (c *BtrfsCheck) Check(ctx context.Context) health.Result {
	fstype := c.detectRootFSType(ctx)
	if fstype != c.fstype {
		return health.NewResult(health.SeverityWarn,
			fmt.Sprintf("(root is '%s', not %s. check your config)", fstype, c.fstype))
	}

	return health.Merge(
		health.NamedResult{Name: "## Device stats", Result: c.deviceStats(ctx)},
		health.NamedResult{Name: "## Scrub", Result: c.scrubStatus(ctx)},
	)
}

// detectRootFSType asks findmnt, then stat, and falls back to "unknown".
func (c *BtrfsCheck) detectRootFSType(ctx context.Context) string {
	for _, argv := range [][]string{
		{"findmnt", "-n", "-o", "FSTYPE", "/"},
		{"stat", "-f", "-c", "%T", "/"},
	} {
		out := c.runner.Run(ctx, argv)
		if s := strings.TrimSpace(out.Stdout); out.Code == 0 && s != "" {
			return s
		}
	}
	return "unknown"
}

// deviceStats counts non-zero per-device error counters.
func (c *BtrfsCheck) deviceStats(ctx context.Context) health.Result {
	out := c.runner.Run(ctx, []string{"btrfs", "device", "stats", "/"})
	if out.NotFound() {
		return health.NewResult(health.SeverityWarn, "btrfs-progs missing")
	}
	if out.Code != 0 {
		return health.NewResult(health.SeverityWarn, formatCommandError("btrfs device stats", out)...)
	}

	nonzero := 0
	parseErr := false
	var interesting []string
	for _, raw := range splitLines(out.Stdout) {
		ln := strings.TrimSpace(raw)
		if ln == "" || c.ignore.Match(ln) {
			continue
		}

		m := deviceStatRe.FindStringSubmatch(ln)
		if m == nil {
			parseErr = true
			interesting = append(interesting, "couldn't parse this line: "+ln)
			continue
		}
		val, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			parseErr = true
			interesting = append(interesting, "couldn't parse this line: "+ln)
			continue
		}
		if val != 0 {
			nonzero++
			interesting = append(interesting, ln)
		}
	}

	sev := health.SeverityOK
	switch {
	case nonzero > 0:
		sev = health.SeverityCritical
	case parseErr:
		sev = health.SeverityWarn
	}

	lines := []string{"non-zero counters: " + strconv.Itoa(nonzero)}
	for _, ln := range interesting[:min(len(interesting), maxDeviceStatLines)] {
		lines = append(lines, "  "+ln)
	}
	if nonzero == 0 {
		lines = append(lines, "  (none)")
	}
	return health.NewResult(sev, lines...)
}

// scrubStatus sums the error counters of the last scrub.
func (c *BtrfsCheck) scrubStatus(ctx context.Context) health.Result {
	out := c.runner.Run(ctx, []string{"btrfs", "scrub", "status", "-R", "/"})
	if out.NotFound() {
		return health.NewResult(health.SeverityWarn, "btrfs-progs missing")
	}
	if out.Code != 0 {
		return health.NewResult(health.SeverityWarn, formatCommandError("btrfs scrub status", out)...)
	}

	counts := make(map[string]uint64)
	for _, raw := range splitLines(out.Stdout) {
		ln := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(ln) == "" || c.ignore.Match(ln) {
			continue
		}
		m := scrubErrorRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		n, err := strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			continue
		}
		// last occurrence wins
		counts[m[1]] = n
	}

	if len(counts) == 0 {
		return health.NewResult(health.SeverityWarn, "unable to parse scrub output")
	}

	var total uint64
	names := make([]string, 0, len(counts))
	for name, n := range counts {
		total += n
		names = append(names, name)
	}
	sort.Strings(names)

	lines := []string{"scrub errors: " + strconv.FormatUint(total, 10)}
	for _, name := range names {
		if counts[name] > 0 {
			lines = append(lines, fmt.Sprintf(" - %s: %d", name, counts[name]))
		}
	}

	sev := health.SeverityOK
	if total > 0 {
		sev = health.SeverityCritical
	}
	return health.NewResult(sev, lines...)
}
