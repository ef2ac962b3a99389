package modules

import (
	"context"
	"fmt"
	"io/fs"
	"math"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/health"
)

const gib = 1024 * 1024 * 1024

// MountThreshold holds the warn and critical used-space percentages for a mountpoint.
type MountThreshold struct {
	Path            string  `json:"path" yaml:"path" toml:"path"`
	WarnPercent     float64 `json:"warn" yaml:"warn" toml:"warn"`
	CriticalPercent float64 `json:"critical" yaml:"critical" toml:"critical"`
}

// NewMountThreshold validates and returns a threshold. Both percentages must
// lie in [0,100] and warn must not exceed critical.
func NewMountThreshold(path string, warn, critical float64) (MountThreshold, error) {
	m := MountThreshold{Path: path, WarnPercent: warn, CriticalPercent: critical}
	if err := m.Validate(); err != nil {
		return MountThreshold{}, err
	}
	return m, nil
}

// Validate checks the threshold invariants.
func (m MountThreshold) Validate() error {
	var err error
	switch {
	case m.Path == "":
		err = errors.New("mountpoint path must be set")
	case !isPercent(m.WarnPercent):
		err = errors.Newf("%s: warn threshold must be between 0 and 100", m.Path)
	case !isPercent(m.CriticalPercent):
		err = errors.Newf("%s: critical threshold must be between 0 and 100", m.Path)
	case m.WarnPercent > m.CriticalPercent:
		err = errors.Newf("%s: warn threshold cannot exceed critical threshold", m.Path)
	default:
		return nil
	}
	return errors.Mark(err, errors.ErrInvalidThreshold)
}

// isPercent reports whether v lies in [0,100]. NaN does not.
func isPercent(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

// Usage is the capacity of a filesystem in bytes.
// Free counts only space available to unprivileged users.
type Usage struct {
	Total uint64
	Free  uint64
}

// UsedPercent returns the share of the filesystem not available, in percent.
func (u Usage) UsedPercent() float64 {
	return float64(u.Total-u.Free) / float64(u.Total) * 100
}

// UsageFunc reports the usage of the filesystem containing path.
type UsageFunc func(path string) (Usage, error)

// DiskCheck compares used space against per-mountpoint thresholds.
type DiskCheck struct {
	mounts    []MountThreshold
	ignore    health.IgnoreRules
	configErr error
	usage     UsageFunc
}

var _ health.Check = (*DiskCheck)(nil)

// NewDiskCheck creates the disk check. A non-nil configErr makes every run
// report the configuration problem instead of measuring anything.
// Ignore rules are matched against mountpoint paths.
func NewDiskCheck(mounts []MountThreshold, ignore health.IgnoreRules, configErr error) *DiskCheck {
	return &DiskCheck{
		mounts:    mounts,
		ignore:    ignore,
		configErr: configErr,
		usage:     diskUsage,
	}
}

// Name returns the display name.
func (c *DiskCheck) Name() string { return "Disk" }

// IgnoreRules returns the mountpoint rules.
func (c *DiskCheck) IgnoreRules() health.IgnoreRules { return c.ignore }

// Check measures every configured mountpoint.
func (c *DiskCheck) Check(_ context.Context) health.Result {
	if c.configErr != nil {
		return health.NewResult(health.SeverityWarn,
			"Disk usage: invalid configuration",
			"  "+c.configErr.Error(),
		)
	}

	if len(c.mounts) == 0 {
		return health.NewResult(health.SeverityWarn,
			"Disk usage: no mountpoints configured",
			"Configure mounts in disk.json (see README)",
		)
	}

	var lines []string
	var severities []health.Severity
	for _, m := range c.mounts {
		if c.ignore.Match(m.Path) {
			continue
		}
		sev, line := c.checkMount(m)
		severities = append(severities, sev)
		lines = append(lines, line)
	}

	if len(severities) == 0 {
		return health.NewResult(health.SeverityWarn, "Disk usage: all mountpoints ignored")
	}
	return health.NewResult(health.Worst(severities...), lines...)
}

func (c *DiskCheck) checkMount(m MountThreshold) (health.Severity, string) {
	u, err := c.usage(m.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return health.SeverityWarn, m.Path + ": not found (warn)"
	case errors.Is(err, fs.ErrPermission):
		return health.SeverityWarn, m.Path + ": permission denied"
	case err != nil:
		return health.SeverityWarn, fmt.Sprintf("%s: error reading usage (%v)", m.Path, err)
	case u.Total == 0:
		return health.SeverityWarn, m.Path + ": unable to determine size"
	}

	used := u.UsedPercent()
	sev := health.SeverityOK
	switch {
	case used >= m.CriticalPercent:
		sev = health.SeverityCritical
	case used >= m.WarnPercent:
		sev = health.SeverityWarn
	}

	return sev, fmt.Sprintf("[%s] %s: %.1f%% used (%.1f/%.1f GiB free) (warn %.1f%%, crit %.1f%%)",
		health.Marker(sev), m.Path, used,
		float64(u.Free)/gib, float64(u.Total)/gib,
		m.WarnPercent, m.CriticalPercent,
	)
}
