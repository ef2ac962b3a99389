package modules

import (
	"io/fs"
	"math"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/health"
)

func TestNewMountThreshold(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		warn     float64
		critical float64
		wantErr  string
	}{
		{"valid", "/", 80, 90, ""},
		{"equal thresholds", "/home", 90, 90, ""},
		{"full range", "/boot", 0, 100, ""},
		{"empty path", "", 80, 90, "mountpoint path must be set"},
		{"warn negative", "/", -1, 90, "/: warn threshold must be between 0 and 100"},
		{"warn too large", "/", 101, 90, "/: warn threshold must be between 0 and 100"},
		{"critical too large", "/", 80, 100.5, "/: critical threshold must be between 0 and 100"},
		{"critical negative", "/", 0, -5, "/: critical threshold must be between 0 and 100"},
		{"warn above critical", "/", 95, 90, "/: warn threshold cannot exceed critical threshold"},
		{"warn NaN", "/", math.NaN(), 90, "/: warn threshold must be between 0 and 100"},
		{"critical NaN", "/", 80, math.NaN(), "/: critical threshold must be between 0 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMountThreshold(tt.path, tt.warn, tt.critical)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, errors.Is(err, errors.ErrInvalidThreshold))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MountThreshold{Path: tt.path, WarnPercent: tt.warn, CriticalPercent: tt.critical}, m)
		})
	}
}

func mustThreshold(t *testing.T, path string, warn, critical float64) MountThreshold {
	t.Helper()
	m, err := NewMountThreshold(path, warn, critical)
	require.NoError(t, err)
	return m
}

func fakeUsage(usages map[string]Usage, errs map[string]error) UsageFunc {
	return func(path string) (Usage, error) {
		if err, ok := errs[path]; ok {
			return Usage{}, err
		}
		return usages[path], nil
	}
}

func TestDiskCheck_CriticalScenario(t *testing.T) {
	c := NewDiskCheck([]MountThreshold{mustThreshold(t, "/", 80, 90)}, health.IgnoreRules{}, nil)
	c.usage = fakeUsage(map[string]Usage{"/": {Total: 1000, Free: 50}}, nil)
	assert.Equal(t, "Disk", c.Name())

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityCritical, res.Severity)
	require.Len(t, res.Lines, 1)
	assert.Contains(t, res.Lines[0], "95.0%")
	assert.Equal(t, "[✗] /: 95.0% used (0.0/0.0 GiB free) (warn 80.0%, crit 90.0%)", res.Lines[0])
}

func TestDiskCheck_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		free uint64
		want health.Severity
		used string
	}{
		{"below warn", 512, health.SeverityOK, "50.0%"},
		{"exactly warn", 256, health.SeverityWarn, "75.0%"},
		{"between", 200, health.SeverityWarn, "80.5%"},
		{"exactly critical", 128, health.SeverityCritical, "87.5%"},
		{"full", 0, health.SeverityCritical, "100.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDiskCheck([]MountThreshold{mustThreshold(t, "/data", 75, 87.5)}, health.IgnoreRules{}, nil)
			c.usage = fakeUsage(map[string]Usage{"/data": {Total: 1024, Free: tt.free}}, nil)

			res := c.Check(t.Context())
			assert.Equal(t, tt.want, res.Severity)
			assert.Contains(t, res.Lines[0], tt.used+" used")
			assert.Contains(t, res.Lines[0], "["+health.Marker(tt.want)+"] /data")
		})
	}
}

func TestDiskCheck_GiBFormatting(t *testing.T) {
	c := NewDiskCheck([]MountThreshold{mustThreshold(t, "/home", 80, 90)}, health.IgnoreRules{}, nil)
	c.usage = fakeUsage(map[string]Usage{"/home": {Total: 400 * gib, Free: 300 * gib}}, nil)

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityOK, res.Severity)
	assert.Equal(t, []string{"[✓] /home: 25.0% used (300.0/400.0 GiB free) (warn 80.0%, crit 90.0%)"}, res.Lines)
}

func TestDiskCheck_UsageErrors(t *testing.T) {
	mounts := []MountThreshold{
		mustThreshold(t, "/missing", 80, 90),
		mustThreshold(t, "/secret", 80, 90),
		mustThreshold(t, "/broken", 80, 90),
		mustThreshold(t, "/empty", 80, 90),
	}
	c := NewDiskCheck(mounts, health.IgnoreRules{}, nil)
	c.usage = fakeUsage(
		map[string]Usage{"/empty": {}},
		map[string]error{
			"/missing": &fs.PathError{Op: "statfs", Path: "/missing", Err: syscall.ENOENT},
			"/secret":  &fs.PathError{Op: "statfs", Path: "/secret", Err: syscall.EACCES},
			"/broken":  errors.New("input/output error"),
		},
	)

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityWarn, res.Severity)
	assert.Equal(t, []string{
		"/missing: not found (warn)",
		"/secret: permission denied",
		"/broken: error reading usage (input/output error)",
		"/empty: unable to determine size",
	}, res.Lines)
}

func TestDiskCheck_WorstAcrossMounts(t *testing.T) {
	mounts := []MountThreshold{
		mustThreshold(t, "/", 80, 90),
		mustThreshold(t, "/home", 80, 90),
	}
	c := NewDiskCheck(mounts, health.IgnoreRules{}, nil)
	c.usage = fakeUsage(map[string]Usage{
		"/":     {Total: 1000, Free: 500},
		"/home": {Total: 1000, Free: 150},
	}, nil)

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityWarn, res.Severity)
	require.Len(t, res.Lines, 2)
	assert.Contains(t, res.Lines[0], "[✓] /:")
	assert.Contains(t, res.Lines[1], "[!] /home:")
}

func TestDiskCheck_IgnoredMounts(t *testing.T) {
	mounts := []MountThreshold{
		mustThreshold(t, "/", 80, 90),
		mustThreshold(t, "/mnt/usb", 80, 90),
	}
	c := NewDiskCheck(mounts, rules(`^/mnt/`), nil)
	c.usage = fakeUsage(map[string]Usage{"/": {Total: 1000, Free: 500}}, nil)

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityOK, res.Severity)
	require.Len(t, res.Lines, 1)
	assert.Contains(t, res.Lines[0], "/: 50.0% used")
}

func TestDiskCheck_AllMountsIgnored(t *testing.T) {
	c := NewDiskCheck([]MountThreshold{mustThreshold(t, "/mnt/usb", 80, 90)}, rules(`usb`), nil)
	c.usage = func(string) (Usage, error) {
		t.Fatal("usage must not be read for ignored mounts")
		return Usage{}, nil
	}

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityWarn, res.Severity)
	assert.Equal(t, []string{"Disk usage: all mountpoints ignored"}, res.Lines)
}

func TestDiskCheck_ConfigError(t *testing.T) {
	c := NewDiskCheck(nil, health.IgnoreRules{}, errors.New("Disk config 'disk.json' must be a JSON list of mount entries"))

	res := c.Check(t.Context())
	assert.Equal(t, health.SeverityWarn, res.Severity)
	assert.Equal(t, []string{
		"Disk usage: invalid configuration",
		"  Disk config 'disk.json' must be a JSON list of mount entries",
	}, res.Lines)
}

func TestDiskCheck_NoMounts(t *testing.T) {
	res := NewDiskCheck(nil, health.IgnoreRules{}, nil).Check(t.Context())
	assert.Equal(t, health.SeverityWarn, res.Severity)
	assert.Equal(t, []string{
		"Disk usage: no mountpoints configured",
		"Configure mounts in disk.json (see README)",
	}, res.Lines)
}

func TestDiskUsage_TempDir(t *testing.T) {
	u, err := diskUsage(t.TempDir())
	if err != nil {
		t.Skipf("statfs unavailable: %v", err)
	}
	assert.Positive(t, u.Total)
	assert.LessOrEqual(t, u.Free, u.Total)
}

func TestDiskUsage_Missing(t *testing.T) {
	_, err := diskUsage("/definitely/not/a/mountpoint/here")
	require.Error(t, err)
}
