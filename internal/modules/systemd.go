package modules

import (
	"context"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// maxTooltipUnits bounds the failed units listed per scope.
const maxTooltipUnits = 10

// Scope selects the system or the per-user service manager.
type Scope int

const (
	ScopeSystem Scope = iota
	ScopeUser
)

func (s Scope) String() string {
	if s == ScopeUser {
		return "user"
	}
	return "system"
}

// systemctl returns the systemctl argv prefix for the scope.
func (s Scope) systemctl() []string {
	if s == ScopeUser {
		return []string{"systemctl", "--user"}
	}
	return []string{"systemctl"}
}

// SystemdCheck reports the overall manager state and failed units for both
// the system and the user instance of systemd.
type SystemdCheck struct {
	runner sysexec.Runner
	ignore health.IgnoreRules
}

var _ health.Check = (*SystemdCheck)(nil)

// NewSystemdCheck creates the systemd check. Ignore rules apply to unit names.
func NewSystemdCheck(runner sysexec.Runner, ignore health.IgnoreRules) *SystemdCheck {
	return &SystemdCheck{runner: runner, ignore: ignore}
}

// Name returns the display name.
func (c *SystemdCheck) Name() string { return "Units" }

// IgnoreRules returns the unit name rules.
func (c *SystemdCheck) IgnoreRules() health.IgnoreRules { return c.ignore }

// Check merges the four sub-checks.
func (c *SystemdCheck) Check(ctx context.Context) health.Result {
	return health.Merge(
		health.NamedResult{Name: "## System state", Result: c.stateResult(ctx, ScopeSystem)},
		health.NamedResult{Name: "## User state", Result: c.stateResult(ctx, ScopeUser)},
		health.NamedResult{Name: "## Failed (system)", Result: c.failedUnitsResult(ctx, ScopeSystem)},
		health.NamedResult{Name: "## Failed (user)", Result: c.failedUnitsResult(ctx, ScopeUser)},
	)
}

// stateResult classifies the output of "systemctl is-system-running".
func (c *SystemdCheck) stateResult(ctx context.Context, scope Scope) health.Result {
	out := c.runner.Run(ctx, append(scope.systemctl(), "is-system-running"))
	if out.NotFound() {
		return health.NewResult(health.SeverityWarn, "systemctl missing")
	}

	state := firstLine(out.Stdout)
	if state == "" {
		state = firstLine(out.Stderr)
	}
	if state == "" {
		state = "unknown"
	}

	sev := health.SeverityOK
	switch {
	case state == "degraded" || state == "maintenance" || state == "failed":
		sev = health.SeverityCritical
	case state == "starting" || state == "unknown" || out.Code != 0:
		sev = health.SeverityWarn
	}

	return health.NewResult(sev, "systemd ("+scope.String()+"): "+state)
}

// failedUnitsResult lists units reported by "systemctl --failed".
func (c *SystemdCheck) failedUnitsResult(ctx context.Context, scope Scope) health.Result {
	argv := append(scope.systemctl(), "--failed", "--no-legend", "--plain")
	out := c.runner.Run(ctx, argv)
	if out.NotFound() {
		return health.NewResult(health.SeverityWarn, "systemctl missing")
	}
	if out.Code != 0 {
		name := strings.Join(scope.systemctl(), " ") + " --failed"
		return health.NewResult(health.SeverityWarn, formatCommandError(name, out)...)
	}

	var units []string
	for _, ln := range splitLines(out.Stdout) {
		fields := strings.Fields(ln)
		if len(fields) == 0 {
			continue
		}
		if unit := fields[0]; !c.ignore.Match(unit) {
			units = append(units, unit)
		}
	}

	if len(units) == 0 {
		return health.NewResult(health.SeverityOK, "Failed units: none")
	}

	lines := []string{"Failed units:"}
	for _, u := range units[:min(len(units), maxTooltipUnits)] {
		lines = append(lines, "  • "+u)
	}
	if len(units) > maxTooltipUnits {
		lines = append(lines, moreLine("  ", len(units)-maxTooltipUnits))
	}
	return health.NewResult(health.SeverityCritical, lines...)
}
