package modules

import (
	"context"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// SmartDevice is a block device reported by smartctl --scan-open.
// DeviceType is empty unless the scan line carried "-d <type>".
type SmartDevice struct {
	Path       string
	DeviceType string
}

// smartExitBit maps one bit of the smartctl exit status to a verdict.
type smartExitBit struct {
	mask     int
	severity health.Severity
	message  string
}

// smartExitBits follows the EXIT STATUS section of smartctl(8).
var smartExitBits = []smartExitBit{
	{1, health.SeverityWarn, "smartctl: command line did not parse"},
	{2, health.SeverityWarn, "smartctl: failed to open device"},
	{4, health.SeverityWarn, "smartctl: SMART command failed"},
	{8, health.SeverityCritical, "SMART overall-health self-assessment reported failure"},
	{16, health.SeverityCritical, "At least one prefailure attribute is below threshold"},
	{32, health.SeverityCritical, "At least one usage attribute is below threshold"},
	{64, health.SeverityCritical, "SMART self-test log contains errors"},
	{128, health.SeverityWarn, "A previous selective self-test is pending completion"},
}

// ParseScanOutput extracts devices from smartctl --scan-open output.
// Comment lines and trailing "# ..." comments are skipped.
func ParseScanOutput(output string) []SmartDevice {
	var devices []SmartDevice
	for _, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)
		if i := strings.Index(line, "#"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		dev := SmartDevice{Path: tokens[0]}
		if len(tokens) >= 3 && tokens[1] == "-d" {
			dev.DeviceType = tokens[2]
		}
		devices = append(devices, dev)
	}
	return devices
}

// SmartCheck queries SMART health for every device smartctl can open.
type SmartCheck struct {
	runner sysexec.Runner
	ignore health.IgnoreRules
	sudo   bool
}

var _ health.Check = (*SmartCheck)(nil)

// NewSmartCheck creates the SMART check. With sudo set, smartctl runs
// through sudo. Ignore rules are matched against device paths.
func NewSmartCheck(runner sysexec.Runner, ignore health.IgnoreRules, sudo bool) *SmartCheck {
	return &SmartCheck{runner: runner, ignore: ignore, sudo: sudo}
}

// Name returns the display name.
func (c *SmartCheck) Name() string { return "SMART" }

// IgnoreRules returns the device path rules.
func (c *SmartCheck) IgnoreRules() health.IgnoreRules { return c.ignore }

func (c *SmartCheck) smartctl(args ...string) []string {
	argv := make([]string, 0, len(args)+2)
	if c.sudo {
		argv = append(argv, "sudo")
	}
	argv = append(argv, "smartctl")
	return append(argv, args...)
}

func (c *SmartCheck) commandName(args string) string {
	if c.sudo {
		return "sudo smartctl " + args
	}
	return "smartctl " + args
}

// Check scans for devices and checks each one in scan order.
func (c *SmartCheck) Check(ctx context.Context) health.Result {
	scan := c.runner.Run(ctx, c.smartctl("--scan-open"))
	if scan.NotFound() {
		return health.NewResult(health.SeverityWarn,
			"SMART: smartctl command not found",
			"Install smartmontools to enable SMART health checks.",
		)
	}

	var devices []SmartDevice
	for _, dev := range ParseScanOutput(scan.Stdout) {
		if !c.ignore.Match(dev.Path) {
			devices = append(devices, dev)
		}
	}

	if len(devices) == 0 {
		lines := []string{"SMART: no devices detected via 'smartctl --scan-open'"}
		if errLine := firstLine(scan.Stderr); errLine != "" {
			lines = append(lines, "  "+errLine)
		}
		lines = append(lines, "Make sure your sudo permissions are set per the README.md")
		return health.NewResult(health.SeverityWarn, lines...)
	}

	var lines []string
	severities := make([]health.Severity, 0, len(devices))
	for _, dev := range devices {
		sev, devLines := c.checkDevice(ctx, dev)
		severities = append(severities, sev)
		lines = append(lines, devLines...)
	}
	return health.NewResult(health.Worst(severities...), lines...)
}

func (c *SmartCheck) checkDevice(ctx context.Context, dev SmartDevice) (health.Severity, []string) {
	args := []string{"-a"}
	if dev.DeviceType != "" {
		args = append(args, "-d", dev.DeviceType)
	}
	out := c.runner.Run(ctx, c.smartctl(append(args, dev.Path)...))
	if out.NotFound() {
		return health.SeverityWarn, []string{dev.Path + ": smartctl command not found (unexpected during check)"}
	}
	if out.Abnormal() {
		// the code is not a smartctl bitmask
		lines := []string{"[" + health.Marker(health.SeverityWarn) + "] " + dev.Path + ": " + fallbackSummary(health.SeverityWarn)}
		return health.SeverityWarn, append(lines, formatCommandError(c.commandName("-a"), out)...)
	}

	fired := decodeExitBits(out.Code)
	healthLine := extractHealthLine(out.Stdout)
	if healthLine == "" {
		healthLine = extractHealthLine(out.Stderr)
	}

	severities := []health.Severity{health.SeverityOK}
	for _, b := range fired {
		severities = append(severities, b.severity)
	}
	if healthLine != "" {
		severities = append(severities, classifyHealthLine(healthLine))
	}
	sev := health.Worst(severities...)

	summary := healthLine
	if summary == "" {
		summary = fallbackSummary(sev)
	}

	lines := []string{"[" + health.Marker(sev) + "] " + dev.Path + ": " + summary}
	for _, b := range fired {
		lines = append(lines, "  - ("+bitLabel(b.severity)+") "+b.message)
	}

	stderr := strings.TrimSpace(out.Stderr)
	switch {
	case out.Code != 0 && len(fired) == 0 && (stderr != "" || strings.TrimSpace(out.Stdout) == ""):
		lines = append(lines, formatCommandError(c.commandName("-a"), out)...)
	case out.Code == 0 && stderr != "":
		lines = append(lines, "  stderr:")
		for _, ln := range splitLines(stderr) {
			lines = append(lines, "    "+ln)
		}
	}

	return sev, lines
}

// decodeExitBits returns the table entries whose bit is set in code.
// Only codes returned by smartctl itself may be passed in.
func decodeExitBits(code int) []smartExitBit {
	if code <= 0 {
		return nil
	}
	var fired []smartExitBit
	for _, b := range smartExitBits {
		if code&b.mask != 0 {
			fired = append(fired, b)
		}
	}
	return fired
}

// extractHealthLine finds the overall health or self-assessment line.
func extractHealthLine(text string) string {
	for _, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "smart") {
			continue
		}
		if strings.Contains(lower, "health") ||
			strings.Contains(lower, "overall") ||
			strings.Contains(lower, "self-assessment") {
			return line
		}
	}
	return ""
}

func classifyHealthLine(line string) health.Severity {
	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, "fail", "fault", "corrupt"):
		return health.SeverityCritical
	case containsAny(lower, "unknown", "n/a", "not supported"):
		return health.SeverityWarn
	case containsAny(lower, "pass", "ok", "good"):
		return health.SeverityOK
	default:
		return health.SeverityWarn
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func fallbackSummary(sev health.Severity) string {
	switch sev {
	case health.SeverityCritical:
		return "SMART reports failure"
	case health.SeverityWarn:
		return "SMART status uncertain"
	default:
		return "SMART status OK"
	}
}

func bitLabel(sev health.Severity) string {
	switch sev {
	case health.SeverityCritical:
		return "crit"
	case health.SeverityWarn:
		return "warn"
	default:
		return "info"
	}
}
