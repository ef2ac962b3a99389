package modules

import (
	"strconv"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// formatCommandError reports a failed command: the exit code, then the
// captured stderr and stdout, each line indented by two spaces.
// Empty streams are left out.
func formatCommandError(cmdName string, out sysexec.Output) []string {
	lines := []string{cmdName + " failed with code " + strconv.Itoa(out.Code)}

	if s := strings.TrimSpace(out.Stderr); s != "" {
		lines = append(lines, "stderr:")
		for _, ln := range splitLines(s) {
			lines = append(lines, "  "+ln)
		}
	}
	if s := strings.TrimSpace(out.Stdout); s != "" {
		lines = append(lines, "stdout:")
		for _, ln := range splitLines(s) {
			lines = append(lines, "  "+ln)
		}
	}

	return lines
}

// splitLines splits text on newlines, dropping a trailing empty line and
// carriage returns.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// firstLine returns the first line of the trimmed text, trimmed again.
func firstLine(s string) string {
	lines := splitLines(strings.TrimSpace(s))
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[0])
}

// moreLine renders the "+N more" suffix used when a list is truncated.
func moreLine(indent string, n int) string {
	return indent + "… (+" + strconv.Itoa(n) + " more)"
}
