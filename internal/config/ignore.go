package config

import (
	"io/fs"
	"regexp"
	"slices"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/pkg/fileutil"
)

// ignoreLineRe matches "module:<regex>".
var ignoreLineRe = regexp.MustCompile(`^(\w+):(.+)$`)

// ParseIgnoreFile reads ignore rules grouped by module key.
//
// Each non-blank line not starting with '#' has the form "module:<regex>".
// A missing file yields no rules. A malformed line, an unknown module or an
// invalid pattern fails the whole file, naming the 1-based line number.
func ParseIgnoreFile(path string, known []string) (map[string]health.IgnoreRules, error) {
	if path == "" {
		return map[string]health.IgnoreRules{}, nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]health.IgnoreRules{}, nil
		}
		return nil, errors.Wrapf(err, "reading ignore file %s", path)
	}

	return ParseIgnoreRules(string(data), known)
}

// ParseIgnoreRules parses the contents of an ignore file.
func ParseIgnoreRules(content string, known []string) (map[string]health.IgnoreRules, error) {
	byModule := make(map[string][]*regexp.Regexp)

	for i, raw := range strings.Split(content, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := ignoreLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.Mark(
				errors.Newf("Line %d: Invalid format '%s'. Expected 'module:<regex>'", lineNum, line),
				errors.ErrInvalidPattern,
			)
		}

		module := strings.TrimSpace(m[1])
		pattern := strings.TrimSpace(m[2])

		if !slices.Contains(known, module) {
			return nil, errors.Mark(
				errors.Newf("Line %d: Unknown module '%s'. Known modules: %s", lineNum, module, strings.Join(known, ", ")),
				errors.ErrUnknownModule,
			)
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Mark(
				errors.Newf("Line %d: Invalid regex pattern '%s': %v", lineNum, pattern, err),
				errors.ErrInvalidPattern,
			)
		}

		byModule[module] = append(byModule[module], re)
	}

	rules := make(map[string]health.IgnoreRules, len(byModule))
	for module, patterns := range byModule {
		rules[module] = health.NewIgnoreRules(patterns...)
	}
	return rules, nil
}
