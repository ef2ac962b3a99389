package modules

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec/mocks"
)

// cmd is one expected invocation and its canned output.
type cmd struct {
	argv []string
	out  sysexec.Output
}

func newRunner(t *testing.T, cmds ...cmd) *mocks.MockRunner {
	t.Helper()
	r := mocks.NewMockRunner(t)
	for _, c := range cmds {
		r.EXPECT().Run(mock.Anything, c.argv).Return(c.out).Once()
	}
	return r
}

func ok(stdout string) sysexec.Output {
	return sysexec.Output{Stdout: stdout}
}

func rules(patterns ...string) health.IgnoreRules {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(p))
	}
	return health.NewIgnoreRules(res...)
}

var notFound = sysexec.Output{Code: sysexec.ExitNotFound, Stderr: "Command not found", Synthesized: true}
