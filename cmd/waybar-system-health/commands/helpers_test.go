package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Dieterbe/waybar-system-health/internal/config"
	"github.com/Dieterbe/waybar-system-health/internal/paths"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec/mocks"
)

var journalArgv = []string{"journalctl", "-b", "-p", "err..emerg", "--no-pager", "-o", "short-iso"}

// isolateConfig points XDG_CONFIG_HOME at a temp dir and returns the app config dir.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Cleanup(paths.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	paths.Reload()
	return filepath.Join(home, paths.AppName)
}

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// useRunner makes the commands execute against r instead of the real system.
func useRunner(t *testing.T, r sysexec.Runner) {
	t.Helper()
	orig := execRunner
	execRunner = func(*config.Config) sysexec.Runner { return r }
	t.Cleanup(func() { execRunner = orig })
}

// journalOnly returns a runner expecting exactly one journalctl call.
func journalOnly(t *testing.T, out sysexec.Output) *mocks.MockRunner {
	t.Helper()
	r := mocks.NewMockRunner(t)
	r.EXPECT().Run(mock.Anything, journalArgv).Return(out).Once()
	return r
}

// resetFlags restores every flag variable to its default.
func resetFlags() {
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configFile = ""
	checkJSON = false
	checkList = false
	configShowFormat = "yaml"
	configInitForce = false
	cfg = nil
	configLoadErr = nil
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
