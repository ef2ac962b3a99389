// Package editor launches the user's preferred text editor on a config file.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
)

// ErrNoEditor is returned when no editor command could be determined.
var ErrNoEditor = errors.New("no editor found")

// lookPath is swapped out in tests.
var lookPath = exec.LookPath

// Open launches the editor for path, attached to the terminal.
// The location is written to w first so it stays visible after the editor exits.
// $EDITOR and $VISUAL may contain arguments, e.g. "code --wait".
func Open(w io.Writer, path string) error {
	argv := Command()
	if len(argv) == 0 {
		return ErrNoEditor
	}

	fmt.Fprintf(w, "Location: %s\n", path)

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}

	return nil
}

// Command returns the editor argv to use.
// Fallback chain: $EDITOR, $VISUAL, nano, vi.
func Command() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}

	if _, err := lookPath("nano"); err == nil {
		return []string{"nano"}
	}
	if _, err := lookPath("vi"); err == nil {
		return []string{"vi"}
	}

	return nil
}
