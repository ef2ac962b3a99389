//go:build !unix

package sysexec

import "os/exec"

// killProcessGroup is a no-op; cancellation kills only the direct child.
func killProcessGroup(*exec.Cmd) {}
