package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
)

func TestLoadMountThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.json")
	writeFile(t, path, `[
  {"path": "/", "warn": 80, "critical": 90},
  {"path": "/home", "warn": "85.5", "critical": 95}
]`)

	mounts, err := LoadMountThresholds(path)
	if err != nil {
		t.Fatalf("LoadMountThresholds() error: %v", err)
	}

	want := []modules.MountThreshold{
		{Path: "/", WarnPercent: 80, CriticalPercent: 90},
		{Path: "/home", WarnPercent: 85.5, CriticalPercent: 95},
	}
	if len(mounts) != len(want) {
		t.Fatalf("got %d mounts, want %d", len(mounts), len(want))
	}
	for i := range want {
		if mounts[i] != want[i] {
			t.Errorf("mount %d = %+v, want %+v", i, mounts[i], want[i])
		}
	}
}

func TestLoadMountThresholds_Missing(t *testing.T) {
	mounts, err := LoadMountThresholds(filepath.Join(t.TempDir(), "disk.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if mounts != nil {
		t.Errorf("expected nil mounts, got %v", mounts)
	}
}

func TestParseMountThresholds_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		is      error
	}{
		{
			name:    "top level object",
			content: `{"path": "/"}`,
			wantErr: "Disk config 'disk.json' must be a JSON list of mount entries",
			is:      errors.ErrInvalidConfig,
		},
		{
			name:    "entry not an object",
			content: `[{"path": "/", "warn": 1, "critical": 2}, "/home"]`,
			wantErr: "Disk config 'disk.json' entry #2 must be an object",
			is:      errors.ErrInvalidConfig,
		},
		{
			name:    "missing critical",
			content: `[{"path": "/", "warn": 80}]`,
			wantErr: "Disk config 'disk.json' entry #1 must include 'path', 'warn', and 'critical'",
			is:      errors.ErrInvalidConfig,
		},
		{
			name:    "null path",
			content: `[{"path": null, "warn": 80, "critical": 90}]`,
			wantErr: "Disk config 'disk.json' entry #1 must include 'path', 'warn', and 'critical'",
			is:      errors.ErrInvalidConfig,
		},
		{
			name:    "non numeric",
			content: `[{"path": "/", "warn": "lots", "critical": 90}]`,
			wantErr: "Disk config 'disk.json' entry #1: warn/critical must be numbers",
			is:      errors.ErrInvalidConfig,
		},
		{
			name:    "boolean threshold",
			content: `[{"path": "/", "warn": true, "critical": 90}]`,
			wantErr: "Disk config 'disk.json' entry #1: warn/critical must be numbers",
			is:      errors.ErrInvalidConfig,
		},
		{
			name:    "warn above critical",
			content: `[{"path": "/", "warn": 95, "critical": 90}]`,
			wantErr: "/: warn threshold cannot exceed critical threshold",
			is:      errors.ErrInvalidThreshold,
		},
		{
			name:    "empty path",
			content: `[{"path": "", "warn": 80, "critical": 90}]`,
			wantErr: "mountpoint path must be set",
			is:      errors.ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMountThresholds("disk.json", []byte(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestParseMountThresholds_InvalidJSON(t *testing.T) {
	_, err := ParseMountThresholds("disk.json", []byte(`[{"path": "/",]`))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.HasPrefix(got, "Disk config 'disk.json' is not valid JSON: ") {
		t.Errorf("unexpected error: %q", got)
	}
}

func TestParseMountThresholds_EmptyList(t *testing.T) {
	mounts, err := ParseMountThresholds("disk.json", []byte(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mounts) != 0 {
		t.Errorf("expected no mounts, got %d", len(mounts))
	}
}
