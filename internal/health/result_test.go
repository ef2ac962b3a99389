package health

import (
	"reflect"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityOK, "ok"},
		{SeverityWarn, "warn"},
		{SeverityCritical, "critical"},
		{Severity(7), "severity(7)"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(tt.sev), got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityOK, SeverityWarn, SeverityCritical} {
		got, ok := ParseSeverity(s.String())
		if !ok || got != s {
			t.Errorf("ParseSeverity(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSeverity("error"); ok {
		t.Error("ParseSeverity(\"error\") should fail")
	}
}

func TestWorst(t *testing.T) {
	tests := []struct {
		name string
		in   []Severity
		want Severity
	}{
		{"single ok", []Severity{SeverityOK}, SeverityOK},
		{"single critical", []Severity{SeverityCritical}, SeverityCritical},
		{"ok and warn", []Severity{SeverityOK, SeverityWarn}, SeverityWarn},
		{"critical first", []Severity{SeverityCritical, SeverityOK, SeverityWarn}, SeverityCritical},
		{"critical last", []Severity{SeverityOK, SeverityWarn, SeverityCritical}, SeverityCritical},
		{"repeated warn", []Severity{SeverityWarn, SeverityWarn, SeverityOK}, SeverityWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Worst(tt.in...); got != tt.want {
				t.Errorf("Worst(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWorst_OrderIndependent(t *testing.T) {
	all := []Severity{SeverityOK, SeverityWarn, SeverityCritical}
	// every permutation of the three levels
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		in := []Severity{all[p[0]], all[p[1]], all[p[2]]}
		if got := Worst(in...); got != SeverityCritical {
			t.Errorf("Worst(%v) = %v, want critical", in, got)
		}
		if got := Worst(in[:2]...); got != max(in[0], in[1]) {
			t.Errorf("Worst(%v) = %v", in[:2], got)
		}
	}
}

func TestWorst_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Worst() without arguments should panic")
		}
	}()
	Worst()
}

func TestMarker(t *testing.T) {
	if Marker(SeverityOK) != "✓" || Marker(SeverityWarn) != "!" || Marker(SeverityCritical) != "✗" {
		t.Errorf("unexpected markers: %q %q %q", Marker(SeverityOK), Marker(SeverityWarn), Marker(SeverityCritical))
	}
}

func TestNewResult_CopiesLines(t *testing.T) {
	lines := []string{"a", "b"}
	r := NewResult(SeverityWarn, lines...)
	lines[0] = "mutated"

	if r.Lines[0] != "a" {
		t.Errorf("NewResult shares the caller's slice: %v", r.Lines)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		entries   []NamedResult
		wantSev   Severity
		wantLines []string
	}{
		{
			name: "single entry has no leading blank",
			entries: []NamedResult{
				{Name: "Disk", Result: NewResult(SeverityOK, "[✓] /: 10.0% used")},
			},
			wantSev:   SeverityOK,
			wantLines: []string{"Disk:", "[✓] /: 10.0% used"},
		},
		{
			name: "entries separated by exactly one blank line",
			entries: []NamedResult{
				{Name: "Units", Result: NewResult(SeverityWarn, "systemd: starting")},
				{Name: "Btrfs", Result: NewResult(SeverityCritical, "a", "b")},
				{Name: "Disk", Result: NewResult(SeverityOK)},
			},
			wantSev: SeverityCritical,
			wantLines: []string{
				"Units:", "systemd: starting",
				"",
				"Btrfs:", "a", "b",
				"",
				"Disk:",
			},
		},
		{
			name: "lines are kept verbatim including blanks",
			entries: []NamedResult{
				{Name: "Journal", Result: NewResult(SeverityCritical, "count: 1", "", "Most recent:")},
			},
			wantSev:   SeverityCritical,
			wantLines: []string{"Journal:", "count: 1", "", "Most recent:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.entries...)
			if got.Severity != tt.wantSev {
				t.Errorf("Merge().Severity = %v, want %v", got.Severity, tt.wantSev)
			}
			if !reflect.DeepEqual(got.Lines, tt.wantLines) {
				t.Errorf("Merge().Lines = %q, want %q", got.Lines, tt.wantLines)
			}
		})
	}
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	in := NewResult(SeverityOK, "x")
	merged := Merge(NamedResult{Name: "A", Result: in})
	merged.Lines[1] = "changed"

	if in.Lines[0] != "x" {
		t.Error("Merge output aliases input lines")
	}
}

func TestSeverity_UnmarshalText(t *testing.T) {
	var s Severity
	if err := s.UnmarshalText([]byte("critical")); err != nil || s != SeverityCritical {
		t.Errorf("UnmarshalText(critical) = %v, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("fatal")); err == nil {
		t.Error("UnmarshalText(fatal) should fail")
	}
}
