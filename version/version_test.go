package version

import (
	"strings"
	"testing"

	"github.com/dnxdev/dnx-core/testutil"
)

func TestNew(t *testing.T) {
	info := New("dnx-locate")
	if info.Version != "0.0.0-dev" {
		t.Errorf("Version = %q, want 0.0.0-dev", info.Version)
	}
	if info.Name != "dnx-locate" {
		t.Errorf("Name = %q, want dnx-locate", info.Name)
	}
}

func TestString(t *testing.T) {
	info := &Info{Name: "dnx-locate", Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-08-24"}
	got := info.String()
	for _, want := range []string{"dnx-locate", "1.2.3", "abc123", "2026-08-24"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestNewCommandQuiet(t *testing.T) {
	info := &Info{Name: "dnx-locate", Version: "1.2.3"}
	cmd := NewCommand(info, nil)
	cmd.SetArgs([]string{"--quiet"})

	output := testutil.CaptureOutput(t, cmd.Execute)
	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("quiet output = %q, want 1.2.3", output)
	}
}

func TestNewCommandJSON(t *testing.T) {
	info := &Info{Name: "dnx-locate", Version: "1.2.3"}
	format := "json"
	cmd := NewCommand(info, &format)

	output := testutil.CaptureOutput(t, cmd.Execute)
	if !strings.Contains(output, `"version": "1.2.3"`) {
		t.Errorf("json output = %q, missing version field", output)
	}
}
