// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cliout

import (
	"strings"
	"testing"

	"github.com/dnxdev/dnx-core/testutil"
)

func TestSetFormat(t *testing.T) {
	t.Cleanup(func() { _ = SetFormat("default") })

	tests := []struct {
		name    string
		format  string
		want    Format
		wantErr bool
	}{
		{name: "default", format: "default", want: FormatDefault},
		{name: "empty means default", format: "", want: FormatDefault},
		{name: "json", format: "json", want: FormatJSON},
		{name: "invalid", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetFormat(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SetFormat(%q) = nil error, want error", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetFormat(%q) failed: %v", tt.format, err)
			}
			if got := GetFormat(); got != tt.want {
				t.Errorf("GetFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrintRespectsFormat(t *testing.T) {
	t.Cleanup(func() { _ = SetFormat("default") })

	if err := SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	output := testutil.CaptureOutput(t, func() error {
		return Print(map[string]string{"runtimePath": "/opt/runtime"}, func() {
			t.Error("formatter called in JSON mode")
		})
	})
	if !strings.Contains(output, `"runtimePath": "/opt/runtime"`) {
		t.Errorf("JSON output missing field: %q", output)
	}

	if err := SetFormat("default"); err != nil {
		t.Fatal(err)
	}
	called := false
	output = testutil.CaptureOutput(t, func() error {
		return Print(nil, func() { called = true })
	})
	if !called {
		t.Error("formatter not called in default mode")
	}
	if strings.Contains(output, "null") {
		t.Errorf("default mode printed JSON: %q", output)
	}
}

func TestMessageHelpers(t *testing.T) {
	NoColor()
	t.Cleanup(ForceColor)

	output := testutil.CaptureOutput(t, func() error {
		Success("resolved %s", "dnx-mono.1.0.0")
		Error("not found")
		Warning("legacy layout")
		Info("searching")
		Label("Runtime", "/opt/runtime")
		Bullet("/opt/runtime/runtimes/dnx-mono.1.0.0")
		return nil
	})

	for _, want := range []string{
		"resolved dnx-mono.1.0.0",
		"not found",
		"legacy layout",
		"searching",
		"Runtime:",
		"/opt/runtime/runtimes/dnx-mono.1.0.0",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %q", want, output)
		}
	}
	if strings.Contains(output, "\033[") {
		t.Errorf("output contains ANSI escapes with color disabled: %q", output)
	}
}
