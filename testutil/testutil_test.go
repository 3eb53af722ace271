// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	output := CaptureOutput(t, func() error {
		fmt.Println("captured line")
		return nil
	})
	if !strings.Contains(output, "captured line") {
		t.Errorf("output = %q, want to contain captured line", output)
	}
}

func TestTempDir(t *testing.T) {
	tmpDir := TempDir(t)
	info, err := os.Stat(tmpDir)
	if err != nil {
		t.Fatalf("TempDir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("TempDir is not a directory")
	}
}

func TestWriteRuntimeHome(t *testing.T) {
	home := TempDir(t)
	installDir := WriteRuntimeHome(t, home, "runtimes", "dnx-mono.1.0.0", "dnx", "dnu")

	if installDir != filepath.Join(home, "runtimes", "dnx-mono.1.0.0") {
		t.Errorf("installDir = %q", installDir)
	}
	for _, tool := range []string{"dnx", "dnu"} {
		if _, err := os.Stat(filepath.Join(installDir, "bin", tool)); err != nil {
			t.Errorf("tool %s not created: %v", tool, err)
		}
	}
}
