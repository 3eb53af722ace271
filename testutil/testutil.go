// Package testutil provides common testing utilities: capturing stdout,
// creating temporary directories, and building runtime-home fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes the function, and returns the
// captured output. The original stdout is always restored.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Buffered channel so the reader goroutine never leaks.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		buf := make([]byte, 1024)
		for {
			n, readErr := r.Read(buf)
			if n > 0 {
				output.Write(buf[:n])
			}
			if readErr != nil {
				break
			}
		}
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// TempDir creates a temporary directory for testing with automatic cleanup.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "dnx-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteRuntimeHome builds a runtime-home fixture: an install directory under
// the given packages folder, with optional tool executables under bin/.
// Returns the install directory path.
func WriteRuntimeHome(t *testing.T, home, packagesFolder, installName string, tools ...string) string {
	t.Helper()

	installDir := filepath.Join(home, packagesFolder, installName)
	binDir := filepath.Join(installDir, "bin")
	if err := os.MkdirAll(binDir, 0750); err != nil {
		t.Fatalf("Failed to create runtime fixture: %v", err)
	}
	for _, tool := range tools {
		if err := os.WriteFile(filepath.Join(binDir, tool), []byte(""), 0644); err != nil {
			t.Fatalf("Failed to write tool fixture %s: %v", tool, err)
		}
	}
	return installDir
}
