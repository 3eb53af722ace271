// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	if !DirExists(tmpDir) {
		t.Errorf("DirExists(%s) = false, want true", tmpDir)
	}
	if DirExists(filepath.Join(tmpDir, "missing")) {
		t.Error("DirExists(missing) = true, want false")
	}

	// A regular file is not a directory.
	filePath := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if DirExists(filePath) {
		t.Error("DirExists(regular file) = true, want false")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "default.alias"), []byte("dnx-mono.1.0.0"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "subdir"), 0750); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	if !FileExists(tmpDir, "default.alias") {
		t.Error("FileExists(default.alias) = false, want true")
	}
	if FileExists(tmpDir, "missing.alias") {
		t.Error("FileExists(missing.alias) = true, want false")
	}
	if FileExists(tmpDir, "subdir") {
		t.Error("FileExists(subdir) = true for a directory, want false")
	}
}

func TestFirstExisting(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "dnu.cmd"), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "dnu"), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name      string
		filenames []string
		want      string
	}{
		{
			name:      "first candidate wins when both exist",
			filenames: []string{"dnu", "dnu.cmd"},
			want:      filepath.Join(tmpDir, "dnu"),
		},
		{
			name:      "falls through to later candidate",
			filenames: []string{"dnx", "dnu.cmd"},
			want:      filepath.Join(tmpDir, "dnu.cmd"),
		},
		{
			name:      "none exist",
			filenames: []string{"klr", "klr.exe"},
			want:      "",
		},
		{
			name:      "no candidates",
			filenames: nil,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstExisting(tmpDir, tt.filenames...); got != tt.want {
				t.Errorf("FirstExisting(%v) = %q, want %q", tt.filenames, got, tt.want)
			}
		})
	}
}

func TestReadTrimmed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "default.alias")
	if err := os.WriteFile(path, []byte("  dnx-mono.1.0.0-beta4\r\n"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got, err := ReadTrimmed(path)
	if err != nil {
		t.Fatalf("ReadTrimmed failed: %v", err)
	}
	if got != "dnx-mono.1.0.0-beta4" {
		t.Errorf("ReadTrimmed = %q, want dnx-mono.1.0.0-beta4", got)
	}
}

func TestReadTrimmedMissingFile(t *testing.T) {
	_, err := ReadTrimmed(filepath.Join(t.TempDir(), "missing.alias"))
	if err == nil {
		t.Error("ReadTrimmed(missing) = nil error, want error")
	}
}
