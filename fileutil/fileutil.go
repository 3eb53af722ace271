// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists checks if a file exists in a directory.
// Returns true if the file exists, false otherwise.
func FileExists(dir string, filename string) bool {
	info, err := os.Stat(filepath.Join(dir, filename))
	return err == nil && !info.IsDir()
}

// FirstExisting returns the full path of the first of filenames that exists
// in dir, or "" when none do.
func FirstExisting(dir string, filenames ...string) string {
	for _, filename := range filenames {
		if FileExists(dir, filename) {
			return filepath.Join(dir, filename)
		}
	}
	return ""
}

// ReadTrimmed reads the entire file at path and returns its contents with
// surrounding whitespace trimmed. Read failures are returned, not swallowed:
// an unreadable file usually signals a real misconfiguration.
func ReadTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
