// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package platform identifies the host platform family so that path-format
// decisions can be made once and injected, rather than scattering
// runtime.GOOS checks through resolution code.
package platform

import "runtime"

// Family classifies the host into the two naming conventions the DNX
// runtime layouts use for installation folders and executables.
type Family int

const (
	// Posix covers Linux, macOS, and other Unix-like hosts.
	Posix Family = iota
	// Windows covers Windows hosts.
	Windows
)

// Detect returns the Family for the current host. Call it once at startup
// and pass the result down; tests construct either value directly.
func Detect() Family {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// String returns a human-readable name for the family.
func (f Family) String() string {
	if f == Windows {
		return "windows"
	}
	return "posix"
}
