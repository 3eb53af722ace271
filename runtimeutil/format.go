// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package runtimeutil

import (
	"fmt"

	"github.com/dnxdev/dnx-core/platform"
)

// Format describes one on-disk naming convention for runtime installations.
// Several conventions have superseded each other over time; all of them
// remain searchable so older installations keep working.
type Format struct {
	// Subfolder is the directory name appended to a user home directory
	// when enumerating candidate runtime homes (e.g. ".dnx").
	Subfolder string
	// MonoFormat is the install folder name pattern on POSIX hosts.
	MonoFormat string
	// WindowsFormat is the install folder name pattern on Windows hosts.
	WindowsFormat string
	// PackagesFolder is the directory under the runtime home that holds
	// installed versions.
	PackagesFolder string
}

// Generations lists the supported naming conventions, newest first. The
// order is load-bearing: within a single runtime home the newest convention
// is preferred, and the whole sequence is tried before moving to the next
// home.
var Generations = []Format{
	{Subfolder: ".dnx", MonoFormat: "dnx-mono.%s", WindowsFormat: "dnx-clr-win-x86.%s", PackagesFolder: "runtimes"},
	{Subfolder: ".k", MonoFormat: "kre-mono.%s", WindowsFormat: "KRE-CLR-x86.%s", PackagesFolder: "packages"},
	{Subfolder: ".kre", MonoFormat: "KRE-Mono.%s", WindowsFormat: "KRE-CLR-x86.%s", PackagesFolder: "packages"},
}

// FolderName formats a literal version string into an install folder name
// using the pattern for the given platform family.
func (f Format) FolderName(version string, family platform.Family) string {
	if family == platform.Windows {
		return fmt.Sprintf(f.WindowsFormat, version)
	}
	return fmt.Sprintf(f.MonoFormat, version)
}
