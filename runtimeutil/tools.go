// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package runtimeutil

import (
	"path/filepath"

	"github.com/dnxdev/dnx-core/fileutil"
)

// binFolderName is the subfolder of a resolved runtime holding executables.
const binFolderName = "bin"

// Paths holds a resolved runtime directory and the tool executables found
// inside it. A tool field is empty when no candidate filename existed under
// the runtime's bin directory.
type Paths struct {
	RuntimePath string `json:"runtimePath"`
	Dnx         string `json:"dnx,omitempty"`
	Dnu         string `json:"dnu,omitempty"`
	Klr         string `json:"klr,omitempty"`
	Kpm         string `json:"kpm,omitempty"`
	K           string `json:"k,omitempty"`
}

// FirstToolPath returns the first existing <runtimeDir>/bin/<name> among
// the candidate names, or "" when runtimeDir is empty or none exist.
func FirstToolPath(runtimeDir string, names ...string) string {
	if runtimeDir == "" {
		return ""
	}
	return fileutil.FirstExisting(filepath.Join(runtimeDir, binFolderName), names...)
}

// GetPaths resolves the runtime for the project at startDir and locates the
// standard tool executables inside it. Each tool is looked up by its POSIX
// name first, then its Windows name.
func (r *Resolver) GetPaths(startDir, configuredAlias string) (Paths, error) {
	runtimePath, err := r.Resolve(startDir, configuredAlias)
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		RuntimePath: runtimePath,
		Dnx:         FirstToolPath(runtimePath, "dnx", "dnx.exe"),
		Dnu:         FirstToolPath(runtimePath, "dnu", "dnu.cmd"),
		Klr:         FirstToolPath(runtimePath, "klr", "klr.exe"),
		Kpm:         FirstToolPath(runtimePath, "kpm", "kpm.cmd"),
		K:           FirstToolPath(runtimePath, "k", "k.cmd"),
	}, nil
}
