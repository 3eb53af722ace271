// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package runtimeutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dnxdev/dnx-core/env"
	"github.com/dnxdev/dnx-core/fileutil"
	"github.com/dnxdev/dnx-core/globaljson"
	"github.com/dnxdev/dnx-core/logutil"
	"github.com/dnxdev/dnx-core/platform"
)

// DefaultAlias is the version token used when neither global.json nor the
// caller supplies one.
const DefaultAlias = "default"

// aliasFolderName is the subfolder of a runtime home holding alias files.
const aliasFolderName = "alias"

// NotFoundError reports that no installed runtime matched the requested
// version or alias. Searched lists every fully-expanded candidate path that
// was existence-checked, in the exact order tested. When the version came
// from a global.json, File/Line/Column point at the version value so the
// error can be rendered as a diagnostic anchored in that file.
type NotFoundError struct {
	Version  string
	Searched []string
	File     string
	Line     int
	Column   int
}

// Error returns a message naming the requested version and every searched
// location, making misconfiguration diagnosable from the message alone.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the runtime version %q could not be found in any of the following locations:\n%s",
		e.Version, strings.Join(e.Searched, "\n"))
}

// ResolveCandidate computes the install path for one version-or-alias token
// under one runtime home, for a single format generation. It performs no
// existence check on the result, so it doubles as a pure path computation.
//
// An alias file (<home>/alias/<token>.alias, then <token>.txt) wins over
// version formatting: its trimmed content is taken as the literal install
// folder name. Without one, the token is treated as a version string and
// formatted with the family-specific pattern. An empty home yields "".
// An alias file that exists but cannot be read is an error, not a skip.
func ResolveCandidate(home, versionOrAlias string, format Format, family platform.Family) (string, error) {
	if home == "" {
		return "", nil
	}

	aliasDir := filepath.Join(home, aliasFolderName)
	aliasFile := fileutil.FirstExisting(aliasDir, versionOrAlias+".alias", versionOrAlias+".txt")
	if aliasFile != "" {
		folderName, err := fileutil.ReadTrimmed(aliasFile)
		if err != nil {
			return "", fmt.Errorf("failed to read alias file %s: %w", aliasFile, err)
		}
		return filepath.Join(home, format.PackagesFolder, folderName), nil
	}

	return filepath.Join(home, format.PackagesFolder, format.FolderName(versionOrAlias, family)), nil
}

// Resolver locates an installed runtime. The zero value is not usable;
// construct with NewResolver, or populate Env and Family directly in tests
// to pin the environment and platform branch.
type Resolver struct {
	Env    env.Environment
	Family platform.Family
}

// NewResolver returns a Resolver backed by the process environment and the
// detected host platform.
func NewResolver() *Resolver {
	return &Resolver{Env: env.OS(), Family: platform.Detect()}
}

// requestedVersion determines the version token for a resolution: the
// global.json value when present, else the configured alias, else
// DefaultAlias. A malformed or unreadable global.json aborts resolution.
func (r *Resolver) requestedVersion(startDir, configuredAlias string) (*globaljson.VersionToken, string, error) {
	root := globaljson.FindProjectRoot(startDir)
	token, err := globaljson.ReadSdkVersion(globaljson.Path(root))
	if err != nil {
		return nil, "", err
	}
	if token != nil {
		return token, token.Value, nil
	}
	if configuredAlias != "" {
		return nil, configuredAlias, nil
	}
	return nil, DefaultAlias, nil
}

// Resolve finds the installation directory for the runtime requested by the
// project at startDir, falling back to configuredAlias and then to
// DefaultAlias. Candidate homes are searched in order; within each home all
// format generations are tried newest-first before the next home is
// considered. The first candidate directory that exists wins and no further
// candidates are computed or checked.
//
// On failure the returned error is a *NotFoundError carrying every path
// searched, or the underlying error for a malformed global.json or an
// unreadable alias file.
func (r *Resolver) Resolve(startDir, configuredAlias string) (string, error) {
	token, version, err := r.requestedVersion(startDir, configuredAlias)
	if err != nil {
		return "", err
	}

	var searched []string
	for _, home := range CandidateHomes(r.Env) {
		for _, format := range Generations {
			candidate, err := ResolveCandidate(home, version, format, r.Family)
			if err != nil {
				return "", err
			}
			if candidate == "" {
				continue
			}
			logutil.Debug("checking runtime candidate", "path", candidate)
			if fileutil.DirExists(candidate) {
				logutil.Debug("resolved runtime", "path", candidate, "version", version)
				return candidate, nil
			}
			searched = append(searched, candidate)
		}
	}

	notFound := &NotFoundError{Version: version, Searched: searched}
	if token != nil {
		notFound.File = token.File
		notFound.Line = token.Line
		notFound.Column = token.Column
	}
	return "", notFound
}

// CandidatePaths computes every candidate install path for a version token
// without checking existence, in the same order Resolve would test them.
// Used for diagnostics output.
func (r *Resolver) CandidatePaths(version string) ([]string, error) {
	var paths []string
	for _, home := range CandidateHomes(r.Env) {
		for _, format := range Generations {
			candidate, err := ResolveCandidate(home, version, format, r.Family)
			if err != nil {
				return nil, err
			}
			if candidate != "" {
				paths = append(paths, candidate)
			}
		}
	}
	return paths, nil
}
