// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package runtimeutil

import (
	"path/filepath"

	"github.com/dnxdev/dnx-core/env"
)

// Environment variable names consumed during home enumeration.
const (
	// EnvRuntimeHome is the primary runtime-home override.
	EnvRuntimeHome = "DNX_HOME"
	// EnvLegacyRuntimeHome is the pre-rename runtime-home override, still
	// honored for installations that never migrated.
	EnvLegacyRuntimeHome = "KRE_HOME"
	// EnvHome is the primary user home directory variable.
	EnvHome = "HOME"
	// EnvUserProfile is the Windows user home directory variable.
	EnvUserProfile = "USERPROFILE"
)

// CandidateHomes returns the ordered list of runtime-home directories to
// search: DNX_HOME, then KRE_HOME, then for each non-empty user home
// variable (HOME, then USERPROFILE) the per-generation subfolders, newest
// convention first. Unset variables are skipped without short-circuiting
// later sources. Every returned value has environment references inside it
// fully expanded.
func CandidateHomes(environment env.Environment) []string {
	var homes []string

	for _, key := range []string{EnvRuntimeHome, EnvLegacyRuntimeHome} {
		if value := env.Expand(environment, environment.Getenv(key)); value != "" {
			homes = append(homes, value)
		}
	}

	for _, key := range []string{EnvHome, EnvUserProfile} {
		userHome := env.Expand(environment, environment.Getenv(key))
		if userHome == "" {
			continue
		}
		for _, format := range Generations {
			homes = append(homes, filepath.Join(userHome, format.Subfolder))
		}
	}

	return homes
}
