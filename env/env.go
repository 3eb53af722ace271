// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"os"
	"regexp"
	"strings"
)

// Environment supplies environment variable values. Abstracting the lookup
// keeps resolution code testable without mutating the process environment.
type Environment interface {
	Getenv(key string) string
}

// osEnvironment reads from the process environment.
type osEnvironment struct{}

func (osEnvironment) Getenv(key string) string {
	return os.Getenv(key)
}

// OS returns an Environment backed by the process environment.
func OS() Environment {
	return osEnvironment{}
}

// mapEnvironment reads from a fixed map. Missing keys yield "".
type mapEnvironment map[string]string

func (m mapEnvironment) Getenv(key string) string {
	return m[key]
}

// Map returns an Environment backed by the given map. Useful in tests and
// anywhere a synthetic environment must be injected.
func Map(values map[string]string) Environment {
	return mapEnvironment(values)
}

// windowsRefPattern matches %VAR% style references.
var windowsRefPattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

// maxExpandDepth bounds recursive expansion so self-referencing variables
// terminate instead of looping.
const maxExpandDepth = 8

// Expand replaces ${VAR}, $VAR, and %VAR% references in s with values from
// env. Expansion is recursive: a variable whose value itself contains a
// reference is expanded again, up to a fixed depth. Unknown variables expand
// to the empty string.
func Expand(environment Environment, s string) string {
	for i := 0; i < maxExpandDepth; i++ {
		expanded := expandOnce(environment, s)
		if expanded == s {
			return expanded
		}
		s = expanded
	}
	return s
}

func expandOnce(environment Environment, s string) string {
	s = os.Expand(s, environment.Getenv)
	return windowsRefPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.Trim(match, "%")
		return environment.Getenv(name)
	})
}
