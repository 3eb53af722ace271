// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package runtimeutil locates installed DNX-family runtimes on disk and
// resolves the tool executables inside them.
//
// Resolution starts from a project directory: the nearest global.json pins
// the requested version (falling back to a caller-supplied alias, then to
// "default"), candidate runtime homes are enumerated from DNX_HOME,
// KRE_HOME, and per-convention folders under the user's home directories,
// and each home is probed against every supported naming convention, newest
// first. The first installation directory that exists wins.
//
// Within one home the full generation sequence is tried before the next
// home, so an older-convention install under a higher-priority home beats a
// newer-convention install under a lower-priority one. That ordering keeps
// existing installations resolvable and must not change.
//
// A requested token may name an alias instead of a version: a file
// <home>/alias/<token>.alias (or .txt) whose content is the literal install
// folder name. Alias files always win over version formatting.
//
// When nothing matches, the returned *NotFoundError lists every path that
// was checked, in order, together with the global.json position the version
// came from. Resolution is stateless: nothing is cached, installed, or
// validated, and existence checks are inherently racy — callers must
// tolerate a later "not found" when actually invoking a resolved tool.
package runtimeutil
