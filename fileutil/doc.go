// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides the small filesystem checks runtime resolution
// is built from: directory and file existence tests, first-existing lookup
// across candidate filenames, and whole-file reads with whitespace trimming
// for alias files.
//
// Existence checks are point-in-time: a path reported as existing may be
// removed before the caller uses it. Callers are expected to tolerate a
// later "not found" rather than rely on these checks as guarantees.
package fileutil
