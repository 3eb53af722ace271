// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package globaljson locates a project's global.json marker file and reads
// the runtime version it pins.
//
// The marker file defines the project root: FindProjectRoot walks parent
// directories from a starting path and stops at the first directory that
// contains global.json. ReadSdkVersion then extracts the sdk.version value,
// recording the line and column of the value inside the file so resolution
// errors can point at the exact token that requested the version.
//
// Only the sdk.version field is read; any other content in global.json is
// ignored.
package globaljson
