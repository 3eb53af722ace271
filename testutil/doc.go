// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package testutil contains helpers shared by tests across the module:
// stdout capture for CLI output assertions, temp directories with cleanup,
// and builders for on-disk runtime-home fixtures.
//
// It is imported only from _test.go files.
package testutil
