// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package env abstracts environment variable access and provides recursive
// reference expansion for values read from it.
//
// Runtime-home locations are configured through environment variables whose
// values may themselves contain references to other variables (a common
// pattern on Windows, e.g. DNX_HOME=%USERPROFILE%\.dnx). Expand resolves
// ${VAR}, $VAR, and %VAR% forms until the value is stable.
//
// The Environment interface has two implementations: OS(), backed by the
// process environment, and Map(), backed by a plain map for tests.
package env
