// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of
// slog.
//
// Resolution code logs at debug level only, so normal runs stay silent on
// stderr. Debug logging is enabled either by passing debug=true to
// SetupLogger or by setting DNX_DEBUG=true in the environment. When
// structured output is requested, log records are emitted as JSON.
//
//	logutil.SetupLogger(debug, structured)
//	logutil.Debug("checking runtime candidate", "path", candidate)
package logutil
