// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"

	"github.com/dnxdev/dnx-core/cliout"
	"github.com/dnxdev/dnx-core/runtimeutil"
)

// resolveResult is the machine-readable shape of a successful resolution.
type resolveResult struct {
	runtimeutil.Paths
}

// resolveError is the machine-readable shape of a failed resolution.
type resolveError struct {
	Error         string   `json:"error"`
	Version       string   `json:"version,omitempty"`
	SearchedPaths []string `json:"searchedPaths,omitempty"`
	SourceFile    string   `json:"sourceFile,omitempty"`
	SourceLine    int      `json:"sourceLine,omitempty"`
	SourceColumn  int      `json:"sourceColumn,omitempty"`
}

// runResolve resolves the runtime for the configured project and prints the
// outcome in the configured format. The returned error is non-nil on any
// failure so main exits non-zero; output has already been printed.
func runResolve(opts *rootFlags) error {
	resolver := runtimeutil.NewResolver()
	paths, err := resolver.GetPaths(opts.projectDir, opts.alias)
	if err != nil {
		printResolveError(err)
		return err
	}

	return cliout.Print(resolveResult{Paths: paths}, func() {
		cliout.Success("Runtime resolved")
		cliout.Label("Runtime", paths.RuntimePath)
		printTool("dnx", paths.Dnx)
		printTool("dnu", paths.Dnu)
		printTool("klr", paths.Klr)
		printTool("kpm", paths.Kpm)
		printTool("k", paths.K)
	})
}

func printTool(name, path string) {
	if path == "" {
		cliout.Label(name, "(not found)")
		return
	}
	cliout.Label(name, path)
}

// printResolveError renders a resolution failure in the configured format.
// Not-found errors carry the searched locations and, when the version came
// from global.json, the position of the version value for diagnostics.
func printResolveError(err error) {
	var notFound *runtimeutil.NotFoundError
	if !errors.As(err, &notFound) {
		_ = cliout.Print(resolveError{Error: err.Error()}, func() {
			cliout.Error("%s", err)
		})
		return
	}

	result := resolveError{
		Error:         notFound.Error(),
		Version:       notFound.Version,
		SearchedPaths: notFound.Searched,
		SourceFile:    notFound.File,
		SourceLine:    notFound.Line,
		SourceColumn:  notFound.Column,
	}
	_ = cliout.Print(result, func() {
		cliout.Error("Runtime version %q was not found. Searched:", notFound.Version)
		for _, path := range notFound.Searched {
			cliout.Bullet("%s", path)
		}
		if notFound.File != "" {
			cliout.Info("requested by %s", fmt.Sprintf("%s:%d:%d", notFound.File, notFound.Line, notFound.Column))
		}
	})
}
