// Package cliout provides structured output formatting for CLI commands
// with cross-platform terminal support and multiple output formats.
//
// Output is either human-readable (colored, with Unicode symbols falling
// back to ASCII on legacy terminals) or JSON for machine consumption. Color
// is disabled automatically when NO_COLOR is set or stdout is not a
// terminal.
//
//	cliout.Success("Runtime resolved")
//	cliout.Error("Runtime not found: %s", err)
//	cliout.Label("Runtime", paths.RuntimePath)
package cliout
