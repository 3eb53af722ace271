// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"

	"github.com/dnxdev/dnx-core/cliout"
	"github.com/dnxdev/dnx-core/globaljson"
	"github.com/dnxdev/dnx-core/runtimeutil"
)

// doctorReport is the machine-readable shape of the doctor output.
type doctorReport struct {
	Host           doctorHost        `json:"host"`
	Environment    map[string]string `json:"environment"`
	Version        string            `json:"version"`
	VersionSource  string            `json:"versionSource,omitempty"`
	CandidateHomes []string          `json:"candidateHomes"`
	CandidatePaths []string          `json:"candidatePaths"`
}

type doctorHost struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	Arch            string `json:"arch"`
}

// newDoctorCmd reports the host, environment, and full would-be search list
// for the requested version without resolving anything, so a
// misconfiguration can be diagnosed before any runtime is installed.
func newDoctorCmd(opts *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show the environment and search locations used for resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(opts)
		},
	}
}

func runDoctor(opts *rootFlags) error {
	report := doctorReport{
		Environment: map[string]string{},
	}

	if info, err := host.Info(); err == nil {
		report.Host = doctorHost{
			Hostname:        info.Hostname,
			OS:              info.OS,
			Platform:        info.Platform,
			PlatformVersion: info.PlatformVersion,
			Arch:            info.KernelArch,
		}
	}

	for _, key := range []string{
		runtimeutil.EnvRuntimeHome,
		runtimeutil.EnvLegacyRuntimeHome,
		runtimeutil.EnvHome,
		runtimeutil.EnvUserProfile,
	} {
		report.Environment[key] = os.Getenv(key)
	}

	// Determine the version token the same way resolution would.
	projectRoot := globaljson.FindProjectRoot(opts.projectDir)
	token, err := globaljson.ReadSdkVersion(globaljson.Path(projectRoot))
	if err != nil {
		return err
	}
	switch {
	case token != nil:
		report.Version = token.Value
		report.VersionSource = fmt.Sprintf("%s:%d:%d", token.File, token.Line, token.Column)
	case opts.alias != "":
		report.Version = opts.alias
		report.VersionSource = "--alias flag"
	default:
		report.Version = runtimeutil.DefaultAlias
	}

	resolver := runtimeutil.NewResolver()
	report.CandidateHomes = runtimeutil.CandidateHomes(resolver.Env)
	report.CandidatePaths, err = resolver.CandidatePaths(report.Version)
	if err != nil {
		return err
	}

	return cliout.Print(report, func() {
		cliout.Header("Host")
		cliout.Label("OS", report.Host.OS)
		cliout.Label("Platform", fmt.Sprintf("%s %s", report.Host.Platform, report.Host.PlatformVersion))
		cliout.Label("Arch", report.Host.Arch)

		cliout.Header("Environment")
		for _, key := range []string{
			runtimeutil.EnvRuntimeHome,
			runtimeutil.EnvLegacyRuntimeHome,
			runtimeutil.EnvHome,
			runtimeutil.EnvUserProfile,
		} {
			value := report.Environment[key]
			if value == "" {
				value = "(unset)"
			}
			cliout.Label(key, value)
		}

		cliout.Header("Requested version")
		cliout.Label("Version", report.Version)
		if report.VersionSource != "" {
			cliout.Label("Source", report.VersionSource)
		}

		cliout.Header("Search locations")
		for _, path := range report.CandidatePaths {
			cliout.Bullet("%s", path)
		}
	})
}
