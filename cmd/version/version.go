// Package version reports the build version of the sbva binary, read
// from the module's embedded build info rather than a linker-injected
// string, so a plain `go install` still produces a useful version.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// String returns the module version recorded by the Go toolchain at
// build time. For a development build it returns the VCS revision
// instead (see revision), and "(unknown)" if the binary carries no
// build info.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(unknown)"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return revision(info)
}

// revision returns the vcs.revision build setting, or "(devel)" if the
// binary carries none (e.g. built outside a checkout).
func revision(info *debug.BuildInfo) string {
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return "(devel)"
}

// compilationEnv summarizes the toolchain and platform a binary was
// built with, mirroring sbva.cpp's get_compilation_env.
func compilationEnv(info *debug.BuildInfo) string {
	env := info.GoVersion
	for _, setting := range info.Settings {
		if setting.Key == "GOOS" || setting.Key == "GOARCH" {
			env += " " + setting.Value
		}
	}
	return env
}

// NewVersionCommand builds the "version" subcommand, reporting the
// same version/revision/compilation-environment triad sbva.cpp exposes
// through get_version_tag/get_version_sha1/get_compilation_env.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "(unknown)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", String())
			fmt.Fprintf(cmd.OutOrStdout(), "revision: %s\n", revision(info))
			fmt.Fprintf(cmd.OutOrStdout(), "compiled with: %s\n", compilationEnv(info))
			return nil
		},
	}
}
