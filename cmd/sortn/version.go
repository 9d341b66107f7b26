package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// readBuildInfo resolves version information.
// Priority: ldflags > debug.ReadBuildInfo > placeholder.
func readBuildInfo() buildInfo {
	bi := buildInfo{Version: version, Commit: commit, Date: date}

	if info, ok := debug.ReadBuildInfo(); ok {
		if bi.Version == "" {
			bi.Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = shortRevision(setting.Value)
				}
			case "vcs.time":
				if bi.Date == "" {
					bi.Date = setting.Value
				}
			}
		}
	}

	if bi.Version == "" {
		bi.Version = "(devel)"
	}
	if bi.Commit == "" {
		bi.Commit = "unknown"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}

// shortRevision abbreviates a VCS revision to seven characters.
func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// getVersion returns the version string shown by --version.
func getVersion() string {
	return readBuildInfo().Version
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of sortn.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bi := readBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "sortn version %s\n", bi.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", bi.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", bi.Date)
		},
	}
}
