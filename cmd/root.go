// aimgr-platform - Release Platform Detection for aimgr
// Copyright (C) 2026 Hans M. Leitner
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"os"

	"github.com/hans-m-leitner/aimgr-platform/internal/platform"
	"github.com/spf13/cobra"
)

// Version is set by ldflags at build time.
var Version = "0.1.1"

var rootCmd = &cobra.Command{
	Use:   "aimgr-platform",
	Short: "Detect the aimgr release platform",
	Long:  "aimgr-platform – Print the normalized platform identifier used to select an aimgr release artifact",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// The bare invocation prints exactly one line and always succeeds.
		fmt.Fprintln(cmd.OutOrStdout(), platform.Detect())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aimgr-platform version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("aimgr-platform version {{.Version}}\n")
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
