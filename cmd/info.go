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

	"github.com/hans-m-leitner/aimgr-platform/internal/artifact"
	"github.com/hans-m-leitner/aimgr-platform/internal/platform"
	"github.com/hans-m-leitner/aimgr-platform/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show host platform and release artifact information",
	Run: func(cmd *cobra.Command, args []string) {
		osName, machine := platform.Facts()
		id := platform.Detect()

		ui.Cecho("Host", ui.Cyan)
		fmt.Println()
		fmt.Printf("  %-20s %s\n", "Version:", Version)
		fmt.Printf("  %-20s %s\n", "OS name:", osName)
		fmt.Printf("  %-20s %s\n", "Machine:", machine)
		fmt.Printf("  %-20s %s\n", "Platform:", id)
		fmt.Println()

		ui.Cecho("Release Artifact", ui.Cyan)
		fmt.Println()
		if name := artifact.Name(Version, id); name != "" {
			fmt.Printf("  %-20s %s\n", "Asset:", name)
			fmt.Printf("  %-20s %s\n", "Checksums:", artifact.ChecksumsName(Version))
			fmt.Printf("  %-20s %s\n", "URL:", artifact.DownloadURL(Version, id))
		} else {
			fmt.Printf("  %sNo artifact is published for this platform.%s\n", ui.Yellow, ui.NC)
		}
		fmt.Println()

		ui.Cecho("Supported Platforms", ui.Cyan)
		fmt.Println()
		for _, p := range platform.Supported() {
			if p == id {
				fmt.Printf("  %s• %s (current)%s\n", ui.Green, p, ui.NC)
			} else {
				fmt.Printf("  %s• %s%s\n", ui.Dim, p, ui.NC)
			}
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
