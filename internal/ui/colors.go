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

// Package ui provides colored terminal output for the info command.
package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes, blanked when stdout is not a terminal.
var (
	Cyan   = "\033[0;36m"
	Green  = "\033[0;32m"
	Yellow = "\033[0;33m"
	Dim    = "\033[2m"
	NC     = "\033[0m" // No Color / Reset
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		Cyan = ""
		Green = ""
		Yellow = ""
		Dim = ""
		NC = ""
	}
}

// Cecho prints colored text to stdout.
func Cecho(msg, color string) {
	fmt.Printf("%s%s%s\n", color, msg, NC)
}
