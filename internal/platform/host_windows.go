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

//go:build windows

package platform

import (
	"os"
	"runtime"
)

// Facts returns the raw OS name and machine string. Windows has no uname;
// PROCESSOR_ARCHITECTURE is the closest OS-provided equivalent of the
// machine field (values like "AMD64" or "ARM64").
func Facts() (osName, machine string) {
	machine = os.Getenv("PROCESSOR_ARCHITECTURE")
	if machine == "" {
		machine = runtime.GOARCH
	}
	return "windows", machine
}
