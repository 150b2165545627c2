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

//go:build !windows

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Facts returns the raw OS name and machine string reported by the kernel,
// e.g. ("Linux", "x86_64") or ("Darwin", "arm64"). If uname fails the
// compile-time runtime values stand in, so detection always produces an
// identifier.
func Facts() (osName, machine string) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS, runtime.GOARCH
	}
	return unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Machine[:])
}
