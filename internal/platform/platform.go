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

// Package platform normalizes the host operating system and CPU architecture
// into the identifier used by the aimgr release naming scheme.
package platform

import "strings"

// Identifiers the aimgr release matrix ships artifacts for.
const (
	LinuxAmd64   = "linux_amd64"
	LinuxArm64   = "linux_arm64"
	DarwinAmd64  = "darwin_amd64"
	DarwinArm64  = "darwin_arm64"
	WindowsAmd64 = "windows_amd64"
	WindowsArm64 = "windows_arm64"

	// Unknown is returned for operating systems outside the release matrix.
	// It carries no architecture suffix.
	Unknown = "unknown"
)

// Normalize maps a raw OS name and machine string to a platform identifier.
// Matching is case-insensitive and every input yields an identifier; there is
// no error path. The release matrix only ships amd64 and arm64, so on linux
// and windows any machine that is not x86_64/amd64 resolves to arm64, and on
// darwin anything that is not arm64 resolves to amd64.
func Normalize(osName, machine string) string {
	osName = strings.ToLower(osName)
	machine = strings.ToLower(machine)

	switch osName {
	case "linux":
		return "linux_" + archDefaultArm64(machine)
	case "darwin":
		return "darwin_" + archDefaultAmd64(machine)
	case "windows":
		return "windows_" + archDefaultArm64(machine)
	default:
		return Unknown
	}
}

func archDefaultArm64(machine string) string {
	if machine == "x86_64" || machine == "amd64" {
		return "amd64"
	}
	return "arm64"
}

func archDefaultAmd64(machine string) string {
	if machine == "arm64" {
		return "arm64"
	}
	return "amd64"
}

// Detect returns the identifier for the machine this process is running on.
func Detect() string {
	osName, machine := Facts()
	return Normalize(osName, machine)
}

// Supported returns the identifiers with published release artifacts.
func Supported() []string {
	return []string{
		LinuxAmd64, LinuxArm64,
		DarwinAmd64, DarwinArm64,
		WindowsAmd64, WindowsArm64,
	}
}

// IsSupported reports whether id names a platform with published artifacts.
func IsSupported(id string) bool {
	for _, p := range Supported() {
		if id == p {
			return true
		}
	}
	return false
}
