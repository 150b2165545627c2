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

// Package artifact builds aimgr release asset names and download URLs from a
// platform identifier. It constructs strings only; nothing here performs
// network access.
package artifact

import (
	"fmt"
	"strings"

	"github.com/hans-m-leitner/aimgr-platform/internal/platform"
)

const repoOwner = "hans-m-leitner"
const repoName = "ai-config-manager"

// Name returns the release asset name for a version and platform identifier,
// e.g. "aimgr_0.1.1_linux_amd64.tar.gz". Windows assets ship zipped. A
// platform without published artifacts has no asset name; Name returns "".
func Name(version, platformID string) string {
	if !platform.IsSupported(platformID) {
		return ""
	}
	ext := "tar.gz"
	if strings.HasPrefix(platformID, "windows_") {
		ext = "zip"
	}
	return fmt.Sprintf("aimgr_%s_%s.%s", strings.TrimPrefix(version, "v"), platformID, ext)
}

// ChecksumsName returns the checksum manifest asset name for a version.
func ChecksumsName(version string) string {
	return fmt.Sprintf("aimgr_%s_checksums.txt", strings.TrimPrefix(version, "v"))
}

// DownloadURL returns the GitHub release download URL for the asset, or ""
// when the platform has no published artifact.
func DownloadURL(version, platformID string) string {
	name := Name(version, platformID)
	if name == "" {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s/releases/download/v%s/%s",
		repoOwner, repoName, strings.TrimPrefix(version, "v"), name)
}
