// aimgr-platform - Release Platform Detection for aimgr
// Copyright (C) 2026 Hans M. Leitner
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package platform

import (
	"regexp"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		osName  string
		machine string
		want    string
	}{
		{"linux", "x86_64", "linux_amd64"},
		{"linux", "amd64", "linux_amd64"},
		{"linux", "aarch64", "linux_arm64"},
		{"linux", "arm64", "linux_arm64"},
		// Machines outside the matrix fall through to arm64 on linux.
		{"linux", "riscv64", "linux_arm64"},
		{"linux", "i686", "linux_arm64"},
		{"Linux", "X86_64", "linux_amd64"},
		{"darwin", "arm64", "darwin_arm64"},
		{"darwin", "x86_64", "darwin_amd64"},
		{"darwin", "i386", "darwin_amd64"},
		{"Darwin", "ARM64", "darwin_arm64"},
		{"windows", "AMD64", "windows_amd64"},
		{"windows", "x86_64", "windows_amd64"},
		{"windows", "arm64", "windows_arm64"},
		{"WINDOWS", "amd64", "windows_amd64"},
		{"freebsd", "x86_64", "unknown"},
		{"sunos", "sun4v", "unknown"},
		{"", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.osName+"_"+tt.machine, func(t *testing.T) {
			got := Normalize(tt.osName, tt.machine)
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.osName, tt.machine, got, tt.want)
			}
		})
	}
}

var identifierRe = regexp.MustCompile(`^(linux|darwin|windows)_(amd64|arm64)$`)

func TestNormalizeAlwaysWellFormed(t *testing.T) {
	oses := []string{"linux", "Darwin", "windows", "freebsd", "openbsd", "plan9", "MS-DOS", ""}
	machines := []string{"x86_64", "amd64", "arm64", "aarch64", "i686", "ppc64le", "s390x", ""}

	for _, o := range oses {
		for _, m := range machines {
			got := Normalize(o, m)
			if got != Unknown && !identifierRe.MatchString(got) {
				t.Errorf("Normalize(%q, %q) = %q, not a valid identifier", o, m, got)
			}
		}
	}
}

func TestDetect(t *testing.T) {
	first := Detect()
	second := Detect()

	if first != second {
		t.Errorf("Detect() not stable: %q then %q", first, second)
	}
	if first != Unknown && !identifierRe.MatchString(first) {
		t.Errorf("Detect() = %q, not a valid identifier", first)
	}
}

func TestFactsNonEmpty(t *testing.T) {
	osName, machine := Facts()
	if osName == "" {
		t.Error("Facts() returned empty OS name")
	}
	if machine == "" {
		t.Error("Facts() returned empty machine")
	}
}

func TestIsSupported(t *testing.T) {
	for _, id := range Supported() {
		if !IsSupported(id) {
			t.Errorf("IsSupported(%q) = false, want true", id)
		}
	}
	if IsSupported(Unknown) {
		t.Error("IsSupported(unknown) = true, want false")
	}
	if IsSupported("linux_riscv64") {
		t.Error("IsSupported(linux_riscv64) = true, want false")
	}
}
