/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package info

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// version is set with -ldflags "-X github.com/NVIDIA/wgpu/internal/info.version=..."
var version = ""

// gitCommit is the hash that the binary was built from.
var gitCommit = ""

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Version returns the release version of wgpu. Without a linker-provided
// version it falls back to the main module version recorded by go install.
func Version() string {
	if version != "" {
		return version
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "unknown"
}

// Commit returns the VCS revision wgpu was built from, if known.
func Commit() string {
	if gitCommit != "" {
		return gitCommit
	}
	bi, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// GetVersionString returns the string shown by --version.
func GetVersionString(more ...string) string {
	v := []string{Version()}
	if commit := Commit(); commit != "" {
		v = append(v, "commit: "+commit)
	}
	v = append(v, "go: "+runtime.Version())
	v = append(v, more...)
	return strings.Join(v, "\n")
}
