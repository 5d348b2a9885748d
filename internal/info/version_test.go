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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetVersionString(t *testing.T) {
	testCases := []struct {
		description string
		version     string
		gitCommit   string
		buildInfo   *debug.BuildInfo
		expected    []string
	}{
		{
			description: "no build information",
			expected:    []string{"unknown"},
		},
		{
			description: "linker flags take precedence",
			version:     "v0.1.0",
			gitCommit:   "abc123",
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.0.9"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "def456"}},
			},
			expected: []string{"v0.1.0", "commit: abc123"},
		},
		{
			description: "build information is used as a fallback",
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.0.9"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "def456"}},
			},
			expected: []string{"v0.0.9", "commit: def456"},
		},
		{
			description: "devel builds are unknown",
			buildInfo: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
			},
			expected: []string{"unknown"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			defer func(v, c string, r func() (*debug.BuildInfo, bool)) {
				version, gitCommit, readBuildInfo = v, c, r
			}(version, gitCommit, readBuildInfo)

			version = tc.version
			gitCommit = tc.gitCommit
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				return tc.buildInfo, tc.buildInfo != nil
			}

			expected := append(tc.expected, "go: "+runtime.Version())
			require.Equal(t, expected, strings.Split(GetVersionString(), "\n"))
		})
	}
}

func TestGetVersionStringExtra(t *testing.T) {
	lines := strings.Split(GetVersionString("nvml: 12.4"), "\n")
	require.Equal(t, "nvml: 12.4", lines[len(lines)-1])
}
