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

package attribution

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/wgpu/internal/logger"
	"github.com/NVIDIA/wgpu/internal/telemetry"
)

func users(devices []telemetry.DeviceRecord) [][]string {
	var out [][]string
	for _, d := range devices {
		var names []string
		for _, p := range d.Processes {
			if p.User == nil {
				names = append(names, "<nil>")
				continue
			}
			names = append(names, *p.User)
		}
		out = append(out, names)
	}
	return out
}

func TestResolve(t *testing.T) {
	owners := map[int]string{
		1234: "1000",
		2345: "1001",
		3456: "1000",
		4567: "9999",
	}
	accounts := map[string]string{
		"1000": "alice",
		"1001": "bob",
	}

	lookups := map[string]int{}
	recorder := &logger.Recorder{}
	r := NewResolver(
		WithLogger(recorder),
		WithUIDLookup(func(pid int) (string, error) {
			uid, ok := owners[pid]
			if !ok {
				return "", fmt.Errorf("no such process")
			}
			return uid, nil
		}),
		WithUserLookup(func(uid string) (string, error) {
			lookups[uid]++
			name, ok := accounts[uid]
			if !ok {
				return "", user.UnknownUserIdError(9999)
			}
			return name, nil
		}),
	)

	devices := []telemetry.DeviceRecord{
		{ID: 0, Processes: []telemetry.ProcessRecord{{PID: 1234, Name: "train.py"}, {PID: 5678, Name: "gone"}}},
		{ID: 1, Processes: []telemetry.ProcessRecord{}},
		{ID: 2, Processes: []telemetry.ProcessRecord{{PID: 2345}, {PID: 3456}, {PID: 4567}}},
	}

	r.Resolve(devices)

	require.Equal(t, [][]string{
		{"alice", "<nil>"},
		nil,
		{"bob", "alice", "<nil>"},
	}, users(devices))

	require.Equal(t, 1, lookups["1000"], "user names are looked up once per uid")
	require.Len(t, recorder.Debugs, 2)
	require.Empty(t, recorder.Warnings)
}

func TestProcfsLookup(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "1234")
	require.NoError(t, os.MkdirAll(dir, 0755))
	status := "Name:\ttrain.py\nUmask:\t0022\nState:\tS (sleeping)\nTgid:\t1234\nPid:\t1234\nPPid:\t1\nUid:\t1000\t1001\t1001\t1001\nGid:\t1000\t1000\t1000\t1000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(status), 0644))

	lookup := newProcfsLookup(root)

	uid, err := lookup(1234)
	require.NoError(t, err)
	require.Equal(t, "1001", uid)

	_, err = lookup(4321)
	require.Error(t, err)
}

func TestProcfsLookupMissingRoot(t *testing.T) {
	lookup := newProcfsLookup(filepath.Join(t.TempDir(), "missing"))

	_, err := lookup(1)
	require.ErrorContains(t, err, "error opening proc filesystem")
}

func TestResolveCurrentProcess(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires a proc filesystem")
	}
	expected, err := user.LookupId(strconv.Itoa(os.Geteuid()))
	if err != nil {
		t.Skipf("current user has no account entry: %v", err)
	}

	devices := []telemetry.DeviceRecord{
		{Processes: []telemetry.ProcessRecord{{PID: os.Getpid()}}},
	}
	NewResolver(WithLogger(&logger.Recorder{})).Resolve(devices)

	require.NotNil(t, devices[0].Processes[0].User)
	require.Equal(t, expected.Username, *devices[0].Processes[0].User)
}
