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

package telemetry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/wgpu/internal/logger"
	"github.com/NVIDIA/wgpu/internal/resource"
	rt "github.com/NVIDIA/wgpu/internal/resource/testing"
)

func ptr[T any](v T) *T {
	return &v
}

// fullRecord is the record produced for an rt.NewFullGPU device.
func fullRecord(id int, name string) DeviceRecord {
	return DeviceRecord{
		ID:                 id,
		Name:               name,
		UtilizationPercent: ptr[uint32](rt.DefaultUtilization),
		Memory:             &Memory{UsedBytes: rt.DefaultMemoryUsed, TotalBytes: rt.DefaultMemoryTotal},
		FanSpeedPercent:    ptr[uint32](rt.DefaultFanSpeed),
		TemperatureCelsius: ptr[uint32](rt.DefaultTemperature),
		PowerUsageWatts:    ptr[uint32](70),
		PowerLimitWatts:    ptr[uint32](250),
		Processes:          []ProcessRecord{},
	}
}

func TestCollectorIDsAreContiguous(t *testing.T) {
	for _, count := range []int{0, 1, 3, 8} {
		t.Run(fmt.Sprintf("%d devices", count), func(t *testing.T) {
			var devices []resource.Device
			for i := 0; i < count; i++ {
				devices = append(devices, rt.NewFullGPU(fmt.Sprintf("GPU %d", i)))
			}
			m := rt.NewManagerMockWithDevices(devices...)

			s, err := NewCollector(m, WithLogger(&logger.Recorder{})).Collect()
			require.NoError(t, err)
			require.Equal(t, count, s.DeviceCount)
			require.Len(t, s.Devices, count)
			for i, d := range s.Devices {
				require.Equal(t, i, d.ID)
			}
			require.Empty(t, s.Diagnostics)
			require.Len(t, m.InitCalls(), 1)
			require.Len(t, m.ShutdownCalls(), 1)
		})
	}
}

func TestCollectorProbeFailures(t *testing.T) {
	cause := fmt.Errorf("Not Supported")

	testCases := []struct {
		description string
		metric      resource.Metric
		clear       func(*DeviceRecord)
	}{
		{
			description: "name",
			metric:      resource.MetricName,
			clear:       func(d *DeviceRecord) { d.Name = "" },
		},
		{
			description: "utilization",
			metric:      resource.MetricUtilization,
			clear:       func(d *DeviceRecord) { d.UtilizationPercent = nil },
		},
		{
			description: "memory",
			metric:      resource.MetricMemory,
			clear:       func(d *DeviceRecord) { d.Memory = nil },
		},
		{
			description: "fan speed",
			metric:      resource.MetricFanSpeed,
			clear:       func(d *DeviceRecord) { d.FanSpeedPercent = nil },
		},
		{
			description: "temperature",
			metric:      resource.MetricTemperature,
			clear:       func(d *DeviceRecord) { d.TemperatureCelsius = nil },
		},
		{
			description: "power usage",
			metric:      resource.MetricPowerUsage,
			clear:       func(d *DeviceRecord) { d.PowerUsageWatts = nil },
		},
		{
			description: "power limit",
			metric:      resource.MetricPowerLimit,
			clear:       func(d *DeviceRecord) { d.PowerLimitWatts = nil },
		},
		{
			description: "processes",
			metric:      resource.MetricProcesses,
			clear:       func(d *DeviceRecord) { d.ProcessesUnknown = true },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			m := rt.NewManagerMockWithDevices(
				rt.NewFullGPU("GPU 0"),
				rt.NewFullGPU("GPU 1").WithErrorOn(tc.metric, cause),
				rt.NewFullGPU("GPU 2"),
			)

			s, err := NewCollector(m, WithLogger(&logger.Recorder{})).Collect()
			require.NoError(t, err)

			expected := fullRecord(1, "GPU 1")
			tc.clear(&expected)

			require.Equal(t, []DeviceRecord{fullRecord(0, "GPU 0"), expected, fullRecord(2, "GPU 2")}, s.Devices)

			require.Len(t, s.Diagnostics, 1)
			require.ErrorIs(t, s.Diagnostics[0], cause)
			require.Contains(t, s.Diagnostics[0].Error(), "GPU 1")
			require.Contains(t, s.Diagnostics[0].Error(), string(tc.metric))
		})
	}
}

func TestCollectorAllProbesFail(t *testing.T) {
	cause := fmt.Errorf("GPU is lost")
	d := rt.NewFullGPU("broken")
	for _, metric := range []resource.Metric{
		resource.MetricName,
		resource.MetricUtilization,
		resource.MetricMemory,
		resource.MetricFanSpeed,
		resource.MetricTemperature,
		resource.MetricPowerUsage,
		resource.MetricPowerLimit,
		resource.MetricProcesses,
	} {
		d.WithErrorOn(metric, cause)
	}

	s, err := NewCollector(rt.NewManagerMockWithDevices(d), WithLogger(&logger.Recorder{})).Collect()
	require.NoError(t, err)
	require.Equal(t, []DeviceRecord{{ID: 0, Processes: []ProcessRecord{}, ProcessesUnknown: true}}, s.Devices)

	var messages []string
	for _, e := range s.Diagnostics {
		messages = append(messages, e.Error())
	}
	require.Equal(t, []string{
		"Error while reading name for GPU 0: GPU is lost",
		"Error while reading GPU utilization for GPU 0: GPU is lost",
		"Error while reading memory utilization for GPU 0: GPU is lost",
		"Error while reading fan speed for GPU 0: GPU is lost",
		"Error while reading temperature for GPU 0: GPU is lost",
		"Error while reading power usage for GPU 0: GPU is lost",
		"Error while reading power limit for GPU 0: GPU is lost",
		"Error while reading processes for GPU 0: GPU is lost",
	}, messages)
}

func TestCollectorHandleFailure(t *testing.T) {
	m := rt.NewManagerMockWithDevices(
		rt.NewFullGPU("GPU 0"),
		rt.NewFullGPU("GPU 1"),
	).WithErrorOnHandle(0, fmt.Errorf("Unknown Error"))

	s, err := NewCollector(m, WithLogger(&logger.Recorder{})).Collect()
	require.NoError(t, err)
	require.Equal(t, 2, s.DeviceCount)
	require.Equal(t, []DeviceRecord{
		{ID: 0, Processes: []ProcessRecord{}, ProcessesUnknown: true},
		fullRecord(1, "GPU 1"),
	}, s.Devices)
	require.Len(t, s.Diagnostics, 1)
	require.EqualError(t, s.Diagnostics[0], "Error while reading device handle for GPU 0: Unknown Error")
}

func TestCollectorInitFailure(t *testing.T) {
	testCases := []struct {
		description string
		manager     *rt.ManagerMock
	}{
		{
			description: "init fails",
			manager:     rt.NewManagerMockWithDevices(rt.NewFullGPU("GPU 0")).WithErrorOnInit(fmt.Errorf("Driver Not Loaded")),
		},
		{
			description: "device count fails",
			manager:     rt.NewManagerMockWithDevices(rt.NewFullGPU("GPU 0")).WithErrorOnDeviceCount(fmt.Errorf("Driver Not Loaded")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			s, err := NewCollector(tc.manager, WithLogger(&logger.Recorder{})).Collect()

			var initErr *resource.InitError
			require.True(t, errors.As(err, &initErr))
			require.EqualError(t, err, "Error while reading GPU information: Driver Not Loaded")

			require.NotNil(t, s)
			require.Equal(t, DeviceCountUnavailable, s.DeviceCount)
			require.Empty(t, s.Devices)
			require.Empty(t, s.Diagnostics)
			require.Len(t, tc.manager.ShutdownCalls(), 1)
		})
	}
}

func TestCollectorProcesses(t *testing.T) {
	m := rt.NewManagerMockWithDevices(
		rt.NewFullGPU("GPU 0").WithProcesses(
			resource.ProcessInfo{PID: 300, Name: "train.py"},
			resource.ProcessInfo{PID: 100, Name: "infer"},
		),
	)

	s, err := NewCollector(m, WithLogger(&logger.Recorder{})).Collect()
	require.NoError(t, err)
	require.Equal(t, []ProcessRecord{
		{PID: 300, Name: "train.py"},
		{PID: 100, Name: "infer"},
	}, s.Devices[0].Processes)

	inUse, known := s.Devices[0].InUse()
	require.True(t, inUse)
	require.True(t, known)
}

func TestToWatts(t *testing.T) {
	testCases := []struct {
		milliwatts uint32
		watts      uint32
	}{
		{0, 0},
		{499, 0},
		{500, 1},
		{70400, 70},
		{70500, 71},
		{249999, 250},
		{4294967295, 4294967},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d mW", tc.milliwatts), func(t *testing.T) {
			require.Equal(t, tc.watts, *toWatts(&tc.milliwatts))
		})
	}
	require.Nil(t, toWatts(nil))
}
