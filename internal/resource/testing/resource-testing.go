/**
# Copyright (c) 2022, NVIDIA CORPORATION.  All rights reserved.
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

package testing

import (
	"fmt"

	"github.com/NVIDIA/wgpu/internal/resource"
)

// Values reported by a device created with NewFullGPU.
const (
	DefaultUtilization  = 42
	DefaultMemoryUsed   = 2 * 1024 * 1024 * 1024
	DefaultMemoryTotal  = 16 * 1024 * 1024 * 1024
	DefaultFanSpeed     = 30
	DefaultTemperature  = 55
	DefaultPowerUsageMW = 70400
	DefaultPowerLimitMW = 250000
)

// DeviceMock provides an alias that allows for additional functions to be defined.
type DeviceMock struct {
	resource.DeviceMock
}

// NewFullGPU creates a device for which every probe succeeds and no processes are running.
func NewFullGPU(name string) *DeviceMock {
	d := DeviceMock{resource.DeviceMock{
		GetNameFunc:        func() (string, error) { return name, nil },
		GetUtilizationFunc: func() (uint32, error) { return DefaultUtilization, nil },
		GetMemoryInfoFunc: func() (resource.MemoryInfo, error) {
			return resource.MemoryInfo{Used: DefaultMemoryUsed, Total: DefaultMemoryTotal}, nil
		},
		GetFanSpeedFunc:         func() (uint32, error) { return DefaultFanSpeed, nil },
		GetTemperatureFunc:      func() (uint32, error) { return DefaultTemperature, nil },
		GetPowerUsageFunc:       func() (uint32, error) { return DefaultPowerUsageMW, nil },
		GetPowerLimitFunc:       func() (uint32, error) { return DefaultPowerLimitMW, nil },
		GetRunningProcessesFunc: func() ([]resource.ProcessInfo, error) { return nil, nil },
	}}
	return &d
}

// WithMemory sets the used and total memory in bytes reported by the device.
func (d *DeviceMock) WithMemory(used, total uint64) *DeviceMock {
	d.GetMemoryInfoFunc = func() (resource.MemoryInfo, error) {
		return resource.MemoryInfo{Used: used, Total: total}, nil
	}
	return d
}

// WithProcesses sets the processes reported as running on the device.
func (d *DeviceMock) WithProcesses(processes ...resource.ProcessInfo) *DeviceMock {
	d.GetRunningProcessesFunc = func() ([]resource.ProcessInfo, error) {
		return processes, nil
	}
	return d
}

// WithErrorOn makes the probe for the specified metric fail with err.
func (d *DeviceMock) WithErrorOn(metric resource.Metric, err error) *DeviceMock {
	switch metric {
	case resource.MetricName:
		d.GetNameFunc = func() (string, error) { return "", err }
	case resource.MetricUtilization:
		d.GetUtilizationFunc = func() (uint32, error) { return 0, err }
	case resource.MetricMemory:
		d.GetMemoryInfoFunc = func() (resource.MemoryInfo, error) { return resource.MemoryInfo{}, err }
	case resource.MetricFanSpeed:
		d.GetFanSpeedFunc = func() (uint32, error) { return 0, err }
	case resource.MetricTemperature:
		d.GetTemperatureFunc = func() (uint32, error) { return 0, err }
	case resource.MetricPowerUsage:
		d.GetPowerUsageFunc = func() (uint32, error) { return 0, err }
	case resource.MetricPowerLimit:
		d.GetPowerLimitFunc = func() (uint32, error) { return 0, err }
	case resource.MetricProcesses:
		d.GetRunningProcessesFunc = func() ([]resource.ProcessInfo, error) { return nil, err }
	default:
		panic(fmt.Sprintf("unexpected metric %q", metric))
	}
	return d
}

// ManagerMock provides an alias that allows for additional functions to be defined.
type ManagerMock struct {
	resource.ManagerMock
}

// NewManagerMockWithDevices creates a mocked manager with the specified devices
func NewManagerMockWithDevices(devices ...resource.Device) *ManagerMock {
	manager := ManagerMock{resource.ManagerMock{
		InitFunc:     func() error { return nil },
		ShutdownFunc: func() error { return nil },
		GetDeviceCountFunc: func() (int, error) {
			return len(devices), nil
		},
		GetDeviceByIndexFunc: func(i int) (resource.Device, error) {
			if i < 0 || i >= len(devices) {
				return nil, fmt.Errorf("invalid device index %d", i)
			}
			return devices[i], nil
		},
	}}
	return &manager
}

// WithErrorOnInit sets the Init function for the ManagerMock to error if called.
func (m *ManagerMock) WithErrorOnInit(err error) *ManagerMock {
	m.InitFunc = func() error {
		return err
	}
	return m
}

// WithErrorOnDeviceCount makes device enumeration fail with err.
func (m *ManagerMock) WithErrorOnDeviceCount(err error) *ManagerMock {
	m.GetDeviceCountFunc = func() (int, error) {
		return 0, err
	}
	return m
}

// WithErrorOnHandle makes acquiring the handle of the device at index fail with err.
func (m *ManagerMock) WithErrorOnHandle(index int, err error) *ManagerMock {
	get := m.GetDeviceByIndexFunc
	m.GetDeviceByIndexFunc = func(i int) (resource.Device, error) {
		if i == index {
			return nil, err
		}
		return get(i)
	}
	return m
}
