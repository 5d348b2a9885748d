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

package resource

//go:generate moq -stub -out manager_mock.go . Manager
//go:generate moq -stub -out device_mock.go . Device

// Manager defines an interface for the device-management layer.
// Init and Shutdown are process-wide and must be paired exactly once; see WithManager.
type Manager interface {
	Init() error
	Shutdown() error
	GetDeviceCount() (int, error)
	GetDeviceByIndex(int) (Device, error)
}

// Device defines the probes that can be issued against a single device.
// Every probe fails independently of the others.
type Device interface {
	GetName() (string, error)
	GetUtilization() (uint32, error)
	GetMemoryInfo() (MemoryInfo, error)
	GetFanSpeed() (uint32, error)
	GetTemperature() (uint32, error)
	// GetPowerUsage returns the current draw in milliwatts.
	GetPowerUsage() (uint32, error)
	// GetPowerLimit returns the enforced power limit in milliwatts.
	GetPowerLimit() (uint32, error)
	GetRunningProcesses() ([]ProcessInfo, error)
}

// MemoryInfo holds the framebuffer memory of a device in bytes.
type MemoryInfo struct {
	Used  uint64
	Total uint64
}

// ProcessInfo describes a process the device reports as resident.
type ProcessInfo struct {
	PID  int
	Name string
}
