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

package resource

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/NVIDIA/wgpu/internal/logger"
)

type nvmlDevice struct {
	nvml.Device
	nvmllib nvml.Interface
	logger  logger.Interface
}

var _ Device = (*nvmlDevice)(nil)

// GetName returns the device name / model.
func (d *nvmlDevice) GetName() (string, error) {
	name, ret := d.Device.GetName()
	if ret != nvml.SUCCESS {
		return "", ret
	}
	return name, nil
}

// GetUtilization returns the percentage of time a kernel was executing on the GPU.
func (d *nvmlDevice) GetUtilization() (uint32, error) {
	rates, ret := d.Device.GetUtilizationRates()
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return rates.Gpu, nil
}

// GetMemoryInfo returns the used and total framebuffer memory in bytes.
func (d *nvmlDevice) GetMemoryInfo() (MemoryInfo, error) {
	info, ret := d.Device.GetMemoryInfo()
	if ret != nvml.SUCCESS {
		return MemoryInfo{}, ret
	}
	return MemoryInfo{Used: info.Used, Total: info.Total}, nil
}

// GetFanSpeed returns the intended fan speed as a percentage.
func (d *nvmlDevice) GetFanSpeed() (uint32, error) {
	speed, ret := d.Device.GetFanSpeed()
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return speed, nil
}

// GetTemperature returns the core temperature in degrees Celsius.
func (d *nvmlDevice) GetTemperature() (uint32, error) {
	temp, ret := d.Device.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return temp, nil
}

// GetPowerUsage returns the power draw in milliwatts.
func (d *nvmlDevice) GetPowerUsage() (uint32, error) {
	usage, ret := d.Device.GetPowerUsage()
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return usage, nil
}

// GetPowerLimit returns the enforced power limit in milliwatts.
func (d *nvmlDevice) GetPowerLimit() (uint32, error) {
	limit, ret := d.Device.GetEnforcedPowerLimit()
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return limit, nil
}

// GetRunningProcesses returns the compute processes on the device in the order
// reported by NVML. A process whose name cannot be read is kept with an empty name.
func (d *nvmlDevice) GetRunningProcesses() ([]ProcessInfo, error) {
	infos, ret := d.Device.GetComputeRunningProcesses()
	if ret != nvml.SUCCESS {
		return nil, ret
	}

	var processes []ProcessInfo
	for _, info := range infos {
		pid := int(info.Pid)
		name, ret := d.nvmllib.SystemGetProcessName(pid)
		if ret != nvml.SUCCESS {
			d.logger.Debugf("Failed to get name of process %d: %v", pid, ret)
			name = ""
		}
		processes = append(processes, ProcessInfo{PID: pid, Name: name})
	}
	return processes, nil
}
