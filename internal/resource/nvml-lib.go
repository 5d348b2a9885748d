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

type nvmlManager struct {
	nvml.Interface
	logger logger.Interface
}

var _ Manager = (*nvmlManager)(nil)

// NewNVMLManager creates a new manager that uses NVML to query devices
func NewNVMLManager(nvmllib nvml.Interface, log logger.Interface) Manager {
	if log == nil {
		log = logger.ToKlog
	}
	return &nvmlManager{
		Interface: nvmllib,
		logger:    log,
	}
}

// Init initialises the library
func (m *nvmlManager) Init() error {
	ret := m.Interface.Init()
	if ret != nvml.SUCCESS {
		return ret
	}
	return nil
}

// Shutdown shuts down the library
func (m *nvmlManager) Shutdown() error {
	ret := m.Interface.Shutdown()
	if ret != nvml.SUCCESS {
		return ret
	}
	return nil
}

// GetDeviceCount returns the number of devices visible to NVML.
func (m *nvmlManager) GetDeviceCount() (int, error) {
	count, ret := m.Interface.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return 0, ret
	}
	return count, nil
}

// GetDeviceByIndex returns the device with the specified NVML index.
func (m *nvmlManager) GetDeviceByIndex(i int) (Device, error) {
	handle, ret := m.Interface.DeviceGetHandleByIndex(i)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	d := &nvmlDevice{
		Device:  handle,
		nvmllib: m.Interface,
		logger:  m.logger,
	}
	return d, nil
}
