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
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/NVIDIA/wgpu/internal/logger"
)

// PlatformDetector reports whether the host exposes NVML.
// It is satisfied by the go-nvlib info.Interface.
type PlatformDetector interface {
	HasNvml() (bool, string)
}

// NewManager is a factory method that creates a resource Manager for the current host.
// Hosts without NVML get a manager whose Init fails, so that the caller reports
// the device-management layer as unreachable.
func NewManager(infolib PlatformDetector, nvmllib nvml.Interface, log logger.Interface) Manager {
	if log == nil {
		log = logger.ToKlog
	}

	hasNVML, reason := infolib.HasNvml()
	if !hasNVML {
		log.Infof("Detected non-NVML platform: %v", reason)
		return NewUnavailableManager(fmt.Errorf("NVML not available: %v", reason))
	}

	log.Infof("Detected NVML platform: %v", reason)
	return NewNVMLManager(nvmllib, log)
}
