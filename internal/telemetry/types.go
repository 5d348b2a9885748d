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

// DeviceCountUnavailable is the device count reported when the
// device-management layer could not be initialized or enumerated.
const DeviceCountUnavailable = -1

// Snapshot is the result of a single collection.
type Snapshot struct {
	// DeviceCount is the number of devices reported by the device-management
	// layer, or DeviceCountUnavailable.
	DeviceCount int
	Devices     []DeviceRecord
	// Diagnostics holds one error per failed probe, in collection order.
	Diagnostics []error
}

// DeviceRecord holds the telemetry of one device.
// A nil pointer marks a metric that could not be read.
type DeviceRecord struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	UtilizationPercent *uint32         `json:"utilizationPercent,omitempty"`
	Memory             *Memory         `json:"memory,omitempty"`
	FanSpeedPercent    *uint32         `json:"fanSpeedPercent,omitempty"`
	TemperatureCelsius *uint32         `json:"temperatureCelsius,omitempty"`
	PowerUsageWatts    *uint32         `json:"powerUsageWatts,omitempty"`
	PowerLimitWatts    *uint32         `json:"powerLimitWatts,omitempty"`
	Processes          []ProcessRecord `json:"processes"`
	// ProcessesUnknown is set when the running processes could not be listed.
	// Processes is empty in that case.
	ProcessesUnknown bool `json:"processesUnknown,omitempty"`
}

// Memory holds the used and total framebuffer memory of a device.
// The values are reported as read, even if Used exceeds Total.
type Memory struct {
	UsedBytes  uint64 `json:"usedBytes"`
	TotalBytes uint64 `json:"totalBytes"`
}

// ProcessRecord describes one process resident on a device.
type ProcessRecord struct {
	PID  int    `json:"pid"`
	Name string `json:"name"`
	// User is the owning account, nil if it could not be resolved.
	User *string `json:"user,omitempty"`
}

// InUse reports whether the device has running processes. known is false if
// the process list could not be read.
func (d *DeviceRecord) InUse() (inUse bool, known bool) {
	if d.ProcessesUnknown {
		return false, false
	}
	return len(d.Processes) > 0, true
}
