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

import "fmt"

// Metric names a single probe in diagnostics.
type Metric string

// Metrics that can be probed for a device.
const (
	MetricHandle      Metric = "device handle"
	MetricName        Metric = "name"
	MetricUtilization Metric = "GPU utilization"
	MetricMemory      Metric = "memory utilization"
	MetricFanSpeed    Metric = "fan speed"
	MetricTemperature Metric = "temperature"
	MetricPowerUsage  Metric = "power usage"
	MetricPowerLimit  Metric = "power limit"
	MetricProcesses   Metric = "processes"
)

// InitError is returned when the device-management layer cannot be initialized
// or enumerated at all.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("Error while reading GPU information: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// MetricError is returned when a single probe fails for a device.
type MetricError struct {
	Device int
	Metric Metric
	Err    error
}

// NewMetricError creates a MetricError for the specified device and metric.
func NewMetricError(device int, metric Metric, err error) *MetricError {
	return &MetricError{Device: device, Metric: metric, Err: err}
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("Error while reading %s for GPU %d: %v", e.Metric, e.Device, e.Err)
}

func (e *MetricError) Unwrap() error {
	return e.Err
}

// ProcessEnumerationError is returned when the running processes of a device
// cannot be listed.
type ProcessEnumerationError struct {
	Device int
	Err    error
}

func (e *ProcessEnumerationError) Error() string {
	return fmt.Sprintf("Error while reading %s for GPU %d: %v", MetricProcesses, e.Device, e.Err)
}

func (e *ProcessEnumerationError) Unwrap() error {
	return e.Err
}
