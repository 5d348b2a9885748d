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
	"github.com/NVIDIA/wgpu/internal/logger"
	"github.com/NVIDIA/wgpu/internal/resource"
)

// Collector builds a Snapshot of every device exposed by a resource.Manager.
type Collector struct {
	manager resource.Manager
	logger  logger.Interface
}

// Option is a function that configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger for the collector.
func WithLogger(log logger.Interface) Option {
	return func(c *Collector) {
		c.logger = log
	}
}

// NewCollector creates a collector for the specified manager.
func NewCollector(manager resource.Manager, opts ...Option) *Collector {
	c := &Collector{
		manager: manager,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.ToKlog
	}
	return c
}

// Collect initializes the manager, reads every device and shuts the manager down.
//
// A probe failure leaves the corresponding field absent and adds a diagnostic
// to the snapshot; it never stops collection. Only a failure to initialize or
// enumerate the manager is returned, as a *resource.InitError, in which case
// the snapshot holds no devices and DeviceCountUnavailable.
func (c *Collector) Collect() (*Snapshot, error) {
	s := &Snapshot{
		DeviceCount: DeviceCountUnavailable,
	}

	err := resource.WithManager(c.manager, c.logger, func(m resource.Manager) error {
		count, err := m.GetDeviceCount()
		if err != nil {
			return &resource.InitError{Err: err}
		}
		c.logger.Infof("Found %d device(s)", count)

		devices := make([]DeviceRecord, 0, count)
		for i := 0; i < count; i++ {
			devices = append(devices, c.collectDevice(m, i, s))
		}

		s.DeviceCount = count
		s.Devices = devices
		return nil
	})
	if err != nil {
		return s, err
	}

	return s, nil
}

func (c *Collector) collectDevice(m resource.Manager, id int, s *Snapshot) DeviceRecord {
	record := DeviceRecord{
		ID:        id,
		Processes: []ProcessRecord{},
	}

	diagnose := func(err error) {
		s.Diagnostics = append(s.Diagnostics, err)
	}

	d, err := m.GetDeviceByIndex(id)
	if err != nil {
		diagnose(resource.NewMetricError(id, resource.MetricHandle, err))
		record.ProcessesUnknown = true
		return record
	}

	if name := probe(id, resource.MetricName, d.GetName, diagnose); name != nil {
		record.Name = *name
	}
	record.UtilizationPercent = probe(id, resource.MetricUtilization, d.GetUtilization, diagnose)
	if memory := probe(id, resource.MetricMemory, d.GetMemoryInfo, diagnose); memory != nil {
		record.Memory = &Memory{UsedBytes: memory.Used, TotalBytes: memory.Total}
	}
	record.FanSpeedPercent = probe(id, resource.MetricFanSpeed, d.GetFanSpeed, diagnose)
	record.TemperatureCelsius = probe(id, resource.MetricTemperature, d.GetTemperature, diagnose)
	record.PowerUsageWatts = toWatts(probe(id, resource.MetricPowerUsage, d.GetPowerUsage, diagnose))
	record.PowerLimitWatts = toWatts(probe(id, resource.MetricPowerLimit, d.GetPowerLimit, diagnose))

	processes, err := d.GetRunningProcesses()
	if err != nil {
		diagnose(&resource.ProcessEnumerationError{Device: id, Err: err})
		record.ProcessesUnknown = true
		return record
	}
	for _, p := range processes {
		record.Processes = append(record.Processes, ProcessRecord{PID: p.PID, Name: p.Name})
	}

	return record
}

// probe calls get and returns a pointer to its value. On failure the error is
// passed to diagnose as a *resource.MetricError and nil is returned.
func probe[T any](id int, metric resource.Metric, get func() (T, error), diagnose func(error)) *T {
	v, err := get()
	if err != nil {
		diagnose(resource.NewMetricError(id, metric, err))
		return nil
	}
	return &v
}

// toWatts rounds a milliwatt reading to the nearest watt, halves rounding up.
func toWatts(milliwatts *uint32) *uint32 {
	if milliwatts == nil {
		return nil
	}
	w := uint32((uint64(*milliwatts) + 500) / 1000)
	return &w
}
