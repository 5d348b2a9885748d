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

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/NVIDIA/wgpu/internal/telemetry"
)

// Placeholder is rendered in place of any value that could not be read.
const Placeholder = "N/A"

const bytesPerMiB = 1024 * 1024

// Watch selects the rows to highlight. A nil field matches nothing.
type Watch struct {
	GPU  *int
	User *string
}

// Highlighted reports whether the device is the watched GPU or runs a process
// of the watched user.
func (w Watch) Highlighted(d *telemetry.DeviceRecord) bool {
	if w.GPU != nil && d.ID == *w.GPU {
		return true
	}
	if w.User == nil {
		return false
	}
	for _, p := range d.Processes {
		if p.User != nil && *p.User == *w.User {
			return true
		}
	}
	return false
}

// writeTables writes the device summary, a blank line and the process table.
func writeTables(w io.Writer, devices []telemetry.DeviceRecord, watch Watch, styler Styler) error {
	highlights := make([]bool, len(devices))
	for i := range devices {
		highlights[i] = watch.Highlighted(&devices[i])
	}

	if err := summaryTable(devices, highlights).write(w, styler); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return processTable(devices, highlights).write(w, styler)
}

func summaryTable(devices []telemetry.DeviceRecord, highlights []bool) *table {
	t := &table{
		columns: []column{
			{header: "GPU", align: alignRight},
			{header: "Name", align: alignLeft},
			{header: "Util", align: alignRight},
			{header: "Memory Usage", align: alignRight},
			{header: "Memory Total", align: alignRight},
			{header: "Fan", align: alignRight},
			{header: "Temp", align: alignRight},
			{header: "Pwr:Usage/Cap", align: alignRight},
			{header: "In Use", align: alignRight},
		},
	}

	for i := range devices {
		d := &devices[i]

		used, total := Placeholder, Placeholder
		if d.Memory != nil {
			used = formatMiB(d.Memory.UsedBytes)
			total = formatMiB(d.Memory.TotalBytes)
		}

		t.addRow(highlights[i],
			strconv.Itoa(d.ID),
			d.Name,
			formatUnit(d.UtilizationPercent, "%"),
			used,
			total,
			formatUnit(d.FanSpeedPercent, "%"),
			formatUnit(d.TemperatureCelsius, "C"),
			formatUnit(d.PowerUsageWatts, "W")+" / "+formatUnit(d.PowerLimitWatts, "W"),
			formatInUse(d),
		)
	}
	return t
}

func processTable(devices []telemetry.DeviceRecord, highlights []bool) *table {
	t := &table{
		columns: []column{
			{header: "User", align: alignLeft},
			{header: "GPU", align: alignRight},
			{header: "Process", align: alignLeft},
		},
	}

	for i := range devices {
		for _, p := range devices[i].Processes {
			user := Placeholder
			if p.User != nil {
				user = *p.User
			}
			t.addRow(highlights[i], user, strconv.Itoa(devices[i].ID), p.Name)
		}
	}
	return t
}

func formatUnit(v *uint32, unit string) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatUint(uint64(*v), 10) + unit
}

// formatMiB truncates bytes to whole mebibytes.
func formatMiB(bytes uint64) string {
	return strconv.FormatUint(bytes/bytesPerMiB, 10) + " MiB"
}

func formatInUse(d *telemetry.DeviceRecord) string {
	inUse, known := d.InUse()
	switch {
	case !known:
		return Placeholder
	case inUse:
		return "Yes"
	default:
		return "No"
	}
}
