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
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/NVIDIA/wgpu/internal/telemetry"
)

// Format is the output format of a report.
type Format string

// Supported output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates the specified output format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid output format %q: must be one of %v, %v or %v", s, FormatTable, FormatJSON, FormatYAML)
}

// Renderer writes a report for a collected snapshot.
// Rendering never modifies the snapshot.
type Renderer struct {
	format Format
	watch  Watch
	styler Styler
}

// Option is a function that configures a Renderer.
type Option func(*Renderer)

// WithFormat sets the output format. The default is FormatTable.
func WithFormat(format Format) Option {
	return func(r *Renderer) {
		r.format = format
	}
}

// WithWatchGPU highlights the device with the specified id.
func WithWatchGPU(id int) Option {
	return func(r *Renderer) {
		r.watch.GPU = &id
	}
}

// WithWatchUser highlights the devices running processes of the specified user.
func WithWatchUser(name string) Option {
	return func(r *Renderer) {
		r.watch.User = &name
	}
}

// WithStyler sets how highlighted rows are decorated. The default is Plain.
func WithStyler(styler Styler) Option {
	return func(r *Renderer) {
		r.styler = styler
	}
}

// NewRenderer creates a renderer with the specified options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		format: FormatTable,
		styler: Plain(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the report for the snapshot to w.
func (r *Renderer) Render(w io.Writer, s *telemetry.Snapshot) error {
	switch r.format {
	case FormatJSON:
		output, err := json.MarshalIndent(r.document(s), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling report to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	case FormatYAML:
		output, err := yaml.Marshal(r.document(s))
		if err != nil {
			return fmt.Errorf("error marshalling report to YAML: %w", err)
		}
		_, err = w.Write(output)
		return err
	default:
		return writeTables(w, s.Devices, r.watch, r.styler)
	}
}

type document struct {
	DeviceCount int              `json:"deviceCount"`
	Devices     []deviceDocument `json:"devices"`
}

type deviceDocument struct {
	telemetry.DeviceRecord
	Highlighted bool `json:"highlighted"`
}

func (r *Renderer) document(s *telemetry.Snapshot) document {
	doc := document{
		DeviceCount: s.DeviceCount,
		Devices:     make([]deviceDocument, 0, len(s.Devices)),
	}
	for i := range s.Devices {
		doc.Devices = append(doc.Devices, deviceDocument{
			DeviceRecord: s.Devices[i],
			Highlighted:  r.watch.Highlighted(&s.Devices[i]),
		})
	}
	return doc
}
