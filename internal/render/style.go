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

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styler decorates highlighted rows.
type Styler interface {
	Highlight(string) string
}

// ColorMode selects when highlighted rows are styled.
type ColorMode string

// Supported color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates the specified color mode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q: must be one of %v, %v or %v", s, ColorAuto, ColorAlways, ColorNever)
}

type plain struct{}

// Plain returns a styler that leaves rows unchanged.
func Plain() Styler {
	return plain{}
}

func (plain) Highlight(s string) string {
	return s
}

type highlighter struct {
	style lipgloss.Style
}

// NewHighlighter returns a styler that renders highlighted rows in red.
func NewHighlighter(out io.Writer) Styler {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.ANSI)
	return &highlighter{
		style: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (h *highlighter) Highlight(s string) string {
	return h.style.Render(s)
}

type fdWriter interface {
	Fd() uintptr
}

// NewStyler returns the styler for the specified mode. In auto mode rows are
// only styled when out is a terminal.
func NewStyler(mode ColorMode, out io.Writer) Styler {
	switch mode {
	case ColorAlways:
		return NewHighlighter(out)
	case ColorNever:
		return Plain()
	}

	f, ok := out.(fdWriter)
	if !ok {
		return Plain()
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return Plain()
	}
	return NewHighlighter(out)
}
