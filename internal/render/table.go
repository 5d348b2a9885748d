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
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	spacer    = "   "
	underline = "-"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

type column struct {
	header string
	align  alignment
}

type row struct {
	cells     []string
	highlight bool
}

// table is a set of self-sizing columns. Each column is as wide as its
// widest cell or header; nothing is truncated.
type table struct {
	columns []column
	rows    []row
}

func (t *table) addRow(highlight bool, cells ...string) {
	t.rows = append(t.rows, row{cells: cells, highlight: highlight})
}

func (t *table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = runewidth.StringWidth(c.header)
	}
	for _, r := range t.rows {
		for i, cell := range r.cells {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// write renders the header, the separator and every row. Highlighted rows are
// passed through the styler after they have been laid out.
func (t *table) write(w io.Writer, styler Styler) error {
	widths := t.widths()

	headers := make([]string, len(t.columns))
	separators := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = pad(c.header, widths[i], alignLeft, i == len(t.columns)-1)
		separators[i] = strings.Repeat(underline, widths[i])
	}

	lines := []string{
		strings.Join(headers, spacer),
		strings.Join(separators, spacer),
	}
	for _, r := range t.rows {
		cells := make([]string, len(r.cells))
		for i, cell := range r.cells {
			cells[i] = pad(cell, widths[i], t.columns[i].align, i == len(r.cells)-1)
		}
		line := strings.Join(cells, spacer)
		if r.highlight {
			line = styler.Highlight(line)
		}
		lines = append(lines, line)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// pad aligns s within width. A left-aligned last column is not padded so that
// lines carry no trailing blanks.
func pad(s string, width int, align alignment, last bool) string {
	fill := width - runewidth.StringWidth(s)
	if fill <= 0 {
		return s
	}
	switch {
	case align == alignRight:
		return strings.Repeat(" ", fill) + s
	case last:
		return s
	default:
		return s + strings.Repeat(" ", fill)
	}
}
