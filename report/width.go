// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// expandTabs replaces each tab in line with the spaces needed to reach the
// next tabstop, so that the line lines up with carets drawn under it.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var out strings.Builder
	column := 0
	for line != "" {
		next, rest, haveTab := strings.Cut(line, "\t")
		out.WriteString(next)
		column += uniseg.StringWidth(next)
		if haveTab {
			tab := TabstopWidth - (column % TabstopWidth)
			out.WriteString(strings.Repeat(" ", tab))
			column += tab
		}
		line = rest
	}
	return out.String()
}

// columnWidth returns the display width of the first col runes of line,
// after tab expansion. This is where a caret for column col is drawn.
func columnWidth(line string, col int) int {
	runes := 0
	for i := range line {
		if runes == col {
			return uniseg.StringWidth(expandTabs(line[:i]))
		}
		runes++
	}
	// past the end of the line, as for the end of input
	return uniseg.StringWidth(expandTabs(line)) + (col - runes)
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
