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
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/pseudocompile/token"
)

// Tokens writes a table of toks to out, one row per token, followed by the
// number of tokens of each kind.
func (r Renderer) Tokens(out io.Writer, toks []token.Token) error {
	c := newStylesheet(r, out)
	header := [...]string{"TEXT", "KIND", "LINE", "COLUMN"}
	rows := make([][4]string, len(toks))
	widths := [4]int{}
	for i, h := range header {
		widths[i] = len(h)
	}
	counts := map[token.Kind]int{}
	for i, tok := range toks {
		rows[i] = [4]string{
			strconv.Quote(tok.Text),
			tok.Kind.String(),
			strconv.Itoa(tok.Pos.Line),
			strconv.Itoa(tok.Pos.Col),
		}
		for j, cell := range rows[i] {
			widths[j] = max(widths[j], uniseg.StringWidth(cell))
		}
		counts[tok.Kind]++
	}

	var buf strings.Builder
	writeRow := func(row [4]string, style func(string) string) {
		for j, cell := range row {
			if j < len(row)-1 {
				cell = padRight(cell, widths[j]+2)
			}
			buf.WriteString(style(cell))
		}
		buf.WriteByte('\n')
	}
	writeRow(header, c.accent)
	for _, row := range rows {
		writeRow(row, plain)
	}

	fmt.Fprintf(&buf, "\n%s %d\n", c.accent("total tokens:"), len(toks))
	if len(counts) > 0 {
		kinds := make([]token.Kind, 0, len(counts))
		kindWidth := 0
		for kind := range counts {
			kinds = append(kinds, kind)
			kindWidth = max(kindWidth, len(kind.String()))
		}
		sort.Slice(kinds, func(i, j int) bool {
			return kinds[i].String() < kinds[j].String()
		})
		for _, kind := range kinds {
			fmt.Fprintf(&buf, "  %s %d\n", padRight(kind.String()+":", kindWidth+1), counts[kind])
		}
	}

	_, err := io.WriteString(out, buf.String())
	return err
}
