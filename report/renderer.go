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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bufbuild/pseudocompile"
	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/reporter"
)

// ruleWidth is the width of the horizontal rules that frame a report.
const ruleWidth = 80

// Renderer configures how reports are rendered.
type Renderer struct {
	// If set, errors are printed one per line, without source excerpts.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// If set, the report includes a drawing of the syntax tree.
	ShowTree bool

	// If set, the report includes the JSON projection of the syntax tree.
	ShowJSON bool
}

// Render writes a report on res to out. The source is the text that was
// analyzed; it is used to print the lines that errors refer to, and may be
// empty, in which case no excerpts are printed.
//
// The returned error is an error writing to out.
func (r Renderer) Render(out io.Writer, title string, res *pseudocompile.Result, source string) error {
	c := newStylesheet(r, out)
	var buf strings.Builder

	rule := c.accent(strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, rule)

	if res.Success {
		fmt.Fprintln(&buf, c.ok("analysis succeeded"))
	} else {
		fmt.Fprintln(&buf, c.err("encountered "+pluralize(len(res.Errors), "error")))
	}
	fmt.Fprintf(&buf, "\n%s %d\n", c.accent("tokens:"), res.TokenCount())

	if len(res.Errors) > 0 {
		buf.WriteByte('\n')
		// The lexer skips a leading byte order mark, so columns start after it.
		lines := strings.Split(strings.TrimPrefix(source, "\uFEFF"), "\n")
		diags := res.Diagnostics
		for _, msg := range res.Errors {
			var diag reporter.ErrorWithPos
			if len(diags) > 0 && diags[0].Error() == msg {
				diag, diags = diags[0], diags[1:]
			}
			r.diagnostic(&buf, &c, msg, diag, lines)
		}
	}

	if res.AST != nil && r.ShowTree {
		fmt.Fprintf(&buf, "\n%s\n", c.accent("syntax tree:"))
		if err := ast.Fprint(&buf, res.AST); err != nil {
			return err
		}
	}

	if res.AST != nil && r.ShowJSON {
		data, err := json.MarshalIndent(res.Projection(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "\n%s\n%s\n", c.accent("json:"), data)
	}

	_, err := io.WriteString(out, buf.String())
	return err
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(title string, res *pseudocompile.Result, source string) string {
	var buf strings.Builder
	_ = r.Render(&buf, title, res, source)
	return buf.String()
}

// diagnostic renders a single error. If the error has a position and the
// source line is known, the line is quoted with a caret under the column.
func (r Renderer) diagnostic(buf *strings.Builder, c *stylesheet, msg string, diag reporter.ErrorWithPos, lines []string) {
	if diag == nil {
		fmt.Fprintf(buf, "%s %s\n", c.err("error:"), msg)
		return
	}
	pos := diag.GetPosition()
	if r.Compact {
		fmt.Fprintf(buf, "%s %s\n", c.err("error:"), msg)
		return
	}

	fmt.Fprintf(buf, "%s %v\n", c.err("error:"), diag.Unwrap())
	if pos.Line <= 0 || pos.Line > len(lines) || (len(lines) == 1 && lines[0] == "") {
		fmt.Fprintf(buf, " %s %s\n\n", c.accent("-->"), pos)
		return
	}

	line := strings.TrimSuffix(lines[pos.Line-1], "\r")
	lineno := strconv.Itoa(pos.Line)
	gutter := strings.Repeat(" ", len(lineno))
	bar := c.accent(gutter + " |")

	fmt.Fprintf(buf, "%s%s %s\n", gutter, c.accent("-->"), pos)
	fmt.Fprintln(buf, bar)
	fmt.Fprintf(buf, "%s %s\n", c.accent(lineno+" |"), expandTabs(line))
	fmt.Fprintf(buf, "%s %s%s\n\n", bar, strings.Repeat(" ", columnWidth(line, pos.Col)), c.caret("^"))
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}
