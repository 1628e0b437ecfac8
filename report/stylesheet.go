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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// stylesheet is the styles used for pretty-rendering reports. Each field
// maps text to its styled form; without color, every field is the identity.
type stylesheet struct {
	// Errors and failures.
	err func(string) string
	// Success.
	ok func(string) string
	// Line numbers, gutters, arrows and headings, to clearly separate them
	// from the source code.
	accent func(string) string
	// The caret under an error.
	caret func(string) string
}

func plain(s string) string { return s }

func newStylesheet(r Renderer, out io.Writer) stylesheet {
	if !r.Colorize {
		return stylesheet{err: plain, ok: plain, accent: plain, caret: plain}
	}

	// Colorize asks for color even when out is not a terminal.
	lr := lipgloss.NewRenderer(out)
	lr.SetColorProfile(termenv.ANSI)
	render := func(style lipgloss.Style) func(string) string {
		return func(s string) string { return style.Render(s) }
	}
	return stylesheet{
		// Red.
		err: render(lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)),
		// Green.
		ok: render(lr.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)),
		// Blue.
		accent: render(lr.NewStyle().Foreground(lipgloss.Color("12"))),
		// Red, not bold.
		caret: render(lr.NewStyle().Foreground(lipgloss.Color("9"))),
	}
}
