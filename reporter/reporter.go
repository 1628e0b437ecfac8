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

package reporter

import (
	"errors"
	"sync"

	"github.com/bufbuild/pseudocompile/token"
)

// ErrorReporter is responsible for reporting the given error. If the reporter
// returns a non-nil error, the current stage aborts with that error. If the
// reporter returns nil, stages that can keep going (the structural validator)
// continue, so that as many problems as possible are reported.
type ErrorReporter func(err ErrorWithPos) error

// Reporter is the interface through which a [Handler] delivers errors.
type Reporter interface {
	Error(ErrorWithPos) error
}

// NewReporter creates a new Reporter that delegates to the given function.
// A nil function produces a reporter that returns every error as-is, which
// makes the first error fatal.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc(errs)
}

// Collector returns a Reporter that appends every error to *errs and never
// aborts, so a stage reports all of its errors.
func Collector(errs *[]ErrorWithPos) Reporter {
	return NewReporter(func(err ErrorWithPos) error {
		*errs = append(*errs, err)
		return nil
	})
}

type reporterFunc ErrorReporter

func (r reporterFunc) Error(err ErrorWithPos) error {
	if r == nil {
		return err
	}
	return r(err)
}

// Handler is used by the lexer, parser and validator to report errors. It
// tracks whether any were reported and remembers the first one that the
// Reporter chose to make fatal.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported int
	err          error
}

// NewHandler creates a new Handler that reports errors to rep. If rep is
// nil, the first reported error is fatal.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf handles an error with the given source position, creating the
// error using the given message format and arguments.
func (h *Handler) HandleErrorf(pos token.SourcePos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles the given error. If the given err is an ErrorWithPos,
// it is reported and this returns the error returned by the reporter. If
// the given error is any other kind of error, it is considered fatal: it
// is not reported and is remembered as the handler's error.
//
// Once a fatal error has been recorded, every subsequent call returns it
// without reporting anything further.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		h.errsReported++
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// Error returns the handler's result: the fatal error if there was one,
// [ErrInvalidSource] if errors were reported but none were fatal, or nil.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported > 0 && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the reporter, if any. Unlike
// [Handler.Error], this does not return ErrInvalidSource for errors that
// the reporter swallowed.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// ErrorCount returns the number of errors reported so far.
func (h *Handler) ErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.errsReported
}
