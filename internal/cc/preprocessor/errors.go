// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package preprocessor

import (
	"fmt"
	"strings"
)

// ErrorKind tags the class of a PreprocessError.
type ErrorKind int

const (
	IncludeNotFound ErrorKind = iota
	MalformedDirective
	MacroArgMismatch
	RecursionLimitExceeded
	ConditionalError
	IOError
	OtherError
)

// PreprocessError is the sole error type returned by Process. It carries
// enough location information to render a caret-annotated diagnostic.
type PreprocessError struct {
	Kind       ErrorKind
	File       string
	Line       int
	Column     int  // 0 means "unknown"
	HasColumn  bool
	SourceLine string
	HasSource  bool
	detail     string
}

func newError(kind ErrorKind, file string, line int, detail string) *PreprocessError {
	return &PreprocessError{Kind: kind, File: file, Line: line, detail: detail}
}

// WithColumn returns e with Column set.
func (e *PreprocessError) WithColumn(column int) *PreprocessError {
	e.Column = column
	e.HasColumn = true
	return e
}

// WithSourceLine returns e with SourceLine set.
func (e *PreprocessError) WithSourceLine(line string) *PreprocessError {
	e.SourceLine = line
	e.HasSource = true
	return e
}

// Detail returns the kind-specific payload (the path, directive name,
// message, etc.) that was used to construct the error.
func (e *PreprocessError) Detail() string { return e.detail }

func (e *PreprocessError) kindMessage() string {
	switch e.Kind {
	case IncludeNotFound:
		return fmt.Sprintf("include not found: %s", e.detail)
	case MalformedDirective:
		return fmt.Sprintf("malformed directive: %s", e.detail)
	case MacroArgMismatch:
		return fmt.Sprintf("macro argument mismatch: %s", e.detail)
	case RecursionLimitExceeded:
		return fmt.Sprintf("recursion limit exceeded: %s", e.detail)
	case ConditionalError:
		return fmt.Sprintf("conditional error: %s", e.detail)
	case IOError:
		return fmt.Sprintf("I/O error: %s", e.detail)
	default:
		return fmt.Sprintf("error: %s", e.detail)
	}
}

// isSyntheticLocation reports whether the error's location is an internal
// marker rather than a real file position, in which case the caret block is
// omitted from the rendered message.
func (e *PreprocessError) isSyntheticLocation() bool {
	return e.Line == 0 || strings.HasPrefix(e.File, "<")
}

// Error implements the error interface. Format:
//
//	<file>:<line>[:<col>]: <kind message>
//
// followed by the source line and a caret under the column, when both are
// known and the location is not synthetic.
func (e *PreprocessError) Error() string {
	var b strings.Builder
	b.WriteString(e.File)
	b.WriteByte(':')
	fmt.Fprintf(&b, "%d", e.Line)
	if e.HasColumn && !e.isSyntheticLocation() {
		b.WriteByte(':')
		fmt.Fprintf(&b, "%d", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.kindMessage())

	if e.HasSource && !e.isSyntheticLocation() {
		b.WriteByte('\n')
		b.WriteString(e.SourceLine)
		if e.HasColumn && e.Column >= 1 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", e.Column-1))
			b.WriteByte('^')
		}
	}
	return b.String()
}

func includeNotFoundError(file string, line int, path string) *PreprocessError {
	return newError(IncludeNotFound, file, line, path)
}

func malformedDirectiveError(file string, line int, directive string) *PreprocessError {
	return newError(MalformedDirective, file, line, directive)
}

func macroArgMismatchError(file string, line int, details string) *PreprocessError {
	return newError(MacroArgMismatch, file, line, details)
}

func recursionLimitExceededError(file string, line int, details string) *PreprocessError {
	return newError(RecursionLimitExceeded, file, line, details)
}

func conditionalErrorError(file string, line int, details string) *PreprocessError {
	return newError(ConditionalError, file, line, details)
}

func ioError(file string, line int, details string) *PreprocessError {
	return newError(IOError, file, line, details)
}

func otherError(file string, line int, message string) *PreprocessError {
	return newError(OtherError, file, line, message)
}

// diagnosticContext bundles the location information needed to build a
// PreprocessError for the line currently being processed.
type diagnosticContext struct {
	file       string
	line       int
	sourceLine string
	hasSource  bool
}

func newDiagnosticContext(file string, line int, sourceLine string) diagnosticContext {
	return diagnosticContext{file: file, line: line, sourceLine: sourceLine, hasSource: true}
}

func newDiagnosticContextNoSource(file string, line int) diagnosticContext {
	return diagnosticContext{file: file, line: line}
}

func (ctx diagnosticContext) withColumnFor(err *PreprocessError, needle string) *PreprocessError {
	column := 1
	if ctx.hasSource {
		column = columnOf(ctx.sourceLine, needle)
	}
	err = err.WithColumn(column)
	if ctx.hasSource {
		err = err.WithSourceLine(ctx.sourceLine)
	}
	return err
}

func (ctx diagnosticContext) malformedDirective(directive string) *PreprocessError {
	return ctx.withColumnFor(malformedDirectiveError(ctx.file, ctx.line, directive), directive)
}

func (ctx diagnosticContext) conditional(details string) *PreprocessError {
	return ctx.withColumnFor(conditionalErrorError(ctx.file, ctx.line, details), details)
}

func (ctx diagnosticContext) other(message string) *PreprocessError {
	return ctx.withColumnFor(otherError(ctx.file, ctx.line, message), message)
}

func (ctx diagnosticContext) includeNotFound(path string) *PreprocessError {
	return ctx.withColumnFor(includeNotFoundError(ctx.file, ctx.line, path), path)
}

func (ctx diagnosticContext) macroArgMismatch(details string) *PreprocessError {
	err := macroArgMismatchError(ctx.file, ctx.line, details)
	if ctx.hasSource {
		err = err.WithSourceLine(ctx.sourceLine)
	}
	return err
}

func (ctx diagnosticContext) recursionLimitExceeded(details string) *PreprocessError {
	err := recursionLimitExceededError(ctx.file, ctx.line, details)
	if ctx.hasSource {
		err = err.WithSourceLine(ctx.sourceLine)
	}
	return err
}
