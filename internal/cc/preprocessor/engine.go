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

import "strings"

// Driver is the user-facing preprocessor instance. Create one with
// NewDriver, optionally seed it with Define calls, then call Process once
// per input. A Driver is not safe for concurrent use; create one per file
// per the single-threaded resource model.
type Driver struct {
	ctx *engineContext
}

// NewDriver creates a Driver for config with its file identity set to
// "<stdin>", matching the default used before the first Process call.
func NewDriver(config Config) *Driver {
	return &Driver{ctx: newEngineContext(config, "<stdin>")}
}

// SetCurrentFile sets the file name attributed to subsequent Process calls
// and to the __FILE__ macro.
func (d *Driver) SetCurrentFile(file string) {
	d.ctx.currentFile = file
}

// Define installs a macro definition ahead of processing, equivalent to a
// #define appearing before the input. params is nil for an object-like
// macro.
func (d *Driver) Define(name string, params []string, body string, isVariadic bool) {
	d.ctx.defineMacro(name, &Macro{
		Params:     params,
		Body:       tokenizeLine(stripComments(body)),
		IsVariadic: isVariadic,
	})
}

// Undef removes a macro definition, matching #undef.
func (d *Driver) Undef(name string) {
	d.ctx.undefMacro(name)
}

// IsDefined reports whether name currently names a macro.
func (d *Driver) IsDefined(name string) bool {
	_, ok := d.ctx.lookupMacro(name)
	return ok
}

// Macros returns the driver's current macro table. Callers must not mutate
// the returned map or its *Macro values.
func (d *Driver) Macros() map[string]*Macro {
	return d.ctx.macros
}

// Process runs the full preprocessing pipeline over inputText and returns
// the preprocessed output, or the first PreprocessError encountered.
func (d *Driver) Process(inputText string) (string, error) {
	return d.ctx.process(inputText)
}

// process implements the line-by-line preprocessing loop: line splicing and
// _Pragma rewriting over the whole text up front, then per physical line,
// comment stripping, directive recognition, and (for ordinary lines under
// an active conditional) tokenization, macro expansion, and reassembly.
func (ctx *engineContext) process(inputText string) (string, error) {
	spliced := lineSplice(inputText)
	pragmaProcessed := processPragma(spliced)

	ctx.conditionalStack = nil
	ctx.currentLine = 1

	lines := splitLines(pragmaProcessed)
	outLines := make([]string, 0, len(lines))

	for _, rawLine := range lines {
		strippedLine := stripComments(rawLine)
		diag := ctx.diagnostic(rawLine)

		if directive, isDirective := extractDirective(strippedLine); isDirective {
			text, emit, err := ctx.handleDirective(directive, diag)
			if err != nil {
				return "", err
			}
			if emit {
				outLines = append(outLines, text)
			}
		} else if ctx.isActive() {
			tokens := tokenizeLine(strippedLine)
			expanded, err := ctx.expandTokens(tokens, 0, diag)
			if err != nil {
				return "", err
			}
			outLines = append(outLines, tokensToString(expanded))
		}

		ctx.currentLine++
	}

	if len(ctx.conditionalStack) != 0 {
		return "", newDiagnosticContextNoSource("<end of input>", 0).conditional("unterminated #if/#ifdef/#ifndef")
	}

	return strings.Join(outLines, "\n") + "\n", nil
}

// splitLines splits text on "\n" the way Rust's str::lines does: a single
// trailing newline does not produce a final empty element.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	trimmed := strings.TrimSuffix(text, "\n")
	return strings.Split(trimmed, "\n")
}
