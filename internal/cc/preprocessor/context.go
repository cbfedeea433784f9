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

import "github.com/walker84837/includium/internal/collections"

// conditionalFrame tracks the state of one #if/#ifdef/#ifndef block.
type conditionalFrame struct {
	// isActive is whether lines under the current branch are emitted.
	isActive bool
	// anyBranchTaken is whether any #if/#elif branch in this block has been
	// active so far, used to decide whether a later #elif may still fire and
	// whether #else should be active.
	anyBranchTaken bool
}

// engineContext is the mutable state threaded through a single Process call,
// plus everything needed to spawn and merge back child contexts for nested
// #include processing.
type engineContext struct {
	config Config

	macros         map[string]*Macro
	disabledMacros collections.Set[string]
	includedOnce   collections.Set[string]

	conditionalStack []conditionalFrame
	includeStack     []string

	currentFile string
	currentLine int
}

func newEngineContext(config Config, file string) *engineContext {
	return &engineContext{
		config:         config,
		macros:         predefinedMacros(config.Target, config.Compiler),
		disabledMacros: make(collections.Set[string]),
		includedOnce:   make(collections.Set[string]),
		currentFile:    file,
		currentLine:    1,
	}
}

func (ctx *engineContext) diagnostic(sourceLine string) diagnosticContext {
	return newDiagnosticContext(ctx.currentFile, ctx.currentLine, sourceLine)
}

func (ctx *engineContext) diagnosticNoSource() diagnosticContext {
	return newDiagnosticContextNoSource(ctx.currentFile, ctx.currentLine)
}

// isActive reports whether the current conditional nesting permits emission
// of ordinary (non-directive) lines: every frame on the stack must be
// active, not just the innermost one.
func (ctx *engineContext) isActive() bool {
	for _, frame := range ctx.conditionalStack {
		if !frame.isActive {
			return false
		}
	}
	return true
}

func (ctx *engineContext) pushConditional(frame conditionalFrame) {
	ctx.conditionalStack = append(ctx.conditionalStack, frame)
}

func (ctx *engineContext) popConditional() (conditionalFrame, bool) {
	if len(ctx.conditionalStack) == 0 {
		return conditionalFrame{}, false
	}
	top := ctx.conditionalStack[len(ctx.conditionalStack)-1]
	ctx.conditionalStack = ctx.conditionalStack[:len(ctx.conditionalStack)-1]
	return top, true
}

func (ctx *engineContext) topConditional() (*conditionalFrame, bool) {
	if len(ctx.conditionalStack) == 0 {
		return nil, false
	}
	return &ctx.conditionalStack[len(ctx.conditionalStack)-1], true
}

// withDisabled runs fn with name added to the disabled-macro set for the
// duration of the call, guaranteeing removal on every exit path (including
// panics propagating through fn), mirroring the self-reference guard a
// recursive macro expander needs.
func (ctx *engineContext) withDisabled(name string, fn func()) {
	ctx.disabledMacros.Add(name)
	defer ctx.disabledMacros.Remove(name)
	fn()
}

func (ctx *engineContext) isDisabled(name string) bool {
	return ctx.disabledMacros.Contains(name)
}

func (ctx *engineContext) lookupMacro(name string) (*Macro, bool) {
	m, ok := ctx.macros[name]
	return m, ok
}

func (ctx *engineContext) defineMacro(name string, m *Macro) {
	ctx.macros[name] = m
}

func (ctx *engineContext) undefMacro(name string) {
	delete(ctx.macros, name)
}

// childForInclude returns a new context for processing the body of an
// #include, seeded with a clone of the parent's macro table and
// included-once set plus an extended include stack for cycle detection. The
// parent resumes with whatever the child leaves
// behind once enterInclude has merged the child's state back in.
func (ctx *engineContext) childForInclude(file string) *engineContext {
	child := &engineContext{
		config:         ctx.config,
		macros:         cloneMacroTable(ctx.macros),
		disabledMacros: make(collections.Set[string]),
		includedOnce:   ctx.includedOnce.Clone(),
		includeStack:   append(append([]string(nil), ctx.includeStack...), ctx.currentFile),
		currentFile:    file,
		currentLine:    1,
	}
	return child
}

// mergeFromInclude folds the macro table and included-once set produced by
// processing an included file back into ctx, so that #define/#undef/#pragma
// once effects from an include are visible to the rest of the including
// file, matching a single-pass textual #include.
func (ctx *engineContext) mergeFromInclude(child *engineContext) {
	ctx.macros = child.macros
	ctx.includedOnce = child.includedOnce
}

func cloneMacroTable(macros map[string]*Macro) map[string]*Macro {
	clone := make(map[string]*Macro, len(macros))
	for name, m := range macros {
		clone[name] = m
	}
	return clone
}
