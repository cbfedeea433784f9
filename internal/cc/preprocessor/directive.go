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
	"strconv"
	"strings"
)

// extractDirective returns the text following a leading "#" on a
// comment-stripped line (trimmed of surrounding whitespace), or "", false if
// the line is not a directive line.
func extractDirective(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, " \t\v\f\r\n")
	rest, ok := strings.CutPrefix(trimmed, "#")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// handleDirective dispatches a directive body (everything after "#") to its
// handler, returning the text to emit in place of the directive line, if
// any.
func (ctx *engineContext) handleDirective(directive string, diag diagnosticContext) (string, bool, error) {
	cmd, rest := splitDirectiveWord(directive)
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "define":
		return "", false, ctx.handleDefine(rest, diag)
	case "undef":
		return "", false, ctx.handleUndef(rest, diag)
	case "include":
		return ctx.handleInclude(rest, diag)
	case "ifdef":
		ctx.handleIfdef(rest)
		return "", false, nil
	case "ifndef":
		ctx.handleIfndef(rest)
		return "", false, nil
	case "if":
		return "", false, ctx.handleIf(rest, diag)
	case "elif":
		return "", false, ctx.handleElif(rest, diag)
	case "else":
		return "", false, ctx.handleElse(diag)
	case "endif":
		return "", false, ctx.handleEndif(diag)
	case "error":
		return "", false, ctx.handleError(rest, diag)
	case "warning":
		ctx.handleWarning(rest)
		return "", false, nil
	case "line":
		return "", false, ctx.handleLine(rest, diag)
	case "pragma":
		out, emit := ctx.handlePragma(rest)
		return out, emit, nil
	default:
		return "", false, nil
	}
}

// splitDirectiveWord splits directive into its command word and the
// remainder, at the first run of whitespace.
func splitDirectiveWord(directive string) (string, string) {
	i := 0
	for i < len(directive) && !isSpaceByte(directive[i]) {
		i++
	}
	cmd := directive[:i]
	for i < len(directive) && isSpaceByte(directive[i]) {
		i++
	}
	return cmd, directive[i:]
}

func (ctx *engineContext) handleDefine(rest string, diag diagnosticContext) error {
	if !ctx.isActive() {
		return nil
	}
	rest = strings.TrimLeft(rest, " \t\v\f\r\n")
	if rest == "" {
		return diag.malformedDirective("define")
	}

	i := 0
	for i < len(rest) && IsIdentifierContinue(rest[i]) {
		i++
	}
	name := rest[:i]
	if name == "" || !IsIdentifierStart(name[0]) {
		return diag.malformedDirective("define")
	}
	rest = rest[i:]

	var params []string
	isVariadic := false

	if strings.HasPrefix(rest, "(") {
		rest = rest[1:]
		var param strings.Builder
		var paramsList []string
		for {
			if rest == "" {
				return diag.malformedDirective("define")
			}
			c := rest[0]
			switch {
			case c == ')':
				if strings.TrimSpace(param.String()) != "" {
					paramsList = append(paramsList, strings.TrimSpace(param.String()))
				}
				rest = rest[1:]
				goto doneParams
			case c == ',':
				paramsList = append(paramsList, strings.TrimSpace(param.String()))
				param.Reset()
				rest = rest[1:]
			case c == '.':
				isVariadic = true
				rest = rest[1:]
				rest = strings.TrimPrefix(rest, "..")
				if strings.HasPrefix(rest, ".") {
					// lone extra dot; consume defensively, matches a malformed "...." as variadic too
					rest = rest[1:]
				}
			default:
				param.WriteByte(c)
				rest = rest[1:]
			}
		}
	doneParams:
		params = paramsList
		if params == nil {
			params = []string{}
		}
	}

	bodyStr := strings.TrimSpace(stripComments(rest))
	bodyTokens := tokenizeLine(bodyStr)

	ctx.defineMacro(name, &Macro{
		Params:     params,
		Body:       bodyTokens,
		IsVariadic: isVariadic,
		Location:   &MacroLocation{File: ctx.currentFile, Line: ctx.currentLine},
	})
	return nil
}

func (ctx *engineContext) handleUndef(rest string, diag diagnosticContext) error {
	if !ctx.isActive() {
		return nil
	}
	name := strings.Fields(rest)
	if len(name) == 0 {
		return diag.malformedDirective("undef")
	}
	ctx.undefMacro(name[0])
	return nil
}

func (ctx *engineContext) handleIfdef(rest string) {
	name := strings.TrimSpace(rest)
	_, defined := ctx.lookupMacro(name)
	ctx.pushConditional(newConditionalFrame(defined))
}

func (ctx *engineContext) handleIfndef(rest string) {
	name := strings.TrimSpace(rest)
	_, defined := ctx.lookupMacro(name)
	ctx.pushConditional(newConditionalFrame(!defined))
}

// newConditionalFrame starts a fresh #if/#ifdef/#ifndef frame. Whether the
// branch is actually emitted also depends on every enclosing frame being
// active, which isActive/can-emit checks across the whole stack rather than
// baking into this one frame's state.
func newConditionalFrame(active bool) conditionalFrame {
	return conditionalFrame{isActive: active, anyBranchTaken: active}
}

func (ctx *engineContext) handleIf(rest string, diag diagnosticContext) error {
	evaluated, err := ctx.evaluateExpression(rest, diag)
	if err != nil {
		return err
	}
	ctx.pushConditional(newConditionalFrame(evaluated))
	return nil
}

func (ctx *engineContext) outerActiveForTop() bool {
	for i := len(ctx.conditionalStack) - 2; i >= 0; i-- {
		if !ctx.conditionalStack[i].isActive {
			return false
		}
	}
	return true
}

func (ctx *engineContext) handleElif(rest string, diag diagnosticContext) error {
	top, ok := ctx.topConditional()
	if !ok {
		return diag.conditional("#elif without #if")
	}

	alreadyTaken := top.anyBranchTaken
	outerActive := ctx.outerActiveForTop()

	if alreadyTaken || !outerActive {
		top.isActive = false
		return nil
	}

	evaluated, err := ctx.evaluateExpression(rest, diag)
	if err != nil {
		return err
	}
	top.isActive = evaluated
	if evaluated {
		top.anyBranchTaken = true
	}
	return nil
}

func (ctx *engineContext) handleElse(diag diagnosticContext) error {
	top, ok := ctx.topConditional()
	if !ok {
		return diag.conditional("#else without #if")
	}

	alreadyTaken := top.anyBranchTaken
	outerActive := ctx.outerActiveForTop()

	top.isActive = !alreadyTaken && outerActive
	top.anyBranchTaken = true
	return nil
}

func (ctx *engineContext) handleEndif(diag diagnosticContext) error {
	if _, ok := ctx.popConditional(); !ok {
		return diag.conditional("#endif without #if")
	}
	return nil
}

func (ctx *engineContext) handleError(rest string, diag diagnosticContext) error {
	if !ctx.isActive() {
		return nil
	}
	msg := "#error directive"
	if rest != "" {
		msg = "#error: " + rest
	}
	return diag.other(msg)
}

func (ctx *engineContext) handleWarning(rest string) {
	if !ctx.isActive() {
		return
	}
	if ctx.config.Compiler != GCC && ctx.config.Compiler != Clang {
		return
	}
	msg := "#warning directive"
	if rest != "" {
		msg = "#warning: " + rest
	}
	if ctx.config.WarningHandler != nil {
		ctx.config.WarningHandler(msg)
	}
}

func (ctx *engineContext) handleLine(rest string, diag diagnosticContext) error {
	if !ctx.isActive() {
		return nil
	}
	parts := strings.Fields(rest)
	if len(parts) == 0 {
		return diag.malformedDirective("line")
	}
	lineNum, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	if lineNum <= 0 {
		ctx.currentLine = 0
	} else {
		ctx.currentLine = lineNum - 1
	}
	if len(parts) > 1 {
		filename := parts[1]
		filename = strings.TrimPrefix(filename, "\"")
		filename = strings.TrimSuffix(filename, "\"")
		ctx.currentFile = filename
	}
	return nil
}

func (ctx *engineContext) handlePragma(rest string) (string, bool) {
	if !ctx.isActive() {
		return "", false
	}
	trimmed := strings.TrimSpace(rest)
	if trimmed == "once" {
		ctx.includedOnce.Add(ctx.currentFile)
		return "", false
	}
	return "#pragma " + rest, true
}

func (ctx *engineContext) evaluateExpression(expr string, diag diagnosticContext) (bool, error) {
	tokens := tokenizeLine(expr)
	expanded, err := ctx.expandTokens(tokens, 0, diag)
	if err != nil {
		return false, err
	}
	trimmed := strings.TrimSpace(tokensToString(expanded))

	exprTokens, lexErr := tokenizeExpression(trimmed)
	if lexErr != nil {
		return false, diag.other(lexErr.Error())
	}
	result, evalErr := evaluateExprTokens(exprTokens, func(name string) bool {
		_, ok := ctx.lookupMacro(name)
		return ok
	})
	if evalErr != nil {
		return false, diag.other(evalErr.Error())
	}
	return result != 0, nil
}
