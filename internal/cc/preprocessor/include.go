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
	"path/filepath"
	"strings"
)

// parseIncludeTarget splits a trimmed #include argument into its spelled
// path and kind. ok is false when the argument is neither a quoted nor an
// angle-bracket form.
func parseIncludeTarget(trimmed string) (path string, kind IncludeKind, ok bool) {
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "\"") && strings.HasSuffix(trimmed, "\"") {
		return trimmed[1 : len(trimmed)-1], Local, true
	}
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return trimmed[1 : len(trimmed)-1], System, true
	}
	return "", Local, false
}

// handleInclude resolves, cycle-checks, and recursively processes a
// #include directive, returning the processed body text to splice into the
// parent's output (true) or nothing to emit (false, for a #pragma
// once-guarded repeat include).
func (ctx *engineContext) handleInclude(rest string, diag diagnosticContext) (string, bool, error) {
	if !ctx.isActive() {
		return "", false, nil
	}

	trimmed := strings.TrimSpace(rest)
	path, kind, ok := parseIncludeTarget(trimmed)
	if !ok {
		return "", false, diag.malformedDirective("include")
	}

	if ctx.config.IncludeResolver == nil {
		return "", false, diag.includeNotFound(path)
	}

	includeCtx := IncludeContext{IncludeStack: append(append([]string(nil), ctx.includeStack...), ctx.currentFile)}
	content, found := ctx.config.IncludeResolver(path, kind, includeCtx)
	if !found {
		return "", false, diag.includeNotFound(path)
	}

	for _, seen := range ctx.includeStack {
		if seen == path {
			return "", false, diag.other(fmt.Sprintf("include cycle detected for '%s'", path))
		}
	}

	hasPragmaOnce := strings.Contains(content, "#pragma once")
	if hasPragmaOnce && ctx.includedOnce.Contains(path) {
		return "", false, nil
	}

	resolvedPath := path
	if kind == Local {
		if dir := filepath.Dir(ctx.currentFile); dir != "." {
			resolvedPath = filepath.Join(dir, path)
		}
	}

	child := ctx.childForInclude(resolvedPath)
	processed, err := child.process(content)
	if err != nil {
		return "", false, err
	}
	ctx.mergeFromInclude(child)

	if hasPragmaOnce {
		ctx.includedOnce.Add(path)
	}

	return processed, true, nil
}
