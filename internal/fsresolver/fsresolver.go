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

// Package fsresolver implements a filesystem-backed include resolver for the
// preprocessor package, searching user and system include directories the
// way gcc/clang do.
package fsresolver

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/walker84837/includium/internal/cc/preprocessor"
	"github.com/walker84837/includium/internal/collections"
)

// DirResolver resolves #include directives against the real filesystem. The
// zero value has no search directories and resolves only includes found
// relative to the including file.
type DirResolver struct {
	// UserDirs are searched for both Local and (as a GCC-compatible
	// fallback) System includes, in order, after any directory-relative
	// attempt.
	UserDirs []string
	// SystemDirs are searched for System includes, and for Local includes
	// once UserDirs has been exhausted, in order.
	SystemDirs []string
	// BaseDir is used in place of the including file's directory when
	// ctx.IncludeStack is empty.
	BaseDir string
	// SkipPatterns holds doublestar glob patterns; a candidate path matching
	// any of them is skipped even if it exists, letting callers exclude a
	// vendored subtree from resolution.
	SkipPatterns []string
}

// Resolve implements preprocessor.IncludeResolver.
func (r *DirResolver) Resolve(path string, kind preprocessor.IncludeKind, ctx preprocessor.IncludeContext) (string, bool) {
	var candidates []string

	includingDir := r.BaseDir
	if n := len(ctx.IncludeStack); n > 0 {
		includingDir = filepath.Dir(ctx.IncludeStack[n-1])
	}

	switch kind {
	case preprocessor.Local:
		if includingDir != "" {
			candidates = append(candidates, filepath.Join(includingDir, path))
		}
		candidates = append(candidates, r.joinEach(r.UserDirs, path)...)
		candidates = append(candidates, r.joinEach(r.SystemDirs, path)...)
	case preprocessor.System:
		candidates = append(candidates, r.joinEach(r.SystemDirs, path)...)
		candidates = append(candidates, r.joinEach(r.UserDirs, path)...)
	}

	candidates = collections.FilterSlice(candidates, func(c string) bool { return !r.isSkipped(c) })
	for _, candidate := range candidates {
		content, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		return string(content), true
	}
	return "", false
}

func (r *DirResolver) joinEach(dirs []string, path string) []string {
	return collections.MapSlice(dirs, func(dir string) string { return filepath.Join(dir, path) })
}

func (r *DirResolver) isSkipped(candidate string) bool {
	for _, pattern := range r.SkipPatterns {
		if doublestar.ValidatePattern(pattern) && doublestar.MatchUnvalidated(pattern, filepath.ToSlash(candidate)) {
			return true
		}
	}
	return false
}

// CanonicalPath returns an absolute, cleaned form of path suitable for
// #pragma once identity comparisons, so that "./a.h" and "a.h" resolved from
// different directories are recognized as the same file when they are.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	return abs, nil
}
