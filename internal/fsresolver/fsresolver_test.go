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

package fsresolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walker84837/includium/internal/cc/preprocessor"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDirResolverLocalPrefersIncludingDir(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.h", "// from root")
	userDir := filepath.Join(root, "user")
	writeFile(t, userDir, "a.h", "// from user")

	r := &DirResolver{UserDirs: []string{userDir}, BaseDir: root}
	content, ok := r.Resolve("a.h", preprocessor.Local, preprocessor.IncludeContext{})
	assert.True(t, ok)
	assert.Equal(t, "// from root", content)
}

func TestDirResolverLocalFallsThroughToUserThenSystem(t *testing.T) {
	root := t.TempDir()
	userDir := filepath.Join(root, "user")
	sysDir := filepath.Join(root, "sys")
	writeFile(t, sysDir, "b.h", "// from sys")

	r := &DirResolver{UserDirs: []string{userDir}, SystemDirs: []string{sysDir}, BaseDir: root}
	content, ok := r.Resolve("b.h", preprocessor.Local, preprocessor.IncludeContext{})
	assert.True(t, ok)
	assert.Equal(t, "// from sys", content)
}

func TestDirResolverSystemSearchesSystemThenUser(t *testing.T) {
	root := t.TempDir()
	userDir := filepath.Join(root, "user")
	sysDir := filepath.Join(root, "sys")
	writeFile(t, userDir, "c.h", "// from user")

	r := &DirResolver{UserDirs: []string{userDir}, SystemDirs: []string{sysDir}}
	content, ok := r.Resolve("c.h", preprocessor.System, preprocessor.IncludeContext{})
	assert.True(t, ok)
	assert.Equal(t, "// from user", content)
}

func TestDirResolverNotFound(t *testing.T) {
	r := &DirResolver{}
	_, ok := r.Resolve("missing.h", preprocessor.Local, preprocessor.IncludeContext{})
	assert.False(t, ok)
}

func TestDirResolverSkipPatterns(t *testing.T) {
	root := t.TempDir()
	vendorDir := filepath.Join(root, "vendor", "internal")
	writeFile(t, vendorDir, "d.h", "// vendored")

	r := &DirResolver{UserDirs: []string{filepath.Join(root, "vendor")}, SkipPatterns: []string{"**/internal/**"}}
	_, ok := r.Resolve("internal/d.h", preprocessor.Local, preprocessor.IncludeContext{})
	assert.False(t, ok)
}

func TestDirResolverUsesIncludingFileDirectory(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "nested")
	writeFile(t, nested, "e.h", "// nested sibling")

	r := &DirResolver{}
	ctx := preprocessor.IncludeContext{IncludeStack: []string{filepath.Join(nested, "parent.h")}}
	content, ok := r.Resolve("e.h", preprocessor.Local, ctx)
	assert.True(t, ok)
	assert.Equal(t, "// nested sibling", content)
}

func TestCanonicalPath(t *testing.T) {
	a, err := CanonicalPath("./foo/../foo/bar.h")
	require.NoError(t, err)
	b, err := CanonicalPath("foo/bar.h")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
