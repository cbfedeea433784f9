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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPresets(t *testing.T) {
	assert.Equal(t, Config{Target: Linux, Compiler: GCC, RecursionLimit: defaultRecursionLimit}, ForLinux())
	assert.Equal(t, Config{Target: Windows, Compiler: MSVC, RecursionLimit: defaultRecursionLimit}, ForWindows())
	assert.Equal(t, Config{Target: MacOS, Compiler: Clang, RecursionLimit: defaultRecursionLimit}, ForMacOS())
}

func TestConfigBuildersReturnCopies(t *testing.T) {
	base := ForLinux()
	modified := base.WithCompiler(Clang).WithRecursionLimit(5)

	assert.Equal(t, GCC, base.Compiler)
	assert.Equal(t, defaultRecursionLimit, base.RecursionLimit)
	assert.Equal(t, Clang, modified.Compiler)
	assert.Equal(t, 5, modified.RecursionLimit)
}

func TestIncludeKindString(t *testing.T) {
	assert.Equal(t, "local", Local.String())
	assert.Equal(t, "system", System.String())
}
