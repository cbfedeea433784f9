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

func TestPredefinedMacrosPerTarget(t *testing.T) {
	cases := []struct {
		target Target
		name   string
	}{
		{Linux, "__linux__"},
		{Windows, "_WIN32"},
		{MacOS, "__APPLE__"},
	}
	for _, tc := range cases {
		macros := predefinedMacros(tc.target, GCC)
		m, ok := macros[tc.name]
		assert.True(t, ok, "expected %s to be defined for target", tc.name)
		assert.True(t, m.IsBuiltin)
		assert.Nil(t, m.Location)
	}
}

func TestPredefinedMacrosPerCompiler(t *testing.T) {
	cases := []struct {
		compiler Compiler
		name     string
	}{
		{GCC, "__GNUC__"},
		{Clang, "__clang__"},
		{MSVC, "_MSC_VER"},
	}
	for _, tc := range cases {
		macros := predefinedMacros(Linux, tc.compiler)
		_, ok := macros[tc.name]
		assert.True(t, ok, "expected %s to be defined for compiler", tc.name)
	}
}

func TestPredefinedMacrosSizeofAndIntrinsicStubs(t *testing.T) {
	macros := predefinedMacros(Linux, GCC)
	_, ok := macros["__SIZEOF_POINTER__"]
	assert.True(t, ok)
	_, ok = macros["__builtin_expect"]
	assert.True(t, ok)
}

func TestIsIntrinsicPredefined(t *testing.T) {
	assert.True(t, isIntrinsicPredefined("__LINE__"))
	assert.True(t, isIntrinsicPredefined("__FILE__"))
	assert.True(t, isIntrinsicPredefined("__DATE__"))
	assert.True(t, isIntrinsicPredefined("__TIME__"))
	assert.False(t, isIntrinsicPredefined("__linux__"))
}
