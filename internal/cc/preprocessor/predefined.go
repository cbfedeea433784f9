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

// targetMacros maps each Target to the object-like macros GCC-family
// compilers define for that platform.
var targetMacros = map[Target]map[string]string{
	Linux: {
		"__linux__": "1",
		"__unix__":  "1",
		"__LP64__":  "1",
	},
	Windows: {
		"_WIN32":    "1",
		"WIN32":     "1",
		"_WINDOWS":  "1",
	},
	MacOS: {
		"__APPLE__":      "1",
		"__MACH__":       "1",
		"TARGET_OS_MAC":  "1",
		"__LP64__":       "1",
	},
}

// compilerMacros maps each Compiler to the identifying macros it predefines.
// Version numbers are pinned to a single representative release per
// compiler; callers needing a different version should #undef and redefine.
var compilerMacros = map[Compiler]map[string]string{
	GCC: {
		// GCC 11.2.0
		"__GNUC__":           "11",
		"__GNUC_MINOR__":     "2",
		"__GNUC_PATCHLEVEL__": "0",
		"_GNU_SOURCE":        "1",
	},
	Clang: {
		// Clang 14.0.0
		"__clang__":           "1",
		"__clang_major__":     "14",
		"__clang_minor__":     "0",
		"__clang_patchlevel__": "0",
	},
	MSVC: {
		// MSVC 19.20 (Visual Studio 2019)
		"_MSC_VER":                "1920",
		"_MSC_FULL_VER":           "192027508",
		"WIN32_LEAN_AND_MEAN":     "",
		"_CRT_SECURE_NO_WARNINGS": "",
	},
}

// sizeofStubs are the sizeof-family constants loaded regardless of target or
// compiler, matching a typical LP64 ABI.
var sizeofStubs = map[string]string{
	"__SIZEOF_INT__":        "4",
	"__SIZEOF_LONG__":       "8",
	"__SIZEOF_LONG_LONG__":  "8",
	"__SIZEOF_POINTER__":    "8",
	"__SIZEOF_SIZE_T__":     "8",
	"__SIZEOF_PTRDIFF_T__":  "8",
}

// intrinsicStubs are compiler builtins stubbed to an empty body so that
// headers referencing them do not trigger an undefined-macro surprise; they
// are never meant to expand to anything useful.
var intrinsicStubs = []string{
	"__builtin_expect",
	"__builtin_unreachable",
	"__builtin_va_start",
	"__builtin_va_arg",
	"__builtin_va_end",
	"__builtin_offsetof",
	"__builtin_types_compatible_p",
	"__builtin_constant_p",
	"__builtin_clz",
	"__builtin_ctz",
	"__builtin_popcount",
	"__builtin_bswap16",
	"__builtin_bswap32",
	"__builtin_bswap64",
}

// predefinedMacros builds the built-in macro table for a (target, compiler)
// pair: the platform identification macros, the compiler identification
// macros, the sizeof stubs, and the intrinsic stubs. Every entry is marked
// IsBuiltin with no Location, per the object-like-macro data model.
func predefinedMacros(target Target, compiler Compiler) map[string]*Macro {
	macros := make(map[string]*Macro)

	define := func(name, body string) {
		macros[name] = &Macro{Body: tokenizeLine(body), IsBuiltin: true}
	}

	for name, value := range targetMacros[target] {
		define(name, value)
	}
	for name, value := range compilerMacros[compiler] {
		define(name, value)
	}
	for name, value := range sizeofStubs {
		define(name, value)
	}
	for _, name := range intrinsicStubs {
		define(name, "")
	}

	return macros
}

// intrinsicPredefinedNames are the macros the engine computes dynamically on
// every expansion rather than storing a fixed body for: __LINE__, __FILE__,
// __DATE__, and __TIME__. They are recognized by name in the macro expander
// before the static table above is consulted.
var intrinsicPredefinedNames = map[string]bool{
	"__LINE__": true,
	"__FILE__": true,
	"__DATE__": true,
	"__TIME__": true,
}

func isIntrinsicPredefined(name string) bool {
	return intrinsicPredefinedNames[name]
}
