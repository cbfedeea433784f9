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

package main

import (
	"fmt"
	"regexp"
	"strings"
)

// macroIdentifierRegex matches a valid C macro identifier: first character
// '_' or a letter, subsequent characters '_', letters, or digits.
var macroIdentifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// macroFlag is a single parsed -D flag: a full macro definition, not just an
// integer gating value, since the engine's macro table stores token bodies
// rather than ints.
type macroFlag struct {
	Name       string
	Params     []string
	IsVariadic bool
	Body       string
}

// parseDefineFlag parses a single -D NAME, -D NAME=VALUE, or
// -D 'NAME(params)=body' argument (the gcc/clang -D grammar) into a
// macroFlag ready to install with Driver.Define.
func parseDefineFlag(definition string) (macroFlag, error) {
	name, rest := definition, ""
	if eqIdx := strings.IndexAny(definition, "=("); eqIdx >= 0 {
		name, rest = definition[:eqIdx], definition[eqIdx:]
	}

	if !macroIdentifierRegex.MatchString(name) {
		return macroFlag{}, fmt.Errorf("invalid macro name %q", name)
	}

	flag := macroFlag{Name: name, Body: "1"}

	if strings.HasPrefix(rest, "(") {
		closeIdx := strings.Index(rest, ")")
		if closeIdx < 0 {
			return macroFlag{}, fmt.Errorf("macro %s: unterminated parameter list", name)
		}
		paramList := rest[1:closeIdx]
		rest = strings.TrimPrefix(rest[closeIdx+1:], "=")

		if paramList != "" {
			for _, p := range strings.Split(paramList, ",") {
				p = strings.TrimSpace(p)
				if p == "..." {
					flag.IsVariadic = true
					continue
				}
				if !macroIdentifierRegex.MatchString(p) {
					return macroFlag{}, fmt.Errorf("macro %s: invalid parameter name %q", name, p)
				}
				flag.Params = append(flag.Params, p)
			}
		}
		if flag.Params == nil {
			flag.Params = []string{}
		}
		flag.Body = rest
		return flag, nil
	}

	if value := strings.TrimPrefix(rest, "="); value != "" {
		flag.Body = value
	} else if rest == "" {
		flag.Body = "1"
	}
	return flag, nil
}

// parseDefineFlags parses every -D argument, collecting all errors rather
// than stopping at the first so a user sees every malformed flag at once.
func parseDefineFlags(definitions []string) ([]macroFlag, error) {
	var flags []macroFlag
	var errs []string
	for _, d := range definitions {
		flag, err := parseDefineFlag(d)
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		flags = append(flags, flag)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid -D flags: %s", strings.Join(errs, "; "))
	}
	return flags, nil
}
