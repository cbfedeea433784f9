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

// stripComments replaces every "// ... <EOL>" and "/* ... */" span in input
// with a single space, preserving the newline that terminates a line
// comment. It operates over the whole (possibly multi-line) text so that a
// block comment spanning several physical lines is handled in one pass.
//
// Comments are not recognized inside string or char literals: a literal's
// end is the first matching quote whose preceding run of backslashes has
// even length (i.e. the quote itself is not escaped).
func stripComments(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	i := 0
	n := len(input)
	for i < n {
		c := input[i]
		switch {
		case c == '"' || c == '\'':
			end := literalEnd(input, i)
			b.WriteString(input[i:end])
			i = end
		case c == '/' && i+1 < n && input[i+1] == '/':
			i += 2
			for i < n && input[i] != '\n' {
				i++
			}
			b.WriteByte(' ')
		case c == '/' && i+1 < n && input[i+1] == '*':
			i += 2
			for i < n && !(input[i] == '*' && i+1 < n && input[i+1] == '/') {
				i++
			}
			if i < n {
				i += 2
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// literalEnd returns the index just past the closing quote of the string or
// char literal starting at start (input[start] is the opening quote).
// If the literal is never closed, it returns len(input).
func literalEnd(input string, start int) int {
	quote := input[start]
	i := start + 1
	for i < len(input) {
		if input[i] == '\\' && i+1 < len(input) {
			i += 2
			continue
		}
		if input[i] == quote {
			return i + 1
		}
		i++
	}
	return i
}
