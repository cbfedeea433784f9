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

// lineSplice removes every backslash immediately followed by a newline
// (bare "\n" or "\r\n"), fusing the two physical lines it joins into one
// logical line. A backslash followed by anything else is left untouched.
// Runs once, before any other processing.
func lineSplice(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	i := 0
	for i < len(input) {
		c := input[i]
		if c == '\\' && i+1 < len(input) {
			if input[i+1] == '\n' {
				i += 2
				continue
			}
			if input[i+1] == '\r' && i+2 < len(input) && input[i+2] == '\n' {
				i += 3
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
