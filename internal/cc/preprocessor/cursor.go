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
	"strings"
	"unicode/utf8"
)

// columnOf returns the 1-based character column at which substr first
// appears in line, or the column just past the end of line if it doesn't
// appear there at all. An empty substr reports column 1.
//
// This is best-effort positioning: it does not disambiguate repeated
// occurrences of substr within line.
func columnOf(line, substr string) int {
	if substr == "" {
		return 1
	}
	if idx := strings.Index(line, substr); idx >= 0 {
		return utf8.RuneCountInString(line[:idx]) + 1
	}
	return utf8.RuneCountInString(line) + 1
}
