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

import "time"

// formatDate renders __DATE__ in the C standard "Mmm dd yyyy" form, e.g.
// "Jan  1 2024" (day is space-padded, not zero-padded). The clock is always
// read in UTC; there is no local-timezone adjustment.
func formatDate(now time.Time) string {
	return now.UTC().Format("Jan _2 2006")
}

// formatTime renders __TIME__ in the C standard "hh:mm:ss" form, read from
// the UTC wall clock.
func formatTime(now time.Time) string {
	return now.UTC().Format("15:04:05")
}
