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
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateShape(t *testing.T) {
	now := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar  5 2026", formatDate(now))
}

func TestFormatTimeShape(t *testing.T) {
	now := time.Date(2026, time.March, 5, 13, 4, 9, 0, time.UTC)
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), formatTime(now))
	assert.Equal(t, "13:04:09", formatTime(now))
}

func TestFormatTimeIgnoresNonUTCInput(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	now := time.Date(2026, time.March, 5, 13, 4, 9, 0, loc)
	assert.Equal(t, "12:04:09", formatTime(now))
}
