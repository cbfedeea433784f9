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

func TestTokenizeLineRoundTripsToOriginalText(t *testing.T) {
	cases := []string{
		`int x = 1 + 2;`,
		`char *s = "a \"quoted\" string";`,
		`char c = 'x';`,
		`a##b`,
		`  leading and trailing  `,
	}
	for _, line := range cases {
		tokens := tokenizeLine(line)
		assert.Equal(t, line, tokensToString(tokens), "round trip for %q", line)
	}
}

func TestTokenizeLineClassifiesIdentifiersAndLiterals(t *testing.T) {
	tokens := tokenizeLine(`foo "bar" 'c'`)
	assert.Equal(t, []Token{
		NewIdentifier("foo"),
		NewOther(" "),
		NewStringLiteral(`"bar"`),
		NewOther(" "),
		Token{Kind: CharLiteral, Text: `'c'`},
	}, tokens)
}

func TestLineSpliceFusesBackslashNewline(t *testing.T) {
	assert.Equal(t, "ab", lineSplice("a\\\nb"))
	assert.Equal(t, "ab", lineSplice("a\\\r\nb"))
	assert.Equal(t, "a\\b", lineSplice("a\\b"))
}

func TestStripCommentsLineComment(t *testing.T) {
	assert.Equal(t, "int a;  ", stripComments("int a; // trailing"))
}

func TestStripCommentsBlockComment(t *testing.T) {
	assert.Equal(t, "int a   ;", stripComments("int a /* x */ ;"))
}

func TestStripCommentsIgnoresCommentMarkersInsideStringLiteral(t *testing.T) {
	assert.Equal(t, `char *s = "// not a comment";`, stripComments(`char *s = "// not a comment";`))
}

func TestProcessPragmaRewritesOperator(t *testing.T) {
	assert.Equal(t, `#pragma pack(1)`, processPragma(`_Pragma("pack(1)")`))
}

func TestProcessPragmaLeavesUnmatchedOperatorAlone(t *testing.T) {
	assert.Equal(t, `_Pragma(1, 2)`, processPragma(`_Pragma(1, 2)`))
}

func TestProcessPragmaUnescapesQuotes(t *testing.T) {
	assert.Equal(t, `#pragma message("hi")`, processPragma(`_Pragma("message(\"hi\")")`))
}
