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

	"github.com/walker84837/includium/internal/collections"
)

// tokensToString reassembles a token sequence into source text by
// concatenating each token's Text in order.
func tokensToString(tokens []Token) string {
	return strings.Join(collections.MapSlice(tokens, func(t Token) string { return t.Text }), "")
}

// trimTokenWhitespace drops leading and trailing whitespace-only Other
// tokens from a macro argument's token sequence.
func trimTokenWhitespace(tokens []Token) []Token {
	start := 0
	for start < len(tokens) && isWhitespaceToken(tokens[start]) {
		start++
	}
	end := len(tokens)
	for end > start && isWhitespaceToken(tokens[end-1]) {
		end--
	}
	return tokens[start:end]
}

// concatenateTokens implements one "##" paste: it joins the text of left and
// right, classifying the result as a new Identifier when that text forms a
// valid identifier and as an Other token otherwise.
func concatenateTokens(left, right Token) Token {
	joined := left.Text + right.Text
	if isValidIdentifierText(joined) {
		return NewIdentifier(joined)
	}
	return NewOther(joined)
}

func findPrevNonWhitespace(tokens []Token, end int) (int, bool) {
	for i := end - 1; i >= 0; i-- {
		if !isWhitespaceToken(tokens[i]) {
			return i, true
		}
	}
	return 0, false
}

func findNextNonWhitespace(tokens []Token, start int) (int, bool) {
	i := start
	for i < len(tokens) && isWhitespaceToken(tokens[i]) {
		i++
	}
	if i >= len(tokens) {
		return 0, false
	}
	return i, true
}

// applyTokenPasting resolves every "##" operator in tokens left to right,
// pasting the non-whitespace token before it with the non-whitespace token
// after it. A "##" with no token on either side is left as ordinary text.
func applyTokenPasting(tokens []Token) []Token {
	var result []Token
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind == Other && strings.TrimSpace(tokens[i].Text) == "##" {
			if prevIdx, ok := findPrevNonWhitespace(result, len(result)); ok {
				for len(result) > 0 && isWhitespaceToken(result[len(result)-1]) {
					result = result[:len(result)-1]
				}
				if nextIdx, ok := findNextNonWhitespace(tokens, i+1); ok {
					result[prevIdx] = concatenateTokens(result[prevIdx], tokens[nextIdx])
					i = nextIdx + 1
					continue
				}
			}
			result = append(result, tokens[i])
		} else {
			result = append(result, tokens[i])
		}
		i++
	}
	return result
}
