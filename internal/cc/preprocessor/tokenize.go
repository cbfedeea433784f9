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

// tokenizeLine splits a single logical line into Tokens by greedy
// classification. By the time a line reaches here, comments have already
// been replaced by single spaces (see stripComments), so the comment cases
// below only fire for call sites that tokenize raw text directly.
func tokenizeLine(line string) []Token {
	var tokens []Token
	i := 0
	n := len(line)

	for i < n {
		c := line[i]
		switch {
		case IsIdentifierStart(c):
			start := i
			i++
			for i < n && IsIdentifierContinue(line[i]) {
				i++
			}
			tokens = append(tokens, NewIdentifier(line[start:i]))

		case c == '"' || c == '\'':
			end := literalEnd(line, i)
			kind := StringLiteral
			if c == '\'' {
				kind = CharLiteral
			}
			tokens = append(tokens, Token{Kind: kind, Text: line[i:end]})
			i = end

		case c == '/' && i+1 < n && (line[i+1] == '/' || line[i+1] == '*'):
			tokens = append(tokens, NewOther(" "))
			if line[i+1] == '/' {
				i += 2
				for i < n && line[i] != '\n' {
					i++
				}
			} else {
				i += 2
				for i < n && !(line[i] == '*' && i+1 < n && line[i+1] == '/') {
					i++
				}
				if i < n {
					i += 2
				}
			}

		case c == '/':
			tokens = append(tokens, NewOther("/"))
			i++

		case isSpaceByte(c):
			start := i
			for i < n && isSpaceByte(line[i]) {
				i++
			}
			tokens = append(tokens, NewOther(line[start:i]))

		case c == '#' && i+1 < n && line[i+1] == '#':
			tokens = append(tokens, NewOther("##"))
			i += 2

		default:
			tokens = append(tokens, NewOther(line[i:i+1]))
			i++
		}
	}
	return tokens
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	default:
		return false
	}
}
