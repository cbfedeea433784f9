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

import "fmt"

// tokenizeExpression lexes a #if/#elif constant expression into ExprTokens.
// It does not know about "defined"; that is resolved during evaluation so
// that "defined" and its operand are never macro-expanded beforehand by the
// caller.
func tokenizeExpression(expr string) ([]ExprToken, error) {
	var tokens []ExprToken
	runes := []rune(expr)
	i := 0
	n := len(runes)

	for i < n {
		c := runes[i]
		switch {
		case c >= '0' && c <= '9':
			start := i
			i++
			for i < n && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			var val int64
			if _, err := fmt.Sscanf(string(runes[start:i]), "%d", &val); err != nil {
				return nil, fmt.Errorf("invalid number: %s", string(runes[start:i]))
			}
			tokens = append(tokens, ExprToken{Kind: ExprNumber, Num: val})

		case isExprIdentStart(c):
			start := i
			i++
			for i < n && isExprIdentContinue(runes[i]) {
				i++
			}
			tokens = append(tokens, ExprToken{Kind: ExprIdentifier, Name: string(runes[start:i])})

		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			i++

		default:
			op, consumed, err := lexExprOperator(runes[i:])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, ExprToken{Kind: ExprOperator, Op: op})
			i += consumed
		}
	}
	return tokens, nil
}

func isExprIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isExprIdentContinue(c rune) bool {
	return isExprIdentStart(c) || (c >= '0' && c <= '9')
}

// lexExprOperator consumes one operator (one or two runes) from the front of
// rest and returns how many runes it consumed.
func lexExprOperator(rest []rune) (ExprOp, int, error) {
	c := rest[0]
	peek := func() (rune, bool) {
		if len(rest) > 1 {
			return rest[1], true
		}
		return 0, false
	}

	switch c {
	case '(':
		return OpLParen, 1, nil
	case ')':
		return OpRParen, 1, nil
	case '~':
		return OpBitNot, 1, nil
	case '^':
		return OpBitXor, 1, nil
	case '+':
		return OpPlus, 1, nil
	case '-':
		return OpMinus, 1, nil
	case '*':
		return OpMultiply, 1, nil
	case '/':
		return OpDivide, 1, nil
	case '%':
		return OpModulo, 1, nil
	case '!':
		if p, ok := peek(); ok && p == '=' {
			return OpNotEqual, 2, nil
		}
		return OpNot, 1, nil
	case '=':
		if p, ok := peek(); ok && p == '=' {
			return OpEqual, 2, nil
		}
		return 0, 0, fmt.Errorf("invalid operator: =")
	case '<':
		if p, ok := peek(); ok {
			if p == '=' {
				return OpLessEqual, 2, nil
			}
			if p == '<' {
				return OpShiftLeft, 2, nil
			}
		}
		return OpLess, 1, nil
	case '>':
		if p, ok := peek(); ok {
			if p == '=' {
				return OpGreaterEqual, 2, nil
			}
			if p == '>' {
				return OpShiftRight, 2, nil
			}
		}
		return OpGreater, 1, nil
	case '&':
		if p, ok := peek(); ok && p == '&' {
			return OpAnd, 2, nil
		}
		return OpBitAnd, 1, nil
	case '|':
		if p, ok := peek(); ok && p == '|' {
			return OpOr, 2, nil
		}
		return OpBitOr, 1, nil
	default:
		return 0, 0, fmt.Errorf("invalid character: %c", c)
	}
}
