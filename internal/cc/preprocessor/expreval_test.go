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
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, expr string, defined map[string]bool) int64 {
	t.Helper()
	tokens, err := tokenizeExpression(expr)
	require.NoError(t, err)
	result, err := evaluateExprTokens(tokens, func(name string) bool { return defined[name] })
	require.NoError(t, err)
	return result
}

func TestEvaluateExprPrecedence(t *testing.T) {
	cases := []struct {
		expr     string
		expected int64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 2 - 3", 5},
		{"2 * 3 == 6", 1},
		{"1 && 0", 0},
		{"1 || 0", 1},
		{"!0", 1},
		{"!5", 0},
		{"~0", -1},
		{"-5 + 3", -2},
		{"1 << 4", 16},
		{"256 >> 4", 16},
		{"5 & 3", 1},
		{"5 | 2", 7},
		{"5 ^ 1", 4},
		{"7 % 3", 1},
		{"1 < 2 && 2 < 3", 1},
		{"1 >= 1", 1},
		{"3 != 3", 0},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			assert.Equal(t, tc.expected, eval(t, tc.expr, nil))
		})
	}
}

func TestEvaluateExprDefinedOperator(t *testing.T) {
	defined := map[string]bool{"FOO": true}
	assert.Equal(t, int64(1), eval(t, "defined(FOO)", defined))
	assert.Equal(t, int64(1), eval(t, "defined FOO", defined))
	assert.Equal(t, int64(0), eval(t, "defined(BAR)", defined))
	assert.Equal(t, int64(1), eval(t, "!defined(BAR)", map[string]bool{}))
}

func TestEvaluateExprUndefinedIdentifierIsZero(t *testing.T) {
	assert.Equal(t, int64(1), eval(t, "UNDEFINED_MACRO == 0", nil))
}

func TestEvaluateExprDivisionByZeroErrors(t *testing.T) {
	tokens, err := tokenizeExpression("1 / 0")
	require.NoError(t, err)
	_, err = evaluateExprTokens(tokens, func(string) bool { return false })
	require.Error(t, err)
}

func TestEvaluateExprModuloByZeroErrors(t *testing.T) {
	tokens, err := tokenizeExpression("1 % 0")
	require.NoError(t, err)
	_, err = evaluateExprTokens(tokens, func(string) bool { return false })
	require.Error(t, err)
}

func TestTokenizeExpressionRejectsBareAssignment(t *testing.T) {
	_, err := tokenizeExpression("1 = 2")
	require.Error(t, err)
}

func TestTokenizeExpressionOperators(t *testing.T) {
	tokens, err := tokenizeExpression("a<<1 >= 2")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, ExprIdentifier, tokens[0].Kind)
	assert.Equal(t, OpShiftLeft, tokens[1].Op)
	assert.Equal(t, ExprNumber, tokens[2].Kind)
	assert.Equal(t, OpGreaterEqual, tokens[3].Op)
	assert.Equal(t, ExprNumber, tokens[4].Kind)
}
