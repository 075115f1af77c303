package token

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_NextToken(t *testing.T) {
	s := NewScanner("if carSpeed is low then brakeForce is moderate")

	expected := []Type{START, IF, IDENT, IS, IDENT, THEN, IDENT, IS, IDENT, END}
	for i, want := range expected {
		got, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got, "token %d", i)
	}
	assert.False(t, s.HasMore())
}

func TestScanner_Identifiers(t *testing.T) {
	s := NewScanner("if carSpeed is low then brakeForce is moderate")

	for s.HasMore() {
		_, err := s.Next()
		require.NoError(t, err)
		if s.Identifier() == "low" {
			assert.Equal(t, "carspeed", s.PreviousIdentifier())
		}
	}

	assert.Equal(t, []string{"carspeed", "low", "brakeforce", "moderate"}, s.Identifiers())
	assert.Equal(t, "moderate", s.Identifier())
	assert.Equal(t, "brakeforce", s.PreviousIdentifier())
}

func TestScanner_FinishRepeatsEnd(t *testing.T) {
	s := NewScanner("")

	first, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, START, first)
	assert.True(t, s.HasMore())

	for i := 0; i < 3; i++ {
		tok, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, END, tok)
		assert.False(t, s.HasMore())
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Type
	}{
		{
			name:     "parenthesized clauses",
			input:    "if (carSpeed is low) then (brakeForce is moderate)",
			expected: []Type{START, IF, LEFT_PAR, IDENT, IS, IDENT, RIGHT_PAR, THEN, LEFT_PAR, IDENT, IS, IDENT, RIGHT_PAR, END},
		},
		{
			name:     "keywords are case insensitive",
			input:    "IF x1 Is a1 AnD x2 iS a2 Then y IS b",
			expected: []Type{START, IF, IDENT, IS, IDENT, AND, IDENT, IS, IDENT, THEN, IDENT, IS, IDENT, END},
		},
		{
			name:     "parentheses need no surrounding spaces",
			input:    "if (x is a or(y is b))then z is c",
			expected: []Type{START, IF, LEFT_PAR, IDENT, IS, IDENT, OR, LEFT_PAR, IDENT, IS, IDENT, RIGHT_PAR, RIGHT_PAR, THEN, IDENT, IS, IDENT, END},
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "   if a is b   ",
			expected: []Type{START, IF, IDENT, IS, IDENT, END},
		},
		{
			name:     "keyword prefix is an identifier",
			input:    "iffy island",
			expected: []Type{START, IDENT, IDENT, END},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenize_IllegalName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		index int
	}{
		{"digit starts identifier", "if x1 is a1 then ((y is 9b", 25},
		{"underscore", "if a_b is c", 5},
		{"first character", "#if", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var ine *apperr.IllegalNameError
			require.True(t, errors.As(err, &ine))
			assert.Equal(t, tt.index, ine.Index)
		})
	}
}

func TestLookup(t *testing.T) {
	for word, want := range map[string]Type{"if": IF, "IS": IS, "then": THEN, "And": AND, "or": OR} {
		got, ok := Lookup(word)
		assert.True(t, ok, word)
		assert.Equal(t, want, got, word)
	}

	for _, word := range []string{"end", "start", "(", "literal", "ifs"} {
		got, ok := Lookup(word)
		assert.False(t, ok, word)
		assert.Equal(t, IDENT, got, word)
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "LEFT_PAR", LEFT_PAR.String())
	assert.Equal(t, "IS", IS.String())
	assert.Equal(t, "UNKNOWN", Type(99).String())
}
