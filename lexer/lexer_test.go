/*
File    : go-lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTypes, ExpectedTexts: expected token types and literals (EOF omitted)
type TestConsumeToken struct {
	Input         string
	ExpectedTypes []TokenType
	ExpectedTexts []string
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input:         ` 123 + 2.5   31 - 12 `,
			ExpectedTypes: []TokenType{NUMBER_LIT, PLUS_OP, NUMBER_LIT, NUMBER_LIT, MINUS_OP, NUMBER_LIT},
			ExpectedTexts: []string{"123", "+", "2.5", "31", "-", "12"},
		},
		{
			Input:         `{ } ( ) abc != a12 ;`,
			ExpectedTypes: []TokenType{LEFT_BRACE, RIGHT_BRACE, LEFT_PAREN, RIGHT_PAREN, IDENTIFIER_ID, NE_OP, IDENTIFIER_ID, SEMICOLON_DELIM},
			ExpectedTexts: []string{"{", "}", "(", ")", "abc", "!=", "a12", ";"},
		},
		{
			Input:         `var x = "hi"; // trailing comment`,
			ExpectedTypes: []TokenType{VAR_KEY, IDENTIFIER_ID, ASSIGN_OP, STRING_LIT, SEMICOLON_DELIM},
			ExpectedTexts: []string{"var", "x", "=", "hi", ";"},
		},
		{
			Input:         `class B < A { init(n) { this.n = n; } }`,
			ExpectedTypes: []TokenType{CLASS_KEY, IDENTIFIER_ID, LT_OP, IDENTIFIER_ID, LEFT_BRACE, IDENTIFIER_ID, LEFT_PAREN, IDENTIFIER_ID, RIGHT_PAREN, LEFT_BRACE, THIS_KEY, DOT_OP, IDENTIFIER_ID, ASSIGN_OP, IDENTIFIER_ID, SEMICOLON_DELIM, RIGHT_BRACE, RIGHT_BRACE},
			ExpectedTexts: []string{"class", "B", "<", "A", "{", "init", "(", "n", ")", "{", "this", ".", "n", "=", "n", ";", "}", "}"},
		},
		{
			Input:         `typeof show !true or false and nil`,
			ExpectedTypes: []TokenType{TYPEOF_KEY, SHOW_KEY, NOT_OP, TRUE_KEY, OR_KEY, FALSE_KEY, AND_KEY, NIL_KEY},
			ExpectedTexts: []string{"typeof", "show", "!", "true", "or", "false", "and", "nil"},
		},
		{
			Input:         `<= >= == = < >`,
			ExpectedTypes: []TokenType{LE_OP, GE_OP, EQ_OP, ASSIGN_OP, LT_OP, GT_OP},
			ExpectedTexts: []string{"<=", ">=", "==", "=", "<", ">"},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		tokens := lex.ConsumeTokens()

		// Last token is always a single EOF
		assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type, "input: %q", tt.Input)
		tokens = tokens[:len(tokens)-1]

		assert.Equal(t, len(tt.ExpectedTypes), len(tokens), "input: %q", tt.Input)
		for i, token := range tokens {
			assert.Equal(t, tt.ExpectedTypes[i], token.Type, "input: %q token %d", tt.Input, i)
			assert.Equal(t, tt.ExpectedTexts[i], token.Literal, "input: %q token %d", tt.Input, i)
		}
	}
}

// TestNewLexer_Spans verifies that every token's span selects exactly its
// lexeme from the source text and that spans are monotonically
// non-decreasing.
func TestNewLexer_Spans(t *testing.T) {
	src := `var answer = 40 + 2; // comment
print answer;`

	lex := NewLexer(src)
	tokens := lex.ConsumeTokens()

	prevHi := 0
	for _, token := range tokens {
		assert.LessOrEqual(t, prevHi, token.Span.Lo)
		assert.LessOrEqual(t, token.Span.Hi, len(src))
		prevHi = token.Span.Hi

		switch token.Type {
		case STRING_LIT:
			// The span covers the quotes, the literal does not
			assert.Equal(t, `"`+token.Literal+`"`, token.Span.Text(src))
		case EOF_TYPE:
			assert.Equal(t, "", token.Span.Text(src))
		default:
			assert.Equal(t, token.Literal, token.Span.Text(src))
		}
	}
}

// TestNewLexer_NumberLookahead verifies the two-byte lookahead rule for
// decimal separators: a dot not followed by a digit is its own token.
func TestNewLexer_NumberLookahead(t *testing.T) {
	lex := NewLexer(`1.5 1.foo 7.`)
	tokens := lex.ConsumeTokens()

	types := []TokenType{}
	for _, token := range tokens {
		types = append(types, token.Type)
	}
	assert.Equal(t, []TokenType{
		NUMBER_LIT,                       // 1.5
		NUMBER_LIT, DOT_OP, IDENTIFIER_ID, // 1 . foo
		NUMBER_LIT, DOT_OP, // 7 .
		EOF_TYPE,
	}, types)

	assert.Equal(t, 1.5, tokens[0].Number)
	assert.Equal(t, 1.0, tokens[1].Number)
	assert.Equal(t, 7.0, tokens[4].Number)
}

// TestNewLexer_Errors verifies that malformed input produces ERROR_TYPE
// tokens while the scan keeps going.
func TestNewLexer_Errors(t *testing.T) {
	// Unterminated string: error spans from the opening quote to EOF
	lex := NewLexer(`var s = "oops`)
	tokens := lex.ConsumeTokens()
	errTok := tokens[len(tokens)-2]
	assert.Equal(t, ERROR_TYPE, errTok.Type)
	assert.Equal(t, UnterminatedString, errTok.Literal)
	assert.Equal(t, NewSpan(8, 13), errTok.Span)

	// Unknown character: one error, scanning continues after it
	lex = NewLexer(`1 @ 2`)
	tokens = lex.ConsumeTokens()
	assert.Equal(t, NUMBER_LIT, tokens[0].Type)
	assert.Equal(t, ERROR_TYPE, tokens[1].Type)
	assert.Equal(t, "Unexpected character `@`", tokens[1].Literal)
	assert.Equal(t, NUMBER_LIT, tokens[2].Type)

	// Multi-byte unknown character: consumed as one code point
	lex = NewLexer("λ")
	tokens = lex.ConsumeTokens()
	assert.Equal(t, ERROR_TYPE, tokens[0].Type)
	assert.Equal(t, "Unexpected character `λ`", tokens[0].Literal)
	assert.Equal(t, EOF_TYPE, tokens[1].Type)
}

// TestNewLexer_StringBodies verifies that string bodies are taken
// verbatim: no escape processing, arbitrary bytes and newlines allowed.
func TestNewLexer_StringBodies(t *testing.T) {
	lex := NewLexer("\"a\\nb\"")
	tokens := lex.ConsumeTokens()
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, `a\nb`, tokens[0].Literal)

	lex = NewLexer("\"two\nlines\"")
	tokens = lex.ConsumeTokens()
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, "two\nlines", tokens[0].Literal)
}
