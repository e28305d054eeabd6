/*
File    : go-lox/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// isWhitespace checks whether a byte is a whitespace character.
// Recognized whitespace: space, tab, carriage return, and newline.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\t' || curr == '\r' || curr == '\n'
}

// isNumeric checks whether a byte is an ASCII decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks whether a byte is an ASCII letter (a-z or A-Z).
// Only ASCII letters are valid in identifiers; multi-byte characters
// outside string literals are scan errors.
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks whether a byte may continue an identifier:
// an ASCII letter, a digit, or an underscore.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr) || curr == '_'
}

// readStringLiteral scans a double-quoted string literal starting at the
// current position (the opening quote). The body is taken verbatim, no
// escape sequences are processed, and it may contain arbitrary bytes
// including newlines.
//
// If the closing quote is missing, an ERROR_TYPE token with the
// UnterminatedString message is produced; its span covers everything
// from the opening quote to the end of input. That error is what the
// REPL treats as "give me more input".
//
// Returns:
//   - Token: A STRING_LIT token whose Literal is the body without the
//     surrounding quotes, or an ERROR_TYPE token
func readStringLiteral(lex *Lexer) Token {
	start := lex.TokenStart

	// Consume the opening quote
	lex.Advance()

	// Consume the body until the closing quote or end of input
	for lex.Current != '"' && lex.Current != 0 {
		lex.Advance()
	}

	if lex.Current == 0 {
		// Ran off the end of input without a closing quote
		return NewToken(ERROR_TYPE, UnterminatedString, NewSpan(start, lex.Position))
	}

	// Consume the closing quote
	lex.Advance()

	body := lex.Src[start+1 : lex.Position-1]
	return Token{
		Type:    STRING_LIT,
		Literal: body,
		Span:    NewSpan(start, lex.Position),
	}
}

// readNumber scans a numeric literal: one or more decimal digits with an
// optional fractional part. A dot only belongs to the number when a
// digit follows it immediately, which requires two bytes of lookahead;
// `1.foo` therefore scans as the number `1`, a dot, and an identifier.
//
// Returns:
//   - Token: A NUMBER_LIT token with the parsed float64 value, or an
//     ERROR_TYPE token if the lexeme does not parse
func readNumber(lex *Lexer) Token {
	start := lex.TokenStart

	// Consume the integer part
	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// Consume the optional fractional part, requiring at least one
	// digit after the dot
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance() // consume the dot
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	span := NewSpan(start, lex.Position)

	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return NewToken(ERROR_TYPE, UnparseableNumber, span)
	}

	return Token{
		Type:    NUMBER_LIT,
		Literal: lexeme,
		Number:  value,
		Span:    span,
	}
}

// readIdentifier scans an identifier or keyword: an ASCII letter or
// underscore followed by letters, digits, or underscores. The longest
// such run is consumed first and only afterwards classified against the
// keyword table.
//
// Returns:
//   - Token: A keyword token or an IDENTIFIER_ID token
func readIdentifier(lex *Lexer) Token {
	start := lex.TokenStart

	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(lexeme), lexeme, NewSpan(start, lex.Position))
}

// readUnexpectedCharacter consumes one full UTF-8 code point that cannot
// start any token and produces an ERROR_TYPE token naming it. Advancing
// by the code-point length (not a single byte) keeps the scanner from
// reporting one error per continuation byte of a multi-byte character.
func readUnexpectedCharacter(lex *Lexer) Token {
	start := lex.TokenStart

	r, size := utf8.DecodeRuneInString(lex.Src[lex.Position:])
	for i := 0; i < size; i++ {
		lex.Advance()
	}

	message := fmt.Sprintf(unexpectedCharacterFmt, r)
	return NewToken(ERROR_TYPE, message, NewSpan(start, start+size))
}
