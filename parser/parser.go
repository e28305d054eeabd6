/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Lox
programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (assignment, logical, equality, comparison, arithmetic,
  unary, calls, property access, literals)
- Statements (declarations, control flow, blocks, print, return)
- Classes (declarations with optional superclass and methods)
- `for` loops, desugared into while loops during parsing

Key Features:
- One method per grammar production, descending by precedence
- Error collection (doesn't stop on first error): on a failure inside a
  declaration the parser records the diagnostic, emits a placeholder
  Dummy statement, and synchronizes at the next statement boundary
- A REPL mode that promotes a trailing unterminated expression into a
  debug print, so interactive users see the value of what they typed
- Unique identifier ids minted for every identifier occurrence, which
  the resolver uses to record lexical distances

Grammar (canonical form):

	program     := decl* EOF
	decl        := varDecl | classDecl | funDecl | stmt
	varDecl     := "var" IDENT ("=" expr)? ";"
	classDecl   := "class" IDENT ("<" IDENT)? "{" function* "}"
	funDecl     := "fun" function
	function    := IDENT "(" params? ")" block
	params      := IDENT ("," IDENT)*
	stmt        := ifStmt | forStmt | whileStmt | returnStmt
	             | printStmt | block | exprStmt
	ifStmt      := "if" "(" expr ")" stmt ("else" stmt)?
	forStmt     := "for" "(" (varDecl | exprStmt | ";") expr? ";" expr? ")" stmt
	whileStmt   := "while" "(" expr ")" stmt
	returnStmt  := "return" expr? ";"
	printStmt   := "print" expr ";"
	block       := "{" decl* "}"
	exprStmt    := expr ";"
	expr        := assignment
	assignment  := (call ".")? IDENT "=" assignment | logicOr
	logicOr     := logicAnd ("or" logicAnd)*
	logicAnd    := equality ("and" equality)*
	equality    := comparison (("=="|"!=") comparison)*
	comparison  := term ((">"|">="|"<"|"<=") term)*
	term        := factor (("+"|"-") factor)*
	factor      := unary (("*"|"/") unary)*
	unary       := ("!"|"-"|"typeof"|"show") unary | call
	call        := primary ( "(" args? ")" | "." IDENT )*
	args        := expr ("," expr)*
	primary     := IDENT | NUMBER | STRING | "true" | "false" | "nil"
	             | "this" | "super" "." IDENT | "(" expr ")"
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Lox source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	PrevToken lexer.Token // Previously consumed token

	// ReplMode enables trailing-expression promotion: an expression
	// statement missing its `;` at end-of-input becomes a debug print
	ReplMode bool

	// Collect parsing errors instead of stopping at the first one.
	// This allows reporting multiple errors in a single parse.
	Errors []*ParseError
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Lox source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex:    lex,
		Errors: make([]*ParseError, 0),
	}

	// Prime the token cursor with the first token
	par.advance()

	return par
}

// Parse parses the whole program: a sequence of declarations terminated
// by EOF. Errors raised inside a declaration are recorded, a Dummy
// placeholder statement is emitted in its place, and parsing resumes at
// the next statement boundary. A parse therefore always returns some
// statement list plus zero or more errors; callers must not execute the
// statements when errors are present (Dummy nodes would reach the
// interpreter).
//
// Returns:
//   - []StatementNode: The parsed statement forest
//   - []*ParseError: All diagnostics collected during the parse
func (par *Parser) Parse() ([]StatementNode, []*ParseError) {
	stmts := make([]StatementNode, 0)
	for !par.isAtEnd() {
		stmt, err := par.parseDeclaration()
		if err != nil {
			par.addError(err)
			stmts = append(stmts, &DummyStatementNode{Span: err.PrimarySpan()})
			par.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts, par.Errors
}

// advance consumes the current token and returns it, fetching the next
// meaningful token from the lexer. Tokens of ERROR_TYPE are recorded as
// scan-error diagnostics and skipped, so the grammar productions never
// see them. Advancing at end-of-input is a no-op that keeps returning
// the EOF token.
func (par *Parser) advance() lexer.Token {
	next := par.Lex.NextToken()
	for next.Type == lexer.ERROR_TYPE {
		// Report and skip malformed tokens
		par.addError(&ParseError{
			Kind:    ScanError,
			Message: next.Literal,
			Span:    next.Span,
		})
		next = par.Lex.NextToken()
	}
	par.PrevToken = par.CurrToken
	par.CurrToken = next
	return par.PrevToken
}

// check reports whether the current token has the expected type,
// without consuming it.
func (par *Parser) check(expected lexer.TokenType) bool {
	return par.CurrToken.Type == expected
}

// take checks if the current token matches the expected type. If so,
// it advances and returns true. Otherwise it returns false and consumes
// nothing.
func (par *Parser) take(expected lexer.TokenType) bool {
	if par.check(expected) {
		par.advance()
		return true
	}
	return false
}

// takeAny checks the current token against each of the given types,
// consuming it when one matches. The consumed token is then available
// as PrevToken. Used by the binary-operator production loops.
func (par *Parser) takeAny(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if par.check(tokenType) {
			par.advance()
			return true
		}
	}
	return false
}

// consume checks if the current token matches the expected type. If so,
// it advances and returns the consumed token. Otherwise it returns an
// expectation error with the given message, pointing at the offending
// token.
func (par *Parser) consume(expected lexer.TokenType, msg string) (lexer.Token, *ParseError) {
	if par.check(expected) {
		return par.advance(), nil
	}
	return lexer.Token{}, par.unexpected(msg)
}

// consumeIdent consumes an identifier token and converts it into a
// LoxIdent with a fresh occurrence id, or fails with the given message.
func (par *Parser) consumeIdent(msg string) (LoxIdent, *ParseError) {
	if par.check(lexer.IDENTIFIER_ID) {
		return IdentFromToken(par.advance()), nil
	}
	return LoxIdent{}, par.unexpected(msg)
}

// unexpected creates an UnexpectedTokenError pointing at the current
// token.
func (par *Parser) unexpected(msg string) *ParseError {
	return &ParseError{
		Kind:      UnexpectedTokenError,
		Message:   msg,
		Offending: par.CurrToken,
	}
}

// addError appends a diagnostic to the parser's error collection.
func (par *Parser) addError(err *ParseError) {
	par.Errors = append(par.Errors, err)
}

// HasErrors reports whether any diagnostic has been recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all diagnostics collected so far.
func (par *Parser) GetErrors() []*ParseError {
	return par.Errors
}

// isAtEnd checks if the parser has reached the end of input.
func (par *Parser) isAtEnd() bool {
	return par.CurrToken.Type == lexer.EOF_TYPE
}

// synchronize discards tokens until the parser state lines up with a
// statement boundary, so that one syntax error does not cascade into
// spurious diagnostics for everything after it.
//
// A boundary is reached when:
//   - the previous token is a semicolon (a new statement is probably
//     starting; exceptions like for-clause semicolons are acceptable), or
//   - the current token begins a new declaration or statement
//     (`class`, `for`, `fun`, `if`, `print`, `return`, `var`, `while`).
func (par *Parser) synchronize() {
	// If the end is already reached any further advancement is needless
	if par.isAtEnd() {
		return
	}

	par.advance()
	for !par.isAtEnd() {
		if par.PrevToken.Type == lexer.SEMICOLON_DELIM {
			return
		}
		switch par.CurrToken.Type {
		case lexer.CLASS_KEY, lexer.FOR_KEY, lexer.FUN_KEY, lexer.IF_KEY,
			lexer.PRINT_KEY, lexer.RETURN_KEY, lexer.VAR_KEY, lexer.WHILE_KEY:
			return
		}
		par.advance()
	}
}
