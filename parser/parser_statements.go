/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
)

// parseDeclaration parses one declaration: a variable, class, or
// function declaration, or any other statement. This is the recovery
// point for error synchronization — errors from every production below
// bubble up to the Parse loop through here.
func (par *Parser) parseDeclaration() (StatementNode, *ParseError) {
	if par.take(lexer.VAR_KEY) {
		return par.parseVarDeclaration()
	}
	if par.take(lexer.CLASS_KEY) {
		return par.parseClassDeclaration()
	}
	if par.take(lexer.FUN_KEY) {
		return par.parseFunction("function")
	}
	return par.parseStatement()
}

// parseVarDeclaration parses `var IDENT ("=" expr)? ";"`. The `var`
// keyword has already been consumed.
func (par *Parser) parseVarDeclaration() (StatementNode, *ParseError) {
	varToken := par.PrevToken

	if !par.check(lexer.IDENTIFIER_ID) {
		return nil, par.unexpected("Expected variable name")
	}
	name := IdentFromToken(par.advance())

	var init ExpressionNode
	if par.take(lexer.ASSIGN_OP) {
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		init = expr
	}

	semicolon, err := par.consume(lexer.SEMICOLON_DELIM, "Expected `;` after variable declaration")
	if err != nil {
		return nil, err
	}

	return &DeclarativeStatementNode{
		VarToken: varToken,
		Name:     name,
		Init:     init,
		Span:     varToken.Span.To(semicolon.Span),
	}, nil
}

// parseClassDeclaration parses `class IDENT ("<" IDENT)? "{" function* "}"`.
// The `class` keyword has already been consumed. Methods are parsed as
// functions without a leading `fun` keyword.
func (par *Parser) parseClassDeclaration() (StatementNode, *ParseError) {
	classToken := par.PrevToken

	name, err := par.consumeIdent("Expected class name")
	if err != nil {
		return nil, err
	}

	var superName *LoxIdent
	if par.take(lexer.LT_OP) {
		super, err := par.consumeIdent("Expected superclass name")
		if err != nil {
			return nil, err
		}
		superName = &super
	}

	if _, err := par.consume(lexer.LEFT_BRACE, "Expected `{` before class body"); err != nil {
		return nil, err
	}

	methods := make([]*FunctionStatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		method, err := par.parseFunction("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	rightBrace, err := par.consume(lexer.RIGHT_BRACE, "Expected `}` after class body")
	if err != nil {
		return nil, err
	}

	return &ClassStatementNode{
		Name:      name,
		SuperName: superName,
		Methods:   methods,
		Span:      classToken.Span.To(rightBrace.Span),
	}, nil
}

// parseFunction parses `IDENT "(" params? ")" block`, shared by
// function declarations (after `fun`) and class methods (no keyword).
// The kind parameter ("function" or "method") only flavors the error
// messages.
//
// A parameter list longer than 255 entries is diagnosed but parsing
// proceeds, mirroring the argument-count limit on calls.
func (par *Parser) parseFunction(kind string) (*FunctionStatementNode, *ParseError) {
	name, err := par.consumeIdent(fmt.Sprintf("Expected %s name", kind))
	if err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expected `(` after %s name", kind)); err != nil {
		return nil, err
	}

	params := make([]LoxIdent, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				// Recorded, but not fatal: parsing proceeds
				par.addError(&ParseError{
					Kind:    SemanticError,
					Message: "Can't have more than 255 parameters",
					Span:    par.CurrToken.Span,
				})
			}
			param, err := par.consumeIdent("Expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !par.take(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	if _, err := par.consume(lexer.RIGHT_PAREN, "Expected `)` after parameters"); err != nil {
		return nil, err
	}

	if _, err := par.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expected `{` before %s body", kind)); err != nil {
		return nil, err
	}

	body, rightBrace, err := par.parseBlockRaw()
	if err != nil {
		return nil, err
	}

	return &FunctionStatementNode{
		Name:   name,
		Params: params,
		Body:   body,
		Span:   name.Span.To(rightBrace.Span),
	}, nil
}

// parseStatement parses any non-declaration statement.
func (par *Parser) parseStatement() (StatementNode, *ParseError) {
	if par.take(lexer.IF_KEY) {
		return par.parseIfStatement()
	}
	if par.take(lexer.FOR_KEY) {
		return par.parseForStatement()
	}
	if par.take(lexer.WHILE_KEY) {
		return par.parseWhileStatement()
	}
	if par.take(lexer.RETURN_KEY) {
		return par.parseReturnStatement()
	}
	if par.take(lexer.PRINT_KEY) {
		return par.parsePrintStatement()
	}
	if par.take(lexer.LEFT_BRACE) {
		return par.parseBlockStatement()
	}
	return par.parseExpressionStatement()
}

// parseIfStatement parses `if "(" expr ")" stmt ("else" stmt)?`.
// The `if` keyword has already been consumed. The else branch binds to
// the nearest if, which falls out naturally from the recursion.
func (par *Parser) parseIfStatement() (StatementNode, *ParseError) {
	ifToken := par.PrevToken

	if _, err := par.consume(lexer.LEFT_PAREN, "Expected `(` after `if`"); err != nil {
		return nil, err
	}
	condition, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN, "Expected `)` after if condition"); err != nil {
		return nil, err
	}

	thenBranch, err := par.parseStatement()
	if err != nil {
		return nil, err
	}

	span := ifToken.Span.To(thenBranch.GetSpan())
	var elseBranch StatementNode
	if par.take(lexer.ELSE_KEY) {
		elseBranch, err = par.parseStatement()
		if err != nil {
			return nil, err
		}
		span = span.To(elseBranch.GetSpan())
	}

	return &IfStatementNode{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
		Span:       span,
	}, nil
}

// parseForStatement parses a C-style for loop and desugars it during
// parsing; there is no `for` AST node. The form
//
//	for (INIT; COND; INCR) BODY
//
// becomes
//
//	{ INIT; while (COND) { BODY; INCR; } }
//
// The initializer may be a var declaration, an expression statement, or
// a bare `;` (no initializer). A missing condition is synthesized as
// `true`.
func (par *Parser) parseForStatement() (StatementNode, *ParseError) {
	forToken := par.PrevToken

	if _, err := par.consume(lexer.LEFT_PAREN, "Expected `(` after `for`"); err != nil {
		return nil, err
	}

	// Initializer clause
	var init StatementNode
	if par.take(lexer.SEMICOLON_DELIM) {
		init = nil
	} else if par.take(lexer.VAR_KEY) {
		varDecl, err := par.parseVarDeclaration()
		if err != nil {
			return nil, err
		}
		init = varDecl
	} else {
		exprStmt, err := par.parseExpressionStatement()
		if err != nil {
			return nil, err
		}
		init = exprStmt
	}

	// Condition clause; a missing condition means loop forever
	var condition ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		cond, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		condition = cond
	}
	condSemicolon, err := par.consume(lexer.SEMICOLON_DELIM, "Expected `;` after loop condition")
	if err != nil {
		return nil, err
	}
	if condition == nil {
		condition = NewLiteralNode(lexer.NewToken(lexer.TRUE_KEY, "true", condSemicolon.Span))
	}

	// Increment clause
	var increment ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		incr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		increment = incr
	}
	if _, err := par.consume(lexer.RIGHT_PAREN, "Expected `)` after for clauses"); err != nil {
		return nil, err
	}

	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}

	// Desugar, innermost first: append the increment to the body...
	if increment != nil {
		body = &BlockStatementNode{
			Statements: []StatementNode{
				body,
				&ExpressionStatementNode{Expr: increment, Span: increment.GetSpan()},
			},
			Span: body.GetSpan().To(increment.GetSpan()),
		}
	}

	// ...wrap it in the while loop...
	var loop StatementNode = &WhileLoopStatementNode{
		Condition: condition,
		Body:      body,
		Span:      forToken.Span.To(body.GetSpan()),
	}

	// ...and scope the initializer around the loop
	if init != nil {
		loop = &BlockStatementNode{
			Statements: []StatementNode{init, loop},
			Span:       loop.GetSpan(),
		}
	}

	return loop, nil
}

// parseWhileStatement parses `while "(" expr ")" stmt`.
// The `while` keyword has already been consumed.
func (par *Parser) parseWhileStatement() (StatementNode, *ParseError) {
	whileToken := par.PrevToken

	if _, err := par.consume(lexer.LEFT_PAREN, "Expected `(` after `while`"); err != nil {
		return nil, err
	}
	condition, err := par.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := par.consume(lexer.RIGHT_PAREN, "Expected `)` after while condition"); err != nil {
		return nil, err
	}

	body, err := par.parseStatement()
	if err != nil {
		return nil, err
	}

	return &WhileLoopStatementNode{
		Condition: condition,
		Body:      body,
		Span:      whileToken.Span.To(body.GetSpan()),
	}, nil
}

// parseReturnStatement parses `return expr? ";"`.
// The `return` keyword has already been consumed. The keyword's own
// span is kept on the node; the resolver points its misplaced-return
// diagnostics at it.
func (par *Parser) parseReturnStatement() (StatementNode, *ParseError) {
	returnToken := par.PrevToken

	var value ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
	}

	semicolon, err := par.consume(lexer.SEMICOLON_DELIM, "Expected `;` after return value")
	if err != nil {
		return nil, err
	}

	return &ReturnStatementNode{
		ReturnSpan: returnToken.Span,
		Value:      value,
		Span:       returnToken.Span.To(semicolon.Span),
	}, nil
}

// parsePrintStatement parses `print expr ";"`.
// The `print` keyword has already been consumed.
func (par *Parser) parsePrintStatement() (StatementNode, *ParseError) {
	printToken := par.PrevToken

	expr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}

	semicolon, err := par.consume(lexer.SEMICOLON_DELIM, "Expected `;` after value")
	if err != nil {
		return nil, err
	}

	return &PrintStatementNode{
		Expr:  expr,
		Debug: false,
		Span:  printToken.Span.To(semicolon.Span),
	}, nil
}

// parseBlockStatement parses `"{" decl* "}"` into a block node.
// The opening brace has already been consumed.
func (par *Parser) parseBlockStatement() (StatementNode, *ParseError) {
	leftBrace := par.PrevToken

	stmts, rightBrace, err := par.parseBlockRaw()
	if err != nil {
		return nil, err
	}

	return &BlockStatementNode{
		Statements: stmts,
		Span:       leftBrace.Span.To(rightBrace.Span),
	}, nil
}

// parseBlockRaw parses declarations up to the closing brace and
// consumes it, returning the raw statement list. Shared by blocks and
// function bodies.
func (par *Parser) parseBlockRaw() ([]StatementNode, lexer.Token, *ParseError) {
	stmts := make([]StatementNode, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		stmt, err := par.parseDeclaration()
		if err != nil {
			return nil, lexer.Token{}, err
		}
		stmts = append(stmts, stmt)
	}

	rightBrace, err := par.consume(lexer.RIGHT_BRACE, "Expected `}` after block")
	if err != nil {
		return nil, lexer.Token{}, err
	}

	return stmts, rightBrace, nil
}

// parseExpressionStatement parses `expr ";"`.
//
// In REPL mode a trailing expression with no terminating `;` at
// end-of-input is silently promoted to a debug print statement, so the
// user sees the value of what they typed.
func (par *Parser) parseExpressionStatement() (StatementNode, *ParseError) {
	expr, err := par.parseExpression()
	if err != nil {
		return nil, err
	}

	if par.ReplMode && par.isAtEnd() {
		return &PrintStatementNode{
			Expr:  expr,
			Debug: true,
			Span:  expr.GetSpan(),
		}, nil
	}

	semicolon, err := par.consume(lexer.SEMICOLON_DELIM, "Expected `;` after expression")
	if err != nil {
		return nil, err
	}

	return &ExpressionStatementNode{
		Expr: expr,
		Span: expr.GetSpan().To(semicolon.Span),
	}, nil
}
