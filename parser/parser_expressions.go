/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
)

// parseExpression parses any expression. The grammar's entry production
// delegates straight to assignment, the lowest-precedence form.
func (par *Parser) parseExpression() (ExpressionNode, *ParseError) {
	return par.parseAssignment()
}

// parseAssignment parses `(call ".")? IDENT "=" assignment | logicOr`.
//
// The parser does not know whether the left side is a plain expression
// (an rvalue) or an assignment target (an lvalue) until it sees the `=`.
// It therefore parses the left side first and, on finding `=`,
// re-interprets it: a variable reference becomes an assignment, a
// property read becomes a property write, and anything else is an
// invalid assignment target. Assignments are right-associative, so the
// value is parsed with right recursion.
func (par *Parser) parseAssignment() (ExpressionNode, *ParseError) {
	left, err := par.parseOr()
	if err != nil {
		return nil, err
	}

	if par.take(lexer.ASSIGN_OP) {
		value, err := par.parseAssignment()
		if err != nil {
			return nil, err
		}

		// Now the parser knows `left` must be an lvalue
		switch left := left.(type) {
		case *IdentifierExpressionNode:
			return &AssignmentExpressionNode{
				Name:  left.Ident,
				Value: value,
				Span:  left.GetSpan().To(value.GetSpan()),
			}, nil
		case *GetExpressionNode:
			return &SetExpressionNode{
				Object: left.Object,
				Name:   left.Name,
				Value:  value,
				Span:   left.GetSpan().To(value.GetSpan()),
			}, nil
		default:
			return nil, &ParseError{
				Kind:    SemanticError,
				Message: "Invalid assignment target",
				Span:    left.GetSpan(),
			}
		}
	}

	return left, nil
}

// parseOr parses `logicAnd ("or" logicAnd)*`.
func (par *Parser) parseOr() (ExpressionNode, *ParseError) {
	expr, err := par.parseAnd()
	if err != nil {
		return nil, err
	}

	for par.takeAny(lexer.OR_KEY) {
		operator := par.PrevToken
		right, err := par.parseAnd()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{
			Operation: operator,
			Left:      expr,
			Right:     right,
			Span:      expr.GetSpan().To(right.GetSpan()),
		}
	}

	return expr, nil
}

// parseAnd parses `equality ("and" equality)*`.
func (par *Parser) parseAnd() (ExpressionNode, *ParseError) {
	expr, err := par.parseEquality()
	if err != nil {
		return nil, err
	}

	for par.takeAny(lexer.AND_KEY) {
		operator := par.PrevToken
		right, err := par.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{
			Operation: operator,
			Left:      expr,
			Right:     right,
			Span:      expr.GetSpan().To(right.GetSpan()),
		}
	}

	return expr, nil
}

// parseEquality parses `comparison (("=="|"!=") comparison)*`.
func (par *Parser) parseEquality() (ExpressionNode, *ParseError) {
	return par.parseBinaryLevel(par.parseComparison, lexer.EQ_OP, lexer.NE_OP)
}

// parseComparison parses `term ((">"|">="|"<"|"<=") term)*`.
func (par *Parser) parseComparison() (ExpressionNode, *ParseError) {
	return par.parseBinaryLevel(par.parseTerm, lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP)
}

// parseTerm parses `factor (("+"|"-") factor)*`.
func (par *Parser) parseTerm() (ExpressionNode, *ParseError) {
	return par.parseBinaryLevel(par.parseFactor, lexer.PLUS_OP, lexer.MINUS_OP)
}

// parseFactor parses `unary (("*"|"/") unary)*`.
func (par *Parser) parseFactor() (ExpressionNode, *ParseError) {
	return par.parseBinaryLevel(par.parseUnary, lexer.MUL_OP, lexer.DIV_OP)
}

// parseBinaryLevel parses one left-associative binary precedence level:
// `next ((op1|op2|...) next)*`. Each grammar level above supplies its
// operator set and the next-higher production.
func (par *Parser) parseBinaryLevel(next func() (ExpressionNode, *ParseError), operators ...lexer.TokenType) (ExpressionNode, *ParseError) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for par.takeAny(operators...) {
		operator := par.PrevToken
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{
			Operation: operator,
			Left:      expr,
			Right:     right,
			Span:      expr.GetSpan().To(right.GetSpan()),
		}
	}

	return expr, nil
}

// parseUnary parses `("!"|"-"|"typeof"|"show") unary | call`.
// Unary operators nest right-recursively, so `!!x` and `- -x` work.
func (par *Parser) parseUnary() (ExpressionNode, *ParseError) {
	if par.takeAny(lexer.NOT_OP, lexer.MINUS_OP, lexer.TYPEOF_KEY, lexer.SHOW_KEY) {
		operator := par.PrevToken
		operand, err := par.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{
			Operation: operator,
			Right:     operand,
			Span:      operator.Span.To(operand.GetSpan()),
		}, nil
	}
	return par.parseCall()
}

// parseCall parses `primary ( "(" args? ")" | "." IDENT )*`:
// a primary expression followed by any mix of call argument lists and
// property accesses, left to right.
func (par *Parser) parseCall() (ExpressionNode, *ParseError) {
	expr, err := par.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		if par.take(lexer.LEFT_PAREN) {
			expr, err = par.finishCall(expr)
			if err != nil {
				return nil, err
			}
		} else if par.take(lexer.DOT_OP) {
			name, err := par.consumeIdent("Expected property name after `.`")
			if err != nil {
				return nil, err
			}
			expr = &GetExpressionNode{
				Object: expr,
				Name:   name,
				Span:   expr.GetSpan().To(name.Span),
			}
		} else {
			break
		}
	}

	return expr, nil
}

// finishCall parses the argument list of a call whose opening paren has
// already been consumed. A call with more than 255 arguments is
// diagnosed but parsing proceeds.
func (par *Parser) finishCall(callee ExpressionNode) (ExpressionNode, *ParseError) {
	args := make([]ExpressionNode, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				// Recorded, but not fatal: parsing proceeds
				par.addError(&ParseError{
					Kind:    SemanticError,
					Message: "Can't have more than 255 arguments",
					Span:    par.CurrToken.Span,
				})
			}
			arg, err := par.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !par.take(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	rightParen, err := par.consume(lexer.RIGHT_PAREN, "Expected `)` after arguments")
	if err != nil {
		return nil, err
	}

	return &CallExpressionNode{
		Callee:    callee,
		Arguments: args,
		Span:      callee.GetSpan().To(rightParen.Span),
	}, nil
}

// parsePrimary parses the highest-precedence forms: literals,
// identifiers, `this`, `super` accesses, and parenthesized groups.
func (par *Parser) parsePrimary() (ExpressionNode, *ParseError) {
	switch par.CurrToken.Type {
	case lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NIL_KEY:
		return NewLiteralNode(par.advance()), nil

	case lexer.IDENTIFIER_ID:
		return &IdentifierExpressionNode{Ident: IdentFromToken(par.advance())}, nil

	case lexer.THIS_KEY:
		return &ThisExpressionNode{Ident: IdentFromToken(par.advance())}, nil

	case lexer.SUPER_KEY:
		superToken := par.advance()
		if _, err := par.consume(lexer.DOT_OP, "Expected `.` after `super`"); err != nil {
			return nil, err
		}
		method, err := par.consumeIdent("Expected superclass method name")
		if err != nil {
			return nil, err
		}
		return &SuperExpressionNode{
			SuperIdent: IdentFromToken(superToken),
			Method:     method,
			Span:       superToken.Span.To(method.Span),
		}, nil

	case lexer.LEFT_PAREN:
		leftParen := par.advance()
		expr, err := par.parseExpression()
		if err != nil {
			return nil, err
		}
		rightParen, err := par.consume(lexer.RIGHT_PAREN, "Expected group to be closed")
		if err != nil {
			return nil, err
		}
		return &GroupExpressionNode{
			Expr: expr,
			Span: leftParen.Span.To(rightParen.Span),
		}, nil

	default:
		return nil, par.unexpected("Expected any expression")
	}
}
