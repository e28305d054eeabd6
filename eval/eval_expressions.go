/*
File    : go-lox/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// Eval evaluates one expression, dispatching on the node type.
func (e *Evaluator) Eval(expr parser.ExpressionNode) (objects.LoxObject, error) {
	switch expr := expr.(type) {
	case *parser.LiteralExpressionNode:
		return expr.Value, nil
	case *parser.IdentifierExpressionNode:
		return e.lookupVariable(expr.Ident)
	case *parser.ThisExpressionNode:
		return e.lookupVariable(expr.Ident)
	case *parser.SuperExpressionNode:
		return e.evalSuperExpression(expr)
	case *parser.GroupExpressionNode:
		return e.Eval(expr.Expr)
	case *parser.GetExpressionNode:
		return e.evalGetExpression(expr)
	case *parser.SetExpressionNode:
		return e.evalSetExpression(expr)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(expr)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(expr)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(expr)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(expr)
	default:
		panic(fmt.Sprintf("go-lox: unknown expression node %T", expr))
	}
}

// evalSuperExpression resolves `super.method`: the super-class lives at
// the distance the resolver recorded for the `super` occurrence, and
// the receiver's `this` lives one frame inner to it. The method is
// looked up on the super chain and bound to the current `this`.
func (e *Evaluator) evalSuperExpression(expr *parser.SuperExpressionNode) (objects.LoxObject, error) {
	distance, ok := e.Locals[expr.SuperIdent.ID]
	if !ok {
		// The resolver rejects `super` outside a subclass, so an
		// unresolved occurrence can only mean the pass never ran
		panic("go-lox: unresolved `super` reached the interpreter")
	}

	superValue, ok := e.Scp.ReadAt(distance, "super")
	if !ok {
		panic("go-lox: resolved binding missing at recorded distance")
	}
	superClass := superValue.(*function.Class)

	thisValue, ok := e.Scp.ReadAt(distance-1, "this")
	if !ok {
		panic("go-lox: resolved binding missing at recorded distance")
	}
	instance := thisValue.(*function.Instance)

	method, ok := superClass.GetMethod(expr.Method.Name)
	if !ok {
		return nil, &RuntimeError{Kind: UndefinedProperty, Ident: expr.Method}
	}
	return method.Bind(instance), nil
}

// evalGetExpression reads a property from an instance. Lookup order is
// own properties first, then the class's method table including the
// super chain. Reading a property off a non-object value is a type
// error; reading a missing one is UndefinedProperty at the name's span.
func (e *Evaluator) evalGetExpression(expr *parser.GetExpressionNode) (objects.LoxObject, error) {
	object, err := e.Eval(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*function.Instance)
	if !ok {
		return nil, unsupportedType(expr.Span,
			"Only objects have properties, got type `%s`", object.GetType())
	}

	value, ok := instance.Get(expr.Name.Name)
	if !ok {
		return nil, &RuntimeError{Kind: UndefinedProperty, Ident: expr.Name}
	}
	return value, nil
}

// evalSetExpression writes a property on an instance. The write always
// targets the instance's own property map; the right-hand side is
// evaluated after the object and before the write.
func (e *Evaluator) evalSetExpression(expr *parser.SetExpressionNode) (objects.LoxObject, error) {
	object, err := e.Eval(expr.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*function.Instance)
	if !ok {
		return nil, unsupportedType(expr.Span,
			"Only objects have properties, got type `%s`", object.GetType())
	}

	value, err := e.Eval(expr.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(expr.Name.Name, value)
	return value, nil
}

// evalCallExpression evaluates the callee and the arguments left to
// right, checks that the callee is callable with the right arity, and
// invokes it.
func (e *Evaluator) evalCallExpression(expr *parser.CallExpressionNode) (objects.LoxObject, error) {
	callee, err := e.Eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.LoxObject, 0, len(expr.Arguments))
	for _, argExpr := range expr.Arguments {
		arg, err := e.Eval(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, unsupportedType(expr.Span,
			"Type `%s` is not callable, can only call functions and classes", callee.GetType())
	}
	if callable.Arity() != len(args) {
		return nil, unsupportedType(expr.Span,
			"Expected %d arguments, but got %d", callable.Arity(), len(args))
	}

	return e.CallFunction(callee, args)
}

// evalUnaryExpression evaluates `-x`, `!x`, `typeof x` and `show x`.
func (e *Evaluator) evalUnaryExpression(expr *parser.UnaryExpressionNode) (objects.LoxObject, error) {
	operand, err := e.Eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operation.Type {
	case lexer.MINUS_OP:
		number, ok := operand.(*objects.Number)
		if !ok {
			return nil, unsupportedType(expr.Operation.Span,
				"Bad type for unary `-` operator: `%s`", operand.GetType())
		}
		return &objects.Number{Value: -number.Value}, nil

	case lexer.NOT_OP:
		return &objects.Boolean{Value: !objects.Truthy(operand)}, nil

	case lexer.TYPEOF_KEY:
		return &objects.String{Value: string(operand.GetType())}, nil

	case lexer.SHOW_KEY:
		return &objects.String{Value: operand.ToString()}, nil

	default:
		panic(fmt.Sprintf("go-lox: invalid unary operator (%s)", expr.Operation.Type))
	}
}

// evalBinaryExpression evaluates arithmetic, equality and comparison
// operators, enforcing the runtime type rules:
//   - `+` accepts two numbers or two strings (concatenation)
//   - `-`, `*`, `/` accept numbers only; `/` with a zero right operand
//     is a ZeroDivision error
//   - `==`, `!=` use value equality with no coercion
//   - orderings accept two numbers or two strings (lexicographic)
func (e *Evaluator) evalBinaryExpression(expr *parser.BinaryExpressionNode) (objects.LoxObject, error) {
	left, err := e.Eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(expr.Right)
	if err != nil {
		return nil, err
	}

	operator := expr.Operation
	switch operator.Type {
	case lexer.PLUS_OP:
		if leftNum, ok := left.(*objects.Number); ok {
			if rightNum, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: leftNum.Value + rightNum.Value}, nil
			}
		}
		if leftStr, ok := left.(*objects.String); ok {
			if rightStr, ok := right.(*objects.String); ok {
				return &objects.String{Value: leftStr.Value + rightStr.Value}, nil
			}
		}
		return nil, unsupportedType(operator.Span,
			"Binary `+` operator can only operate over two numbers or two strings. Got types `%s` and `%s`",
			left.GetType(), right.GetType())

	case lexer.MINUS_OP:
		return e.evalNumberOperator(left, right, operator)
	case lexer.MUL_OP:
		return e.evalNumberOperator(left, right, operator)
	case lexer.DIV_OP:
		// The zero check looks at the right operand alone, before the
		// operand types are validated
		if rightNum, ok := right.(*objects.Number); ok && rightNum.Value == 0 {
			return nil, &RuntimeError{Kind: ZeroDivision, Span: operator.Span}
		}
		return e.evalNumberOperator(left, right, operator)

	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.Equals(left, right)}, nil
	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.Equals(left, right)}, nil

	case lexer.GT_OP, lexer.GE_OP, lexer.LT_OP, lexer.LE_OP:
		return e.evalComparisonOperator(left, right, operator)

	default:
		panic(fmt.Sprintf("go-lox: invalid binary operator (%s)", operator.Type))
	}
}

// evalNumberOperator applies `-`, `*` or `/` to two number operands.
func (e *Evaluator) evalNumberOperator(left, right objects.LoxObject, operator lexer.Token) (objects.LoxObject, error) {
	leftNum, leftOk := left.(*objects.Number)
	rightNum, rightOk := right.(*objects.Number)
	if !leftOk || !rightOk {
		return nil, unsupportedType(operator.Span,
			"Binary `%s` operator can only operate over two numbers. Got types `%s` and `%s`",
			operator.Literal, left.GetType(), right.GetType())
	}

	switch operator.Type {
	case lexer.MINUS_OP:
		return &objects.Number{Value: leftNum.Value - rightNum.Value}, nil
	case lexer.MUL_OP:
		return &objects.Number{Value: leftNum.Value * rightNum.Value}, nil
	case lexer.DIV_OP:
		return &objects.Number{Value: leftNum.Value / rightNum.Value}, nil
	default:
		panic(fmt.Sprintf("go-lox: invalid number operator (%s)", operator.Type))
	}
}

// evalComparisonOperator applies an ordering operator to two numbers or
// two strings (compared lexicographically).
func (e *Evaluator) evalComparisonOperator(left, right objects.LoxObject, operator lexer.Token) (objects.LoxObject, error) {
	if leftNum, ok := left.(*objects.Number); ok {
		if rightNum, ok := right.(*objects.Number); ok {
			return &objects.Boolean{Value: compareOrdered(leftNum.Value, rightNum.Value, operator.Type)}, nil
		}
	}
	if leftStr, ok := left.(*objects.String); ok {
		if rightStr, ok := right.(*objects.String); ok {
			return &objects.Boolean{Value: compareOrdered(leftStr.Value, rightStr.Value, operator.Type)}, nil
		}
	}
	return nil, unsupportedType(operator.Span,
		"Binary `%s` operator can only compare two numbers or two strings. Got types `%s` and `%s`",
		operator.Literal, left.GetType(), right.GetType())
}

// compareOrdered applies one ordering operator to two values of the
// same ordered type.
func compareOrdered[T float64 | string](left, right T, operator lexer.TokenType) bool {
	switch operator {
	case lexer.GT_OP:
		return left > right
	case lexer.GE_OP:
		return left >= right
	case lexer.LT_OP:
		return left < right
	case lexer.LE_OP:
		return left <= right
	default:
		panic(fmt.Sprintf("go-lox: invalid comparison operator (%s)", operator))
	}
}

// evalLogicalExpression evaluates `and`/`or` with short-circuiting.
// The result is the operand value that decided the outcome, not a
// coerced boolean.
func (e *Evaluator) evalLogicalExpression(expr *parser.LogicalExpressionNode) (objects.LoxObject, error) {
	left, err := e.Eval(expr.Left)
	if err != nil {
		return nil, err
	}

	switch expr.Operation.Type {
	case lexer.AND_KEY:
		if !objects.Truthy(left) {
			return left, nil
		}
	case lexer.OR_KEY:
		if objects.Truthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("go-lox: invalid logical operator (%s)", expr.Operation.Type))
	}

	return e.Eval(expr.Right)
}

// evalAssignmentExpression evaluates the right-hand side and stores it
// through the resolved distance (or the global scope). The assigned
// value is also the expression's value, so assignments chain.
func (e *Evaluator) evalAssignmentExpression(expr *parser.AssignmentExpressionNode) (objects.LoxObject, error) {
	value, err := e.Eval(expr.Value)
	if err != nil {
		return nil, err
	}
	if err := e.assignVariable(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}
