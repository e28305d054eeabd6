/*
File    : go-lox/parser/dbg.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/go-lox/lexer"
)

// PrintScannedTokens scans the given source from scratch and writes one
// line per token, framed for readability. This backs the REPL's `:lex`
// option; the scan result is discarded afterwards.
func PrintScannedTokens(writer io.Writer, src string) {
	lex := lexer.NewLexer(src)
	fmt.Fprintln(writer, "┌─")
	for _, token := range lex.ConsumeTokens() {
		fmt.Fprintf(writer, "│ %-14s %-12q @ %s\n", token.Type, token.String(), token.Span)
	}
	fmt.Fprintln(writer, "└─")
}

// PrintProgramTree writes an indented tree rendering of the given
// program to the writer. This backs the REPL's `:ast` option.
func PrintProgramTree(writer io.Writer, stmts []StatementNode) {
	fmt.Fprintln(writer, "┌─")
	printer := &TreePrinter{Writer: writer, Prefix: "│ "}
	printer.PrintStmts(stmts)
	fmt.Fprintln(writer, "└─")
}

// TreePrinter renders AST nodes as an indented tree, one construct per
// line, nesting children one level deeper than their parent.
type TreePrinter struct {
	Writer io.Writer // Output destination
	Prefix string    // Line prefix (the frame edge)
	Level  int       // Current nesting depth
}

// PrintStmts prints a statement list with a blank line between
// consecutive statements, at every nesting level it is used for.
func (p *TreePrinter) PrintStmts(stmts []StatementNode) {
	for i, stmt := range stmts {
		p.PrintStmt(stmt)
		if i != len(stmts)-1 {
			p.emit("")
		}
	}
}

// PrintStmt prints one statement and its children.
func (p *TreePrinter) PrintStmt(stmt StatementNode) {
	switch stmt := stmt.(type) {
	case *DeclarativeStatementNode:
		p.emit("Var Decl")
		p.nest(func() {
			p.emit(fmt.Sprintf("Name = `%s`", stmt.Name.Name))
			if stmt.Init != nil {
				p.emit("Var Init")
				p.nest(func() { p.PrintExpr(stmt.Init) })
			}
		})
	case *ClassStatementNode:
		p.emit("Class Decl")
		p.nest(func() {
			p.emit(fmt.Sprintf("Name = `%s`", stmt.Name.Name))
			if stmt.SuperName != nil {
				p.emit(fmt.Sprintf("Extending `%s`", stmt.SuperName.Name))
			}
			p.emit("Methods")
			p.nest(func() {
				for _, method := range stmt.Methods {
					p.printFun(method, "Class Method")
				}
			})
		})
	case *FunctionStatementNode:
		p.printFun(stmt, "Fun Stmt")
	case *IfStatementNode:
		p.emit("If Stmt")
		p.nest(func() {
			p.emit("Cond Expr")
			p.nest(func() { p.PrintExpr(stmt.Condition) })
			p.emit("Then")
			p.nest(func() { p.PrintStmt(stmt.ThenBranch) })
			if stmt.ElseBranch != nil {
				p.emit("Else")
				p.nest(func() { p.PrintStmt(stmt.ElseBranch) })
			}
		})
	case *WhileLoopStatementNode:
		p.emit("While Stmt")
		p.nest(func() {
			p.emit("Cond Expr")
			p.nest(func() { p.PrintExpr(stmt.Condition) })
			p.emit("Body")
			p.nest(func() { p.PrintStmt(stmt.Body) })
		})
	case *ReturnStatementNode:
		p.emit("Return Stmt")
		if stmt.Value != nil {
			p.nest(func() { p.PrintExpr(stmt.Value) })
		}
	case *PrintStatementNode:
		p.emit("Print Stmt")
		p.nest(func() { p.PrintExpr(stmt.Expr) })
	case *BlockStatementNode:
		p.emit("Block Stmt")
		p.nest(func() { p.PrintStmts(stmt.Statements) })
	case *ExpressionStatementNode:
		p.emit("Expr Stmt")
		p.nest(func() { p.PrintExpr(stmt.Expr) })
	case *DummyStatementNode:
		p.emit("Dummy Stmt (INVALID TREE)")
	default:
		p.emit(fmt.Sprintf("Unknown Stmt (%T)", stmt))
	}
}

// PrintExpr prints one expression and its children.
func (p *TreePrinter) PrintExpr(expr ExpressionNode) {
	switch expr := expr.(type) {
	case *LiteralExpressionNode:
		p.emit(fmt.Sprintf("Literal (%s :: %s)", expr.Value.ToObject(), expr.Value.GetType()))
	case *IdentifierExpressionNode:
		p.emit(fmt.Sprintf("Var `%s`", expr.Ident.Name))
	case *ThisExpressionNode:
		p.emit("This")
	case *SuperExpressionNode:
		p.emit(fmt.Sprintf("Super `%s`", expr.Method.Name))
	case *GroupExpressionNode:
		p.emit("Group")
		p.nest(func() { p.PrintExpr(expr.Expr) })
	case *GetExpressionNode:
		p.emit(fmt.Sprintf("Get `%s`", expr.Name.Name))
		p.nest(func() { p.PrintExpr(expr.Object) })
	case *SetExpressionNode:
		p.emit(fmt.Sprintf("Set `%s`", expr.Name.Name))
		p.nest(func() {
			p.emit("Object")
			p.nest(func() { p.PrintExpr(expr.Object) })
			p.emit("Value")
			p.nest(func() { p.PrintExpr(expr.Value) })
		})
	case *CallExpressionNode:
		p.emit("Call")
		p.nest(func() {
			p.emit("Callee")
			p.nest(func() { p.PrintExpr(expr.Callee) })
			if len(expr.Arguments) > 0 {
				p.emit("Args")
				p.nest(func() {
					for _, arg := range expr.Arguments {
						p.PrintExpr(arg)
					}
				})
			}
		})
	case *UnaryExpressionNode:
		p.emit(fmt.Sprintf("Unary `%s`", expr.Operation.Literal))
		p.nest(func() { p.PrintExpr(expr.Right) })
	case *BinaryExpressionNode:
		p.emit(fmt.Sprintf("Binary `%s`", expr.Operation.Literal))
		p.nest(func() {
			p.PrintExpr(expr.Left)
			p.PrintExpr(expr.Right)
		})
	case *LogicalExpressionNode:
		p.emit(fmt.Sprintf("Logical `%s`", expr.Operation.Literal))
		p.nest(func() {
			p.PrintExpr(expr.Left)
			p.PrintExpr(expr.Right)
		})
	case *AssignmentExpressionNode:
		p.emit(fmt.Sprintf("Assignment `%s`", expr.Name.Name))
		p.nest(func() { p.PrintExpr(expr.Value) })
	default:
		p.emit(fmt.Sprintf("Unknown Expr (%T)", expr))
	}
}

// printFun prints a function declaration or class method under the
// given label.
func (p *TreePrinter) printFun(fun *FunctionStatementNode, label string) {
	p.emit(label)
	p.nest(func() {
		p.emit(fmt.Sprintf("Name = `%s`", fun.Name.Name))
		if len(fun.Params) > 0 {
			params := make([]string, 0, len(fun.Params))
			for _, param := range fun.Params {
				params = append(params, "`"+param.Name+"`")
			}
			p.emit(fmt.Sprintf("Params = [%s]", strings.Join(params, ", ")))
		}
		p.emit("Body")
		p.nest(func() { p.PrintStmts(fun.Body) })
	})
}

// emit writes one line at the current indentation.
func (p *TreePrinter) emit(line string) {
	fmt.Fprintf(p.Writer, "%s%s%s\n", p.Prefix, strings.Repeat("  ", p.Level), line)
}

// nest runs inner one indentation level deeper.
func (p *TreePrinter) nest(inner func()) {
	p.Level++
	inner()
	p.Level--
}
