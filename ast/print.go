package ast

import (
	"fmt"
	"strings"
)

type astPrinter struct{}

// Print returns a parenthesized representation of an Expr node.
// The output depends only on the tree, so printing the same tree
// twice gives the same text.
func Print(expr Expr) string {
	return astPrinter{}.print(expr)
}

// PrintStmts returns one line per statement
func PrintStmts(stmts []Stmt) string {
	a := astPrinter{}
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = stmt.Accept(a).(string)
	}
	return strings.Join(lines, "\n")
}

func (a astPrinter) print(expr Expr) string {
	return expr.Accept(a).(string)
}

func (a astPrinter) VisitExpressionStmt(stmt ExpressionStmt) interface{} {
	return a.parenthesize(";", stmt.Expr)
}

func (a astPrinter) VisitPrintStmt(stmt PrintStmt) interface{} {
	return a.parenthesize("print", stmt.Expr)
}

func (a astPrinter) VisitVarStmt(stmt VarStmt) interface{} {
	if stmt.Initializer == nil {
		return a.parenthesize("var " + stmt.Name.Lexeme)
	}
	return a.parenthesize("var "+stmt.Name.Lexeme, stmt.Initializer)
}

func (a astPrinter) VisitVariableExpr(expr VariableExpr) interface{} {
	return expr.Name.Lexeme
}

func (a astPrinter) VisitBinaryExpr(expr BinaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (a astPrinter) VisitGroupingExpr(expr GroupingExpr) interface{} {
	return a.parenthesize("group", expr.Expression)
}

func (a astPrinter) VisitLiteralExpr(expr LiteralExpr) interface{} {
	switch expr.Value.TokenType {
	case TokenNil:
		return "nil"
	case TokenString:
		return fmt.Sprintf("%q", expr.Value.Literal)
	}
	return expr.Value.Lexeme
}

func (a astPrinter) VisitUnaryExpr(expr UnaryExpr) interface{} {
	return a.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (a astPrinter) parenthesize(name string, exprs ...Expr) string {
	var str string

	str += "(" + name
	for _, expr := range exprs {
		str += " " + a.print(expr)
	}
	str += ")"

	return str
}
