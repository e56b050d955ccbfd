package interpret

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/chidiwilliams/minilox/ast"
	"github.com/chidiwilliams/minilox/env"
	"github.com/chidiwilliams/minilox/report"
	"github.com/chidiwilliams/minilox/value"
)

// Interpreter walks statements and expressions against an environment.
// Runtime errors are reported to the sink and evaluate to value.Null,
// so one bad expression never stops the statements after it.
type Interpreter struct {
	// current execution environment
	environment *env.Environment
	// standard output
	stdOut io.Writer
	// diagnostics
	sink report.Sink
}

// NewInterpreter sets up a new interpreter writing print output to stdOut
func NewInterpreter(stdOut io.Writer, sink report.Sink) *Interpreter {
	return &Interpreter{stdOut: stdOut, sink: sink}
}

// Execute runs each statement in source order within environment.
// A nil environment runs the statements in a fresh, discarded one.
func (in *Interpreter) Execute(stmts []ast.Stmt, environment *env.Environment) {
	previous := in.environment
	defer func() {
		in.environment = previous
	}()

	in.environment = orNew(environment)
	for _, statement := range stmts {
		statement.Accept(in)
	}
}

// Evaluate returns the value of expr, reading variables from environment
func (in *Interpreter) Evaluate(expr ast.Expr, environment *env.Environment) value.Value {
	previous := in.environment
	defer func() {
		in.environment = previous
	}()

	in.environment = orNew(environment)
	return in.evaluate(expr)
}

func orNew(environment *env.Environment) *env.Environment {
	if environment == nil {
		return env.New()
	}
	return environment
}

func (in *Interpreter) evaluate(expr ast.Expr) value.Value {
	return expr.Accept(in).(value.Value)
}

// error reports a runtime error at token and returns the value that
// takes the place of the failed expression
func (in *Interpreter) error(token ast.Token, message string) value.Value {
	in.sink.Error(token.Line, token.Column, message)
	return value.Null{}
}

func (in *Interpreter) VisitExpressionStmt(stmt ast.ExpressionStmt) interface{} {
	in.evaluate(stmt.Expr)
	return nil
}

// VisitPrintStmt evaluates the statement's expression and prints
// the result to the interpreter's standard output
func (in *Interpreter) VisitPrintStmt(stmt ast.PrintStmt) interface{} {
	val := in.evaluate(stmt.Expr)
	_, _ = io.WriteString(in.stdOut, val.String()+"\n")
	return nil
}

func (in *Interpreter) VisitVarStmt(stmt ast.VarStmt) interface{} {
	var val value.Value = value.Null{}
	if stmt.Initializer != nil {
		val = in.evaluate(stmt.Initializer)
	}
	in.environment.Define(stmt.Name.Lexeme, val)
	return nil
}

func (in *Interpreter) VisitVariableExpr(expr ast.VariableExpr) interface{} {
	val, err := in.environment.Get(expr.Name.Lexeme)
	if err != nil {
		return in.error(expr.Name, fmt.Sprintf("%s '%s'", err, expr.Name.Lexeme))
	}
	return val
}

func (in *Interpreter) VisitGroupingExpr(expr ast.GroupingExpr) interface{} {
	return in.evaluate(expr.Expression)
}

func (in *Interpreter) VisitLiteralExpr(expr ast.LiteralExpr) interface{} {
	token := expr.Value
	switch token.TokenType {
	case ast.TokenString:
		return value.String(token.Literal)
	case ast.TokenNumber:
		n, err := strconv.ParseFloat(token.Lexeme, 64)
		// digit runs too long for a float64 overflow to +Inf
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return in.error(token, "invalid number '"+token.Lexeme+"'")
		}
		return value.Number(n)
	case ast.TokenTrue:
		return value.Boolean(true)
	case ast.TokenFalse:
		return value.Boolean(false)
	case ast.TokenNil:
		return value.Null{}
	}
	return in.error(token, "invalid literal '"+token.Lexeme+"'")
}

func (in *Interpreter) VisitUnaryExpr(expr ast.UnaryExpr) interface{} {
	right := in.evaluate(expr.Right)

	switch right := right.(type) {
	case value.Number:
		if expr.Operator.TokenType == ast.TokenMinus {
			return -right
		}
		return in.error(expr.Operator, "invalid operator '"+expr.Operator.Lexeme+"' for number")
	case value.Boolean:
		if expr.Operator.TokenType == ast.TokenBang {
			return !right
		}
		return in.error(expr.Operator, "invalid operator '"+expr.Operator.Lexeme+"' for boolean")
	}
	return in.error(expr.Operator, fmt.Sprintf("invalid operand %s for '%s'", right.Kind(), expr.Operator.Lexeme))
}

// VisitBinaryExpr evaluates both operands, left first, and then
// dispatches on the pair of value kinds.
func (in *Interpreter) VisitBinaryExpr(expr ast.BinaryExpr) interface{} {
	left := in.evaluate(expr.Left)
	right := in.evaluate(expr.Right)

	if l, ok := left.(value.Number); ok {
		if r, ok := right.(value.Number); ok {
			return in.arithmetic(expr.Operator, l, r)
		}
	}
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			if expr.Operator.TokenType == ast.TokenPlus {
				return l + r
			}
			return in.error(expr.Operator, "invalid operator '"+expr.Operator.Lexeme+"' for strings")
		}
	}

	return in.error(expr.Operator,
		fmt.Sprintf("invalid operands %s and %s for '%s'", left.Kind(), right.Kind(), expr.Operator.Lexeme))
}

func (in *Interpreter) arithmetic(operator ast.Token, left, right value.Number) value.Value {
	switch operator.TokenType {
	case ast.TokenPlus:
		return left + right
	case ast.TokenMinus:
		return left - right
	case ast.TokenSlash:
		return left / right
	case ast.TokenStar:
		return left * right
	// comparison
	case ast.TokenGreater:
		return value.Boolean(left > right)
	case ast.TokenGreaterEqual:
		return value.Boolean(left >= right)
	case ast.TokenLess:
		return value.Boolean(left < right)
	case ast.TokenLessEqual:
		return value.Boolean(left <= right)
	case ast.TokenEqualEqual:
		return value.Boolean(left == right)
	case ast.TokenBangEqual:
		return value.Boolean(left != right)
	}
	return in.error(operator, "invalid operator '"+operator.Lexeme+"' for numbers")
}
