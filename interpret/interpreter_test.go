package interpret

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/chidiwilliams/minilox/ast"
	"github.com/chidiwilliams/minilox/env"
	"github.com/chidiwilliams/minilox/parse"
	"github.com/chidiwilliams/minilox/report"
	"github.com/chidiwilliams/minilox/scan"
	"github.com/chidiwilliams/minilox/value"
)

// run scans, parses and executes source in environment, returning what
// was printed and the diagnostics reported along the way
func run(t *testing.T, source string, environment *env.Environment) (string, *report.Recorder) {
	t.Helper()
	recorder := &report.Recorder{}
	tokens := scan.NewScanner(source, recorder).ScanTokens()
	statements := parse.NewParser(tokens, recorder).Parse()

	stdOut := &bytes.Buffer{}
	NewInterpreter(stdOut, recorder).Execute(statements, environment)
	return stdOut.String(), recorder
}

func number(n float64) ast.Expr {
	lexeme := strconv.FormatFloat(n, 'f', -1, 64)
	return ast.LiteralExpr{Value: ast.Token{TokenType: ast.TokenNumber, Lexeme: lexeme, Literal: lexeme}}
}

func str(s string) ast.Expr {
	return ast.LiteralExpr{Value: ast.Token{TokenType: ast.TokenString, Lexeme: s, Literal: s}}
}

func operator(tokenType ast.TokenType, lexeme string) ast.Token {
	return ast.Token{TokenType: tokenType, Lexeme: lexeme}
}

func Test_Run(t *testing.T) {
	tests := []struct {
		name   string
		source string
		stdOut string
	}{
		// atoms
		{"string", `print "hello world";`, "hello world\n"},
		{"number", "print 342;", "342\n"},
		{"true", "print true;", "true\n"},
		{"false", "print false;", "false\n"},
		{"nil", "print nil;", "null\n"},

		// comments
		{"line comment after source", "print 1 + 1; // hello", "2\n"},
		{"block comment", "print /* one */ 1;", "1\n"},

		// unary and binary operations
		{"arithmetic operations", "print -1 + 2 * 3 - 4 / 5;", "4.2\n"},
		{"repeated factor", "print 2 * 3 * 4;", "24\n"},
		{"grouping", "print (1 + 2) * 3;", "9\n"},
		{"string concatenation", `print "hello" + " " + "world";`, "hello world\n"},
		{"greater than", "print 4 > 3;", "true\n"},
		{"greater than or equal to", "print 2 >= 3;", "false\n"},
		{"less than", "print 2 < 3;", "true\n"},
		{"less than or equal to", "print 3 <= 3;", "true\n"},
		{"equal to", "print 5 == 5;", "true\n"},
		{"not equal to", "print 4 != 4;", "false\n"},
		{"not", "print !false;", "true\n"},
		{"negation", "print --3;", "3\n"},
		{"division by zero", "print 1 / 0;", "inf\n"},
		{"negative division by zero", "print -1 / 0;", "-inf\n"},
		{"zero by zero", "print 0 / 0;", "NaN\n"},
		{"large number", "print 100000000000000000000000;", "100000000000000000000000\n"},

		// variables
		{"variable declaration", "var x = 1 + 2; print x;", "3\n"},
		{"declaration without initializer", "var a; print a;", "null\n"},
		{"redeclaration", "var a = 10; print a; var a = a * 2; print a;", "10\n20\n"},
		{"expression statement prints nothing", "1 + 2;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut, recorder := run(t, tt.source, env.New())
			if stdOut != tt.stdOut {
				t.Fatalf("stdOut: got %q, expected %q", stdOut, tt.stdOut)
			}
			if len(recorder.Diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %v", recorder.Diagnostics)
			}
		})
	}
}

func Test_RunErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		stdOut   string
		messages []string
	}{
		{
			"undefined variable",
			"print x; print 1;",
			"null\n1\n",
			[]string{"undefined variable 'x'"},
		},
		{
			"mismatched operands",
			`print 1 + "a"; print 2;`,
			"null\n2\n",
			[]string{"invalid operands number and string for '+'"},
		},
		{
			"string subtraction",
			`print "a" - "b";`,
			"null\n",
			[]string{"invalid operator '-' for strings"},
		},
		{
			"string comparison",
			`print "a" == "a";`,
			"null\n",
			[]string{"invalid operator '==' for strings"},
		},
		{
			"boolean equality",
			"print true == true;",
			"null\n",
			[]string{"invalid operands boolean and boolean for '=='"},
		},
		{
			"negate string",
			`print -"a";`,
			"null\n",
			[]string{"invalid operand string for '-'"},
		},
		{
			"not a number",
			"print !1;",
			"null\n",
			[]string{"invalid operator '!' for number"},
		},
		{
			"negate boolean",
			"print -true;",
			"null\n",
			[]string{"invalid operator '-' for boolean"},
		},
		{
			"error inside larger expression",
			"print (x + 1) + 2;",
			"null\n",
			[]string{"undefined variable 'x'", "invalid operands null and number for '+'", "invalid operands null and number for '+'"},
		},
		{
			"failed initializer binds null",
			`var a = 1 + "b"; print a;`,
			"null\n",
			[]string{"invalid operands number and string for '+'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut, recorder := run(t, tt.source, env.New())
			if stdOut != tt.stdOut {
				t.Errorf("stdOut: got %q, expected %q", stdOut, tt.stdOut)
			}
			if len(recorder.Diagnostics) != len(tt.messages) {
				t.Fatalf("diagnostics = %v, expected %v", recorder.Diagnostics, tt.messages)
			}
			for i, message := range tt.messages {
				if recorder.Diagnostics[i].Message != message {
					t.Errorf("diagnostic %d = %q, expected %q", i, recorder.Diagnostics[i].Message, message)
				}
			}
		})
	}
}

func TestInterpreter_ArithmeticMatchesFloat64(t *testing.T) {
	operands := []float64{0, 1, 2, 3, 7, 10, 255, 1e6, 123456789}
	operators := []struct {
		token ast.Token
		apply func(a, b float64) float64
	}{
		{operator(ast.TokenPlus, "+"), func(a, b float64) float64 { return a + b }},
		{operator(ast.TokenMinus, "-"), func(a, b float64) float64 { return a - b }},
		{operator(ast.TokenStar, "*"), func(a, b float64) float64 { return a * b }},
		{operator(ast.TokenSlash, "/"), func(a, b float64) float64 { return a / b }},
	}

	recorder := &report.Recorder{}
	in := NewInterpreter(&bytes.Buffer{}, recorder)
	for _, a := range operands {
		for _, b := range operands {
			for _, op := range operators {
				expr := ast.BinaryExpr{Left: number(a), Operator: op.token, Right: number(b)}
				got, ok := in.Evaluate(expr, env.New()).(value.Number)
				if !ok {
					t.Fatalf("%v %s %v did not produce a number", a, op.token.Lexeme, b)
				}

				want := op.apply(a, b)
				if math.IsNaN(want) {
					if !math.IsNaN(float64(got)) {
						t.Errorf("%v %s %v = %v, expected NaN", a, op.token.Lexeme, b, got)
					}
					continue
				}
				if float64(got) != want {
					t.Errorf("%v %s %v = %v, expected %v", a, op.token.Lexeme, b, got, want)
				}
			}
		}
	}
	if len(recorder.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", recorder.Diagnostics)
	}
}

func TestInterpreter_StringConcatenation(t *testing.T) {
	pairs := [][2]string{{"", ""}, {"a", ""}, {"", "b"}, {"foo", "bar"}, {"héllo ", "wörld"}}

	recorder := &report.Recorder{}
	in := NewInterpreter(&bytes.Buffer{}, recorder)
	for _, pair := range pairs {
		expr := ast.BinaryExpr{Left: str(pair[0]), Operator: operator(ast.TokenPlus, "+"), Right: str(pair[1])}
		got := in.Evaluate(expr, env.New())
		if got != value.String(pair[0]+pair[1]) {
			t.Errorf("%q + %q = %v", pair[0], pair[1], got)
		}

		expr.Operator = operator(ast.TokenStar, "*")
		if got := in.Evaluate(expr, env.New()); got != (value.Null{}) {
			t.Errorf("%q * %q = %v, expected null", pair[0], pair[1], got)
		}
	}
	if got := recorder.Count(report.SeverityError); got != len(pairs) {
		t.Errorf("got %d errors, expected %d", got, len(pairs))
	}
}

func TestInterpreter_InvalidLiteral(t *testing.T) {
	recorder := &report.Recorder{}
	in := NewInterpreter(&bytes.Buffer{}, recorder)

	expr := ast.LiteralExpr{Value: ast.Token{TokenType: ast.TokenIdentifier, Lexeme: "x"}}
	if got := in.Evaluate(expr, env.New()); got != (value.Null{}) {
		t.Errorf("Evaluate() = %v, expected null", got)
	}
	if len(recorder.Diagnostics) != 1 || recorder.Diagnostics[0].Message != "invalid literal 'x'" {
		t.Errorf("diagnostics = %v", recorder.Diagnostics)
	}
}

func TestInterpreter_SharedEnvironment(t *testing.T) {
	environment := env.New()

	if _, recorder := run(t, "var x = 5;", environment); len(recorder.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", recorder.Diagnostics)
	}
	stdOut, _ := run(t, "print x;", environment)
	if stdOut != "5\n" {
		t.Errorf("stdOut: got %q, expected %q", stdOut, "5\n")
	}

	stdOut, recorder := run(t, "print x;", env.New())
	if stdOut != "null\n" || len(recorder.Diagnostics) != 1 {
		t.Errorf("fresh environment: stdOut %q, diagnostics %v", stdOut, recorder.Diagnostics)
	}
}

func TestInterpreter_NilEnvironment(t *testing.T) {
	stdOut, recorder := run(t, "var x = 1; print x + 1; print y;", nil)
	if stdOut != "2\nnull\n" {
		t.Errorf("stdOut: got %q, expected %q", stdOut, "2\nnull\n")
	}
	if len(recorder.Diagnostics) != 1 || recorder.Diagnostics[0].Message != "undefined variable 'y'" {
		t.Errorf("diagnostics = %v", recorder.Diagnostics)
	}

	in := NewInterpreter(&bytes.Buffer{}, recorder)
	if got := in.Evaluate(number(3), nil); got != value.Number(3) {
		t.Errorf("Evaluate() = %v, expected 3", got)
	}
}
