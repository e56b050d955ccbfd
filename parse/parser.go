package parse

import (
	"github.com/chidiwilliams/minilox/ast"
	"github.com/chidiwilliams/minilox/report"
)

// MaxDepth is the deepest nesting of unary operators and groupings
// the parser will follow before giving up on an expression.
const MaxDepth = 256

// Parser parses a flat list of tokens into
// an AST representation of the source program
type Parser struct {
	tokens  []ast.Token
	current int
	depth   int
	errors  int
	sink    report.Sink
}

// NewParser returns a new Parser that reads a list of tokens.
// The list must end with a TokenEof, as produced by the scanner.
func NewParser(tokens []ast.Token, sink report.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

/**
Parser grammar:

	program      => declaration* EOF
	declaration  => varDecl | statement
	varDecl      => "var" IDENTIFIER ( "=" expression )? ";"
	statement    => printStmt | exprStmt
	printStmt    => "print" expression ";"
	exprStmt     => expression ";"
	expression   => equality
	equality     => comparison ( ( "!=" | "==" ) comparison )*
	comparison   => term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term         => factor ( ( "-" | "+" ) factor )*
	factor       => unary ( ( "/" | "*" ) unary )*
	unary        => ( "!" | "-" ) unary | primary
	primary      => NUMBER | STRING | "true" | "false" | "nil"
									| IDENTIFIER | "(" expression ")"

*/

// Parse reads the list of tokens and returns a list of statements
// representing the source program. Syntax errors are reported to the
// sink and patched over, so the result always covers the whole input.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	return statements
}

// ParseRecover is like Parse, but after a declaration that reported an
// error it skips ahead to the next statement boundary with Synchronize.
func (p *Parser) ParseRecover() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		before := p.errors
		statements = append(statements, p.declaration())
		if p.errors > before && !p.atStatementBoundary() {
			p.Synchronize()
		}
	}
	return statements
}

func (p *Parser) declaration() ast.Stmt {
	if p.match(ast.TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(ast.TokenIdentifier, "for variable name")
	var initializer ast.Expr
	if p.match(ast.TokenEqual) {
		initializer = p.expression()
	}
	p.consume(ast.TokenSemicolon, "after variable declaration")
	return ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	if p.match(ast.TokenPrint) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "after value")
	return ast.PrintStmt{Expr: expr}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(ast.TokenSemicolon, "after expression")
	return ast.ExpressionStmt{Expr: expr}
}

func (p *Parser) expression() ast.Expr {
	return p.equality()
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()

	for p.match(ast.TokenBangEqual, ast.TokenEqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()

	for p.match(ast.TokenGreater, ast.TokenGreaterEqual, ast.TokenLess, ast.TokenLessEqual) {
		operator := p.previous()
		right := p.term()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()

	for p.match(ast.TokenMinus, ast.TokenPlus) {
		operator := p.previous()
		right := p.factor()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()

	for p.match(ast.TokenSlash, ast.TokenStar) {
		operator := p.previous()
		right := p.unary()
		expr = ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr
}

func (p *Parser) unary() ast.Expr {
	if !p.enter() {
		return p.nilLiteral()
	}
	defer p.leave()

	if p.match(ast.TokenBang, ast.TokenMinus) {
		operator := p.previous()
		right := p.unary()
		return ast.UnaryExpr{Operator: operator, Right: right}
	}

	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(ast.TokenFalse, ast.TokenTrue, ast.TokenNil, ast.TokenNumber, ast.TokenString):
		return ast.LiteralExpr{Value: p.previous()}
	case p.match(ast.TokenIdentifier):
		return ast.VariableExpr{Name: p.previous()}
	case p.match(ast.TokenLeftParen):
		expr := p.expression()
		p.consume(ast.TokenRightParen, "after expression")
		return ast.GroupingExpr{Expression: expr}
	}

	p.error(p.peek(), "expect expression")
	return p.nilLiteral()
}

// enter records one more level of expression nesting. It reports an
// error and returns false once MaxDepth is exceeded.
func (p *Parser) enter() bool {
	if p.depth >= MaxDepth {
		p.error(p.peek(), "expression nested too deeply")
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// nilLiteral stands in for an expression that could not be parsed
func (p *Parser) nilLiteral() ast.Expr {
	token := p.peek()
	return ast.LiteralExpr{Value: ast.Token{TokenType: ast.TokenNil, Lexeme: "nil", Line: token.Line, Column: token.Column}}
}

// consume checks that the next ast.Token is of the given ast.TokenType and then
// advances to the next token. If the check fails, it reports an error naming the
// expected token type and advances anyway, returning the mismatched token.
func (p *Parser) consume(tokenType ast.TokenType, context string) ast.Token {
	if p.check(tokenType) {
		return p.advance()
	}
	token := p.peek()
	p.error(token, "expected "+tokenType.String()+" "+context)
	p.advance()
	return token
}

func (p *Parser) error(token ast.Token, message string) {
	p.errors++
	if token.TokenType == ast.TokenEof {
		message += " at end"
	} else {
		message += " at '" + token.Lexeme + "'"
	}
	p.sink.Error(token.Line, token.Column, message)
}

// Synchronize discards tokens until it has passed a semicolon or is
// about to read a keyword that starts a statement. Parse never calls
// it; ParseRecover does after an erroneous declaration. At the end of
// input it does nothing.
func (p *Parser) Synchronize() {
	if p.isAtEnd() {
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().TokenType == ast.TokenSemicolon {
			return
		}
		if p.atStatementKeyword() {
			return
		}
		p.advance()
	}
}

func (p *Parser) atStatementBoundary() bool {
	if p.isAtEnd() || p.atStatementKeyword() {
		return true
	}
	return p.current > 0 && p.previous().TokenType == ast.TokenSemicolon
}

func (p *Parser) atStatementKeyword() bool {
	switch p.peek().TokenType {
	case ast.TokenClass, ast.TokenFun, ast.TokenVar, ast.TokenFor,
		ast.TokenIf, ast.TokenWhile, ast.TokenPrint, ast.TokenReturn:
		return true
	}
	return false
}

func (p *Parser) match(types ...ast.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(tokenType ast.TokenType) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().TokenType == tokenType
}

func (p *Parser) advance() ast.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().TokenType == ast.TokenEof
}

func (p *Parser) peek() ast.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() ast.Token {
	return p.tokens[p.current-1]
}
