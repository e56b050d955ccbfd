package ast

//go:generate go run ../cmd/ast.go

import "fmt"

type TokenType uint8

const (
	// single-character tokens
	TokenLeftParen TokenType = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// one or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// literals
	TokenIdentifier
	TokenString
	TokenNumber

	// keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEof
)

var tokenNames = [...]string{
	TokenLeftParen:    "'('",
	TokenRightParen:   "')'",
	TokenLeftBrace:    "'{'",
	TokenRightBrace:   "'}'",
	TokenComma:        "','",
	TokenDot:          "'.'",
	TokenMinus:        "'-'",
	TokenPlus:         "'+'",
	TokenSemicolon:    "';'",
	TokenSlash:        "'/'",
	TokenStar:         "'*'",
	TokenBang:         "'!'",
	TokenBangEqual:    "'!='",
	TokenEqual:        "'='",
	TokenEqualEqual:   "'=='",
	TokenGreater:      "'>'",
	TokenGreaterEqual: "'>='",
	TokenLess:         "'<'",
	TokenLessEqual:    "'<='",
	TokenIdentifier:   "identifier",
	TokenString:       "string",
	TokenNumber:       "number",
	TokenAnd:          "'and'",
	TokenClass:        "'class'",
	TokenElse:         "'else'",
	TokenFalse:        "'false'",
	TokenFun:          "'fun'",
	TokenFor:          "'for'",
	TokenIf:           "'if'",
	TokenNil:          "'nil'",
	TokenOr:           "'or'",
	TokenPrint:        "'print'",
	TokenReturn:       "'return'",
	TokenSuper:        "'super'",
	TokenThis:         "'this'",
	TokenTrue:         "'true'",
	TokenVar:          "'var'",
	TokenWhile:        "'while'",
	TokenEof:          "end of input",
}

// String returns the name used for the token type in diagnostics
func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

// Keywords maps reserved words to their token types. Only var, print,
// true, false and nil mean anything to the parser; the rest are reserved.
var Keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// Token is a classified, positioned piece of source text.
//
// Column is not a byte offset: it counts the spaces and tabs seen
// since the last line break.
type Token struct {
	TokenType TokenType
	Lexeme    string
	Literal   string
	Line      int
	Column    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %s", t.TokenType, t.Lexeme, t.Literal)
}
