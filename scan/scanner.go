package scan

import (
	"os"

	"github.com/chidiwilliams/minilox/ast"
	"github.com/chidiwilliams/minilox/report"
)

// Scanner converts a source text
// into a slice of ast.Token-s
type Scanner struct {
	start   int
	current int
	line    int
	column  int
	source  []rune
	tokens  []ast.Token
	sink    report.Sink
	exit    func(code int)
	exited  bool
}

// Option configures a Scanner
type Option func(*Scanner)

// WithExit replaces the function called when the scanner meets the
// exit keyword. It defaults to os.Exit.
func WithExit(exit func(code int)) Option {
	return func(s *Scanner) {
		s.exit = exit
	}
}

// NewScanner returns a new Scanner
func NewScanner(source string, sink report.Sink, opts ...Option) *Scanner {
	s := &Scanner{source: []rune(source), sink: sink, exit: os.Exit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanTokens returns a slice of tokens representing the source text.
// The slice always ends with exactly one TokenEof. Malformed input is
// reported to the sink and skipped; scanning never stops early except
// for the exit keyword.
func (s *Scanner) ScanTokens() []ast.Token {
	for !s.isAtEnd() && !s.exited {
		// we're at the beginning of the next lexeme
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, ast.Token{TokenType: ast.TokenEof, Line: s.line, Column: s.column})
	return s.tokens
}

func (s *Scanner) scanToken() {
	char := s.advance()
	switch char {
	case '(':
		s.addToken(ast.TokenLeftParen)
	case ')':
		s.addToken(ast.TokenRightParen)
	case '{':
		s.addToken(ast.TokenLeftBrace)
	case '}':
		s.addToken(ast.TokenRightBrace)
	case ',':
		s.addToken(ast.TokenComma)
	case '.':
		s.addToken(ast.TokenDot)
	case '-':
		s.addToken(ast.TokenMinus)
	case '+':
		s.addToken(ast.TokenPlus)
	case ';':
		s.addToken(ast.TokenSemicolon)
	case '*':
		s.addToken(ast.TokenStar)

	// with look-ahead
	case '!':
		if s.match('=') {
			s.addToken(ast.TokenBangEqual)
		} else {
			s.addToken(ast.TokenBang)
		}
	case '=':
		if s.match('=') {
			s.addToken(ast.TokenEqualEqual)
		} else {
			s.addToken(ast.TokenEqual)
		}
	case '<':
		if s.match('=') {
			s.addToken(ast.TokenLessEqual)
		} else {
			s.addToken(ast.TokenLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(ast.TokenGreaterEqual)
		} else {
			s.addToken(ast.TokenGreater)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && s.peek() != '\r' && !s.isAtEnd() {
				s.advance()
			}
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(ast.TokenSlash)
		}

	// whitespace
	case ' ', '\t':
		s.column++
	case '\n', '\r':
		s.newline()

	// string
	case '"':
		s.string()

	default:
		if isDigit(char) {
			s.number()
		} else if isAlpha(char) {
			s.identifier()
		} else {
			s.sink.Error(s.line, s.column, "unexpected character '"+string(char)+"'")
		}
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	curr := s.source[s.current]
	s.current++
	return curr
}

func (s *Scanner) newline() {
	s.line++
	s.column = 0
}

func (s *Scanner) addToken(tokenType ast.TokenType) {
	text := string(s.source[s.start:s.current])
	s.addTokenWithLiteral(tokenType, text, text)
}

func (s *Scanner) addTokenWithLiteral(tokenType ast.TokenType, lexeme, literal string) {
	token := ast.Token{TokenType: tokenType, Lexeme: lexeme, Literal: literal, Line: s.line, Column: s.column}
	s.tokens = append(s.tokens, token)
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}

	if s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

// blockComment skips everything up to and including the next "*/".
// Block comments do not nest.
func (s *Scanner) blockComment() {
	line, column := s.line, s.column
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return
		}
		if c := s.advance(); c == '\n' || c == '\r' {
			s.newline()
		}
	}
	s.sink.Warning(line, column, "unterminated block comment")
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}

	// the literal excludes the quotes
	value := string(s.source[s.start+1 : s.current])

	if s.isAtEnd() {
		s.sink.Error(s.line, s.column, "unterminated string")
	} else {
		s.advance() // the closing "
	}

	s.addTokenWithLiteral(ast.TokenString, value, value)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	s.addToken(ast.TokenNumber)
}

func (s *Scanner) identifier() {
	for isAlpha(s.peek()) {
		s.advance()
	}

	text := string(s.source[s.start:s.current])
	if text == "exit" {
		s.exitNow()
		return
	}

	tokenType, found := ast.Keywords[text]
	if !found {
		tokenType = ast.TokenIdentifier
	}
	s.addToken(tokenType)
}

// exitNow stops the process. If the exit function returns (as it
// does in tests), everything scanned so far is dropped so that no
// statement from this source can run.
func (s *Scanner) exitNow() {
	s.exit(0)
	s.exited = true
	s.tokens = nil
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(char rune) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char == '_')
}
