package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer_Operators(t *testing.T) {
	toks := New(`+ - * / ! ? : , . ; ( ) { } [ ] -> == != <= >= < > = && || ::`).AllTokens()

	expected := []TokenType{
		PLUS, MINUS, STAR, SLASH, BANG, QUESTION, COLON, COMMA, DOT, SEMI,
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET,
		ARROW, EQ, NE, LE, GE, LT, GT, ASSIGN, AND, OR, DOUBLECOLON,
		EOF,
	}

	assert.Len(t, toks, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, toks[i].Type, "token %d", i)
	}
}

func TestLexer_NumbersAndStrings(t *testing.T) {
	toks := New(`42 3.14 "hello\nworld"`).AllTokens()

	assert.Equal(t, NUMBER, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal.Number)

	assert.Equal(t, NUMBER, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal.Number)

	assert.Equal(t, STRING, toks[2].Type)
	assert.Equal(t, "hello\nworld", toks[2].Literal.Str)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := New(`if else elif while for def return true false None and or in x foo_bar`).AllTokens()

	expected := []TokenType{
		KEYWORD_IF, KEYWORD_ELSE, KEYWORD_ELIF, KEYWORD_WHILE, KEYWORD_FOR,
		KEYWORD_DEF, KEYWORD_RETURN, KEYWORD_TRUE, KEYWORD_FALSE, KEYWORD_NONE,
		KEYWORD_AND, KEYWORD_OR, KEYWORD_IN, IDENT, IDENT, EOF,
	}
	assert.Len(t, toks, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, toks[i].Type, "token %d", i)
	}
}

func TestLexer_CommentsAndWhitespace(t *testing.T) {
	toks := New("x = 1 # a comment\ny = 2 // another\n").AllTokens()
	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []TokenType{IDENT, ASSIGN, NUMBER, IDENT, ASSIGN, NUMBER, EOF}, kinds)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[3].Line)
}

func TestLexer_LineTrackingAcrossStrings(t *testing.T) {
	toks := New("\"a\nb\"\nx").AllTokens()
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, IDENT, toks[1].Type)
	assert.Equal(t, 3, toks[1].Line)
}

func TestLexer_InvalidSingleAmpersandAndPipe(t *testing.T) {
	toks := New(`& |`).AllTokens()
	assert.Equal(t, INVALID, toks[0].Type)
	assert.Equal(t, INVALID, toks[1].Type)
}

func TestLexer_UnknownEscapePassesBackslashThrough(t *testing.T) {
	l := New(`"\q"`)
	tok := l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, `\q`, tok.Literal.Str)
	assert.Empty(t, l.Errors)
}

func TestLexer_UnterminatedStringReportsDiagnosticButYieldsScannedText(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	assert.Equal(t, STRING, tok.Type)
	assert.Equal(t, "abc", tok.Literal.Str)
	assert.True(t, l.HasErrors())
	assert.Contains(t, l.Errors[0], "unterminated string")
}
