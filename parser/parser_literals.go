/*
File   : nano/parser/parser_literals.go
Package: parser

primary() and its literal/array/range/dict/lambda/def-expr productions
(§4.C "primary" row). Lambda detection peeks ahead with a save/restore
cursor exactly like looksLikeClassDef in parser_statements.go.
*/
package parser

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/lexer"
)

func (p *Parser) primary() ast.Expr {
	tok := p.peek()

	switch {
	case p.match(lexer.KEYWORD_TRUE):
		return &ast.Literal{Tok: tok, Kind: ast.LiteralBool, Bool: true}
	case p.match(lexer.KEYWORD_FALSE):
		return &ast.Literal{Tok: tok, Kind: ast.LiteralBool, Bool: false}
	case p.match(lexer.KEYWORD_NONE):
		return &ast.Literal{Tok: tok, Kind: ast.LiteralNone}
	case p.check(lexer.NUMBER):
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralNumber, Text: tok.Literal.Number}
	case p.check(lexer.STRING):
		p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralString, Text: tok.Literal.Str}
	case p.check(lexer.KEYWORD_DEF):
		return p.functionExpr()
	case p.isLambdaStart():
		return p.lambda()
	case p.check(lexer.IDENT):
		p.advance()
		return &ast.Variable{Tok: tok, Name: tok.Lexeme}
	case p.check(lexer.LPAREN):
		p.advance()
		expr := p.expression()
		p.consume(lexer.RPAREN, "expect ')' after expression")
		return &ast.Grouping{Tok: tok, Expr: expr}
	case p.check(lexer.LBRACKET):
		return p.arrayOrRange()
	case p.check(lexer.LBRACE):
		return p.dictLiteral()
	}

	p.errorAt(tok, "expect expression")
	p.advance()
	return &ast.Literal{Tok: tok, Kind: ast.LiteralNone}
}

// functionExpr handles `def NAME(...){...}` in expression position
// (§4.C: "also a valid function expression that both produces and
// names the value").
func (p *Parser) functionExpr() ast.Expr {
	tok := p.advance() // `def`
	var name string
	if p.check(lexer.IDENT) {
		name = p.advance().Lexeme
	}
	params, body := p.paramListAndBody()
	return &ast.FunctionExpr{Tok: tok, Name: name, Params: params, Body: body}
}

// isLambdaStart peeks for `IDENT "->"` or `"(" IDENT,* ")" "->"`
// without consuming (§4.C lambda detection).
func (p *Parser) isLambdaStart() bool {
	save := p.current
	defer func() { p.current = save }()

	if p.check(lexer.IDENT) {
		p.advance()
		return p.check(lexer.ARROW)
	}
	if p.check(lexer.LPAREN) {
		p.advance()
		if !p.check(lexer.RPAREN) {
			for {
				if !p.check(lexer.IDENT) {
					return false
				}
				p.advance()
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		if !p.match(lexer.RPAREN) {
			return false
		}
		return p.check(lexer.ARROW)
	}
	return false
}

// lambda parses a `->` arrow function whose body is a single expression
// implicitly wrapped in a return statement (§4.C), producing a nameless
// FunctionExpr.
func (p *Parser) lambda() ast.Expr {
	tok := p.peek()
	var params []string
	if p.check(lexer.IDENT) {
		params = append(params, p.advance().Lexeme)
	} else {
		p.consume(lexer.LPAREN, "expect '(' to start lambda parameters")
		if !p.check(lexer.RPAREN) {
			for {
				nameTok := p.consume(lexer.IDENT, "expect parameter name")
				params = append(params, nameTok.Lexeme)
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		p.consume(lexer.RPAREN, "expect ')' after lambda parameters")
	}
	arrowTok := p.consume(lexer.ARROW, "expect '->' in lambda")
	bodyExpr := p.expression()
	body := &ast.BlockStmt{
		Tok:   arrowTok,
		Stmts: []ast.Stmt{&ast.ReturnStmt{Tok: arrowTok, Value: bodyExpr}},
	}
	return &ast.FunctionExpr{Tok: tok, Params: params, Body: body}
}

// arrayOrRange implements §4.C's "Array/range literal" production:
// `[]` is empty; otherwise the first element decides whether this is a
// Range (next token `::`) or a plain Array (comma-separated elements).
func (p *Parser) arrayOrRange() ast.Expr {
	tok := p.advance() // `[`
	if p.match(lexer.RBRACKET) {
		return &ast.ArrayExpr{Tok: tok}
	}

	first := p.expression()
	if p.match(lexer.DOUBLECOLON) {
		end := p.expression()
		var step ast.Expr
		if p.match(lexer.DOUBLECOLON) {
			step = p.expression()
		}
		p.consume(lexer.RBRACKET, "expect ']' after range")
		return &ast.RangeExpr{Tok: tok, Start: first, End: end, Step: step}
	}

	elements := []ast.Expr{first}
	for p.match(lexer.COMMA) {
		if p.check(lexer.RBRACKET) {
			break
		}
		elements = append(elements, p.expression())
	}
	p.consume(lexer.RBRACKET, "expect ']' after array elements")
	return &ast.ArrayExpr{Tok: tok, Elements: elements}
}

// dictLiteral implements `"{" (key ":" value),* ","? "}"`; a bare
// identifier key is rewritten as its name-as-string (§4.C).
func (p *Parser) dictLiteral() ast.Expr {
	tok := p.advance() // `{`
	var entries []ast.DictEntry
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		key := p.dictKey()
		p.consume(lexer.COLON, "expect ':' after dict key")
		value := p.expression()
		entries = append(entries, ast.DictEntry{Key: key, Value: value})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.consume(lexer.RBRACE, "expect '}' after dict literal")
	return &ast.DictExpr{Tok: tok, Entries: entries}
}

func (p *Parser) dictKey() ast.Expr {
	if p.check(lexer.IDENT) && p.peekNext().Type == lexer.COLON {
		tok := p.advance()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralString, Text: tok.Lexeme}
	}
	return p.expression()
}
