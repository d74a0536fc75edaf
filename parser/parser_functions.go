/*
File   : nano/parser/parser_functions.go
Package: parser

Function declaration and parameter-list production (§4.C): `def NAME(
params? ) { body }`. The same shape also appears in expression position
(parser_literals.go's primary() handles that case by calling
paramListAndBody after seeing `def`).
*/
package parser

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/lexer"
)

func (p *Parser) functionDeclaration() ast.Stmt {
	tok := p.advance() // `def`
	nameTok := p.consume(lexer.IDENT, "expect function name")
	params, body := p.paramListAndBody()
	return &ast.FuncStmt{Tok: tok, Name: nameTok.Lexeme, Params: params, Body: body}
}

// paramListAndBody parses `( IDENT,* ) { body }`, shared by the
// statement and expression forms of a function definition.
func (p *Parser) paramListAndBody() ([]string, *ast.BlockStmt) {
	p.consume(lexer.LPAREN, "expect '(' after function name")
	var params []string
	if !p.check(lexer.RPAREN) {
		for {
			nameTok := p.consume(lexer.IDENT, "expect parameter name")
			params = append(params, nameTok.Lexeme)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RPAREN, "expect ')' after parameters")
	body := p.block()
	return params, body
}
