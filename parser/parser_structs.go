/*
File   : nano/parser/parser_structs.go
Package: parser

Class-definition production (§4.C, §4.F Class statement): `name ":"
[parent] "=" "{" body "}"`. Reached only after looksLikeClassDef (in
parser_statements.go) has confirmed the lookahead pattern.
*/
package parser

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/lexer"
)

func (p *Parser) classDeclaration() ast.Stmt {
	nameTok := p.advance() // IDENT
	tok := nameTok
	p.consume(lexer.COLON, "expect ':' after class name")

	var parent string
	if p.check(lexer.IDENT) {
		parent = p.advance().Lexeme
	}
	p.consume(lexer.ASSIGN, "expect '=' in class definition")
	p.consume(lexer.LBRACE, "expect '{' to open class body")

	var body []ast.Stmt
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		body = append(body, p.statement())
	}
	p.consume(lexer.RBRACE, "expect '}' to close class body")

	return &ast.ClassStmt{Tok: tok, Name: nameTok.Lexeme, Parent: parent, Body: body}
}
