/*
File   : nano/parser/parser_statements.go
Package: parser

Top-level statement dispatch (§4.C point 1-3): the class-definition
lookahead detector runs first via a save/restore cursor, then keyword-
prefixed statements, then expression statements.
*/
package parser

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/lexer"
)

func (p *Parser) statement() ast.Stmt {
	if p.looksLikeClassDef() {
		return p.classDeclaration()
	}

	switch {
	case p.check(lexer.KEYWORD_IF):
		return p.ifStatement()
	case p.check(lexer.KEYWORD_WHILE):
		return p.whileStatement()
	case p.check(lexer.KEYWORD_FOR):
		return p.forStatement()
	case p.check(lexer.KEYWORD_DEF):
		return p.functionDeclaration()
	case p.check(lexer.KEYWORD_RETURN):
		return p.returnStatement()
	case p.check(lexer.LBRACE):
		return p.block()
	}
	return p.expressionStatement()
}

// looksLikeClassDef implements §4.C's "Class definition detector":
// `IDENT ":" [IDENT] "=" "{"` without consuming input unless it matches.
func (p *Parser) looksLikeClassDef() bool {
	save := p.current
	defer func() { p.current = save }()

	if !p.check(lexer.IDENT) {
		return false
	}
	p.advance()
	if !p.match(lexer.COLON) {
		return false
	}
	if p.check(lexer.IDENT) {
		p.advance()
	}
	if !p.match(lexer.ASSIGN) {
		return false
	}
	return p.check(lexer.LBRACE)
}

func (p *Parser) expressionStatement() ast.Stmt {
	tok := p.peek()
	expr := p.expression()
	p.optionalSemi()
	return &ast.ExprStmt{Tok: tok, Expr: expr}
}

func (p *Parser) block() *ast.BlockStmt {
	tok := p.consume(lexer.LBRACE, "expect '{' before block")
	var stmts []ast.Stmt
	for !p.check(lexer.RBRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.statement())
	}
	p.consume(lexer.RBRACE, "expect '}' after block")
	return &ast.BlockStmt{Tok: tok, Stmts: stmts}
}

func (p *Parser) returnStatement() ast.Stmt {
	tok := p.advance() // `return`
	var value ast.Expr
	if !p.check(lexer.RBRACE) && !p.check(lexer.SEMI) && !p.isAtEnd() {
		value = p.expression()
	}
	p.optionalSemi()
	return &ast.ReturnStmt{Tok: tok, Value: value}
}
