/*
File   : nano/parser/parser_conditionals.go
Package: parser

if/while/for statement production (§4.C). Braces are mandatory around
then/else/loop bodies; there is no chained else-if form (§9).
*/
package parser

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/lexer"
)

func (p *Parser) ifStatement() ast.Stmt {
	tok := p.advance() // `if`
	p.consume(lexer.LPAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(lexer.RPAREN, "expect ')' after if condition")
	then := p.block()

	var elseBlock *ast.BlockStmt
	if p.match(lexer.KEYWORD_ELSE) {
		elseBlock = p.block()
	}
	return &ast.IfStmt{Tok: tok, Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) whileStatement() ast.Stmt {
	tok := p.advance() // `while`
	p.consume(lexer.LPAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(lexer.RPAREN, "expect ')' after while condition")
	body := p.block()
	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}
}

func (p *Parser) forStatement() ast.Stmt {
	tok := p.advance() // `for`
	p.consume(lexer.LPAREN, "expect '(' after 'for'")
	nameTok := p.consume(lexer.IDENT, "expect loop variable name")
	p.consume(lexer.KEYWORD_IN, "expect 'in' in for-statement")
	iterable := p.expression()
	p.consume(lexer.RPAREN, "expect ')' after for-statement header")
	body := p.block()
	return &ast.ForStmt{Tok: tok, Var: nameTok.Lexeme, Iterable: iterable, Body: body}
}
