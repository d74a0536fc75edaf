/*
File   : nano/parser/parser_precedence.go
Package: parser

Operator-precedence ladder (§4.C), lowest to highest: ternary, assign,
or, and, equality, comparison, term, factor, unary, then a single
postfix loop folding together the call/dot/subscript suffix levels
(the grammar table lists call and subscript as separate nested levels,
but both only ever appear as postfix suffixes of the same primary, so
one combined left-to-right loop accepts every chain the nested levels
do, and also accepts a subscript after a call or dot, as in
`a[0].b(c)[1]`).
*/
package parser

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/lexer"
)

func (p *Parser) expression() ast.Expr {
	return p.ternary()
}

// ternary: `assign ? expr : ternary` (right-assoc); the condition is
// parsed at the assign level, the next level up the ladder.
func (p *Parser) ternary() ast.Expr {
	expr := p.assign()
	if p.check(lexer.QUESTION) {
		tok := p.advance()
		then := p.expression()
		p.consume(lexer.COLON, "expect ':' in ternary expression")
		elseExpr := p.ternary()
		return &ast.Ternary{Tok: tok, Cond: expr, Then: then, Else: elseExpr}
	}
	return expr
}

// assign: `or = assign` (right-assoc); target must be Variable or Get.
func (p *Parser) assign() ast.Expr {
	expr := p.or()
	if p.check(lexer.ASSIGN) {
		tok := p.advance()
		value := p.assign()
		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Tok: tok, Name: target.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Tok: tok, Obj: target.Obj, Index: target.Index, Value: value}
		default:
			p.errorAt(tok, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.check(lexer.OR) {
		tok := p.advance()
		rhs := p.and()
		expr = &ast.Binary{Tok: tok, Op: lexer.OR, Lhs: expr, Rhs: rhs}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.check(lexer.AND) {
		tok := p.advance()
		rhs := p.equality()
		expr = &ast.Binary{Tok: tok, Op: lexer.AND, Lhs: expr, Rhs: rhs}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(lexer.EQ) || p.check(lexer.NE) {
		tok := p.advance()
		rhs := p.comparison()
		expr = &ast.Binary{Tok: tok, Op: tok.Type, Lhs: expr, Rhs: rhs}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(lexer.LT) || p.check(lexer.LE) || p.check(lexer.GT) || p.check(lexer.GE) {
		tok := p.advance()
		rhs := p.term()
		expr = &ast.Binary{Tok: tok, Op: tok.Type, Lhs: expr, Rhs: rhs}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		tok := p.advance()
		rhs := p.factor()
		expr = &ast.Binary{Tok: tok, Op: tok.Type, Lhs: expr, Rhs: rhs}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) {
		tok := p.advance()
		rhs := p.unary()
		expr = &ast.Binary{Tok: tok, Op: tok.Type, Lhs: expr, Rhs: rhs}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.check(lexer.BANG) || p.check(lexer.MINUS) {
		tok := p.advance()
		rhs := p.unary()
		return &ast.Unary{Tok: tok, Op: tok.Type, Rhs: rhs}
	}
	return p.call()
}

// call folds the call/dot/subscript postfix suffixes left to right.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.check(lexer.LPAREN):
			tok := p.advance()
			args := p.argumentList()
			expr = &ast.Call{Tok: tok, Callee: expr, Args: args}
		case p.check(lexer.DOT):
			tok := p.advance()
			nameTok := p.consume(lexer.IDENT, "expect property name after '.'")
			expr = &ast.DotExpr{Tok: tok, Obj: expr, Name: nameTok.Lexeme}
		case p.check(lexer.LBRACKET):
			tok := p.advance()
			index := p.expression()
			p.consume(lexer.RBRACKET, "expect ']' after subscript")
			expr = &ast.GetExpr{Tok: tok, Obj: expr, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) argumentList() []ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RPAREN) {
		for {
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RPAREN, "expect ')' after arguments")
	return args
}
