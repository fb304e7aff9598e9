package parser

import (
	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// Precedence levels implement spec.md §4.2's ladder: or < and < comparisons
// < additive < multiplicative < power < unary prefix < postfix. "not" has
// no infix binding power of its own — it is parsed as a prefix operator at
// PREFIX level, the same as negation.
const (
	LOWEST int = iota
	ORP
	ANDP
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	POWER
	PREFIX
	POSTFIX
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:           ORP,
	lexer.AND:          ANDP,
	lexer.EQUALS:       COMPARISON,
	lexer.NOT_EQUAL:    COMPARISON,
	lexer.GREATER:      COMPARISON,
	lexer.LESS:         COMPARISON,
	lexer.AT_LEAST:     COMPARISON,
	lexer.AT_MOST:      COMPARISON,
	lexer.BETWEEN:      COMPARISON,
	lexer.PLUS:         ADDITIVE,
	lexer.MINUS:        ADDITIVE,
	lexer.TIMES:        MULTIPLICATIVE,
	lexer.DIVIDED_BY:   MULTIPLICATIVE,
	lexer.MODULO:       MULTIPLICATIVE,
	lexer.POWER:        POWER,
	lexer.POSSESSIVE_S: POSTFIX,
	lexer.LBRACKET:     POSTFIX,
}

var binaryOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.PLUS: ast.OpAdd, lexer.MINUS: ast.OpSub,
	lexer.TIMES: ast.OpMul, lexer.DIVIDED_BY: ast.OpDiv, lexer.MODULO: ast.OpMod,
	lexer.POWER: ast.OpPow, lexer.EQUALS: ast.OpEquals, lexer.NOT_EQUAL: ast.OpNotEqual,
	lexer.GREATER: ast.OpGreater, lexer.LESS: ast.OpLess,
	lexer.AT_LEAST: ast.OpAtLeast, lexer.AT_MOST: ast.OpAtMost,
	lexer.AND: ast.OpAnd, lexer.OR: ast.OpOr,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.cur.current().Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression is the Pratt/precedence-climbing entry point: it parses a
// prefix term, then keeps folding in infix/postfix operators as long as
// their precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	for !p.atStatementEnd() && precedence < p.peekPrecedence() {
		left = p.parseInfix(left)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	tok := p.cur.current()
	switch tok.Type {
	case lexer.INT:
		p.cur.advance()
		v, _ := tok.Value.(int64)
		return &ast.IntegerLiteral{Token: tok, Value: v}
	case lexer.FLOAT:
		p.cur.advance()
		v, _ := tok.Value.(float64)
		return &ast.DecimalLiteral{Token: tok, Value: v}
	case lexer.STRING:
		p.cur.advance()
		v, _ := tok.Value.(string)
		return &ast.StringLiteral{Token: tok, Value: v}
	case lexer.CHAR:
		p.cur.advance()
		v, _ := tok.Value.(rune)
		return &ast.CharLiteral{Token: tok, Value: v}
	case lexer.YES:
		p.cur.advance()
		return &ast.BooleanLiteral{Token: tok, Value: true}
	case lexer.NO:
		p.cur.advance()
		return &ast.BooleanLiteral{Token: tok, Value: false}
	case lexer.NULLKW:
		p.cur.advance()
		return &ast.NullLiteral{Token: tok}
	case lexer.IDENT:
		p.cur.advance()
		return &ast.VariableRef{Name: &ast.Identifier{Token: tok, Value: tok.Literal}}
	case lexer.LPAREN:
		p.cur.advance()
		expr := p.parseExpression(LOWEST)
		p.expect(lexer.RPAREN, ")")
		return expr
	case lexer.NEGATIVE:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnaryNegate, Operand: p.parseExpression(PREFIX)}
	case lexer.NOT:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnaryNot, Operand: p.parseExpression(PREFIX)}
	case lexer.SQRT:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnarySqrt, Operand: p.parseExpression(PREFIX)}
	case lexer.ABS:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnaryAbs, Operand: p.parseExpression(PREFIX)}
	case lexer.LENGTH_OF:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnaryLength, Operand: p.parseExpression(PREFIX)}
	case lexer.FIRST_ITEM:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnaryFirst, Operand: p.parseExpression(PREFIX)}
	case lexer.LAST_ITEM:
		p.cur.advance()
		return &ast.UnaryExpression{Token: tok, Op: ast.UnaryLast, Operand: p.parseExpression(PREFIX)}
	case lexer.THE_VALUE_OF:
		p.cur.advance()
		return p.parseExpression(PREFIX)
	case lexer.ADDR_OF:
		p.cur.advance()
		return &ast.AddressOfExpression{Token: tok, Operand: p.parseExpression(PREFIX)}
	case lexer.VALUE_AT:
		p.cur.advance()
		return &ast.DereferenceExpression{Token: tok, Operand: p.parseExpression(PREFIX)}
	case lexer.ITEM_NUMBER:
		p.cur.advance()
		idx := p.parseExpression(LOWEST)
		p.expect(lexer.IN, "in")
		arr := p.parseExpression(PREFIX)
		return &ast.ArrayIndexExpression{Token: tok, Index: idx, Array: arr}
	case lexer.THE_RESULT_OF:
		p.cur.advance()
		return p.parseCallPhraseBody(tok)
	default:
		p.errorf(tok, nil, "unexpected %s %q in expression", tok.Type, tok.Literal)
		p.cur.advance()
		return &ast.NullLiteral{Token: tok}
	}
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	tok := p.cur.current()
	switch tok.Type {
	case lexer.BETWEEN:
		p.cur.advance()
		low := p.parseExpression(ADDITIVE)
		p.expect(lexer.AND, "and")
		high := p.parseExpression(ADDITIVE)
		return &ast.BetweenExpression{Token: tok, Value: left, Low: low, High: high}
	case lexer.POSSESSIVE_S:
		p.cur.advance()
		fieldTok, _ := p.expect(lexer.IDENT, "a field name")
		return &ast.FieldAccessExpression{Token: tok, Target: left, Field: &ast.Identifier{Token: fieldTok, Value: fieldTok.Literal}}
	case lexer.LBRACKET:
		p.cur.advance()
		idx := p.parseExpression(LOWEST)
		p.expect(lexer.RBRACKET, "]")
		return &ast.ArrayIndexExpression{Token: tok, Array: left, Index: idx}
	default:
		op, ok := binaryOps[tok.Type]
		if !ok {
			p.errorf(tok, nil, "unexpected operator %s %q", tok.Type, tok.Literal)
			p.cur.advance()
			return left
		}
		prec := precedences[tok.Type]
		p.cur.advance()
		right := p.parseExpression(prec)
		return &ast.BinaryExpression{Token: tok, Left: left, Op: op, Right: right}
	}
}
