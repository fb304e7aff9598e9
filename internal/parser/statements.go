package parser

import (
	"strings"

	"github.com/zinc-lang/zinc/internal/ast"
	"github.com/zinc-lang/zinc/internal/lexer"
)

// parseBlock parses statements until a structural terminator (end,
// otherwise, otherwise if) or end of input — spec.md §4.1's statement
// delimiting rule.
func (p *Parser) parseBlock() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.cur.current()}
	p.cur.skipEOLs()
	for !isBlockTerminator(p.cur.current().Type) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.cur.skipEOLs()
	}
	return block
}

func isBlockTerminator(t lexer.TokenType) bool {
	switch t {
	case lexer.ENDKW, lexer.OTHERWISE, lexer.OTHERWISE_IF, lexer.EOF:
		return true
	}
	return false
}

func (p *Parser) atStatementEnd() bool {
	t := p.cur.current().Type
	return t == lexer.EOL || isBlockTerminator(t)
}

func (p *Parser) parseStatement() ast.Statement {
	tok := p.cur.current()
	switch tok.Type {
	case lexer.THERE_IS:
		return p.parseVarDecl()
	case lexer.SET, lexer.CHANGE, lexer.NOW, lexer.LET, lexer.MAKE:
		return p.parseAssignment()
	case lexer.ADD, lexer.SUBTRACT, lexer.MULTIPLY, lexer.DIVIDE, lexer.INCREASE, lexer.DECREASE:
		return p.parseCompoundAssign()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.REPEAT:
		return p.parseRepeat()
	case lexer.BREAK:
		p.cur.advance()
		return &ast.BreakStatement{Token: tok}
	case lexer.CONTINUE:
		p.cur.advance()
		return &ast.ContinueStatement{Token: tok}
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.SAY:
		return p.parseOutput()
	case lexer.ASK:
		return p.parseInput()
	case lexer.ALLOCATE:
		return p.parseAllocate()
	case lexer.FREE:
		return p.parseFree()
	case lexer.OPEN_FILE, lexer.CLOSE_FILE, lexer.READ_LINE:
		return p.parseFileOp()
	case lexer.DRAW:
		return p.parseGraphicsCall()
	case lexer.THE_RESULT_OF:
		call := p.parseCallPhraseBody(p.cur.advance())
		return &ast.CallStatement{Token: tok, Call: call}
	default:
		// No Zinc statement production starts with this token: the first
		// 1-3 tokens match no grammar rule, so the rest of the physical
		// line is captured verbatim as raw C (spec.md §4.2 "C fallback").
		return p.parseRawCStatement()
	}
}

func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.cur.advance() // THERE_IS
	typ := p.parseTypeExpr()
	p.expect(lexer.CALLED, "called")
	nameTok, _ := p.expect(lexer.IDENT, "a variable name")
	decl := &ast.VarDeclStatement{Token: tok, Type: typ, Name: &ast.Identifier{Token: nameTok, Value: nameTok.Literal}}
	if p.cur.current().Type == lexer.WHICH_IS {
		p.cur.advance()
		decl.Init = p.parseExpression(LOWEST)
	}
	return decl
}

func (p *Parser) parseAssignment() ast.Statement {
	tok := p.cur.advance() // SET/CHANGE/NOW/LET/MAKE
	target := p.parseExpression(LOWEST)
	switch tok.Type {
	case lexer.SET, lexer.CHANGE:
		p.expect(lexer.TO, "to")
	case lexer.NOW:
		p.expect(lexer.IS, "is")
	case lexer.LET:
		p.expect(lexer.BE, "be")
	case lexer.MAKE:
		p.expect(lexer.EQUAL, "equal to")
	}
	value := p.parseExpression(LOWEST)
	return &ast.AssignmentStatement{Token: tok, Target: target, Value: value}
}

func compoundOpFor(t lexer.TokenType) ast.CompoundOp {
	switch t {
	case lexer.ADD, lexer.INCREASE:
		return ast.CompoundAdd
	case lexer.SUBTRACT, lexer.DECREASE:
		return ast.CompoundSubtract
	case lexer.MULTIPLY:
		return ast.CompoundMultiply
	default:
		return ast.CompoundDivide
	}
}

func (p *Parser) parseCompoundAssign() ast.Statement {
	tok := p.cur.advance()
	switch tok.Type {
	case lexer.ADD, lexer.SUBTRACT, lexer.MULTIPLY, lexer.DIVIDE:
		amount := p.parseExpression(LOWEST)
		p.expect(lexer.TO, "to")
		target := p.parseExpression(LOWEST)
		return &ast.CompoundAssignStatement{Token: tok, Op: compoundOpFor(tok.Type), Amount: amount, Target: target}
	default: // INCREASE, DECREASE
		target := p.parseExpression(LOWEST)
		var amount ast.Expression
		if p.cur.current().Type == lexer.BY {
			p.cur.advance()
			amount = p.parseExpression(LOWEST)
		}
		return &ast.CompoundAssignStatement{Token: tok, Op: compoundOpFor(tok.Type), Amount: amount, Target: target}
	}
}

// parseIf parses a full if/otherwise-if/otherwise chain and consumes the
// single trailing "end" that closes the whole chain.
func (p *Parser) parseIf() ast.Statement {
	stmt := p.parseIfChain()
	p.expect(lexer.ENDKW, "end")
	return stmt
}

func (p *Parser) parseIfChain() *ast.IfStatement {
	tok := p.cur.advance() // IF or OTHERWISE_IF
	cond := p.parseExpression(LOWEST)
	if p.cur.current().Type == lexer.THEN {
		p.cur.advance()
	}
	if p.cur.current().Type == lexer.COLON {
		p.cur.advance()
	}
	cons := p.parseBlock()
	stmt := &ast.IfStatement{Token: tok, Condition: cond, Consequence: cons}
	switch p.cur.current().Type {
	case lexer.OTHERWISE_IF:
		stmt.Alternative = p.parseIfChain()
	case lexer.OTHERWISE:
		p.cur.advance()
		if p.cur.current().Type == lexer.COLON {
			p.cur.advance()
		}
		stmt.Alternative = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.cur.advance()
	cond := p.parseExpression(LOWEST)
	if p.cur.current().Type == lexer.DO {
		p.cur.advance()
	}
	if p.cur.current().Type == lexer.COLON {
		p.cur.advance()
	}
	body := p.parseBlock()
	p.expect(lexer.ENDKW, "end")
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.cur.advance() // FOR
	// The lexer folds "for each" into the FOR token itself.
	if p.cur.current().Type == lexer.EACH {
		p.cur.advance()
	}

	if p.consumeWord("number") {
		nameTok, _ := p.expect(lexer.IDENT, "a loop variable name")
		p.expect(lexer.FROM, "from")
		from := p.parseExpression(LOWEST)
		descend := false
		if p.cur.current().Type == lexer.DOWN_TO {
			p.cur.advance()
			descend = true
		} else {
			p.expect(lexer.TO, "to")
		}
		to := p.parseExpression(LOWEST)
		if p.cur.current().Type == lexer.COLON {
			p.cur.advance()
		}
		body := p.parseBlock()
		p.expect(lexer.ENDKW, "end")
		return &ast.ForRangeStatement{
			Token: tok, Variable: &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
			From: from, To: to, Descend: descend, Body: body,
		}
	}

	// List iteration: whatever name the source spells is discarded — the
	// bound variable is always literally "item" (SPEC_FULL.md §11).
	if p.cur.current().Type == lexer.IDENT {
		p.cur.advance()
	}
	p.expect(lexer.IN, "in")
	if p.cur.current().Type == lexer.THE_LIST {
		p.cur.advance()
	}
	list := p.parseExpression(LOWEST)
	if p.cur.current().Type == lexer.COLON {
		p.cur.advance()
	}
	body := p.parseBlock()
	p.expect(lexer.ENDKW, "end")
	return &ast.ForEachStatement{
		Token: tok, Variable: &ast.Identifier{Token: tok, Value: "item"}, List: list, Body: body,
	}
}

func (p *Parser) parseRepeat() ast.Statement {
	tok := p.cur.advance()
	count := p.parseExpression(LOWEST)
	p.expect(lexer.TIMES, "times")
	if p.cur.current().Type == lexer.COLON {
		p.cur.advance()
	}
	body := p.parseBlock()
	p.expect(lexer.ENDKW, "end")
	return &ast.RepeatStatement{Token: tok, Count: count, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.cur.advance()
	if p.atStatementEnd() {
		return &ast.ReturnStatement{Token: tok}
	}
	return &ast.ReturnStatement{Token: tok, Value: p.parseExpression(LOWEST)}
}

func (p *Parser) parseConcatList(tok lexer.Token) *ast.ConcatList {
	list := &ast.ConcatList{Token: tok}
	list.Items = append(list.Items, p.parseExpression(LOWEST))
	for p.cur.current().Type == lexer.AND_THEN || p.cur.current().Type == lexer.FOLLOWED_BY {
		p.cur.advance()
		list.Items = append(list.Items, p.parseExpression(LOWEST))
	}
	return list
}

func (p *Parser) parseOutput() ast.Statement {
	tok := p.cur.advance() // SAY
	return &ast.OutputStatement{Token: tok, Values: p.parseConcatList(tok)}
}

func (p *Parser) parseInput() ast.Statement {
	tok := p.cur.advance() // ASK
	kind := ast.InputNumber
	switch p.cur.current().Type {
	case lexer.A_NUMBER:
		p.cur.advance()
	case lexer.TEXT:
		p.cur.advance()
		kind = ast.InputText
	default:
		p.errorf(p.cur.current(), []string{"a number", "text"}, "expected \"a number\" or \"text\", found %s %q", p.cur.current().Type, p.cur.current().Literal)
	}
	p.expect(lexer.STORE_IT, "and store it in")
	targetTok, _ := p.expect(lexer.IDENT, "a variable name")
	return &ast.InputStatement{Token: tok, Kind: kind, Target: &ast.Identifier{Token: targetTok, Value: targetTok.Literal}}
}

func (p *Parser) parseAllocate() ast.Statement {
	tok := p.cur.advance() // ALLOCATE ("allocate space for")
	count := p.parseExpression(LOWEST)
	elemType := p.parseScalarOrStructType()
	p.expect(lexer.CALL_IT, "and call it")
	targetTok, _ := p.expect(lexer.IDENT, "a variable name")
	return &ast.AllocateStatement{
		Token: tok, Count: count, ElemType: elemType,
		Target: &ast.Identifier{Token: targetTok, Value: targetTok.Literal},
	}
}

func (p *Parser) parseFree() ast.Statement {
	tok := p.cur.advance() // FREE ("free the memory at")
	target := p.parseExpression(LOWEST)
	return &ast.FreeStatement{Token: tok, Target: target}
}

func (p *Parser) parseFileOp() ast.Statement {
	tok := p.cur.advance()
	switch tok.Type {
	case lexer.OPEN_FILE:
		path := p.parseExpression(LOWEST)
		p.expect(lexer.CALL_IT, "and call it")
		handleTok, _ := p.expect(lexer.IDENT, "a file variable name")
		return &ast.FileStatement{Token: tok, Op: ast.FileOpen, Path: path, Handle: &ast.Identifier{Token: handleTok, Value: handleTok.Literal}}
	case lexer.CLOSE_FILE:
		handleTok, _ := p.expect(lexer.IDENT, "a file variable name")
		return &ast.FileStatement{Token: tok, Op: ast.FileClose, Handle: &ast.Identifier{Token: handleTok, Value: handleTok.Literal}}
	default: // READ_LINE
		handleTok, _ := p.expect(lexer.IDENT, "a file variable name")
		p.expect(lexer.STORE_IT, "and store it in")
		targetTok, _ := p.expect(lexer.IDENT, "a variable name")
		return &ast.FileStatement{
			Token: tok, Op: ast.FileReadLine,
			Handle: &ast.Identifier{Token: handleTok, Value: handleTok.Literal},
			Target: &ast.Identifier{Token: targetTok, Value: targetTok.Literal},
		}
	}
}

func (p *Parser) parseGraphicsCall() ast.Statement {
	tok := p.cur.advance() // DRAW
	return &ast.GraphicsCallStatement{Token: tok, Call: p.parseCallPhraseBody(tok)}
}

// parseCallPhraseBody consumes a function-name phrase and an optional "with
// <args>" clause, resolving the phrase against the forward-declaration
// table built by the prepass (spec.md §4.1). An unknown name is never a
// parse error — it is tagged KindPassthrough and left for the resolver.
func (p *Parser) parseCallPhraseBody(tok lexer.Token) *ast.CallExpression {
	words, sanitized, nameTok := p.identPhrase()
	var args []ast.Expression
	if p.cur.current().Type == lexer.WITH {
		p.cur.advance()
		args = append(args, p.parseExpression(LOWEST))
		for p.cur.current().Type == lexer.COMMA {
			p.cur.advance()
			args = append(args, p.parseExpression(LOWEST))
		}
	}
	kind := ast.KindPassthrough
	if _, ok := p.funcs[sanitized]; ok {
		kind = ast.KindFunction
	}
	return &ast.CallExpression{
		Token:     tok,
		Function:  &ast.Identifier{Token: nameTok, Value: strings.Join(words, " "), ResolvedKind: kind},
		Arguments: args,
	}
}

// parseRawCStatement captures the remainder of the current physical line
// verbatim from the original source text rather than rebuilding it from
// tokens (spec.md §4.2). The line is still lexed first: the lexer reports
// an error for characters it has no token for ('=', '.' outside a number,
// '{', '}'), so a raw-C line containing them does not reach the parser.
func (p *Parser) parseRawCStatement() ast.Statement {
	tok := p.cur.current()
	text := p.captureRawCLine(tok.Pos)
	for p.cur.current().Type != lexer.EOL && p.cur.current().Type != lexer.EOF {
		p.cur.advance()
	}
	return &ast.RawCStatement{Token: tok, Text: text}
}

func (p *Parser) captureRawCLine(pos lexer.Position) string {
	lines := strings.Split(p.source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := lines[pos.Line-1]
	col := pos.Column - 1
	if col < 0 || col > len(line) {
		col = 0
	}
	return strings.TrimRight(line[col:], " \t\r")
}
