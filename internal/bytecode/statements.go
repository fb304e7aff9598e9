package bytecode

import "github.com/zinc-lang/zinc/internal/ast"

func (c *Compiler) compileStatement(stmt ast.Statement) {
	b := c.b
	switch s := stmt.(type) {
	case *ast.VarDeclStatement:
		c.declTypes[s.Name.Value] = s.Type
		idx := b.localSlot(s.Name.Value)
		if s.Init != nil {
			c.compileExpr(s.Init)
		} else {
			c.emitZeroValue(s.Type)
		}
		b.emit(Instruction{Op: OpStoreLocal, IntOperand: idx, Name: s.Name.Value})

	case *ast.AssignmentStatement:
		c.compileExpr(s.Value)
		c.compileAssignTarget(s.Target)

	case *ast.CompoundAssignStatement:
		c.compileExpr(s.Target)
		if s.Amount != nil {
			c.compileExpr(s.Amount)
		} else {
			b.emit(Instruction{Op: OpPushInt, Const: int64(1)})
		}
		kind := c.inferType(s.Target)
		b.emit(Instruction{Op: arithOpFor(s.Op, kind)})
		c.compileAssignTarget(s.Target)

	case *ast.IfStatement:
		c.compileExpr(s.Condition)
		jf := b.emit(Instruction{Op: OpJumpIfFalse})
		c.compileBlockStatements(s.Consequence.Statements)
		if s.Alternative != nil {
			je := b.emit(Instruction{Op: OpJump})
			b.patchJumpTarget(jf, b.here())
			switch alt := s.Alternative.(type) {
			case *ast.BlockStatement:
				c.compileBlockStatements(alt.Statements)
			case *ast.IfStatement:
				c.compileStatement(alt)
			}
			b.patchJumpTarget(je, b.here())
		} else {
			b.patchJumpTarget(jf, b.here())
		}

	case *ast.WhileStatement:
		condStart := b.here()
		c.compileExpr(s.Condition)
		jf := b.emit(Instruction{Op: OpJumpIfFalse})
		b.pushLoop()
		c.compileBlockStatements(s.Body.Statements)
		for _, idx := range b.currentLoop().pendingContinue {
			b.patchJumpTarget(idx, condStart)
		}
		b.emit(Instruction{Op: OpJump, IntOperand: condStart})
		end := b.here()
		b.patchJumpTarget(jf, end)
		popped := b.popLoop()
		for _, idx := range popped.breakJumps {
			b.patchJumpTarget(idx, end)
		}

	case *ast.ForRangeStatement:
		c.compileForRange(s)

	case *ast.ForEachStatement:
		c.compileForEach(s)

	case *ast.RepeatStatement:
		c.compileRepeat(s)

	case *ast.BreakStatement:
		idx := b.emit(Instruction{Op: OpJump})
		b.currentLoop().breakJumps = append(b.currentLoop().breakJumps, idx)

	case *ast.ContinueStatement:
		idx := b.emit(Instruction{Op: OpJump})
		b.currentLoop().pendingContinue = append(b.currentLoop().pendingContinue, idx)

	case *ast.ReturnStatement:
		if s.Value != nil {
			c.compileExpr(s.Value)
			b.emit(Instruction{Op: OpReturn})
		} else {
			b.emit(Instruction{Op: OpReturnVoid})
		}

	case *ast.CallStatement:
		c.compileCall(s.Call)
		if c.funcReturns[s.Call.Function.Value] {
			b.emit(Instruction{Op: OpPop})
		}

	case *ast.InputStatement:
		if s.Kind == ast.InputNumber {
			b.emit(Instruction{Op: OpReadInt})
			c.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindInteger}
		} else {
			b.emit(Instruction{Op: OpReadString})
			c.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindString}
		}
		c.compileAssignTarget(&ast.VariableRef{Name: s.Target})

	case *ast.OutputStatement:
		for _, item := range s.Values.Items {
			c.compileExpr(item)
			b.emit(Instruction{Op: printOpFor(c.inferType(item))})
		}

	case *ast.AllocateStatement:
		c.compileExpr(s.Count)
		b.emit(Instruction{Op: OpAllocHeap, Name: s.ElemType.String()})
		c.declTypes[s.Target.Value] = &ast.TypeExpr{Kind: ast.KindPointer, Elem: s.ElemType}
		c.compileAssignTarget(&ast.VariableRef{Name: s.Target})

	case *ast.FreeStatement:
		c.compileExpr(s.Target)
		b.emit(Instruction{Op: OpFreeHeap})

	case *ast.FileStatement:
		// File I/O has no bytecode-path lowering: spec.md §4.5's opcode
		// families name no file operations (SPEC_FULL.md §11). Only the
		// C-lowering path supports it.
		c.errorf(s, "file operations are not supported when compiling to bytecode; use the C lowering path")

	case *ast.GraphicsCallStatement:
		// Same reasoning as FileStatement: no graphics opcode family exists.
		c.errorf(s, "graphics calls are not supported when compiling to bytecode; use the C lowering path")

	case *ast.RawCStatement:
		c.errorf(s, "raw-C passthrough has no bytecode-path lowering; use the C lowering path")
		b.emit(Instruction{Op: OpRawCUnsupported, Const: s.Text})

	case *ast.ExpressionStatement:
		c.compileExpr(s.Expr)
		b.emit(Instruction{Op: OpPop})
	}
}

func (c *Compiler) compileForRange(s *ast.ForRangeStatement) {
	b := c.b
	c.declTypes[s.Variable.Value] = &ast.TypeExpr{Kind: ast.KindInteger}
	idx := b.localSlot(s.Variable.Value)
	c.compileExpr(s.From)
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: idx, Name: s.Variable.Value})

	condStart := b.here()
	b.emit(Instruction{Op: OpLoadLocal, IntOperand: idx, Name: s.Variable.Value})
	c.compileExpr(s.To)
	if s.Descend {
		b.emit(Instruction{Op: OpGeInt})
	} else {
		b.emit(Instruction{Op: OpLeInt})
	}
	jf := b.emit(Instruction{Op: OpJumpIfFalse})

	b.pushLoop()
	c.compileBlockStatements(s.Body.Statements)
	incrLabel := b.here()
	for _, ci := range b.currentLoop().pendingContinue {
		b.patchJumpTarget(ci, incrLabel)
	}

	b.emit(Instruction{Op: OpLoadLocal, IntOperand: idx, Name: s.Variable.Value})
	b.emit(Instruction{Op: OpPushInt, Const: int64(1)})
	if s.Descend {
		b.emit(Instruction{Op: OpSubInt})
	} else {
		b.emit(Instruction{Op: OpAddInt})
	}
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: idx, Name: s.Variable.Value})
	b.emit(Instruction{Op: OpJump, IntOperand: condStart})

	end := b.here()
	b.patchJumpTarget(jf, end)
	popped := b.popLoop()
	for _, bi := range popped.breakJumps {
		b.patchJumpTarget(bi, end)
	}
}

// compileForEach requires the iterated list's length to be known at compile
// time (a fixed-size list declared with "list of N <type>s"); spec.md §9
// leaves untyped list iteration's semantics underspecified, and the
// bytecode IR has no runtime array-length representation to fall back on
// (see DESIGN.md).
func (c *Compiler) compileForEach(s *ast.ForEachStatement) {
	b := c.b
	n, ok := c.fixedArrayLen(s.List)
	if !ok {
		c.errorf(s, "for-each-in-list requires a fixed-size list whose length is known at compile time on the bytecode path")
		return
	}

	arrIdx := c.compileExprToTemp(s.List, "list")
	itemIdx := b.localSlot(s.Variable.Value)
	counterIdx := b.localSlot(c.nextTemp("idx"))

	b.emit(Instruction{Op: OpPushInt, Const: int64(0)})
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: counterIdx})

	condStart := b.here()
	b.emit(Instruction{Op: OpLoadLocal, IntOperand: counterIdx})
	b.emit(Instruction{Op: OpPushInt, Const: int64(n)})
	b.emit(Instruction{Op: OpLtInt})
	jf := b.emit(Instruction{Op: OpJumpIfFalse})

	b.pushLoop()
	b.emit(Instruction{Op: OpLoadLocal, IntOperand: arrIdx})
	b.emit(Instruction{Op: OpLoadLocal, IntOperand: counterIdx})
	b.emit(Instruction{Op: OpArrayLoad})
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: itemIdx, Name: s.Variable.Value})
	c.compileBlockStatements(s.Body.Statements)
	incrLabel := b.here()
	for _, ci := range b.currentLoop().pendingContinue {
		b.patchJumpTarget(ci, incrLabel)
	}

	b.emit(Instruction{Op: OpLoadLocal, IntOperand: counterIdx})
	b.emit(Instruction{Op: OpPushInt, Const: int64(1)})
	b.emit(Instruction{Op: OpAddInt})
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: counterIdx})
	b.emit(Instruction{Op: OpJump, IntOperand: condStart})

	end := b.here()
	b.patchJumpTarget(jf, end)
	popped := b.popLoop()
	for _, bi := range popped.breakJumps {
		b.patchJumpTarget(bi, end)
	}
}

func (c *Compiler) compileRepeat(s *ast.RepeatStatement) {
	b := c.b
	counterIdx := b.localSlot(c.nextTemp("rep"))
	b.emit(Instruction{Op: OpPushInt, Const: int64(0)})
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: counterIdx})

	condStart := b.here()
	b.emit(Instruction{Op: OpLoadLocal, IntOperand: counterIdx})
	c.compileExpr(s.Count)
	b.emit(Instruction{Op: OpLtInt})
	jf := b.emit(Instruction{Op: OpJumpIfFalse})

	b.pushLoop()
	c.compileBlockStatements(s.Body.Statements)
	incrLabel := b.here()
	for _, ci := range b.currentLoop().pendingContinue {
		b.patchJumpTarget(ci, incrLabel)
	}

	b.emit(Instruction{Op: OpLoadLocal, IntOperand: counterIdx})
	b.emit(Instruction{Op: OpPushInt, Const: int64(1)})
	b.emit(Instruction{Op: OpAddInt})
	b.emit(Instruction{Op: OpStoreLocal, IntOperand: counterIdx})
	b.emit(Instruction{Op: OpJump, IntOperand: condStart})

	end := b.here()
	b.patchJumpTarget(jf, end)
	popped := b.popLoop()
	for _, bi := range popped.breakJumps {
		b.patchJumpTarget(bi, end)
	}
}

// compileAssignTarget compiles the store half of an assignment: the value
// to store is assumed already on top of the stack.
func (c *Compiler) compileAssignTarget(target ast.Expression) {
	b := c.b
	switch t := target.(type) {
	case *ast.VariableRef:
		switch t.Name.ResolvedKind {
		case ast.KindGlobal:
			b.emit(Instruction{Op: OpStoreGlobal, Name: t.Name.Value})
		default:
			idx := b.localSlot(t.Name.Value)
			b.emit(Instruction{Op: OpStoreLocal, IntOperand: idx, Name: t.Name.Value})
		}
	case *ast.FieldAccessExpression:
		c.compileExpr(t.Target)
		b.emit(Instruction{Op: OpFieldStore, Name: t.Field.Value})
	case *ast.ArrayIndexExpression:
		c.compileExpr(t.Array)
		c.compileExpr(t.Index)
		b.emit(Instruction{Op: OpArrayStore})
	case *ast.DereferenceExpression:
		c.compileExpr(t.Operand)
		b.emit(Instruction{Op: OpStore})
	default:
		c.errorf(target, "expression is not assignable")
	}
}

func (c *Compiler) emitZeroValue(t *ast.TypeExpr) {
	switch t.Kind {
	case ast.KindFloating:
		c.b.emit(Instruction{Op: OpPushFloat, Const: float64(0)})
	case ast.KindString:
		c.b.emit(Instruction{Op: OpPushString, Const: ""})
	case ast.KindBoolean:
		c.b.emit(Instruction{Op: OpPushBool, Const: false})
	case ast.KindPointer:
		c.b.emit(Instruction{Op: OpPushNull})
	default:
		c.b.emit(Instruction{Op: OpPushInt, Const: int64(0)})
	}
}

// compileExprToTemp compiles expr once, stores it into a fresh temp local,
// and returns that local's slot index for repeated reads.
func (c *Compiler) compileExprToTemp(expr ast.Expression, hint string) int {
	idx := c.b.localSlot(c.nextTemp(hint))
	c.compileExpr(expr)
	c.b.emit(Instruction{Op: OpStoreLocal, IntOperand: idx})
	return idx
}

func (c *Compiler) fixedArrayLen(expr ast.Expression) (int, bool) {
	ref, ok := expr.(*ast.VariableRef)
	if !ok {
		return 0, false
	}
	t, ok := c.declTypes[ref.Name.Value]
	if !ok || t.Kind != ast.KindFixedArr {
		return 0, false
	}
	return t.Len, true
}

func arithOpFor(op ast.CompoundOp, kind ast.BaseKind) Op {
	isFloat := kind == ast.KindFloating
	switch op {
	case ast.CompoundAdd:
		if isFloat {
			return OpAddFloat
		}
		return OpAddInt
	case ast.CompoundSubtract:
		if isFloat {
			return OpSubFloat
		}
		return OpSubInt
	case ast.CompoundMultiply:
		if isFloat {
			return OpMulFloat
		}
		return OpMulInt
	default: // CompoundDivide
		if isFloat {
			return OpDivFloat
		}
		return OpDivInt
	}
}

func printOpFor(kind ast.BaseKind) Op {
	switch kind {
	case ast.KindFloating:
		return OpPrintFloat
	case ast.KindString:
		return OpPrintString
	case ast.KindCharacter:
		return OpPrintChar
	case ast.KindBoolean:
		return OpPrintBool
	default:
		return OpPrintInt
	}
}
