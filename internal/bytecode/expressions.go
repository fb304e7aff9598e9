package bytecode

import "github.com/zinc-lang/zinc/internal/ast"

// compileExpr compiles expr so that its value is left on top of the stack.
func (c *Compiler) compileExpr(expr ast.Expression) {
	b := c.b
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		b.emit(Instruction{Op: OpPushInt, Const: e.Value})
	case *ast.DecimalLiteral:
		b.emit(Instruction{Op: OpPushFloat, Const: e.Value})
	case *ast.StringLiteral:
		b.emit(Instruction{Op: OpPushString, Const: e.Value})
	case *ast.CharLiteral:
		b.emit(Instruction{Op: OpPushChar, Const: e.Value})
	case *ast.BooleanLiteral:
		b.emit(Instruction{Op: OpPushBool, Const: e.Value})
	case *ast.NullLiteral:
		b.emit(Instruction{Op: OpPushNull})

	case *ast.VariableRef:
		switch e.Name.ResolvedKind {
		case ast.KindGlobal:
			b.emit(Instruction{Op: OpLoadGlobal, Name: e.Name.Value})
		case ast.KindParameter:
			idx := b.localSlot(e.Name.Value)
			b.emit(Instruction{Op: OpLoadLocal, IntOperand: idx, Name: e.Name.Value})
		default:
			idx := b.localSlot(e.Name.Value)
			b.emit(Instruction{Op: OpLoadLocal, IntOperand: idx, Name: e.Name.Value})
		}

	case *ast.UnaryExpression:
		c.compileUnary(e)

	case *ast.BinaryExpression:
		c.compileExpr(e.Left)
		c.compileExpr(e.Right)
		kind := c.inferType(e.Left)
		b.emit(Instruction{Op: binaryOpFor(e.Op, kind)})

	case *ast.BetweenExpression:
		// Desugar "V is between Low and High" into (V >= Low) and (V <= High),
		// materializing V once into a temp so a side-effectful Value
		// expression is only evaluated a single time.
		kind := c.inferType(e.Value)
		tmp := c.compileExprToTemp(e.Value, "between")
		b.emit(Instruction{Op: OpLoadLocal, IntOperand: tmp})
		c.compileExpr(e.Low)
		b.emit(Instruction{Op: geOpFor(kind)})
		b.emit(Instruction{Op: OpLoadLocal, IntOperand: tmp})
		c.compileExpr(e.High)
		b.emit(Instruction{Op: leOpFor(kind)})
		b.emit(Instruction{Op: OpAnd})

	case *ast.ArrayIndexExpression:
		c.compileExpr(e.Array)
		c.compileExpr(e.Index)
		b.emit(Instruction{Op: OpArrayLoad})

	case *ast.FieldAccessExpression:
		c.compileExpr(e.Target)
		b.emit(Instruction{Op: OpFieldLoad, Name: e.Field.Value})

	case *ast.AddressOfExpression:
		if ref, ok := e.Operand.(*ast.VariableRef); ok {
			idx := b.localSlot(ref.Name.Value)
			b.emit(Instruction{Op: OpAddrOf, IntOperand: idx, Name: ref.Name.Value})
			return
		}
		c.errorf(e, "the address of an expression is only supported for a plain variable on the bytecode path")

	case *ast.DereferenceExpression:
		c.compileExpr(e.Operand)
		b.emit(Instruction{Op: OpLoad})

	case *ast.CallExpression:
		c.compileCall(e)

	case *ast.RawCExpression:
		c.errorf(e, "raw-C passthrough has no bytecode-path lowering; use the C lowering path")
		b.emit(Instruction{Op: OpRawCUnsupported, Const: e.Text})

	default:
		c.errorf(expr, "unsupported expression on the bytecode path")
	}
}

func (c *Compiler) compileUnary(e *ast.UnaryExpression) {
	b := c.b
	switch e.Op {
	case ast.UnaryNegate:
		c.compileExpr(e.Operand)
		if c.inferType(e.Operand) == ast.KindFloating {
			b.emit(Instruction{Op: OpNegFloat})
		} else {
			b.emit(Instruction{Op: OpNegInt})
		}
	case ast.UnaryNot:
		c.compileExpr(e.Operand)
		b.emit(Instruction{Op: OpNot})
	case ast.UnarySqrt:
		c.compileExpr(e.Operand)
		b.emit(Instruction{Op: OpSqrtFloat})
	case ast.UnaryAbs:
		c.compileExpr(e.Operand)
		if c.inferType(e.Operand) == ast.KindFloating {
			b.emit(Instruction{Op: OpAbsFloat})
		} else {
			b.emit(Instruction{Op: OpAbsInt})
		}
	case ast.UnaryLength:
		n, ok := c.fixedArrayLen(e.Operand)
		if !ok {
			c.errorf(e, "the length of an open array is not known at compile time on the bytecode path")
			return
		}
		b.emit(Instruction{Op: OpPushInt, Const: int64(n)})
	case ast.UnaryFirst:
		c.compileExpr(e.Operand)
		b.emit(Instruction{Op: OpPushInt, Const: int64(0)})
		b.emit(Instruction{Op: OpArrayLoad})
	case ast.UnaryLast:
		n, ok := c.fixedArrayLen(e.Operand)
		if !ok {
			c.errorf(e, "the last item in an open array is not known at compile time on the bytecode path")
			return
		}
		c.compileExpr(e.Operand)
		b.emit(Instruction{Op: OpPushInt, Const: int64(n - 1)})
		b.emit(Instruction{Op: OpArrayLoad})
	}
}

func (c *Compiler) compileCall(call *ast.CallExpression) {
	for _, arg := range call.Arguments {
		c.compileExpr(arg)
	}
	c.b.emit(Instruction{Op: OpCall, IntOperand: len(call.Arguments), Name: call.Function.Value})
}

// inferType is a best-effort operand-type guess used only to pick an
// opcode family; it is not a type checker (spec.md §1 Non-goals). Unknown
// expressions default to integer, matching Zinc's untyped-number default.
func (c *Compiler) inferType(expr ast.Expression) ast.BaseKind {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return ast.KindInteger
	case *ast.DecimalLiteral:
		return ast.KindFloating
	case *ast.StringLiteral:
		return ast.KindString
	case *ast.CharLiteral:
		return ast.KindCharacter
	case *ast.BooleanLiteral:
		return ast.KindBoolean
	case *ast.NullLiteral:
		return ast.KindPointer
	case *ast.VariableRef:
		if t, ok := c.declTypes[e.Name.Value]; ok {
			return t.Kind
		}
		return ast.KindInteger
	case *ast.UnaryExpression:
		return c.inferType(e.Operand)
	case *ast.BinaryExpression:
		lk := c.inferType(e.Left)
		if lk == ast.KindFloating {
			return lk
		}
		return c.inferType(e.Right)
	case *ast.ArrayIndexExpression:
		if t, ok := c.arrayElemType(e.Array); ok {
			return t.Kind
		}
		return ast.KindInteger
	case *ast.DereferenceExpression:
		if ref, ok := e.Operand.(*ast.VariableRef); ok {
			if t, ok := c.declTypes[ref.Name.Value]; ok && t.Kind == ast.KindPointer {
				return t.Elem.Kind
			}
		}
		return ast.KindInteger
	default:
		return ast.KindInteger
	}
}

func (c *Compiler) arrayElemType(expr ast.Expression) (*ast.TypeExpr, bool) {
	ref, ok := expr.(*ast.VariableRef)
	if !ok {
		return nil, false
	}
	t, ok := c.declTypes[ref.Name.Value]
	if !ok || t.Elem == nil {
		return nil, false
	}
	return t.Elem, true
}

func binaryOpFor(op ast.BinaryOp, kind ast.BaseKind) Op {
	isFloat := kind == ast.KindFloating
	isString := kind == ast.KindString
	switch op {
	case ast.OpAdd:
		if isFloat {
			return OpAddFloat
		}
		return OpAddInt
	case ast.OpSub:
		if isFloat {
			return OpSubFloat
		}
		return OpSubInt
	case ast.OpMul:
		if isFloat {
			return OpMulFloat
		}
		return OpMulInt
	case ast.OpDiv:
		if isFloat {
			return OpDivFloat
		}
		return OpDivInt
	case ast.OpMod:
		return OpModInt
	case ast.OpPow:
		if isFloat {
			return OpPowFloat
		}
		return OpPowInt
	case ast.OpEquals:
		if isString {
			return OpEqString
		}
		if isFloat {
			return OpEqFloat
		}
		return OpEqInt
	case ast.OpNotEqual:
		return OpNeInt
	case ast.OpGreater:
		if isFloat {
			return OpGtFloat
		}
		return OpGtInt
	case ast.OpLess:
		if isFloat {
			return OpLtFloat
		}
		return OpLtInt
	case ast.OpAtLeast:
		if isFloat {
			return OpGeFloat
		}
		return OpGeInt
	case ast.OpAtMost:
		if isFloat {
			return OpLeFloat
		}
		return OpLeInt
	case ast.OpAnd:
		return OpAnd
	default: // ast.OpOr
		return OpOr
	}
}

func geOpFor(kind ast.BaseKind) Op {
	if kind == ast.KindFloating {
		return OpGeFloat
	}
	return OpGeInt
}

func leOpFor(kind ast.BaseKind) Op {
	if kind == ast.KindFloating {
		return OpLeFloat
	}
	return OpLeInt
}
