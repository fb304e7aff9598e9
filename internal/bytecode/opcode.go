// Package bytecode defines Zinc's typed intermediate representation: a
// flat per-function instruction stream over named local slots, compiled
// from the resolved AST and consumed by internal/codegen. There is no
// interpreter here — Zinc never executes bytecode directly, only compiles
// from it to native code (spec.md §2, §4.5).
package bytecode

import "fmt"

// Op is one bytecode operation. Families follow the teacher's
// Op<Action><Type> naming convention: arithmetic and comparison ops are
// split by operand type because the IR carries no runtime type tag of its
// own — the type is baked into the opcode.
type Op int

const (
	OpNop Op = iota

	// Constants
	OpPushInt
	OpPushFloat
	OpPushString
	OpPushChar
	OpPushBool
	OpPushNull

	// Arithmetic — integer
	OpAddInt
	OpSubInt
	OpMulInt
	OpDivInt
	OpModInt
	OpPowInt
	OpNegInt

	// Arithmetic — float
	OpAddFloat
	OpSubFloat
	OpMulFloat
	OpDivFloat
	OpPowFloat
	OpNegFloat

	// Comparison — produces an int 0/1
	OpEqInt
	OpEqFloat
	OpEqString
	OpNeInt
	OpGtInt
	OpLtInt
	OpGeInt
	OpLeInt
	OpGtFloat
	OpLtFloat
	OpGeFloat
	OpLeFloat

	// Logical
	OpAnd
	OpOr
	OpNot

	// Locals and globals
	OpLoadLocal
	OpStoreLocal
	OpLoadParam
	OpLoadGlobal
	OpStoreGlobal

	// Arrays (element load/store; the instruction carries no bounds
	// information and no bounds check is emitted)
	OpArrayLoad
	OpArrayStore

	// Structure fields, addressed by field name (Instruction.Name); no byte
	// offset is computed
	OpFieldLoad
	OpFieldStore

	// Pointers
	OpAddrOf
	OpLoad   // dereference-load
	OpStore  // dereference-store

	// Control flow
	OpJump
	OpJumpIfFalse
	OpCall
	OpReturn
	OpReturnVoid
	OpPop

	// Heap
	OpAllocHeap
	OpFreeHeap

	// I/O — typed by operand
	OpPrintInt
	OpPrintFloat
	OpPrintString
	OpPrintChar
	OpPrintBool
	OpReadInt
	OpReadFloat
	OpReadString

	// sqrt/abs builtins, split by type like arithmetic
	OpSqrtFloat
	OpAbsInt
	OpAbsFloat

	// Raw-C escape hatch: the instruction's Const holds the verbatim
	// fragment text (spec.md §4.2's "C fallback" has
	// no bytecode-path lowering — this opcode exists only so the compiler
	// can raise LowerError instead of silently dropping the statement, see
	// SPEC_FULL.md §11).
	OpRawCUnsupported
)

var opNames = map[Op]string{
	OpNop: "nop",
	OpPushInt: "push.int", OpPushFloat: "push.float", OpPushString: "push.str",
	OpPushChar: "push.char", OpPushBool: "push.bool", OpPushNull: "push.null",
	OpAddInt: "add.int", OpSubInt: "sub.int", OpMulInt: "mul.int", OpDivInt: "div.int",
	OpModInt: "mod.int", OpPowInt: "pow.int", OpNegInt: "neg.int",
	OpAddFloat: "add.float", OpSubFloat: "sub.float", OpMulFloat: "mul.float",
	OpDivFloat: "div.float", OpPowFloat: "pow.float", OpNegFloat: "neg.float",
	OpEqInt: "eq.int", OpEqFloat: "eq.float", OpEqString: "eq.str", OpNeInt: "ne.int",
	OpGtInt: "gt.int", OpLtInt: "lt.int", OpGeInt: "ge.int", OpLeInt: "le.int",
	OpGtFloat: "gt.float", OpLtFloat: "lt.float", OpGeFloat: "ge.float", OpLeFloat: "le.float",
	OpAnd: "and", OpOr: "or", OpNot: "not",
	OpLoadLocal: "load.local", OpStoreLocal: "store.local", OpLoadParam: "load.param",
	OpLoadGlobal: "load.global", OpStoreGlobal: "store.global",
	OpArrayLoad: "array.load", OpArrayStore: "array.store",
	OpFieldLoad: "field.load", OpFieldStore: "field.store",
	OpAddrOf: "addr.of", OpLoad: "load.deref", OpStore: "store.deref",
	OpJump: "jump", OpJumpIfFalse: "jump.iffalse", OpCall: "call",
	OpReturn: "return", OpReturnVoid: "return.void", OpPop: "pop",
	OpAllocHeap: "alloc.heap", OpFreeHeap: "free.heap",
	OpPrintInt: "print.int", OpPrintFloat: "print.float", OpPrintString: "print.str",
	OpPrintChar: "print.char", OpPrintBool: "print.bool",
	OpReadInt: "read.int", OpReadFloat: "read.float", OpReadString: "read.str",
	OpSqrtFloat: "sqrt.float", OpAbsInt: "abs.int", OpAbsFloat: "abs.float",
	OpRawCUnsupported: "rawc.unsupported",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}
