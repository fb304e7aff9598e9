package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble renders a Program in the teacher's column-aligned listing
// format: one "%04d  %-16s  operand" line per instruction, grouped under a
// "func <name>:" header per Function.
func Disassemble(prog *Program) string {
	var out strings.Builder
	for _, fn := range prog.Functions {
		disassembleFunction(&out, fn)
	}
	if prog.Main != nil {
		disassembleFunction(&out, prog.Main)
	}
	return out.String()
}

func disassembleFunction(out *strings.Builder, fn *Function) {
	fmt.Fprintf(out, "func %s:\n", fn.Name)
	for i, ins := range fn.Code {
		fmt.Fprintf(out, "%04d  %-16s  %s\n", i, ins.Op.String(), operandString(ins))
	}
	out.WriteString("\n")
}

func operandString(ins Instruction) string {
	switch ins.Op {
	case OpJump, OpJumpIfFalse:
		return fmt.Sprintf("-> %04d", ins.IntOperand)
	case OpLoadLocal, OpStoreLocal, OpLoadParam, OpAddrOf:
		if ins.Name != "" {
			return fmt.Sprintf("%d (%s)", ins.IntOperand, ins.Name)
		}
		return fmt.Sprintf("%d", ins.IntOperand)
	case OpLoadGlobal, OpStoreGlobal, OpFieldLoad, OpFieldStore:
		return ins.Name
	case OpCall:
		return fmt.Sprintf("%s/%d", ins.Name, ins.IntOperand)
	case OpAllocHeap:
		return ins.Name
	case OpPushInt, OpPushFloat, OpPushString, OpPushChar, OpPushBool:
		return fmt.Sprintf("%v", ins.Const)
	case OpRawCUnsupported:
		return fmt.Sprintf("%q", ins.Const)
	default:
		return ""
	}
}
