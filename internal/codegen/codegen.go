// Package codegen translates a compiled bytecode.Program into a textual
// native-IR dump and a stub object file (spec.md §4.5's "alternate path").
// There is no teacher analogue — DWScript stops at its bytecode VM and
// never targets native code — so the emission technique (a bytes.Buffer
// plus an indent-free, block-labeled writer) is grounded on
// other_examples' go-highway C-AST translator, generalized from "Go AST
// to C text" to "bytecode op to native IR text".
package codegen

import (
	"bytes"
	"fmt"

	"github.com/zinc-lang/zinc/internal/bytecode"
)

// Generator walks a *bytecode.Program and renders one pseudo-SSA value per
// instruction. This is a textual approximation, not a real instruction
// selector: the value numbering follows the flat bytecode stream rather
// than a resolved stack dataflow graph, so it is suitable for inspection
// (--emit-llvm) but not for driving an actual assembler.
type Generator struct {
	buf bytes.Buffer
}

// New creates a Generator.
func New() *Generator { return &Generator{} }

// Generate renders the whole program as native IR text.
func (g *Generator) Generate(prog *bytecode.Program) string {
	g.buf.Reset()
	for _, fn := range prog.Functions {
		g.generateFunction(fn)
	}
	if prog.Main != nil {
		g.generateFunction(prog.Main)
	}
	return g.buf.String()
}

func (g *Generator) generateFunction(fn *bytecode.Function) {
	fmt.Fprintf(&g.buf, "func @%s(", fn.Name)
	for i, param := range fn.Params {
		if i > 0 {
			g.buf.WriteString(", ")
		}
		fmt.Fprintf(&g.buf, "%%p%d:%s", param.Index, param.Name)
	}
	g.buf.WriteString(") {\n")

	blocks := basicBlocks(fn.Code)
	for _, blk := range blocks {
		fmt.Fprintf(&g.buf, "bb%d:\n", blk.label)
		for i := blk.start; i < blk.end; i++ {
			g.generateInstruction(fn, i)
		}
	}
	g.buf.WriteString("}\n\n")
}

// block is one basic block of a function's flat instruction stream,
// delimited by jump targets (spec.md §4.5: "basic blocks are delimited by
// branch targets").
type block struct {
	label      int
	start, end int
}

func basicBlocks(code []bytecode.Instruction) []block {
	leaders := map[int]bool{0: true}
	for i, ins := range code {
		switch ins.Op {
		case bytecode.OpJump, bytecode.OpJumpIfFalse:
			leaders[ins.IntOperand] = true
			if i+1 < len(code) {
				leaders[i+1] = true
			}
		}
	}

	bounds := make([]int, 0, len(leaders))
	for l := range leaders {
		bounds = append(bounds, l)
	}
	sortInts(bounds)

	blocks := make([]block, 0, len(bounds))
	for i, start := range bounds {
		end := len(code)
		if i+1 < len(bounds) {
			end = bounds[i+1]
		}
		blocks = append(blocks, block{label: i, start: start, end: end})
	}
	return blocks
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func (g *Generator) generateInstruction(fn *bytecode.Function, idx int) {
	ins := fn.Code[idx]
	switch ins.Op {
	case bytecode.OpJump:
		fmt.Fprintf(&g.buf, "  jump bb%d\n", blockLabelFor(fn.Code, ins.IntOperand))
	case bytecode.OpJumpIfFalse:
		fmt.Fprintf(&g.buf, "  %%v%d = pop\n  branch.iffalse %%v%d, bb%d\n", idx, idx, blockLabelFor(fn.Code, ins.IntOperand))
	case bytecode.OpReturn:
		fmt.Fprintf(&g.buf, "  %%v%d = pop\n  ret %%v%d\n", idx, idx)
	case bytecode.OpReturnVoid:
		g.buf.WriteString("  ret void\n")
	case bytecode.OpPushInt, bytecode.OpPushFloat, bytecode.OpPushString, bytecode.OpPushChar, bytecode.OpPushBool:
		fmt.Fprintf(&g.buf, "  %%v%d = const %v\n", idx, ins.Const)
	case bytecode.OpLoadLocal, bytecode.OpLoadParam, bytecode.OpLoadGlobal:
		fmt.Fprintf(&g.buf, "  %%v%d = %s %s\n", idx, ins.Op, slotRef(ins))
	case bytecode.OpStoreLocal, bytecode.OpStoreGlobal:
		fmt.Fprintf(&g.buf, "  %s %s, %%v%d\n", ins.Op, slotRef(ins), idx-1)
	case bytecode.OpCall:
		fmt.Fprintf(&g.buf, "  %%v%d = call @%s\n", idx, ins.Name)
	default:
		fmt.Fprintf(&g.buf, "  %%v%d = %s\n", idx, ins.Op)
	}
}

func slotRef(ins bytecode.Instruction) string {
	if ins.Name != "" {
		return ins.Name
	}
	return fmt.Sprintf("#%d", ins.IntOperand)
}

// blockLabelFor maps a code offset back to the label of the block it
// starts — used so jump/branch instructions print a `bbN` target rather
// than a raw offset.
func blockLabelFor(code []bytecode.Instruction, offset int) int {
	blocks := basicBlocks(code)
	for _, b := range blocks {
		if b.start == offset {
			return b.label
		}
	}
	return -1
}
