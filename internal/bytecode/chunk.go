package bytecode

// Instruction is one bytecode operation. Not every field is meaningful for
// every Op: IntOperand carries jump targets and slot indices, Const carries
// a literal payload for the Push* family (and the verbatim text for
// OpRawCUnsupported), and Name carries a symbol for disassembly
// readability (a local/global/field/function name).
type Instruction struct {
	Op         Op
	IntOperand int
	Const      any
	Name       string
}

// Slot is one named local or parameter binding within a Function, addressed
// by its Index in OpLoadLocal/OpStoreLocal/OpLoadParam.
type Slot struct {
	Name  string
	Index int
}

// Function is one compiled function: its parameter and local slot tables
// plus its flat instruction stream.
type Function struct {
	Name      string
	Params    []Slot
	Locals    []Slot
	Code      []Instruction
	HasReturn bool
}

// Program is a whole compiled unit: every Zinc function plus the
// synthesized entry point for "to do the main thing".
type Program struct {
	Functions []*Function
	Main      *Function
}

// builder accumulates one Function's slots and instructions during
// compilation, tracking loop contexts so break/continue can patch the
// right jump targets once a loop's end address is known.
type builder struct {
	fn        *Function
	locals    map[string]int
	loopStack []loopCtx
}

// loopCtx tracks the still-unpatched jumps for one enclosing loop.
// continue's target differs by loop form: a plain while can jump straight
// back to its condition re-check (known up front), but for-range/for-each/
// repeat loops continue into an increment step whose address is only known
// after the body compiles — so continue jumps are always deferred into
// pendingContinue and patched by the loop's own compile function once that
// address is known, rather than resolved eagerly like breakJumps.
type loopCtx struct {
	breakJumps      []int
	pendingContinue []int
}

func newBuilder(name string) *builder {
	return &builder{fn: &Function{Name: name}, locals: map[string]int{}}
}

func (b *builder) emit(ins Instruction) int {
	b.fn.Code = append(b.fn.Code, ins)
	return len(b.fn.Code) - 1
}

func (b *builder) here() int { return len(b.fn.Code) }

func (b *builder) patchJumpTarget(at, target int) {
	b.fn.Code[at].IntOperand = target
}

func (b *builder) localSlot(name string) int {
	if idx, ok := b.locals[name]; ok {
		return idx
	}
	idx := len(b.fn.Locals)
	b.locals[name] = idx
	b.fn.Locals = append(b.fn.Locals, Slot{Name: name, Index: idx})
	return idx
}

func (b *builder) paramSlot(name string, index int) {
	b.fn.Params = append(b.fn.Params, Slot{Name: name, Index: index})
}

func (b *builder) pushLoop() {
	b.loopStack = append(b.loopStack, loopCtx{})
}

func (b *builder) popLoop() loopCtx {
	ctx := b.loopStack[len(b.loopStack)-1]
	b.loopStack = b.loopStack[:len(b.loopStack)-1]
	return ctx
}

func (b *builder) currentLoop() *loopCtx {
	if len(b.loopStack) == 0 {
		return nil
	}
	return &b.loopStack[len(b.loopStack)-1]
}
