package vm

import (
	"math"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/page"
)

// A ref T value is a two-cell (page slot, var index) pair wherever it
// appears on the operand stack (pushRef/popRef in vm.go). Inside a page's
// Cells, where every variable -- ref or not -- occupies exactly one int64
// slot, the same pair is packed into a single cell: page slot in the high
// 32 bits, var index in the low 32 bits. packRef/unpackRef convert between
// the two representations; this packing is local storage detail, not part
// of the external bytecode ABI.
func packRef(pageSlot, varIndex int32) int64 {
	return int64(uint64(uint32(pageSlot))<<32 | uint64(uint32(varIndex)))
}

func unpackRef(v int64) (int32, int32) {
	return int32(uint32(v >> 32)), int32(uint32(v))
}

// cellType reports the declared type of cell varIndex of p: the shared
// element type for an array page, the per-variable type otherwise.
func cellType(p *page.Page, varIndex int32) ain.DataType {
	if p.Kind == page.Array {
		return p.ElemType
	}
	return p.VarTypes[varIndex]
}

// derefCell reads the value a ref-typed page cell points at: if the
// variable's declared type is itself a ref form, the stored cell is a
// packed (page, idx) pair pointing elsewhere and is followed once; every
// other declared type is read directly.
func (vm *VM) derefCell(pageSlot, varIndex int32) int64 {
	p := vm.heap.Page(pageSlot)
	if cellType(p, varIndex).IsRef() {
		tp, ti := unpackRef(p.Cells[varIndex])
		return vm.heap.Page(tp).Cells[ti]
	}
	return p.Cells[varIndex]
}

// storeThroughRef writes value into the cell a ref points at, following one
// level of indirection for ref-typed variables exactly as derefCell does.
func (vm *VM) storeThroughRef(pageSlot, varIndex int32, value int64) {
	p := vm.heap.Page(pageSlot)
	if cellType(p, varIndex).IsRef() {
		tp, ti := unpackRef(p.Cells[varIndex])
		vm.heap.Page(tp).Cells[ti] = value
		return
	}
	p.Cells[varIndex] = value
}

// targetType reports the declared type actually stored at (pageSlot,
// varIndex), following one level of ref indirection exactly as
// derefCell/storeThroughRef do -- what ASSIGN needs to decide whether the
// value being written is a plain scalar/handle (stored verbatim) or a
// struct/array (deep-copied per §4.4 "Recursive copy", the behavior
// §4.7's "Structs"/array-assignment text names for SR_ASSIGN and
// whole-array variable assignment alike).
func (vm *VM) targetType(pageSlot, varIndex int32) ain.DataType {
	p := vm.heap.Page(pageSlot)
	t := cellType(p, varIndex)
	if t.IsRef() {
		tp, ti := unpackRef(p.Cells[varIndex])
		return cellType(vm.heap.Page(tp), ti)
	}
	return t
}

// execREF implements REF (§4.7 "References"): pop a two-cell reference,
// push the referenced value.
func (vm *VM) execREF() {
	pageSlot, varIndex := vm.popRef()
	vm.push(vm.derefCell(pageSlot, varIndex))
}

// execREFREF implements REFREF: pop one reference, push another -- the
// variable at (pageSlot, varIndex) must itself be of ref type, and its
// stored packed pointer becomes the new two-cell reference.
func (vm *VM) execREFREF() {
	pageSlot, varIndex := vm.popRef()
	p := vm.heap.Page(pageSlot)
	tp, ti := unpackRef(p.Cells[varIndex])
	vm.pushRef(tp, ti)
}

// execASSIGN implements ASSIGN: pop a value and a reference, write the
// value through the reference, leave the written value on the stack. When
// the destination is struct- or array-typed, the popped slot is deep-
// copied rather than aliased (§4.4 "Recursive copy"; §4.7 names this
// explicitly for SR_ASSIGN, and it applies identically to a whole-array
// variable assignment since no dedicated array-assign opcode exists) --
// the old content is released first, exactly as any other owned value
// would be on reassignment.
func (vm *VM) execASSIGN() {
	value := vm.pop()
	pageSlot, varIndex := vm.popRef()
	t := vm.targetType(pageSlot, varIndex)
	if t.IsStruct() || t.IsArray() {
		old := int32(vm.derefCell(pageSlot, varIndex))
		if old != NullSlot {
			vm.heap.Release(old)
		}
		newSlot := NullSlot
		if src := int32(value); src != NullSlot {
			newSlot = vm.heap.AllocPage(vm.heap.Copy(vm.heap.Page(src)))
		}
		vm.storeThroughRef(pageSlot, varIndex, int64(newSlot))
		vm.push(int64(newSlot))
		return
	}
	vm.storeThroughRef(pageSlot, varIndex, value)
	vm.push(value)
}

// execR_ASSIGN implements R_ASSIGN: pop source and destination reference
// pairs and overwrite the destination variable's packed pointer with the
// source's, rebinding what the destination ref variable points at.
func (vm *VM) execR_ASSIGN() {
	srcPage, srcIdx := vm.popRef()
	dstPage, dstIdx := vm.popRef()
	vm.heap.Page(dstPage).Cells[dstIdx] = packRef(srcPage, srcIdx)
}

// intCompound applies op to the referenced int value and the popped
// operand, in the order (referenced, operand), writing and leaving the
// result on the stack -- the shared shape of PLUSA/MINUSA/.../RSHIFTA.
func (vm *VM) intCompound(op func(a, b int32) int32, operand int32) {
	pageSlot, varIndex := vm.popRef()
	cur := int32(vm.derefCell(pageSlot, varIndex))
	result := op(cur, operand)
	vm.storeThroughRef(pageSlot, varIndex, int64(result))
	vm.pushInt32(result)
}

func (vm *VM) floatCompound(op func(a, b float32) float32, operand float32) {
	pageSlot, varIndex := vm.popRef()
	cur := math.Float32frombits(uint32(int32(vm.derefCell(pageSlot, varIndex))))
	result := op(cur, operand)
	vm.storeThroughRef(pageSlot, varIndex, int64(int32(math.Float32bits(result))))
	vm.pushFloat32(result)
}

func (vm *VM) longCompound(op func(a, b int64) int64, operand int64) {
	pageSlot, varIndex := vm.popRef()
	cur := vm.derefCell(pageSlot, varIndex)
	result := op(cur, operand)
	vm.storeThroughRef(pageSlot, varIndex, result)
	vm.push(result)
}
