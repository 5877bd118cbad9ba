package vm

import (
	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/opcode"
	"github.com/nunuhara/ainterp/internal/page"
)

// arrayElemType maps a declared array (or ref-array) variable type to the
// scalar/string/struct type its elements carry -- what NewArrayPage needs
// as its elemType, and what A_ALLOC/A_REALLOC must derive from the target
// variable's own declared type since the opcode itself carries no type
// argument.
func arrayElemType(t ain.DataType) ain.DataType {
	switch t {
	case ain.ArrayInt, ain.RefArrayInt:
		return ain.Int
	case ain.ArrayFloat, ain.RefArrayFloat:
		return ain.Float
	case ain.ArrayString, ain.RefArrayString:
		return ain.String
	case ain.ArrayStruct, ain.RefArrayStruct:
		return ain.Struct
	case ain.ArrayBool, ain.RefArrayBool:
		return ain.Bool
	case ain.ArrayLongInt, ain.RefArrayLongInt:
		return ain.LongInt
	case ain.ArrayFuncType, ain.RefArrayFuncType:
		return ain.FuncType
	case ain.ArrayDelegate, ain.RefArrayDelegate:
		return ain.Delegate
	default:
		return ain.Void
	}
}

// execNEW implements NEW: pop a reference to a struct-typed variable,
// allocate a fresh instance of its declared struct type, release whatever
// the variable previously held, store the new instance, and push its slot
// (for a following CALLMETHOD to invoke the constructor, per §4.7
// "Structs").
func (vm *VM) execNEW() {
	pageSlot, varIndex := vm.popRef()
	p := vm.heap.Page(pageSlot)
	structIndex := p.VarStructTypes[varIndex]
	old := int32(p.Cells[varIndex])
	if old != NullSlot {
		vm.heap.Release(old)
	}
	newPage := page.NewStructPage(structIndex, vm.prog.Structures, vm.heap)
	slot := vm.heap.AllocPage(newPage)
	p.Cells[varIndex] = int64(slot)
	vm.pushInt32(slot)
}

// execDELETE implements DELETE: pop a reference to a struct-typed
// variable, release its current instance, and null it out.
func (vm *VM) execDELETE() {
	pageSlot, varIndex := vm.popRef()
	p := vm.heap.Page(pageSlot)
	old := int32(p.Cells[varIndex])
	if old != NullSlot {
		vm.heap.Release(old)
	}
	p.Cells[varIndex] = int64(NullSlot)
}

// execSR_REF implements SR_REF <member>: pop a struct instance slot, push
// a two-cell reference to its member -- the same (page, var index) shape
// REF/ASSIGN already know how to follow, since a struct page's Cells are
// addressed identically to a local or global page's.
func (vm *VM) execSR_REF(member int32) {
	structSlot := vm.popInt32()
	vm.pushRef(structSlot, member)
}

// execSR_POP implements SR_POP: discard a two-cell struct-member
// reference without dereferencing it. References are non-owning, so
// nothing is released.
func (vm *VM) execSR_POP() {
	vm.popRef()
}

// arrayTarget resolves the (array slot, declared element type) pair a
// family of A_* opcodes need, given a two-cell reference to the array
// variable itself.
func (vm *VM) arrayTarget(pageSlot, varIndex int32) (slot int32, elemType ain.DataType, elemStruct int32) {
	p := vm.heap.Page(pageSlot)
	return int32(p.Cells[varIndex]), arrayElemType(p.VarTypes[varIndex]), p.VarStructTypes[varIndex]
}

// execA_ALLOC implements A_ALLOC: pop the rank, that many per-dimension
// sizes (outermost first), and a reference to the array variable;
// construct the array tree and store it, releasing whatever the variable
// previously held (§4.5 "Array semantics").
func (vm *VM) execA_ALLOC() {
	rank := vm.popInt32()
	dims := make([]int32, rank)
	for i := rank - 1; i >= 0; i-- {
		dims[i] = vm.popInt32()
	}
	pageSlot, varIndex := vm.popRef()
	p := vm.heap.Page(pageSlot)
	elemType := arrayElemType(p.VarTypes[varIndex])
	elemStruct := p.VarStructTypes[varIndex]
	old := int32(p.Cells[varIndex])
	if old != NullSlot {
		vm.heap.Release(old)
	}
	newArr := page.NewArrayPage(elemType, elemStruct, dims, vm.prog.Structures, vm.heap)
	p.Cells[varIndex] = int64(vm.heap.AllocPage(newArr))
}

// execA_REALLOC implements A_REALLOC: like A_ALLOC, but preserves the
// overlapping prefix of existing rank-1 elements instead of discarding
// them (§4.5 "A_REALLOC rebuilds preserving what fits").
func (vm *VM) execA_REALLOC() {
	rank := vm.popInt32()
	dims := make([]int32, rank)
	for i := rank - 1; i >= 0; i-- {
		dims[i] = vm.popInt32()
	}
	pageSlot, varIndex := vm.popRef()
	p := vm.heap.Page(pageSlot)
	elemType := arrayElemType(p.VarTypes[varIndex])
	elemStruct := p.VarStructTypes[varIndex]
	old := int32(p.Cells[varIndex])

	newArr := page.NewArrayPage(elemType, elemStruct, dims, vm.prog.Structures, vm.heap)
	if old != NullSlot && rank == 1 {
		oldPage := vm.heap.Page(old)
		n := len(oldPage.Cells)
		if n > len(newArr.Cells) {
			n = len(newArr.Cells)
		}
		for i := 0; i < n; i++ {
			vm.heap.Release(int32(newArr.Cells[i]))
			newArr.Cells[i] = int64(vm.heap.CopyElement(elemType, int32(oldPage.Cells[i])))
		}
	}
	if old != NullSlot {
		vm.heap.Release(old)
	}
	p.Cells[varIndex] = int64(vm.heap.AllocPage(newArr))
}

// execA_FREE implements A_FREE: release the array and null out the
// variable.
func (vm *VM) execA_FREE() {
	pageSlot, varIndex := vm.popRef()
	p := vm.heap.Page(pageSlot)
	old := int32(p.Cells[varIndex])
	if old != NullSlot {
		vm.heap.Release(old)
	}
	p.Cells[varIndex] = int64(NullSlot)
}

// execA_REF implements A_REF: pop an index and an array instance slot,
// push a two-cell reference to that element.
func (vm *VM) execA_REF() {
	index := vm.popInt32()
	arraySlot := vm.popInt32()
	vm.pushRef(arraySlot, index)
}

// execA_NUMOF implements A_NUMOF: pop an array instance slot, push its
// element count along its outermost dimension.
func (vm *VM) execA_NUMOF() {
	slot := vm.popInt32()
	vm.pushInt32(vm.heap.Page(slot).NumCells())
}

// execA_COPY implements A_COPY: pop a count, a source start index, a
// source array slot, a destination start index, and a destination array
// slot; deep-copy count elements element-wise (§4.5 "A_COPY").
func (vm *VM) execA_COPY() {
	count := vm.popInt32()
	srcStart := vm.popInt32()
	srcSlot := vm.popInt32()
	dstStart := vm.popInt32()
	dstSlot := vm.popInt32()

	src := vm.heap.Page(srcSlot)
	dst := vm.heap.Page(dstSlot)
	for i := int32(0); i < count; i++ {
		old := dst.Cells[dstStart+i]
		vm.releaseArrayCellIfOwned(dst.ElemType, int32(old))
		dst.Cells[dstStart+i] = int64(vm.heap.CopyElement(src.ElemType, int32(src.Cells[srcStart+i])))
	}
}

func (vm *VM) releaseArrayCellIfOwned(t ain.DataType, cell int32) {
	if cell == NullSlot {
		return
	}
	switch {
	case t.IsString(), t.IsStruct(), t.IsArray():
		vm.heap.Release(cell)
	}
}

// execA_FILL implements A_FILL: pop a count, a fill value, a start index,
// and an array instance slot; write an independent copy of the fill value
// into each of the count cells starting at start.
func (vm *VM) execA_FILL() {
	count := vm.popInt32()
	value := vm.popInt32()
	start := vm.popInt32()
	slot := vm.popInt32()
	p := vm.heap.Page(slot)
	for i := int32(0); i < count; i++ {
		old := p.Cells[start+i]
		vm.releaseArrayCellIfOwned(p.ElemType, int32(old))
		p.Cells[start+i] = int64(vm.heap.CopyElement(p.ElemType, value))
	}
}

// execA_PUSHBACK implements A_PUSHBACK: pop a value and a reference to
// the array variable, append an independent copy of the value.
func (vm *VM) execA_PUSHBACK() {
	value := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	slot, elemType, _ := vm.arrayTarget(pageSlot, varIndex)
	p := vm.heap.Page(slot)
	p.Cells = append(p.Cells, int64(vm.heap.CopyElement(elemType, value)))
}

// execA_POPBACK implements A_POPBACK: pop a reference to the array
// variable, release and remove its last element.
func (vm *VM) execA_POPBACK() {
	pageSlot, varIndex := vm.popRef()
	slot, elemType, _ := vm.arrayTarget(pageSlot, varIndex)
	p := vm.heap.Page(slot)
	n := len(p.Cells)
	if n == 0 {
		return
	}
	vm.releaseArrayCellIfOwned(elemType, int32(p.Cells[n-1]))
	p.Cells = p.Cells[:n-1]
}

// execA_EMPTY implements A_EMPTY: pop an array instance slot, push 1 if
// it has no elements.
func (vm *VM) execA_EMPTY() {
	slot := vm.popInt32()
	vm.pushInt32(boolToCell(vm.heap.Page(slot).NumCells() == 0))
}

// execA_ERASE implements A_ERASE: pop an index and a reference to the
// array variable, release and remove that element.
func (vm *VM) execA_ERASE() {
	index := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	slot, elemType, _ := vm.arrayTarget(pageSlot, varIndex)
	p := vm.heap.Page(slot)
	vm.releaseArrayCellIfOwned(elemType, int32(p.Cells[index]))
	p.Cells = append(p.Cells[:index], p.Cells[index+1:]...)
}

// execA_INSERT implements A_INSERT: pop a value, an index, and a
// reference to the array variable, insert an independent copy of the
// value at that index.
func (vm *VM) execA_INSERT() {
	value := vm.popInt32()
	index := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	slot, elemType, _ := vm.arrayTarget(pageSlot, varIndex)
	p := vm.heap.Page(slot)
	cell := int64(vm.heap.CopyElement(elemType, value))
	p.Cells = append(p.Cells, 0)
	copy(p.Cells[index+1:], p.Cells[index:])
	p.Cells[index] = cell
}

// execA_REVERSE implements A_REVERSE: pop an array instance slot, reverse
// its elements in place.
func (vm *VM) execA_REVERSE() {
	slot := vm.popInt32()
	p := vm.heap.Page(slot)
	for i, j := 0, len(p.Cells)-1; i < j; i, j = i+1, j-1 {
		p.Cells[i], p.Cells[j] = p.Cells[j], p.Cells[i]
	}
}

// execA_SORT implements A_SORT: pop a comparator function index and an
// array instance slot; sort elements using the comparator, which the
// interpreter calls by re-entering itself (§4.5, §4.7 "the interpreter
// re-enters itself to call the comparator").
func (vm *VM) execA_SORT() {
	fnIndex := vm.popInt32()
	slot := vm.popInt32()
	p := vm.heap.Page(slot)
	less := func(i, j int) bool {
		return vm.invokeFunction(fnIndex, []int64{p.Cells[i], p.Cells[j]}) < 0
	}
	insertionSort(len(p.Cells), less, func(i, j int) {
		p.Cells[i], p.Cells[j] = p.Cells[j], p.Cells[i]
	})
}

func insertionSort(n int, less func(i, j int) bool, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			swap(j, j-1)
		}
	}
}

// execA_FIND implements A_FIND: pop a comparator function index, a value,
// and an array instance slot; linearly scan for a match. A comparator
// index of -1 falls back to raw cell equality; otherwise the comparator
// is invoked with (element, value) and a nonzero result counts as a
// match, per §4.5.
func (vm *VM) execA_FIND() {
	fnIndex := vm.popInt32()
	value := vm.popInt32()
	slot := vm.popInt32()
	p := vm.heap.Page(slot)
	for i, cell := range p.Cells {
		var match bool
		if fnIndex == NullSlot {
			match = int32(cell) == value
		} else {
			match = vm.invokeFunction(fnIndex, []int64{cell, int64(value)}) != 0
		}
		if match {
			vm.pushInt32(int32(i))
			return
		}
	}
	vm.pushInt32(-1)
}

// invokeFunction is the "interpreter re-enters itself" primitive §4.5/§4.7
// describe for A_SORT/A_FIND comparators: push args, call fnIndex, and run
// the fetch/decode/execute loop until control returns to the current call
// depth, then pop and return the callee's result.
func (vm *VM) invokeFunction(fnIndex int32, args []int64) int64 {
	depth := len(vm.frames)
	savedPC := vm.pc
	for _, a := range args {
		vm.push(a)
	}
	vm.callFunction(fnIndex, NullSlot, savedPC)
	for len(vm.frames) > depth {
		op := vm.fetchOpcode()
		meta, ok := opcode.Lookup(op)
		if !ok || meta.Name == "" {
			vm.trap("unimplemented opcode", op)
		}
		next := vm.pc + int32(op.Width())
		vm.dispatch(op)
		if !op.ModifiesIP() {
			vm.pc = next
		}
	}
	return vm.pop()
}
