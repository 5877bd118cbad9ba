package vm

import (
	"github.com/nunuhara/ainterp/internal/opcode"
	"github.com/nunuhara/ainterp/internal/page"
)

// callFunction implements the shared core of CALLFUNC/CALLMETHOD/CALLFUNC2/
// MSG (§4.7 "Calling convention"): allocate a fresh local page, pop the
// first NrArgs cells into the parameter slots in reverse (arguments were
// pushed left-to-right, so the last argument is on top), default-initialize
// the remaining locals, push a new frame recording returnAddr (the PC the
// matching RETURN should resume at -- the call site's own width varies by
// opcode, so the dispatcher computes it before controls transfers here),
// and jump to the function's entry address.
func (vm *VM) callFunction(fnIndex int32, structSlot int32, returnAddr int32) {
	fn := vm.prog.Functions[fnIndex]
	local := page.NewLocalPage(fnIndex, fn.Vars, fn.NrArgs, vm.prog.Structures, vm.heap)
	for i := fn.NrArgs - 1; i >= 0; i-- {
		local.Cells[i] = vm.pop()
	}
	localSlot := vm.heap.AllocPage(local)
	vm.frames = append(vm.frames, Frame{
		FunctionIndex:  fnIndex,
		ReturnAddress:  returnAddr,
		LocalPageSlot:  localSlot,
		StructPageSlot: structSlot,
	})
	vm.pc = fn.Address
}

// execCALLFUNC implements CALLFUNC <fn>.
func (vm *VM) execCALLFUNC(fnIndex int32, returnAddr int32) {
	vm.callFunction(fnIndex, NullSlot, returnAddr)
}

// execCALLMETHOD implements CALLMETHOD <fn>: identical to CALLFUNC but
// additionally pops a struct-page reference and records it as the frame's
// struct_page_slot.
func (vm *VM) execCALLMETHOD(fnIndex int32, returnAddr int32) {
	structSlot := vm.popInt32()
	vm.callFunction(fnIndex, structSlot, returnAddr)
}

// execCALLFUNC2 implements CALLFUNC2: the function index is read off the
// stack (it is preceded by a function-type tag that is popped but unused
// at runtime, per §4.7).
func (vm *VM) execCALLFUNC2(returnAddr int32) {
	fnIndex := vm.popInt32()
	_ = vm.popInt32() // function-type tag, unused
	vm.callFunction(fnIndex, NullSlot, returnAddr)
}

// execRETURN implements RETURN: release the frame's local page, restore PC
// from the frame, and pop it. The callee
// has already pushed its return value, if any, before RETURN executes. An
// empty call stack after popping means the entry frame itself returned;
// PC is set to the halt sentinel.
func (vm *VM) execRETURN() {
	n := len(vm.frames)
	f := vm.frames[n-1]
	vm.frames = vm.frames[:n-1]
	vm.heap.Release(f.LocalPageSlot)
	if len(vm.frames) == 0 {
		vm.pc = sentinelReturn
		return
	}
	vm.pc = f.ReturnAddress
}

// execCALLONJUMP implements CALLONJUMP: pop a string naming the scenario
// function, pre-allocate a local page for it. The page is held on the
// stack (as a heap slot index) until the paired SJUMP consumes it, per
// §4.7's "scenario dispatch" description.
func (vm *VM) execCALLONJUMP() {
	nameSlot := vm.popInt32()
	name := vm.heap.String(nameSlot).String()
	vm.heap.Release(nameSlot)
	fnIndex, ok := vm.findFunctionByName(name)
	if !ok {
		vm.trap("CALLONJUMP: unknown scenario function "+name, opcode.OpCALLONJUMP)
	}
	fn := vm.prog.Functions[fnIndex]
	local := page.NewLocalPage(fnIndex, fn.Vars, 0, vm.prog.Structures, vm.heap)
	localSlot := vm.heap.AllocPage(local)
	vm.pushInt32(fnIndex)
	vm.pushInt32(localSlot)
}

// execSJUMP implements SJUMP: abandon every current frame (releasing each
// one's pages), seed the call stack with a single frame referencing the
// page CALLONJUMP prepared, and jump into the function. This is the
// language's only non-structured control transfer (§4.7, §5).
func (vm *VM) execSJUMP() {
	localSlot := vm.popInt32()
	fnIndex := vm.popInt32()
	for i := len(vm.frames) - 1; i >= 0; i-- {
		f := vm.frames[i]
		vm.heap.Release(f.LocalPageSlot)
		if f.StructPageSlot != NullSlot {
			vm.heap.Release(f.StructPageSlot)
		}
	}
	vm.frames = vm.frames[:0]
	vm.frames = append(vm.frames, Frame{
		FunctionIndex:  fnIndex,
		ReturnAddress:  sentinelReturn,
		LocalPageSlot:  localSlot,
		StructPageSlot: NullSlot,
	})
	vm.pc = vm.prog.Functions[fnIndex].Address
}

func (vm *VM) findFunctionByName(name string) (int32, bool) {
	for i, f := range vm.prog.Functions {
		if f.Name == name {
			return int32(i), true
		}
	}
	return 0, false
}

// execMSG implements MSG <index>: push { index, total_messages,
// string_reference } and CALLFUNC the image's message function if one is
// registered; otherwise nothing is pushed, the message string is released,
// and execution continues after the MSG.
func (vm *VM) execMSG(index int32, returnAddr int32) {
	total := int32(len(vm.prog.Messages))
	var strSlot int32 = NullSlot
	if int(index) < len(vm.prog.Messages) {
		strSlot = vm.heap.NewString([]byte(vm.prog.Messages[index]))
	}
	if vm.prog.MessageFunction == NullSlot || vm.prog.MessageFunction < 0 || int(vm.prog.MessageFunction) >= len(vm.prog.Functions) {
		vm.heap.Release(strSlot)
		vm.pc = returnAddr
		return
	}
	vm.pushInt32(index)
	vm.pushInt32(total)
	vm.pushInt32(strSlot)
	vm.callFunction(vm.prog.MessageFunction, NullSlot, returnAddr)
}

// execASSERT implements ASSERT (§4.7 "Cancellation/traps"): pop line,
// filename, expression-text, and condition (pushed in that order, so
// condition is popped first); a zero condition is a fatal assertion
// failure carrying the diagnostic.
func (vm *VM) execASSERT() {
	cond := vm.popInt32()
	exprSlot := vm.popInt32()
	fileSlot := vm.popInt32()
	line := vm.popInt32()
	if cond != 0 {
		return
	}
	expr := "?"
	file := "?"
	if exprSlot != NullSlot {
		expr = vm.heap.String(exprSlot).String()
	}
	if fileSlot != NullSlot {
		file = vm.heap.String(fileSlot).String()
	}
	panic(&AssertionError{
		TrapError: &TrapError{
			Message: "assertion failed: " + expr,
			Opcode:  "ASSERT",
			PC:      vm.pc,
			Trace:   vm.callStackTrace(),
		},
		File: file,
		Line: line,
		Expr: expr,
	})
}
