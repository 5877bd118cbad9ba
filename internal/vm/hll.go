package vm

import (
	"fmt"

	"github.com/nunuhara/ainterp/internal/opcode"
)

// HostFunc is a host-implemented HLL function (§4.8). Value arguments
// arrive popped as raw cells, in declared order; reference arguments
// arrive as (pageSlot, varIndex) pairs the callback may read or write
// in-place without retaining -- the VM owns the borrow for the call's
// duration. A non-void function returns a cell to push; a void function
// returns (0, false).
type HostFunc struct {
	// NrArgs and which of them are references are carried implicitly by
	// the Library's matching ain.HLLFunction signature; Call receives
	// exactly that many pre-resolved Args.
	Call func(vm *VM, args []HLLArg) (result int64, hasResult bool)
}

// HLLArg is one resolved call argument: either a plain value cell, or a
// reference's (page, var index) pair the callback can dereference via
// vm.derefCell/vm.storeThroughRef.
type HLLArg struct {
	IsRef    bool
	Value    int64
	PageSlot int32
	VarIndex int32
}

// Library is a host library descriptor: the set of functions it exports,
// keyed by name, to be linked against one image-declared HLL0 library.
type Library map[string]HostFunc

// linkLibraries resolves every image-declared library/function pair
// against vm.libraries by name (§4.8 "link time"). A missing library or
// function is logged as a warning and left nil in vm.linked; calling an
// unlinked function later is a fatal trap, not a link-time error.
func (vm *VM) linkLibraries() {
	vm.linked = make([][]HostFunc, len(vm.prog.Libraries))
	for i, lib := range vm.prog.Libraries {
		host, ok := vm.libraries[lib.Name]
		if !ok {
			vm.logWarn("unresolved HLL library", "library", lib.Name)
			vm.linked[i] = make([]HostFunc, len(lib.Functions))
			continue
		}
		fns := make([]HostFunc, len(lib.Functions))
		for j, decl := range lib.Functions {
			hf, ok := host[decl.Name]
			if !ok {
				vm.logWarn("unresolved HLL function", "library", lib.Name, "function", decl.Name)
				continue
			}
			fns[j] = hf
		}
		vm.linked[i] = fns
	}
}

func (vm *VM) logWarn(msg string, kv ...interface{}) {
	if vm.log != nil {
		vm.log.Warnw(msg, kv...)
	}
}

// execCALLHLL implements CALLHLL <lib> <fn> (§4.8): pop the declared
// arguments in reverse (value args as cells, ref args as a two-cell
// pair), invoke the resolved host callback, finalize (release) popped
// string value arguments, and push the result if the function is
// non-void.
func (vm *VM) execCALLHLL(libIndex, fnIndex int32) {
	lib := vm.prog.Libraries[libIndex]
	decl := lib.Functions[fnIndex]
	if int(libIndex) >= len(vm.linked) || int(fnIndex) >= len(vm.linked[libIndex]) || vm.linked[libIndex][fnIndex].Call == nil {
		vm.trapf("unlinked HLL function %s.%s", lib.Name, decl.Name)
	}
	args := make([]HLLArg, len(decl.Arguments))
	stringArgIdx := make([]int, 0, len(decl.Arguments))
	for i := len(decl.Arguments) - 1; i >= 0; i-- {
		a := decl.Arguments[i]
		if a.Type.IsRef() {
			pageSlot, varIndex := vm.popRef()
			args[i] = HLLArg{IsRef: true, PageSlot: pageSlot, VarIndex: varIndex}
			continue
		}
		v := vm.pop()
		args[i] = HLLArg{Value: v}
		if a.Type.IsString() {
			stringArgIdx = append(stringArgIdx, i)
		}
	}
	result, hasResult := vm.linked[libIndex][fnIndex].Call(vm, args)
	for _, i := range stringArgIdx {
		vm.heap.Release(int32(args[i].Value))
	}
	if hasResult {
		vm.push(result)
	}
}

func (vm *VM) trapf(format string, a ...interface{}) {
	vm.trap(fmt.Sprintf(format, a...), opcode.OpCALLHLL)
}
