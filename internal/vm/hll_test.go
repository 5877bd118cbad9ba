package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/page"
	"github.com/nunuhara/ainterp/internal/vmstring"
)

// newHLLTestVM builds a VM over a program declaring a single library with
// the given functions, linked against host. No main function is needed --
// these tests drive execCALLHLL directly rather than through runLoop.
func newHLLTestVM(t *testing.T, fns []ain.HLLFunction, host Library) *VM {
	t.Helper()
	prog := &ain.Program{
		MainFunction:    NullSlot,
		MessageFunction: NullSlot,
		OnJumpFunction:  NullSlot,
		Libraries:       []ain.Library{{Name: "Test", Functions: fns}},
	}
	return New(prog, map[string]Library{"Test": host}, Config{}, zap.NewNop().Sugar())
}

// TestCallHLLRefArgIsBorrowedNotFinalized exercises a function with one ref
// string argument and one value int argument: CALLHLL must pop the value
// arg last-declared-first as a two-cell pair for the ref and a single cell
// for the int (§4.8 "link time" / calling convention), hand the callback a
// borrowed (pageSlot, varIndex) it may read and write through, and never
// itself release or retain the string the ref points at.
func TestCallHLLRefArgIsBorrowedNotFinalized(t *testing.T) {
	fns := []ain.HLLFunction{{
		Name:       "Mix",
		ReturnType: ain.Int,
		Arguments: []ain.HLLArgument{
			{Name: "s", Type: ain.RefString},
			{Name: "n", Type: ain.Int},
		},
	}}
	host := Library{
		"Mix": HostFunc{Call: func(vm *VM, args []HLLArg) (int64, bool) {
			require.Len(t, args, 2)
			assert.True(t, args[0].IsRef, "first declared argument is a ref and must arrive as one")
			assert.False(t, args[1].IsRef, "second declared argument is a value and must arrive as one")
			assert.Equal(t, int64(3), args[1].Value)

			cur := int32(vm.derefCell(args[0].PageSlot, args[0].VarIndex))
			s := vm.heap.String(cur)
			for i := int32(0); i < int32(args[1].Value); i++ {
				s = s.PushBack('x', vmstring.SJIS)
			}
			newSlot := vm.heap.NewString(s.Bytes())
			vm.heap.Release(cur)
			vm.storeThroughRef(args[0].PageSlot, args[0].VarIndex, int64(newSlot))
			return 7, true
		}},
	}
	vmInst := newHLLTestVM(t, fns, host)

	local := &page.Page{
		Kind:     page.Local,
		Cells:    []int64{int64(vmInst.heap.NewString([]byte("ab")))},
		VarTypes: []ain.DataType{ain.String},
	}
	localSlot := vmInst.heap.AllocPage(local)

	vmInst.pushRef(localSlot, 0)
	vmInst.pushInt32(3)
	vmInst.execCALLHLL(0, 0)

	assert.Equal(t, int64(7), vmInst.pop(), "non-void function must push its result")

	mutated := int32(vmInst.derefCell(localSlot, 0))
	assert.Equal(t, "abxxx", vmInst.heap.String(mutated).String())

	vmInst.heap.Release(localSlot)
	assert.Equal(t, 0, vmInst.heap.LiveCount(), "host's own release/alloc pair must leave the heap conserved")
}

// TestCallHLLValueStringArgIsFinalizedAfterCall exercises a value (non-ref)
// string argument: execCALLHLL itself must release the popped slot once
// the callback returns, regardless of what the callback does with it --
// unlike a ref argument, a value string is consumed by the call.
func TestCallHLLValueStringArgIsFinalizedAfterCall(t *testing.T) {
	var seen string
	fns := []ain.HLLFunction{{
		Name:       "Touch",
		ReturnType: ain.Void,
		Arguments:  []ain.HLLArgument{{Name: "s", Type: ain.String}},
	}}
	host := Library{
		"Touch": HostFunc{Call: func(vm *VM, args []HLLArg) (int64, bool) {
			require.Len(t, args, 1)
			assert.False(t, args[0].IsRef)
			seen = vm.heap.String(int32(args[0].Value)).String()
			return 0, false
		}},
	}
	vmInst := newHLLTestVM(t, fns, host)

	slot := vmInst.heap.NewString([]byte("hello"))
	before := vmInst.heap.LiveCount()

	vmInst.push(int64(slot))
	vmInst.execCALLHLL(0, 0)

	assert.Equal(t, "hello", seen, "callback must still see the string's contents during the call")
	assert.Equal(t, before-1, vmInst.heap.LiveCount(), "value string argument must be released once, by the call itself")
	assert.Panics(t, func() { vmInst.heap.String(slot) }, "slot must not still be live after finalization")
}

// TestCallHLLUnlinkedFunctionTraps confirms an image-declared function with
// no matching host implementation traps at call time rather than silently
// no-oping (§4.8: link failures are deferred to first use).
func TestCallHLLUnlinkedFunctionTraps(t *testing.T) {
	fns := []ain.HLLFunction{{Name: "Missing", ReturnType: ain.Void}}
	vmInst := newHLLTestVM(t, fns, Library{})

	defer func() {
		r := recover()
		assert.NotNil(t, r, "calling an unlinked HLL function must trap")
	}()
	vmInst.execCALLHLL(0, 0)
}
