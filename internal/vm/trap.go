package vm

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nunuhara/ainterp/internal/opcode"
)

// TrapError is a fatal runtime trap (§7 "Runtime traps"): an illegal
// opcode, out-of-range index, null-ref dereference, double-free, or array
// bounds violation. It carries the same diagnostic information the
// reference runtime prints: the opcode, PC, and a call-stack trace of
// function names.
type TrapError struct {
	Message string
	Opcode  string
	PC      int32
	Trace   []string
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("trap at pc=%d (%s): %s", e.PC, e.Opcode, e.Message)
}

// AssertionError is raised by ASSERT; distinct from TrapError for
// diagnostic purposes per §7, otherwise handled identically.
type AssertionError struct {
	*TrapError
	File string
	Line int32
	Expr string
}

// trap raises a fatal runtime trap. It never returns -- the panic is caught
// by Run's deferred recover, which turns it into a *TrapError.
func (vm *VM) trap(message string, op opcode.Opcode) {
	panic(&TrapError{
		Message: message,
		Opcode:  op.String(),
		PC:      vm.pc,
		Trace:   vm.callStackTrace(),
	})
}

func (vm *VM) callStackTrace() []string {
	trace := make([]string, len(vm.frames))
	for i, f := range vm.frames {
		name := "?"
		if int(f.FunctionIndex) < len(vm.prog.Functions) {
			name = vm.prog.Functions[f.FunctionIndex].Name
		}
		trace[i] = name
	}
	return trace
}

// wrapPanic turns whatever Run's recover caught into an error: a *TrapError
// or *AssertionError produced by vm.trap/execASSERT is returned
// as-is (wrapped for stack context); anything else (a heap invariant
// violation surfaced as a bare panic, e.g. double-release) is wrapped into
// a TrapError so callers have one error shape to handle.
func (vm *VM) wrapPanic(r interface{}) error {
	switch e := r.(type) {
	case *AssertionError:
		return errors.WithStack(e)
	case *TrapError:
		return errors.WithStack(e)
	case error:
		return errors.WithStack(&TrapError{
			Message: e.Error(),
			Opcode:  vm.fetchOpcodeSafe(),
			PC:      vm.pc,
			Trace:   vm.callStackTrace(),
		})
	default:
		return errors.WithStack(&TrapError{
			Message: fmt.Sprint(r),
			Opcode:  vm.fetchOpcodeSafe(),
			PC:      vm.pc,
			Trace:   vm.callStackTrace(),
		})
	}
}

func (vm *VM) fetchOpcodeSafe() string {
	if vm.pc < 0 || int(vm.pc)+2 > len(vm.prog.Code) {
		return "?"
	}
	return vm.fetchOpcode().String()
}
