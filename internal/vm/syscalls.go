package vm

import (
	"fmt"
	"time"
)

// Syscall codes implemented per §4.9. The full table is much larger; codes
// not listed here are warned-and-ignored, matching the spec's own scope.
const (
	sysExit              = 0x00
	sysLockPeek          = 0x03
	sysUnlockPeek        = 0x04
	sysOutput            = 0x06
	sysGetSaveFolderName = 0x0C
	sysGetTime           = 0x0D
	sysPeek              = 0x14
	sysSleep             = 0x15
)

// execCALLSYS implements CALLSYS <code> (§4.9).
func (vm *VM) execCALLSYS(code int32) {
	switch code {
	case sysExit:
		vm.exitCode = int(vm.popInt32())
		vm.exited = true
	case sysLockPeek, sysUnlockPeek:
		vm.pushInt32(1)
	case sysOutput:
		// Peek, don't pop: the caller pops the string argument itself
		// (§9's resolution of the output-ownership ambiguity).
		s := vm.heap.String(int32(vm.peek()))
		fmt.Print(s.String())
	case sysGetSaveFolderName:
		vm.push(int64(vm.heap.NewString([]byte(vm.config.SaveFolder))))
	case sysGetTime:
		vm.pushInt32(int32(time.Since(vm.startedAt).Milliseconds()))
	case sysPeek:
		// no-op; used for UI event pumping externally.
	case sysSleep:
		vm.popInt32() // duration, ignored
	default:
		vm.logWarn("unimplemented syscall", "code", code)
	}
}
