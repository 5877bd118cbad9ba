package vm

import (
	"github.com/nunuhara/ainterp/internal/opcode"
)

// dispatch is the fetch-decode-execute loop's per-opcode core (§4.7): it
// reads the instruction at vm.pc, pulls whatever argument words it needs
// via vm.argAt, and calls the matching exec* handler. Call-family opcodes
// compute their own resume address here -- the call site's width varies
// by opcode (CALLFUNC2 has no argument word, the others have one), so it
// must be known before control transfers into the callee.
func (vm *VM) dispatch(op opcode.Opcode) {
	switch op {

	// --- stack manipulation ---
	case opcode.OpPUSH:
		vm.pushInt32(vm.argAt(0))
	case opcode.OpPOP:
		vm.pop()
	case opcode.OpF_PUSH:
		vm.push(int64(vm.argAt(0)))
	case opcode.OpDUP:
		vm.push(vm.peek())
	case opcode.OpDUP2:
		b := vm.peekAt(0)
		a := vm.peekAt(1)
		vm.push(a)
		vm.push(b)
	case opcode.OpDUP_U2:
		v := vm.peekAt(1)
		vm.push(v)
	case opcode.OpDUP_X2:
		top := vm.pop()
		b := vm.pop()
		a := vm.pop()
		vm.push(top)
		vm.push(a)
		vm.push(b)
		vm.push(top)
	case opcode.OpDUP2_X1:
		d := vm.pop()
		c := vm.pop()
		b := vm.pop()
		vm.push(c)
		vm.push(d)
		vm.push(b)
		vm.push(c)
		vm.push(d)
	case opcode.OpSWAP:
		b := vm.pop()
		a := vm.pop()
		vm.push(b)
		vm.push(a)
	case opcode.OpCMP:
		// no-op placeholder opcode in the reference encoding; nothing to do.

	// --- page access ---
	case opcode.OpPUSHGLOBALPAGE:
		vm.pushInt32(vm.globalSlot)
	case opcode.OpPUSHLOCALPAGE:
		vm.pushInt32(vm.currentFrame().LocalPageSlot)
	case opcode.OpPUSHSTRUCTPAGE:
		vm.pushInt32(vm.currentFrame().StructPageSlot)

	// --- references ---
	case opcode.OpREF:
		vm.execREF()
	case opcode.OpREFREF:
		vm.execREFREF()
	case opcode.OpASSIGN:
		vm.execASSIGN()
	case opcode.OpR_ASSIGN:
		vm.execR_ASSIGN()

	// --- int arithmetic/bitwise/compare ---
	case opcode.OpINV:
		vm.execIntUnary(func(a int32) int32 { return -a })
	case opcode.OpNOT:
		vm.execIntUnary(func(a int32) int32 { return boolToCell(a == 0) })
	case opcode.OpCOMPL:
		vm.execIntUnary(func(a int32) int32 { return ^a })
	case opcode.OpADD:
		vm.execIntBinary(func(a, b int32) int32 { return a + b })
	case opcode.OpSUB:
		vm.execIntBinary(func(a, b int32) int32 { return a - b })
	case opcode.OpMUL:
		vm.execIntBinary(func(a, b int32) int32 { return a * b })
	case opcode.OpDIV:
		vm.execIntBinary(divInt)
	case opcode.OpMOD:
		vm.execIntBinary(modInt)
	case opcode.OpAND:
		vm.execIntBinary(func(a, b int32) int32 { return a & b })
	case opcode.OpOR:
		vm.execIntBinary(func(a, b int32) int32 { return a | b })
	case opcode.OpXOR:
		vm.execIntBinary(func(a, b int32) int32 { return a ^ b })
	case opcode.OpLSHIFT:
		vm.execIntBinary(func(a, b int32) int32 { return a << uint32(b) })
	case opcode.OpRSHIFT:
		vm.execIntBinary(func(a, b int32) int32 { return a >> uint32(b) })
	case opcode.OpLT:
		vm.execIntBinary(func(a, b int32) int32 { return boolToCell(a < b) })
	case opcode.OpGT:
		vm.execIntBinary(func(a, b int32) int32 { return boolToCell(a > b) })
	case opcode.OpLTE:
		vm.execIntBinary(func(a, b int32) int32 { return boolToCell(a <= b) })
	case opcode.OpGTE:
		vm.execIntBinary(func(a, b int32) int32 { return boolToCell(a >= b) })
	case opcode.OpNOTE:
		vm.execIntBinary(func(a, b int32) int32 { return boolToCell(a != b) })
	case opcode.OpEQUALE:
		vm.execIntBinary(func(a, b int32) int32 { return boolToCell(a == b) })

	// --- int compound-assign / inc-dec ---
	case opcode.OpPLUSA:
		vm.intCompound(func(a, b int32) int32 { return a + b }, vm.popInt32TopOfCompound())
	case opcode.OpMINUSA:
		vm.intCompound(func(a, b int32) int32 { return a - b }, vm.popInt32TopOfCompound())
	case opcode.OpMULA:
		vm.intCompound(func(a, b int32) int32 { return a * b }, vm.popInt32TopOfCompound())
	case opcode.OpDIVA:
		vm.intCompound(divInt, vm.popInt32TopOfCompound())
	case opcode.OpMODA:
		vm.intCompound(modInt, vm.popInt32TopOfCompound())
	case opcode.OpANDA:
		vm.intCompound(func(a, b int32) int32 { return a & b }, vm.popInt32TopOfCompound())
	case opcode.OpORA:
		vm.intCompound(func(a, b int32) int32 { return a | b }, vm.popInt32TopOfCompound())
	case opcode.OpXORA:
		vm.intCompound(func(a, b int32) int32 { return a ^ b }, vm.popInt32TopOfCompound())
	case opcode.OpLSHIFTA:
		vm.intCompound(func(a, b int32) int32 { return a << uint32(b) }, vm.popInt32TopOfCompound())
	case opcode.OpRSHIFTA:
		vm.intCompound(func(a, b int32) int32 { return a >> uint32(b) }, vm.popInt32TopOfCompound())
	case opcode.OpINC:
		vm.execINC()
	case opcode.OpDEC:
		vm.execDEC()

	// --- float arithmetic/compare ---
	case opcode.OpF_INV:
		vm.execFloatUnary(func(a float32) float32 { return -a })
	case opcode.OpF_ADD:
		vm.execFloatBinary(func(a, b float32) float32 { return a + b })
	case opcode.OpF_SUB:
		vm.execFloatBinary(func(a, b float32) float32 { return a - b })
	case opcode.OpF_MUL:
		vm.execFloatBinary(func(a, b float32) float32 { return a * b })
	case opcode.OpF_DIV:
		vm.execFloatBinary(divFloat)
	case opcode.OpF_LT:
		vm.execFloatCompare(func(a, b float32) bool { return a < b })
	case opcode.OpF_GT:
		vm.execFloatCompare(func(a, b float32) bool { return a > b })
	case opcode.OpF_LTE:
		vm.execFloatCompare(func(a, b float32) bool { return a <= b })
	case opcode.OpF_GTE:
		vm.execFloatCompare(func(a, b float32) bool { return a >= b })
	case opcode.OpF_NOTE:
		vm.execFloatCompare(func(a, b float32) bool { return a != b })
	case opcode.OpF_EQUALE:
		vm.execFloatCompare(func(a, b float32) bool { return a == b })
	case opcode.OpF_ASSIGN:
		vm.execF_ASSIGN()
	case opcode.OpF_PLUSA:
		vm.floatCompound(func(a, b float32) float32 { return a + b }, vm.popFloat32TopOfCompound())
	case opcode.OpF_MINUSA:
		vm.floatCompound(func(a, b float32) float32 { return a - b }, vm.popFloat32TopOfCompound())
	case opcode.OpF_MULA:
		vm.floatCompound(func(a, b float32) float32 { return a * b }, vm.popFloat32TopOfCompound())
	case opcode.OpF_DIVA:
		vm.floatCompound(divFloat, vm.popFloat32TopOfCompound())
	case opcode.OpFTOI:
		vm.execFTOI()
	case opcode.OpITOF:
		vm.execITOF()

	// --- long-int arithmetic / compound-assign ---
	case opcode.OpITOLI:
		vm.execITOLI()
	case opcode.OpLI_ADD:
		vm.execLongBinary(func(a, b int64) int64 { return a + b })
	case opcode.OpLI_SUB:
		vm.execLongBinary(func(a, b int64) int64 { return a - b })
	case opcode.OpLI_MUL:
		vm.execLongBinary(func(a, b int64) int64 { return a * b })
	case opcode.OpLI_DIV:
		vm.execLongBinary(func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a / b
		})
	case opcode.OpLI_MOD:
		vm.execLongBinary(func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a % b
		})
	case opcode.OpLI_ASSIGN:
		vm.execASSIGN()
	case opcode.OpLI_PLUSA:
		vm.longCompound(func(a, b int64) int64 { return a + b }, vm.popTopOfCompound())
	case opcode.OpLI_MINUSA:
		vm.longCompound(func(a, b int64) int64 { return a - b }, vm.popTopOfCompound())
	case opcode.OpLI_MULA:
		vm.longCompound(func(a, b int64) int64 { return a * b }, vm.popTopOfCompound())
	case opcode.OpLI_DIVA:
		vm.longCompound(func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a / b
		}, vm.popTopOfCompound())
	case opcode.OpLI_MODA:
		vm.longCompound(func(a, b int64) int64 {
			if b == 0 {
				return 0
			}
			return a % b
		}, vm.popTopOfCompound())
	case opcode.OpLI_ANDA:
		vm.longCompound(func(a, b int64) int64 { return a & b }, vm.popTopOfCompound())
	case opcode.OpLI_ORA:
		vm.longCompound(func(a, b int64) int64 { return a | b }, vm.popTopOfCompound())
	case opcode.OpLI_XORA:
		vm.longCompound(func(a, b int64) int64 { return a ^ b }, vm.popTopOfCompound())
	case opcode.OpLI_LSHIFTA:
		vm.longCompound(func(a, b int64) int64 { return a << uint64(b) }, vm.popTopOfCompound())
	case opcode.OpLI_RSHIFTA:
		vm.longCompound(func(a, b int64) int64 { return a >> uint64(b) }, vm.popTopOfCompound())
	case opcode.OpLI_INC:
		vm.execLI_INC()
	case opcode.OpLI_DEC:
		vm.execLI_DEC()

	// --- strings ---
	case opcode.OpS_PUSH:
		vm.execS_PUSH(vm.argAt(0))
	case opcode.OpS_POP:
		vm.execS_POP()
	case opcode.OpS_ADD:
		vm.execS_ADD()
	case opcode.OpS_ASSIGN:
		vm.execS_ASSIGN()
	case opcode.OpS_PLUSA:
		vm.execS_PLUSA()
	case opcode.OpS_REF:
		vm.execS_REF()
	case opcode.OpS_REF2:
		vm.execS_REF()
	case opcode.OpS_LT:
		vm.stringCompare(func(c int) bool { return c < 0 })
	case opcode.OpS_GT:
		vm.stringCompare(func(c int) bool { return c > 0 })
	case opcode.OpS_LTE:
		vm.stringCompare(func(c int) bool { return c <= 0 })
	case opcode.OpS_GTE:
		vm.stringCompare(func(c int) bool { return c >= 0 })
	case opcode.OpS_NOTE:
		vm.stringCompare(func(c int) bool { return c != 0 })
	case opcode.OpS_EQUALE:
		vm.stringCompare(func(c int) bool { return c == 0 })
	case opcode.OpS_LENGTH:
		vm.execS_LENGTH()
	case opcode.OpS_LENGTHBYTE:
		vm.execS_LENGTHBYTE()
	case opcode.OpS_LENGTH2:
		vm.execS_LENGTH2()
	case opcode.OpS_LENGTHBYTE2:
		vm.execS_LENGTHBYTE2()
	case opcode.OpS_EMPTY:
		vm.execS_EMPTY()
	case opcode.OpS_FIND:
		vm.execS_FIND()
	case opcode.OpS_GETPART:
		vm.execS_GETPART()
	case opcode.OpS_PUSHBACK:
		vm.execS_PUSHBACK()
	case opcode.OpS_PLUSA2:
		vm.execS_PLUSA2()
	case opcode.OpS_POPBACK:
		vm.execS_POPBACK()
	case opcode.OpS_PUSHBACK2:
		vm.execS_PUSHBACK2()
	case opcode.OpS_POPBACK2:
		vm.execS_POPBACK2()
	case opcode.OpS_ERASE:
		vm.execS_ERASE()
	case opcode.OpS_ERASE2:
		vm.execS_ERASE2()
	case opcode.OpS_MOD:
		vm.execS_MOD()
	case opcode.OpI_STRING:
		vm.execI_STRING()
	case opcode.OpFTOS:
		vm.execFTOS()
	case opcode.OpITOB:
		vm.execITOB()
	case opcode.OpSTOI:
		vm.execSTOI()
	case opcode.OpC_REF:
		vm.execC_REF()
	case opcode.OpC_ASSIGN:
		vm.execC_ASSIGN()

	// --- structs/arrays ---
	case opcode.OpNEW:
		vm.execNEW()
	case opcode.OpDELETE:
		vm.execDELETE()
	case opcode.OpSR_REF:
		vm.execSR_REF(vm.argAt(0))
	case opcode.OpSR_ASSIGN:
		vm.execASSIGN()
	case opcode.OpSR_POP:
		vm.execSR_POP()
	case opcode.OpA_ALLOC:
		vm.execA_ALLOC()
	case opcode.OpA_REALLOC:
		vm.execA_REALLOC()
	case opcode.OpA_FREE:
		vm.execA_FREE()
	case opcode.OpA_REF:
		vm.execA_REF()
	case opcode.OpA_NUMOF:
		vm.execA_NUMOF()
	case opcode.OpA_COPY:
		vm.execA_COPY()
	case opcode.OpA_FILL:
		vm.execA_FILL()
	case opcode.OpA_PUSHBACK:
		vm.execA_PUSHBACK()
	case opcode.OpA_POPBACK:
		vm.execA_POPBACK()
	case opcode.OpA_EMPTY:
		vm.execA_EMPTY()
	case opcode.OpA_ERASE:
		vm.execA_ERASE()
	case opcode.OpA_INSERT:
		vm.execA_INSERT()
	case opcode.OpA_SORT:
		vm.execA_SORT()
	case opcode.OpA_FIND:
		vm.execA_FIND()
	case opcode.OpA_REVERSE:
		vm.execA_REVERSE()

	// --- branches / framing ---
	case opcode.OpJUMP:
		vm.pc = vm.argAt(0)
	case opcode.OpIFZ:
		if vm.popInt32() == 0 {
			vm.pc = vm.argAt(0)
		} else {
			vm.pc += int32(op.Width())
		}
	case opcode.OpIFNZ:
		if vm.popInt32() != 0 {
			vm.pc = vm.argAt(0)
		} else {
			vm.pc += int32(op.Width())
		}
	case opcode.OpSWITCH:
		vm.execSwitch(vm.argAt(0), false)
	case opcode.OpSTRSWITCH:
		vm.execSwitch(vm.argAt(0), true)
	case opcode.OpFUNC:
		// marks a function's entry point in the code stream; carries no
		// runtime effect once a frame has already been built by a call.
	case opcode.Op_EOF:
		// end-of-file-block marker; no runtime effect.
	case opcode.OpENDFUNC:
		// marks a function's textual end; no runtime effect.
	case opcode.OpSP_INC:
		// stack-depth bookkeeping hint for the original compiler/debugger;
		// no runtime effect on this operand stack.

	// --- calls ---
	case opcode.OpCALLFUNC:
		vm.execCALLFUNC(vm.argAt(0), vm.pc+int32(op.Width()))
	case opcode.OpCALLMETHOD:
		vm.execCALLMETHOD(vm.argAt(0), vm.pc+int32(op.Width()))
	case opcode.OpCALLFUNC2:
		vm.execCALLFUNC2(vm.pc + int32(op.Width()))
	case opcode.OpMSG:
		vm.execMSG(vm.argAt(0), vm.pc+int32(op.Width()))
	case opcode.OpRETURN:
		vm.execRETURN()
	case opcode.OpCALLONJUMP:
		vm.execCALLONJUMP()
	case opcode.OpSJUMP:
		vm.execSJUMP()
	case opcode.OpCALLHLL:
		vm.execCALLHLL(vm.argAt(0), vm.argAt(1))
	case opcode.OpCALLSYS:
		vm.execCALLSYS(vm.argAt(0))
	case opcode.OpASSERT:
		vm.execASSERT()

	// --- shortcut variable forms (SH_*, the 8 named in the spec) ---
	case opcode.OpSH_GLOBALREF:
		vm.push(vm.derefCell(vm.globalSlot, vm.argAt(0)))
	case opcode.OpSH_LOCALREF:
		vm.push(vm.derefCell(vm.currentFrame().LocalPageSlot, vm.argAt(0)))
	case opcode.OpSH_STRUCTREF:
		vm.push(vm.derefCell(vm.currentFrame().StructPageSlot, vm.argAt(0)))
	case opcode.OpSH_LOCALASSIGN:
		local := vm.currentFrame().LocalPageSlot
		vm.storeThroughRef(local, vm.argAt(0), int64(vm.argAt(1)))
	case opcode.OpSH_LOCALINC:
		local := vm.currentFrame().LocalPageSlot
		idx := vm.argAt(0)
		cur := int32(vm.derefCell(local, idx))
		vm.storeThroughRef(local, idx, int64(cur+1))
	case opcode.OpSH_LOCALDEC:
		local := vm.currentFrame().LocalPageSlot
		idx := vm.argAt(0)
		cur := int32(vm.derefCell(local, idx))
		vm.storeThroughRef(local, idx, int64(cur-1))
	case opcode.OpSH_LOCALCREATE:
		local := vm.currentFrame().LocalPageSlot
		vm.storeThroughRef(local, vm.argAt(0), int64(vm.argAt(1)))
	case opcode.OpSH_LOCALDELETE:
		local := vm.currentFrame().LocalPageSlot
		idx := vm.argAt(0)
		old := int32(vm.derefCell(local, idx))
		if old != NullSlot {
			vm.heap.Release(old)
		}
		vm.storeThroughRef(local, idx, int64(NullSlot))

	default:
		vm.trap("unimplemented opcode", op)
	}
}

// popInt32TopOfCompound/popFloat32TopOfCompound/popTopOfCompound read the
// compound-assign family's right-hand operand, which the caller pushes
// after the reference -- popped here, ahead of the ref,
// because intCompound/floatCompound/longCompound pop the reference
// themselves.
func (vm *VM) popInt32TopOfCompound() int32 {
	return vm.popInt32()
}

func (vm *VM) popFloat32TopOfCompound() float32 {
	return vm.popFloat32()
}

func (vm *VM) popTopOfCompound() int64 {
	return vm.pop()
}

// execSwitch implements SWITCH/STRSWITCH: pop the scrutinee, linearly scan
// the switch table's cases for a match, and jump to the matching address
// or the table's default.
func (vm *VM) execSwitch(switchIndex int32, isString bool) {
	sw := vm.prog.Switches[switchIndex]
	next := vm.pc + int32(opcode.OpSWITCH.Width())
	if isString {
		slot := vm.popInt32()
		s := vm.heap.String(slot)
		for _, c := range sw.Cases {
			lit := vm.prog.Strings[c.Value]
			if s.String() == lit {
				vm.heap.Release(slot)
				vm.pc = c.Address
				return
			}
		}
		vm.heap.Release(slot)
	} else {
		v := vm.popInt32()
		for _, c := range sw.Cases {
			if c.Value == v {
				vm.pc = c.Address
				return
			}
		}
	}
	if sw.DefaultAddress != 0 {
		vm.pc = sw.DefaultAddress
		return
	}
	vm.pc = next
}
