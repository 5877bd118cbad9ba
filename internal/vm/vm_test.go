package vm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/opcode"
)

// asm is a minimal code-stream builder for constructing Program.Code by
// hand in tests, in lieu of a textual assembler front-end: emit opcodes in
// order, mark label() positions, and reference them with a pending jump
// that resolve() backpatches. Every emit call must pass exactly as many
// argument words as the opcode's table entry declares.
type asm struct {
	code    []byte
	labels  map[string]int32
	patches []patch
}

type patch struct {
	pos   int32
	label string
}

func newAsm() *asm {
	return &asm{labels: make(map[string]int32)}
}

func (a *asm) pc() int32 { return int32(len(a.code)) }

func (a *asm) emit(op opcode.Opcode, args ...int32) int32 {
	pos := a.pc()
	var h [2]byte
	binary.LittleEndian.PutUint16(h[:], uint16(op))
	a.code = append(a.code, h[:]...)
	for _, arg := range args {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(arg))
		a.code = append(a.code, b[:]...)
	}
	return pos
}

// emitJump emits op with a single placeholder address argument, to be
// backpatched to label's position once resolve() runs.
func (a *asm) emitJump(op opcode.Opcode, label string) {
	pos := a.emit(op, 0)
	a.patches = append(a.patches, patch{pos: pos + 2, label: label})
}

func (a *asm) label(name string) {
	a.labels[name] = a.pc()
}

func (a *asm) resolve() []byte {
	for _, p := range a.patches {
		target, ok := a.labels[p.label]
		if !ok {
			panic("asm: undefined label " + p.label)
		}
		binary.LittleEndian.PutUint32(a.code[p.pos:], uint32(target))
	}
	return a.code
}

func newTestProgram() *ain.Program {
	return &ain.Program{
		MainFunction:    0,
		MessageFunction: NullSlot,
		OnJumpFunction:  NullSlot,
	}
}

func runProgram(t *testing.T, prog *ain.Program) (*VM, int, error) {
	t.Helper()
	vmInst := New(prog, nil, Config{SaveFolder: "save"}, zap.NewNop().Sugar())
	code, err := vmInst.Run()
	return vmInst, code, err
}

// TestArithmeticAndBranch builds int arithmetic and an IFZ/JUMP branch by
// hand, exiting with the computed value via SYS_EXIT.
func TestArithmeticAndBranch(t *testing.T) {
	a := newAsm()
	a.emit(opcode.OpPUSH, 2)
	a.emit(opcode.OpPUSH, 3)
	a.emit(opcode.OpADD) // 5
	a.emit(opcode.OpPUSH, 1)
	a.emitJump(opcode.OpIFZ, "else")
	a.emit(opcode.OpPUSH, 37)
	a.emit(opcode.OpADD) // 5 + 37 = 42 (cond nonzero: taken)
	a.emitJump(opcode.OpJUMP, "end")
	a.label("else")
	a.emit(opcode.OpPUSH, 999)
	a.label("end")
	a.emit(opcode.OpCALLSYS, sysExit)

	prog := newTestProgram()
	prog.Code = a.resolve()
	prog.Functions = []ain.Function{{Address: 0, Name: "main"}}

	vmInst, code, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 42, code)
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}

// TestStringConcatenation exercises S_PUSH/S_ADD/S_LENGTH end to end and
// confirms the heap reaches zero live slots after SYS_EXIT (heap
// conservation).
func TestStringConcatenation(t *testing.T) {
	a := newAsm()
	a.emit(opcode.OpS_PUSH, 0)
	a.emit(opcode.OpS_PUSH, 1)
	a.emit(opcode.OpS_ADD)
	a.emit(opcode.OpS_LENGTH)
	a.emit(opcode.OpCALLSYS, sysExit)

	prog := newTestProgram()
	prog.Code = a.resolve()
	prog.Strings = []string{"foo", "bar"}
	prog.Functions = []ain.Function{{Address: 0, Name: "main"}}

	vmInst, code, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, len("foobar"), code)
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}

// TestRecursiveFactorial builds a self-recursive function via CALLFUNC and
// confirms both the computed result and that the call stack/heap unwind
// cleanly.
func TestRecursiveFactorial(t *testing.T) {
	const factIndex = int32(0)

	fact := newAsm()
	fact.emit(opcode.OpSH_LOCALREF, 0)
	fact.emit(opcode.OpPUSH, 2)
	fact.emit(opcode.OpLT)
	fact.emitJump(opcode.OpIFZ, "recurse")
	fact.emit(opcode.OpPUSH, 1)
	fact.emit(opcode.OpRETURN)
	fact.label("recurse")
	fact.emit(opcode.OpSH_LOCALREF, 0)
	fact.emit(opcode.OpSH_LOCALREF, 0)
	fact.emit(opcode.OpPUSH, 1)
	fact.emit(opcode.OpSUB)
	fact.emit(opcode.OpCALLFUNC, factIndex)
	fact.emit(opcode.OpMUL)
	fact.emit(opcode.OpRETURN)
	factCode := fact.resolve()

	main := newAsm()
	main.emit(opcode.OpPUSH, 5)
	main.emit(opcode.OpCALLFUNC, factIndex)
	main.emit(opcode.OpCALLSYS, sysExit)
	mainCode := main.resolve()

	prog := newTestProgram()
	prog.Code = append(append([]byte{}, factCode...), mainCode...)
	mainAddr := int32(len(factCode))
	prog.Functions = []ain.Function{
		{Address: 0, Name: "fact", NrArgs: 1, NrVars: 1, Vars: []ain.Variable{{Name: "n", Type: ain.Int}}},
		{Address: mainAddr, Name: "main"},
	}
	prog.MainFunction = 1

	vmInst, code, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 120, code) // 5! = 120
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}

// TestArrayCopyIndependence builds int[4] a = {1,2,3,4}; b = a (via the
// generic ASSIGN opcode, which deep-copies array-typed destinations);
// mutates b[0] and asserts a[0] is unaffected (§8 "Array copy
// independence").
func TestArrayCopyIndependence(t *testing.T) {
	a := newAsm()
	// locals: 0 = a (ArrayInt), 1 = b (ArrayInt)

	// a = new int[4]
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0) // var index of a
	a.emit(opcode.OpPUSH, 4) // dims[0]
	a.emit(opcode.OpPUSH, 1) // rank (popped first by A_ALLOC)
	a.emit(opcode.OpA_ALLOC)

	// a[0..3] = 1,2,3,4
	for i, v := range []int32{1, 2, 3, 4} {
		a.emit(opcode.OpPUSHLOCALPAGE)
		a.emit(opcode.OpPUSH, 0)
		a.emit(opcode.OpREF)            // deref -> a's array instance slot
		a.emit(opcode.OpPUSH, int32(i)) // start
		a.emit(opcode.OpPUSH, v)        // value
		a.emit(opcode.OpPUSH, 1)        // count
		a.emit(opcode.OpA_FILL)
	}

	// b = a (deep copy via ASSIGN)
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 1) // destination ref: b
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0)
	a.emit(opcode.OpREF) // value: a's array instance slot
	a.emit(opcode.OpASSIGN)
	a.emit(opcode.OpPOP) // discard ASSIGN's pushed value

	// b[0] = 99
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 1)
	a.emit(opcode.OpREF)      // deref -> b's array instance slot
	a.emit(opcode.OpPUSH, 0)  // start
	a.emit(opcode.OpPUSH, 99) // value
	a.emit(opcode.OpPUSH, 1)  // count
	a.emit(opcode.OpA_FILL)

	// exit code = a[0], expected unaffected by b's mutation
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0)
	a.emit(opcode.OpREF)    // a's array instance slot
	a.emit(opcode.OpPUSH, 0) // index
	a.emit(opcode.OpA_REF)  // two-cell ref to a[0]
	a.emit(opcode.OpREF)    // deref -> value
	a.emit(opcode.OpCALLSYS, sysExit)

	prog := newTestProgram()
	prog.Code = a.resolve()
	prog.Functions = []ain.Function{{
		Address: 0,
		Name:    "main",
		NrVars:  2,
		Vars: []ain.Variable{
			{Name: "a", Type: ain.ArrayInt},
			{Name: "b", Type: ain.ArrayInt},
		},
	}}

	vmInst, code, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}

// TestStructDeepCopy builds struct P { int x }; p1.x = 5; p2 = p1 (deep
// copy via ASSIGN); mutates p2.x and asserts p1.x is unchanged (§8 "Struct
// deep copy").
func TestStructDeepCopy(t *testing.T) {
	a := newAsm()
	// locals: 0 = p1 (Struct), 1 = p2 (Struct); both already hold a
	// default-constructed instance from frame setup.

	// p1 = new P (exercise NEW explicitly; replaces the default instance)
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0)
	a.emit(opcode.OpNEW)
	a.emit(opcode.OpPOP) // discard NEW's pushed new-instance slot

	// p1.x = 5
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0)
	a.emit(opcode.OpREF)       // p1's struct instance slot
	a.emit(opcode.OpSR_REF, 0) // ref to member 0 (x)
	a.emit(opcode.OpPUSH, 5)
	a.emit(opcode.OpASSIGN)
	a.emit(opcode.OpPOP)

	// p2 = p1 (deep copy via ASSIGN)
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 1) // destination ref: p2
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0)
	a.emit(opcode.OpREF) // value: p1's struct instance slot
	a.emit(opcode.OpASSIGN)
	a.emit(opcode.OpPOP)

	// p2.x = 99
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 1)
	a.emit(opcode.OpREF)
	a.emit(opcode.OpSR_REF, 0)
	a.emit(opcode.OpPUSH, 99)
	a.emit(opcode.OpASSIGN)
	a.emit(opcode.OpPOP)

	// exit code = p1.x, expected unaffected by p2.x's mutation
	a.emit(opcode.OpPUSHLOCALPAGE)
	a.emit(opcode.OpPUSH, 0)
	a.emit(opcode.OpREF)
	a.emit(opcode.OpSR_REF, 0)
	a.emit(opcode.OpREF)
	a.emit(opcode.OpCALLSYS, sysExit)

	prog := newTestProgram()
	prog.Code = a.resolve()
	prog.Structures = []ain.Struct{{
		Name:        "P",
		Constructor: NullSlot,
		Destructor:  NullSlot,
		Members:     []ain.Variable{{Name: "x", Type: ain.Int}},
	}}
	prog.Functions = []ain.Function{{
		Address: 0,
		Name:    "main",
		NrVars:  2,
		Vars: []ain.Variable{
			{Name: "p1", Type: ain.Struct, StructType: 0},
			{Name: "p2", Type: ain.Struct, StructType: 0},
		},
	}}

	vmInst, code, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 5, code)
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}

// TestSwitchDispatch builds an int SWITCH over three cases plus a default
// and confirms the matching case's address is taken.
func TestSwitchDispatch(t *testing.T) {
	a := newAsm()
	a.emit(opcode.OpPUSH, 2)
	a.emit(opcode.OpSWITCH, 0)
	a.label("case0")
	a.emit(opcode.OpPUSH, 10)
	a.emitJump(opcode.OpJUMP, "end")
	a.label("case1")
	a.emit(opcode.OpPUSH, 11)
	a.emitJump(opcode.OpJUMP, "end")
	a.label("case2")
	a.emit(opcode.OpPUSH, 12)
	a.emitJump(opcode.OpJUMP, "end")
	a.label("dflt")
	a.emit(opcode.OpPUSH, -1)
	a.label("end")
	a.emit(opcode.OpCALLSYS, sysExit)
	code := a.resolve()

	prog := newTestProgram()
	prog.Code = code
	prog.Functions = []ain.Function{{Address: 0, Name: "main"}}
	prog.Switches = []ain.Switch{{
		CaseKind:       ain.SwitchInt,
		DefaultAddress: a.labels["dflt"],
		Cases: []ain.SwitchCase{
			{Value: 0, Address: a.labels["case0"]},
			{Value: 1, Address: a.labels["case1"]},
			{Value: 2, Address: a.labels["case2"]},
		},
	}}

	vmInst, exitCode, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 12, exitCode)
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}

// TestRefcountNonNegativityTraps confirms a double release of the same
// heap slot surfaces as a fatal trap rather than corrupting the free-list.
// DUP copies the stack cell without touching the heap, so releasing both
// copies of the same string slot double-frees it.
func TestRefcountNonNegativityTraps(t *testing.T) {
	a := newAsm()
	a.emit(opcode.OpS_PUSH, 0)
	a.emit(opcode.OpDUP)
	a.emit(opcode.OpS_POP)
	a.emit(opcode.OpS_POP) // same underlying slot released twice
	a.emit(opcode.OpCALLSYS, sysExit)

	prog := newTestProgram()
	prog.Code = a.resolve()
	prog.Strings = []string{"x"}
	prog.Functions = []ain.Function{{Address: 0, Name: "main"}}

	_, _, err := runProgram(t, prog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trap")
}

// TestSJISLengthLaw confirms S_LENGTH counts a two-byte Shift-JIS
// character as one logical character while S_LENGTHBYTE counts both
// bytes, per §8's SJIS length law. Each length opcode consumes its own
// independently-allocated string slot (S_PUSH always allocates fresh), so
// neither interferes with the other's ownership.
func TestSJISLengthLaw(t *testing.T) {
	sjis := []byte{0x82, 0xA0, 'a'} // one SJIS lead/trail pair + one ASCII byte

	a := newAsm()
	a.emit(opcode.OpS_PUSH, 0)
	a.emit(opcode.OpS_LENGTHBYTE)
	a.emit(opcode.OpS_PUSH, 0)
	a.emit(opcode.OpS_LENGTH)
	a.emit(opcode.OpADD)
	a.emit(opcode.OpCALLSYS, sysExit)

	prog := newTestProgram()
	prog.Code = a.resolve()
	prog.Strings = []string{string(sjis)}
	prog.Functions = []ain.Function{{Address: 0, Name: "main"}}

	vmInst, code, err := runProgram(t, prog)
	require.NoError(t, err)
	assert.Equal(t, 3+2, code) // lengthBytes=3, lengthChars=2
	assert.Equal(t, 0, vmInst.Heap().LiveCount())
}
