// Package vm implements the stack-based bytecode interpreter (§4.7): the
// fetch-decode-execute loop, the calling convention, HLL dispatch,
// syscalls, and switch dispatch, operating over a Program produced by
// internal/ain and a heap from internal/heap.
package vm

import (
	"encoding/binary"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/heap"
	"github.com/nunuhara/ainterp/internal/opcode"
	"github.com/nunuhara/ainterp/internal/page"
	"github.com/nunuhara/ainterp/internal/vmstring"
)

// sentinelReturn is the all-ones PC value that marks "no code to execute",
// the halt condition named in §4.7.
const sentinelReturn = int32(-1)

// NullSlot mirrors heap.NullSlot for readability inside this package.
const NullSlot = heap.NullSlot

// Frame is one call-stack entry (§3.3 GLOSSARY "Frame").
type Frame struct {
	FunctionIndex  int32
	ReturnAddress  int32
	LocalPageSlot  int32
	StructPageSlot int32 // NullSlot if this is not a method call
}

// Config carries the small set of host-configurable values the syscall
// table consults (§4.9, ambient "Configuration" section). CodePage governs
// every string opcode's character-boundary semantics (§4.6); the zero value
// is vmstring.SJIS, matching every original .ain image.
type Config struct {
	SaveFolder string
	CodePage   vmstring.CodePage
}

// VM holds all mutable interpreter state (§4.7 "Execution state"): the
// program counter, operand stack, call stack, and a pointer to the shared
// heap. A VM is parameterized by an immutable Program and is not safe for
// concurrent use, matching the single-threaded model in §5.
type VM struct {
	prog   *ain.Program
	heap   *heap.Heap
	log    *zap.SugaredLogger
	config Config

	stack  []int64
	frames []Frame
	pc     int32

	globalSlot int32
	startedAt  time.Time

	libraries map[string]Library
	linked    [][]HostFunc // parallel to prog.Libraries, per-function resolved callback or nil

	exitCode  int
	exited    bool
	lastTrace []string
}

// New builds a VM over prog, backed by a fresh heap, with libraries as the
// set of host libraries available for HLL linking (§4.8). log may be
// zap.NewNop().Sugar() when no logging is desired, e.g. in tests.
func New(prog *ain.Program, libraries map[string]Library, config Config, log *zap.SugaredLogger) *VM {
	h := heap.New(prog.Structures)
	vm := &VM{
		prog:      prog,
		heap:      h,
		log:       log,
		config:    config,
		libraries: libraries,
	}
	vm.linkLibraries()
	return vm
}

// Heap exposes the underlying heap, mainly for shutdown accounting (§8
// "Heap conservation") and tests.
func (vm *VM) Heap() *heap.Heap {
	return vm.heap
}

// push/pop operate on raw 64-bit stack cells. Scalars (int, bool, function
// index, array/struct/string slot index) occupy the low 32 bits
// sign-extended; long-int values use the full 64 bits; a ref T occupies two
// consecutive cells (page slot, var index), pushed/popped as a pair by
// pushRef/popRef below.
func (vm *VM) push(v int64) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pushInt32(v int32) {
	vm.push(int64(v))
}

func (vm *VM) pushFloat32(f float32) {
	vm.push(int64(int32(math.Float32bits(f))))
}

func (vm *VM) pop() int64 {
	n := len(vm.stack)
	v := vm.stack[n-1]
	vm.stack = vm.stack[:n-1]
	return v
}

func (vm *VM) popInt32() int32 {
	return int32(vm.pop())
}

func (vm *VM) popFloat32() float32 {
	return math.Float32frombits(uint32(int32(vm.pop())))
}

func (vm *VM) peek() int64 {
	return vm.stack[len(vm.stack)-1]
}

func (vm *VM) peekAt(fromTop int) int64 {
	return vm.stack[len(vm.stack)-1-fromTop]
}

// pushRef pushes a two-cell reference (page slot, var index), per §3.3
// "Two-cell references".
func (vm *VM) pushRef(pageSlot, varIndex int32) {
	vm.pushInt32(pageSlot)
	vm.pushInt32(varIndex)
}

// popRef pops a two-cell reference, returning (page slot, var index).
func (vm *VM) popRef() (int32, int32) {
	varIndex := vm.popInt32()
	pageSlot := vm.popInt32()
	return pageSlot, varIndex
}

// argAt reads the n'th fixed-width argument word (0-indexed) following the
// opcode at vm.pc.
func (vm *VM) argAt(n int) int32 {
	off := int(vm.pc) + 2 + 4*n
	return int32(binary.LittleEndian.Uint32(vm.prog.Code[off:]))
}

func (vm *VM) fetchOpcode() opcode.Opcode {
	return opcode.Opcode(binary.LittleEndian.Uint16(vm.prog.Code[vm.pc:]))
}

func (vm *VM) currentFrame() *Frame {
	return &vm.frames[len(vm.frames)-1]
}

// Run executes the program starting at its main function until SYS_EXIT or
// a fatal trap. It returns the process exit code and, for a fatal trap or
// assertion failure, a non-nil error wrapping the *TrapError or
// *AssertionError.
func (vm *VM) Run() (exitCode int, err error) {
	vm.startedAt = time.Now()
	globalPage := page.NewGlobalPage(vm.prog.Globals, vm.prog.Structures, vm.heap)
	vm.globalSlot = vm.heap.AllocPage(globalPage)
	vm.applyGlobalInitVals(globalPage)

	defer func() {
		if r := recover(); r != nil {
			err = vm.wrapPanic(r)
			exitCode = 1
		}
	}()

	if allocFn, ok := vm.prog.AllocFunctionIndex(); ok {
		vm.callFunction(allocFn, NullSlot, sentinelReturn)
		vm.runLoop()
	}

	vm.frames = nil
	vm.callFunction(vm.prog.MainFunction, NullSlot, sentinelReturn)
	vm.runLoop()

	vm.shutdown()
	return vm.exitCode, nil
}

// runLoop is the fetch-decode-execute core (§4.7 "Fetch/decode/execute").
// It returns when the call stack empties via RETURN from the entry frame
// or when SYS_EXIT sets vm.exited.
func (vm *VM) runLoop() {
	for !vm.exited && len(vm.frames) > 0 {
		if vm.pc == sentinelReturn {
			return
		}
		op := vm.fetchOpcode()
		meta, ok := opcode.Lookup(op)
		if !ok || meta.Name == "" {
			vm.trap("unimplemented opcode", op)
		}
		nextPC := vm.pc + int32(op.Width())
		vm.dispatch(op)
		if !op.ModifiesIP() {
			vm.pc = nextPC
		}
	}
}

// applyGlobalInitVals overwrites the zero/default values the global page
// was constructed with using the literal initial values declared in GSET
// (§3.1 "global_initvals"). String initial values replace the
// default-allocated empty string slot.
func (vm *VM) applyGlobalInitVals(p *page.Page) {
	for _, iv := range vm.prog.GlobalInitVals {
		if int(iv.GlobalIndex) >= len(p.Cells) {
			continue
		}
		if iv.Type.IsString() {
			old := int32(p.Cells[iv.GlobalIndex])
			if old != NullSlot {
				vm.heap.Release(old)
			}
			p.Cells[iv.GlobalIndex] = int64(vm.heap.NewString([]byte(iv.StringValue)))
			continue
		}
		p.Cells[iv.GlobalIndex] = int64(iv.IntValue)
	}
}

// shutdown releases every live frame top-down and then the global page,
// per §5 "Cancellation". Run calls it only after a clean exit; after a
// fatal trap Run returns without releasing the frames or the global page.
func (vm *VM) shutdown() {
	for i := len(vm.frames) - 1; i >= 0; i-- {
		f := vm.frames[i]
		vm.heap.Release(f.LocalPageSlot)
		if f.StructPageSlot != NullSlot {
			vm.heap.Release(f.StructPageSlot)
		}
	}
	vm.frames = nil
	vm.heap.Release(vm.globalSlot)
}
