package vm

import (
	"math"

	"github.com/nunuhara/ainterp/internal/vmstring"
)

// String opcodes (§4.7 "Strings") take heap-slot indices as operands.
// Mutating forms release the old contents of the target slot and write a
// new string; value-returning forms push a new slot with rc == 1.

// execS_PUSH implements S_PUSH <str>: push a fresh slot holding a copy of
// the program's literal string (never the literal itself, which must
// never be mutated in place).
func (vm *VM) execS_PUSH(strIndex int32) {
	lit := vm.prog.Strings[strIndex]
	vm.push(int64(vm.heap.NewString([]byte(lit))))
}

// execS_POP implements S_POP: discard the top string slot.
func (vm *VM) execS_POP() {
	vm.heap.Release(vm.popInt32())
}

// execS_ADD implements S_ADD: pop two string slots, push a new slot
// holding their concatenation (value semantics -- neither operand is
// mutated).
func (vm *VM) execS_ADD() {
	b := vm.popInt32()
	a := vm.popInt32()
	out := vmstring.Concat(vm.heap.String(a), vm.heap.String(b))
	vm.heap.Release(a)
	vm.heap.Release(b)
	vm.push(int64(vm.heap.NewString(out.Bytes())))
}

// execS_ASSIGN implements S_ASSIGN: pop a value string slot and a
// reference, release the reference's old contents, write a fresh copy of
// the value string through it, and leave the value slot on the stack.
func (vm *VM) execS_ASSIGN() {
	valueSlot := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	old := int32(vm.derefCell(pageSlot, varIndex))
	if old != NullSlot {
		vm.heap.Release(old)
	}
	newSlot := vm.heap.NewString(vm.heap.String(valueSlot).Bytes())
	vm.storeThroughRef(pageSlot, varIndex, int64(newSlot))
	vm.push(int64(valueSlot))
}

// execS_PLUSA implements S_PLUSA: in-place `+=` -- append the popped
// string onto the referenced string slot's contents.
func (vm *VM) execS_PLUSA() {
	addend := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	target := int32(vm.derefCell(pageSlot, varIndex))
	out := vmstring.Append(vm.heap.String(target), vm.heap.String(addend))
	vm.heap.Release(addend)
	newSlot := vm.heap.NewString(out.Bytes())
	vm.heap.Release(target)
	vm.storeThroughRef(pageSlot, varIndex, int64(newSlot))
	vm.push(int64(newSlot))
}

// execS_REF implements S_REF: pop a two-cell reference to a string
// variable, push the referenced string slot index.
func (vm *VM) execS_REF() {
	pageSlot, varIndex := vm.popRef()
	vm.push(vm.derefCell(pageSlot, varIndex))
}

// execS_PLUSA2 is S_PLUSA's slot-index form: appends directly onto a
// string slot rather than through a variable reference, mirroring the
// S_PUSHBACK/S_PUSHBACK2 "2" convention used elsewhere in this file.
func (vm *VM) execS_PLUSA2() {
	addend := vm.popInt32()
	target := vm.popInt32()
	out := vmstring.Append(vm.heap.String(target), vm.heap.String(addend))
	vm.heap.Release(addend)
	vm.heap.Release(target)
	newSlot := vm.heap.NewString(out.Bytes())
	vm.push(int64(newSlot))
}

func (vm *VM) stringCompare(f func(int) bool) {
	b := vm.popInt32()
	a := vm.popInt32()
	r := f(vmstring.Compare(vm.heap.String(a), vm.heap.String(b)))
	vm.heap.Release(a)
	vm.heap.Release(b)
	vm.pushInt32(boolToCell(r))
}

// execS_LENGTH/execS_LENGTHBYTE implement the char/byte length pair
// (§8 "SJIS length law"). Like every opcode that takes a string by value
// rather than by reference, the popped slot is finalized (released) once
// read, mirroring the HLL value-argument convention (§4.8).
func (vm *VM) execS_LENGTH() {
	slot := vm.popInt32()
	n := vm.heap.String(slot).LengthChars(vm.config.CodePage)
	vm.heap.Release(slot)
	vm.pushInt32(int32(n))
}

func (vm *VM) execS_LENGTHBYTE() {
	slot := vm.popInt32()
	n := vm.heap.String(slot).LengthBytes()
	vm.heap.Release(slot)
	vm.pushInt32(int32(n))
}

// execS_LENGTH2/execS_LENGTHBYTE2 are the reference-taking forms: they
// read the target through a ref instead of consuming a slot index.
func (vm *VM) execS_LENGTH2() {
	pageSlot, varIndex := vm.popRef()
	slot := int32(vm.derefCell(pageSlot, varIndex))
	vm.pushInt32(int32(vm.heap.String(slot).LengthChars(vm.config.CodePage)))
}

func (vm *VM) execS_LENGTHBYTE2() {
	pageSlot, varIndex := vm.popRef()
	slot := int32(vm.derefCell(pageSlot, varIndex))
	vm.pushInt32(int32(vm.heap.String(slot).LengthBytes()))
}

// execS_EMPTY implements S_EMPTY: push 1 if the string is empty.
func (vm *VM) execS_EMPTY() {
	slot := vm.popInt32()
	empty := vm.heap.String(slot).LengthBytes() == 0
	vm.heap.Release(slot)
	vm.pushInt32(boolToCell(empty))
}

// execS_FIND implements S_FIND (§8 "S_FIND contract"). Both operands are
// taken by value and finalized once read.
func (vm *VM) execS_FIND() {
	needle := vm.popInt32()
	hay := vm.popInt32()
	vm.pushInt32(int32(vm.heap.String(hay).Find(vm.heap.String(needle))))
	vm.heap.Release(needle)
	vm.heap.Release(hay)
}

// execS_GETPART implements S_GETPART(start, len): pop len, start, and the
// source slot, push a new slot holding the substring.
func (vm *VM) execS_GETPART() {
	length := vm.popInt32()
	start := vm.popInt32()
	src := vm.popInt32()
	out := vm.heap.String(src).Copy(int(start), int(length), vm.config.CodePage)
	vm.heap.Release(src)
	vm.push(int64(vm.heap.NewString(out.Bytes())))
}

// execS_PUSHBACK/execS_POPBACK modify the referenced string variable: the
// result is stored in a fresh slot and the old slot is released.
func (vm *VM) execS_PUSHBACK() {
	code := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	target := int32(vm.derefCell(pageSlot, varIndex))
	out := vm.heap.String(target).PushBack(code, vm.config.CodePage)
	vm.replaceString(pageSlot, varIndex, target, out)
}

func (vm *VM) execS_POPBACK() {
	pageSlot, varIndex := vm.popRef()
	target := int32(vm.derefCell(pageSlot, varIndex))
	out := vm.heap.String(target).PopBack(vm.config.CodePage)
	vm.replaceString(pageSlot, varIndex, target, out)
}

// execS_PUSHBACK2/execS_POPBACK2 operate directly on a slot index instead
// of a reference (here the "2" forms skip the indirection, the reverse of
// S_LENGTH2/S_LENGTHBYTE2 above, where the "2" form takes a reference).
func (vm *VM) execS_PUSHBACK2() {
	code := vm.popInt32()
	slot := vm.popInt32()
	out := vm.heap.String(slot).PushBack(code, vm.config.CodePage)
	newSlot := vm.heap.NewString(out.Bytes())
	vm.heap.Release(slot)
	vm.push(int64(newSlot))
}

func (vm *VM) execS_POPBACK2() {
	slot := vm.popInt32()
	out := vm.heap.String(slot).PopBack(vm.config.CodePage)
	newSlot := vm.heap.NewString(out.Bytes())
	vm.heap.Release(slot)
	vm.push(int64(newSlot))
}

// execS_ERASE/execS_ERASE2 remove the i'th character of the referenced
// (or slot-indexed) string.
func (vm *VM) execS_ERASE() {
	i := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	target := int32(vm.derefCell(pageSlot, varIndex))
	out := vm.heap.String(target).EraseAt(int(i), vm.config.CodePage)
	vm.replaceString(pageSlot, varIndex, target, out)
}

func (vm *VM) execS_ERASE2() {
	i := vm.popInt32()
	slot := vm.popInt32()
	out := vm.heap.String(slot).EraseAt(int(i), vm.config.CodePage)
	newSlot := vm.heap.NewString(out.Bytes())
	vm.heap.Release(slot)
	vm.push(int64(newSlot))
}

// replaceString commits a mutated string back to the heap: old's slot is
// released and a fresh one allocated for the result, then stored through
// the ref. Mutating helpers return a *vmstring.String rather than writing
// in place because a literal/shared source must first be cloned, and the
// clone needs its own heap slot.
func (vm *VM) replaceString(pageSlot, varIndex, old int32, result *vmstring.String) {
	newSlot := vm.heap.NewString(result.Bytes())
	vm.heap.Release(old)
	vm.storeThroughRef(pageSlot, varIndex, int64(newSlot))
}

// execS_MOD implements S_MOD (`%` operator): pop the value argument and
// the format string, push a newly-formatted string. The argument's bank
// (int/float/string) follows whichever single directive the format
// string carries, mirroring string_format's directive-driven dispatch
// (§4.6); the raw popped cell is reinterpreted accordingly.
func (vm *VM) execS_MOD() {
	arg := vm.pop()
	fmtSlot := vm.popInt32()
	fmtStr := vm.heap.String(fmtSlot)

	isString := directiveIsString(fmtStr.Bytes())
	var strArg *vmstring.String
	if isString {
		strArg = vm.heap.String(int32(arg))
	}
	out := vmstring.Format(fmtStr, int32(arg), math.Float32frombits(uint32(int32(arg))), strArg)
	vm.heap.Release(fmtSlot)
	if isString {
		vm.heap.Release(int32(arg))
	}
	vm.push(int64(vm.heap.NewString(out.Bytes())))
}

// directiveIsString reports whether fmt's first recognized directive is
// %s, so S_MOD knows whether the popped cell is a heap string slot.
func directiveIsString(fmt []byte) bool {
	for i := 0; i+1 < len(fmt); i++ {
		if fmt[i] == '%' {
			return fmt[i+1] == 's'
		}
	}
	return false
}

// execI_STRING implements I_STRING: pop an int, push a new string slot
// holding its decimal rendering.
func (vm *VM) execI_STRING() {
	vm.push(int64(vm.heap.NewString(vmstring.FromInt(vm.popInt32()).Bytes())))
}

// execFTOS implements FTOS: pop a float and a precision, push its decimal
// rendering.
func (vm *VM) execFTOS() {
	precision := vm.popInt32()
	f := vm.popFloat32()
	vm.push(int64(vm.heap.NewString(vmstring.FromFloat(f, precision).Bytes())))
}

// execITOB implements ITOB: pop an int, push 1 if nonzero else 0.
func (vm *VM) execITOB() {
	vm.pushInt32(boolToCell(vm.popInt32() != 0))
}

// execSTOI implements STOI: pop a string slot, push the integer value of
// its optional sign and leading decimal digits (0 if there are none).
func (vm *VM) execSTOI() {
	slot := vm.popInt32()
	n := parseLeadingInt(vm.heap.String(slot).String())
	vm.heap.Release(slot)
	vm.pushInt32(n)
}

func parseLeadingInt(s string) int32 {
	neg := false
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	var n int32
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int32(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// execC_REF implements C_REF: pop an index and a string slot, push the
// logical character at that index as an int.
func (vm *VM) execC_REF() {
	i := vm.popInt32()
	slot := vm.popInt32()
	code, ok := vm.heap.String(slot).CharAt(int(i), vm.config.CodePage)
	if !ok {
		code = 0
	}
	vm.heap.Release(slot)
	vm.pushInt32(code)
}

// execC_ASSIGN implements C_ASSIGN: pop a code, an index, and a reference
// to a string variable, overwrite the i'th character in place.
func (vm *VM) execC_ASSIGN() {
	code := vm.popInt32()
	i := vm.popInt32()
	pageSlot, varIndex := vm.popRef()
	target := int32(vm.derefCell(pageSlot, varIndex))
	out, _ := vm.heap.String(target).SetChar(int(i), code, vm.config.CodePage)
	vm.replaceString(pageSlot, varIndex, target, out)
}
