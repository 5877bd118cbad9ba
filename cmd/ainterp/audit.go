package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/opcode"
)

// auditReport is the result of walking a loaded image without executing
// it: every opcode whose catalogue entry has no encoding (an empty Name),
// and every HLL library function the image declares but this build links
// no host implementation for (§6.2, "SUPPLEMENTED FEATURES"). Opcodes that
// have a name but that the interpreter's dispatch traps on as
// unimplemented are not reported, and syscalls are not examined.
type opcodeCount struct {
	op    opcode.Opcode
	count int
}

type auditReport struct {
	unimplementedOps []opcodeCount // ordered by first occurrence
	unlinkedLibFuncs []string      // "Library.Function"
}

// auditProgram decodes every instruction in prog.Code linearly -- a flat
// scan, not a control-flow trace, since every opcode's width is known
// regardless of whether it branches -- and counts occurrences of opcodes
// whose table entry carries no name (internal/opcode's "numbered slot with
// no known encoding" case). It separately walks prog.Libraries, since no
// host library is ever linked by this command (HLL bindings are out of
// scope, per SPEC_FULL.md), so every declared function is reported.
func auditProgram(prog *ain.Program) *auditReport {
	report := &auditReport{}
	counts := make(map[opcode.Opcode]int)
	var order []opcode.Opcode

	code := prog.Code
	for pc := 0; pc < len(code); {
		if pc+2 > len(code) {
			break
		}
		op := opcode.Opcode(uint16(code[pc]) | uint16(code[pc+1])<<8)
		meta, known := opcode.Lookup(op)
		width := op.Width()
		if width < 2 {
			width = 2
		}
		if !known || meta.Name == "" {
			if counts[op] == 0 {
				order = append(order, op)
			}
			counts[op]++
		}
		pc += width
	}
	for _, op := range order {
		report.unimplementedOps = append(report.unimplementedOps, opcodeCount{op: op, count: counts[op]})
	}

	for _, lib := range prog.Libraries {
		for _, fn := range lib.Functions {
			report.unlinkedLibFuncs = append(report.unlinkedLibFuncs, lib.Name+"."+fn.Name)
		}
	}
	sort.Strings(report.unlinkedLibFuncs)

	return report
}

// Print writes a human-readable summary. Unimplemented opcodes are listed
// by raw numeric value, since an unencoded slot has no mnemonic to sort by.
func (r *auditReport) Print(w io.Writer) {
	total := 0
	for _, oc := range r.unimplementedOps {
		total += oc.count
	}
	fmt.Fprintf(w, "unimplemented opcodes: %d distinct, %d occurrences\n", len(r.unimplementedOps), total)
	for _, oc := range r.unimplementedOps {
		fmt.Fprintf(w, "  0x%04x (%s) x%d\n", uint16(oc.op), oc.op.String(), oc.count)
	}

	fmt.Fprintf(w, "unlinked library functions: %d\n", len(r.unlinkedLibFuncs))
	for _, name := range r.unlinkedLibFuncs {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
