package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/opcode"
)

func op2(op opcode.Opcode) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(op))
	return b[:]
}

func TestAuditProgramFlagsUnencodedOpcode(t *testing.T) {
	code := append([]byte{}, op2(opcode.OpPUSH)...)
	code = append(code, 0, 0, 0, 0) // PUSH's one int arg
	code = append(code, op2(opcode.Op0x103)...)
	code = append(code, op2(opcode.Op0x103)...)

	prog := &ain.Program{Code: code}
	report := auditProgram(prog)

	require.Len(t, report.unimplementedOps, 1)
	assert.Equal(t, opcode.Op0x103, report.unimplementedOps[0].op)
	assert.Equal(t, 2, report.unimplementedOps[0].count)
}

func TestAuditProgramListsUnlinkedLibraryFunctions(t *testing.T) {
	prog := &ain.Program{
		Libraries: []ain.Library{{
			Name: "Math",
			Functions: []ain.HLLFunction{
				{Name: "Abs"},
				{Name: "Sqrt"},
			},
		}},
	}
	report := auditProgram(prog)
	assert.Equal(t, []string{"Math.Abs", "Math.Sqrt"}, report.unlinkedLibFuncs)
}

func TestAuditProgramPrintOutputsCounts(t *testing.T) {
	prog := &ain.Program{Code: op2(opcode.Op0x103)}
	report := auditProgram(prog)

	var buf bytes.Buffer
	report.Print(&buf)
	assert.Contains(t, buf.String(), "unimplemented opcodes: 1 distinct, 1 occurrences")
}
