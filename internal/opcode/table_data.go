// Code generated from the on-disk opcode catalogue; numeric values are part of the external ABI.
package opcode

// Opcode identifies one of the ~260 instruction codes recognized by the interpreter.
type Opcode uint16

const (
	OpPUSH Opcode = 0x000
	OpPOP Opcode = 0x001
	OpREF Opcode = 0x002
	OpREFREF Opcode = 0x003
	OpPUSHGLOBALPAGE Opcode = 0x004
	OpPUSHLOCALPAGE Opcode = 0x005
	OpINV Opcode = 0x006
	OpNOT Opcode = 0x007
	OpCOMPL Opcode = 0x008
	OpADD Opcode = 0x009
	OpSUB Opcode = 0x00A
	OpMUL Opcode = 0x00B
	OpDIV Opcode = 0x00C
	OpMOD Opcode = 0x00D
	OpAND Opcode = 0x00E
	OpOR Opcode = 0x00F
	OpXOR Opcode = 0x010
	OpLSHIFT Opcode = 0x011
	OpRSHIFT Opcode = 0x012
	OpLT Opcode = 0x013
	OpGT Opcode = 0x014
	OpLTE Opcode = 0x015
	OpGTE Opcode = 0x016
	OpNOTE Opcode = 0x017
	OpEQUALE Opcode = 0x018
	OpASSIGN Opcode = 0x019
	OpPLUSA Opcode = 0x01A
	OpMINUSA Opcode = 0x01B
	OpMULA Opcode = 0x01C
	OpDIVA Opcode = 0x01D
	OpMODA Opcode = 0x01E
	OpANDA Opcode = 0x01F
	OpORA Opcode = 0x020
	OpXORA Opcode = 0x021
	OpLSHIFTA Opcode = 0x022
	OpRSHIFTA Opcode = 0x023
	OpF_ASSIGN Opcode = 0x024
	OpF_PLUSA Opcode = 0x025
	OpF_MINUSA Opcode = 0x026
	OpF_MULA Opcode = 0x027
	OpF_DIVA Opcode = 0x028
	OpDUP2 Opcode = 0x029
	OpDUP_X2 Opcode = 0x02A
	OpCMP Opcode = 0x02B
	OpJUMP Opcode = 0x02C
	OpIFZ Opcode = 0x02D
	OpIFNZ Opcode = 0x02E
	OpRETURN Opcode = 0x02F
	OpCALLFUNC Opcode = 0x030
	OpINC Opcode = 0x031
	OpDEC Opcode = 0x032
	OpFTOI Opcode = 0x033
	OpITOF Opcode = 0x034
	OpF_INV Opcode = 0x035
	OpF_ADD Opcode = 0x036
	OpF_SUB Opcode = 0x037
	OpF_MUL Opcode = 0x038
	OpF_DIV Opcode = 0x039
	OpF_LT Opcode = 0x03A
	OpF_GT Opcode = 0x03B
	OpF_LTE Opcode = 0x03C
	OpF_GTE Opcode = 0x03D
	OpF_NOTE Opcode = 0x03E
	OpF_EQUALE Opcode = 0x03F
	OpF_PUSH Opcode = 0x040
	OpS_PUSH Opcode = 0x041
	OpS_POP Opcode = 0x042
	OpS_ADD Opcode = 0x043
	OpS_ASSIGN Opcode = 0x044
	OpS_PLUSA Opcode = 0x045
	OpS_REF Opcode = 0x046
	OpS_REFREF Opcode = 0x047
	OpS_NOTE Opcode = 0x048
	OpS_EQUALE Opcode = 0x049
	OpSF_CREATE Opcode = 0x04A
	OpSF_CREATEPIXEL Opcode = 0x04B
	OpSF_CREATEALPHA Opcode = 0x04C
	OpSR_POP Opcode = 0x04D
	OpSR_ASSIGN Opcode = 0x04E
	OpSR_REF Opcode = 0x04F
	OpSR_REFREF Opcode = 0x050
	OpA_ALLOC Opcode = 0x051
	OpA_REALLOC Opcode = 0x052
	OpA_FREE Opcode = 0x053
	OpA_NUMOF Opcode = 0x054
	OpA_COPY Opcode = 0x055
	OpA_FILL Opcode = 0x056
	OpC_REF Opcode = 0x057
	OpC_ASSIGN Opcode = 0x058
	OpMSG Opcode = 0x059
	OpCALLHLL Opcode = 0x05A
	OpPUSHSTRUCTPAGE Opcode = 0x05B
	OpCALLMETHOD Opcode = 0x05C
	OpSH_GLOBALREF Opcode = 0x05D
	OpSH_LOCALREF Opcode = 0x05E
	OpSWITCH Opcode = 0x05F
	OpSTRSWITCH Opcode = 0x060
	OpFUNC Opcode = 0x061
	Op_EOF Opcode = 0x062
	OpCALLSYS Opcode = 0x063
	OpSJUMP Opcode = 0x064
	OpCALLONJUMP Opcode = 0x065
	OpSWAP Opcode = 0x066
	OpSH_STRUCTREF Opcode = 0x067
	OpS_LENGTH Opcode = 0x068
	OpS_LENGTHBYTE Opcode = 0x069
	OpI_STRING Opcode = 0x06A
	OpCALLFUNC2 Opcode = 0x06B
	OpDUP2_X1 Opcode = 0x06C
	OpR_ASSIGN Opcode = 0x06D
	OpFT_ASSIGNS Opcode = 0x06E
	OpASSERT Opcode = 0x06F
	OpS_LT Opcode = 0x070
	OpS_GT Opcode = 0x071
	OpS_LTE Opcode = 0x072
	OpS_GTE Opcode = 0x073
	OpS_LENGTH2 Opcode = 0x074
	OpS_LENGTHBYTE2 Opcode = 0x075
	OpNEW Opcode = 0x076
	OpDELETE Opcode = 0x077
	OpCHECKUDO Opcode = 0x078
	OpA_REF Opcode = 0x079
	OpDUP Opcode = 0x07A
	OpDUP_U2 Opcode = 0x07B
	OpSP_INC Opcode = 0x07C
	OpSP_DEC Opcode = 0x07D
	OpENDFUNC Opcode = 0x07E
	OpR_EQUALE Opcode = 0x07F
	OpR_NOTE Opcode = 0x080
	OpSH_LOCALCREATE Opcode = 0x081
	OpSH_LOCALDELETE Opcode = 0x082
	OpSTOI Opcode = 0x083
	OpA_PUSHBACK Opcode = 0x084
	OpA_POPBACK Opcode = 0x085
	OpS_EMPTY Opcode = 0x086
	OpA_EMPTY Opcode = 0x087
	OpA_ERASE Opcode = 0x088
	OpA_INSERT Opcode = 0x089
	OpSH_LOCALINC Opcode = 0x08A
	OpSH_LOCALDEC Opcode = 0x08B
	OpSH_LOCALASSIGN Opcode = 0x08C
	OpITOB Opcode = 0x08D
	OpS_FIND Opcode = 0x08E
	OpS_GETPART Opcode = 0x08F
	OpA_SORT Opcode = 0x090
	OpS_PUSHBACK Opcode = 0x091
	OpS_POPBACK Opcode = 0x092
	OpFTOS Opcode = 0x093
	OpS_MOD Opcode = 0x094
	OpS_PLUSA2 Opcode = 0x095
	OpOBJSWAP Opcode = 0x096
	OpS_ERASE Opcode = 0x097
	OpSR_REF2 Opcode = 0x098
	OpS_ERASE2 Opcode = 0x099
	OpS_PUSHBACK2 Opcode = 0x09A
	OpS_POPBACK2 Opcode = 0x09B
	OpITOLI Opcode = 0x09C
	OpLI_ADD Opcode = 0x09D
	OpLI_SUB Opcode = 0x09E
	OpLI_MUL Opcode = 0x09F
	OpLI_DIV Opcode = 0x0A0
	OpLI_MOD Opcode = 0x0A1
	OpLI_ASSIGN Opcode = 0x0A2
	OpLI_PLUSA Opcode = 0x0A3
	OpLI_MINUSA Opcode = 0x0A4
	OpLI_MULA Opcode = 0x0A5
	OpLI_DIVA Opcode = 0x0A6
	OpLI_MODA Opcode = 0x0A7
	OpLI_ANDA Opcode = 0x0A8
	OpLI_ORA Opcode = 0x0A9
	OpLI_XORA Opcode = 0x0AA
	OpLI_LSHIFTA Opcode = 0x0AB
	OpLI_RSHIFTA Opcode = 0x0AC
	OpLI_INC Opcode = 0x0AD
	OpLI_DEC Opcode = 0x0AE
	OpA_FIND Opcode = 0x0AF
	OpA_REVERSE Opcode = 0x0B0
	OpSH_SR_ASSIGN Opcode = 0x0B1
	OpSH_MEM_ASSIGN_LOCAL Opcode = 0x0B2
	OpA_NUMOF_GLOB_1 Opcode = 0x0B3
	OpA_NUMOF_STRUCT_1 Opcode = 0x0B4
	OpSH_MEM_ASSIGN_IMM Opcode = 0x0B5
	OpSH_LOCALREFREF Opcode = 0x0B6
	OpSH_LOCALASSIGN_SUB_IMM Opcode = 0x0B7
	OpSH_IF_LOC_LT_IMM Opcode = 0x0B8
	OpSH_IF_LOC_GE_IMM Opcode = 0x0B9
	OpSH_LOCREF_ASSIGN_MEM Opcode = 0x0BA
	OpPAGE_REF Opcode = 0x0BB
	OpSH_GLOBAL_ASSIGN_LOCAL Opcode = 0x0BC
	OpSH_STRUCTREF_GT_IMM Opcode = 0x0BD
	OpSH_STRUCT_ASSIGN_LOCALREF_ITOB Opcode = 0x0BE
	OpSH_LOCAL_ASSIGN_STRUCTREF Opcode = 0x0BF
	OpSH_IF_STRUCTREF_NE_LOCALREF Opcode = 0x0C0
	OpSH_IF_STRUCTREF_GT_IMM Opcode = 0x0C1
	OpSH_STRUCTREF_CALLMETHOD_NO_PARAM Opcode = 0x0C2
	OpSH_STRUCTREF2 Opcode = 0x0C3
	OpSH_REF_STRUCTREF2 Opcode = 0x0C4
	OpSH_STRUCTREF3 Opcode = 0x0C5
	OpSH_STRUCTREF2_CALLMETHOD_NO_PARAM Opcode = 0x0C6
	OpSH_IF_STRUCTREF_Z Opcode = 0x0C7
	OpSH_IF_STRUCT_A_NOT_EMPTY Opcode = 0x0C8
	OpSH_IF_LOC_GT_IMM Opcode = 0x0C9
	OpSH_IF_STRUCTREF_NE_IMM Opcode = 0x0CA
	OpTHISCALLMETHOD_NOPARAM Opcode = 0x0CB
	OpSH_IF_LOC_NE_IMM Opcode = 0x0CC
	OpSH_IF_STRUCTREF_EQ_IMM Opcode = 0x0CD
	OpSH_GLOBAL_ASSIGN_IMM Opcode = 0x0CE
	OpSH_LOCALSTRUCT_ASSIGN_IMM Opcode = 0x0CF
	OpSH_STRUCT_A_PUSHBACK_LOCAL_STRUCT Opcode = 0x0D0
	OpSH_GLOBAL_A_PUSHBACK_LOCAL_STRUCT Opcode = 0x0D1
	OpSH_LOCAL_A_PUSHBACK_LOCAL_STRUCT Opcode = 0x0D2
	OpSH_IF_SREF_NE_STR0 Opcode = 0x0D3
	OpSH_S_ASSIGN_REF Opcode = 0x0D4
	OpSH_A_FIND_SREF Opcode = 0x0D5
	OpSH_SREF_EMPTY Opcode = 0x0D6
	OpSH_STRUCTSREF_EQ_LOCALSREF Opcode = 0x0D7
	OpSH_LOCALSREF_EQ_STR0 Opcode = 0x0D8
	OpSH_STRUCTSREF_NE_LOCALSREF Opcode = 0x0D9
	OpSH_LOCALSREF_NE_STR0 Opcode = 0x0DA
	OpSH_STRUCT_SR_REF Opcode = 0x0DB
	OpSH_STRUCT_S_REF Opcode = 0x0DC
	OpS_REF2 Opcode = 0x0DD
	OpSH_REF_LOCAL_ASSIGN_STRUCTREF2 Opcode = 0x0DE
	OpSH_GLOBAL_S_REF Opcode = 0x0DF
	OpSH_LOCAL_S_REF Opcode = 0x0E0
	OpSH_LOCALREF_SASSIGN_LOCALSREF Opcode = 0x0E1
	OpSH_LOCAL_APUSHBACK_LOCALSREF Opcode = 0x0E2
	OpSH_S_ASSIGN_CALLSYS19 Opcode = 0x0E3
	OpSH_S_ASSIGN_STR0 Opcode = 0x0E4
	OpSH_SASSIGN_LOCALSREF Opcode = 0x0E5
	OpSH_STRUCTREF_SASSIGN_LOCALSREF Opcode = 0x0E6
	OpSH_LOCALSREF_EMPTY Opcode = 0x0E7
	OpSH_GLOBAL_APUSHBACK_LOCALSREF Opcode = 0x0E8
	OpSH_STRUCT_APUSHBACK_LOCALSREF Opcode = 0x0E9
	OpSH_STRUCTSREF_EMPTY Opcode = 0x0EA
	OpSH_GLOBALSREF_EMPTY Opcode = 0x0EB
	OpSH_SASSIGN_STRUCTSREF Opcode = 0x0EC
	OpSH_SASSIGN_GLOBALSREF Opcode = 0x0ED
	OpSH_STRUCTSREF_NE_STR0 Opcode = 0x0EE
	OpSH_GLOBALSREF_NE_STR0 Opcode = 0x0EF
	OpSH_LOC_LT_IMM_OR_LOC_GE_IMM Opcode = 0x0F0
	OpA_SORT_MEM Opcode = 0x0F1
	OpDG_ADD Opcode = 0x0F2
	OpDG_SET Opcode = 0x0F3
	OpDG_CALL Opcode = 0x0F4
	OpDG_NUMOF Opcode = 0x0F5
	OpDG_EXIST Opcode = 0x0F6
	OpDG_ERASE Opcode = 0x0F7
	OpDG_CLEAR Opcode = 0x0F8
	OpDG_COPY Opcode = 0x0F9
	OpDG_ASSIGN Opcode = 0x0FA
	OpDG_PLUSA Opcode = 0x0FB
	OpDG_POP Opcode = 0x0FC
	OpDG_NEW_FROM_METHOD Opcode = 0x0FD
	OpDG_MINUSA Opcode = 0x0FE
	OpDG_CALLBEGIN Opcode = 0x0FF
	OpDG_NEW Opcode = 0x100
	OpDG_STR_TO_METHOD Opcode = 0x101
	Op0x102 Opcode = 0x102
	Op0x103 Opcode = 0x103
	Op0x104 Opcode = 0x104
	Op0x105 Opcode = 0x105
)

// Meta describes one opcode: its assembler mnemonic, the semantic kind of each
// fixed-width argument that follows it in the code stream, and whether execution
// of the opcode sets the instruction pointer directly rather than falling through.
type Meta struct {
	Name       string
	Args       []ArgKind
	ModifiesIP bool
}

// table is indexed by Opcode. Entries with an empty Name correspond to opcodes that
// are assigned a numeric slot in the catalogue but carry no known encoding -- the
// loader and disassembler must still skip over them using NumArgs/ip_inc rules.
var table = [...]Meta{
	OpPUSH: {Name: "PUSH", Args: []ArgKind{KindInt}, ModifiesIP: false},
	OpPOP: {Name: "POP", Args: nil, ModifiesIP: false},
	OpREF: {Name: "REF", Args: nil, ModifiesIP: false},
	OpREFREF: {Name: "REFREF", Args: nil, ModifiesIP: false},
	OpPUSHGLOBALPAGE: {Name: "PUSHGLOBALPAGE", Args: nil, ModifiesIP: false},
	OpPUSHLOCALPAGE: {Name: "PUSHLOCALPAGE", Args: nil, ModifiesIP: false},
	OpINV: {Name: "INV", Args: nil, ModifiesIP: false},
	OpNOT: {Name: "NOT", Args: nil, ModifiesIP: false},
	OpCOMPL: {Name: "COMPL", Args: nil, ModifiesIP: false},
	OpADD: {Name: "ADD", Args: nil, ModifiesIP: false},
	OpSUB: {Name: "SUB", Args: nil, ModifiesIP: false},
	OpMUL: {Name: "MUL", Args: nil, ModifiesIP: false},
	OpDIV: {Name: "DIV", Args: nil, ModifiesIP: false},
	OpMOD: {Name: "MOD", Args: nil, ModifiesIP: false},
	OpAND: {Name: "AND", Args: nil, ModifiesIP: false},
	OpOR: {Name: "OR", Args: nil, ModifiesIP: false},
	OpXOR: {Name: "XOR", Args: nil, ModifiesIP: false},
	OpLSHIFT: {Name: "LSHIFT", Args: nil, ModifiesIP: false},
	OpRSHIFT: {Name: "RSHIFT", Args: nil, ModifiesIP: false},
	OpLT: {Name: "LT", Args: nil, ModifiesIP: false},
	OpGT: {Name: "GT", Args: nil, ModifiesIP: false},
	OpLTE: {Name: "LTE", Args: nil, ModifiesIP: false},
	OpGTE: {Name: "GTE", Args: nil, ModifiesIP: false},
	OpNOTE: {Name: "NOTE", Args: nil, ModifiesIP: false},
	OpEQUALE: {Name: "EQUALE", Args: nil, ModifiesIP: false},
	OpASSIGN: {Name: "ASSIGN", Args: nil, ModifiesIP: false},
	OpPLUSA: {Name: "PLUSA", Args: nil, ModifiesIP: false},
	OpMINUSA: {Name: "MINUSA", Args: nil, ModifiesIP: false},
	OpMULA: {Name: "MULA", Args: nil, ModifiesIP: false},
	OpDIVA: {Name: "DIVA", Args: nil, ModifiesIP: false},
	OpMODA: {Name: "MODA", Args: nil, ModifiesIP: false},
	OpANDA: {Name: "ANDA", Args: nil, ModifiesIP: false},
	OpORA: {Name: "ORA", Args: nil, ModifiesIP: false},
	OpXORA: {Name: "XORA", Args: nil, ModifiesIP: false},
	OpLSHIFTA: {Name: "LSHIFTA", Args: nil, ModifiesIP: false},
	OpRSHIFTA: {Name: "RSHIFTA", Args: nil, ModifiesIP: false},
	OpF_ASSIGN: {Name: "F_ASSIGN", Args: nil, ModifiesIP: false},
	OpF_PLUSA: {Name: "F_PLUSA", Args: nil, ModifiesIP: false},
	OpF_MINUSA: {Name: "F_MINUSA", Args: nil, ModifiesIP: false},
	OpF_MULA: {Name: "F_MULA", Args: nil, ModifiesIP: false},
	OpF_DIVA: {Name: "F_DIVA", Args: nil, ModifiesIP: false},
	OpDUP2: {Name: "DUP2", Args: nil, ModifiesIP: false},
	OpDUP_X2: {Name: "DUP_X2", Args: nil, ModifiesIP: false},
	OpCMP: {Name: "CMP", Args: nil, ModifiesIP: false},
	OpJUMP: {Name: "JUMP", Args: []ArgKind{KindAddr}, ModifiesIP: true},
	OpIFZ: {Name: "IFZ", Args: []ArgKind{KindAddr}, ModifiesIP: true},
	OpIFNZ: {Name: "IFNZ", Args: []ArgKind{KindAddr}, ModifiesIP: true},
	OpRETURN: {Name: "RETURN", Args: nil, ModifiesIP: true},
	OpCALLFUNC: {Name: "CALLFUNC", Args: []ArgKind{KindFuncIdx}, ModifiesIP: true},
	OpINC: {Name: "INC", Args: nil, ModifiesIP: false},
	OpDEC: {Name: "DEC", Args: nil, ModifiesIP: false},
	OpFTOI: {Name: "FTOI", Args: nil, ModifiesIP: false},
	OpITOF: {Name: "ITOF", Args: nil, ModifiesIP: false},
	OpF_INV: {Name: "F_INV", Args: nil, ModifiesIP: false},
	OpF_ADD: {Name: "F_ADD", Args: nil, ModifiesIP: false},
	OpF_SUB: {Name: "F_SUB", Args: nil, ModifiesIP: false},
	OpF_MUL: {Name: "F_MUL", Args: nil, ModifiesIP: false},
	OpF_DIV: {Name: "F_DIV", Args: nil, ModifiesIP: false},
	OpF_LT: {Name: "F_LT", Args: nil, ModifiesIP: false},
	OpF_GT: {Name: "F_GT", Args: nil, ModifiesIP: false},
	OpF_LTE: {Name: "F_LTE", Args: nil, ModifiesIP: false},
	OpF_GTE: {Name: "F_GTE", Args: nil, ModifiesIP: false},
	OpF_NOTE: {Name: "F_NOTE", Args: nil, ModifiesIP: false},
	OpF_EQUALE: {Name: "F_EQUALE", Args: nil, ModifiesIP: false},
	OpF_PUSH: {Name: "F_PUSH", Args: []ArgKind{KindFloat}, ModifiesIP: false},
	OpS_PUSH: {Name: "S_PUSH", Args: []ArgKind{KindStringIdx}, ModifiesIP: false},
	OpS_POP: {Name: "S_POP", Args: nil, ModifiesIP: false},
	OpS_ADD: {Name: "S_ADD", Args: nil, ModifiesIP: false},
	OpS_ASSIGN: {Name: "S_ASSIGN", Args: nil, ModifiesIP: false},
	OpS_PLUSA: {Name: "S_PLUSA", Args: nil, ModifiesIP: false},
	OpS_REF: {Name: "S_REF", Args: nil, ModifiesIP: false},
	OpS_REFREF: {Name: "S_REFREF", Args: nil, ModifiesIP: false},
	OpS_NOTE: {Name: "S_NOTE", Args: nil, ModifiesIP: false},
	OpS_EQUALE: {Name: "S_EQUALE", Args: nil, ModifiesIP: false},
	OpSF_CREATE: {Name: "SF_CREATE", Args: nil, ModifiesIP: false},
	OpSF_CREATEPIXEL: {Name: "SF_CREATEPIXEL", Args: nil, ModifiesIP: false},
	OpSF_CREATEALPHA: {Name: "SF_CREATEALPHA", Args: nil, ModifiesIP: false},
	OpSR_POP: {Name: "SR_POP", Args: nil, ModifiesIP: false},
	OpSR_ASSIGN: {Name: "SR_ASSIGN", Args: nil, ModifiesIP: false},
	OpSR_REF: {Name: "SR_REF", Args: []ArgKind{KindStructMember}, ModifiesIP: false},
	OpSR_REFREF: {Name: "SR_REFREF", Args: nil, ModifiesIP: false},
	OpA_ALLOC: {Name: "A_ALLOC", Args: nil, ModifiesIP: false},
	OpA_REALLOC: {Name: "A_REALLOC", Args: nil, ModifiesIP: false},
	OpA_FREE: {Name: "A_FREE", Args: nil, ModifiesIP: false},
	OpA_NUMOF: {Name: "A_NUMOF", Args: nil, ModifiesIP: false},
	OpA_COPY: {Name: "A_COPY", Args: nil, ModifiesIP: false},
	OpA_FILL: {Name: "A_FILL", Args: nil, ModifiesIP: false},
	OpC_REF: {Name: "C_REF", Args: nil, ModifiesIP: false},
	OpC_ASSIGN: {Name: "C_ASSIGN", Args: nil, ModifiesIP: false},
	OpMSG: {Name: "MSG", Args: []ArgKind{KindMsgIdx}, ModifiesIP: true},
	OpCALLHLL: {Name: "CALLHLL", Args: []ArgKind{KindLibIdx, KindHLLFuncIdx}, ModifiesIP: false},
	OpPUSHSTRUCTPAGE: {Name: "PUSHSTRUCTPAGE", Args: nil, ModifiesIP: false},
	OpCALLMETHOD: {Name: "CALLMETHOD", Args: []ArgKind{KindFuncIdx}, ModifiesIP: true},
	OpSH_GLOBALREF: {Name: "SH_GLOBALREF", Args: []ArgKind{KindGlobalIdx}, ModifiesIP: false},
	OpSH_LOCALREF: {Name: "SH_LOCALREF", Args: []ArgKind{KindLocalIdx}, ModifiesIP: false},
	OpSWITCH: {Name: "SWITCH", Args: []ArgKind{KindSwitchIdx}, ModifiesIP: true},
	OpSTRSWITCH: {Name: "STRSWITCH", Args: []ArgKind{KindSwitchIdx}, ModifiesIP: true},
	OpFUNC: {Name: "FUNC", Args: []ArgKind{KindFuncIdx}, ModifiesIP: false},
	Op_EOF: {Name: "_EOF", Args: []ArgKind{KindFileIdx}, ModifiesIP: false},
	OpCALLSYS: {Name: "CALLSYS", Args: []ArgKind{KindSyscallIdx}, ModifiesIP: false},
	OpSJUMP: {Name: "SJUMP", Args: nil, ModifiesIP: true},
	OpCALLONJUMP: {Name: "CALLONJUMP", Args: nil, ModifiesIP: false},
	OpSWAP: {Name: "SWAP", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF: {Name: "SH_STRUCTREF", Args: []ArgKind{KindStructMember}, ModifiesIP: false},
	OpS_LENGTH: {Name: "S_LENGTH", Args: nil, ModifiesIP: false},
	OpS_LENGTHBYTE: {Name: "S_LENGTHBYTE", Args: nil, ModifiesIP: false},
	OpI_STRING: {Name: "I_STRING", Args: nil, ModifiesIP: false},
	OpCALLFUNC2: {Name: "CALLFUNC2", Args: nil, ModifiesIP: true},
	OpDUP2_X1: {Name: "DUP2_X1", Args: nil, ModifiesIP: false},
	OpR_ASSIGN: {Name: "R_ASSIGN", Args: nil, ModifiesIP: false},
	OpFT_ASSIGNS: {Name: "FT_ASSIGNS", Args: nil, ModifiesIP: false},
	OpASSERT: {Name: "ASSERT", Args: nil, ModifiesIP: false},
	OpS_LT: {Name: "S_LT", Args: nil, ModifiesIP: false},
	OpS_GT: {Name: "S_GT", Args: nil, ModifiesIP: false},
	OpS_LTE: {Name: "S_LTE", Args: nil, ModifiesIP: false},
	OpS_GTE: {Name: "S_GTE", Args: nil, ModifiesIP: false},
	OpS_LENGTH2: {Name: "S_LENGTH2", Args: nil, ModifiesIP: false},
	OpS_LENGTHBYTE2: {Name: "S_LENGTHBYTE2", Args: nil, ModifiesIP: false},
	OpNEW: {Name: "NEW", Args: nil, ModifiesIP: false},
	OpDELETE: {Name: "DELETE", Args: nil, ModifiesIP: false},
	OpCHECKUDO: {Name: "CHECKUDO", Args: nil, ModifiesIP: false},
	OpA_REF: {Name: "A_REF", Args: nil, ModifiesIP: false},
	OpDUP: {Name: "DUP", Args: nil, ModifiesIP: false},
	OpDUP_U2: {Name: "DUP_U2", Args: nil, ModifiesIP: false},
	OpSP_INC: {Name: "SP_INC", Args: nil, ModifiesIP: false},
	OpSP_DEC: {Name: "SP_DEC", Args: nil, ModifiesIP: false},
	OpENDFUNC: {Name: "ENDFUNC", Args: []ArgKind{KindFuncIdx}, ModifiesIP: false},
	OpR_EQUALE: {Name: "R_EQUALE", Args: nil, ModifiesIP: false},
	OpR_NOTE: {Name: "R_NOTE", Args: nil, ModifiesIP: false},
	OpSH_LOCALCREATE: {Name: "SH_LOCALCREATE", Args: []ArgKind{KindLocalIdx, KindInt}, ModifiesIP: false},
	OpSH_LOCALDELETE: {Name: "SH_LOCALDELETE", Args: []ArgKind{KindLocalIdx}, ModifiesIP: false},
	OpSTOI: {Name: "STOI", Args: nil, ModifiesIP: false},
	OpA_PUSHBACK: {Name: "A_PUSHBACK", Args: nil, ModifiesIP: false},
	OpA_POPBACK: {Name: "A_POPBACK", Args: nil, ModifiesIP: false},
	OpS_EMPTY: {Name: "S_EMPTY", Args: nil, ModifiesIP: false},
	OpA_EMPTY: {Name: "A_EMPTY", Args: nil, ModifiesIP: false},
	OpA_ERASE: {Name: "A_ERASE", Args: nil, ModifiesIP: false},
	OpA_INSERT: {Name: "A_INSERT", Args: nil, ModifiesIP: false},
	OpSH_LOCALINC: {Name: "SH_LOCALINC", Args: []ArgKind{KindLocalIdx}, ModifiesIP: false},
	OpSH_LOCALDEC: {Name: "SH_LOCALDEC", Args: []ArgKind{KindLocalIdx}, ModifiesIP: false},
	OpSH_LOCALASSIGN: {Name: "SH_LOCALASSIGN", Args: []ArgKind{KindLocalIdx, KindInt}, ModifiesIP: false},
	OpITOB: {Name: "ITOB", Args: nil, ModifiesIP: false},
	OpS_FIND: {Name: "S_FIND", Args: nil, ModifiesIP: false},
	OpS_GETPART: {Name: "S_GETPART", Args: nil, ModifiesIP: false},
	OpA_SORT: {Name: "A_SORT", Args: nil, ModifiesIP: false},
	OpS_PUSHBACK: {Name: "S_PUSHBACK", Args: nil, ModifiesIP: false},
	OpS_POPBACK: {Name: "S_POPBACK", Args: nil, ModifiesIP: false},
	OpFTOS: {Name: "FTOS", Args: nil, ModifiesIP: false},
	OpS_MOD: {Name: "S_MOD", Args: nil, ModifiesIP: false},
	OpS_PLUSA2: {Name: "S_PLUSA2", Args: nil, ModifiesIP: false},
	OpOBJSWAP: {Name: "OBJSWAP", Args: nil, ModifiesIP: false},
	OpS_ERASE: {Name: "S_ERASE", Args: nil, ModifiesIP: false},
	OpSR_REF2: {Name: "SR_REF2", Args: nil, ModifiesIP: false},
	OpS_ERASE2: {Name: "S_ERASE2", Args: nil, ModifiesIP: false},
	OpS_PUSHBACK2: {Name: "S_PUSHBACK2", Args: nil, ModifiesIP: false},
	OpS_POPBACK2: {Name: "S_POPBACK2", Args: nil, ModifiesIP: false},
	OpITOLI: {Name: "ITOLI", Args: nil, ModifiesIP: false},
	OpLI_ADD: {Name: "LI_ADD", Args: nil, ModifiesIP: false},
	OpLI_SUB: {Name: "LI_SUB", Args: nil, ModifiesIP: false},
	OpLI_MUL: {Name: "LI_MUL", Args: nil, ModifiesIP: false},
	OpLI_DIV: {Name: "LI_DIV", Args: nil, ModifiesIP: false},
	OpLI_MOD: {Name: "LI_MOD", Args: nil, ModifiesIP: false},
	OpLI_ASSIGN: {Name: "LI_ASSIGN", Args: nil, ModifiesIP: false},
	OpLI_PLUSA: {Name: "LI_PLUSA", Args: nil, ModifiesIP: false},
	OpLI_MINUSA: {Name: "LI_MINUSA", Args: nil, ModifiesIP: false},
	OpLI_MULA: {Name: "LI_MULA", Args: nil, ModifiesIP: false},
	OpLI_DIVA: {Name: "LI_DIVA", Args: nil, ModifiesIP: false},
	OpLI_MODA: {Name: "LI_MODA", Args: nil, ModifiesIP: false},
	OpLI_ANDA: {Name: "LI_ANDA", Args: nil, ModifiesIP: false},
	OpLI_ORA: {Name: "LI_ORA", Args: nil, ModifiesIP: false},
	OpLI_XORA: {Name: "LI_XORA", Args: nil, ModifiesIP: false},
	OpLI_LSHIFTA: {Name: "LI_LSHIFTA", Args: nil, ModifiesIP: false},
	OpLI_RSHIFTA: {Name: "LI_RSHIFTA", Args: nil, ModifiesIP: false},
	OpLI_INC: {Name: "LI_INC", Args: nil, ModifiesIP: false},
	OpLI_DEC: {Name: "LI_DEC", Args: nil, ModifiesIP: false},
	OpA_FIND: {Name: "A_FIND", Args: nil, ModifiesIP: false},
	OpA_REVERSE: {Name: "A_REVERSE", Args: nil, ModifiesIP: false},
	OpSH_SR_ASSIGN: {Name: "SH_SR_ASSIGN", Args: nil, ModifiesIP: false},
	OpSH_MEM_ASSIGN_LOCAL: {Name: "SH_MEM_ASSIGN_LOCAL", Args: nil, ModifiesIP: false},
	OpA_NUMOF_GLOB_1: {Name: "A_NUMOF_GLOB_1", Args: nil, ModifiesIP: false},
	OpA_NUMOF_STRUCT_1: {Name: "A_NUMOF_STRUCT_1", Args: nil, ModifiesIP: false},
	OpSH_MEM_ASSIGN_IMM: {Name: "SH_MEM_ASSIGN_IMM", Args: nil, ModifiesIP: false},
	OpSH_LOCALREFREF: {Name: "SH_LOCALREFREF", Args: nil, ModifiesIP: false},
	OpSH_LOCALASSIGN_SUB_IMM: {Name: "SH_LOCALASSIGN_SUB_IMM", Args: nil, ModifiesIP: false},
	OpSH_IF_LOC_LT_IMM: {Name: "SH_IF_LOC_LT_IMM", Args: nil, ModifiesIP: false},
	OpSH_IF_LOC_GE_IMM: {Name: "SH_IF_LOC_GE_IMM", Args: nil, ModifiesIP: false},
	OpSH_LOCREF_ASSIGN_MEM: {Name: "SH_LOCREF_ASSIGN_MEM", Args: nil, ModifiesIP: false},
	OpPAGE_REF: {Name: "PAGE_REF", Args: nil, ModifiesIP: false},
	OpSH_GLOBAL_ASSIGN_LOCAL: {Name: "SH_GLOBAL_ASSIGN_LOCAL", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF_GT_IMM: {Name: "SH_STRUCTREF_GT_IMM", Args: nil, ModifiesIP: false},
	OpSH_STRUCT_ASSIGN_LOCALREF_ITOB: {Name: "SH_STRUCT_ASSIGN_LOCALREF_ITOB", Args: nil, ModifiesIP: false},
	OpSH_LOCAL_ASSIGN_STRUCTREF: {Name: "SH_LOCAL_ASSIGN_STRUCTREF", Args: nil, ModifiesIP: false},
	OpSH_IF_STRUCTREF_NE_LOCALREF: {Name: "SH_IF_STRUCTREF_NE_LOCALREF", Args: nil, ModifiesIP: false},
	OpSH_IF_STRUCTREF_GT_IMM: {Name: "SH_IF_STRUCTREF_GT_IMM", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF_CALLMETHOD_NO_PARAM: {Name: "SH_STRUCTREF_CALLMETHOD_NO_PARAM", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF2: {Name: "SH_STRUCTREF2", Args: nil, ModifiesIP: false},
	OpSH_REF_STRUCTREF2: {Name: "SH_REF_STRUCTREF2", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF3: {Name: "SH_STRUCTREF3", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF2_CALLMETHOD_NO_PARAM: {Name: "SH_STRUCTREF2_CALLMETHOD_NO_PARAM", Args: nil, ModifiesIP: false},
	OpSH_IF_STRUCTREF_Z: {Name: "SH_IF_STRUCTREF_Z", Args: nil, ModifiesIP: false},
	OpSH_IF_STRUCT_A_NOT_EMPTY: {Name: "SH_IF_STRUCT_A_NOT_EMPTY", Args: nil, ModifiesIP: false},
	OpSH_IF_LOC_GT_IMM: {Name: "SH_IF_LOC_GT_IMM", Args: nil, ModifiesIP: false},
	OpSH_IF_STRUCTREF_NE_IMM: {Name: "SH_IF_STRUCTREF_NE_IMM", Args: nil, ModifiesIP: false},
	OpTHISCALLMETHOD_NOPARAM: {Name: "THISCALLMETHOD_NOPARAM", Args: nil, ModifiesIP: false},
	OpSH_IF_LOC_NE_IMM: {Name: "SH_IF_LOC_NE_IMM", Args: nil, ModifiesIP: false},
	OpSH_IF_STRUCTREF_EQ_IMM: {Name: "SH_IF_STRUCTREF_EQ_IMM", Args: nil, ModifiesIP: false},
	OpSH_GLOBAL_ASSIGN_IMM: {Name: "SH_GLOBAL_ASSIGN_IMM", Args: nil, ModifiesIP: false},
	OpSH_LOCALSTRUCT_ASSIGN_IMM: {Name: "SH_LOCALSTRUCT_ASSIGN_IMM", Args: nil, ModifiesIP: false},
	OpSH_STRUCT_A_PUSHBACK_LOCAL_STRUCT: {Name: "SH_STRUCT_A_PUSHBACK_LOCAL_STRUCT", Args: nil, ModifiesIP: false},
	OpSH_GLOBAL_A_PUSHBACK_LOCAL_STRUCT: {Name: "SH_GLOBAL_A_PUSHBACK_LOCAL_STRUCT", Args: nil, ModifiesIP: false},
	OpSH_LOCAL_A_PUSHBACK_LOCAL_STRUCT: {Name: "SH_LOCAL_A_PUSHBACK_LOCAL_STRUCT", Args: nil, ModifiesIP: false},
	OpSH_IF_SREF_NE_STR0: {Name: "SH_IF_SREF_NE_STR0", Args: nil, ModifiesIP: false},
	OpSH_S_ASSIGN_REF: {Name: "SH_S_ASSIGN_REF", Args: nil, ModifiesIP: false},
	OpSH_A_FIND_SREF: {Name: "SH_A_FIND_SREF", Args: nil, ModifiesIP: false},
	OpSH_SREF_EMPTY: {Name: "SH_SREF_EMPTY", Args: nil, ModifiesIP: false},
	OpSH_STRUCTSREF_EQ_LOCALSREF: {Name: "SH_STRUCTSREF_EQ_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_LOCALSREF_EQ_STR0: {Name: "SH_LOCALSREF_EQ_STR0", Args: nil, ModifiesIP: false},
	OpSH_STRUCTSREF_NE_LOCALSREF: {Name: "SH_STRUCTSREF_NE_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_LOCALSREF_NE_STR0: {Name: "SH_LOCALSREF_NE_STR0", Args: nil, ModifiesIP: false},
	OpSH_STRUCT_SR_REF: {Name: "SH_STRUCT_SR_REF", Args: nil, ModifiesIP: false},
	OpSH_STRUCT_S_REF: {Name: "SH_STRUCT_S_REF", Args: nil, ModifiesIP: false},
	OpS_REF2: {Name: "S_REF2", Args: nil, ModifiesIP: false},
	OpSH_REF_LOCAL_ASSIGN_STRUCTREF2: {Name: "SH_REF_LOCAL_ASSIGN_STRUCTREF2", Args: nil, ModifiesIP: false},
	OpSH_GLOBAL_S_REF: {Name: "SH_GLOBAL_S_REF", Args: nil, ModifiesIP: false},
	OpSH_LOCAL_S_REF: {Name: "SH_LOCAL_S_REF", Args: nil, ModifiesIP: false},
	OpSH_LOCALREF_SASSIGN_LOCALSREF: {Name: "SH_LOCALREF_SASSIGN_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_LOCAL_APUSHBACK_LOCALSREF: {Name: "SH_LOCAL_APUSHBACK_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_S_ASSIGN_CALLSYS19: {Name: "SH_S_ASSIGN_CALLSYS19", Args: nil, ModifiesIP: false},
	OpSH_S_ASSIGN_STR0: {Name: "SH_S_ASSIGN_STR0", Args: nil, ModifiesIP: false},
	OpSH_SASSIGN_LOCALSREF: {Name: "SH_SASSIGN_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_STRUCTREF_SASSIGN_LOCALSREF: {Name: "SH_STRUCTREF_SASSIGN_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_LOCALSREF_EMPTY: {Name: "SH_LOCALSREF_EMPTY", Args: nil, ModifiesIP: false},
	OpSH_GLOBAL_APUSHBACK_LOCALSREF: {Name: "SH_GLOBAL_APUSHBACK_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_STRUCT_APUSHBACK_LOCALSREF: {Name: "SH_STRUCT_APUSHBACK_LOCALSREF", Args: nil, ModifiesIP: false},
	OpSH_STRUCTSREF_EMPTY: {Name: "SH_STRUCTSREF_EMPTY", Args: nil, ModifiesIP: false},
	OpSH_GLOBALSREF_EMPTY: {Name: "SH_GLOBALSREF_EMPTY", Args: nil, ModifiesIP: false},
	OpSH_SASSIGN_STRUCTSREF: {Name: "SH_SASSIGN_STRUCTSREF", Args: nil, ModifiesIP: false},
	OpSH_SASSIGN_GLOBALSREF: {Name: "SH_SASSIGN_GLOBALSREF", Args: nil, ModifiesIP: false},
	OpSH_STRUCTSREF_NE_STR0: {Name: "SH_STRUCTSREF_NE_STR0", Args: nil, ModifiesIP: false},
	OpSH_GLOBALSREF_NE_STR0: {Name: "SH_GLOBALSREF_NE_STR0", Args: nil, ModifiesIP: false},
	OpSH_LOC_LT_IMM_OR_LOC_GE_IMM: {Name: "SH_LOC_LT_IMM_OR_LOC_GE_IMM", Args: nil, ModifiesIP: false},
	OpA_SORT_MEM: {Name: "A_SORT_MEM", Args: nil, ModifiesIP: false},
	OpDG_ADD: {Name: "DG_ADD", Args: nil, ModifiesIP: false},
	OpDG_SET: {Name: "DG_SET", Args: nil, ModifiesIP: false},
	OpDG_CALL: {Name: "DG_CALL", Args: nil, ModifiesIP: false},
	OpDG_NUMOF: {Name: "DG_NUMOF", Args: nil, ModifiesIP: false},
	OpDG_EXIST: {Name: "DG_EXIST", Args: nil, ModifiesIP: false},
	OpDG_ERASE: {Name: "DG_ERASE", Args: nil, ModifiesIP: false},
	OpDG_CLEAR: {Name: "DG_CLEAR", Args: nil, ModifiesIP: false},
	OpDG_COPY: {Name: "DG_COPY", Args: nil, ModifiesIP: false},
	OpDG_ASSIGN: {Name: "DG_ASSIGN", Args: nil, ModifiesIP: false},
	OpDG_PLUSA: {Name: "DG_PLUSA", Args: nil, ModifiesIP: false},
	OpDG_POP: {Name: "DG_POP", Args: nil, ModifiesIP: false},
	OpDG_NEW_FROM_METHOD: {Name: "DG_NEW_FROM_METHOD", Args: nil, ModifiesIP: false},
	OpDG_MINUSA: {Name: "DG_MINUSA", Args: nil, ModifiesIP: false},
	OpDG_CALLBEGIN: {Name: "DG_CALLBEGIN", Args: nil, ModifiesIP: false},
	OpDG_NEW: {Name: "DG_NEW", Args: nil, ModifiesIP: false},
	OpDG_STR_TO_METHOD: {Name: "DG_STR_TO_METHOD", Args: nil, ModifiesIP: false},
	Op0x102: {},
	Op0x103: {},
	Op0x104: {},
	Op0x105: {},
}

