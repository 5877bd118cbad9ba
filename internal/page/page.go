// Package page models the four fixed-record shapes that live in the heap:
// global pages, local (call-frame) pages, struct pages, and array pages
// (§3.3, §4.5). A Page only describes layout and default values; ownership
// and reference counting belong to the heap package, which this package
// never imports.
package page

import "github.com/nunuhara/ainterp/internal/ain"

// Kind distinguishes the four page shapes.
type Kind int

const (
	Global Kind = iota
	Local
	Struct
	Array
)

// Allocator is the minimal heap surface a page constructor needs in order
// to default-initialize string and struct cells, which themselves must
// live in freshly allocated heap slots. The heap package implements this
// interface; page itself has no heap dependency, avoiding an import cycle.
type Allocator interface {
	// NewString allocates a heap slot holding a fresh, non-literal string
	// with the given contents and returns its slot index with rc == 1.
	NewString(contents []byte) int32
	// NewPage allocates a heap slot owning p and returns its slot index
	// with rc == 1.
	NewPage(p *Page) int32
}

// Page is one fixed-width record: a global page, a local frame, a struct
// instance, or an array (including, for rank > 1, an array of sub-array
// handles). Cells are 64-bit words, one per variable (§3.3); for global/local/struct
// pages, VarTypes[i] gives the declared type of Cells[i] and is what the
// heap's recursive release/copy consult. Array pages share one element
// type for every cell instead.
type Page struct {
	Kind Kind

	// FunctionIndex (Local) or StructIndex (Struct) identifies the
	// metadata record this page was built from. Unused for Global/Array.
	MetaIndex int32

	Cells []int64

	// VarTypes/VarStructTypes are parallel to Cells for Global/Local/Struct
	// pages: the declared type (and, for struct cells, the struct index)
	// of each member/local/global in declaration order.
	VarTypes       []ain.DataType
	VarStructTypes []int32

	// ElemType/ElemStructType/Rank describe Array pages: every cell shares
	// this element type, and Rank > 1 means each cell is itself a slot
	// index into a further Array page of rank Rank-1.
	ElemType       ain.DataType
	ElemStructType int32
	Rank           int32
}

// NewGlobalPage builds the one-per-program global page, default-initializing
// every declared global in order.
func NewGlobalPage(globals []ain.Global, structs []ain.Struct, alloc Allocator) *Page {
	p := &Page{
		Kind:           Global,
		Cells:          make([]int64, len(globals)),
		VarTypes:       make([]ain.DataType, len(globals)),
		VarStructTypes: make([]int32, len(globals)),
	}
	for i, g := range globals {
		p.VarTypes[i] = g.Type
		p.VarStructTypes[i] = g.StructType
		p.Cells[i] = defaultCell(g.Type, g.StructType, structs, alloc)
	}
	return p
}

// NewLocalPage builds a fresh call frame for fn: parameters occupy the first
// NrArgs cells (the caller fills these in after construction), remaining
// locals are default-initialized.
func NewLocalPage(fnIndex int32, vars []ain.Variable, nrArgs int32, structs []ain.Struct, alloc Allocator) *Page {
	p := &Page{
		Kind:           Local,
		MetaIndex:      fnIndex,
		Cells:          make([]int64, len(vars)),
		VarTypes:       make([]ain.DataType, len(vars)),
		VarStructTypes: make([]int32, len(vars)),
	}
	for i, v := range vars {
		p.VarTypes[i] = v.Type
		p.VarStructTypes[i] = v.StructType
		if int32(i) < nrArgs {
			continue // caller overwrites with the pushed argument
		}
		p.Cells[i] = defaultCell(v.Type, v.StructType, structs, alloc)
	}
	return p
}

// NewStructPage builds a fresh instance of structs[structIndex], with every
// member default-initialized. The caller is responsible for separately
// invoking the struct's constructor function, if any (§4.7 "Structs").
func NewStructPage(structIndex int32, structs []ain.Struct, alloc Allocator) *Page {
	s := structs[structIndex]
	p := &Page{
		Kind:           Struct,
		MetaIndex:      structIndex,
		Cells:          make([]int64, len(s.Members)),
		VarTypes:       make([]ain.DataType, len(s.Members)),
		VarStructTypes: make([]int32, len(s.Members)),
	}
	for i, m := range s.Members {
		p.VarTypes[i] = m.Type
		p.VarStructTypes[i] = m.StructType
		p.Cells[i] = defaultCell(m.Type, m.StructType, structs, alloc)
	}
	return p
}

// NewArrayPage builds the array tree for A_ALLOC: dims gives one size per
// rank level, outermost first. A rank-1 array is a single page of
// element-typed cells; higher ranks are pages of sub-array handles, each
// itself a freshly allocated array page (§4.5 "Array semantics").
func NewArrayPage(elemType ain.DataType, elemStructType int32, dims []int32, structs []ain.Struct, alloc Allocator) *Page {
	rank := int32(len(dims))
	size := int(dims[0])
	p := &Page{
		Kind:           Array,
		ElemType:       elemType,
		ElemStructType: elemStructType,
		Rank:           rank,
		Cells:          make([]int64, size),
	}
	if rank == 1 {
		for i := range p.Cells {
			p.Cells[i] = defaultCell(elemType, elemStructType, structs, alloc)
		}
		return p
	}
	for i := range p.Cells {
		sub := NewArrayPage(elemType, elemStructType, dims[1:], structs, alloc)
		p.Cells[i] = int64(alloc.NewPage(sub))
	}
	return p
}

// defaultCell computes the default value for a freshly declared variable of
// type t, per §4.5 "Variable initial values".
func defaultCell(t ain.DataType, structType int32, structs []ain.Struct, alloc Allocator) int64 {
	switch {
	case t.IsRef():
		return -1
	case t.IsArray():
		return -1
	case t.IsString():
		return int64(alloc.NewString(nil))
	case t.IsStruct():
		return int64(alloc.NewPage(NewStructPage(structType, structs, alloc)))
	default: // int, bool, long-int, float, function-pointer, delegate
		return 0
	}
}

// NumCells reports the length of a rank-1 slice along the array's outermost
// dimension, implementing A_NUMOF <0> against this page directly.
func (p *Page) NumCells() int32 {
	return int32(len(p.Cells))
}
