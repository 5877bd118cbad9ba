// Package heap implements the reference-counted slot table that backs
// every page and string in a running program (§3.2, §4.4). Allocation is
// O(1) via a free-list; release at rc == 0 recursively tears down owned
// children, driven by the per-cell type metadata each page already carries.
package heap

import (
	"fmt"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/page"
	"github.com/nunuhara/ainterp/internal/vmstring"
)

// NullSlot is the sentinel used throughout the calling convention and page
// defaults to mean "no object" (a null array/struct/function handle).
const NullSlot int32 = -1

// kind distinguishes what occupies a live slot.
type kind int

const (
	kindEmpty kind = iota
	kindPage
	kindString
)

type slot struct {
	kind     kind
	refCount int32
	page     *page.Page
	str      *vmstring.String
}

// Heap is the single flat table of slots described in §3.2. Slot 0 is
// reserved for the global page by convention (vm.Run allocates it
// first); this package does not enforce that itself.
type Heap struct {
	slots    []slot
	freeList []int32
	structs  []ain.Struct
}

// New creates an empty heap. structs is the program's struct table, needed
// by recursive release/copy to know a struct page's member types.
func New(structs []ain.Struct) *Heap {
	return &Heap{structs: structs}
}

// Len reports the size of the slot table, including free slots. The "live
// slot count must reach zero" shutdown check (§8) uses LiveCount instead.
func (h *Heap) Len() int {
	return len(h.slots)
}

// LiveCount reports how many slots are currently occupied.
func (h *Heap) LiveCount() int {
	return len(h.slots) - len(h.freeList)
}

func (h *Heap) allocSlot() int32 {
	if n := len(h.freeList); n > 0 {
		idx := h.freeList[n-1]
		h.freeList = h.freeList[:n-1]
		return idx
	}
	h.slots = append(h.slots, slot{})
	return int32(len(h.slots) - 1)
}

// AllocPage allocates a slot owning p and returns its index with rc == 1.
func (h *Heap) AllocPage(p *page.Page) int32 {
	idx := h.allocSlot()
	h.slots[idx] = slot{kind: kindPage, refCount: 1, page: p}
	return idx
}

// AllocString allocates a slot owning s and returns its index with rc == 1.
func (h *Heap) AllocString(s *vmstring.String) int32 {
	idx := h.allocSlot()
	h.slots[idx] = slot{kind: kindString, refCount: 1, str: s}
	return idx
}

// NewString implements page.Allocator: it allocates a fresh, non-literal,
// non-shared string slot with the given contents.
func (h *Heap) NewString(contents []byte) int32 {
	return h.AllocString(vmstring.New(contents))
}

// NewPage implements page.Allocator.
func (h *Heap) NewPage(p *page.Page) int32 {
	return h.AllocPage(p)
}

// Page returns the page owned by slot idx. Panics (as a trap, via the
// caller) if idx does not currently hold a page -- callers are expected to
// check type expectations against the declared variable type before
// calling this.
func (h *Heap) Page(idx int32) *page.Page {
	s := h.mustSlot(idx)
	if s.kind != kindPage {
		panic(fmt.Sprintf("heap: slot %d does not hold a page", idx))
	}
	return s.page
}

// String returns the string owned by slot idx.
func (h *Heap) String(idx int32) *vmstring.String {
	s := h.mustSlot(idx)
	if s.kind != kindString {
		panic(fmt.Sprintf("heap: slot %d does not hold a string", idx))
	}
	return s.str
}

func (h *Heap) mustSlot(idx int32) *slot {
	if idx < 0 || int(idx) >= len(h.slots) || h.slots[idx].kind == kindEmpty {
		panic(fmt.Sprintf("heap: slot %d is not live", idx))
	}
	return &h.slots[idx]
}

// Retain increments idx's reference count.
func (h *Heap) Retain(idx int32) {
	if idx == NullSlot {
		return
	}
	h.mustSlot(idx).refCount++
}

// Release decrements idx's reference count; at zero it recursively releases
// owned children (§4.4 "Recursive release") and returns the slot to the
// free-list. Releasing an already-free slot is a fatal trap (§8 "Reference
// count non-negativity"), surfaced to the caller as a panic so the
// interpreter's recover-based trap handler can format it with opcode/PC
// context.
func (h *Heap) Release(idx int32) {
	if idx == NullSlot {
		return
	}
	s := h.mustSlot(idx)
	if s.refCount <= 0 {
		panic(fmt.Sprintf("heap: double release of slot %d", idx))
	}
	s.refCount--
	if s.refCount > 0 {
		return
	}
	switch s.kind {
	case kindPage:
		h.releasePageChildren(s.page)
	case kindString:
		// Literal strings point into the image and must never be torn
		// down further; there is nothing else to release for a string.
	}
	h.slots[idx] = slot{}
	h.freeList = append(h.freeList, idx)
}

// releasePageChildren walks p's cells and releases every owned child,
// following the type-driven rules in §4.4.1. Non-owning cells (refs,
// scalars, function-pointers, delegates) are left untouched.
func (h *Heap) releasePageChildren(p *page.Page) {
	if p.Kind == page.Array {
		h.releaseArrayChildren(p)
		return
	}
	for i, cell := range p.Cells {
		t := p.VarTypes[i]
		h.releaseCellIfOwned(t, int32(cell))
	}
}

func (h *Heap) releaseArrayChildren(p *page.Page) {
	if p.Rank > 1 {
		for _, cell := range p.Cells {
			if int32(cell) != NullSlot {
				h.Release(int32(cell))
			}
		}
		return
	}
	for _, cell := range p.Cells {
		h.releaseCellIfOwned(p.ElemType, int32(cell))
	}
}

func (h *Heap) releaseCellIfOwned(t ain.DataType, cell int32) {
	switch {
	case t.IsRef():
		// References are non-owning by construction (§4.4.1).
	case t.IsString(), t.IsStruct(), t.IsArray():
		if cell != NullSlot {
			h.Release(cell)
		}
	default:
		// scalars, function-pointers, delegates: nothing to do.
	}
}

// Copy implements copy_page (§4.4 "Recursive copy"): allocates a new page of
// the same shape as p, deep-copying owned strings/structs/arrays and
// copying every other cell verbatim.
func (h *Heap) Copy(p *page.Page) *page.Page {
	out := &page.Page{
		Kind:           p.Kind,
		MetaIndex:      p.MetaIndex,
		Cells:          make([]int64, len(p.Cells)),
		ElemType:       p.ElemType,
		ElemStructType: p.ElemStructType,
		Rank:           p.Rank,
	}
	if len(p.VarTypes) > 0 {
		out.VarTypes = append([]ain.DataType(nil), p.VarTypes...)
		out.VarStructTypes = append([]int32(nil), p.VarStructTypes...)
	}

	if p.Kind == page.Array {
		h.copyArrayCells(p, out)
		return out
	}
	for i, cell := range p.Cells {
		out.Cells[i] = int64(h.copyCell(p.VarTypes[i], int32(cell)))
	}
	return out
}

func (h *Heap) copyArrayCells(p, out *page.Page) {
	if p.Rank > 1 {
		for i, cell := range p.Cells {
			if int32(cell) == NullSlot {
				out.Cells[i] = int64(NullSlot)
				continue
			}
			out.Cells[i] = int64(h.AllocPage(h.Copy(h.Page(int32(cell)))))
		}
		return
	}
	for i, cell := range p.Cells {
		out.Cells[i] = int64(h.copyCell(p.ElemType, int32(cell)))
	}
}

// CopyElement deep-copies a single array-element or struct-member cell of
// declared type t, per the same rules Copy applies to every cell of a
// page: owned strings/structs/arrays get an independent copy, everything
// else (scalars, refs, function pointers) is copied verbatim. A_COPY uses
// this to copy a sub-range between array pages without copying the whole
// source page.
func (h *Heap) CopyElement(t ain.DataType, cell int32) int32 {
	return h.copyCell(t, cell)
}

func (h *Heap) copyCell(t ain.DataType, cell int32) int32 {
	switch {
	case t.IsString():
		if cell == NullSlot {
			return NullSlot
		}
		return h.AllocString(h.String(cell).Dup())
	case t.IsStruct(), t.IsArray():
		if cell == NullSlot {
			return NullSlot
		}
		return h.AllocPage(h.Copy(h.Page(cell)))
	default:
		return cell
	}
}
