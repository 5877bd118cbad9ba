package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunuhara/ainterp/internal/ain"
	"github.com/nunuhara/ainterp/internal/page"
	"github.com/nunuhara/ainterp/internal/vmstring"
)

func TestAllocReleaseReturnsToFreeList(t *testing.T) {
	h := New(nil)
	idx := h.AllocString(nil)
	assert.Equal(t, 1, h.LiveCount())
	h.Release(idx)
	assert.Equal(t, 0, h.LiveCount())

	// The freed slot is reused rather than growing the table.
	idx2 := h.AllocString(nil)
	assert.Equal(t, idx, idx2)
}

func TestDoubleReleaseTraps(t *testing.T) {
	h := New(nil)
	idx := h.AllocString(nil)
	h.Release(idx)
	assert.Panics(t, func() { h.Release(idx) })
}

func TestRetainDelaysRelease(t *testing.T) {
	h := New(nil)
	idx := h.AllocString(nil)
	h.Retain(idx)
	h.Release(idx)
	assert.Equal(t, 1, h.LiveCount(), "rc should still be 1 after one retain and one release")
	h.Release(idx)
	assert.Equal(t, 0, h.LiveCount())
}

func TestReleasingStructPageReleasesOwnedString(t *testing.T) {
	structs := []ain.Struct{
		{Name: "P", Members: []ain.Variable{{Name: "name", Type: ain.String}}},
	}
	h := New(structs)
	structIdx := h.AllocPage(page.NewStructPage(0, structs, h))

	before := h.LiveCount()
	assert.Equal(t, 2, before, "struct page + its default-initialized string slot")

	h.Release(structIdx)
	assert.Equal(t, 0, h.LiveCount())
}

func TestCopyPageIsIndependent(t *testing.T) {
	structs := []ain.Struct{
		{Name: "P", Members: []ain.Variable{{Name: "name", Type: ain.String}}},
	}
	h := New(structs)
	origIdx := h.AllocPage(page.NewStructPage(0, structs, h))
	orig := h.Page(origIdx)

	nameSlot := int32(orig.Cells[0])
	vmstring.Append(h.String(nameSlot), vmstring.New([]byte("x")))

	copyPage := h.Copy(orig)
	copyIdx := h.AllocPage(copyPage)
	copyNameSlot := int32(copyPage.Cells[0])
	require.NotEqual(t, nameSlot, copyNameSlot, "copy must allocate its own string slot")

	vmstring.Append(h.String(copyNameSlot), vmstring.New([]byte("y")))
	assert.Equal(t, "x", h.String(nameSlot).String())
	assert.Equal(t, "xy", h.String(copyNameSlot).String())

	h.Release(origIdx)
	h.Release(copyIdx)
	assert.Equal(t, 0, h.LiveCount())
}
