package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nunuhara/ainterp/internal/ain"
)

// fakeAllocator is a minimal Allocator for tests that don't need a real heap.
type fakeAllocator struct {
	pages   []*Page
	strings [][]byte
}

func (f *fakeAllocator) NewString(contents []byte) int32 {
	f.strings = append(f.strings, contents)
	return int32(len(f.strings) - 1)
}

func (f *fakeAllocator) NewPage(p *Page) int32 {
	f.pages = append(f.pages, p)
	return int32(len(f.pages) - 1)
}

func TestNewGlobalPageDefaults(t *testing.T) {
	alloc := &fakeAllocator{}
	globals := []ain.Global{
		{Name: "n", Type: ain.Int},
		{Name: "s", Type: ain.String},
		{Name: "arr", Type: ain.ArrayInt},
	}
	p := NewGlobalPage(globals, nil, alloc)

	require.Len(t, p.Cells, 3)
	assert.EqualValues(t, 0, p.Cells[0], "int defaults to zero")
	assert.EqualValues(t, 0, p.Cells[1], "string slot index of the first allocated string")
	assert.EqualValues(t, -1, p.Cells[2], "array defaults to the null handle")
}

func TestNewArrayPageRankOne(t *testing.T) {
	alloc := &fakeAllocator{}
	p := NewArrayPage(ain.Int, 0, []int32{4}, nil, alloc)
	require.Len(t, p.Cells, 4)
	for _, c := range p.Cells {
		assert.EqualValues(t, 0, c)
	}
	assert.Equal(t, int32(4), p.NumCells())
}

func TestNewArrayPageRankTwo(t *testing.T) {
	alloc := &fakeAllocator{}
	p := NewArrayPage(ain.Int, 0, []int32{2, 3}, nil, alloc)
	require.Len(t, p.Cells, 2)
	require.Len(t, alloc.pages, 2, "one sub-array page allocated per outer cell")
	for _, sub := range alloc.pages {
		assert.Len(t, sub.Cells, 3)
	}
}
