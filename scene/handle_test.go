package scene

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEncoding(t *testing.T) {
	tests := []struct {
		layer uint32
		gen   uint32
		index uint32
	}{
		{0, 0, 0},
		{3, genMask, 0xFFFFFFFF},
		{1, 0, 1},
		{2, 1, 0},
		{0xFF, 0x123456, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("layer=%d,gen=%d,index=%d", tt.layer, tt.gen, tt.index), func(t *testing.T) {
			h := newHandle(tt.layer, tt.gen, tt.index)
			assert.Equal(t, tt.layer, handleLayer(h))
			assert.Equal(t, tt.gen, handleGen(h))
			assert.Equal(t, tt.index, handleIndex(h))
		})
	}
}

func TestStoreReusesSlots(t *testing.T) {
	var s store[int]

	a, genA := s.Append(1)
	b, _ := s.Append(2)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	assert.True(t, s.Delete(a, genA))
	assert.False(t, s.Delete(a, genA), "second delete of the same slot")
	assert.Nil(t, s.Get(a, genA))

	c, genC := s.Append(3)
	assert.Equal(t, a, c)
	assert.NotEqual(t, genA, genC)
	assert.Nil(t, s.Get(a, genA), "stale generation must not resolve")
	assert.Equal(t, 3, *s.Get(c, genC))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Slots())
}

func TestStoreGrowsAcrossBlocks(t *testing.T) {
	var s store[int]
	for i := range blockSize*2 + 5 {
		s.Append(i)
	}
	assert.Len(t, s.blocks, 3)
	assert.Equal(t, blockSize*2+5, s.Len())

	sum := 0
	for v := range s.Iter() {
		sum += *v
	}
	n := blockSize*2 + 5
	assert.Equal(t, n*(n-1)/2, sum)
}

func TestStoreResetKeepsBlocks(t *testing.T) {
	var s store[int]
	var gens []uint32
	for i := range blockSize + 6 {
		_, gen := s.Append(i)
		gens = append(gens, gen)
	}
	require.True(t, s.Delete(5, gens[5]))

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, blockSize+6, s.Slots())
	assert.Len(t, s.blocks, 2)
	assert.Nil(t, s.Get(0, gens[0]))
	for range s.Iter() {
		t.Fatal("reset store yields values")
	}

	index, gen := s.Append(42)
	assert.Equal(t, 0, index, "low slots are reused first")
	assert.NotEqual(t, gens[0], gen)
	assert.Equal(t, 42, *s.Get(index, gen))
	assert.Nil(t, s.Get(0, gens[0]))
}
