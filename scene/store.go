package scene

import "iter"

const blockSize = 64

// store keeps values in fixed size blocks so pointers stay valid while it
// grows. Freed slots are reused; each slot carries a generation that is
// bumped when the slot is freed.
type store[T any] struct {
	blocks    [][blockSize]T
	filled    [][blockSize]bool
	gens      [][blockSize]uint32
	freeSlots []int
	nextIndex int
	live      int
}

// Append stores item and returns its slot and the slot generation.
func (s *store[T]) Append(item T) (int, uint32) {
	var index int
	if n := len(s.freeSlots); n > 0 {
		index = s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
		if index/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, [blockSize]T{})
			s.filled = append(s.filled, [blockSize]bool{})
			s.gens = append(s.gens, [blockSize]uint32{})
		}
	}

	blockIdx, slotIdx := index/blockSize, index%blockSize
	s.blocks[blockIdx][slotIdx] = item
	s.filled[blockIdx][slotIdx] = true
	s.live++
	return index, s.gens[blockIdx][slotIdx]
}

// Get returns the value in a filled slot whose generation matches.
func (s *store[T]) Get(index int, gen uint32) *T {
	if index < 0 || index >= s.nextIndex {
		return nil
	}
	blockIdx, slotIdx := index/blockSize, index%blockSize
	if !s.filled[blockIdx][slotIdx] || s.gens[blockIdx][slotIdx] != gen {
		return nil
	}
	return &s.blocks[blockIdx][slotIdx]
}

// Delete frees a slot. It reports whether the slot was live.
func (s *store[T]) Delete(index int, gen uint32) bool {
	if s.Get(index, gen) == nil {
		return false
	}
	blockIdx, slotIdx := index/blockSize, index%blockSize
	var zero T
	s.blocks[blockIdx][slotIdx] = zero
	s.filled[blockIdx][slotIdx] = false
	s.gens[blockIdx][slotIdx] = (s.gens[blockIdx][slotIdx] + 1) & genMask
	s.freeSlots = append(s.freeSlots, index)
	s.live--
	return true
}

func (s *store[T]) Len() int { return s.live }

// Slots is the number of slots ever allocated, live or free.
func (s *store[T]) Slots() int { return s.nextIndex }

// Iter yields pointers to live values in slot order.
func (s *store[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < s.nextIndex; i++ {
			blockIdx, slotIdx := i/blockSize, i%blockSize
			if !s.filled[blockIdx][slotIdx] {
				continue
			}
			if !yield(&s.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}

// Reset frees every slot but keeps the blocks allocated. Live slots get a
// new generation, so values handed out before Reset stay unreachable.
func (s *store[T]) Reset() {
	var zero T
	s.freeSlots = s.freeSlots[:0]
	for index := s.nextIndex - 1; index >= 0; index-- {
		blockIdx, slotIdx := index/blockSize, index%blockSize
		if s.filled[blockIdx][slotIdx] {
			s.filled[blockIdx][slotIdx] = false
			s.gens[blockIdx][slotIdx] = (s.gens[blockIdx][slotIdx] + 1) & genMask
		}
		s.blocks[blockIdx][slotIdx] = zero
		s.freeSlots = append(s.freeSlots, index)
	}
	s.live = 0
}
