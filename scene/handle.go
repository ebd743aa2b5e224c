package scene

import "github.com/plus3/tetra/tetra"

// Handles pack the layer (upper 8 bits), the slot generation (next 24 bits)
// and the slot index (lower 32 bits). The generation changes every time a
// slot is freed, so a handle kept after Remove never resolves to the cell
// that reused its slot.
const (
	layerShift = 56
	genShift   = 32
	genMask    = 1<<24 - 1
)

func newHandle(layer uint32, gen uint32, index uint32) tetra.Handle {
	return tetra.Handle(uint64(layer)<<layerShift | uint64(gen&genMask)<<genShift | uint64(index))
}

func handleLayer(h tetra.Handle) uint32 {
	return uint32(uint64(h) >> layerShift)
}

func handleGen(h tetra.Handle) uint32 {
	return uint32(uint64(h)>>genShift) & genMask
}

func handleIndex(h tetra.Handle) uint32 {
	return uint32(uint64(h) & 0xFFFFFFFF)
}
