// Package scene is a retained cell store that implements tetra.Renderer.
//
// Cells live in one block storage per Form, so iteration yields backdrop
// cells first and markers last. A position index answers which cells cover
// a grid coordinate.
package scene

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/plus3/tetra/tetra"
)

// Cell is the retained state of one drawable cell.
type Cell struct {
	Handle  tetra.Handle
	Pos     tetra.Vec
	Paint   tetra.Paint
	Form    tetra.Form
	Visible bool
}

// Stats counts cells per layer.
type Stats struct {
	Cells   int
	Visible int
	Layers  [tetra.FormCount]LayerStats
	Indexed int
}

type LayerStats struct {
	Cells   int
	Visible int
	Slots   int
}

// Scene stores cells added through the tetra.Renderer interface.
type Scene struct {
	layers  [tetra.FormCount]store[Cell]
	index   *intmap.Map[uint64, []tetra.Handle]
	visible int
	version uint64
}

var _ tetra.Renderer = (*Scene)(nil)

func New() *Scene {
	return &Scene{
		index: intmap.New[uint64, []tetra.Handle](256),
	}
}

func posKey(p tetra.Vec) uint64 {
	return uint64(uint32(int32(p.X)))<<32 | uint64(uint32(int32(p.Y)))
}

func (s *Scene) lookup(h tetra.Handle) *Cell {
	layer := handleLayer(h)
	if layer >= uint32(tetra.FormCount) {
		return nil
	}
	return s.layers[layer].Get(int(handleIndex(h)), handleGen(h))
}

func (s *Scene) AddCell(pos tetra.Vec, paint tetra.Paint, form tetra.Form, visible bool) tetra.Handle {
	if form >= tetra.FormCount {
		panic("scene: unknown form " + form.String())
	}
	layer := &s.layers[form]
	index, gen := layer.Append(Cell{Pos: pos, Paint: paint, Form: form, Visible: visible})
	h := newHandle(uint32(form), gen, uint32(index))
	layer.Get(index, gen).Handle = h

	s.indexAdd(pos, h)
	if visible {
		s.visible++
	}
	s.version++
	return h
}

func (s *Scene) SetVisible(h tetra.Handle, visible bool) {
	cell := s.lookup(h)
	if cell == nil || cell.Visible == visible {
		return
	}
	cell.Visible = visible
	if visible {
		s.visible++
	} else {
		s.visible--
	}
	s.version++
}

func (s *Scene) SetPosition(h tetra.Handle, pos tetra.Vec) {
	cell := s.lookup(h)
	if cell == nil || cell.Pos == pos {
		return
	}
	s.indexDel(cell.Pos, h)
	cell.Pos = pos
	s.indexAdd(pos, h)
	s.version++
}

func (s *Scene) SetPaint(h tetra.Handle, paint tetra.Paint) {
	cell := s.lookup(h)
	if cell == nil {
		return
	}
	cell.Paint = paint
	s.version++
}

func (s *Scene) Remove(h tetra.Handle) {
	cell := s.lookup(h)
	if cell == nil {
		return
	}
	if cell.Visible {
		s.visible--
	}
	s.indexDel(cell.Pos, h)
	s.layers[handleLayer(h)].Delete(int(handleIndex(h)), handleGen(h))
	s.version++
}

func (s *Scene) indexAdd(pos tetra.Vec, h tetra.Handle) {
	key := posKey(pos)
	handles, _ := s.index.Get(key)
	s.index.Put(key, append(handles, h))
}

func (s *Scene) indexDel(pos tetra.Vec, h tetra.Handle) {
	key := posKey(pos)
	handles, ok := s.index.Get(key)
	if !ok {
		return
	}
	if i := slices.Index(handles, h); i >= 0 {
		handles = slices.Delete(handles, i, i+1)
	}
	if len(handles) == 0 {
		s.index.Del(key)
		return
	}
	s.index.Put(key, handles)
}

// Get returns a copy of the cell behind h.
func (s *Scene) Get(h tetra.Handle) (Cell, bool) {
	cell := s.lookup(h)
	if cell == nil {
		return Cell{}, false
	}
	return *cell, true
}

// At returns the cells at pos, lowest layer first.
func (s *Scene) At(pos tetra.Vec) []Cell {
	handles, ok := s.index.Get(posKey(pos))
	if !ok {
		return nil
	}
	cells := make([]Cell, 0, len(handles))
	for _, h := range handles {
		if cell := s.lookup(h); cell != nil {
			cells = append(cells, *cell)
		}
	}
	slices.SortStableFunc(cells, func(a, b Cell) int {
		return int(a.Form) - int(b.Form)
	})
	return cells
}

// All yields every cell in layer order.
func (s *Scene) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range s.layers {
			for cell := range s.layers[i].Iter() {
				if !yield(*cell) {
					return
				}
			}
		}
	}
}

// Visible yields visible cells in layer order, which is draw order.
func (s *Scene) Visible() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for cell := range s.All() {
			if cell.Visible && !yield(cell) {
				return
			}
		}
	}
}

func (s *Scene) Len() int {
	n := 0
	for i := range s.layers {
		n += s.layers[i].Len()
	}
	return n
}

// Version increases on every change. Frontends compare it to skip redraws.
func (s *Scene) Version() uint64 { return s.version }

func (s *Scene) Stats() Stats {
	stats := Stats{Visible: s.visible, Indexed: s.index.Len()}
	for i := range s.layers {
		layer := &s.layers[i]
		ls := LayerStats{Cells: layer.Len(), Slots: layer.Slots()}
		for cell := range layer.Iter() {
			if cell.Visible {
				ls.Visible++
			}
		}
		stats.Layers[i] = ls
		stats.Cells += ls.Cells
	}
	return stats
}

// Reset drops every cell so the scene can host a new session. Handles
// issued before Reset never resolve again.
func (s *Scene) Reset() {
	for i := range s.layers {
		s.layers[i].Reset()
	}
	s.index.Clear()
	s.visible = 0
	s.version++
}
