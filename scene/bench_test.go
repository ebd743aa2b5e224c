package scene_test

import (
	"testing"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

func BenchmarkAddRemove(b *testing.B) {
	s := scene.New()
	for i := 0; i < b.N; i++ {
		h := s.AddCell(tetra.V(i%10, i%20), red, tetra.FormBlock, true)
		s.Remove(h)
	}
}

func BenchmarkSetPosition(b *testing.B) {
	s := scene.New()
	h := s.AddCell(tetra.V(0, 0), red, tetra.FormBlock, true)
	for i := 0; i < b.N; i++ {
		s.SetPosition(h, tetra.V(i%10, i%20))
	}
}

func BenchmarkVisible(b *testing.B) {
	s := scene.New()
	for x := 0; x < 10; x++ {
		for y := 0; y < 20; y++ {
			s.AddCell(tetra.V(x, y), red, tetra.FormBackdrop, true)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range s.Visible() {
		}
	}
}
