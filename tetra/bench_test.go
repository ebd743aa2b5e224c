package tetra_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/tetra/scene"
	"github.com/plus3/tetra/tetra"
)

func BenchmarkCollisionPiece(b *testing.B) {
	sc := scene.New()
	board := tetra.NewBoard(sc, 10, 20, tetra.V(0, 0))
	for y := 0; y < 10; y++ {
		put(board, sc, red, tetra.V(y%10, y))
	}
	p := tetra.NewPiece(sc, tetra.V(4, 10), tetra.ShapeT, blue, board.Playable(), true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.CollisionPiece(p, true)
	}
}

func BenchmarkCascade(b *testing.B) {
	sc := scene.New()
	board := tetra.NewBoard(sc, 10, 20, tetra.V(0, 0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for _, y := range []int{0, 3, 4, 9} {
			fillRow(board, sc, y)
		}
		for y := 0; y < 12; y++ {
			put(board, sc, blue, tetra.V((y*3)%10, y))
		}
		b.StartTimer()

		tetra.Cascade(board, board.FullLines())
	}
}

func BenchmarkSessionTick(b *testing.B) {
	s, err := tetra.NewSession(tetra.DefaultConfig(), tetra.Options{
		Renderer: scene.New(),
		Dealer:   tetra.NewUniformDealer(rand.New(rand.NewPCG(1, 1))),
	})
	if err != nil {
		b.Fatal(err)
	}
	s.Start(context.Background())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if s.State() == tetra.StatePlaying {
			s.OnInput(tetra.InputDown)
		}
		s.Tick(16 * time.Millisecond)
	}
}
