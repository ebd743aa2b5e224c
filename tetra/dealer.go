package tetra

import "math/rand/v2"

// Deal describes the next piece to create.
type Deal struct {
	Shape   ShapeKind
	Texture TextureID
	Column  int
}

// Dealer chooses upcoming pieces. columns is the number of valid spawn
// columns; the returned Column must lie in [0, columns).
type Dealer interface {
	Deal(columns int) Deal
}

// UniformDealer picks shape, texture and column independently and
// uniformly.
type UniformDealer struct {
	rng *rand.Rand
}

func NewUniformDealer(rng *rand.Rand) *UniformDealer {
	return &UniformDealer{rng: rng}
}

func (d *UniformDealer) Deal(columns int) Deal {
	return Deal{
		Shape:   Shapes[d.rng.IntN(len(Shapes))],
		Texture: Textures[d.rng.IntN(len(Textures))],
		Column:  d.rng.IntN(max(columns, 1)),
	}
}

// BagDealer deals every shape once per shuffled bag of seven.
type BagDealer struct {
	rng *rand.Rand
	bag []ShapeKind
}

func NewBagDealer(rng *rand.Rand) *BagDealer {
	return &BagDealer{rng: rng}
}

func (d *BagDealer) Deal(columns int) Deal {
	if len(d.bag) == 0 {
		d.bag = append(d.bag[:0], Shapes[:]...)
		d.rng.Shuffle(len(d.bag), func(i, j int) {
			d.bag[i], d.bag[j] = d.bag[j], d.bag[i]
		})
	}
	shape := d.bag[0]
	d.bag = d.bag[1:]
	return Deal{
		Shape:   shape,
		Texture: Textures[d.rng.IntN(len(Textures))],
		Column:  d.rng.IntN(max(columns, 1)),
	}
}

// SequenceDealer replays a fixed list of deals, wrapping around. Columns
// beyond the valid range are clamped.
type SequenceDealer struct {
	deals []Deal
	next  int
}

func NewSequenceDealer(deals ...Deal) *SequenceDealer {
	return &SequenceDealer{deals: deals}
}

func (d *SequenceDealer) Deal(columns int) Deal {
	if len(d.deals) == 0 {
		return Deal{}
	}
	deal := d.deals[d.next%len(d.deals)]
	d.next++
	deal.Column = min(max(deal.Column, 0), max(columns-1, 0))
	return deal
}
