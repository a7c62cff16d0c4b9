package gen

import "github.com/go-theft-craft/anvil/pkg/world"

// Layer is one horizontal slice of a flat world, Height blocks thick.
type Layer struct {
	Block  world.Block
	Height int
}

// Flat repeats the same layer stack in every column, bottom up from y=0.
type Flat struct {
	layers []Layer
}

func NewFlat(layers ...Layer) *Flat {
	return &Flat{layers: layers}
}

// ClassicFlat is the standard superflat stack: bedrock, two stone, dirt,
// grass on top. Surface at y=4.
func ClassicFlat() *Flat {
	return NewFlat(
		Layer{Block: world.NewBlock("minecraft", "bedrock"), Height: 1},
		Layer{Block: world.NewBlock("minecraft", "stone"), Height: 2},
		Layer{Block: world.NewBlock("minecraft", "dirt"), Height: 1},
		Layer{Block: world.NewBlock("minecraft", "grass_block", world.Prop("snowy", "false")), Height: 1},
	)
}

func (g *Flat) Generate(c *world.Chunk) error {
	y := 0
	for _, l := range g.layers {
		for i := 0; i < l.Height; i++ {
			for z := 0; z < 16; z++ {
				for x := 0; x < 16; x++ {
					if err := c.SetBlock(l.Block, x, y, z); err != nil {
						return err
					}
				}
			}
			y++
		}
	}
	return nil
}

// HeightAt reports the top occupied y of the layer stack, -1 when empty.
func (g *Flat) HeightAt(x, z int) int {
	h := -1
	for _, l := range g.layers {
		h += l.Height
	}
	return h
}
