package gen

import (
	"github.com/aquilax/go-perlin"

	"github.com/go-theft-craft/anvil/pkg/world"
)

const (
	seaLevel   = 62
	baseHeight = 64
	amplitude  = 24
)

// Hills generates rolling grassland with lakes below sea level and sandy
// shores. Two noise octave bands: a broad one shapes the terrain, a tight
// one adds surface detail.
type Hills struct {
	terrain *perlin.Perlin
	detail  *perlin.Perlin

	bedrock world.Block
	stone   world.Block
	dirt    world.Block
	grass   world.Block
	sand    world.Block
	water   world.Block
}

func NewHills(seed int64) *Hills {
	return &Hills{
		terrain: perlin.NewPerlin(2, 2, 3, seed),
		detail:  perlin.NewPerlin(2, 2, 2, seed+1),
		bedrock: world.NewBlock("minecraft", "bedrock"),
		stone:   world.NewBlock("minecraft", "stone"),
		dirt:    world.NewBlock("minecraft", "dirt"),
		grass:   world.NewBlock("minecraft", "grass_block", world.Prop("snowy", "false")),
		sand:    world.NewBlock("minecraft", "sand"),
		water:   world.NewBlock("minecraft", "water", world.Prop("level", "0")),
	}
}

// HeightAt returns the surface height at a world block coordinate,
// clamped to 4..250.
func (g *Hills) HeightAt(x, z int) int {
	base := g.terrain.Noise2D(float64(x)/128, float64(z)/128)
	detail := g.detail.Noise2D(float64(x)/32, float64(z)/32)

	h := baseHeight + int(base*amplitude+detail*4)
	if h < 4 {
		h = 4
	}
	if h > 250 {
		h = 250
	}
	return h
}

func (g *Hills) Generate(c *world.Chunk) error {
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			if err := g.fillColumn(c, x, z); err != nil {
				return err
			}
		}
	}
	return nil
}

// fillColumn builds one column: bedrock floor, stone body, a three block
// dirt cap, then grass, sand on shores, or dirt under water, and water up
// to sea level.
func (g *Hills) fillColumn(c *world.Chunk, x, z int) error {
	height := g.HeightAt(c.X*16+x, c.Z*16+z)

	if err := c.SetBlock(g.bedrock, x, 0, z); err != nil {
		return err
	}
	for y := 1; y <= height-4; y++ {
		if err := c.SetBlock(g.stone, x, y, z); err != nil {
			return err
		}
	}
	for y := height - 3; y < height; y++ {
		if err := c.SetBlock(g.dirt, x, y, z); err != nil {
			return err
		}
	}

	top := g.grass
	switch {
	case height < seaLevel:
		top = g.dirt
	case height <= seaLevel+1:
		top = g.sand
	}
	if err := c.SetBlock(top, x, height, z); err != nil {
		return err
	}

	for y := height + 1; y <= seaLevel; y++ {
		if err := c.SetBlock(g.water, x, y, z); err != nil {
			return err
		}
	}
	return nil
}
