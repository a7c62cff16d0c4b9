// Package gen produces starter terrain for a region before build plan
// steps edit it. Generators are deterministic for a given seed.
package gen

import (
	"fmt"

	"github.com/go-theft-craft/anvil/pkg/world"
)

// Generator fills a single chunk column with terrain.
type Generator interface {
	Generate(c *world.Chunk) error
}

// FillRegion runs the generator over every chunk slot of the region.
func FillRegion(r *world.Region, g Generator) error {
	for cz := r.Z * 32; cz < (r.Z+1)*32; cz++ {
		for cx := r.X * 32; cx < (r.X+1)*32; cx++ {
			c := world.NewChunk(cx, cz)
			if err := g.Generate(c); err != nil {
				return fmt.Errorf("chunk (%d,%d): %w", cx, cz, err)
			}
			if err := r.AddChunk(c); err != nil {
				return err
			}
		}
	}
	return nil
}
