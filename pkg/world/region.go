package world

import (
	"errors"
	"fmt"
)

// ErrForeignChunk marks a chunk whose coordinates map to a different region.
var ErrForeignChunk = errors.New("chunk belongs to another region")

// RegionChunks is the number of chunk slots in one region.
const RegionChunks = 32 * 32

// Region is a 32×32 grid of chunks covering a 512×512×256 block area,
// identified by its region coordinates. Chunks are created lazily by
// SetBlock and Fill, or inserted explicitly with AddChunk.
type Region struct {
	X, Z   int
	chunks [RegionChunks]*Chunk
}

// NewRegion creates an empty region at the given region coordinates.
func NewRegion(x, z int) *Region {
	return &Region{X: x, Z: z}
}

// Inside reports whether the block coordinates fall within this region.
func (r *Region) Inside(x, y, z int) bool {
	return x>>9 == r.X && z>>9 == r.Z && y >= 0 && y <= 255
}

// ContainsChunk reports whether the chunk coordinates fall within this region.
func (r *Region) ContainsChunk(cx, cz int) bool {
	return cx>>5 == r.X && cz>>5 == r.Z
}

// GetChunk returns the chunk at the given chunk coordinates, or nil if the
// coordinates are outside the region or the chunk was never created.
func (r *Region) GetChunk(cx, cz int) *Chunk {
	if !r.ContainsChunk(cx, cz) {
		return nil
	}
	return r.chunks[chunkIndex(cx, cz)]
}

// AddChunk stores c at its computed slot, overwriting any prior occupant.
func (r *Region) AddChunk(c *Chunk) error {
	if !r.ContainsChunk(c.X, c.Z) {
		return fmt.Errorf("chunk (%d,%d) in region (%d,%d): %w", c.X, c.Z, r.X, r.Z, ErrForeignChunk)
	}
	r.chunks[chunkIndex(c.X, c.Z)] = c
	return nil
}

// SetBlock stores a block at world coordinates, creating the owning chunk
// and section on demand.
func (r *Region) SetBlock(b Block, x, y, z int) error {
	if !r.Inside(x, y, z) {
		return fmt.Errorf("block (%d,%d,%d) outside region (%d,%d): %w", x, y, z, r.X, r.Z, ErrOutOfRange)
	}
	cx, cz := x>>4, z>>4
	c := r.chunks[chunkIndex(cx, cz)]
	if c == nil {
		c = NewChunk(cx, cz)
		r.chunks[chunkIndex(cx, cz)] = c
	}
	return c.SetBlock(b, x&0xF, y, z&0xF)
}

// Fill writes b into every cell of the inclusive cuboid spanned by the two
// corners, which may be given in either order. With ignoreOutside false,
// both corners must lie inside the region or the call fails before any
// write; with ignoreOutside true, out-of-region cells are skipped silently.
func (r *Region) Fill(b Block, x1, y1, z1, x2, y2, z2 int, ignoreOutside bool) error {
	return r.FillFunc(func(int, int, int) Block { return b }, x1, y1, z1, x2, y2, z2, ignoreOutside)
}

// FillFunc is Fill with a per-cell generator: fn is invoked once per written
// cell, in visit order (y outermost, then z, then x).
func (r *Region) FillFunc(fn func(x, y, z int) Block, x1, y1, z1, x2, y2, z2 int, ignoreOutside bool) error {
	if !ignoreOutside {
		if !r.Inside(x1, y1, z1) {
			return fmt.Errorf("fill corner (%d,%d,%d) outside region (%d,%d): %w", x1, y1, z1, r.X, r.Z, ErrOutOfRange)
		}
		if !r.Inside(x2, y2, z2) {
			return fmt.Errorf("fill corner (%d,%d,%d) outside region (%d,%d): %w", x2, y2, z2, r.X, r.Z, ErrOutOfRange)
		}
	}

	sx, sy, sz := step(x1, x2), step(y1, y2), step(z1, z2)
	for y := y1; y != y2+sy; y += sy {
		for z := z1; z != z2+sz; z += sz {
			for x := x1; x != x2+sx; x += sx {
				if ignoreOutside && !r.Inside(x, y, z) {
					continue
				}
				if err := r.SetBlock(fn(x, y, z), x, y, z); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Chunks returns the chunk slots in file scan order, index = localZ*32 +
// localX. Absent chunks are nil. The returned slice is a copy; mutating it
// does not affect the region.
func (r *Region) Chunks() []*Chunk {
	out := r.chunks
	return out[:]
}

// chunkIndex maps chunk coordinates to a slot in the region grid.
func chunkIndex(cx, cz int) int {
	return (cz&31)*32 + (cx & 31)
}

func step(from, to int) int {
	if to < from {
		return -1
	}
	return 1
}
