package world

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrOutOfRange marks a coordinate outside the valid bounds of the
// addressed level (section, chunk, or region).
var ErrOutOfRange = errors.New("coordinates out of range")

// SectionBlocks is the number of voxels in one section.
const SectionBlocks = 16 * 16 * 16

// Section is a 16×16×16 voxel grid within a chunk. Slots are addressed by
// local coordinates via index = y*256 + z*16 + x; an unset slot reads as air.
type Section struct {
	y      int
	blocks [SectionBlocks]*Block
}

// NewSection creates an empty section at the given y index (0..15).
func NewSection(y int) *Section {
	return &Section{y: y}
}

// Y returns the section's y index within its chunk.
func (s *Section) Y() int {
	return s.y
}

// SetBlock stores a block at local coordinates, each in [0,16).
func (s *Section) SetBlock(b Block, x, y, z int) error {
	if x < 0 || x > 15 || y < 0 || y > 15 || z < 0 || z > 15 {
		return fmt.Errorf("section block (%d,%d,%d): %w", x, y, z, ErrOutOfRange)
	}
	s.blocks[y*256+z*16+x] = &b
	return nil
}

// GetBlock returns the block at local coordinates, or air for unset slots.
func (s *Section) GetBlock(x, y, z int) (Block, error) {
	if x < 0 || x > 15 || y < 0 || y > 15 || z < 0 || z > 15 {
		return Block{}, fmt.Errorf("section block (%d,%d,%d): %w", x, y, z, ErrOutOfRange)
	}
	if b := s.blocks[y*256+z*16+x]; b != nil {
		return *b, nil
	}
	return Air(), nil
}

// Palette returns the deduplicated blocks of this section. If any slot is
// unset, air comes first; the rest follow in first-occurrence order of a scan
// over increasing slot index. The order fixes the index assignment for
// BlockStates, so it must stay stable.
func (s *Section) Palette() []Block {
	var palette []Block
	at := make(map[string]int)

	for _, b := range s.blocks {
		if b == nil {
			air := Air()
			palette = append(palette, air)
			at[air.key()] = 0
			break
		}
	}

	for _, b := range s.blocks {
		if b == nil {
			continue
		}
		k := b.key()
		if _, ok := at[k]; ok {
			continue
		}
		at[k] = len(palette)
		palette = append(palette, *b)
	}
	return palette
}

// BlockStates packs the per-slot palette indices into 64-bit words,
// least-significant-bit first, with entries split across word boundaries
// (the unpadded layout; later data versions pad instead and must not be
// imitated here). Entry width is max(4, ceil(log2(len(palette)))) bits.
// Passing nil recomputes the palette.
func (s *Section) BlockStates(palette []Block) []uint64 {
	if palette == nil {
		palette = s.Palette()
	}

	at := make(map[string]int, len(palette))
	for i, b := range palette {
		k := b.key()
		if _, ok := at[k]; !ok {
			at[k] = i
		}
	}
	airIndex := at[Air().key()]

	bitsPerBlock := paletteBits(len(palette))
	words := make([]uint64, (SectionBlocks*bitsPerBlock+63)/64)

	bitPos := 0
	for _, b := range s.blocks {
		idx := airIndex
		if b != nil {
			idx = at[b.key()]
		}
		word, off := bitPos>>6, bitPos&63
		words[word] |= uint64(idx) << off
		if off+bitsPerBlock > 64 {
			words[word+1] |= uint64(idx) >> (64 - off)
		}
		bitPos += bitsPerBlock
	}
	return words
}

// paletteBits returns the packed entry width for a palette of n blocks:
// ceil(log2(n)) with a floor of 4.
func paletteBits(n int) int {
	if n <= 16 {
		return 4
	}
	return bits.Len(uint(n - 1))
}
