package world

import "fmt"

// DataVersion is the game data-format revision chunks are written for:
// Java Edition 1.15.2, the last revision using unpadded block-state packing.
const DataVersion = 2230

// Chunk is a 16×16×256 column of up to 16 sections, identified by its
// chunk coordinates. Sections are created lazily on first write.
type Chunk struct {
	X, Z     int
	sections [16]*Section
}

// NewChunk creates an empty chunk at the given chunk coordinates.
func NewChunk(x, z int) *Chunk {
	return &Chunk{X: x, Z: z}
}

// Section returns the section at y index 0..15, or nil if it was never
// written to.
func (c *Chunk) Section(y int) (*Section, error) {
	if y < 0 || y > 15 {
		return nil, fmt.Errorf("section index %d: %w", y, ErrOutOfRange)
	}
	return c.sections[y], nil
}

// GetBlock returns the block at chunk-local coordinates (x,z in [0,16),
// y in [0,256)). ok is false when the owning section was never created,
// which is distinct from an explicit or implicit air slot.
func (c *Chunk) GetBlock(x, y, z int) (b Block, ok bool, err error) {
	if x < 0 || x > 15 || y < 0 || y > 255 || z < 0 || z > 15 {
		return Block{}, false, fmt.Errorf("chunk block (%d,%d,%d): %w", x, y, z, ErrOutOfRange)
	}
	s := c.sections[y>>4]
	if s == nil {
		return Block{}, false, nil
	}
	b, err = s.GetBlock(x, y&0xF, z)
	return b, err == nil, err
}

// SetBlock stores a block at chunk-local coordinates, creating the owning
// section on demand.
func (c *Chunk) SetBlock(b Block, x, y, z int) error {
	if x < 0 || x > 15 || y < 0 || y > 255 || z < 0 || z > 15 {
		return fmt.Errorf("chunk block (%d,%d,%d): %w", x, y, z, ErrOutOfRange)
	}
	sec := c.sections[y>>4]
	if sec == nil {
		sec = NewSection(y >> 4)
		c.sections[y>>4] = sec
	}
	return sec.SetBlock(b, x, y&0xF, z)
}
