package anvil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tnze/go-mc/nbt"
	"github.com/Tnze/go-mc/save/region"
	"github.com/klauspost/compress/zlib"

	"github.com/go-theft-craft/anvil/pkg/world"
)

// ErrCompression marks a chunk record compressed with a scheme other than
// zlib, the only one this package targets.
var ErrCompression = errors.New("unsupported compression scheme")

// chunkTag mirrors the 1.15.2 chunk layout for decoding. Fields the writer
// emits but the model does not carry (Status, isLightOn) are ignored.
type chunkTag struct {
	DataVersion int32 `nbt:"DataVersion"`
	Level       struct {
		XPos     int32        `nbt:"xPos"`
		ZPos     int32        `nbt:"zPos"`
		Sections []sectionTag `nbt:"Sections"`
	} `nbt:"Level"`
}

type sectionTag struct {
	Y           int8         `nbt:"Y"`
	Palette     []paletteTag `nbt:"Palette"`
	BlockStates []int64      `nbt:"BlockStates"`
}

type paletteTag struct {
	Name       string            `nbt:"Name"`
	Properties map[string]string `nbt:"Properties"`
}

// Load reads a region file back into memory. Region coordinates come from
// the file name, which must follow the r.<x>.<z>.mca convention.
func Load(path string) (*world.Region, error) {
	x, z, err := regionCoords(filepath.Base(path))
	if err != nil {
		return nil, err
	}

	rf, err := region.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open region file: %w", err)
	}
	defer rf.Close()

	r := world.NewRegion(x, z)
	for cz := 0; cz < 32; cz++ {
		for cx := 0; cx < 32; cx++ {
			if !rf.ExistSector(cx, cz) {
				continue
			}
			data, err := rf.ReadSector(cx, cz)
			if err != nil {
				return nil, fmt.Errorf("read chunk (%d,%d): %w", cx, cz, err)
			}
			c, err := DecodeChunk(data)
			if err != nil {
				return nil, fmt.Errorf("decode chunk (%d,%d): %w", cx, cz, err)
			}
			if err := r.AddChunk(c); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func regionCoords(name string) (x, z int, err error) {
	if _, err := fmt.Sscanf(name, "r.%d.%d.mca", &x, &z); err != nil {
		return 0, 0, fmt.Errorf("region file name %q: want r.<x>.<z>.mca", name)
	}
	return x, z, nil
}

// DecodeChunk parses one chunk record as stored in a region file: a
// compression scheme byte followed by the compressed NBT payload.
func DecodeChunk(record []byte) (*world.Chunk, error) {
	if len(record) < 2 {
		return nil, fmt.Errorf("chunk record too short (%d bytes)", len(record))
	}
	if record[0] != compressionZlib {
		return nil, fmt.Errorf("scheme %d: %w", record[0], ErrCompression)
	}

	zr, err := zlib.NewReader(bytes.NewReader(record[1:]))
	if err != nil {
		return nil, fmt.Errorf("open chunk payload: %w", err)
	}
	defer zr.Close()
	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress chunk payload: %w", err)
	}

	var tag chunkTag
	if err := nbt.Unmarshal(payload, &tag); err != nil {
		return nil, fmt.Errorf("decode chunk payload: %w", err)
	}
	if tag.DataVersion != world.DataVersion {
		return nil, fmt.Errorf("data version %d: want %d", tag.DataVersion, world.DataVersion)
	}

	c := world.NewChunk(int(tag.Level.XPos), int(tag.Level.ZPos))
	for _, sec := range tag.Level.Sections {
		if err := decodeSection(c, sec); err != nil {
			return nil, fmt.Errorf("section %d: %w", sec.Y, err)
		}
	}
	return c, nil
}

// decodeSection unpacks one palette-indexed section into explicit blocks.
// Air slots stay implicit, so an all-air section decodes to nothing, which
// is also what EncodeChunk emits for one.
func decodeSection(c *world.Chunk, sec sectionTag) error {
	if sec.Y < 0 || sec.Y > 15 {
		return fmt.Errorf("index %d: %w", sec.Y, world.ErrOutOfRange)
	}
	if len(sec.Palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	// 4096 entries at w bits always fill 64*w words, so the entry width
	// can be read straight off the array length.
	if len(sec.BlockStates) == 0 || len(sec.BlockStates)%64 != 0 {
		return fmt.Errorf("block states length %d: not a whole entry width", len(sec.BlockStates))
	}

	palette := make([]world.Block, len(sec.Palette))
	for i, p := range sec.Palette {
		palette[i] = paletteBlock(p)
	}

	bitsPerBlock := len(sec.BlockStates) / 64
	mask := uint64(1)<<bitsPerBlock - 1

	bitPos := 0
	for i := 0; i < world.SectionBlocks; i++ {
		word, off := bitPos>>6, bitPos&63
		idx := uint64(sec.BlockStates[word]) >> off
		if off+bitsPerBlock > 64 {
			idx |= uint64(sec.BlockStates[word+1]) << (64 - off)
		}
		idx &= mask
		bitPos += bitsPerBlock

		if int(idx) >= len(palette) {
			return fmt.Errorf("slot %d: palette index %d out of range", i, idx)
		}
		b := palette[idx]
		if b.IsAir() {
			continue
		}
		if err := c.SetBlock(b, i&0xF, int(sec.Y)<<4|i>>8, i>>4&0xF); err != nil {
			return err
		}
	}
	return nil
}

// paletteBlock rebuilds a Block from its palette entry. NBT compounds do
// not preserve key order, so properties come back in lexical order, the
// form the game itself writes.
func paletteBlock(p paletteTag) world.Block {
	ns, id := "minecraft", p.Name
	if i := strings.IndexByte(p.Name, ':'); i >= 0 {
		ns, id = p.Name[:i], p.Name[i+1:]
	}
	if len(p.Properties) == 0 {
		return world.NewBlock(ns, id)
	}

	keys := make([]string, 0, len(p.Properties))
	for k := range p.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]world.Property, len(keys))
	for i, k := range keys {
		props[i] = world.Prop(k, p.Properties[k])
	}
	return world.NewBlock(ns, id, props...)
}
