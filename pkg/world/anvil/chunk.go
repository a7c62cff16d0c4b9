package anvil

import (
	"bytes"
	"fmt"

	"github.com/go-theft-craft/anvil/pkg/world"
	"github.com/go-theft-craft/anvil/pkg/world/nbt"
)

// EncodeChunk renders a chunk into its uncompressed NBT payload:
// {DataVersion, Level: {xPos, zPos, Status, isLightOn, Sections}}, the
// 1.15.2 chunk layout. Sections whose palette is exactly [air] contribute
// nothing and are skipped.
func EncodeChunk(c *world.Chunk) ([]byte, error) {
	type rendered struct {
		y       int
		palette []world.Block
		states  []uint64
	}
	var sections []rendered
	for y := 0; y < 16; y++ {
		sec, err := c.Section(y)
		if err != nil {
			return nil, err
		}
		if sec == nil {
			continue
		}
		palette := sec.Palette()
		if len(palette) == 1 && palette[0].IsAir() {
			continue
		}
		sections = append(sections, rendered{y: y, palette: palette, states: sec.BlockStates(palette)})
	}

	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)

	w.BeginCompound("")
	w.WriteInt("DataVersion", world.DataVersion)
	w.BeginCompound("Level")
	w.WriteInt("xPos", int32(c.X))
	w.WriteInt("zPos", int32(c.Z))
	w.WriteString("Status", "full")
	w.WriteTagByte("isLightOn", 1)

	// List elements are bare compound payloads: no tag header, closed by
	// the End tag that EndCompound emits.
	w.BeginList("Sections", nbt.TagCompound, int32(len(sections)))
	for _, sec := range sections {
		w.WriteTagByte("Y", byte(sec.y))

		w.BeginList("Palette", nbt.TagCompound, int32(len(sec.palette)))
		for _, b := range sec.palette {
			w.WriteString("Name", b.Name())
			if len(b.Properties) > 0 {
				w.BeginCompound("Properties")
				for _, p := range b.Properties {
					w.WriteString(p.Key, p.Value)
				}
				w.EndCompound()
			}
			w.EndCompound()
		}

		states := make([]int64, len(sec.states))
		for i, word := range sec.states {
			states[i] = int64(word)
		}
		w.WriteLongArray("BlockStates", states)
		w.EndCompound()
	}

	w.EndCompound() // Level
	w.EndCompound() // root

	if err := w.Err(); err != nil {
		return nil, fmt.Errorf("encode chunk (%d,%d): %w", c.X, c.Z, err)
	}
	return buf.Bytes(), nil
}
