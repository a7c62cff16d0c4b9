package gamedata

import (
	"strings"

	"github.com/go-theft-craft/anvil/pkg/world"
)

// BlockInfo describes one block of the target data version. Props holds the
// default block state, already in the serialized property order.
type BlockInfo struct {
	Name        string
	DisplayName string
	Transparent bool
	EmitLight   int
	FilterLight int
	Props       []world.Property
}

var blockIndex = buildIndex()

func buildIndex() map[string]int {
	idx := make(map[string]int, len(blocks))
	for i, b := range blocks {
		idx[b.Name] = i
	}
	return idx
}

// Blocks returns the full catalog in registry order.
func Blocks() []BlockInfo {
	out := make([]BlockInfo, len(blocks))
	copy(out, blocks)
	return out
}

// ByName looks a block up by name, with or without the "minecraft:" prefix.
func ByName(name string) (BlockInfo, bool) {
	i, ok := blockIndex[strings.TrimPrefix(name, "minecraft:")]
	if !ok {
		return BlockInfo{}, false
	}
	return blocks[i], true
}

// Block resolves a name to a world.Block carrying the default block state.
func Block(name string) (world.Block, bool) {
	info, ok := ByName(name)
	if !ok {
		return world.Block{}, false
	}
	return world.NewBlock("minecraft", info.Name, info.Props...), true
}
