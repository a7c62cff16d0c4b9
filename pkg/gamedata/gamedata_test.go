package gamedata_test

import (
	"testing"

	"github.com/go-theft-craft/anvil/pkg/gamedata"
	"github.com/go-theft-craft/anvil/pkg/world"
)

func TestByName(t *testing.T) {
	stone, ok := gamedata.ByName("stone")
	if !ok {
		t.Fatal("expected to find block 'stone'")
	}
	if stone.DisplayName != "Stone" {
		t.Errorf("expected display name 'Stone', got %q", stone.DisplayName)
	}
	if stone.Transparent {
		t.Error("expected stone to be opaque")
	}
	if stone.FilterLight != 15 {
		t.Errorf("expected filter light 15, got %d", stone.FilterLight)
	}
	if len(stone.Props) != 0 {
		t.Errorf("expected stone to have no default state, got %v", stone.Props)
	}
}

func TestByName_Prefixed(t *testing.T) {
	grass, ok := gamedata.ByName("minecraft:grass_block")
	if !ok {
		t.Fatal("expected to find block 'minecraft:grass_block'")
	}
	if grass.Name != "grass_block" {
		t.Errorf("expected name 'grass_block', got %q", grass.Name)
	}
	if len(grass.Props) != 1 || grass.Props[0].Key != "snowy" || grass.Props[0].Value != "false" {
		t.Errorf("expected default state snowy=false, got %v", grass.Props)
	}
}

func TestByName_NotFound(t *testing.T) {
	if _, ok := gamedata.ByName("nonexistent_block"); ok {
		t.Error("expected not found for non-existent block name")
	}
	// Only the minecraft namespace is catalogued.
	if _, ok := gamedata.ByName("mymod:stone"); ok {
		t.Error("expected not found for foreign namespace")
	}
}

func TestBlocks_All(t *testing.T) {
	all := gamedata.Blocks()
	if len(all) == 0 {
		t.Fatal("expected non-empty block list")
	}
	if len(all) < 100 {
		t.Errorf("expected at least 100 blocks, got %d", len(all))
	}
	if all[0].Name != "air" {
		t.Errorf("expected registry to start with air, got %q", all[0].Name)
	}

	seen := make(map[string]bool, len(all))
	for _, b := range all {
		if b.Name == "" || b.DisplayName == "" {
			t.Fatalf("incomplete catalog entry %+v", b)
		}
		if seen[b.Name] {
			t.Fatalf("duplicate catalog entry %q", b.Name)
		}
		seen[b.Name] = true
	}
}

func TestBlock_DefaultState(t *testing.T) {
	log, ok := gamedata.Block("oak_log")
	if !ok {
		t.Fatal("expected to find block 'oak_log'")
	}
	want := world.NewBlock("minecraft", "oak_log", world.Prop("axis", "y"))
	if !log.Equal(want) {
		t.Errorf("expected %v, got %v", want, log)
	}

	chest, ok := gamedata.Block("minecraft:chest")
	if !ok {
		t.Fatal("expected to find block 'minecraft:chest'")
	}
	if len(chest.Properties) != 3 {
		t.Errorf("expected 3 default properties for chest, got %v", chest.Properties)
	}
}

func TestBlock_Air(t *testing.T) {
	air, ok := gamedata.Block("air")
	if !ok {
		t.Fatal("expected to find block 'air'")
	}
	if !air.IsAir() {
		t.Errorf("expected canonical air, got %v", air)
	}
}

func TestBlock_NotFound(t *testing.T) {
	if _, ok := gamedata.Block("nonexistent_block"); ok {
		t.Error("expected not found for non-existent block name")
	}
}
