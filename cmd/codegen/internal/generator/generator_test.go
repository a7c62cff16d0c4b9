package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-craft/anvil/cmd/codegen/internal/schema"
)

func TestDefaultProps(t *testing.T) {
	tests := []struct {
		name  string
		block schema.Block
		want  []propTmpl
	}{
		{
			name:  "stateless",
			block: schema.Block{Name: "stone", MinStateID: 1, MaxStateID: 1, DefaultState: 1},
			want:  nil,
		},
		{
			name: "single bool axis",
			block: schema.Block{
				Name: "grass_block", MinStateID: 8, MaxStateID: 9, DefaultState: 9,
				States: []schema.BlockState{{Name: "snowy", Type: "bool", NumValues: 2}},
			},
			want: []propTmpl{{Key: "snowy", Value: "false"}},
		},
		{
			name: "mixed radix, last axis fastest",
			block: schema.Block{
				Name: "oak_stairs", MinStateID: 1953, MaxStateID: 2032, DefaultState: 1964,
				States: []schema.BlockState{
					{Name: "facing", Type: "enum", NumValues: 4, Values: []string{"north", "south", "west", "east"}},
					{Name: "half", Type: "enum", NumValues: 2, Values: []string{"top", "bottom"}},
					{Name: "shape", Type: "enum", NumValues: 5, Values: []string{"straight", "inner_left", "inner_right", "outer_left", "outer_right"}},
					{Name: "waterlogged", Type: "bool", NumValues: 2},
				},
			},
			want: []propTmpl{
				{Key: "facing", Value: "north"},
				{Key: "half", Value: "bottom"},
				{Key: "shape", Value: "straight"},
				{Key: "waterlogged", Value: "false"},
			},
		},
		{
			name: "int axis with explicit values",
			block: schema.Block{
				Name: "snow", MinStateID: 3921, MaxStateID: 3928, DefaultState: 3921,
				States: []schema.BlockState{{Name: "layers", Type: "int", NumValues: 8, Values: []string{"1", "2", "3", "4", "5", "6", "7", "8"}}},
			},
			want: []propTmpl{{Key: "layers", Value: "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultProps(tt.block)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("prop %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

const blocksJSON = `[
  {"id": 0, "name": "air", "displayName": "Air", "transparent": true, "emitLight": 0, "filterLight": 0, "boundingBox": "empty", "minStateId": 0, "maxStateId": 0, "defaultState": 0},
  {"id": 8, "name": "grass_block", "displayName": "Grass Block", "transparent": false, "emitLight": 0, "filterLight": 15, "boundingBox": "block", "minStateId": 8, "maxStateId": 9, "defaultState": 9, "states": [{"name": "snowy", "type": "bool", "num_values": 2}]}
]`

func TestRun(t *testing.T) {
	schemeDir := filepath.Join(t.TempDir(), "pc-1.15.2")
	if err := os.MkdirAll(schemeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(schemeDir, "blocks.json"), []byte(blocksJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := t.TempDir()

	err := Run(Config{
		SchemeDir: schemeDir,
		OutDir:    outDir,
		Package:   "gamedata",
		Version:   filepath.Base(schemeDir),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "blocks.go"))
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	got := string(raw)

	for _, want := range []string{
		"// Code generated by codegen. DO NOT EDIT.",
		"// Source: minecraft-data pc-1.15.2 blocks.json",
		"package gamedata",
		`import "github.com/go-theft-craft/anvil/pkg/world"`,
		"\t{Name: \"air\", DisplayName: \"Air\", Transparent: true},\n",
		"\t{Name: \"grass_block\", DisplayName: \"Grass Block\", FilterLight: 15, Props: []world.Property{world.Prop(\"snowy\", \"false\")}},\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated file missing %q\n%s", want, got)
		}
	}
}

func TestRunMissingScheme(t *testing.T) {
	err := Run(Config{
		SchemeDir: filepath.Join(t.TempDir(), "missing"),
		OutDir:    t.TempDir(),
		Package:   "gamedata",
		Version:   "missing",
	})
	if err == nil {
		t.Fatal("expected error for missing scheme directory")
	}
}
