package buildplan

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-craft/anvil/pkg/gamedata"
	"github.com/go-theft-craft/anvil/pkg/world"
	"github.com/go-theft-craft/anvil/pkg/world/gen"
)

// Plan describes one region and the build steps that populate it, in order.
// An optional base generates starter terrain before the first step runs.
type Plan struct {
	Region RegionSpec `yaml:"region"`
	Base   *BaseSpec  `yaml:"base,omitempty"`
	Steps  []Step     `yaml:"steps"`
}

type RegionSpec struct {
	X int `yaml:"x"`
	Z int `yaml:"z"`
}

// BaseSpec selects a terrain preset for the whole region. The flat preset
// takes an optional layer stack, hills takes a seed.
type BaseSpec struct {
	Preset string      `yaml:"preset"`
	Seed   int64       `yaml:"seed,omitempty"`
	Layers []LayerSpec `yaml:"layers,omitempty"`
}

// LayerSpec is one slice of a flat base, Height blocks thick.
type LayerSpec struct {
	Block  string `yaml:"block"`
	Height int    `yaml:"height"`
}

// Step carries exactly one operation.
type Step struct {
	Fill *FillSpec `yaml:"fill,omitempty"`
	Set  *SetSpec  `yaml:"set,omitempty"`
}

// FillSpec fills the inclusive cuboid between From and To. Coordinates are
// absolute block positions, [x, y, z].
type FillSpec struct {
	Block         string `yaml:"block"`
	From          []int  `yaml:"from"`
	To            []int  `yaml:"to"`
	IgnoreOutside bool   `yaml:"ignore_outside"`
}

// SetSpec places a single block at an absolute position.
type SetSpec struct {
	Block string `yaml:"block"`
	At    []int  `yaml:"at"`
}

func Load(path string) (Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	p, err := Parse(raw)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func Parse(raw []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, err
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (p Plan) Validate() error {
	if p.Base == nil && len(p.Steps) == 0 {
		return fmt.Errorf("plan needs a base or at least one step")
	}
	if p.Base != nil {
		if err := p.Base.validate(); err != nil {
			return fmt.Errorf("base: %w", err)
		}
	}
	for i, s := range p.Steps {
		switch {
		case s.Fill != nil && s.Set != nil:
			return fmt.Errorf("steps[%d]: fill and set are mutually exclusive", i)
		case s.Fill != nil:
			if s.Fill.Block == "" {
				return fmt.Errorf("steps[%d]: fill.block must not be empty", i)
			}
			if len(s.Fill.From) != 3 {
				return fmt.Errorf("steps[%d]: fill.from must have 3 coordinates", i)
			}
			if len(s.Fill.To) != 3 {
				return fmt.Errorf("steps[%d]: fill.to must have 3 coordinates", i)
			}
			if _, err := ResolveBlock(s.Fill.Block); err != nil {
				return fmt.Errorf("steps[%d]: %w", i, err)
			}
		case s.Set != nil:
			if s.Set.Block == "" {
				return fmt.Errorf("steps[%d]: set.block must not be empty", i)
			}
			if len(s.Set.At) != 3 {
				return fmt.Errorf("steps[%d]: set.at must have 3 coordinates", i)
			}
			if _, err := ResolveBlock(s.Set.Block); err != nil {
				return fmt.Errorf("steps[%d]: %w", i, err)
			}
		default:
			return fmt.Errorf("steps[%d]: needs fill or set", i)
		}
	}
	return nil
}

func (b BaseSpec) validate() error {
	switch b.Preset {
	case "flat":
		for i, l := range b.Layers {
			if l.Block == "" {
				return fmt.Errorf("layers[%d]: block must not be empty", i)
			}
			if l.Height < 1 {
				return fmt.Errorf("layers[%d]: height must be at least 1", i)
			}
			if _, err := ResolveBlock(l.Block); err != nil {
				return fmt.Errorf("layers[%d]: %w", i, err)
			}
		}
	case "hills":
		if len(b.Layers) > 0 {
			return fmt.Errorf("layers only apply to the flat preset")
		}
	case "":
		return fmt.Errorf("preset must be flat or hills")
	default:
		return fmt.Errorf("unknown preset %q", b.Preset)
	}
	return nil
}

// generator builds the terrain generator the base selects. A flat base
// without layers falls back to the classic superflat stack.
func (b BaseSpec) generator() (gen.Generator, error) {
	switch b.Preset {
	case "flat":
		if len(b.Layers) == 0 {
			return gen.ClassicFlat(), nil
		}
		layers := make([]gen.Layer, len(b.Layers))
		for i, l := range b.Layers {
			blk, err := ResolveBlock(l.Block)
			if err != nil {
				return nil, fmt.Errorf("layers[%d]: %w", i, err)
			}
			layers[i] = gen.Layer{Block: blk, Height: l.Height}
		}
		return gen.NewFlat(layers...), nil
	case "hills":
		return gen.NewHills(b.Seed), nil
	}
	return nil, fmt.Errorf("unknown preset %q", b.Preset)
}

// Build creates the plan's region, generates base terrain when a base is
// set, then applies every step to it.
func (p Plan) Build() (*world.Region, error) {
	r := world.NewRegion(p.Region.X, p.Region.Z)
	if p.Base != nil {
		g, err := p.Base.generator()
		if err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
		if err := gen.FillRegion(r, g); err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
	}
	if err := p.Apply(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Apply executes the steps in order against an existing region.
func (p Plan) Apply(r *world.Region) error {
	for i, s := range p.Steps {
		if err := s.apply(r); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return nil
}

func (s Step) apply(r *world.Region) error {
	switch {
	case s.Fill != nil:
		b, err := ResolveBlock(s.Fill.Block)
		if err != nil {
			return err
		}
		from, to := s.Fill.From, s.Fill.To
		return r.Fill(b, from[0], from[1], from[2], to[0], to[1], to[2], s.Fill.IgnoreOutside)
	case s.Set != nil:
		b, err := ResolveBlock(s.Set.Block)
		if err != nil {
			return err
		}
		return r.SetBlock(b, s.Set.At[0], s.Set.At[1], s.Set.At[2])
	}
	return nil
}

// ResolveBlock turns a plan block name into a world.Block. Catalogued names
// pick up their default block state; `name[key=value,...]` overrides single
// properties; unknown names are taken literally as namespace:id.
func ResolveBlock(name string) (world.Block, error) {
	base, propList := name, ""
	if i := strings.IndexByte(name, '['); i >= 0 {
		if !strings.HasSuffix(name, "]") {
			return world.Block{}, fmt.Errorf("block %q: unterminated property list", name)
		}
		base, propList = name[:i], name[i+1:len(name)-1]
	}

	var overrides []world.Property
	if propList != "" {
		for _, kv := range strings.Split(propList, ",") {
			k, v, ok := strings.Cut(strings.TrimSpace(kv), "=")
			if !ok || k == "" || v == "" {
				return world.Block{}, fmt.Errorf("block %q: malformed property %q", name, kv)
			}
			overrides = append(overrides, world.Prop(k, v))
		}
	}

	if b, ok := gamedata.Block(base); ok {
		if len(overrides) == 0 {
			return b, nil
		}
		// Later duplicates win, so overrides replace default state values.
		return world.NewBlock(b.Namespace, b.ID, append(b.Properties, overrides...)...), nil
	}

	ns, id := "minecraft", base
	if i := strings.IndexByte(base, ':'); i >= 0 {
		ns, id = base[:i], base[i+1:]
	}
	if id == "" {
		return world.Block{}, fmt.Errorf("block %q: empty id", name)
	}
	return world.NewBlock(ns, id, overrides...), nil
}
