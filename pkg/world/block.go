package world

import (
	"sort"
	"strconv"
	"strings"
)

// Property is a single block-state property as a stringified key/value pair.
type Property struct {
	Key   string
	Value string
}

// Prop builds a string-valued property.
func Prop(key, value string) Property {
	return Property{Key: key, Value: value}
}

// PropInt builds an integer-valued property, stringified in decimal.
func PropInt(key string, v int) Property {
	return Property{Key: key, Value: strconv.Itoa(v)}
}

// PropBool builds a boolean-valued property, stringified as "true"/"false".
func PropBool(key string, v bool) Property {
	return Property{Key: key, Value: strconv.FormatBool(v)}
}

// Block identifies a voxel type by namespace, id, and its property set.
// Blocks are values: construct them once and treat them as immutable.
// Equality is structural and ignores property order.
type Block struct {
	Namespace  string
	ID         string
	Properties []Property
}

// NewBlock builds a Block from a namespace, an id, and optional properties.
// Duplicate property keys are collapsed: the first occurrence keeps its
// position, the last value wins. Any strings are accepted; names are not
// validated against a game registry.
func NewBlock(namespace, id string, props ...Property) Block {
	b := Block{Namespace: namespace, ID: id}
	if len(props) == 0 {
		return b
	}

	b.Properties = make([]Property, 0, len(props))
	at := make(map[string]int, len(props))
	for _, p := range props {
		if i, ok := at[p.Key]; ok {
			b.Properties[i].Value = p.Value
			continue
		}
		at[p.Key] = len(b.Properties)
		b.Properties = append(b.Properties, p)
	}
	return b
}

// Air returns the canonical air block.
func Air() Block {
	return Block{Namespace: "minecraft", ID: "air"}
}

// Name returns the namespaced block name, e.g. "minecraft:stone".
func (b Block) Name() string {
	return b.Namespace + ":" + b.ID
}

// IsAir reports whether b is the canonical air block.
func (b Block) IsAir() bool {
	return b.Namespace == "minecraft" && b.ID == "air" && len(b.Properties) == 0
}

// Equal reports structural equality: same namespace, id, and property set,
// regardless of property order.
func (b Block) Equal(o Block) bool {
	return b.key() == o.key()
}

// String renders the block in the game's command syntax,
// e.g. "minecraft:oak_log[axis=y]".
func (b Block) String() string {
	if len(b.Properties) == 0 {
		return b.Name()
	}
	var sb strings.Builder
	sb.WriteString(b.Name())
	sb.WriteByte('[')
	for i, p := range b.Properties {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// key returns a canonical form with properties sorted by key. Palette
// deduplication and Equal both rely on it, so the two always agree. Every
// part is length prefixed: names and values may contain any characters, so
// joining them with bare separators could make distinct blocks collide.
func (b Block) key() string {
	var sb strings.Builder
	part := func(s string) {
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	part(b.Namespace)
	part(b.ID)
	if len(b.Properties) == 0 {
		return sb.String()
	}
	props := make([]Property, len(b.Properties))
	copy(props, b.Properties)
	sort.Slice(props, func(i, j int) bool { return props[i].Key < props[j].Key })
	for _, p := range props {
		part(p.Key)
		part(p.Value)
	}
	return sb.String()
}
