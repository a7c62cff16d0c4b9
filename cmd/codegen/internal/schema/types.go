package schema

import (
	"encoding/json"
	"fmt"
)

// Block mirrors one entry of the flattened-format blocks.json published by
// PrismarineJS/minecraft-data (1.13 and later).
type Block struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	DisplayName  string       `json:"displayName"`
	Hardness     *float64     `json:"hardness"`
	StackSize    int          `json:"stackSize"`
	Diggable     bool         `json:"diggable"`
	BoundingBox  string       `json:"boundingBox"`
	Transparent  bool         `json:"transparent"`
	EmitLight    int          `json:"emitLight"`
	FilterLight  int          `json:"filterLight"`
	MinStateID   int          `json:"minStateId"`
	MaxStateID   int          `json:"maxStateId"`
	DefaultState int          `json:"defaultState"`
	States       []BlockState `json:"states"`
}

// BlockState is one property axis of a block state. Values is populated for
// enum axes and for int axes that do not count from zero; bool axes iterate
// true then false.
type BlockState struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	NumValues int      `json:"num_values"`
	Values    []string `json:"values"`
}

func LoadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return items, nil
}
