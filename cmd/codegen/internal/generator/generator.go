package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"github.com/go-theft-craft/anvil/cmd/codegen/internal/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Config struct {
	SchemeDir string
	OutDir    string
	Package   string
	Version   string
}

type templateData struct {
	Package string
	Version string
	Data    any
}

func Run(cfg Config) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	raw, err := os.ReadFile(filepath.Join(cfg.SchemeDir, "blocks.json"))
	if err != nil {
		return fmt.Errorf("read blocks.json: %w", err)
	}

	data, err := loadBlocks(raw)
	if err != nil {
		return fmt.Errorf("parse blocks.json: %w", err)
	}

	outFile := filepath.Join(cfg.OutDir, "blocks.go")
	if err := renderToFile(tmpl, "blocks.go.tmpl", outFile, templateData{
		Package: cfg.Package,
		Version: cfg.Version,
		Data:    data,
	}); err != nil {
		return fmt.Errorf("generate blocks.go: %w", err)
	}

	fmt.Printf("  generated %s\n", outFile)
	return nil
}

func renderToFile(tmpl *template.Template, name, outFile string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

// Intermediate types for template rendering that have pre-processed fields.

type blockTmpl struct {
	Name        string
	DisplayName string
	Transparent bool
	EmitLight   int
	FilterLight int
	Props       []propTmpl
}

type propTmpl struct {
	Key   string
	Value string
}

func loadBlocks(raw []byte) ([]blockTmpl, error) {
	blocks, err := schema.LoadJSON[schema.Block](raw)
	if err != nil {
		return nil, err
	}

	result := make([]blockTmpl, len(blocks))
	for i, b := range blocks {
		result[i] = blockTmpl{
			Name:        b.Name,
			DisplayName: b.DisplayName,
			Transparent: b.Transparent,
			EmitLight:   b.EmitLight,
			FilterLight: b.FilterLight,
			Props:       defaultProps(b),
		}
	}

	return result, nil
}

// defaultProps decomposes the default state id into per-axis values. State ids
// enumerate the axes in declaration order with the last axis varying fastest.
func defaultProps(b schema.Block) []propTmpl {
	if len(b.States) == 0 {
		return nil
	}

	offset := b.DefaultState - b.MinStateID
	props := make([]propTmpl, len(b.States))
	for i := len(b.States) - 1; i >= 0; i-- {
		s := b.States[i]
		n := s.NumValues
		if n <= 0 {
			n = 1
		}
		props[i] = propTmpl{Key: s.Name, Value: stateValue(s, offset%n)}
		offset /= n
	}

	// Vanilla serializes properties in lexical key order.
	sort.Slice(props, func(i, j int) bool { return props[i].Key < props[j].Key })

	return props
}

func stateValue(s schema.BlockState, idx int) string {
	if idx < len(s.Values) {
		return s.Values[idx]
	}
	switch s.Type {
	case "bool":
		if idx == 0 {
			return "true"
		}
		return "false"
	default:
		return strconv.Itoa(idx)
	}
}
