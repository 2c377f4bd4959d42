package layout

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Alia5/scankey/keys"

	toml "github.com/pelletier/go-toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	yaml "gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for document formats other than json, yaml and toml.
	ErrUnsupportedFormat = errors.New("unsupported layout format")
	// ErrInvalidDocument is returned when a document does not match the layout schema.
	ErrInvalidDocument = errors.New("invalid layout document")
	// ErrUnknownKey is returned when a document names a key that does not exist.
	ErrUnknownKey = errors.New("unknown key")
)

// Format is a layout document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat normalizes a format name ("yml" is accepted for yaml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Document is the file representation of a layout.
//
// Each group maps key names (see keys.Parse) to up to two single-character
// strings: level 0 and level 1. An empty string leaves a level unmapped.
//
//	name: de-custom
//	hasAltGrKey: true
//	groups:
//	  - A: [a, A]
//	    "1": ["1", "!"]
//	  - Q: ["@"]
type Document struct {
	Name        string                `json:"name" yaml:"name" toml:"name"`
	HasAltGrKey bool                  `json:"hasAltGrKey" yaml:"hasAltGrKey" toml:"hasAltGrKey"`
	Groups      []map[string][]string `json:"groups" yaml:"groups" toml:"groups"`
}

//go:embed schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("layout.schema.json", schemaJSON)
})

func validate(instance any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile layout schema: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// ParseDocument decodes and validates a layout document.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var raw []byte
	switch format {
	case FormatJSON:
		raw = data
	case FormatTOML:
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		raw, err = json.Marshal(tree.ToMap())
		if err != nil {
			return nil, fmt.Errorf("normalize toml: %w", err)
		}
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		v, err := yamlValue(&root)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		raw, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("normalize yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := validate(instance); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &doc, nil
}

// yamlValue converts a YAML node tree to plain JSON values. Mapping keys and
// sequence scalars stay strings, so `1: [1, "!"]` names Key1 with symbol '1'
// and `~` in a sequence leaves the level unmapped.
func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind == yaml.ScalarNode {
				if c.Tag == "!!null" {
					out = append(out, "")
				} else {
					out = append(out, c.Value)
				}
				continue
			}
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
}

// Parse decodes a layout document and builds the layout it describes.
func Parse(data []byte, format Format) (*Layout, error) {
	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Layout()
}

// Load reads a layout file. The format is chosen by file extension.
func Load(path string) (*Layout, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	l, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Layout builds the layout described by d.
func (d *Document) Layout() (*Layout, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidDocument)
	}
	b := NewBuilder(d.Name, d.HasAltGrKey)
	for group, entries := range d.Groups {
		for name, levels := range entries {
			k, ok := keys.Parse(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q in group %d", ErrUnknownKey, name, group)
			}
			if len(levels) > 2 {
				return nil, fmt.Errorf("%w: key %s has %d levels", ErrInvalidDocument, k, len(levels))
			}
			for level, s := range levels {
				if s == "" {
					continue
				}
				if utf8.RuneCountInString(s) != 1 {
					return nil, fmt.Errorf("%w: key %s level %d symbol %q is not a single character", ErrInvalidDocument, k, level, s)
				}
				r, _ := utf8.DecodeRuneInString(s)
				b.Set(uint8(group), uint8(level), k, r)
			}
		}
	}
	return b.Build(), nil
}

// Document returns the file representation of l. It always has at least one
// group, so an empty layout still exports a valid document.
func (l *Layout) Document() *Document {
	doc := &Document{Name: l.name, HasAltGrKey: l.hasAltGrKey}
	for _, p := range l.Positions() {
		for int(p.Group) >= len(doc.Groups) {
			doc.Groups = append(doc.Groups, map[string][]string{})
		}
		name := p.Key.Name()
		levels := doc.Groups[p.Group][name]
		for len(levels) <= int(p.Level) {
			levels = append(levels, "")
		}
		r, _ := l.Lookup(p.Group, p.Level, p.Key)
		levels[p.Level] = string(r)
		doc.Groups[p.Group][name] = levels
	}
	if len(doc.Groups) == 0 {
		doc.Groups = append(doc.Groups, map[string][]string{})
	}
	return doc
}

// Marshal encodes d in the given format.
func Marshal(d *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatTOML:
		groups := make([]map[string]interface{}, 0, len(d.Groups))
		for _, g := range d.Groups {
			m := make(map[string]interface{}, len(g))
			for name, levels := range g {
				m[name] = levels
			}
			groups = append(groups, m)
		}
		return toml.Marshal(map[string]interface{}{
			"name":        d.Name,
			"hasAltGrKey": d.HasAltGrKey,
			"groups":      groups,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
