package description

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/teranos/astgen/errors"
)

// document is the structured (YAML, TOML, JSON) description layout.
type document struct {
	Version string  `yaml:"version" toml:"version" json:"version"`
	Decls   []entry `yaml:"decls" toml:"decls" json:"decls"`
}

// entry names exactly one of Struct, Enum or Flag.
type entry struct {
	Struct   string        `yaml:"struct" toml:"struct" json:"struct"`
	Enum     string        `yaml:"enum" toml:"enum" json:"enum"`
	Flag     string        `yaml:"flag" toml:"flag" json:"flag"`
	Attrs    []string      `yaml:"attrs" toml:"attrs" json:"attrs"`
	Tuple    bool          `yaml:"tuple" toml:"tuple" json:"tuple"`
	Fields   []fieldSpec   `yaml:"fields" toml:"fields" json:"fields"`
	Variants []variantSpec `yaml:"variants" toml:"variants" json:"variants"`
}

type variantSpec struct {
	Name   string      `yaml:"name" toml:"name" json:"name"`
	Attrs  []string    `yaml:"attrs" toml:"attrs" json:"attrs"`
	Tuple  bool        `yaml:"tuple" toml:"tuple" json:"tuple"`
	Fields []fieldSpec `yaml:"fields" toml:"fields" json:"fields"`
}

// fieldSpec is written either as a bare name or as {name, attrs}.
type fieldSpec struct {
	Name  string   `yaml:"name" toml:"name" json:"name"`
	Attrs []string `yaml:"attrs" toml:"attrs" json:"attrs"`
}

// fieldKeys are the keys a field object may carry.
var fieldKeys = map[string]bool{"name": true, "attrs": true}

// node.Decode does not inherit the document decoder's KnownFields, so
// mapping keys are checked here.
func (f *fieldSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Name)
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i < len(node.Content); i += 2 {
			key := node.Content[i]
			if !fieldKeys[key.Value] {
				return errors.Newf("line %d: field %s not found in field object", key.Line, key.Value)
			}
		}
	}
	type plain fieldSpec
	return node.Decode((*plain)(f))
}

func (f *fieldSpec) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &f.Name)
	}
	type plain fieldSpec
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode((*plain)(f))
}

// UnmarshalTOML receives the decoded value of a mixed string/table array.
func (f *fieldSpec) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		f.Name = v
		return nil
	case map[string]any:
		for key := range v {
			if !fieldKeys[key] {
				return errors.Newf("field %s not found in field table", key)
			}
		}
		name, ok := v["name"].(string)
		if !ok {
			return errors.New("field table needs a string name")
		}
		f.Name = name
		attrs, _ := v["attrs"].([]any)
		for _, a := range attrs {
			s, ok := a.(string)
			if !ok {
				return errors.Newf("field %s: attrs must be strings", name)
			}
			f.Attrs = append(f.Attrs, s)
		}
		return nil
	default:
		return errors.Newf("field must be a string or a table, got %T", value)
	}
}
