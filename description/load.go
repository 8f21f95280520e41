package description

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/astgen/decl"
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/version"
)

// SupportedVersions constrains the version key of structured descriptions.
const SupportedVersions = version.DescriptionVersions

// Format names accepted by Decode.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatFor picks the decoder from a file extension. Unknown extensions
// (.txt, .ast, none) use the text format.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Load reads and decodes a description file.
func Load(path string) ([]decl.Decl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to read description %s", path),
			"set description in astgen.toml or pass --description",
		)
	}
	return Decode(path, FormatFor(path), data)
}

// Decode decodes data in the given format. name is used in error messages.
func Decode(name, format string, data []byte) ([]decl.Decl, error) {
	if format == FormatText {
		return Parse(name, data)
	}

	var doc document
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, errors.Newf("unknown description format %q", format)
	}
	if err != nil {
		return nil, invalid(name, errors.Wrapf(err, "malformed %s", format))
	}

	decls, err := doc.decls()
	if err != nil {
		return nil, invalid(name, err)
	}
	return decls, nil
}

func checkVersion(version string) error {
	if version == "" {
		return errors.WithHint(errors.New("missing version"), `add version: "1.0" at the top level`)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "invalid version %q", version)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return errors.WithStack(err)
	}
	if !c.Check(v) {
		return errors.WithHintf(
			errors.Newf("unsupported description version %s", version),
			"this astgen reads versions matching %s", SupportedVersions,
		)
	}
	return nil
}

func (doc *document) decls() ([]decl.Decl, error) {
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	decls := make([]decl.Decl, 0, len(doc.Decls))
	for i, e := range doc.Decls {
		d, err := e.decl()
		if err != nil {
			return nil, errors.Wrapf(err, "decls[%d]", i)
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func (e *entry) decl() (decl.Decl, error) {
	var set []string
	for kind, name := range map[string]string{"struct": e.Struct, "enum": e.Enum, "flag": e.Flag} {
		if name != "" {
			set = append(set, kind)
		}
	}
	if len(set) != 1 {
		return nil, errors.WithHint(
			errors.Newf("entry must name exactly one of struct, enum, flag (found %d)", len(set)),
			"write struct: Name, enum: Name or flag: Name",
		)
	}

	attrs := decl.NewAttrs(e.Attrs...)
	switch {
	case e.Struct != "":
		if len(e.Variants) > 0 {
			return nil, errors.Newf("struct %s: variants are only allowed on enums", e.Struct)
		}
		return &decl.Struct{Name: e.Struct, Attrs: attrs, Fields: fields(e.Fields), IsTuple: e.Tuple}, nil

	case e.Enum != "":
		if len(e.Fields) > 0 || e.Tuple {
			return nil, errors.Newf("enum %s: fields belong to variants", e.Enum)
		}
		en := &decl.Enum{Name: e.Enum, Attrs: attrs}
		for _, v := range e.Variants {
			if v.Name == "" {
				return nil, errors.Newf("enum %s: variant without a name", e.Enum)
			}
			en.Variants = append(en.Variants, &decl.Struct{
				Name:    v.Name,
				Attrs:   decl.NewAttrs(v.Attrs...),
				Fields:  fields(v.Fields),
				IsTuple: v.Tuple,
			})
		}
		return en, nil

	default:
		if len(e.Fields) > 0 || len(e.Variants) > 0 {
			return nil, errors.Newf("flag %s: flags have no fields or variants", e.Flag)
		}
		return &decl.Flag{Name: e.Flag, Attrs: attrs}, nil
	}
}

func fields(specs []fieldSpec) []decl.Field {
	if len(specs) == 0 {
		return nil
	}
	out := make([]decl.Field, len(specs))
	for i, f := range specs {
		out[i] = decl.Field{Name: f.Name, Attrs: decl.NewAttrs(f.Attrs...)}
	}
	return out
}
