// Package manifest describes a TypeScript project as a YAML, TOML or JSON
// document and generates it through a tsgen.Context.
//
//	files:
//	  - path: models/user
//	    decls:
//	      - kind: class
//	        name: User
//	        exported: true
//	        tags: [model]
//	        attrs:
//	          - {name: id, type: number}
//	registries:
//	  - {file: index, name: MODELS, tag: model}
//
// Type strings use tstype.Parse notation. Quote values ending in "?" inside
// YAML flow mappings: {type: "string?"}.
//
// A Manifest is a tsgen.Procedure: Populate declares every file, and Link
// fills each registry with the declarations carrying its tag.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/broady/tsgen/decl"
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrInvalid is returned for manifests that fail to decode or validate.
var ErrInvalid = errors.New("invalid manifest")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("tsident", func(fl validator.FieldLevel) bool {
		return decl.IsIdentifier(fl.Field().String())
	})
	return v
}

// Manifest is the root document.
type Manifest struct {
	Files      []FileSpec     `yaml:"files" toml:"files" json:"files" validate:"required,min=1,unique=Path,dive"`
	Registries []RegistrySpec `yaml:"registries" toml:"registries" json:"registries" validate:"dive"`
}

// FileSpec describes one generated file.
type FileSpec struct {
	// Path is the root-relative file name without extension.
	Path    string       `yaml:"path" toml:"path" json:"path" validate:"required"`
	Skip    bool         `yaml:"skip" toml:"skip" json:"skip"`
	Imports []ImportSpec `yaml:"imports" toml:"imports" json:"imports" validate:"dive"`
	Decls   []DeclSpec   `yaml:"decls" toml:"decls" json:"decls" validate:"dive"`
}

// ImportSpec is an import statement. Relative paths are root-relative file
// names resolved against the importing file.
type ImportSpec struct {
	Path     string   `yaml:"path" toml:"path" json:"path" validate:"required"`
	Names    []string `yaml:"names" toml:"names" json:"names" validate:"required,min=1,dive,required"`
	Relative bool     `yaml:"relative" toml:"relative" json:"relative"`
}

// DeclSpec describes a top-level declaration. Which fields apply depends on
// Kind:
//
//	class, type  attrs, methods, getters, setters
//	enum         members, all_values, methods
//	const, var   type, value
//	alias        raw
//	function     args, body
//
// Consecutive declarations with Group set render without blank lines
// between them.
type DeclSpec struct {
	Kind     string   `yaml:"kind" toml:"kind" json:"kind" validate:"required,oneof=class type enum const var alias function"`
	Name     string   `yaml:"name" toml:"name" json:"name" validate:"required,tsident"`
	Exported bool     `yaml:"exported" toml:"exported" json:"exported"`
	Group    bool     `yaml:"group" toml:"group" json:"group"`
	Tags     []string `yaml:"tags" toml:"tags" json:"tags" validate:"dive,required"`

	Attrs   []AttrSpec     `yaml:"attrs" toml:"attrs" json:"attrs" validate:"dive"`
	Methods []MethodSpec   `yaml:"methods" toml:"methods" json:"methods" validate:"dive"`
	Getters []AccessorSpec `yaml:"getters" toml:"getters" json:"getters" validate:"dive"`
	Setters []AccessorSpec `yaml:"setters" toml:"setters" json:"setters" validate:"dive"`

	Members   []MemberSpec `yaml:"members" toml:"members" json:"members" validate:"dive"`
	AllValues bool         `yaml:"all_values" toml:"all_values" json:"all_values"`

	Type  string `yaml:"type" toml:"type" json:"type"`
	Value string `yaml:"value" toml:"value" json:"value"`
	Raw   string `yaml:"raw" toml:"raw" json:"raw" validate:"required_if=Kind alias"`

	Args []ArgSpec `yaml:"args" toml:"args" json:"args" validate:"dive"`
	Body []string  `yaml:"body" toml:"body" json:"body"`
}

// AttrSpec is a class or type field. Default nil synthesizes one from Type.
type AttrSpec struct {
	Name     string   `yaml:"name" toml:"name" json:"name" validate:"required"`
	Type     string   `yaml:"type" toml:"type" json:"type" validate:"required"`
	Default  *string  `yaml:"default" toml:"default" json:"default"`
	Optional bool     `yaml:"optional" toml:"optional" json:"optional"`
	Tags     []string `yaml:"tags" toml:"tags" json:"tags" validate:"dive,required"`
}

// MethodSpec is a class method or an enum helper.
type MethodSpec struct {
	Name     string    `yaml:"name" toml:"name" json:"name" validate:"required,tsident"`
	Args     []ArgSpec `yaml:"args" toml:"args" json:"args" validate:"dive"`
	Body     []string  `yaml:"body" toml:"body" json:"body"`
	Static   bool      `yaml:"static" toml:"static" json:"static"`
	Exported bool      `yaml:"exported" toml:"exported" json:"exported"`
}

// AccessorSpec is a getter or setter. Type applies to setters only.
type AccessorSpec struct {
	Name string   `yaml:"name" toml:"name" json:"name" validate:"required"`
	Type string   `yaml:"type" toml:"type" json:"type"`
	Body []string `yaml:"body" toml:"body" json:"body"`
}

// ArgSpec is a parameter.
type ArgSpec struct {
	Name     string `yaml:"name" toml:"name" json:"name" validate:"required"`
	Type     string `yaml:"type" toml:"type" json:"type" validate:"required"`
	Optional bool   `yaml:"optional" toml:"optional" json:"optional"`
}

// MemberSpec is an enum member. A nil Value omits the initializer. JSON
// numbers are kept as json.Number so large integers render exactly.
type MemberSpec struct {
	Name  string   `yaml:"name" toml:"name" json:"name" validate:"required,tsident"`
	Value any      `yaml:"value" toml:"value" json:"value"`
	Tags  []string `yaml:"tags" toml:"tags" json:"tags" validate:"dive,required"`
}

// RegistrySpec declares a const in File listing every top-level
// declaration tagged Tag, imported from its file.
type RegistrySpec struct {
	File string `yaml:"file" toml:"file" json:"file" validate:"required"`
	Name string `yaml:"name" toml:"name" json:"name" validate:"required,tsident"`
	Tag  string `yaml:"tag" toml:"tag" json:"tag" validate:"required"`
	Type string `yaml:"type" toml:"type" json:"type"`
}

// Load reads a manifest, choosing the format from the file extension.
func Load(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FormatOf maps a file extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unsupported extension %q", ErrInvalid, filepath.Ext(path))
	}
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalid, format)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return &m, nil
}
