// Package decl defines the renderable declarations of a generated TypeScript
// file: attributes, methods, accessors, enums, classes, variables and type
// aliases.
//
// Decl is a closed set. Every variant renders itself to lines of text (no
// line terminators) and carries a tag set used for project-wide lookups.
package decl

import (
	"slices"

	"github.com/broady/tsgen/tstype"
)

// Decl is a renderable program element.
type Decl interface {
	// DeclName returns the declared identifier.
	DeclName() string

	// AddTags attaches tags. Tags with the same name accumulate in order.
	AddTags(tags ...Tag)

	// Tags returns the tags attached under name, in attachment order.
	Tags(name string) []Tag

	// HasTag reports whether at least one tag called name is attached.
	HasTag(name string) bool

	// TagNames returns the distinct tag names in first-attachment order.
	TagNames() []string

	// Render produces the declaration's source lines.
	Render(mode Mode) ([]string, error)

	// Ensure only types in this package can implement Decl.
	sealed()
}

// Mode controls how a declaration renders in its enclosing context.
// The zero Mode renders a top-level or class-member declaration.
type Mode struct {
	// TypeLiteral renders attributes without a default assignment,
	// as members of a structural type literal.
	TypeLiteral bool

	// FreeFunction renders methods as free functions (never static),
	// exported according to Exported.
	FreeFunction bool

	// Exported applies to methods rendered as free functions.
	Exported bool
}

// Tag is a named marker with an opaque payload.
type Tag struct {
	Name string
	Data any
}

// NewTag returns a tag called name carrying data.
func NewTag(name string, data any) Tag {
	return Tag{Name: name, Data: data}
}

// tagSet holds a declaration's tags keyed by name.
type tagSet struct {
	tags  map[string][]Tag
	order []string
}

// AddTags merges tags into the set.
func (s *tagSet) AddTags(tags ...Tag) {
	for _, tag := range tags {
		if s.tags == nil {
			s.tags = make(map[string][]Tag)
		}
		if _, ok := s.tags[tag.Name]; !ok {
			s.order = append(s.order, tag.Name)
		}
		s.tags[tag.Name] = append(s.tags[tag.Name], tag)
	}
}

// Tags returns a copy of the tags called name.
func (s *tagSet) Tags(name string) []Tag {
	return slices.Clone(s.tags[name])
}

// HasTag reports whether a tag called name is attached.
func (s *tagSet) HasTag(name string) bool {
	return len(s.tags[name]) > 0
}

// TagNames returns the distinct tag names in first-attachment order.
func (s *tagSet) TagNames() []string {
	return slices.Clone(s.order)
}

func renderEach(decls []Decl, mode Mode) ([]string, error) {
	var out []string
	for _, d := range decls {
		lines, err := d.Render(mode)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

func typeExpr(t tstype.Type) (string, error) {
	if t == nil {
		return "", &tstype.ConfigurationError{Reason: "missing type"}
	}
	return t.Expr()
}

func exportPrefix(exported bool) string {
	if exported {
		return "export "
	}
	return ""
}

var (
	_ Decl = (*Attribute)(nil)
	_ Decl = (*Method)(nil)
	_ Decl = (*Getter)(nil)
	_ Decl = (*Setter)(nil)
	_ Decl = (*EnumMember)(nil)
	_ Decl = (*Enum)(nil)
	_ Decl = (*Class)(nil)
	_ Decl = (*GlobalVar)(nil)
	_ Decl = (*TypeAlias)(nil)
)
