package decl

import (
	"fmt"
	"strings"

	"github.com/broady/tsgen/tstype"
)

// Attribute is a typed field.
type Attribute struct {
	tagSet

	Name string
	Type tstype.Type

	// Default is the initializer text. When nil, an initializer is
	// synthesized from Type with tstype.DefaultValue.
	Default *string

	// Optional marks the field with "?".
	Optional bool
}

// NewAttr returns an attribute of type typ.
func NewAttr(name string, typ tstype.Type, tags ...Tag) *Attribute {
	a := &Attribute{Name: name, Type: typ}
	a.AddTags(tags...)
	return a
}

// WithDefault sets an explicit initializer and returns a.
func (a *Attribute) WithDefault(value string) *Attribute {
	a.Default = &value
	return a
}

// WithOptional marks a optional and returns a.
func (a *Attribute) WithOptional() *Attribute {
	a.Optional = true
	return a
}

// DeclName returns the field name.
func (a *Attribute) DeclName() string { return a.Name }

// Render emits "name?: T = default;", or "name?: T;" in a type literal.
func (a *Attribute) Render(mode Mode) ([]string, error) {
	typ, err := typeExpr(a.Type)
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", a.Name, err)
	}

	var b strings.Builder
	b.WriteString(propertyName(a.Name))
	if a.Optional {
		b.WriteString("?")
	}
	b.WriteString(": ")
	b.WriteString(typ)

	if !mode.TypeLiteral {
		value, err := a.initializer()
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		b.WriteString(" = ")
		b.WriteString(value)
	}
	b.WriteString(";")
	return []string{b.String()}, nil
}

func (a *Attribute) initializer() (string, error) {
	if a.Default != nil {
		return *a.Default, nil
	}
	return tstype.DefaultValue(a.Type)
}

func (*Attribute) sealed() {}
