package decl

import (
	"fmt"
	"strings"

	"github.com/broady/tsgen/tstype"
)

// GlobalVar is a module-level const or let binding.
type GlobalVar struct {
	tagSet

	Name string

	// Type is optional; nil omits the annotation.
	Type tstype.Type

	// Value is the initializer text; empty omits it.
	Value string

	Exported bool
	Const    bool
}

// NewConst returns an exported const binding. typ may be nil.
func NewConst(name, value string, typ tstype.Type) *GlobalVar {
	return &GlobalVar{Name: name, Value: value, Type: typ, Exported: true, Const: true}
}

// NewVar returns an unexported let binding. typ may be nil.
func NewVar(name, value string, typ tstype.Type) *GlobalVar {
	return &GlobalVar{Name: name, Value: value, Type: typ}
}

// DeclName returns the variable name.
func (v *GlobalVar) DeclName() string { return v.Name }

// Render emits "export const name: T = value;".
func (v *GlobalVar) Render(Mode) ([]string, error) {
	var b strings.Builder
	b.WriteString(exportPrefix(v.Exported))
	if v.Const {
		b.WriteString("const ")
	} else {
		b.WriteString("let ")
	}
	b.WriteString(v.Name)
	if v.Type != nil {
		typ, err := v.Type.Expr()
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.Name, err)
		}
		b.WriteString(": ")
		b.WriteString(typ)
	}
	if v.Value != "" {
		b.WriteString(" = ")
		b.WriteString(v.Value)
	}
	b.WriteString(";")
	return []string{b.String()}, nil
}

func (*GlobalVar) sealed() {}

// TypeAlias binds a name to arbitrary type text.
type TypeAlias struct {
	tagSet

	Name     string
	Raw      string
	Exported bool
}

// NewTypeAlias returns an unexported alias for raw.
func NewTypeAlias(name, raw string) *TypeAlias {
	return &TypeAlias{Name: name, Raw: raw}
}

// DeclName returns the alias name.
func (t *TypeAlias) DeclName() string { return t.Name }

// Render emits "export type N = raw;".
func (t *TypeAlias) Render(Mode) ([]string, error) {
	return []string{exportPrefix(t.Exported) + "type " + t.Name + " = " + t.Raw + ";"}, nil
}

func (*TypeAlias) sealed() {}
