package decl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EnumMember is one enumeration constant.
type EnumMember struct {
	tagSet

	Name string

	// Value is rendered as a JSON literal. Nil omits the initializer.
	Value any
}

// DeclName returns the member name.
func (m *EnumMember) DeclName() string { return m.Name }

// Render emits "Name," or "Name = <literal>,".
func (m *EnumMember) Render(Mode) ([]string, error) {
	if m.Value == nil {
		return []string{m.Name + ","}, nil
	}
	lit, err := literal(m.Value)
	if err != nil {
		return nil, fmt.Errorf("enum member %s: %w", m.Name, err)
	}
	return []string{m.Name + " = " + lit + ","}, nil
}

func (*EnumMember) sealed() {}

// literal encodes v the way a JavaScript literal is written.
func literal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Enum is an enumeration. With AllValues set it also emits a namespace
// holding all() and set plus every declaration in Decls as a free function.
// Decls are not rendered when AllValues is unset.
type Enum struct {
	tagSet

	Name      string
	Exported  bool
	AllValues bool
	Members   []*EnumMember
	Decls     []Decl
}

// NewEnum returns an empty enumeration.
func NewEnum(name string) *Enum {
	return &Enum{Name: name}
}

// Add appends a member without an explicit value.
func (e *Enum) Add(name string, tags ...Tag) *EnumMember {
	m := &EnumMember{Name: name}
	m.AddTags(tags...)
	e.Members = append(e.Members, m)
	return m
}

// AddValue appends a member initialized to value.
func (e *Enum) AddValue(name string, value any, tags ...Tag) *EnumMember {
	m := e.Add(name, tags...)
	m.Value = value
	return m
}

// AddDecl attaches helper declarations to the companion namespace.
func (e *Enum) AddDecl(decls ...Decl) {
	e.Decls = append(e.Decls, decls...)
}

// Method attaches a helper function to the companion namespace.
func (e *Enum) Method(name string, args []Arg, body ...string) *Method {
	m := NewMethod(name, args, body...)
	e.Decls = append(e.Decls, m)
	return m
}

// DeclName returns the enum name.
func (e *Enum) DeclName() string { return e.Name }

// Render emits the enum block and, with AllValues, its companion namespace.
func (e *Enum) Render(Mode) ([]string, error) {
	export := exportPrefix(e.Exported)

	out := []string{export + "enum " + e.Name + " {"}
	for _, m := range e.Members {
		lines, err := m.Render(Mode{})
		if err != nil {
			return nil, fmt.Errorf("enum %s: %w", e.Name, err)
		}
		out = append(out, lines...)
	}
	out = append(out, "}")

	if !e.AllValues {
		return out, nil
	}

	out = append(out,
		export+"namespace "+e.Name+" {",
		export+"const all = (): "+e.Name+"[] => ([",
	)
	for _, m := range e.Members {
		out = append(out, e.Name+"."+m.Name+",")
	}
	out = append(out,
		"]);",
		export+"const set = new Set(all());",
	)

	helpers, err := renderEach(e.Decls, Mode{FreeFunction: true, Exported: e.Exported})
	if err != nil {
		return nil, fmt.Errorf("enum %s: %w", e.Name, err)
	}
	out = append(out, helpers...)
	return append(out, "}"), nil
}

func (*Enum) sealed() {}
