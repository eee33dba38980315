package decl

import (
	"fmt"
	"strings"

	"github.com/broady/tsgen/tstype"
)

// Arg is a method parameter.
type Arg struct {
	Name     string
	Type     tstype.Type
	Optional bool
}

// NewArg returns a required parameter.
func NewArg(name string, typ tstype.Type) Arg {
	return Arg{Name: name, Type: typ}
}

// Method is a callable: a class method, or a free function when Function is set.
type Method struct {
	tagSet

	Name string
	Args []Arg
	Body []string

	Static   bool
	Exported bool
	Function bool
}

// NewMethod returns a method with the given parameters and body lines.
func NewMethod(name string, args []Arg, body ...string) *Method {
	return &Method{Name: name, Args: args, Body: body}
}

// NewFunction returns an exported free function.
func NewFunction(name string, args []Arg, body ...string) *Method {
	m := NewMethod(name, args, body...)
	m.Function = true
	m.Exported = true
	return m
}

// DeclName returns the method name.
func (m *Method) DeclName() string { return m.Name }

// Render emits the signature line, the body lines and a closing brace.
func (m *Method) Render(mode Mode) ([]string, error) {
	exported, static, function := m.Exported, m.Static, m.Function
	if mode.FreeFunction {
		exported, static, function = mode.Exported, false, true
	}

	args, err := renderArgs(m.Args)
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", m.Name, err)
	}

	var b strings.Builder
	b.WriteString(exportPrefix(exported))
	if static {
		b.WriteString("static ")
	}
	if function {
		b.WriteString("function ")
	}
	b.WriteString(m.Name)
	b.WriteString("(")
	b.WriteString(args)
	b.WriteString("){")

	out := make([]string, 0, len(m.Body)+2)
	out = append(out, b.String())
	out = append(out, m.Body...)
	out = append(out, "}")
	return out, nil
}

func (*Method) sealed() {}

func renderArgs(args []Arg) (string, error) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		typ, err := typeExpr(a.Type)
		if err != nil {
			return "", fmt.Errorf("argument %s: %w", a.Name, err)
		}
		opt := ""
		if a.Optional {
			opt = "?"
		}
		parts = append(parts, a.Name+opt+": "+typ)
	}
	return strings.Join(parts, ", "), nil
}

// Getter is a zero-argument property accessor.
type Getter struct {
	tagSet

	Name string
	Body []string
}

// NewGetter returns a getter with the given body lines.
func NewGetter(name string, body ...string) *Getter {
	return &Getter{Name: name, Body: body}
}

// DeclName returns the property name.
func (g *Getter) DeclName() string { return g.Name }

// Render emits "get name(){", the body and a closing brace.
func (g *Getter) Render(Mode) ([]string, error) {
	out := make([]string, 0, len(g.Body)+2)
	out = append(out, "get "+g.Name+"(){")
	out = append(out, g.Body...)
	return append(out, "}"), nil
}

func (*Getter) sealed() {}

// Setter is a one-argument property accessor. The argument is named value.
type Setter struct {
	tagSet

	Name string
	Type tstype.Type
	Body []string
}

// NewSetter returns a setter accepting typ.
func NewSetter(name string, typ tstype.Type, body ...string) *Setter {
	return &Setter{Name: name, Type: typ, Body: body}
}

// DeclName returns the property name.
func (s *Setter) DeclName() string { return s.Name }

// Render emits "set name(value: T){", the body and a closing brace.
func (s *Setter) Render(Mode) ([]string, error) {
	typ, err := typeExpr(s.Type)
	if err != nil {
		return nil, fmt.Errorf("setter %s: %w", s.Name, err)
	}
	out := make([]string, 0, len(s.Body)+2)
	out = append(out, "set "+s.Name+"(value: "+typ+"){")
	out = append(out, s.Body...)
	return append(out, "}"), nil
}

func (*Setter) sealed() {}
