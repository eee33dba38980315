package decl

import (
	"fmt"

	"github.com/broady/tsgen/tstype"
)

// Class is a class block, or a structural type literal when IsType is set.
// Members of a type literal render in TypeLiteral mode.
type Class struct {
	tagSet

	Name     string
	Exported bool
	IsType   bool
	Decls    []Decl
}

// NewClass returns an empty class.
func NewClass(name string) *Class {
	return &Class{Name: name}
}

// NewType returns an empty structural type literal.
func NewType(name string) *Class {
	return &Class{Name: name, IsType: true}
}

// Add appends member declarations.
func (c *Class) Add(decls ...Decl) {
	c.Decls = append(c.Decls, decls...)
}

// Attr appends a field.
func (c *Class) Attr(name string, typ tstype.Type, tags ...Tag) *Attribute {
	a := NewAttr(name, typ, tags...)
	c.Decls = append(c.Decls, a)
	return a
}

// Method appends a method.
func (c *Class) Method(name string, args []Arg, body ...string) *Method {
	m := NewMethod(name, args, body...)
	c.Decls = append(c.Decls, m)
	return m
}

// Getter appends a property getter.
func (c *Class) Getter(name string, body ...string) *Getter {
	g := NewGetter(name, body...)
	c.Decls = append(c.Decls, g)
	return g
}

// Setter appends a property setter.
func (c *Class) Setter(name string, typ tstype.Type, body ...string) *Setter {
	s := NewSetter(name, typ, body...)
	c.Decls = append(c.Decls, s)
	return s
}

// DeclName returns the class name.
func (c *Class) DeclName() string { return c.Name }

// Render emits "class N {" or "type N = {", the members and "}".
func (c *Class) Render(Mode) ([]string, error) {
	var open string
	if c.IsType {
		open = exportPrefix(c.Exported) + "type " + c.Name + " = {"
	} else {
		open = exportPrefix(c.Exported) + "class " + c.Name + " {"
	}

	members, err := renderEach(c.Decls, Mode{TypeLiteral: c.IsType})
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", c.Name, err)
	}

	out := make([]string, 0, len(members)+2)
	out = append(out, open)
	out = append(out, members...)
	return append(out, "}"), nil
}

func (*Class) sealed() {}
