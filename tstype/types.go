package tstype

import "fmt"

// Raw is opaque type text emitted verbatim.
type Raw struct {
	text string
}

// RawOf returns a descriptor that renders text unchanged.
func RawOf(text string) *Raw { return &Raw{text: text} }

// Kind returns KindRaw.
func (*Raw) Kind() Kind { return KindRaw }

// Text returns the raw type text.
func (r *Raw) Text() string { return r.text }

// Expr returns the raw text.
func (r *Raw) Expr() (string, error) { return r.text, nil }

func (*Raw) sealed() {}

// Named references a nominal type such as a generated class or Date.
type Named struct {
	name string
}

// NamedOf returns a descriptor referencing the type called name.
func NamedOf(name string) *Named { return &Named{name: name} }

// Kind returns KindNamed.
func (*Named) Kind() Kind { return KindNamed }

// Name returns the referenced type name.
func (n *Named) Name() string { return n.name }

// Expr returns the type name.
func (n *Named) Expr() (string, error) { return n.name, nil }

func (*Named) sealed() {}

// Array is an ordered collection of Elem.
type Array struct {
	elem Type
}

// ArrayOf returns a descriptor for elem[].
func ArrayOf(elem Type) *Array { return &Array{elem: elem} }

// Kind returns KindArray.
func (*Array) Kind() Kind { return KindArray }

// Elem returns the element type.
func (a *Array) Elem() Type { return a.elem }

// Expr renders "T[]".
func (a *Array) Expr() (string, error) {
	return wrap(a.elem, "%s[]")
}

func (*Array) sealed() {}

// Map is a string-keyed Map of Elem.
type Map struct {
	elem Type
}

// MapOf returns a descriptor for Map<string, elem>.
func MapOf(elem Type) *Map { return &Map{elem: elem} }

// Kind returns KindMap.
func (*Map) Kind() Kind { return KindMap }

// Elem returns the value type.
func (m *Map) Elem() Type { return m.elem }

// Expr renders "Map<string, T>".
func (m *Map) Expr() (string, error) {
	return wrap(m.elem, "Map<string, %s>")
}

func (*Map) sealed() {}

// Map2 is the alternate keyed-map representation, Map2<T>.
// The Map2 class itself is expected to be provided by the generated project.
type Map2 struct {
	elem Type
}

// Map2Of returns a descriptor for Map2<elem>.
func Map2Of(elem Type) *Map2 { return &Map2{elem: elem} }

// Kind returns KindMap2.
func (*Map2) Kind() Kind { return KindMap2 }

// Elem returns the value type.
func (m *Map2) Elem() Type { return m.elem }

// Expr renders "Map2<T>".
func (m *Map2) Expr() (string, error) {
	return wrap(m.elem, "Map2<%s>")
}

func (*Map2) sealed() {}

// Nullable is Elem or null.
type Nullable struct {
	elem Type
}

// NullableOf returns a descriptor for (elem | null).
func NullableOf(elem Type) *Nullable { return &Nullable{elem: elem} }

// Kind returns KindNullable.
func (*Nullable) Kind() Kind { return KindNullable }

// Elem returns the non-null type.
func (n *Nullable) Elem() Type { return n.elem }

// Expr renders "(T | null)".
func (n *Nullable) Expr() (string, error) {
	return wrap(n.elem, "(%s | null)")
}

func (*Nullable) sealed() {}

func wrap(elem Type, format string) (string, error) {
	if elem == nil {
		return "", &ConfigurationError{Reason: "missing element type"}
	}
	inner, err := elem.Expr()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, inner), nil
}
