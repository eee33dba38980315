// Package tstype defines type descriptors for generated TypeScript source.
// A descriptor is an immutable value that renders itself as a type expression.
// Descriptors compose: ArrayOf(NullableOf(NamedOf("User"))) renders as
// "(User | null)[]".
package tstype

// Kind identifies the category of a type descriptor.
type Kind int

const (
	KindRaw       Kind = iota // Opaque literal text
	KindNamed                 // Nominal type referenced by name
	KindPrimitive             // string, number, boolean or any
	KindArray                 // T[]
	KindMap                   // Map<string, T>
	KindMap2                  // Map2<T>
	KindNullable              // (T | null)
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindNamed:
		return "Named"
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindMap2:
		return "Map2"
	case KindNullable:
		return "Nullable"
	default:
		return "Unknown"
	}
}

// Type is the base interface for all type descriptors.
type Type interface {
	// Kind returns the descriptor kind for type switching.
	Kind() Kind

	// Expr renders the descriptor as a TypeScript type expression.
	// Rendering is pure: the same value always yields the same text.
	Expr() (string, error)

	// Ensure only types in this package can implement Type.
	sealed()
}

// MustExpr renders t and panics if rendering fails.
// Intended for static tables and tests.
func MustExpr(t Type) string {
	s, err := t.Expr()
	if err != nil {
		panic(err)
	}
	return s
}
