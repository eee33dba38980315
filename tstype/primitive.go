package tstype

// Primitive is one of the built-in TypeScript primitives.
// The only valid values are the package-level singletons String, Number,
// Boolean and Any; a zero Primitive fails to render with a ConfigurationError.
type Primitive struct {
	name string
}

// Shared primitive singletons.
var (
	String  = &Primitive{name: "string"}
	Number  = &Primitive{name: "number"}
	Boolean = &Primitive{name: "boolean"}
	Any     = &Primitive{name: "any"}
)

// Kind returns KindPrimitive.
func (*Primitive) Kind() Kind { return KindPrimitive }

// Name returns the primitive's TypeScript name.
func (p *Primitive) Name() string { return p.name }

// Expr returns the primitive name.
func (p *Primitive) Expr() (string, error) {
	if !p.valid() {
		return "", &ConfigurationError{Primitive: p.name}
	}
	return p.name, nil
}

func (p *Primitive) valid() bool {
	switch p.name {
	case "string", "number", "boolean", "any":
		return true
	}
	return false
}

func (*Primitive) sealed() {}
