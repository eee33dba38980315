package tstype

import "fmt"

// DefaultValue returns the initializer expression used for a field of type t
// when no explicit default is given.
//
//	string -> ""        Map      -> new Map()
//	number -> 0         Map2     -> new Map2()
//	boolean -> false    Array    -> []
//	any -> null         Nullable -> null
//	Date -> new Date(0) other Named -> null
//
// Raw types have no rule and return ErrNoDefault.
func DefaultValue(t Type) (string, error) {
	switch t := t.(type) {
	case *Primitive:
		switch t.name {
		case "string":
			return `""`, nil
		case "number":
			return "0", nil
		case "boolean":
			return "false", nil
		case "any":
			return "null", nil
		default:
			return "", &ConfigurationError{Primitive: t.name}
		}
	case *Nullable:
		return "null", nil
	case *Map:
		return "new Map()", nil
	case *Map2:
		return "new Map2()", nil
	case *Array:
		return "[]", nil
	case *Named:
		if t.name == "Date" {
			return "new Date(0)", nil
		}
		return "null", nil
	case *Raw:
		return "", fmt.Errorf("%w: raw %q", ErrNoDefault, t.text)
	case nil:
		return "", &ConfigurationError{Reason: "missing type"}
	default:
		return "", fmt.Errorf("%w: %s", ErrNoDefault, t.Kind())
	}
}
