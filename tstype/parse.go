package tstype

import (
	"errors"
	"strings"
)

// Parse builds a descriptor from a compact notation used by manifests:
//
//	string, number, boolean, any   primitives
//	T[]                            ArrayOf(T)
//	T?                             NullableOf(T)
//	map<T>                         MapOf(T)
//	map2<T>                        Map2Of(T)
//	raw:<text>                     RawOf(text)
//
// Anything else is a Named type. In YAML flow mappings a trailing "?" must be
// quoted. Suffixes bind outermost-last, so "User?[]"
// is an array of nullable users.
func Parse(expr string) (Type, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return nil, errors.New("empty type expression")
	}

	if text, ok := strings.CutPrefix(s, "raw:"); ok {
		return RawOf(strings.TrimSpace(text)), nil
	}
	if inner, ok := strings.CutSuffix(s, "?"); ok {
		t, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return NullableOf(t), nil
	}
	if inner, ok := strings.CutSuffix(s, "[]"); ok {
		t, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return ArrayOf(t), nil
	}
	if inner, ok := cutGeneric(s, "map2"); ok {
		t, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return Map2Of(t), nil
	}
	if inner, ok := cutGeneric(s, "map"); ok {
		t, err := Parse(inner)
		if err != nil {
			return nil, err
		}
		return MapOf(t), nil
	}

	switch s {
	case "string":
		return String, nil
	case "number":
		return Number, nil
	case "boolean":
		return Boolean, nil
	case "any":
		return Any, nil
	}

	return NamedOf(s), nil
}

func cutGeneric(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"<")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ">")
}
