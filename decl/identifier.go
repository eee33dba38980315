package decl

import (
	"strconv"
	"unicode"
)

// TypeScript reserved words that cannot name a class, enum, function or variable.
var reservedWords = map[string]bool{
	"break":      true,
	"case":       true,
	"catch":      true,
	"class":      true,
	"const":      true,
	"continue":   true,
	"debugger":   true,
	"default":    true,
	"delete":     true,
	"do":         true,
	"else":       true,
	"enum":       true,
	"export":     true,
	"extends":    true,
	"false":      true,
	"finally":    true,
	"for":        true,
	"function":   true,
	"if":         true,
	"implements": true,
	"import":     true,
	"in":         true,
	"instanceof": true,
	"interface":  true,
	"let":        true,
	"new":        true,
	"null":       true,
	"package":    true,
	"private":    true,
	"protected":  true,
	"public":     true,
	"return":     true,
	"static":     true,
	"super":      true,
	"switch":     true,
	"this":       true,
	"throw":      true,
	"true":       true,
	"try":        true,
	"type":       true,
	"typeof":     true,
	"var":        true,
	"void":       true,
	"while":      true,
	"with":       true,
	"yield":      true,
}

// IsReserved reports whether name is a TypeScript reserved word.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// IsIdentifier reports whether name can be used as a declaration name.
func IsIdentifier(name string) bool {
	return isIdentifierName(name) && !reservedWords[name]
}

// isIdentifierName reports whether name is lexically an identifier.
// Reserved words pass: they are valid property names.
func isIdentifierName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return false
		}
	}
	return true
}

// propertyName quotes names that are not valid identifiers.
func propertyName(name string) string {
	if isIdentifierName(name) {
		return name
	}
	return strconv.Quote(name)
}
