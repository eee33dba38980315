package tsgen

import (
	"maps"
	"slices"

	"github.com/broady/tsgen/decl"
)

// Index is an immutable name -> declaration snapshot built by EndPhase.
// A nil *Index is empty.
type Index struct {
	decls map[string]decl.Decl
}

// Lookup returns the declaration called name.
func (ix *Index) Lookup(name string) (decl.Decl, bool) {
	if ix == nil {
		return nil, false
	}
	d, ok := ix.decls[name]
	return d, ok
}

// Len returns the number of indexed names.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.decls)
}

// Names returns the indexed names, sorted.
func (ix *Index) Names() []string {
	if ix == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(ix.decls))
}
