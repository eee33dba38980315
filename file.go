package tsgen

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/broady/tsgen/decl"
	"github.com/broady/tsgen/tstype"
)

// Import is one import statement: import {Names...} from "Path";
type Import struct {
	Path  string
	Names []string
}

type marker int

const (
	markerNone marker = iota
	markerBeginGroup
	markerEndGroup
)

// entry is a top-level declaration or a group marker.
type entry struct {
	decl   decl.Decl
	marker marker
}

// File is one generated source file.
// Create files with Context.File.
type File struct {
	ctx *Context

	// Name is the root-relative logical name, without extension.
	Name string

	// Path is the filesystem path: Root/Name + Extension.
	Path string

	// SkipGeneration excludes the file from output.
	SkipGeneration bool

	// Imports are emitted in order after the header.
	Imports []Import

	entries []entry
}

// Decls returns the top-level declarations in order, without group markers.
func (f *File) Decls() []decl.Decl {
	decls := make([]decl.Decl, 0, len(f.entries))
	for _, e := range f.entries {
		if e.marker == markerNone {
			decls = append(decls, e.decl)
		}
	}
	return decls
}

// Add appends top-level declarations.
func (f *File) Add(decls ...decl.Decl) {
	for _, d := range decls {
		f.entries = append(f.entries, entry{decl: d})
	}
}

// AddClass appends an empty class.
func (f *File) AddClass(name string, exported bool) *decl.Class {
	c := decl.NewClass(name)
	c.Exported = exported
	f.Add(c)
	return c
}

// AddType appends an empty structural type literal.
func (f *File) AddType(name string, exported bool) *decl.Class {
	c := decl.NewType(name)
	c.Exported = exported
	f.Add(c)
	return c
}

// AddEnum appends an empty enum.
func (f *File) AddEnum(name string, exported bool) *decl.Enum {
	e := decl.NewEnum(name)
	e.Exported = exported
	f.Add(e)
	return e
}

// AddConst appends an exported const. typ may be nil.
func (f *File) AddConst(name, value string, typ tstype.Type) *decl.GlobalVar {
	v := decl.NewConst(name, value, typ)
	f.Add(v)
	return v
}

// AddTypeAlias appends a type alias for raw.
func (f *File) AddTypeAlias(name, raw string, exported bool) *decl.TypeAlias {
	t := decl.NewTypeAlias(name, raw)
	t.Exported = exported
	f.Add(t)
	return t
}

// AddFunction appends an exported free function.
func (f *File) AddFunction(name string, args []decl.Arg, body ...string) *decl.Method {
	m := decl.NewFunction(name, args, body...)
	f.Add(m)
	return m
}

// BeginGroup suppresses blank lines between the declarations that follow,
// until EndGroup.
func (f *File) BeginGroup() {
	f.entries = append(f.entries, entry{marker: markerBeginGroup})
}

// EndGroup closes a group opened with BeginGroup.
func (f *File) EndGroup() {
	f.entries = append(f.entries, entry{marker: markerEndGroup})
}

// AddImport appends an import record with a literal module path.
func (f *File) AddImport(path string, names ...string) {
	f.Imports = append(f.Imports, Import{Path: path, Names: names})
}

// AddRelImport imports names from target, a root-relative file name.
// The path is made relative to this file's directory and always starts
// with "./" or "../".
func (f *File) AddRelImport(target string, names ...string) {
	to := filepath.Join(f.ctx.cfg.Root, filepath.FromSlash(target))
	rel, err := filepath.Rel(filepath.Dir(f.Path), to)
	if err != nil {
		// Both paths derive from Root, so Rel only fails on malformed input.
		rel = to
	}
	rel = filepath.ToSlash(rel)
	if rel != ".." && !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	f.AddImport(rel, names...)
}

// Render assembles the file: header, imports, a blank line, then each
// declaration followed by a blank line. Inside a group no blank lines are
// inserted; a single blank line follows the group's end.
func (f *File) Render() ([]byte, error) {
	cfg := &f.ctx.cfg

	lines := []string{cfg.Header}
	for _, imp := range f.Imports {
		lines = append(lines, "import {"+strings.Join(imp.Names, ", ")+"} from \""+f.importPath(imp.Path)+"\";")
	}
	lines = append(lines, "")

	inGroup := false
	for _, e := range f.entries {
		switch e.marker {
		case markerBeginGroup:
			inGroup = true
		case markerEndGroup:
			inGroup = false
			lines = append(lines, "")
		default:
			out, err := e.decl.Render(decl.Mode{})
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			lines = append(lines, out...)
			if !inGroup {
				lines = append(lines, "")
			}
		}
	}

	return []byte(strings.Join(lines, cfg.newline())), nil
}

// importPath normalizes separators and strips the source extension.
func (f *File) importPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimSuffix(p, f.ctx.cfg.Extension)
}

// sinkPath is the slash-separated path handed to the sink.
func (f *File) sinkPath() string {
	return path.Clean(filepath.ToSlash(f.Name)) + f.ctx.cfg.Extension
}

// Output renders the file and writes it through the Context's sink.
// It does nothing when SkipGeneration is set.
func (f *File) Output(ctx context.Context) error {
	logger := f.ctx.cfg.Logger
	if f.SkipGeneration {
		logger.DebugContext(ctx, "file skipped", slog.String("path", f.Path))
		return nil
	}

	data, err := f.Render()
	if err != nil {
		return err
	}
	if err := f.ctx.cfg.Sink.WriteFile(ctx, f.sinkPath(), data); err != nil {
		return err
	}

	logger.DebugContext(ctx, "file written",
		slog.String("path", f.Path),
		slog.Int("bytes", len(data)),
	)
	return nil
}
