package manifest

import (
	"fmt"
	"strings"

	"github.com/broady/tsgen"
	"github.com/broady/tsgen/decl"
	"github.com/broady/tsgen/tstype"
)

var (
	_ tsgen.Procedure = (*Manifest)(nil)
	_ tsgen.Linker    = (*Manifest)(nil)
)

// Populate declares every file of the manifest in c.
func (m *Manifest) Populate(c *tsgen.Context) error {
	for _, fs := range m.Files {
		f := c.File(fs.Path)
		f.SkipGeneration = fs.Skip
		for _, imp := range fs.Imports {
			if imp.Relative {
				f.AddRelImport(imp.Path, imp.Names...)
			} else {
				f.AddImport(imp.Path, imp.Names...)
			}
		}
		if err := populateFile(f, fs.Decls); err != nil {
			return fmt.Errorf("%s: %w", fs.Path, err)
		}
	}
	return nil
}

func populateFile(f *tsgen.File, specs []DeclSpec) error {
	grouped := false
	for _, ds := range specs {
		if ds.Group != grouped {
			if ds.Group {
				f.BeginGroup()
			} else {
				f.EndGroup()
			}
			grouped = ds.Group
		}
		d, err := buildDecl(ds)
		if err != nil {
			return fmt.Errorf("%s %s: %w", ds.Kind, ds.Name, err)
		}
		d.AddTags(parseTags(ds.Tags)...)
		f.Add(d)
	}
	if grouped {
		f.EndGroup()
	}
	return nil
}

func buildDecl(ds DeclSpec) (decl.Decl, error) {
	switch ds.Kind {
	case "class", "type":
		cls := decl.NewClass(ds.Name)
		if ds.Kind == "type" {
			cls = decl.NewType(ds.Name)
		}
		cls.Exported = ds.Exported
		if err := buildMembers(cls, ds); err != nil {
			return nil, err
		}
		return cls, nil

	case "enum":
		e := decl.NewEnum(ds.Name)
		e.Exported = ds.Exported
		e.AllValues = ds.AllValues
		for _, ms := range ds.Members {
			e.AddValue(ms.Name, ms.Value, parseTags(ms.Tags)...)
		}
		for _, ms := range ds.Methods {
			m, err := buildMethod(ms)
			if err != nil {
				return nil, err
			}
			e.AddDecl(m)
		}
		return e, nil

	case "const", "var":
		typ, err := optionalType(ds.Type)
		if err != nil {
			return nil, err
		}
		v := decl.NewConst(ds.Name, ds.Value, typ)
		if ds.Kind == "var" {
			v = decl.NewVar(ds.Name, ds.Value, typ)
		}
		v.Exported = ds.Exported
		return v, nil

	case "alias":
		t := decl.NewTypeAlias(ds.Name, ds.Raw)
		t.Exported = ds.Exported
		return t, nil

	case "function":
		args, err := buildArgs(ds.Args)
		if err != nil {
			return nil, err
		}
		fn := decl.NewFunction(ds.Name, args, ds.Body...)
		fn.Exported = ds.Exported
		return fn, nil
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalid, ds.Kind)
}

func buildMembers(cls *decl.Class, ds DeclSpec) error {
	for _, as := range ds.Attrs {
		typ, err := tstype.Parse(as.Type)
		if err != nil {
			return fmt.Errorf("attribute %s: %w", as.Name, err)
		}
		a := cls.Attr(as.Name, typ, parseTags(as.Tags)...)
		a.Optional = as.Optional
		a.Default = as.Default
	}
	for _, ms := range ds.Methods {
		m, err := buildMethod(ms)
		if err != nil {
			return err
		}
		cls.Add(m)
	}
	for _, gs := range ds.Getters {
		cls.Getter(gs.Name, gs.Body...)
	}
	for _, ss := range ds.Setters {
		typ, err := tstype.Parse(ss.Type)
		if err != nil {
			return fmt.Errorf("setter %s: %w", ss.Name, err)
		}
		cls.Setter(ss.Name, typ, ss.Body...)
	}
	return nil
}

func buildMethod(ms MethodSpec) (*decl.Method, error) {
	args, err := buildArgs(ms.Args)
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", ms.Name, err)
	}
	m := decl.NewMethod(ms.Name, args, ms.Body...)
	m.Static = ms.Static
	m.Exported = ms.Exported
	return m, nil
}

func buildArgs(specs []ArgSpec) ([]decl.Arg, error) {
	args := make([]decl.Arg, 0, len(specs))
	for _, as := range specs {
		typ, err := tstype.Parse(as.Type)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", as.Name, err)
		}
		arg := decl.NewArg(as.Name, typ)
		arg.Optional = as.Optional
		args = append(args, arg)
	}
	return args, nil
}

func optionalType(expr string) (tstype.Type, error) {
	if expr == "" {
		return nil, nil
	}
	return tstype.Parse(expr)
}

// parseTags turns "name" or "name=data" into tags.
func parseTags(specs []string) []decl.Tag {
	tags := make([]decl.Tag, 0, len(specs))
	for _, s := range specs {
		name, data, ok := strings.Cut(s, "=")
		if ok {
			tags = append(tags, decl.NewTag(name, data))
		} else {
			tags = append(tags, decl.NewTag(name, nil))
		}
	}
	return tags
}

// Link fills each registry. Tagged declarations are imported from their
// files, one import per file, and listed in a const. A tagged declaration
// whose name resolves to a different declaration in ix is ambiguous and
// fails the link.
func (m *Manifest) Link(c *tsgen.Context, ix *tsgen.Index) error {
	for _, rs := range m.Registries {
		reg := file(c, rs.File)

		var (
			names   []string
			order   []*tsgen.File
			imports = map[*tsgen.File][]string{}
		)
		for f, d := range c.TaggedFiles(rs.Tag) {
			name := d.DeclName()
			if indexed, ok := ix.Lookup(name); ok && indexed != d {
				return fmt.Errorf("registry %s: %s in %s is shadowed by another declaration", rs.Name, name, f.Name)
			}
			names = append(names, name)
			if f == reg {
				continue
			}
			if _, seen := imports[f]; !seen {
				order = append(order, f)
			}
			imports[f] = append(imports[f], name)
		}

		for _, f := range order {
			reg.AddRelImport(f.Name, imports[f]...)
		}

		typ, err := optionalType(rs.Type)
		if err != nil {
			return fmt.Errorf("registry %s: %w", rs.Name, err)
		}
		reg.AddConst(rs.Name, "["+strings.Join(names, ", ")+"]", typ)
	}
	return nil
}

// file returns the registered file called name, registering it if needed.
func file(c *tsgen.Context, name string) *tsgen.File {
	for _, f := range c.Files() {
		if f.Name == name {
			return f
		}
	}
	return c.File(name)
}
