// Package tsgen builds TypeScript source files from declarations.
//
// A Context owns the files of one generation run. Callers create files,
// populate them with declarations from package decl, call EndPhase to build
// the name index, optionally wire declarations together through Lookup and
// Tagged, then call Output to write everything.
//
//	c, err := tsgen.New("./client/src/generated")
//	if err != nil { ... }
//	user := c.File("models/user").AddClass("User", true)
//	user.Attr("id", tstype.Number)
//	c.EndPhase()
//	err = c.Output(ctx)
package tsgen

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/broady/tsgen/decl"
)

// Context is the state of one generation run.
// It is not safe for concurrent use.
type Context struct {
	cfg   Config
	files []*File
	index *Index
}

// New creates a Context rooted at root with default configuration.
func New(root string) (*Context, error) {
	return NewContext(Config{Root: root})
}

// NewContext creates a Context from cfg after applying defaults and
// validating the result.
func NewContext(cfg Config) (*Context, error) {
	cfg = applyConfigDefaults(cfg)
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return &Context{cfg: cfg}, nil
}

// Config returns the effective configuration.
func (c *Context) Config() Config { return c.cfg }

// Root returns the project directory.
func (c *Context) Root() string { return c.cfg.Root }

// File registers a new file named name, relative to Root, with the configured
// extension appended.
func (c *Context) File(name string) *File {
	f := &File{ctx: c, Name: name}
	f.Path = filepath.Join(c.cfg.Root, filepath.FromSlash(f.sinkPath()))
	c.files = append(c.files, f)
	return f
}

// Files returns the registered files in registration order.
func (c *Context) Files() []*File {
	return append([]*File(nil), c.files...)
}

// EndPhase indexes every top-level class, enum and method by name and
// returns the snapshot. Call it once all files are populated. Declarations
// added afterwards are not indexed; on a name collision the declaration
// registered last wins.
func (c *Context) EndPhase() *Index {
	decls := make(map[string]decl.Decl)
	for _, f := range c.files {
		for _, d := range f.Decls() {
			switch d.(type) {
			case *decl.Class, *decl.Enum, *decl.Method:
				decls[d.DeclName()] = d
			}
		}
	}
	c.index = &Index{decls: decls}
	c.cfg.Logger.Debug("index built", slog.Int("decls", len(decls)))
	return c.index
}

// Index returns the snapshot built by the last EndPhase, or nil.
func (c *Context) Index() *Index { return c.index }

// Lookup finds an indexed declaration by name. It reports false when the
// name is unknown or EndPhase has not been called.
func (c *Context) Lookup(name string) (decl.Decl, bool) {
	return c.index.Lookup(name)
}

// Tagged returns the top-level declarations, across all files, that carry at
// least one tag called name. Each iteration rescans the files; nested
// declarations are not searched.
func (c *Context) Tagged(name string) iter.Seq[decl.Decl] {
	return func(yield func(decl.Decl) bool) {
		for _, d := range c.TaggedFiles(name) {
			if !yield(d) {
				return
			}
		}
	}
}

// TaggedFiles is like Tagged but also yields the file holding each declaration.
func (c *Context) TaggedFiles(name string) iter.Seq2[*File, decl.Decl] {
	return func(yield func(*File, decl.Decl) bool) {
		for _, f := range c.files {
			for _, d := range f.Decls() {
				if d.HasTag(name) && !yield(f, d) {
					return
				}
			}
		}
	}
}

// Output renders and writes every file in registration order. The first
// failure stops the run and is returned.
func (c *Context) Output(ctx context.Context) error {
	logger := c.cfg.Logger
	start := time.Now()

	written := 0
	for _, f := range c.files {
		if err := f.Output(ctx); err != nil {
			logger.ErrorContext(ctx, "generation failed",
				slog.String("path", f.Path),
				slog.Any("error", err),
			)
			return err
		}
		if !f.SkipGeneration {
			written++
		}
	}

	logger.InfoContext(ctx, "generation completed",
		slog.Int("files", written),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}
