package tsgen

import (
	"context"
	"fmt"
)

// Procedure decides what to generate and populates a Context with it.
type Procedure interface {
	Populate(c *Context) error
}

// Linker is implemented by procedures that connect declarations across
// files once every procedure has populated the Context.
type Linker interface {
	Link(c *Context, ix *Index) error
}

// ProcedureFunc adapts a function to Procedure.
type ProcedureFunc func(c *Context) error

// Populate calls fn(c).
func (fn ProcedureFunc) Populate(c *Context) error { return fn(c) }

// Run drives a full generation: every procedure populates c, the name index
// is built, procedures implementing Linker link against it, and all files
// are written.
func Run(ctx context.Context, c *Context, procs ...Procedure) error {
	for _, p := range procs {
		if err := p.Populate(c); err != nil {
			return fmt.Errorf("populate: %w", err)
		}
	}

	ix := c.EndPhase()

	for _, p := range procs {
		l, ok := p.(Linker)
		if !ok {
			continue
		}
		if err := l.Link(c, ix); err != nil {
			return fmt.Errorf("link: %w", err)
		}
	}

	return c.Output(ctx)
}
