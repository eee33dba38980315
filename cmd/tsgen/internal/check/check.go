// Package check implements `tsgen check`.
package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/broady/tsgen"
	"github.com/broady/tsgen/manifest"
	"github.com/broady/tsgen/sink"
)

type Cmd struct {
	Manifest string `arg:"" help:"Manifest file (.yaml, .yml, .toml or .json)." type:"existingfile"`
}

func (c *Cmd) Run() error {
	return c.run(context.Background(), os.Stdout)
}

// run generates into memory so rendering errors surface without touching
// the filesystem.
func (c *Cmd) run(ctx context.Context, stdout io.Writer) error {
	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✓ Parsed manifest: %d files, %d registries\n", len(m.Files), len(m.Registries))

	mem := sink.NewMemorySink()
	tc, err := tsgen.NewContext(tsgen.Config{
		Root:   ".",
		Sink:   mem,
		Logger: slog.New(slog.DiscardHandler),
	})
	if err != nil {
		return err
	}
	if err := tsgen.Run(ctx, tc, m); err != nil {
		return fmt.Errorf("check %s: %w", c.Manifest, err)
	}

	fmt.Fprintf(stdout, "✓ Indexed %d declarations\n", tc.Index().Len())
	fmt.Fprintf(stdout, "✓ Rendered %d files\n", len(mem.Paths()))
	return nil
}
