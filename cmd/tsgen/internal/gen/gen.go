// Package gen implements `tsgen gen`.
package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/broady/tsgen"
	"github.com/broady/tsgen/manifest"
	"github.com/broady/tsgen/sink"
)

type Cmd struct {
	Manifest string            `arg:"" help:"Manifest file (.yaml, .yml, .toml or .json)." type:"existingfile"`
	Root     string            `help:"Output root directory." short:"r" default:"."`
	Opt      map[string]string `help:"Config override as key=value (ext, header, line_ending, mkdir)." short:"o"`
	DryRun   bool              `help:"Print the generated files as a txtar archive instead of writing them." short:"n" name:"dry-run"`
	Verbose  bool              `help:"Log every file written." short:"v"`
}

func (c *Cmd) Run() error {
	return c.run(context.Background(), os.Stdout, os.Stderr)
}

func (c *Cmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	m, err := manifest.Load(c.Manifest)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	cfg := tsgen.Config{
		Root:   c.Root,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	if err := tsgen.DecodeConfig(options(c.Opt), &cfg); err != nil {
		return err
	}

	var archive *sink.TxtarSink
	if c.DryRun {
		archive = sink.NewTxtarSink("tsgen " + c.Manifest)
		cfg.Sink = archive
	}

	tc, err := tsgen.NewContext(cfg)
	if err != nil {
		return err
	}
	if err := tsgen.Run(ctx, tc, m); err != nil {
		return fmt.Errorf("generate %s: %w", c.Manifest, err)
	}

	if archive != nil {
		_, err = stdout.Write(archive.Bytes())
	}
	return err
}

func options(opts map[string]string) url.Values {
	values := make(url.Values, len(opts))
	for k, v := range opts {
		values.Set(k, v)
	}
	return values
}
