package tsgen

import (
	"log/slog"
	"testing"

	"github.com/broady/tsgen/sink"
)

// newTestContext returns a Context writing to a MemorySink with logging
// discarded. cfg.Root defaults to "/proj".
func newTestContext(t *testing.T, cfg Config) (*Context, *sink.MemorySink) {
	t.Helper()
	mem := sink.NewMemorySink()
	if cfg.Root == "" {
		cfg.Root = "/proj"
	}
	if cfg.Sink == nil {
		cfg.Sink = mem
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	c, err := NewContext(cfg)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return c, mem
}

func renderString(t *testing.T, f *File) string {
	t.Helper()
	data, err := f.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(data)
}
