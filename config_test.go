package tsgen

import (
	"errors"
	"net/url"
	"testing"
)

func TestNewContext_Defaults(t *testing.T) {
	c, err := New("/proj")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg := c.Config()
	if cfg.Extension != ".ts" {
		t.Errorf("Extension = %q, want .ts", cfg.Extension)
	}
	if cfg.Header != "/// AUTO GENERATED" {
		t.Errorf("Header = %q", cfg.Header)
	}
	if cfg.LineEnding != "crlf" {
		t.Errorf("LineEnding = %q, want crlf", cfg.LineEnding)
	}
	if cfg.Logger == nil || cfg.Sink == nil {
		t.Error("Logger and Sink should default to non-nil")
	}
}

func TestNewContext_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing root", Config{}},
		{"extension without dot", Config{Root: "out", Extension: "ts"}},
		{"unknown line ending", Config{Root: "out", LineEnding: "cr"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewContext(tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewContext() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg := Config{Root: "out"}
	values := url.Values{
		"ext":         {".mts"},
		"line_ending": {"lf"},
		"mkdir":       {"true"},
		"header":      {"// generated"},
	}
	if err := DecodeConfig(values, &cfg); err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.Root != "out" || cfg.Extension != ".mts" || cfg.LineEnding != "lf" || !cfg.MkdirAll || cfg.Header != "// generated" {
		t.Errorf("DecodeConfig() = %+v", cfg)
	}

	c, err := NewContext(cfg)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if f := c.File("index"); f.Path != "out/index.mts" {
		t.Errorf("Path = %q, want out/index.mts", f.Path)
	}
}

func TestDecodeConfig_UnknownKey(t *testing.T) {
	var cfg Config
	err := DecodeConfig(url.Values{"indent": {"2"}}, &cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("DecodeConfig() error = %v, want ErrInvalidConfig", err)
	}
}
