package tsgen

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/broady/tsgen/sink"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

// Config holds the configuration for a generation run.
type Config struct {
	// Root is the project directory. Files are created relative to it and
	// relative imports are resolved against it.
	// e.g. "./client/src/generated"
	Root string `schema:"root" validate:"required"`

	// Extension is appended to every file name.
	// Default: ".ts"
	Extension string `schema:"ext" validate:"required,startswith=."`

	// Header is the first line of every generated file.
	// Default: "/// AUTO GENERATED"
	Header string `schema:"header" validate:"required"`

	// LineEnding joins rendered lines.
	// Supported values: "crlf", "lf".
	// Default: "crlf"
	LineEnding string `schema:"line_ending" validate:"required,oneof=lf crlf"`

	// MkdirAll creates missing parent directories when writing with the
	// default filesystem sink. Ignored when Sink is set.
	MkdirAll bool `schema:"mkdir"`

	// Sink receives rendered files.
	// Default: a sink.FilesystemSink rooted at Root.
	Sink sink.OutputSink `schema:"-" validate:"-"`

	// Logger receives progress and failure records.
	// Default: slog.Default()
	Logger *slog.Logger `schema:"-" validate:"-"`
}

// DecodeConfig applies key=value overrides to cfg.
// Keys are the schema tags of Config: root, ext, header, line_ending, mkdir.
func DecodeConfig(values url.Values, cfg *Config) error {
	if err := schemaDecoder.Decode(cfg, values); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Extension == "" {
		cfg.Extension = ".ts"
	}
	if cfg.Header == "" {
		cfg.Header = "/// AUTO GENERATED"
	}
	if cfg.LineEnding == "" {
		cfg.LineEnding = "crlf"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Sink == nil && cfg.Root != "" {
		fsSink := sink.NewFilesystemSink(cfg.Root)
		fsSink.MkdirAll = cfg.MkdirAll
		cfg.Sink = fsSink
	}
	return cfg
}

func (c *Config) newline() string {
	if c.LineEnding == "lf" {
		return "\n"
	}
	return "\r\n"
}
