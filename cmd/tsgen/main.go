package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/broady/tsgen/cmd/tsgen/internal/check"
	"github.com/broady/tsgen/cmd/tsgen/internal/gen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     gen.Cmd    `cmd:"" help:"Generate TypeScript sources from a manifest."`
	Check   check.Cmd  `cmd:"" help:"Validate a manifest and render it without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("tsgen"),
		kong.Description("Declarative TypeScript source generator."),
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	cli := &CLI{}
	parser, err := newParser(cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
