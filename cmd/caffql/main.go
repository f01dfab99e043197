package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/caffql/caffql/cmd/caffql/internal/check"
	"github.com/caffql/caffql/cmd/caffql/internal/gen"
)

type CLI struct {
	Verbose bool `help:"Log debug output to stderr." short:"v" env:"CAFFQL_VERBOSE"`

	Gen     gen.Cmd    `cmd:"" default:"withargs" help:"Generate Go types and operations from an introspection schema."`
	Check   check.Cmd  `cmd:"" help:"Build and validate every operation document without generating files."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(stdout io.Writer) error {
	fmt.Fprintln(stdout, Version())
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("caffql"),
		kong.Description("Generate Go client code from a GraphQL introspection schema."),
		kong.UsageOnError(),
	)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err := ctx.Run(newLogger(os.Stderr, cli.Verbose))
	ctx.FatalIfErrorf(err)
}
