package gen

import (
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/caffql/caffql/caffqlgen"
)

type Cmd struct {
	Schema   string            `help:"Introspection JSON file." short:"s" required:"" type:"existingfile" env:"CAFFQL_SCHEMA"`
	Out      string            `help:"Output Go file." short:"o" required:"" env:"CAFFQL_OUT"`
	Package  string            `help:"Package name of the generated file." short:"n" default:"caffql" env:"CAFFQL_PACKAGE"`
	Optional string            `help:"How nullable values are typed." enum:"pointer,generic" default:"pointer" env:"CAFFQL_OPTIONAL"`
	Scalar   map[string]string `help:"Map a custom scalar to a Go type (Name=gotype)." env:"CAFFQL_SCALAR"`
	Opt      string            `help:"Comma-separated generator options (package=x,optional=generic,scalar=Name:gotype,comments,indent=N,validate)."`
	Comments bool              `help:"Emit schema descriptions as doc comments." short:"c"`
	Validate bool              `help:"Validate query documents against the schema before writing."`
}

func (c *Cmd) Run(logger *slog.Logger, stdout io.Writer) error {
	g := caffqlgen.FromFile(c.Schema).
		Package(c.Package).
		OptionalStyle(c.Optional).
		Logger(logger)
	for name, goType := range c.Scalar {
		g.ScalarMapping(name, goType)
	}
	if c.Comments {
		g.WithComments()
	}
	if c.Validate {
		g.Validate()
	}
	if c.Opt != "" {
		g.Options(c.Opt)
	}

	result, err := g.ToFile(c.Out)
	if err != nil {
		return err
	}

	cfg := g.Config()
	success := color.New(color.FgGreen)
	success.Fprintf(stdout, "Generated %s with package %s from %s\n", c.Out, cfg.Package, c.Schema)
	if n := len(result.Warnings); n > 0 {
		color.New(color.FgYellow).Fprintf(stdout, "%d warning(s), run with --verbose for details\n", n)
	}
	logger.Debug("generation complete",
		slog.Int("types", result.TypesGenerated),
		slog.Int("operations", len(result.Operations)),
		slog.Int64("bytes", result.Files[0].Size))
	return nil
}
