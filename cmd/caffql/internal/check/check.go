package check

import (
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/caffql/caffql/caffqlgen"
)

type Cmd struct {
	Schema string `help:"Introspection JSON file." short:"s" required:"" type:"existingfile" env:"CAFFQL_SCHEMA"`
}

func (c *Cmd) Run(logger *slog.Logger, stdout io.Writer) error {
	result, err := caffqlgen.FromFile(c.Schema).Logger(logger).Check()
	if err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	ok.Fprintf(stdout, "✓ %d types in dependency order\n", result.Types)
	for _, doc := range result.Documents {
		logger.Debug("document", slog.String("operation", doc.Operation.Keyword()), slog.String("name", doc.Name), slog.Int("variables", len(doc.Variables)))
	}
	ok.Fprintf(stdout, "✓ %d operation documents valid\n", len(result.Documents))
	return nil
}
