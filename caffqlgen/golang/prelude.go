package golang

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prelude.go.tmpl
var preludeSource string

var preludeTemplate = template.Must(template.New("prelude").Parse(preludeSource))

// preludeNames are the identifiers declared by the prelude. Schema types
// with these names are renamed.
var preludeNames = map[string]bool{
	"ID":                    true,
	"Optional":              true,
	"Some":                  true,
	"Ptr":                   true,
	"Operation":             true,
	"OperationQuery":        true,
	"OperationMutation":     true,
	"OperationSubscription": true,
	"GraphqlError":          true,
	"GraphqlResponse":       true,
	"Request":               true,
}

type preludeData struct {
	Package string
	Generic bool
	Imports []string
}

// prelude renders the fixed head of the generated file: header, package
// clause, imports, the optional adapter, the error container and the
// decoding helpers.
func (e *Emitter) prelude(imports []string) (string, error) {
	var sb strings.Builder
	err := preludeTemplate.Execute(&sb, preludeData{
		Package: e.config.Package,
		Generic: e.config.OptionalStyle == OptionalGeneric,
		Imports: imports,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
