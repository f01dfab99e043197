package caffqlgen

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/caffql/caffql/caffqlgen/golang"
)

// Config holds the configuration for code generation.
type Config struct {
	// SchemaPath is the introspection JSON file to read.
	// Unused when the generator was created with FromSchema.
	SchemaPath string

	// OutputPath is the generated Go file.
	// e.g. "./internal/api/caffql.go"
	OutputPath string

	// Package is the package clause of the generated file.
	// Default: "caffql"
	Package string `validate:"required,goident"`

	// OptionalStyle controls how nullable values are typed.
	// Supported values: "pointer" (*T), "generic" (Optional[T]).
	// Default: "pointer"
	OptionalStyle string `validate:"required,oneof=pointer generic"`

	// ScalarMappings maps custom GraphQL scalars to Go types.
	// e.g. map[string]string{"DateTime": "time.Time", "UUID": "github.com/google/uuid.UUID"}
	ScalarMappings map[string]string `validate:"dive,keys,required,endkeys,required"`

	// EmitComments emits schema descriptions as Go doc comments.
	EmitComments bool

	// QueryIndent is the indentation of the embedded query documents.
	// Default: two spaces
	QueryIndent string

	// ValidateDocuments checks every query document against the schema
	// before anything is written.
	ValidateDocuments bool

	// Logger receives progress and warning records. Defaults to slog.Default().
	Logger *slog.Logger
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return token.IsIdentifier(name) && name != "_"
	}); err != nil {
		panic(err)
	}
	return v
}

// applyConfigDefaults applies default values to Config.
func applyConfigDefaults(cfg *Config) *Config {
	// Make a copy to avoid mutating the input
	result := *cfg

	if result.Package == "" {
		result.Package = "caffql"
	}
	if result.OptionalStyle == "" {
		result.OptionalStyle = golang.OptionalPointer
	}
	if result.QueryIndent == "" {
		result.QueryIndent = "  "
	}
	if result.Logger == nil {
		result.Logger = slog.Default()
	}
	return &result
}

// validateConfig reports every invalid field of cfg in one error.
func validateConfig(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Field()+": "+formatValidationError(ve))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "goident":
		return fmt.Sprintf("%q is not a valid Go package name", ve.Value())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// options is the decoded form of an option string.
type options struct {
	Package  string   `schema:"package"`
	Optional string   `schema:"optional"`
	Scalars  []string `schema:"scalar"`
	Comments bool     `schema:"comments"`
	Indent   int      `schema:"indent"`
	Validate bool     `schema:"validate"`
}

var optionsDecoder = schema.NewDecoder()

// ParseOptions applies a comma-separated option string to cfg, in the form
// "package=starwars,optional=generic,scalar=DateTime:time.Time,comments".
//
// Supported keys: package, optional, scalar (repeatable, Name:gotype),
// comments, indent (spaces) and validate. A key without a value is a true
// boolean. Keys absent from s leave cfg unchanged.
func ParseOptions(s string, cfg *Config) error {
	values := url.Values{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			value = "true"
		}
		values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	opts := options{
		Package:  cfg.Package,
		Optional: cfg.OptionalStyle,
		Comments: cfg.EmitComments,
		Validate: cfg.ValidateDocuments,
	}
	if err := optionsDecoder.Decode(&opts, values); err != nil {
		return fmt.Errorf("invalid options %q: %w", s, err)
	}

	for _, scalar := range opts.Scalars {
		name, goType, ok := strings.Cut(scalar, ":")
		if !ok || name == "" || goType == "" {
			return fmt.Errorf("invalid scalar option %q (expected Name:gotype)", scalar)
		}
		if cfg.ScalarMappings == nil {
			cfg.ScalarMappings = make(map[string]string)
		}
		cfg.ScalarMappings[name] = goType
	}
	cfg.Package = opts.Package
	cfg.OptionalStyle = opts.Optional
	cfg.EmitComments = opts.Comments
	cfg.ValidateDocuments = opts.Validate
	if values.Has("indent") {
		if opts.Indent <= 0 {
			return fmt.Errorf("invalid indent %d (expected a positive number of spaces)", opts.Indent)
		}
		cfg.QueryIndent = strings.Repeat(" ", opts.Indent)
	}
	return nil
}
