package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/caffql/caffql/internal/testfixtures"
)

func init() {
	color.NoColor = true
}

// run parses args and runs the selected command, returning its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("caffql"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	var stdout bytes.Buffer
	ctx.BindTo(&stdout, (*io.Writer)(nil))
	err = ctx.Run(newLogger(io.Discard, cli.Verbose))
	return stdout.String(), err
}

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, testfixtures.StarWars, 0644))
	return path
}

func TestGen(t *testing.T) {
	schema := writeSchema(t)
	out := filepath.Join(t.TempDir(), "starwars.go")

	stdout, err := run(t, "gen", "-s", schema, "-o", out, "-n", "starwars", "--optional", "generic", "--validate")
	require.NoError(t, err)
	require.Equal(t, "Generated "+out+" with package starwars from "+schema+"\n", stdout)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(src), "package starwars\n")
	require.Contains(t, string(src), "type Optional[T any] struct {")
}

func TestGen_DefaultCommand(t *testing.T) {
	schema := writeSchema(t)
	out := filepath.Join(t.TempDir(), "caffql.go")

	stdout, err := run(t, "-s", schema, "-o", out, "--opt", "package=api,comments")
	require.NoError(t, err)
	require.Contains(t, stdout, "with package api from")

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(src), "package api\n")
	require.Contains(t, string(src), "// Human is the GraphQL object Human.\n//\n// A humanoid creature")
}

func TestGen_Errors(t *testing.T) {
	schema := writeSchema(t)
	out := filepath.Join(t.TempDir(), "caffql.go")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing schema flag", []string{"gen", "-o", out}, "--schema"},
		{"schema does not exist", []string{"gen", "-s", filepath.Join(t.TempDir(), "nope.json"), "-o", out}, "nope.json"},
		{"bad optional style", []string{"gen", "-s", schema, "-o", out, "--optional", "nullable"}, "--optional"},
		{"bad package", []string{"gen", "-s", schema, "-o", out, "-n", "my-api"}, "not a valid Go package name"},
		{"bad option string", []string{"gen", "-s", schema, "-o", out, "--opt", "flavor=zod"}, "invalid options"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr), "no output must be written on failure")
}

func TestCheck(t *testing.T) {
	stdout, err := run(t, "check", "-s", writeSchema(t))
	require.NoError(t, err)
	require.Equal(t, "✓ 11 types in dependency order\n✓ 5 operation documents valid\n", stdout)
}

func TestVersion(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(stdout))
}

func TestVersionFrom(t *testing.T) {
	tests := []struct {
		name string
		info debug.BuildInfo
		want string
	}{
		{
			name: "installed module",
			info: debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
			want: "v0.3.1",
		},
		{
			name: "development build",
			info: debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: "devel-0.1.0",
		},
		{
			name: "development build with revision",
			info: debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
			},
			want: "devel-0.1.0+0123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, versionFrom(&tt.info, "0.1.0"))
		})
	}
}
