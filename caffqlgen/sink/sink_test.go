package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{name: "simple file", path: "caffql.go"},
		{name: "nested path", path: "api/graphql/caffql.go"},
		{name: "empty path", path: "", wantErr: true, errMsg: "empty"},
		{name: "absolute path", path: "/tmp/caffql.go", wantErr: true, errMsg: "absolute paths not allowed"},
		{name: "windows drive", path: "C:caffql.go", wantErr: true, errMsg: "absolute paths not allowed"},
		{name: "traversal", path: "api/../caffql.go", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "leading traversal", path: "../caffql.go", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "current dir prefix", path: "./caffql.go", wantErr: true, errMsg: "not clean"},
		{name: "dots inside a name", path: "api/v1..v2/caffql.go"},
		{name: "double slash", path: "api//caffql.go", wantErr: true, errMsg: "not clean"},
		{name: "trailing slash", path: "api/", wantErr: true, errMsg: "not clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidatePath() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestMemorySink(t *testing.T) {
	t.Run("write and get", func(t *testing.T) {
		sink := NewMemorySink()
		if err := sink.WriteFile(context.Background(), "caffql.go", []byte("package caffql")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		if got := string(sink.Get("caffql.go")); got != "package caffql" {
			t.Errorf("Get() = %q, want %q", got, "package caffql")
		}
		if got := sink.Get("missing.go"); got != nil {
			t.Errorf("Get(missing) = %q, want nil", got)
		}
	})

	t.Run("stores a copy", func(t *testing.T) {
		sink := NewMemorySink()
		content := []byte("original")
		if err := sink.WriteFile(context.Background(), "caffql.go", content); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		content[0] = 'X'
		if got := string(sink.Get("caffql.go")); got != "original" {
			t.Errorf("Get() = %q, want %q", got, "original")
		}

		files := sink.Files()
		files["caffql.go"][0] = 'Y'
		if got := string(sink.Get("caffql.go")); got != "original" {
			t.Errorf("Get() after mutating Files() = %q, want %q", got, "original")
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		sink := NewMemorySink()
		if err := sink.WriteFile(context.Background(), "../caffql.go", []byte("x")); err == nil {
			t.Error("WriteFile() with traversal should fail")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		sink := NewMemorySink()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := sink.WriteFile(ctx, "caffql.go", []byte("x")); err != context.Canceled {
			t.Errorf("WriteFile() error = %v, want context.Canceled", err)
		}
	})
}

func TestMemorySink_Concurrent(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := fmt.Sprintf("gen/file%d.go", i)
			if err := sink.WriteFile(ctx, path, []byte(path)); err != nil {
				t.Errorf("WriteFile(%s) error = %v", path, err)
			}
		}()
	}
	wg.Wait()

	if n := len(sink.Files()); n != 20 {
		t.Errorf("len(Files()) = %d, want 20", n)
	}
}

func TestFilesystemSink(t *testing.T) {
	ctx := context.Background()

	t.Run("creates parent directories", func(t *testing.T) {
		root := t.TempDir()
		sink := NewFilesystemSink(root)
		if err := sink.WriteFile(ctx, "api/graphql/caffql.go", []byte("package graphql")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, err := os.ReadFile(filepath.Join(root, "api", "graphql", "caffql.go"))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "package graphql" {
			t.Errorf("ReadFile() = %q, want %q", got, "package graphql")
		}
	})

	t.Run("overwrites by default", func(t *testing.T) {
		root := t.TempDir()
		sink := NewFilesystemSink(root)
		for _, content := range []string{"first", "second"} {
			if err := sink.WriteFile(ctx, "caffql.go", []byte(content)); err != nil {
				t.Fatalf("WriteFile(%s) error = %v", content, err)
			}
		}
		got, err := os.ReadFile(filepath.Join(root, "caffql.go"))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "second" {
			t.Errorf("ReadFile() = %q, want %q", got, "second")
		}
	})

	t.Run("respects file mode", func(t *testing.T) {
		root := t.TempDir()
		sink := NewFilesystemSink(root)
		sink.Mode = 0600
		if err := sink.WriteFile(ctx, "caffql.go", []byte("x")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		info, err := os.Stat(filepath.Join(root, "caffql.go"))
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if mode := info.Mode().Perm(); mode != 0600 {
			t.Errorf("mode = %o, want %o", mode, 0600)
		}
	})

	t.Run("Overwrite=false rejects existing files", func(t *testing.T) {
		root := t.TempDir()
		sink := NewFilesystemSink(root)
		sink.Overwrite = false
		if err := sink.WriteFile(ctx, "caffql.go", []byte("first")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		err := sink.WriteFile(ctx, "caffql.go", []byte("second"))
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Fatalf("WriteFile() error = %v, want already exists", err)
		}
		got, _ := os.ReadFile(filepath.Join(root, "caffql.go"))
		if string(got) != "first" {
			t.Errorf("ReadFile() = %q, want %q", got, "first")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		root := t.TempDir()
		for _, overwrite := range []bool{true, false} {
			sink := NewFilesystemSink(root)
			sink.Overwrite = overwrite
			if err := sink.WriteFile(ctx, fmt.Sprintf("out%t.go", overwrite), []byte("x")); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 2 {
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("directory holds %v, want exactly the two outputs", names)
		}
	})

	t.Run("rejects invalid paths", func(t *testing.T) {
		sink := NewFilesystemSink(t.TempDir())
		for _, path := range []string{"../escape.go", "/abs.go", ""} {
			if err := sink.WriteFile(ctx, path, []byte("x")); err == nil {
				t.Errorf("WriteFile(%q) should fail", path)
			}
		}
	})
}
