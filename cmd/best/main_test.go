package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/aredridel/best6/internal/cli/commands"
	"github.com/aredridel/best6/internal/config"
	"github.com/aredridel/best6/internal/modload"
)

func TestRewriteArgs(t *testing.T) {
	root := newRootCommand(config.New(), modload.NewRegistry())

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "no args",
			args: nil,
			want: nil,
		},
		{
			name: "flags only",
			args: []string{"-v"},
			want: []string{"-v"},
		},
		{
			name: "negated mask alone",
			args: []string{"-a/b"},
			want: []string{"--", "-a/b"},
		},
		{
			name: "flag before negated mask",
			args: []string{"-v", "-a/b", "x"},
			want: []string{"-v", "--", "-a/b", "x"},
		},
		{
			name: "include value is not a mask",
			args: []string{"-I", "dir", "-foo"},
			want: []string{"-I", "dir", "--", "-foo"},
		},
		{
			name: "long flag with value",
			args: []string{"--include", "dir", "-a/b"},
			want: []string{"--include", "dir", "--", "-a/b"},
		},
		{
			name: "subcommand stays first",
			args: []string{"list", "-a/b"},
			want: []string{"list", "--", "-a/b"},
		},
		{
			name: "explicit terminator passes through",
			args: []string{"-v", "--", "-I"},
			want: []string{"-v", "--", "-I"},
		},
		{
			name: "mask mixing flag letters with others",
			args: []string{"-visible"},
			want: []string{"--", "-visible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewriteArgs(root, tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rewriteArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func inTempProject(t *testing.T, files []string) {
	t.Helper()
	tmpDir := t.TempDir()
	for _, file := range files {
		full := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

// execute drives the root command the way main does: raw argv in,
// rewritten argv handed to cobra.
func execute(t *testing.T, registry *modload.Registry, argv ...string) error {
	t.Helper()
	root := newRootCommand(config.New(), registry)
	root.SetArgs(rewriteArgs(root, argv))
	return root.Execute()
}

func TestExecute_NegatedMaskExcludes(t *testing.T) {
	inTempProject(t, []string{"test/foo.js"})

	var ran []string
	record := func(name string) func() error {
		return func() error {
			ran = append(ran, name)
			return nil
		}
	}

	registry := modload.NewRegistry()
	registry.Register("test/foo", modload.NewModule(
		modload.Export{Name: "keep", Value: record("keep")},
		modload.Export{Name: "drop", Value: record("drop")},
	))

	if err := execute(t, registry, "-test/foo/drop"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ran) != 1 || ran[0] != "keep" {
		t.Errorf("ran = %v, want [keep]", ran)
	}
}

func TestExecute_FlagsAndNegatedMaskTogether(t *testing.T) {
	inTempProject(t, []string{"spec/foo.js"})

	var ran []string
	record := func(name string) func() error {
		return func() error {
			ran = append(ran, name)
			return nil
		}
	}

	registry := modload.NewRegistry()
	registry.Register("spec/foo", modload.NewModule(
		modload.Export{Name: "keep", Value: record("keep")},
		modload.Export{Name: "drop", Value: record("drop")},
	))

	err := execute(t, registry, "-v", "-I", "spec", "-spec/foo/drop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ran) != 1 || ran[0] != "keep" {
		t.Errorf("ran = %v, want [keep]", ran)
	}
}

func TestExecute_InvalidMaskIsUsageError(t *testing.T) {
	inTempProject(t, []string{"test/foo.js"})

	registry := modload.NewRegistry()
	registry.Register("test/foo", modload.NewModule(
		modload.Export{Name: "ok", Value: func() error { return nil }},
	))

	err := execute(t, registry, "a//b")

	var usage *commands.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected UsageError, got %v", err)
	}
}

func TestExecute_MissingDefaultIncludeSucceeds(t *testing.T) {
	inTempProject(t, nil)

	if err := execute(t, modload.NewRegistry()); err != nil {
		t.Errorf("missing default include dir should succeed, got %v", err)
	}
}
