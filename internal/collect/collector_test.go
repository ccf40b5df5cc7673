package collect

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aredridel/best6/internal/discovery"
	"github.com/aredridel/best6/internal/modload"
)

func noMasks(t *testing.T) *discovery.MaskSet {
	t.Helper()
	set, err := discovery.ParseMasks(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return set
}

func masksFrom(t *testing.T, args ...string) *discovery.MaskSet {
	t.Helper()
	set, err := discovery.ParseMasks(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return set
}

func TestCollector_QualifiedNamesAndOrder(t *testing.T) {
	reg := modload.NewRegistry()
	reg.Register("test/foo", modload.NewModule(
		modload.Export{Name: "my_example_test", Value: func() error { return nil }},
	))
	reg.Register("test/bar", modload.NewModule(
		modload.Export{Name: "b_test", Value: func() error { return nil }},
		modload.Export{Name: "a_test", Value: func() error { return nil }},
	))

	collector := New(reg, noMasks(t), false, nil)
	suite, err := collector.Collect([]string{"test/foo.js", "test/bar.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"test/foo/my_example_test",
		"test/bar/b_test",
		"test/bar/a_test",
	}
	if len(suite) != len(want) {
		t.Fatalf("expected %d tests, got %d", len(want), len(suite))
	}
	for i, name := range want {
		if suite[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, suite[i].Name)
		}
	}
}

func TestCollector_SkipsNonCallableExports(t *testing.T) {
	reg := modload.NewRegistry()
	reg.Register("test/mixed", modload.NewModule(
		modload.Export{Name: "a_constant", Value: 42},
		modload.Export{Name: "wrong_shape", Value: func(int) {}},
		modload.Export{Name: "real_test", Value: func() error { return nil }},
	))

	var warnings []string
	collector := New(reg, noMasks(t), false, func(format string, a ...any) {
		warnings = append(warnings, fmt.Sprintf(format, a...))
	})

	suite, err := collector.Collect([]string{"test/mixed.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(suite) != 1 || suite[0].Name != "test/mixed/real_test" {
		t.Fatalf("expected only real_test in the suite, got %v", suite)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "non-function") {
		t.Errorf("expected non-function warning, got %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "unsupported signature") {
		t.Errorf("expected unsupported signature warning, got %q", warnings[1])
	}
}

func TestCollector_EmptyModuleWarnsOnlyWhenVerbose(t *testing.T) {
	reg := modload.NewRegistry()
	reg.Register("test/empty", modload.NewModule(
		modload.Export{Name: "just_data", Value: "nope"},
	))

	count := func(verbose bool) []string {
		var warnings []string
		collector := New(reg, noMasks(t), verbose, func(format string, a ...any) {
			warnings = append(warnings, fmt.Sprintf(format, a...))
		})
		if _, err := collector.Collect([]string{"test/empty.js"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return warnings
	}

	quiet := count(false)
	for _, w := range quiet {
		if strings.Contains(w, "no test functions") {
			t.Errorf("empty-file warning should require verbose, got %q", w)
		}
	}

	verbose := count(true)
	found := false
	for _, w := range verbose {
		if strings.Contains(w, "no test functions") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected empty-file warning in verbose mode, got %v", verbose)
	}
}

func TestCollector_AppliesMasks(t *testing.T) {
	reg := modload.NewRegistry()
	reg.Register("test/foo", modload.NewModule(
		modload.Export{Name: "keep_me", Value: func() error { return nil }},
		modload.Export{Name: "drop_me", Value: func() error { return nil }},
	))

	collector := New(reg, masksFrom(t, "test/foo", "-test/foo/drop_me"), false, nil)
	suite, err := collector.Collect([]string{"test/foo.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suite) != 1 || suite[0].Name != "test/foo/keep_me" {
		t.Fatalf("expected only keep_me, got %v", suite)
	}
}

func TestCollector_UnregisteredModuleIsFatal(t *testing.T) {
	collector := New(modload.NewRegistry(), noMasks(t), false, nil)
	if _, err := collector.Collect([]string{"test/ghost.js"}); err == nil {
		t.Error("expected error for a file with no registered module")
	}
}

func TestModulePath(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"test/foo.js", "test/foo"},
		{"test/sub/bar.mjs", "test/sub/bar"},
		{"test/baz.cjs", "test/baz"},
		{"plain", "plain"},
		{`test\win\x.js`, "test/win/x"},
	}
	for _, tt := range tests {
		if got := ModulePath(tt.file); got != tt.want {
			t.Errorf("ModulePath(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}
