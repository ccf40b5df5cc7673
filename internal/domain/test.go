package domain

import "context"

// TestFunc is the normalized form of a runnable test export.
type TestFunc func(ctx context.Context) error

// TestCase is a single selected test: a qualified name plus the callable
// behind it. The qualified name is the source path with its extension
// stripped, joined with the export name (e.g. "test/foo/my_example_test").
// Names are not deduplicated; two files exporting the same qualified name
// both run.
type TestCase struct {
	Name string
	Fn   TestFunc
}
