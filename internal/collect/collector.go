// Package collect turns discovered test files into the ordered suite:
// it loads each file's module, derives qualified test names and applies
// the mask filter.
package collect

import (
	"path"
	"strings"

	"github.com/aredridel/best6/internal/discovery"
	"github.com/aredridel/best6/internal/domain"
	"github.com/aredridel/best6/internal/modload"
)

// Collector builds test suites from discovered files.
type Collector struct {
	registry *modload.Registry
	masks    *discovery.MaskSet
	verbose  bool
	warnf    func(format string, a ...any)
}

// New creates a Collector. warnf receives the non-fatal diagnostics
// (non-function exports, empty test files) and may be nil.
func New(registry *modload.Registry, masks *discovery.MaskSet, verbose bool, warnf func(format string, a ...any)) *Collector {
	return &Collector{registry: registry, masks: masks, verbose: verbose, warnf: warnf}
}

// Collect produces the ordered suite for the given files: per-file test
// sequences concatenated in discovery order, export order preserved
// within each file. A file whose module cannot be loaded aborts the whole
// collection. Duplicate qualified names are kept; both cases run.
func (c *Collector) Collect(files []string) ([]domain.TestCase, error) {
	var suite []domain.TestCase

	for _, file := range files {
		modPath := ModulePath(file)
		mod, err := c.registry.Load(modPath)
		if err != nil {
			return nil, err
		}

		callable := 0
		for _, export := range mod.Names() {
			value, _ := mod.Value(export)
			fn, ok := modload.AsTestFunc(value)
			if !ok {
				if modload.IsFunc(value) {
					c.warn("%s/%s: skipping test with unsupported signature", modPath, export)
				} else {
					c.warn("%s/%s: skipping non-function test", modPath, export)
				}
				continue
			}
			callable++

			name := modPath + "/" + export
			if !c.masks.Includes(name) {
				continue
			}
			suite = append(suite, domain.TestCase{Name: name, Fn: fn})
		}

		if callable == 0 && c.verbose {
			c.warn("%s: no test functions found", file)
		}
	}

	return suite, nil
}

func (c *Collector) warn(format string, a ...any) {
	if c.warnf != nil {
		c.warnf(format, a...)
	}
}

// ModulePath derives the module path of a source file by stripping its
// extension. Qualified test names are this path joined with the export
// name.
func ModulePath(file string) string {
	file = strings.ReplaceAll(file, "\\", "/")
	return strings.TrimSuffix(file, path.Ext(file))
}
