package modload

import (
	"fmt"
	"sync"
)

// Registry maps extension-less source paths to module descriptors. Go has
// no dynamic script import, so test modules register themselves here
// (typically from an init function) and the runner resolves discovered
// files against the registry. Resolving a path that was never registered
// is a load failure and aborts the run.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
	imports map[string]func() error
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
		imports: make(map[string]func() error),
	}
}

// Register binds a module descriptor to a slash-separated source path
// without extension, e.g. "test/foo". Registering the same path again
// replaces the previous module.
func (r *Registry) Register(path string, m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[path] = m
}

// Load resolves a registered module by path.
func (r *Registry) Load(path string) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[path]
	if !ok {
		return nil, fmt.Errorf("cannot load module %q: not registered", path)
	}
	return m, nil
}

// RegisterImport binds a named side-effect import hook, run via Import
// before any test executes.
func (r *Registry) RegisterImport(name string, fn func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imports[name] = fn
}

// Import runs a registered side-effect import. Unknown names and hook
// errors are both fatal to the run.
func (r *Registry) Import(name string) error {
	r.mu.RLock()
	fn, ok := r.imports[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("cannot import %q: not registered", name)
	}
	if err := fn(); err != nil {
		return fmt.Errorf("import %q failed: %w", name, err)
	}
	return nil
}

// Default is the process-wide registry the CLI runs against.
var Default = NewRegistry()

// Register binds a module's ordered exports in the default registry.
func Register(path string, exports ...Export) {
	Default.Register(path, NewModule(exports...))
}

// RegisterImport binds a side-effect import hook in the default registry.
func RegisterImport(name string, fn func() error) {
	Default.RegisterImport(name, fn)
}
