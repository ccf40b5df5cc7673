package modload

import (
	"context"
	"reflect"

	"github.com/aredridel/best6/internal/domain"
)

// Module is a loaded test module: an ordered set of exported bindings.
// Bindings are enumerated in declaration order, the order their exports
// were registered in.
type Module interface {
	Names() []string
	Value(name string) (any, bool)
}

// Export is a single named binding of a module.
type Export struct {
	Name  string
	Value any
}

type mapModule struct {
	names  []string
	values map[string]any
}

// NewModule builds a Module from ordered exports. A name exported twice
// keeps its first position and the last value.
func NewModule(exports ...Export) Module {
	m := &mapModule{values: make(map[string]any, len(exports))}
	for _, e := range exports {
		if _, ok := m.values[e.Name]; !ok {
			m.names = append(m.names, e.Name)
		}
		m.values[e.Name] = e.Value
	}
	return m
}

func (m *mapModule) Names() []string {
	return m.names
}

func (m *mapModule) Value(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// AsTestFunc adapts an exported value to a runnable test function.
// Supported shapes: func(context.Context) error, func() error and func().
func AsTestFunc(v any) (domain.TestFunc, bool) {
	switch fn := v.(type) {
	case domain.TestFunc:
		return fn, true
	case func(context.Context) error:
		return fn, true
	case func() error:
		return func(context.Context) error { return fn() }, true
	case func():
		return func(context.Context) error { fn(); return nil }, true
	}
	return nil, false
}

// IsFunc reports whether an exported value is a function of any shape,
// so the collector can tell an unsupported signature from a plain value.
func IsFunc(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Func
}
