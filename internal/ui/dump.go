package ui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Dump renders a value for the two-panel expected/actual display,
// descending at most depth levels. Deeper structure collapses to "…".
func Dump(v any, depth int) string {
	var b strings.Builder
	dumpValue(&b, reflect.ValueOf(v), depth)
	return b.String()
}

func dumpValue(b *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		b.WriteString("<nil>")
		return
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		dumpValue(b, v.Elem(), depth)

	case reflect.String:
		fmt.Fprintf(b, "%q", v.String())

	case reflect.Slice, reflect.Array:
		if depth <= 0 {
			b.WriteString("…")
			return
		}
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			dumpValue(b, v.Index(i), depth-1)
		}
		b.WriteByte(']')

	case reflect.Map:
		if depth <= 0 {
			b.WriteString("…")
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		b.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%v: ", key)
			dumpValue(b, v.MapIndex(key), depth-1)
		}
		b.WriteByte('}')

	case reflect.Struct:
		if depth <= 0 {
			b.WriteString("…")
			return
		}
		t := v.Type()
		b.WriteString(t.Name())
		b.WriteByte('{')
		first := true
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(t.Field(i).Name)
			b.WriteString(": ")
			dumpValue(b, v.Field(i), depth-1)
		}
		b.WriteByte('}')

	default:
		// fmt formats a reflect.Value as the value it holds, which
		// avoids Interface() panics on values dug out of structs.
		fmt.Fprintf(b, "%v", v)
	}
}
