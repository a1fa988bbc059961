package seqmap

import (
	"fmt"
	"maps"
	"reflect"
	"sync"
)

// ConvertFunc converts a container into another representation. Handlers
// registered under a format name have this shape, and one can equally be
// called directly without going through the registry.
type ConvertFunc func(c *Container, opts *ExportOptions) any

// HandlerFunc converts a single value of a registered runtime type during
// ToArray recursion.
type HandlerFunc func(val any) any

// ExportOptions tunes the registered converters.
type ExportOptions struct {
	// DropKeys discards the container's keys at the top level of the
	// result, re-keying densely from 0. The zero value preserves keys.
	// Recursion at deeper levels always preserves structure.
	DropKeys bool

	// Handlers maps exact runtime types to converters, consulted by
	// ToArray for composite values that are neither plain
	// sequences/mappings nor primitives.
	Handlers map[reflect.Type]HandlerFunc
}

// formats is the process-wide export registry, scoped to the Container
// type. Seeded with the "array" flattener; registration guarded by the
// mutex, everything else follows the library's single-threaded model.
var formats = struct {
	sync.RWMutex
	m map[string]ConvertFunc
}{m: seededFormats()}

func seededFormats() map[string]ConvertFunc {
	return map[string]ConvertFunc{"array": arrayFormat}
}

func arrayFormat(c *Container, opts *ExportOptions) any {
	return ToArray(c, opts)
}

// RegisterFormat installs fn under name, overwriting any previous handler.
func RegisterFormat(name string, fn ConvertFunc) {
	formats.Lock()
	formats.m[name] = fn
	formats.Unlock()
}

// UnregisterFormat removes name from the registry.
func UnregisterFormat(name string) {
	formats.Lock()
	delete(formats.m, name)
	formats.Unlock()
}

// Formats returns a copy of the current registry contents.
func Formats() map[string]ConvertFunc {
	formats.RLock()
	defer formats.RUnlock()
	return maps.Clone(formats.m)
}

// ResetFormats restores the registry to the single seeded "array" handler.
func ResetFormats() {
	formats.Lock()
	formats.m = seededFormats()
	formats.Unlock()
}

// To converts the container with the handler registered under format.
// Fails with ErrUnsupportedFormat for an unregistered name.
func (c *Container) To(format string, opts *ExportOptions) (any, error) {
	formats.RLock()
	fn, ok := formats.m[format]
	formats.RUnlock()
	if !ok {
		return nil, fmt.Errorf("format %q is %w", format, ErrUnsupportedFormat)
	}
	return fn(c, opts), nil
}

// ToArray recursively flattens data into plain nested Go structures. It is
// the seeded "array" export handler, usable standalone over a *Container,
// a slice/array, a map or a bare value.
//
// Per value the first matching rule wins:
//  1. plain sequences and mappings (not the container type) are recursed
//     into with the same options,
//  2. primitives are kept as-is,
//  3. composite values whose exact runtime type has an opts.Handlers entry
//     are converted by it,
//  4. nested *Container values are recursed into,
//  5. values with a String method are converted through it,
//  6. anything else passes through unconverted.
//
// A container whose keys are the dense integers 0..n-1 flattens to []any,
// any other container to map[string]any keyed by Key.String().
// opts.DropKeys forces dense re-keying at the top level only.
func ToArray(data any, opts *ExportOptions) any {
	if opts == nil {
		opts = &ExportOptions{}
	}
	if c, ok := data.(*Container); ok {
		return flattenContainer(c, opts.DropKeys, opts)
	}
	return flattenValue(data, opts)
}

func flattenContainer(c *Container, drop bool, opts *ExportOptions) any {
	if drop || c.isList() {
		out := make([]any, 0, len(c.entries))
		for _, e := range c.entries {
			out = append(out, flattenValue(e.Val, opts))
		}
		return out
	}
	out := make(map[string]any, len(c.entries))
	for _, e := range c.entries {
		out[e.Key.String()] = flattenValue(e.Val, opts)
	}
	return out
}

// isList reports whether the keys are exactly the integers 0..n-1 in order.
func (c *Container) isList() bool {
	for i, e := range c.entries {
		if n, ok := e.Key.Int(); !ok || n != i {
			return false
		}
	}
	return true
}

func flattenValue(v any, opts *ExportOptions) any {
	if v == nil {
		return nil
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			out[i] = flattenValue(rv.Index(i).Interface(), opts)
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = flattenValue(iter.Value().Interface(), opts)
		}
		return out
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return v
	}
	if h, ok := opts.Handlers[reflect.TypeOf(v)]; ok {
		return h(v)
	}
	if c, ok := v.(*Container); ok {
		return flattenContainer(c, false, opts)
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}
