package seqmap

import (
	"fmt"
	"reflect"
)

// Each applies fn to every entry in order, replacing each value with fn's
// result, and returns the receiver. The set of visited keys is snapshotted
// when the walk starts: fn replacing values never changes it, and a key fn
// removed mid-walk is skipped. A panicking fn leaves the walk best-effort,
// not atomic.
func (c *Container) Each(fn func(val any, key Key, c *Container) any) *Container {
	for _, k := range c.Keys() {
		i, ok := c.index[k]
		if !ok {
			continue
		}
		val := fn(c.entries[i].Val, k, c)
		if j, ok := c.index[k]; ok {
			c.entries[j].Val = val
		}
	}
	return c
}

// Map returns a new container with the same keys in the same order, each
// value replaced by fn(value). The receiver is left untouched.
func (c *Container) Map(fn func(val any) any) *Container {
	out := &Container{pos: -1}
	for _, e := range c.entries {
		out.insert(e.Key, fn(e.Val))
	}
	return out
}

// Filter returns a new container over the entries for which pred is true,
// keeping their keys and relative order. The receiver is left untouched.
func (c *Container) Filter(pred func(val any, key Key) bool) *Container {
	out := &Container{pos: -1}
	for _, e := range c.entries {
		if pred(e.Val, e.Key) {
			out.insert(e.Key, e.Val)
		}
	}
	return out
}

// Where filters by field equality: an entry matches iff, for every pair in
// match, the entry value's corresponding field equals the given value.
// Fields are looked up in map[string]any values directly and in nested
// *Container values by string key; values of any other shape never match.
func (c *Container) Where(match map[string]any) *Container {
	return c.Filter(func(val any, _ Key) bool {
		for field, want := range match {
			got, ok := fieldOf(val, field)
			if !ok || !reflect.DeepEqual(got, want) {
				return false
			}
		}
		return true
	})
}

func fieldOf(val any, field string) (any, bool) {
	switch v := val.(type) {
	case map[string]any:
		got, ok := v[field]
		return got, ok
	case *Container:
		return v.Lookup(StrKey(field))
	}
	return nil, false
}

// Reduce folds the values in iteration order into an accumulator, starting
// from init. A nil init is the "no initial" case: the fold starts from the
// nil accumulator fn receives on the first call.
func (c *Container) Reduce(fn func(acc, val any) any, init any) any {
	acc := init
	for _, e := range c.entries {
		acc = fn(acc, e.Val)
	}
	return acc
}

// Slice returns a new container over the contiguous ordinal range starting
// at offset, for up to length entries. A negative offset counts from the
// end; a negative length means to the end. With preserveKeys the original
// keys are kept, otherwise the result is re-keyed densely from 0. The
// receiver is left untouched.
func (c *Container) Slice(offset, length int, preserveKeys bool) *Container {
	n := len(c.entries)
	if offset < 0 {
		offset += n
		if offset < 0 {
			offset = 0
		}
	}
	if offset > n {
		offset = n
	}
	end := n
	if length >= 0 && offset+length < n {
		end = offset + length
	}
	out := &Container{pos: -1}
	for i, e := range c.entries[offset:end] {
		if preserveKeys {
			out.insert(e.Key, e.Val)
		} else {
			out.insert(IntKey(i), e.Val)
		}
	}
	return out
}

// Merge walks other in its order and folds it into the receiver, which is
// returned. With preserveKeys every entry is assigned under its own key, so
// colliding keys overwrite in place and new keys append. Otherwise every
// value is appended under a fresh integer key continuing from the
// receiver's current maximum, which makes Merge(other, false) and Append
// equivalent.
func (c *Container) Merge(other *Container, preserveKeys bool) *Container {
	if preserveKeys {
		for _, e := range other.entries {
			c.Set(e.Key, e.Val)
		}
		return c
	}
	next := c.nextIntKey()
	for _, e := range other.entries {
		c.Set(IntKey(next), e.Val)
		next++
	}
	return c
}

// Append appends every value of other under fresh integer keys, never
// overwriting by key, and returns the receiver.
func (c *Container) Append(other *Container) *Container {
	return c.Merge(other, false)
}

// Caller is the capability required of Invoke targets: a value exposes its
// named operations through a single dispatch method.
type Caller interface {
	Call(method string, args []any) (any, error)
}

// Invoke calls method with args on every value in iteration order and
// collects the results, keyed as the source, into a new container.
// Fails with ErrUnsupportedOperation for an element that does not implement
// Caller. Errors from an element's own Call propagate unchanged.
func (c *Container) Invoke(method string, args []any) (*Container, error) {
	return c.InvokeWith(method, func(any, Key, *Container) []any {
		return args
	})
}

// InvokeWith is Invoke with a per-element argument list: argsFn is called
// fresh for each element to produce the arguments of that element's call.
func (c *Container) InvokeWith(method string, argsFn func(val any, key Key, c *Container) []any) (*Container, error) {
	out := &Container{pos: -1}
	for _, e := range c.entries {
		target, ok := e.Val.(Caller)
		if !ok {
			return nil, fmt.Errorf("%q on key %q is %w", method, e.Key, ErrUnsupportedOperation)
		}
		res, err := target.Call(method, argsFn(e.Val, e.Key, c))
		if err != nil {
			return nil, err
		}
		out.insert(e.Key, res)
	}
	return out, nil
}
