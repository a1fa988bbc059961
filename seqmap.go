// Package seqmap provides an ordered keyed container: an insertion-ordered
// mapping from integer or string keys to arbitrary values, with a stateful
// iteration cursor, chainable bulk operations and a pluggable export registry.
package seqmap

import "fmt"

// Entry is one key-value pair of a Container.
type Entry struct {
	Key Key
	Val any
}

// Container is an ordered mapping from Key to arbitrary values.
// Insertion order is the iteration order; deleting and re-adding a key moves
// it to the end. Not thread-safe.
//
// Each Container carries a single iteration cursor (see Rewind, Next, Prev).
// Iterating the same instance from two call sites corrupts the shared cursor
// state; use Items or Values for independent walks.
//
// Example usage:
//
//	c := seqmap.New("a", "b", "c")
//	c.Set(seqmap.StrKey("name"), "delta")
//
//	for v, ok := c.Rewind(); ok; v, ok = c.Next() {
//		fmt.Println(v)
//	}
type Container struct {
	entries []Entry
	index   map[Key]int
	pos     int
	skip    bool
}

// New creates a Container over the given values, keyed 0..n-1.
func New(values ...any) *Container {
	c := &Container{pos: -1}
	for i, v := range values {
		c.insert(IntKey(i), v)
	}
	return c
}

// FromEntries creates a Container over the given key-value pairs in order.
// Set semantics apply per pair: a repeated key overwrites in place, a zero
// key appends under the next free integer key.
func FromEntries(entries ...Entry) *Container {
	c := &Container{pos: -1}
	for _, e := range entries {
		c.Set(e.Key, e.Val)
	}
	return c
}

// Has reports whether key is present.
func (c *Container) Has(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Get returns the value stored under key.
// Fails with ErrKeyNotFound if the key is absent.
func (c *Container) Get(key Key) (any, error) {
	i, ok := c.index[key]
	if !ok {
		return nil, fmt.Errorf("key %q is %w", key, ErrKeyNotFound)
	}
	return c.entries[i].Val, nil
}

// Lookup returns the value stored under key and whether the key is present.
func (c *Container) Lookup(key Key) (any, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.entries[i].Val, true
}

// Set assigns val under key and returns val. An existing key keeps its
// position, a new key appends at the end. The zero Key is the "no key"
// marker: it appends under the next free integer key, one past the current
// maximum integer key.
func (c *Container) Set(key Key, val any) any {
	if key.IsZero() {
		key = IntKey(c.nextIntKey())
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].Val = val
		return val
	}
	c.insert(key, val)
	return val
}

// Push appends val under the next free integer key and returns it.
func (c *Container) Push(val any) any {
	return c.Set(Key{}, val)
}

func (c *Container) insert(key Key, val any) {
	if c.index == nil {
		c.index = make(map[Key]int)
		c.pos = -1
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Val: val})
}

func (c *Container) nextIntKey() int {
	next := 0
	for _, e := range c.entries {
		if i, ok := e.Key.Int(); ok && i >= next {
			next = i + 1
		}
	}
	return next
}

// Delete removes key. Deleting an absent key is a no-op.
//
// Deleting the key under the cursor shifts the following entry into the
// cursor's slot and flags the cursor so that the next call to Next reports
// that entry instead of skipping past it. Deleting any other key never
// disturbs iteration.
func (c *Container) Delete(key Key) {
	p, ok := c.index[key]
	if !ok {
		return
	}
	delete(c.index, key)
	c.entries = append(c.entries[:p], c.entries[p+1:]...)
	for i := p; i < len(c.entries); i++ {
		c.index[c.entries[i].Key] = i
	}
	if c.pos < 0 {
		return
	}
	switch {
	case p < c.pos:
		c.pos--
	case p == c.pos:
		if c.pos < len(c.entries) {
			c.skip = true
		} else {
			c.pos = -1
			c.skip = false
		}
	}
}

// Count returns the number of entries.
func (c *Container) Count() int {
	return len(c.entries)
}

// IsEmpty reports whether the container has no entries.
func (c *Container) IsEmpty() bool {
	return len(c.entries) == 0
}

// Keys returns a snapshot of the keys in iteration order.
func (c *Container) Keys() []Key {
	keys := make([]Key, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Values returns a snapshot of the values in iteration order.
func (c *Container) Values() []any {
	vals := make([]any, len(c.entries))
	for i, e := range c.entries {
		vals[i] = e.Val
	}
	return vals
}

// Raw returns the backing entry slice. It exposes the container's internal
// state; treat it as read-only.
func (c *Container) Raw() []Entry {
	return c.entries
}

// Clear removes all entries and invalidates the cursor.
func (c *Container) Clear() {
	c.entries = nil
	clear(c.index)
	c.pos = -1
	c.skip = false
}

// Items implements iter.Seq2[Key, any], iterating all entries in order.
// Unlike the cursor methods it keeps no state on the container, so several
// walks over the same instance can run independently.
func (c *Container) Items(yield func(Key, any) bool) {
	for _, e := range c.entries {
		if !yield(e.Key, e.Val) {
			return
		}
	}
}
