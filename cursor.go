package seqmap

import "github.com/dacapoday/seqmap/iterator"

// The cursor is the container's single external-iteration position, tracked
// as an ordinal index into the entry sequence. -1 is the invalid sentinel:
// before the first positioning call, past either end, and after Clear.
//
// Deleting the entry under the cursor physically shifts its successor into
// the cursor's slot; Delete flags that state so the following Next reports
// the successor instead of advancing past it. A forward walk that deletes
// the current entry at each step therefore visits every element exactly
// once, in order, with no caller-side bookkeeping.

var _ iterator.Cursor[Key, any] = (*Container)(nil)

// Valid reports whether the cursor is positioned on an entry.
func (c *Container) Valid() bool {
	return c.pos >= 0 && c.pos < len(c.entries)
}

// Current returns the value under the cursor.
// ok is false when the cursor is not positioned on an entry.
func (c *Container) Current() (any, bool) {
	if !c.Valid() {
		return nil, false
	}
	return c.entries[c.pos].Val, true
}

// Key returns the key under the cursor.
// ok is false when the cursor is not positioned on an entry.
func (c *Container) Key() (Key, bool) {
	if !c.Valid() {
		return Key{}, false
	}
	return c.entries[c.pos].Key, true
}

// Rewind positions the cursor on the first entry and returns its value.
// ok is false when the container is empty.
func (c *Container) Rewind() (any, bool) {
	c.skip = false
	if len(c.entries) == 0 {
		c.pos = -1
		return nil, false
	}
	c.pos = 0
	return c.entries[0].Val, true
}

// First is Rewind under the name used by value-access call sites.
func (c *Container) First() (any, bool) {
	return c.Rewind()
}

// End positions the cursor on the last entry and returns its value.
// ok is false when the container is empty.
func (c *Container) End() (any, bool) {
	c.skip = false
	if len(c.entries) == 0 {
		c.pos = -1
		return nil, false
	}
	c.pos = len(c.entries) - 1
	return c.entries[c.pos].Val, true
}

// Next advances the cursor and returns the value at the new position.
// When the entry under the cursor was just deleted, its successor has
// already shifted into the cursor's slot: that entry is reported without
// advancing. Running past the last entry invalidates the cursor.
func (c *Container) Next() (any, bool) {
	if c.skip {
		c.skip = false
		return c.Current()
	}
	if c.pos < 0 {
		return nil, false
	}
	c.pos++
	if c.pos >= len(c.entries) {
		c.pos = -1
		return nil, false
	}
	return c.entries[c.pos].Val, true
}

// Prev moves the cursor back and returns the value at the new position.
// Running past the first entry invalidates the cursor. Prev neither
// consults nor clears the deletion flag that Next honors.
func (c *Container) Prev() (any, bool) {
	if c.pos < 0 {
		return nil, false
	}
	c.pos--
	if c.pos < 0 {
		return nil, false
	}
	return c.entries[c.pos].Val, true
}
