package iterator

// Cursor represents a stateful iteration position over an ordered keyed
// dataset. The cursor keeps a single current position per dataset instance
// and can be moved forward or backward through the entries in their order.
//
// Usage:
//
//	for v, ok := cur.Rewind(); ok; v, ok = cur.Next() {
//	    // process v
//	}
//
// A Cursor is resumable, not a stream: positioning calls may be issued in
// any order, and the position survives between calls.
type Cursor[K comparable, V any] interface {
	// Valid reports whether the cursor is positioned on an entry.
	// Returns false before the first positioning call, after running past
	// either end, and on an empty dataset.
	Valid() bool

	// Key returns the key at the current position.
	// ok is false when the cursor is not positioned on an entry.
	Key() (key K, ok bool)

	// Current returns the value at the current position.
	// ok is false when the cursor is not positioned on an entry.
	Current() (val V, ok bool)

	// Next advances to the following entry and returns its value.
	// ok is false when the cursor ran past the last entry; the cursor is
	// then invalid until repositioned.
	Next() (val V, ok bool)

	// Prev moves to the preceding entry and returns its value.
	// ok is false when the cursor ran past the first entry; the cursor is
	// then invalid until repositioned.
	Prev() (val V, ok bool)

	// Rewind positions the cursor on the first entry and returns its value.
	// ok is false when the dataset is empty.
	Rewind() (val V, ok bool)

	// End positions the cursor on the last entry and returns its value.
	// ok is false when the dataset is empty.
	End() (val V, ok bool)
}
