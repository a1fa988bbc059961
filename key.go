package seqmap

import (
	"cmp"
	"strconv"
	"strings"
)

// Key is the key of a container entry: an integer or a string.
// The zero Key is the "no key" marker accepted by Set, which appends the
// value under the next free integer key.
type Key struct {
	str  string
	num  int
	kind keyKind
}

type keyKind uint8

const (
	keyNone keyKind = iota
	keyInt
	keyStr
)

// IntKey returns an integer key.
func IntKey(i int) Key {
	return Key{num: i, kind: keyInt}
}

// StrKey returns a string key.
func StrKey(s string) Key {
	return Key{str: s, kind: keyStr}
}

// IsZero reports whether k is the "no key" marker.
func (k Key) IsZero() bool {
	return k.kind == keyNone
}

// Int returns the integer key value. ok is false for string and zero keys.
func (k Key) Int() (i int, ok bool) {
	return k.num, k.kind == keyInt
}

// Str returns the string key value. ok is false for integer and zero keys.
func (k Key) Str() (s string, ok bool) {
	return k.str, k.kind == keyStr
}

// String formats the key for display. Integer keys render in decimal.
func (k Key) String() string {
	switch k.kind {
	case keyInt:
		return strconv.Itoa(k.num)
	case keyStr:
		return k.str
	}
	return ""
}

// Compare orders keys: integer keys numerically, string keys
// lexicographically, integer keys before string keys.
func (k Key) Compare(o Key) int {
	if k.kind != o.kind {
		return cmp.Compare(k.kind, o.kind)
	}
	switch k.kind {
	case keyInt:
		return cmp.Compare(k.num, o.num)
	case keyStr:
		return strings.Compare(k.str, o.str)
	}
	return 0
}
