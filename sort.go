package seqmap

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/dacapoday/seqmap/internal/natsort"
)

// CompareFunc orders two values: negative if a sorts before b, positive if
// b sorts before a, zero if they tie.
type CompareFunc func(a, b any) int

// OrderFunc reorders a raw entry sequence in place. It is the strategy
// shape behind SortBy and SortWith.
type OrderFunc func(entries []Entry)

// sortStrategies holds the orderings SortBy accepts by name.
var sortStrategies = map[string]OrderFunc{
	"values":  byValues(nil),
	"keys":    byKeys,
	"natural": byNatural,
}

// Sort reorders the entries by cmp over their values, mutating the receiver
// in place and returning it. A nil cmp applies the default value ordering
// of CompareValues. The sort is stable; the cursor is reset.
func (c *Container) Sort(cmp CompareFunc) *Container {
	c.order(byValues(cmp))
	return c
}

// SortWith reorders the entries with a caller-supplied ordering over the
// raw entry sequence, mutating the receiver in place and returning it.
func (c *Container) SortWith(order OrderFunc) *Container {
	c.order(order)
	return c
}

// SortBy reorders the entries by a named strategy ("values", "keys" or
// "natural"), mutating the receiver in place and returning it.
// Fails with ErrInvalidSortStrategy for an unknown name.
func (c *Container) SortBy(strategy string) (*Container, error) {
	order, ok := sortStrategies[strategy]
	if !ok {
		return nil, fmt.Errorf("sort strategy %q is %w", strategy, ErrInvalidSortStrategy)
	}
	c.order(order)
	return c, nil
}

func (c *Container) order(order OrderFunc) {
	order(c.entries)
	for i, e := range c.entries {
		c.index[e.Key] = i
	}
	c.pos = -1
	c.skip = false
}

func byValues(cmp CompareFunc) OrderFunc {
	if cmp == nil {
		cmp = CompareValues
	}
	return func(entries []Entry) {
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return cmp(a.Val, b.Val)
		})
	}
}

func byKeys(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Key.Compare(b.Key)
	})
}

func byNatural(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return natsort.Compare(text(a.Val), text(b.Val))
	})
}

// CompareValues is the default value ordering: two numbers compare
// numerically, two strings lexicographically, everything else by its
// formatted text.
func CompareValues(a, b any) int {
	an, aok := number(a)
	bn, bok := number(b)
	if aok && bok {
		return cmp.Compare(an, bn)
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	return strings.Compare(text(a), text(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
