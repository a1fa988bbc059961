package seqmap

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestToArrayNestedContainers(t *testing.T) {
	c := New(1, 2, 3, New(4, 5, 6))

	got := ToArray(c, nil)

	want := []any{1, 2, 3, []any{4, 5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToArray mismatch (-want +got):\n%s", diff)
	}
}

func TestToArrayMixedNesting(t *testing.T) {
	c := New(1, 2, 3, []any{New(4, 5, 6)})

	got := ToArray(c, nil)

	want := []any{1, 2, 3, []any{[]any{4, 5, 6}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToArray mismatch (-want +got):\n%s", diff)
	}
}

func TestToArrayKeyedContainer(t *testing.T) {
	c := FromEntries(
		Entry{StrKey("name"), "alpha"},
		Entry{StrKey("tags"), New("x", "y")},
	)

	got := ToArray(c, nil)

	want := map[string]any{
		"name": "alpha",
		"tags": []any{"x", "y"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToArray mismatch (-want +got):\n%s", diff)
	}
}

func TestToArrayPlainStructures(t *testing.T) {
	got := ToArray(map[string]any{
		"list": []int{1, 2},
		"box":  New("a"),
	}, nil)

	want := map[string]any{
		"list": []any{1, 2},
		"box":  []any{"a"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ToArray mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, 42, ToArray(42, nil))
	require.Nil(t, ToArray(nil, nil))
}

func TestToDropKeys(t *testing.T) {
	c := FromEntries(
		Entry{IntKey(1), 1},
		Entry{IntKey(2), 2},
		Entry{IntKey(3), 3},
		Entry{IntKey(4), 4},
		Entry{IntKey(5), 5},
	)

	flat, err := c.To("array", &ExportOptions{DropKeys: true})
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, 3, 4, 5}, flat)

	keyed, err := c.To("array", nil)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"1": 1, "2": 2, "3": 3, "4": 4, "5": 5}, keyed)

	// re-keying applies to the top level only
	nested := New(c)
	flatNested, err := nested.To("array", &ExportOptions{DropKeys: true})
	require.NoError(t, err)
	require.Equal(t, []any{map[string]any{"1": 1, "2": 2, "3": 3, "4": 4, "5": 5}}, flatNested)
}

type point struct {
	x, y int
}

func (p point) String() string {
	return fmt.Sprintf("(%d,%d)", p.x, p.y)
}

type blob struct {
	payload [4]byte
}

func TestToArrayTypeHandlers(t *testing.T) {
	c := New(point{1, 2}, point{3, 4})

	got := ToArray(c, &ExportOptions{
		Handlers: map[reflect.Type]HandlerFunc{
			reflect.TypeOf(point{}): func(val any) any {
				p := val.(point)
				return []any{p.x, p.y}
			},
		},
	})
	require.Equal(t, []any{[]any{1, 2}, []any{3, 4}}, got)

	// without a handler the String method wins
	require.Equal(t, []any{"(1,2)", "(3,4)"}, ToArray(c, nil))
}

func TestToArrayOpaquePassthrough(t *testing.T) {
	b := blob{payload: [4]byte{1, 2, 3, 4}}

	got := ToArray(New(b), nil).([]any)
	require.Equal(t, b, got[0])
}

func TestToUnknownFormat(t *testing.T) {
	_, err := New(1).To("yaml", nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatRegistry(t *testing.T) {
	t.Cleanup(ResetFormats)

	RegisterFormat("count", func(c *Container, _ *ExportOptions) any {
		return c.Count()
	})

	got, err := New("a", "b").To("count", nil)
	require.NoError(t, err)
	require.Equal(t, 2, got)

	view := Formats()
	require.Len(t, view, 2)
	require.Contains(t, view, "array")
	require.Contains(t, view, "count")

	UnregisterFormat("count")
	_, err = New("a").To("count", nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	// mutating the returned view must not touch the registry
	Formats()["rogue"] = func(*Container, *ExportOptions) any { return nil }
	_, err = New("a").To("rogue", nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestResetFormats(t *testing.T) {
	t.Cleanup(ResetFormats)

	RegisterFormat("extra", func(*Container, *ExportOptions) any { return nil })
	UnregisterFormat("array")

	ResetFormats()

	view := Formats()
	require.Len(t, view, 1)
	require.Contains(t, view, "array")

	got, err := New(1, 2).To("array", nil)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, got)
}

func TestToArrayOverridesDefault(t *testing.T) {
	t.Cleanup(ResetFormats)

	// overwriting the seeded handler is allowed
	RegisterFormat("array", func(c *Container, _ *ExportOptions) any {
		return c.Count()
	})
	got, err := New("a").To("array", nil)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}
