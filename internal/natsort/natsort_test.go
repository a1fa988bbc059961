package natsort

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareDigitRuns(t *testing.T) {
	require.Negative(t, Compare("item2", "item10"))
	require.Positive(t, Compare("item10", "item2"))
	require.Zero(t, Compare("item10", "item10"))

	// leading zeros tie on numeric value
	require.Zero(t, Compare("file01", "file1"))
	require.Negative(t, Compare("file01", "file2"))
}

func TestComparePlainText(t *testing.T) {
	require.Negative(t, Compare("alpha", "beta"))
	require.Positive(t, Compare("beta", "alpha"))
	require.Zero(t, Compare("", ""))
	require.Negative(t, Compare("", "a"))
	require.Negative(t, Compare("ab", "abc"))
}

func TestCompareMixedRuns(t *testing.T) {
	require.Negative(t, Compare("a1b2", "a1b10"))
	require.Positive(t, Compare("a2b1", "a1b10"))
	require.Negative(t, Compare("a12", "a12b"))
}

func TestCompareLongRuns(t *testing.T) {
	// longer than any integer type, must not overflow
	a := "v184467440737095516159999"
	b := "v184467440737095516160000"
	require.Negative(t, Compare(a, b))
	require.Positive(t, Compare(b, a))
}

func TestSortOrder(t *testing.T) {
	in := []string{"item10", "item9", "item1", "item100", "item2"}
	slices.SortFunc(in, Compare)
	require.Equal(t, []string{"item1", "item2", "item9", "item10", "item100"}, in)
}
