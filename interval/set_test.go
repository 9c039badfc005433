package interval

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/b97tsk/rangeset"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []Range
		want  []Range
	}{
		{"empty", nil, nil},
		{"single", []Range{{3, 3}}, []Range{{3, 3}}},
		{"overlap", []Range{{1, 5}, {3, 7}, {10, 12}}, []Range{{1, 7}, {10, 12}}},
		{"adjacent", []Range{{1, 3}, {4, 6}}, []Range{{1, 6}}},
		{"gap of one", []Range{{1, 3}, {5, 7}}, []Range{{1, 3}, {5, 7}}},
		{"unsorted", []Range{{10, 14}, {16, 20}, {12, 18}, {3, 5}}, []Range{{3, 5}, {10, 20}}},
		{"duplicates", []Range{{2, 4}, {2, 4}, {2, 4}}, []Range{{2, 4}}},
		{"nested", []Range{{1, 100}, {5, 6}, {50, 60}}, []Range{{1, 100}}},
		{"negative", []Range{{-5, -2}, {-1, 1}}, []Range{{-5, 1}}},
		{"int64 edges", []Range{{math.MaxInt64 - 1, math.MaxInt64}, {math.MinInt64, math.MinInt64 + 1}, {math.MaxInt64, math.MaxInt64}}, []Range{{math.MinInt64, math.MinInt64 + 1}, {math.MaxInt64 - 1, math.MaxInt64}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Normalize(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, s.Ranges()); diff != "" {
				t.Errorf("Normalize(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNormalizeMergeOverlapping(t *testing.T) {
	s, err := Normalize([]Range{{4, 6}, {1, 3}, {6, 9}}, WithMergeRule(MergeOverlapping))
	require.NoError(t, err)
	require.Equal(t, []Range{{1, 3}, {4, 9}}, s.Ranges())
	require.Equal(t, MergeOverlapping, s.MergeRule())

	n, err := s.TotalCoverage()
	require.NoError(t, err)
	require.EqualValues(t, 9, n)
}

func TestNormalizeInvalid(t *testing.T) {
	_, err := Normalize([]Range{{1, 2}, {5, 2}})
	require.ErrorIs(t, err, ErrInvalidInterval)

	var re *RangeError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 1, re.Index)
	require.Equal(t, Range{5, 2}, re.Range)
}

func TestNormalizeLeavesInputAlone(t *testing.T) {
	input := []Range{{10, 12}, {3, 7}, {1, 5}}
	orig := append([]Range(nil), input...)
	_, err := Normalize(input)
	require.NoError(t, err)
	require.Equal(t, orig, input)
}

func TestRangesIsACopy(t *testing.T) {
	s, err := Normalize([]Range{{1, 5}})
	require.NoError(t, err)
	s.Ranges()[0] = Range{100, 200}
	require.Equal(t, []Range{{1, 5}}, s.Ranges())
}

func TestZeroSet(t *testing.T) {
	var s Set
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(0))
	require.Equal(t, "[]", s.String())
	n, err := s.TotalCoverage()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRangeTouches(t *testing.T) {
	tests := []struct {
		a, b        Range
		adjacent    bool
		overlapping bool
	}{
		{Range{1, 3}, Range{4, 6}, true, false},
		{Range{4, 6}, Range{1, 3}, true, false},
		{Range{1, 3}, Range{3, 6}, true, true},
		{Range{1, 3}, Range{5, 6}, false, false},
		{Range{1, 10}, Range{4, 6}, true, true},
		{Range{0, math.MaxInt64}, Range{math.MaxInt64, math.MaxInt64}, true, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.adjacent, tt.a.Touches(tt.b, MergeAdjacent), "%v %v adjacent", tt.a, tt.b)
		require.Equal(t, tt.overlapping, tt.a.Touches(tt.b, MergeOverlapping), "%v %v overlapping", tt.a, tt.b)
	}
}

func TestRangeLen(t *testing.T) {
	n, ok := Range{1, 5}.Len()
	require.True(t, ok)
	require.EqualValues(t, 5, n)

	n, ok = Range{math.MinInt64, math.MaxInt64 - 1}.Len()
	require.True(t, ok)
	require.EqualValues(t, uint64(math.MaxUint64), n)

	_, ok = Range{math.MinInt64, math.MaxInt64}.Len()
	require.False(t, ok)

	_, ok = Range{2, 1}.Len()
	require.False(t, ok)
}

func TestParseMergeRule(t *testing.T) {
	for in, want := range map[string]MergeRule{
		"":            MergeAdjacent,
		"adjacent":    MergeAdjacent,
		"Overlapping": MergeOverlapping,
		" overlap ":   MergeOverlapping,
	} {
		got, err := ParseMergeRule(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseMergeRule("continuous")
	require.Error(t, err)
}

// randomRanges returns up to n small ranges in [-50, 50].
func randomRanges(rng *rand.Rand, n int) []Range {
	ranges := make([]Range, rng.Intn(n+1))
	for i := range ranges {
		lo := rng.Int63n(101) - 50
		ranges[i] = Range{lo, lo + rng.Int63n(12)}
	}
	return ranges
}

// reference builds the same coverage with an independent implementation.
func reference(ranges []Range) rangeset.RangeSet[int64] {
	var s rangeset.RangeSet[int64]
	for _, r := range ranges {
		s.AddRange(r.Low, r.High+1)
	}
	return s
}

func TestNormalizeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 500; iter++ {
		input := randomRanges(rng, 20)
		s, err := Normalize(input)
		require.NoError(t, err)

		again, err := Normalize(s.Ranges())
		require.NoError(t, err)
		require.True(t, s.Equal(again), "not idempotent: %v vs %v", s, again)

		ranges := s.Ranges()
		for i := 1; i < len(ranges); i++ {
			require.Less(t, ranges[i-1].High, ranges[i].Low-1, "ranges touch: %v", s)
		}

		var want []Range
		for _, r := range reference(input) {
			want = append(want, Range{r.Low, r.High - 1})
		}
		require.Equal(t, want, ranges, "input %v", input)

		union := make(map[int64]bool)
		for _, r := range input {
			for p := r.Low; p <= r.High; p++ {
				union[p] = true
			}
		}
		var points int64
		for _, r := range want {
			points += r.High - r.Low + 1
		}
		n, err := s.TotalCoverage()
		require.NoError(t, err)
		require.Equal(t, int64(len(union)), n, "input %v", input)
		require.Equal(t, points, n)
	}
}
