package interval

import (
	"sort"
	"strings"
)

// Set is a sorted sequence of pairwise disjoint ranges. No two of its ranges
// touch under the rule it was built with. A Set never changes after
// Normalize returns it, so it may be shared between goroutines.
//
// The zero Set is empty.
type Set struct {
	ranges []Range
	rule   MergeRule
}

type Option func(*Set)

// WithMergeRule selects how Normalize joins neighbouring ranges. The default
// is MergeAdjacent.
func WithMergeRule(rule MergeRule) Option {
	return func(s *Set) {
		s.rule = rule
	}
}

// Normalize merges ranges into a Set covering exactly the same integers.
// It fails with a *RangeError wrapping ErrInvalidInterval if any range has
// Low > High. The argument is not modified.
func Normalize(ranges []Range, opts ...Option) (Set, error) {
	var s Set
	for _, opt := range opts {
		opt(&s)
	}

	for i, r := range ranges {
		if !r.Valid() {
			return Set{rule: s.rule}, &RangeError{Index: i, Range: r}
		}
	}
	if len(ranges) == 0 {
		return s, nil
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Low < sorted[j].Low })

	merged := sorted[:0]
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if s.rule.joins(cur.High, r.Low) {
			cur.High = max(cur.High, r.High)
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	merged = append(merged, cur)

	s.ranges = merged[:len(merged):len(merged)]
	return s, nil
}

// Ranges returns a copy of the ranges of s in ascending order.
func (s Set) Ranges() []Range {
	if len(s.ranges) == 0 {
		return nil
	}
	ranges := make([]Range, len(s.ranges))
	copy(ranges, s.ranges)
	return ranges
}

func (s Set) Len() int {
	return len(s.ranges)
}

func (s Set) MergeRule() MergeRule {
	return s.rule
}

// Equal reports whether s and o hold the same ranges.
func (s Set) Equal(o Set) bool {
	if len(s.ranges) != len(o.ranges) {
		return false
	}
	for i := range s.ranges {
		if s.ranges[i] != o.ranges[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies in some range of s.
func (s Set) Contains(p int64) bool {
	i := s.search(p)
	return i < len(s.ranges) && s.ranges[i].Low <= p
}

// search returns the index of the first range whose High is not below p.
func (s Set) search(p int64) int {
	return sort.Search(len(s.ranges), func(i int) bool { return s.ranges[i].High >= p })
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range s.ranges {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}
