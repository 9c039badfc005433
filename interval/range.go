// Package interval merges closed integer ranges into a minimal disjoint set
// and answers coverage queries against it.
package interval

import (
	"fmt"
	"math"
	"strings"
)

// Range is the closed interval [Low, High].
type Range struct {
	Low, High int64
}

func (r Range) Valid() bool {
	return r.Low <= r.High
}

// Len returns the number of integers in r. The second result is false when
// r is invalid or spans the whole int64 domain, whose width is 1<<64.
func (r Range) Len() (uint64, bool) {
	if !r.Valid() {
		return 0, false
	}
	return width(r.Low, r.High)
}

// Touches reports whether r and o would be merged under rule.
func (r Range) Touches(o Range, rule MergeRule) bool {
	return rule.joins(r.High, o.Low) && rule.joins(o.High, r.Low)
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Low, r.High)
}

// Query probes a Set. A point query has Low == High.
type Query struct {
	Low, High int64
}

func Point(p int64) Query {
	return Query{p, p}
}

func Span(low, high int64) Query {
	return Query{low, high}
}

func (q Query) IsPoint() bool {
	return q.Low == q.High
}

func (q Query) Valid() bool {
	return q.Low <= q.High
}

func (q Query) String() string {
	if q.IsPoint() {
		return fmt.Sprint(q.Low)
	}
	return fmt.Sprintf("%d-%d", q.Low, q.High)
}

// MergeRule decides when two sorted ranges collapse into one.
type MergeRule int

const (
	// MergeAdjacent joins ranges that overlap or touch end to start, so
	// [1,3] and [4,6] become [1,6]. This is right for discrete domains.
	MergeAdjacent MergeRule = iota
	// MergeOverlapping joins only ranges that share at least one point.
	MergeOverlapping
)

// joins reports whether a range starting at low continues one ending at high.
func (m MergeRule) joins(high, low int64) bool {
	if m == MergeOverlapping {
		return low <= high
	}
	return high == math.MaxInt64 || low <= high+1
}

func (m MergeRule) String() string {
	switch m {
	case MergeAdjacent:
		return "adjacent"
	case MergeOverlapping:
		return "overlapping"
	}
	return "MergeRule(" + fmt.Sprint(int(m)) + ")"
}

func ParseMergeRule(s string) (MergeRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adjacent":
		return MergeAdjacent, nil
	case "overlapping", "overlap":
		return MergeOverlapping, nil
	}
	return 0, fmt.Errorf("unknown merge rule %q", s)
}

// width returns high-low+1 for low <= high.
func width(low, high int64) (uint64, bool) {
	d := uint64(high) - uint64(low)
	if d == math.MaxUint64 {
		return 0, false
	}
	return d + 1, true
}

// accumulate adds n to sum, reporting false if the result leaves int64.
func accumulate(sum int64, n uint64) (int64, bool) {
	if n > uint64(math.MaxInt64-sum) {
		return sum, false
	}
	return sum + int64(n), true
}
