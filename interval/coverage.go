package interval

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minShard keeps CountCoveredParallel from spawning goroutines for a handful
// of queries each.
const minShard = 256

// TotalCoverage returns the number of distinct integers covered by s.
func (s Set) TotalCoverage() (int64, error) {
	var total int64
	for _, r := range s.ranges {
		n, ok := width(r.Low, r.High)
		if !ok {
			return 0, ErrCoverageOverflow
		}
		if total, ok = accumulate(total, n); !ok {
			return 0, ErrCoverageOverflow
		}
	}
	return total, nil
}

// Covered returns how many integers of q lie in s: 0 or 1 for a point,
// the size of the intersection for a span.
func (s Set) Covered(q Query) (int64, error) {
	if !q.Valid() {
		return 0, &QueryError{Query: q}
	}
	return s.covered(q)
}

// covered is Covered for a query already known to be valid.
func (s Set) covered(q Query) (int64, error) {
	if q.IsPoint() {
		if s.Contains(q.Low) {
			return 1, nil
		}
		return 0, nil
	}

	var n int64
	for i := s.search(q.Low); i < len(s.ranges) && s.ranges[i].Low <= q.High; i++ {
		r := s.ranges[i]
		w, ok := width(max(q.Low, r.Low), min(q.High, r.High))
		if !ok {
			return 0, ErrCoverageOverflow
		}
		if n, ok = accumulate(n, w); !ok {
			return 0, ErrCoverageOverflow
		}
	}
	return n, nil
}

// CountCovered sums Covered over queries. The first malformed query aborts
// the count with a *QueryError wrapping ErrInvalidQuery.
func (s Set) CountCovered(queries []Query) (int64, error) {
	return s.countFrom(0, queries)
}

func (s Set) countFrom(base int, queries []Query) (int64, error) {
	var total int64
	for i, q := range queries {
		if !q.Valid() {
			return 0, &QueryError{Index: base + i, Query: q}
		}
		n, err := s.covered(q)
		if err != nil {
			return 0, err
		}
		var ok bool
		if total, ok = accumulate(total, uint64(n)); !ok {
			return 0, ErrCoverageOverflow
		}
	}
	return total, nil
}

// CountCoveredParallel computes the same total as CountCovered, splitting the
// queries between up to workers goroutines. When several queries are
// malformed, which one is reported is unspecified.
func (s Set) CountCoveredParallel(ctx context.Context, queries []Query, workers int) (int64, error) {
	shards := workers
	if limit := (len(queries) + minShard - 1) / minShard; shards > limit {
		shards = limit
	}
	if shards <= 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return s.CountCovered(queries)
	}

	size := (len(queries) + shards - 1) / shards
	partial := make([]int64, shards)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		i := i
		lo := i * size
		hi := min(lo+size, len(queries))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for start := lo; start < hi; start += minShard {
				if err := ctx.Err(); err != nil {
					return err
				}
				n, err := s.countFrom(start, queries[start:min(start+minShard, hi)])
				if err != nil {
					return err
				}
				var ok bool
				if partial[i], ok = accumulate(partial[i], uint64(n)); !ok {
					return ErrCoverageOverflow
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, n := range partial {
		var ok bool
		if total, ok = accumulate(total, uint64(n)); !ok {
			return 0, ErrCoverageOverflow
		}
	}
	return total, nil
}
