package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/b97tsk/fresh/interval"
)

// Answers holds the puzzle results. A part that was not asked for is nil.
type Answers struct {
	Part1 *int64
	Part2 *int64
	Set   interval.Set
}

// _solve builds the fresh set once and answers the requested parts from it.
// Part 1 counts the ingredient values and spans that are fresh; part 2
// counts every fresh value.
func _solve(ctx context.Context, in *Input, cfg Config, log *zap.Logger) (ans Answers, err error) {
	set, err := interval.Normalize(in.Ranges, interval.WithMergeRule(cfg.mergeRule))
	if err != nil {
		var re *interval.RangeError
		if errors.As(err, &re) {
			return ans, errorf("line %d: %w", in.RangeLines[re.Index], err)
		}
		return
	}
	ans.Set = set
	log.Debug("normalized fresh ranges",
		zap.Int("raw", len(in.Ranges)),
		zap.Int("merged", set.Len()),
		zap.Stringer("rule", set.MergeRule()))

	if cfg.Part == 0 || cfg.Part == 1 {
		var n int64
		if cfg.Workers > 1 {
			n, err = set.CountCoveredParallel(ctx, in.Queries, cfg.Workers)
		} else {
			n, err = set.CountCovered(in.Queries)
		}
		if err != nil {
			var qe *interval.QueryError
			if errors.As(err, &qe) {
				return ans, errorf("line %d: %w", in.QueryLines[qe.Index], err)
			}
			return ans, errorf("part 1: %w", err)
		}
		log.Debug("counted fresh ingredients", zap.Int("queries", len(in.Queries)), zap.Int64("fresh", n))
		ans.Part1 = &n
	}

	if cfg.Part == 0 || cfg.Part == 2 {
		n, err := set.TotalCoverage()
		if err != nil {
			return ans, errorf("part 2: %w", err)
		}
		ans.Part2 = &n
	}
	return ans, nil
}
