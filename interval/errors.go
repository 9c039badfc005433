package interval

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInterval  = errors.New("invalid interval")
	ErrInvalidQuery     = errors.New("invalid query")
	ErrCoverageOverflow = errors.New("coverage overflow")
)

// RangeError reports the input range that Normalize rejected.
type RangeError struct {
	Index int
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range %d (%d > %d): %v", e.Index, e.Range.Low, e.Range.High, ErrInvalidInterval)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidInterval
}

// QueryError reports the query that a count rejected.
type QueryError struct {
	Index int
	Query Query
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %d (%d > %d): %v", e.Index, e.Query.Low, e.Query.High, ErrInvalidQuery)
}

func (e *QueryError) Unwrap() error {
	return ErrInvalidQuery
}
