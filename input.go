package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/b97tsk/fresh/interval"
)

// Input is a parsed puzzle: fresh ranges, then the ingredients to check.
type Input struct {
	Ranges     []interval.Range
	RangeLines []int
	Queries    []interval.Query
	QueryLines []int
}

func _loadInput(name string) (in *Input, err error) {
	if name == "-" {
		return _parseInput(os.Stdin)
	}
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()
	return _parseInput(file)
}

// _parseInput reads range tokens up to the first blank line that follows
// at least one range, then query tokens to the end. Tokens are separated by
// whitespace or commas; "lo-hi" is a range and a bare number is a point.
func _parseInput(r io.Reader) (*Input, error) {
	in := &Input{}
	inRanges := true
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if inRanges && len(in.Ranges) > 0 {
				inRanges = false
			}
			continue
		}
		for _, tok := range _splitTokens(line) {
			low, high, err := _parseToken(tok)
			if err != nil {
				return nil, errorf("line %d: %w", lineno, err)
			}
			if inRanges {
				in.Ranges = append(in.Ranges, interval.Range{Low: low, High: high})
				in.RangeLines = append(in.RangeLines, lineno)
			} else {
				in.Queries = append(in.Queries, interval.Span(low, high))
				in.QueryLines = append(in.QueryLines, lineno)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return in, nil
}

func _splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// _parseToken accepts "n" or "lo-hi", where either bound may be negative:
// "-5--2" is the range from -5 to -2.
func _parseToken(tok string) (low, high int64, err error) {
	sep := strings.IndexByte(tok[1:], '-')
	if sep < 0 {
		low, err = strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, 0, errorf("bad value %q: %w", tok, err)
		}
		return low, low, nil
	}
	sep++
	low, err = strconv.ParseInt(tok[:sep], 10, 64)
	if err == nil {
		high, err = strconv.ParseInt(tok[sep+1:], 10, 64)
	}
	if err != nil {
		return 0, 0, errorf("bad range %q: %w", tok, err)
	}
	return low, high, nil
}
