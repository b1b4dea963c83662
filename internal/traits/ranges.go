// Package traits converts the free-text attributes of an upstream breed
// record into canonical trait scores, compatibility flags, and measurement
// ranges. All functions here are pure; the package performs no I/O.
package traits

import (
	"regexp"
	"strconv"

	"github.com/breedwise/breedwise/internal/types"
)

var (
	rangePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	numberPattern = regexp.MustCompile(`(\d+)`)
)

// ParseRange extracts a numeric range from a loosely formatted measurement
// string such as "23 - 29" or "6".
//
// A hyphenated pair yields both bounds in textual order; the parser trusts
// the feed and does not re-sort them. A single integer yields a degenerate
// range. Anything else, including the empty string, yields nil — unparseable
// input is expected for incomplete upstream data and is not an error.
func ParseRange(s string) *types.Range {
	if s == "" {
		return nil
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return &types.Range{Min: min, Max: max}
	}

	if m := numberPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return &types.Range{Min: n, Max: n}
	}

	return nil
}
