// Package day02 finds product IDs made of a repeated digit block.
package day02

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Range is an inclusive span of product IDs.
type Range struct {
	Start, End uint64
}

// Parse reads comma separated "a-b" ranges. Whitespace and newlines around
// entries are ignored.
func Parse(input string) ([]Range, error) {
	var out []Range
	for _, field := range strings.Split(strings.TrimSpace(input), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		lo, hi, ok := strings.Cut(field, "-")
		if !ok {
			return nil, puzzle.Malformed("day02: range %q", field)
		}
		start, err1 := strconv.ParseUint(lo, 10, 64)
		end, err2 := strconv.ParseUint(hi, 10, 64)
		if err1 != nil || err2 != nil || start > end {
			return nil, puzzle.Malformed("day02: range %q", field)
		}
		out = append(out, Range{Start: start, End: end})
	}

	return out, nil
}

// digits returns the number of decimal digits of n (n > 0).
func digits(n uint64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}

func pow10(k int) uint64 {
	p := uint64(1)
	for ; k > 0; k-- {
		p *= 10
	}

	return p
}

// repeats reports whether n is one block of blockLen digits written reps
// times over, given that n has exactly blockLen*reps digits.
func repeats(n uint64, blockLen, reps int) bool {
	base := pow10(blockLen)
	block := n % base
	for i := 1; i < reps; i++ {
		n /= base
		if n%base != block {
			return false
		}
	}

	return true
}

// RepeatedTwice reports whether id is some digit block written exactly twice.
func RepeatedTwice(id uint64) bool {
	d := digits(id)
	if d%2 != 0 {
		return false
	}

	return repeats(id, d/2, 2)
}

// RepeatedAtLeastTwice reports whether id is some digit block written two or
// more times.
func RepeatedAtLeastTwice(id uint64) bool {
	d := digits(id)
	for blockLen := 1; blockLen <= d/2; blockLen++ {
		if d%blockLen == 0 && repeats(id, blockLen, d/blockLen) {
			return true
		}
	}

	return false
}

// SumInvalid adds up every ID in ranges for which invalid is true.
func SumInvalid(ranges []Range, invalid func(uint64) bool) uint64 {
	var sum uint64
	for _, r := range ranges {
		for id := r.Start; id <= r.End; id++ {
			if id > 0 && invalid(id) {
				sum += id
			}
			if id == r.End {
				break
			}
		}
	}

	return sum
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	ranges, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(
		SumInvalid(ranges, RepeatedTwice),
		SumInvalid(ranges, RepeatedAtLeastTwice),
	), nil
}
