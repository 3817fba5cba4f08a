// Package day05 checks ingredient IDs against fresh ID ranges.
package day05

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2025/puzzle"
)

// Range is an inclusive span of fresh ingredient IDs.
type Range struct {
	Start, End uint64
}

// Contains reports whether id lies in r.
func (r Range) Contains(id uint64) bool { return r.Start <= id && id <= r.End }

// Inventory is the parsed puzzle input.
type Inventory struct {
	Fresh []Range
	IDs   []uint64
}

// Parse reads "a-b" ranges, a blank line, then one ID per line.
func Parse(input string) (Inventory, error) {
	var (
		inv      Inventory
		inRanges = true
	)
	for i, line := range puzzle.Lines(input) {
		if line == "" {
			inRanges = false
			continue
		}
		if inRanges {
			lo, hi, ok := strings.Cut(line, "-")
			start, err1 := strconv.ParseUint(lo, 10, 64)
			end, err2 := strconv.ParseUint(hi, 10, 64)
			if !ok || err1 != nil || err2 != nil || start > end {
				return Inventory{}, puzzle.Malformed("day05: line %d: range %q", i+1, line)
			}
			inv.Fresh = append(inv.Fresh, Range{Start: start, End: end})
			continue
		}
		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return Inventory{}, puzzle.Malformed("day05: line %d: id %q", i+1, line)
		}
		inv.IDs = append(inv.IDs, id)
	}

	return inv, nil
}

// CountFresh counts IDs that fall in at least one fresh range.
func CountFresh(inv Inventory) uint64 {
	var count uint64
	for _, id := range inv.IDs {
		if slices.ContainsFunc(inv.Fresh, func(r Range) bool { return r.Contains(id) }) {
			count++
		}
	}

	return count
}

// Merge returns the union of ranges as sorted, disjoint, non-adjacent spans.
// The input is not modified.
func Merge(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}

		return 0
	})

	var out []Range
	for _, r := range sorted {
		if n := len(out); n > 0 && r.Start <= out[n-1].End+1 {
			out[n-1].End = max(out[n-1].End, r.End)
			continue
		}
		out = append(out, r)
	}

	return out
}

// UnionSize returns how many distinct IDs the ranges cover.
func UnionSize(ranges []Range) uint64 {
	var total uint64
	for _, r := range Merge(ranges) {
		total += r.End - r.Start + 1
	}

	return total
}

// Solve parses the input and answers both parts.
func Solve(input string) (puzzle.Answers, error) {
	inv, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Both(CountFresh(inv), UnionSize(inv.Fresh)), nil
}
