package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput is wrapped by solvers when the input does not parse.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrInvalidDay is returned for day numbers outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day must be in 1..25")

	// ErrDuplicateDay is returned when a day is registered twice.
	ErrDuplicateDay = errors.New("puzzle: day already registered")

	// ErrUnknownDay is returned when running a day nobody registered.
	ErrUnknownDay = errors.New("puzzle: day not registered")
)

// Answers holds the result of one day. Gold is only meaningful when HasGold
// is set; some days have a single part.
type Answers struct {
	Silver  uint64
	Gold    uint64
	HasGold bool
}

// SilverOnly returns Answers for a day without a second part.
func SilverOnly(silver uint64) Answers { return Answers{Silver: silver} }

// Both returns Answers with both parts filled in.
func Both(silver, gold uint64) Answers {
	return Answers{Silver: silver, Gold: gold, HasGold: true}
}

// String renders "silver: N" and, when present, a second line "gold: M".
func (a Answers) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "silver: %d", a.Silver)
	if a.HasGold {
		fmt.Fprintf(&sb, "\ngold: %d", a.Gold)
	}

	return sb.String()
}

// Solver computes both parts of a day from its raw input.
type Solver func(input string) (Answers, error)

// Malformed builds an error wrapping ErrMalformedInput with a formatted
// description.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedInput)
}

// AsMalformed marks err as a malformed input error, keeping it in the chain.
// Nil and already marked errors are returned unchanged.
func AsMalformed(err error) error {
	if err == nil || errors.Is(err, ErrMalformedInput) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrMalformedInput, err)
}
