package puzzle

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for progress and timing.
func WithLogger(l *logrus.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOutput sets where answers are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// Runner executes registered solvers.
type Runner struct {
	reg *Registry
	log *logrus.Logger
	out io.Writer
}

// NewRunner returns a Runner over reg.
func NewRunner(reg *Registry, opts ...RunnerOption) *Runner {
	r := &Runner{reg: reg, log: logrus.StandardLogger(), out: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run solves day with input and writes the answers followed by a newline.
// The context is only checked before the solver starts.
func (r *Runner) Run(ctx context.Context, day int, input string) (Answers, error) {
	if err := ctx.Err(); err != nil {
		return Answers{}, err
	}
	solve, ok := r.reg.Lookup(day)
	if !ok {
		return Answers{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	entry := r.log.WithField("day", day)
	entry.WithField("bytes", len(input)).Debug("solving")

	t0 := time.Now()
	ans, err := solve(input)
	took := time.Since(t0).Round(time.Microsecond)
	if err != nil {
		entry.WithField("took", took).WithError(err).Error("solver failed")
		return Answers{}, fmt.Errorf("puzzle: day %d: %w", day, err)
	}
	entry.WithField("took", took).Info("solved")

	if _, err := fmt.Fprintln(r.out, ans.String()); err != nil {
		return ans, fmt.Errorf("puzzle: writing answers: %w", err)
	}

	return ans, nil
}
