package puzzle

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

const (
	firstDay = 1
	lastDay  = 25
)

// Registry maps day numbers to solvers. The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// Register adds s under day.
func (r *Registry) Register(day int, s Solver) error {
	if day < firstDay || day > lastDay {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if s == nil {
		return fmt.Errorf("puzzle: nil solver for day %d", day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.solvers == nil {
		r.solvers = make(map[int]Solver)
	}
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(day int, s Solver) {
	if err := r.Register(day, s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver registered for day.
func (r *Registry) Lookup(day int) (Solver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[day]

	return s, ok
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	days := maps.Keys(r.solvers)
	slices.Sort(days)

	return days
}

// Latest returns the highest registered day.
func (r *Registry) Latest() (int, bool) {
	days := r.Days()
	if len(days) == 0 {
		return 0, false
	}

	return days[len(days)-1], true
}
