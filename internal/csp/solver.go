package csp

import (
	"context"

	"github.com/limaJavier/timetablecsp/internal/model"
)

// Problem is one search instance: the variables in their default
// order, each variable's candidate domain and the constraint set to
// enforce.
type Problem struct {
	Variables   []model.Requirement
	Domains     model.Domains
	Constraints []model.Constraint
}

// Stats carries search diagnostics. Steps counts recursive calls; it
// is not part of the correctness contract.
type Stats struct {
	Steps uint64
}

// Solver searches for a complete consistent assignment. A nil
// assignment together with a nil error means the problem is
// unsatisfiable; that is an expected outcome, not an error. The error
// is non-nil only when the context is cancelled mid-search.
type Solver interface {
	Solve(ctx context.Context, problem Problem) (model.Assignment, Stats, error)
}

// Options tunes a backtracking solver.
type Options struct {
	// Verbose logs search progress every few thousand recursive steps.
	Verbose bool
}

func NewSolver(options Options) Solver {
	return &backtrackingSolver{options: options}
}
