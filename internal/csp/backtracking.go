package csp

import (
	"context"
	"log"

	"github.com/samber/lo"

	"github.com/limaJavier/timetablecsp/internal/model"
)

const progressInterval = 1000

type backtrackingSolver struct {
	options Options
}

// search owns the mutable state of one Solve call. The assignment is
// shared down the recursion; every failing branch removes its own
// binding before returning, so the map always reflects exactly the
// bindings of the frames still on the stack.
type search struct {
	problem    Problem
	assignment model.Assignment
	steps      uint64
	verbose    bool
}

func (solver *backtrackingSolver) Solve(ctx context.Context, problem Problem) (model.Assignment, Stats, error) {
	state := &search{
		problem:    problem,
		assignment: make(model.Assignment, len(problem.Variables)),
		verbose:    solver.options.Verbose,
	}

	solution, err := state.backtrack(ctx)
	return solution, Stats{Steps: state.steps}, err
}

// backtrack is chronological depth-first search: bind a candidate,
// re-check every constraint against the whole assignment, recurse, and
// undo the binding when the branch fails. A variable with an empty
// domain makes the loop run zero times and fails the frame
// immediately. No forward checking or propagation happens here;
// infeasibility is discovered lazily at bind time.
func (state *search) backtrack(ctx context.Context) (model.Assignment, error) {
	state.steps++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if state.verbose && state.steps%progressInterval == 0 {
		log.Printf("search: %v steps, %v/%v variables bound", state.steps, len(state.assignment), len(state.problem.Variables))
	}

	if len(state.assignment) == len(state.problem.Variables) {
		return state.assignment, nil
	}

	variable := state.selectUnassigned()

	for _, candidate := range state.problem.Domains[variable] {
		state.assignment[variable] = candidate
		if !state.consistent() {
			delete(state.assignment, variable)
			continue
		}

		solution, err := state.backtrack(ctx)
		if err != nil {
			delete(state.assignment, variable)
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}
		delete(state.assignment, variable)
	}

	return nil, nil
}

// selectUnassigned applies the most-constrained-variable heuristic:
// the unbound requirement with the fewest candidates in its domain.
// Ties keep the earliest variable in catalog order, which makes
// repeated runs return identical assignments.
func (state *search) selectUnassigned() model.Requirement {
	unassigned := lo.Filter(state.problem.Variables, func(variable model.Requirement, _ int) bool {
		_, bound := state.assignment[variable]
		return !bound
	})

	return lo.MinBy(unassigned, func(variable, smallest model.Requirement) bool {
		return len(state.problem.Domains[variable]) < len(state.problem.Domains[smallest])
	})
}

// consistent re-runs the full constraint set against the current
// assignment, tentative binding included.
func (state *search) consistent() bool {
	return !lo.SomeBy(state.problem.Constraints, func(constraint model.Constraint) bool {
		return !constraint(state.assignment)
	})
}
