package solver

import (
	"github.com/lp-solvers/golp/logger"
	"github.com/lp-solvers/golp/lp"
)

// Fallback tries candidate engines in order and solves with the first one
// that is actually usable on the host. Availability is established by
// running a trivial one-variable probe problem through the full execution
// path, so a large real problem is never written to disk before a usable
// engine is found.
type Fallback struct {
	candidates []Solver
}

// NewFallback creates a fallback solver over the given candidates, tried in
// order.
func NewFallback(candidates ...Solver) *Fallback {
	return &Fallback{candidates: candidates}
}

// All returns a fallback over every supported engine, tried in order:
// Gurobi, CPLEX, CBC, GLPK.
func All() *Fallback {
	// without options the constructors cannot fail
	gurobi, _ := NewGurobi()
	cplex, _ := NewCplex()
	cbc, _ := NewCbc()
	glpk, _ := NewGlpk()
	return NewFallback(gurobi, cplex, cbc, glpk)
}

// Solve probes each candidate and runs p through the first one whose probe
// succeeds. It returns [ErrNoSolverAvailable] when every candidate fails
// its probe; p is never serialized in that case.
func (f *Fallback) Solve(p lp.Problem) (*Solution, error) {
	log := logger.Logger()
	for _, s := range f.candidates {
		if _, err := s.Solve(probeProblem()); err != nil {
			log.Debug().Err(err).Msg("solver probe failed")
			continue
		}
		return s.Solve(p)
	}
	return nil, ErrNoSolverAvailable
}

// probeProblem is solvable by any engine in negligible time.
func probeProblem() lp.Problem {
	m := lp.NewModel("probe", lp.Minimize)
	m.SetObjective(lp.StrExpr("x"))
	m.AddVariable(lp.NewVariable("x").WithBounds(0, 1))
	return m
}
