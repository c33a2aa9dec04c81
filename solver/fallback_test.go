package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-solvers/golp/lp"
)

// scriptedSolver records the problems it is asked to solve.
type scriptedSolver struct {
	err    error
	solved []string
}

func (s *scriptedSolver) Solve(p lp.Problem) (*Solution, error) {
	s.solved = append(s.solved, p.Name())
	if s.err != nil {
		return nil, s.err
	}
	return &Solution{Status: Optimal, Results: map[string]float64{}}, nil
}

func realProblem() lp.Problem {
	m := lp.NewModel("real", lp.Minimize)
	m.SetObjective(lp.StrExpr("x"))
	m.AddVariable(lp.NewVariable("x").WithBounds(0, 1))
	return m
}

func TestFallbackUsesFirstAvailable(t *testing.T) {
	broken1 := &scriptedSolver{err: &ProcessError{Command: "a", ExitCode: -1}}
	broken2 := &scriptedSolver{err: &ProcessError{Command: "b", ExitCode: 127}}
	working := &scriptedSolver{}

	sol, err := NewFallback(broken1, broken2, working).Solve(realProblem())
	require.NoError(t, err)
	require.Equal(t, Optimal, sol.Status)

	// the failing candidates only ever saw the probe, never the real problem
	require.Equal(t, []string{"probe"}, broken1.solved)
	require.Equal(t, []string{"probe"}, broken2.solved)
	// the working candidate ran the probe, then the real problem exactly once
	require.Equal(t, []string{"probe", "real"}, working.solved)
}

func TestFallbackNoSolverAvailable(t *testing.T) {
	broken := &scriptedSolver{err: &ProcessError{Command: "a", ExitCode: -1}}

	_, err := NewFallback(broken).Solve(realProblem())
	require.ErrorIs(t, err, ErrNoSolverAvailable)
	require.Equal(t, []string{"probe"}, broken.solved)
}

func TestFallbackEmptyCandidateList(t *testing.T) {
	_, err := NewFallback().Solve(realProblem())
	require.ErrorIs(t, err, ErrNoSolverAvailable)
}

func TestAllCandidateOrder(t *testing.T) {
	f := All()
	require.Len(t, f.candidates, 4)
	require.IsType(t, &Gurobi{}, f.candidates[0])
	require.IsType(t, &Cplex{}, f.candidates[1])
	require.IsType(t, &Cbc{}, f.candidates[2])
	require.IsType(t, &Glpk{}, f.candidates[3])
}
