package solver

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-solvers/golp/lp"
)

// stubProgram runs a shell snippet instead of a real engine, so the
// execution path can be exercised without any solver installed.
type stubProgram struct {
	command      string
	script       string
	solutionFile string
	suffix       string
	status       func([]byte) (Status, bool)
	read         func(io.Reader, lp.Problem) (*Solution, error)
}

func (s *stubProgram) Command() string {
	if s.command != "" {
		return s.command
	}
	return "sh"
}

func (s *stubProgram) Arguments(problemPath, solutionPath string) []string {
	// the solution path is $0 inside the script
	return []string{"-c", s.script, solutionPath}
}

func (s *stubProgram) PreferredSolutionFile() string { return s.solutionFile }

func (s *stubProgram) SolutionSuffix() string { return s.suffix }

func (s *stubProgram) StatusFromOutput(out []byte) (Status, bool) {
	if s.status != nil {
		return s.status(out)
	}
	return NotSolved, false
}

func (s *stubProgram) ReadSolution(r io.Reader, p lp.Problem) (*Solution, error) {
	if s.read != nil {
		return s.read(r, p)
	}
	return nil, errors.New("unexpected ReadSolution call")
}

func testProblem() lp.Problem {
	m := lp.NewModel("stub", lp.Minimize)
	m.SetObjective(lp.StrExpr("x"))
	m.AddVariable(lp.NewVariable("x").WithBounds(0, 1))
	return m
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub programs need a POSIX shell")
	}
}

func TestExecuteParsesSolutionFile(t *testing.T) {
	requireUnix(t)

	prog := &stubProgram{
		script: `echo "x 1" > "$0"`,
		read: func(r io.Reader, _ lp.Problem) (*Solution, error) {
			content, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			if string(content) != "x 1\n" {
				return nil, fmt.Errorf("unexpected solution content %q", content)
			}
			return &Solution{Status: Optimal, Results: map[string]float64{"x": 1}}, nil
		},
	}

	sol, err := Execute(prog, testProblem())
	require.NoError(t, err)
	require.Equal(t, Optimal, sol.Status)
	require.Equal(t, map[string]float64{"x": 1}, sol.Results)
}

func TestExecuteNonZeroExit(t *testing.T) {
	requireUnix(t)

	prog := &stubProgram{script: `echo boom; exit 3`}
	_, err := Execute(prog, testProblem())

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, 3, procErr.ExitCode)
	require.Contains(t, procErr.Output, "boom")
}

func TestExecuteMissingExecutable(t *testing.T) {
	prog := &stubProgram{command: "golp-no-such-solver"}
	_, err := Execute(prog, testProblem())

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	require.Equal(t, -1, procErr.ExitCode)
}

func TestExecuteStdoutShortCircuit(t *testing.T) {
	requireUnix(t)

	// an infeasible outcome is classified from stdout; the solution file is
	// never opened and ReadSolution must not run
	prog := &stubProgram{
		script: `echo "no solution exists"`,
		status: func([]byte) (Status, bool) { return Infeasible, true },
	}

	sol, err := Execute(prog, testProblem())
	require.NoError(t, err)
	require.Equal(t, Infeasible, sol.Status)
	require.Empty(t, sol.Results)
}

func TestExecuteStatusHintOverride(t *testing.T) {
	requireUnix(t)

	// a non-terminal hint overrides whatever the parser decided
	prog := &stubProgram{
		script: `echo "Optimal solution found"; : > "$0"`,
		status: func(out []byte) (Status, bool) { return Optimal, true },
		read: func(io.Reader, lp.Problem) (*Solution, error) {
			return &Solution{Status: NotSolved, Results: map[string]float64{}}, nil
		},
	}

	sol, err := Execute(prog, testProblem())
	require.NoError(t, err)
	require.Equal(t, Optimal, sol.Status)
}

func TestExecutePreferredSolutionFile(t *testing.T) {
	requireUnix(t)

	fixed := t.TempDir() + "/fixed.sol"
	prog := &stubProgram{
		solutionFile: fixed,
		script:       `echo "y 2" > "$0"`,
		read: func(r io.Reader, _ lp.Problem) (*Solution, error) {
			content, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			if string(content) != "y 2\n" {
				return nil, fmt.Errorf("unexpected solution content %q", content)
			}
			return &Solution{Status: Optimal, Results: map[string]float64{"y": 2}}, nil
		},
	}

	sol, err := Execute(prog, testProblem())
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"y": 2}, sol.Results)
}

func TestExecuteParserErrorCarriesOutput(t *testing.T) {
	requireUnix(t)

	prog := &stubProgram{
		script: `echo "engine banner"; : > "$0"`,
		read: func(io.Reader, lp.Problem) (*Solution, error) {
			return nil, &FormatError{Engine: "stub", Msg: "expected 4 fields"}
		},
	}

	_, err := Execute(prog, testProblem())
	require.Error(t, err)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Contains(t, err.Error(), "engine banner")
}
