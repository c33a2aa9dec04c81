package solver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/lp-solvers/golp/logger"
	"github.com/lp-solvers/golp/lp"
)

// Solver runs a problem through an engine and returns its solution.
type Solver interface {
	Solve(p lp.Problem) (*Solution, error)
}

// Program describes how one external engine is invoked from the command
// line and how its result artifact is decoded. Implementations hold
// already-validated configuration; see [Option].
type Program interface {
	// Command is the executable to spawn.
	Command() string
	// Arguments builds the full argument vector for the given problem and
	// solution file paths.
	Arguments(problemPath, solutionPath string) []string
	// PreferredSolutionFile returns a fixed solution file path, or "" to
	// have a temporary one allocated per run.
	PreferredSolutionFile() string
	// SolutionSuffix is a suffix the solution file name must carry, or "".
	SolutionSuffix() string
	// StatusFromOutput classifies the run from the engine's stdout before
	// the solution file is consulted. Engines whose infeasible or unbounded
	// outcomes produce no parseable solution file report them here. ok is
	// false when stdout says nothing.
	StatusFromOutput(stdout []byte) (status Status, ok bool)
	// ReadSolution decodes the engine's result artifact. p may be nil;
	// when present, engines that omit zero-valued variables from their
	// output pre-seed every declared variable to 0.
	ReadSolution(r io.Reader, p lp.Problem) (*Solution, error)
}

// Execute renders p into a temporary .lp file, runs prog on it synchronously
// and decodes the result artifact. Infeasible and Unbounded are successful
// outcomes, not errors. Allocated temporary files are removed best-effort; a
// failed removal never masks the result.
func Execute(prog Program, p lp.Problem) (*Solution, error) {
	log := logger.Logger().With().
		Str("command", prog.Command()).
		Str("problem", p.Name()).
		Logger()

	problemFile, err := lp.WriteTempFile(p)
	if err != nil {
		return nil, err
	}
	defer os.Remove(problemFile)

	solutionFile := prog.PreferredSolutionFile()
	if solutionFile == "" {
		solutionFile, err = tempSolutionFile(prog.SolutionSuffix())
		if err != nil {
			return nil, err
		}
		// cleanup is best effort and only for paths we allocated
		defer os.Remove(solutionFile)
	}

	args := prog.Arguments(problemFile, solutionFile)
	log.Debug().Strs("args", args).Msg("running solver")

	stdout, err := exec.Command(prog.Command(), args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ProcessError{
				Command:  prog.Command(),
				ExitCode: exitErr.ExitCode(),
				Output:   string(stdout) + string(exitErr.Stderr),
				Err:      err,
			}
		}
		return nil, &ProcessError{Command: prog.Command(), ExitCode: -1, Err: err}
	}

	hint, hinted := prog.StatusFromOutput(stdout)
	if hinted && (hint == Infeasible || hint == Unbounded) {
		log.Debug().Stringer("status", hint).Msg("classified from solver output")
		return newSolution(hint), nil
	}

	f, err := os.Open(solutionFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open solution file %s: %w (solver output: %s)",
			solutionFile, err, stdout)
	}
	defer f.Close()

	sol, err := prog.ReadSolution(f, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s solution: %w (solver output: %s)",
			prog.Command(), err, stdout)
	}
	if hinted {
		sol.Status = hint
	}
	log.Debug().Stringer("status", sol.Status).Int("variables", len(sol.Results)).Msg("solved")
	return sol, nil
}

func tempSolutionFile(suffix string) (string, error) {
	f, err := os.CreateTemp("", "solution-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("creating solution file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
