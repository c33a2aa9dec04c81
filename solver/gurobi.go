package solver

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/lp-solvers/golp/lp"
)

// Gurobi drives the Gurobi optimizer through its "gurobi_cl" command line
// interface.
type Gurobi struct {
	cfg config
}

// NewGurobi creates a Gurobi solver. Supported knobs: [WithRelativeGap],
// [WithCommand], [WithSolutionFile].
func NewGurobi(opts ...Option) (*Gurobi, error) {
	cfg, err := newConfig(config{command: "gurobi_cl"}, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.maxSeconds != 0 {
		return nil, &ConfigError{Option: "max seconds", Msg: "not supported by gurobi"}
	}
	if cfg.threads != 0 {
		return nil, &ConfigError{Option: "threads", Msg: "not supported by gurobi"}
	}
	return &Gurobi{cfg: cfg}, nil
}

// Solve runs p through gurobi_cl.
func (s *Gurobi) Solve(p lp.Problem) (*Solution, error) {
	return Execute(s, p)
}

func (s *Gurobi) Command() string { return s.cfg.command }

func (s *Gurobi) Arguments(problemPath, solutionPath string) []string {
	args := []string{"ResultFile=" + solutionPath}
	if s.cfg.relGap != 0 {
		args = append(args, "MIPGap="+formatKnob(s.cfg.relGap))
	}
	return append(args, problemPath)
}

func (s *Gurobi) PreferredSolutionFile() string { return s.cfg.solutionFile }

func (s *Gurobi) SolutionSuffix() string { return "" }

// StatusFromOutput classifies the run from gurobi_cl's stdout. An
// infeasible model produces no result file, so the outcome is only visible
// here.
func (s *Gurobi) StatusFromOutput(stdout []byte) (Status, bool) {
	if bytes.Contains(stdout, []byte("Optimal solution found")) {
		return Optimal, true
	}
	if bytes.Contains(stdout, []byte("infeasible")) {
		return Infeasible, true
	}
	return NotSolved, false
}

// ReadSolution decodes gurobi's two-column result file: a header line, then
// one "name value" pair per line. Gurobi 7 adds "#" comment lines to the
// header; they are skipped.
func (s *Gurobi) ReadSolution(r io.Reader, _ lp.Problem) (*Solution, error) {
	sol := newSolution(Optimal)
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		// an empty result file means no variables were written
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return sol, nil
	}
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &FormatError{Engine: "gurobi", Line: line, Msg: "expected 2 fields"}
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, &ParseError{Field: fields[0], Value: fields[1], Err: err}
		}
		sol.Results[fields[0]] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sol, nil
}
