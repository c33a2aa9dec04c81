package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lp-solvers/golp/lp"
)

// Cbc drives the Coin-OR branch-and-cut solver through its "cbc" command
// line interface.
type Cbc struct {
	cfg config
}

// NewCbc creates a CBC solver. Supported knobs: [WithMaxSeconds],
// [WithThreads], [WithRelativeGap], [WithCommand], [WithSolutionFile].
func NewCbc(opts ...Option) (*Cbc, error) {
	cfg, err := newConfig(config{command: "cbc"}, opts...)
	if err != nil {
		return nil, err
	}
	return &Cbc{cfg: cfg}, nil
}

// Solve runs p through cbc.
func (s *Cbc) Solve(p lp.Problem) (*Solution, error) {
	return Execute(s, p)
}

func (s *Cbc) Command() string { return s.cfg.command }

func (s *Cbc) Arguments(problemPath, solutionPath string) []string {
	args := []string{problemPath}
	if s.cfg.relGap != 0 {
		args = append(args, "ratiogap", formatKnob(s.cfg.relGap))
	}
	if s.cfg.maxSeconds != 0 {
		args = append(args, "seconds", strconv.FormatUint(uint64(s.cfg.maxSeconds), 10))
	}
	if s.cfg.threads != 0 {
		args = append(args, "threads", strconv.FormatUint(uint64(s.cfg.threads), 10))
	}
	return append(args, "solve", "solution", solutionPath)
}

func (s *Cbc) PreferredSolutionFile() string { return s.cfg.solutionFile }

func (s *Cbc) SolutionSuffix() string { return "" }

func (s *Cbc) StatusFromOutput([]byte) (Status, bool) { return NotSolved, false }

// ReadSolution decodes cbc's line-oriented solution file. The first line
// carries the status; each following line is "[**] index name value
// reducedcost". cbc keeps only non-zero values out of a number of
// variables, so when p is given every declared variable is pre-seeded to 0.
func (s *Cbc) ReadSolution(r io.Reader, p lp.Problem) (*Solution, error) {
	sol := newSolution(NotSolved)
	if p != nil {
		for v := range p.Variables() {
			sol.Results[v.Name()] = 0
		}
	}

	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, &FormatError{Engine: "cbc", Msg: "missing status line"}
	}
	status, ok := cbcStatus(sc.Text())
	if !ok {
		return nil, &FormatError{Engine: "cbc", Line: sc.Text(), Msg: "missing status token"}
	}
	sol.Status = status

	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "**" {
			fields = fields[1:]
		}
		if len(fields) != 4 {
			return nil, &FormatError{Engine: "cbc", Line: line, Msg: "expected 4 fields"}
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &ParseError{Field: fields[1], Value: fields[2], Err: err}
		}
		sol.Results[fields[1]] = value
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sol, nil
}

// cbcStatus maps the first whitespace token of the status line onto the
// canonical set. Unknown tokens mean cbc stopped for a reason we do not
// enumerate and map to NotSolved.
func cbcStatus(line string) (Status, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return NotSolved, false
	}
	switch fields[0] {
	case "Optimal":
		// MIP gap stops read "Optimal (within gap tolerance)"
		if len(fields) > 1 && fields[1] == "(within" {
			return SubOptimal, true
		}
		return Optimal, true
	case "Infeasible", "Integer":
		// "Infeasible" or "Integer infeasible"
		return Infeasible, true
	case "Unbounded":
		return Unbounded, true
	case "Stopped":
		// "on time", "on iterations", "on difficulties" or "on ctrl-c"
		return SubOptimal, true
	default:
		return NotSolved, true
	}
}
