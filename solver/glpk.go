package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lp-solvers/golp/lp"
)

// glpkStatusOffset is the column at which the status token starts on the
// "Status:" line of a glpsol plain-text report.
const glpkStatusOffset = 12

// Glpk drives GNU GLPK through its "glpsol" command line interface.
type Glpk struct {
	cfg config
}

// NewGlpk creates a GLPK solver. Supported knobs: [WithMaxSeconds],
// [WithRelativeGap], [WithCommand], [WithSolutionFile]. glpsol is single
// threaded; [WithThreads] is rejected.
func NewGlpk(opts ...Option) (*Glpk, error) {
	cfg, err := newConfig(config{command: "glpsol"}, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.threads != 0 {
		return nil, &ConfigError{Option: "threads", Msg: "not supported by glpk"}
	}
	return &Glpk{cfg: cfg}, nil
}

// Solve runs p through glpsol.
func (s *Glpk) Solve(p lp.Problem) (*Solution, error) {
	return Execute(s, p)
}

func (s *Glpk) Command() string { return s.cfg.command }

func (s *Glpk) Arguments(problemPath, solutionPath string) []string {
	args := []string{"--lp", problemPath, "-o", solutionPath}
	if s.cfg.maxSeconds != 0 {
		args = append(args, "--tmlim", strconv.FormatUint(uint64(s.cfg.maxSeconds), 10))
	}
	if s.cfg.relGap != 0 {
		args = append(args, "--mipgap", formatKnob(s.cfg.relGap))
	}
	return args
}

func (s *Glpk) PreferredSolutionFile() string { return s.cfg.solutionFile }

func (s *Glpk) SolutionSuffix() string { return "" }

func (s *Glpk) StatusFromOutput([]byte) (Status, bool) { return NotSolved, false }

// ReadSolution decodes a glpsol plain-text report. The layout is fixed: the
// second and third lines carry the row and column counts, the status token
// sits at a fixed offset of the fifth line, and the column listing starts a
// fixed number of lines past the row block.
func (s *Glpk) ReadSolution(r io.Reader, _ lp.Problem) (*Solution, error) {
	sc := bufio.NewScanner(r)

	skipLines(sc, 1)
	rows, err := readGlpkCount(sc, "row")
	if err != nil {
		return nil, err
	}
	cols, err := readGlpkCount(sc, "column")
	if err != nil {
		return nil, err
	}

	skipLines(sc, 1)
	if !sc.Scan() {
		return nil, &FormatError{Engine: "glpk", Msg: "no solution status found"}
	}
	statusLine := sc.Text()
	if len(statusLine) < glpkStatusOffset {
		return nil, &FormatError{Engine: "glpk", Line: statusLine, Msg: "no solution status found"}
	}
	var status Status
	switch statusLine[glpkStatusOffset:] {
	case "OPTIMAL", "INTEGER OPTIMAL":
		status = Optimal
	case "FEASIBLE", "INTEGER NON-OPTIMAL":
		status = SubOptimal
	case "INFEASIBLE (FINAL)", "INTEGER EMPTY":
		status = Infeasible
	case "UNDEFINED":
		status = NotSolved
	case "UNBOUNDED", "INTEGER UNDEFINED":
		status = Unbounded
	default:
		return nil, &FormatError{Engine: "glpk", Line: statusLine, Msg: "unknown solution status"}
	}

	// objective line, separator, the row block and its headers
	skipLines(sc, rows+7)

	sol := newSolution(status)
	for i := 0; i < cols; i++ {
		if !sc.Scan() {
			return nil, &FormatError{Engine: "glpk", Msg: "not all columns are present"}
		}
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &FormatError{Engine: "glpk", Line: line, Msg: "column specification has too few fields"}
		}
		value, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &ParseError{Field: fields[1], Value: fields[3], Err: err}
		}
		sol.Results[fields[1]] = value
	}
	return sol, nil
}

func skipLines(sc *bufio.Scanner, n int) {
	for i := 0; i < n && sc.Scan(); i++ {
	}
}

// readGlpkCount reads a "Rows: n" / "Columns: n" header line and returns
// its second whitespace token as an integer.
func readGlpkCount(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		return 0, &FormatError{Engine: "glpk", Msg: "missing " + what + " count"}
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 2 {
		return 0, &FormatError{Engine: "glpk", Line: sc.Text(), Msg: "missing " + what + " count"}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, &ParseError{Field: what + " count", Value: fields[1], Err: err}
	}
	return n, nil
}
