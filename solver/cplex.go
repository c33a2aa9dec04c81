package solver

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lp-solvers/golp/lp"
)

// Cplex drives the IBM CPLEX interactive optimizer through its "cplex"
// command line interface.
type Cplex struct {
	cfg config
}

// NewCplex creates a CPLEX solver. Supported knobs: [WithRelativeGap],
// [WithCommand], [WithSolutionFile].
func NewCplex(opts ...Option) (*Cplex, error) {
	cfg, err := newConfig(config{command: "cplex"}, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.maxSeconds != 0 {
		return nil, &ConfigError{Option: "max seconds", Msg: "not supported by cplex"}
	}
	if cfg.threads != 0 {
		return nil, &ConfigError{Option: "threads", Msg: "not supported by cplex"}
	}
	return &Cplex{cfg: cfg}, nil
}

// Solve runs p through cplex.
func (s *Cplex) Solve(p lp.Problem) (*Solution, error) {
	return Execute(s, p)
}

func (s *Cplex) Command() string { return s.cfg.command }

func (s *Cplex) Arguments(problemPath, solutionPath string) []string {
	args := []string{"-c", fmt.Sprintf("READ %q", problemPath)}
	if s.cfg.relGap != 0 {
		args = append(args, "set mip tolerances mipgap "+formatKnob(s.cfg.relGap))
	}
	return append(args, "optimize", fmt.Sprintf("WRITE %q", solutionPath))
}

func (s *Cplex) PreferredSolutionFile() string { return s.cfg.solutionFile }

// SolutionSuffix is ".sol": cplex derives the file format it writes from
// the extension.
func (s *Cplex) SolutionSuffix() string { return ".sol" }

// StatusFromOutput classifies the run from cplex's stdout. An infeasible
// model leaves no solution file behind, so the outcome is only visible here.
func (s *Cplex) StatusFromOutput(stdout []byte) (Status, bool) {
	if bytes.Contains(stdout, []byte("No solution exists")) {
		return Infeasible, true
	}
	return NotSolved, false
}

// ReadSolution decodes a CPLEXSolution XML document, scanning for the
// "variables" container and reading the "name" and "value" attributes of
// each "variable" element in it.
func (s *Cplex) ReadSolution(r io.Reader, _ lp.Problem) (*Solution, error) {
	sol := newSolution(Optimal)
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return sol, nil
		}
		if err != nil {
			return nil, &FormatError{Engine: "cplex", Offset: dec.InputOffset(), Msg: err.Error()}
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "variables" {
			continue
		}
		for {
			tok, err := dec.Token()
			if errors.Is(err, io.EOF) {
				return nil, &FormatError{Engine: "cplex", Offset: dec.InputOffset(), Msg: "unterminated variables section"}
			}
			if err != nil {
				return nil, &FormatError{Engine: "cplex", Offset: dec.InputOffset(), Msg: err.Error()}
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local != "variable" {
					continue
				}
				name, value, err := cplexVariable(t)
				if err != nil {
					return nil, err
				}
				sol.Results[name] = value
			case xml.EndElement:
				if t.Name.Local == "variables" {
					return sol, nil
				}
			}
		}
	}
}

// cplexVariable extracts the name and value attributes of a variable
// element.
func cplexVariable(e xml.StartElement) (string, float64, error) {
	var (
		name                string
		value               float64
		haveName, haveValue bool
	)
	for _, attr := range e.Attr {
		switch attr.Name.Local {
		case "name":
			name, haveName = attr.Value, true
		case "value":
			v, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return "", 0, &ParseError{Field: "variable " + name, Value: attr.Value, Err: err}
			}
			value, haveValue = v, true
		}
	}
	if !haveName || !haveValue {
		return "", 0, &FormatError{Engine: "cplex", Msg: "name and value not found for variable"}
	}
	return name, value, nil
}
