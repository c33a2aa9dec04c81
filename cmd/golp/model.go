package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lp-solvers/golp/lp"
)

// modelFile is the JSON description of a problem. An absent bound means the
// variable is unbounded on that side.
type modelFile struct {
	Name        string           `json:"name"`
	Sense       string           `json:"sense"`
	Objective   string           `json:"objective"`
	Variables   []variableFile   `json:"variables"`
	Constraints []constraintFile `json:"constraints"`
}

type variableFile struct {
	Name    string   `json:"name"`
	Integer bool     `json:"integer"`
	Lower   *float64 `json:"lower"`
	Upper   *float64 `json:"upper"`
}

type constraintFile struct {
	LHS string  `json:"lhs"`
	Op  string  `json:"op"`
	RHS float64 `json:"rhs"`
}

func loadModel(path string) (*lp.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return mf.build()
}

func (mf *modelFile) build() (*lp.Model, error) {
	var sense lp.Sense
	switch mf.Sense {
	case "min", "minimize", "":
		sense = lp.Minimize
	case "max", "maximize":
		sense = lp.Maximize
	default:
		return nil, fmt.Errorf("unknown sense %q (want min or max)", mf.Sense)
	}

	m := lp.NewModel(mf.Name, sense)
	if mf.Objective != "" {
		m.SetObjective(lp.StrExpr(mf.Objective))
	}
	for _, v := range mf.Variables {
		nv := lp.NewVariable(v.Name)
		if v.Lower != nil {
			nv = nv.WithLowerBound(*v.Lower)
		}
		if v.Upper != nil {
			nv = nv.WithUpperBound(*v.Upper)
		}
		if v.Integer {
			nv = nv.Integer()
		}
		m.AddVariable(nv)
	}
	for _, c := range mf.Constraints {
		var op lp.Op
		switch c.Op {
		case "<=":
			op = lp.LessEq
		case "=":
			op = lp.Eq
		case ">=":
			op = lp.GreaterEq
		default:
			return nil, fmt.Errorf("unknown constraint operator %q", c.Op)
		}
		m.AddConstraint(lp.StrExpr(c.LHS), op, c.RHS)
	}
	return m, nil
}
