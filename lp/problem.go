package lp

import (
	"io"
	"iter"
	"math"
	"slices"
)

// StrExpr is a string that is already a valid expression in the LP format
// for the engine in use.
type StrExpr string

func (e StrExpr) WriteLP(w io.Writer) error {
	_, err := io.WriteString(w, string(e))
	return err
}

// Term is a single coefficient-variable product.
type Term struct {
	Coeff float64
	Var   string
}

// LinearExpr is a sum of terms. It is an alternative to [StrExpr] for
// callers that build expressions programmatically; the serializer does not
// distinguish between the two.
type LinearExpr []Term

func (e LinearExpr) WriteLP(w io.Writer) error {
	if len(e) == 0 {
		_, err := io.WriteString(w, "0")
		return err
	}
	for i, t := range e {
		coeff := t.Coeff
		switch {
		case i == 0 && coeff < 0:
			if _, err := io.WriteString(w, "-"); err != nil {
				return err
			}
			coeff = -coeff
		case i > 0 && coeff < 0:
			if _, err := io.WriteString(w, " - "); err != nil {
				return err
			}
			coeff = -coeff
		case i > 0:
			if _, err := io.WriteString(w, " + "); err != nil {
				return err
			}
		}
		if coeff != 1 {
			if _, err := io.WriteString(w, formatFloat(coeff)+" "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, t.Var); err != nil {
			return err
		}
	}
	return nil
}

// Variable is a concrete [Var] with value semantics. The zero value is not
// meaningful; use [NewVariable].
type Variable struct {
	name    string
	integer bool
	lower   float64
	upper   float64
}

// NewVariable returns a free continuous variable.
func NewVariable(name string) Variable {
	return Variable{name: name, lower: math.Inf(-1), upper: math.Inf(1)}
}

// WithBounds sets both bounds.
func (v Variable) WithBounds(lower, upper float64) Variable {
	v.lower, v.upper = lower, upper
	return v
}

// WithLowerBound sets the lower bound.
func (v Variable) WithLowerBound(lower float64) Variable {
	v.lower = lower
	return v
}

// WithUpperBound sets the upper bound.
func (v Variable) WithUpperBound(upper float64) Variable {
	v.upper = upper
	return v
}

// Integer restricts the variable to integer values.
func (v Variable) Integer() Variable {
	v.integer = true
	return v
}

func (v Variable) Name() string        { return v.name }
func (v Variable) IsInteger() bool     { return v.integer }
func (v Variable) LowerBound() float64 { return v.lower }
func (v Variable) UpperBound() float64 { return v.upper }

// Model is a concrete [Problem] assembled by the caller:
//
//	m := lp.NewModel("diet", lp.Minimize)
//	m.SetObjective(lp.StrExpr("2 x + y"))
//	m.AddVariable(lp.NewVariable("x").WithBounds(0, 10))
//	m.AddConstraint(lp.StrExpr("x + y"), lp.GreaterEq, 5)
//
// Variables and constraints are iterated in insertion order.
type Model struct {
	name        string
	sense       Sense
	objective   Expression
	vars        []Var
	constraints []Constraint
}

// NewModel creates an empty model with a zero objective.
func NewModel(name string, sense Sense) *Model {
	return &Model{name: name, sense: sense, objective: StrExpr("0")}
}

// SetObjective replaces the objective function.
func (m *Model) SetObjective(e Expression) *Model {
	m.objective = e
	return m
}

// AddVariable appends a variable.
func (m *Model) AddVariable(v Var) *Model {
	m.vars = append(m.vars, v)
	return m
}

// AddVariables appends variables in order.
func (m *Model) AddVariables(vars ...Var) *Model {
	for _, v := range vars {
		m.AddVariable(v)
	}
	return m
}

// AddConstraint appends the constraint "lhs op rhs".
func (m *Model) AddConstraint(lhs Expression, op Op, rhs float64) *Model {
	m.constraints = append(m.constraints, Constraint{LHS: lhs, Op: op, RHS: rhs})
	return m
}

func (m *Model) Name() string          { return m.name }
func (m *Model) Sense() Sense          { return m.sense }
func (m *Model) Objective() Expression { return m.objective }

func (m *Model) Variables() iter.Seq[Var] {
	return slices.Values(m.vars)
}

func (m *Model) Constraints() iter.Seq[Constraint] {
	return slices.Values(m.constraints)
}
