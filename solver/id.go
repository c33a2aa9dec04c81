// Package solver invokes external optimization engines on problems described
// by golp/lp and decodes their heterogeneous result formats into a unified
// Solution.
package solver

// ID represent a unique ID for a solving engine
type ID uint16

const (
	UNKNOWN ID = iota
	CBC
	GLPK
	GUROBI
	CPLEX
)

// Implemented return the list of engines implemented in golp
func Implemented() []ID {
	return []ID{CBC, GLPK, GUROBI, CPLEX}
}

// String returns the string representation of an engine ID
func (id ID) String() string {
	switch id {
	case CBC:
		return "cbc"
	case GLPK:
		return "glpk"
	case GUROBI:
		return "gurobi"
	case CPLEX:
		return "cplex"
	default:
		return "unknown"
	}
}

// IDFromString returns the engine ID with the given name, or UNKNOWN.
func IDFromString(s string) ID {
	for _, id := range Implemented() {
		if id.String() == s {
			return id
		}
	}
	return UNKNOWN
}

// New returns a solver for the given engine.
func New(id ID, opts ...Option) (Solver, error) {
	switch id {
	case CBC:
		return NewCbc(opts...)
	case GLPK:
		return NewGlpk(opts...)
	case GUROBI:
		return NewGurobi(opts...)
	case CPLEX:
		return NewCplex(opts...)
	default:
		return nil, &ConfigError{Option: "solver", Msg: "unknown engine"}
	}
}
