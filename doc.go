// Package golp models linear and integer optimization problems, writes them
// in the textual LP file format and solves them with an external engine.
//
// golp drives the following engines through their command line interfaces:
//   - Coin-OR CBC
//   - GNU GLPK
//   - Gurobi
//   - IBM CPLEX
//
// The engines themselves are not part of this module; they must be installed
// separately. solver.All returns a solver that picks the first engine
// available on the host.
package golp

import (
	"github.com/blang/semver/v4"

	"github.com/lp-solvers/golp/solver"
)

var Version = semver.MustParse("0.2.0")

// Solvers return the engines golp can drive
func Solvers() []solver.ID {
	return []solver.ID{
		solver.CBC,
		solver.GLPK,
		solver.GUROBI,
		solver.CPLEX,
	}
}
