package solver

// Solution is the unified result of a solver run. Results maps variable
// names to their values. Engines that omit zero-valued variables from their
// output are pre-seeded from the problem when it is available, so Results is
// not guaranteed to name every problem variable otherwise.
//
// An Infeasible or Unbounded solution carries an empty Results map; these
// are valid outcomes, not errors.
type Solution struct {
	Status  Status
	Results map[string]float64
}

func newSolution(status Status) *Solution {
	return &Solution{Status: status, Results: make(map[string]float64)}
}
