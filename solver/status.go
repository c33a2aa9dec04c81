package solver

// Status is the canonical outcome of a solver run. Every engine-specific
// status vocabulary maps onto exactly one of these five states.
type Status uint8

const (
	// NotSolved means the engine was unable to solve the problem.
	NotSolved Status = iota
	// Optimal means the best possible solution was found.
	Optimal
	// SubOptimal means a solution was found, but it may not be the best one.
	SubOptimal
	// Infeasible means no solution exists for the problem.
	Infeasible
	// Unbounded means the problem has no finite optimum.
	Unbounded
)

func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NotSolved"
	case Optimal:
		return "Optimal"
	case SubOptimal:
		return "SubOptimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	default:
		return "unknown"
	}
}
