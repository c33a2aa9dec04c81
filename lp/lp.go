// Package lp describes linear and integer optimization problems abstractly
// and writes them in the textual LP file format understood by the external
// engines driven by golp/solver.
package lp

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strconv"
	"strings"
)

// Sense is the direction of the objective.
type Sense uint8

const (
	Minimize Sense = iota
	Maximize
)

func (s Sense) String() string {
	switch s {
	case Minimize:
		return "Minimize"
	case Maximize:
		return "Maximize"
	default:
		return "unknown"
	}
}

// Op is a constraint comparison operator.
type Op uint8

const (
	LessEq Op = iota
	Eq
	GreaterEq
)

func (op Op) String() string {
	switch op {
	case LessEq:
		return "<="
	case Eq:
		return "="
	case GreaterEq:
		return ">="
	default:
		return "unknown"
	}
}

// Expression is anything that can render itself as a valid sub-expression of
// an LP document. It is the caller's responsibility to ensure the rendered
// text is acceptable to the target engine.
type Expression interface {
	WriteLP(w io.Writer) error
}

// Var describes a decision variable. Names must be unique within a problem
// and follow the engine's identifier syntax; see [UniqueNames].
type Var interface {
	Name() string
	// IsInteger reports whether the variable may only take integer values.
	IsInteger() bool
	// LowerBound returns math.Inf(-1) if the variable has no lower bound.
	LowerBound() float64
	// UpperBound returns math.Inf(1) if the variable has no upper bound.
	UpperBound() float64
}

// Constraint relates an expression to a constant.
type Constraint struct {
	LHS Expression
	Op  Op
	RHS float64
}

// Problem is a complete optimization problem. Variable and constraint
// iteration order is significant: it fixes the generated constraint labels
// (c0, c1, ...) and the order of the bound and integrality declarations.
type Problem interface {
	Name() string
	Sense() Sense
	Objective() Expression
	Variables() iter.Seq[Var]
	Constraints() iter.Seq[Constraint]
}

// Write renders p as an LP document on w.
func Write(w io.Writer, p Problem) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "\\ %s\n\n", p.Name()); err != nil {
		return err
	}
	if err := writeObjective(bw, p); err != nil {
		return err
	}
	if err := writeConstraints(bw, p); err != nil {
		return err
	}
	if err := writeBounds(bw, p); err != nil {
		return err
	}
	if _, err := bw.WriteString("\nEnd\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// Render returns p as an LP document. Rendering is deterministic: the same
// problem always yields byte-identical text.
func Render(p Problem) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, p); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteTempFile renders p into a uniquely named temporary file whose stem is
// derived from the problem name and whose extension is ".lp". It returns the
// file path; the caller owns the file.
func WriteTempFile(p Problem) (string, error) {
	f, err := os.CreateTemp("", fileStem(p.Name())+"-*.lp")
	if err != nil {
		return "", fmt.Errorf("creating problem file: %w", err)
	}
	if err := Write(f, p); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing problem file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func writeObjective(w *bufio.Writer, p Problem) error {
	if _, err := fmt.Fprintf(w, "%s\n  obj: ", p.Sense()); err != nil {
		return err
	}
	return p.Objective().WriteLP(w)
}

func writeConstraints(w *bufio.Writer, p Problem) error {
	wroteHeader := false
	idx := 0
	for c := range p.Constraints() {
		if !wroteHeader {
			if _, err := w.WriteString("\n\nSubject To\n"); err != nil {
				return err
			}
			wroteHeader = true
		}
		if _, err := fmt.Fprintf(w, "  c%d: ", idx); err != nil {
			return err
		}
		if err := c.LHS.WriteLP(w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, " %s %s\n", c.Op, formatFloat(c.RHS)); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func writeBounds(w *bufio.Writer, p Problem) error {
	var integers []string
	if _, err := w.WriteString("\nBounds\n"); err != nil {
		return err
	}
	for v := range p.Variables() {
		low, up := v.LowerBound(), v.UpperBound()
		if _, err := w.WriteString("  "); err != nil {
			return err
		}
		if low > math.Inf(-1) {
			if _, err := fmt.Fprintf(w, "%s <= ", formatFloat(low)); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(v.Name()); err != nil {
			return err
		}
		if up < math.Inf(1) {
			if _, err := fmt.Fprintf(w, " <= %s", formatFloat(up)); err != nil {
				return err
			}
		}
		if math.IsInf(low, 0) && math.IsInf(up, 0) {
			if _, err := w.WriteString(" free"); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		if v.IsInteger() {
			integers = append(integers, v.Name())
		}
	}
	if len(integers) > 0 {
		if _, err := w.WriteString("\nGenerals\n"); err != nil {
			return err
		}
		for _, name := range integers {
			if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatFloat renders f the way the engines expect numbers in LP documents:
// shortest decimal representation, no exponent, no forced precision.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fileStem(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
