package solver

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lp-solvers/golp/lp"
)

func TestCbcArguments(t *testing.T) {
	cases := []struct {
		name     string
		opts     []Option
		expected []string
	}{
		{
			name:     "default",
			expected: []string{"test.lp", "solve", "solution", "test.sol"},
		},
		{
			name:     "seconds",
			opts:     []Option{WithMaxSeconds(10)},
			expected: []string{"test.lp", "seconds", "10", "solve", "solution", "test.sol"},
		},
		{
			name:     "threads",
			opts:     []Option{WithThreads(3)},
			expected: []string{"test.lp", "threads", "3", "solve", "solution", "test.sol"},
		},
		{
			name:     "gap",
			opts:     []Option{WithRelativeGap(0.05)},
			expected: []string{"test.lp", "ratiogap", "0.05", "solve", "solution", "test.sol"},
		},
		{
			name: "all knobs",
			opts: []Option{WithMaxSeconds(10), WithThreads(3), WithRelativeGap(0.05)},
			expected: []string{
				"test.lp", "ratiogap", "0.05", "seconds", "10", "threads", "3",
				"solve", "solution", "test.sol",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewCbc(tc.opts...)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, s.Arguments("test.lp", "test.sol")); diff != "" {
				t.Errorf("arguments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCbcInvalidGap(t *testing.T) {
	for _, gap := range []float64{0, -0.05, math.Inf(1), math.NaN()} {
		_, err := NewCbc(WithRelativeGap(gap))
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr, "gap %v should be rejected", gap)
	}
}

func TestCbcReadSolutionFile(t *testing.T) {
	f, err := os.Open("testdata/cbc_optimal.sol")
	require.NoError(t, err)
	defer f.Close()

	s, _ := NewCbc()
	sol, err := s.ReadSolution(f, nil)
	require.NoError(t, err)
	require.Equal(t, Optimal, sol.Status)
	require.Equal(t, map[string]float64{"a": 5, "b": 6}, sol.Results)
}

func TestCbcReadSolutionPreseedsZeroes(t *testing.T) {
	m := lp.NewModel("p", lp.Minimize)
	m.AddVariables(
		lp.NewVariable("a"),
		lp.NewVariable("b"),
		lp.NewVariable("c"),
	)

	f, err := os.Open("testdata/cbc_optimal.sol")
	require.NoError(t, err)
	defer f.Close()

	s, _ := NewCbc()
	sol, err := s.ReadSolution(f, m)
	require.NoError(t, err)
	// c is absent from the file and must be pre-seeded to 0
	require.Equal(t, map[string]float64{"a": 5, "b": 6, "c": 0}, sol.Results)
}

func TestCbcReadSolutionMarkerLines(t *testing.T) {
	f, err := os.Open("testdata/cbc_infeasible.sol")
	require.NoError(t, err)
	defer f.Close()

	s, _ := NewCbc()
	sol, err := s.ReadSolution(f, nil)
	require.NoError(t, err)
	require.Equal(t, Infeasible, sol.Status)
	require.Equal(t, map[string]float64{"a": 2, "b": 0}, sol.Results)
}

func TestCbcStatusTokens(t *testing.T) {
	cases := []struct {
		line     string
		expected Status
	}{
		{"Optimal - objective value 11.00000000", Optimal},
		{"Optimal (within gap tolerance) - objective value 11.00000000", SubOptimal},
		{"Infeasible - objective value 0", Infeasible},
		{"Integer infeasible - objective value 0", Infeasible},
		{"Unbounded", Unbounded},
		{"Stopped on time - objective value 3", SubOptimal},
		{"Gibberish nobody documents", NotSolved},
	}
	s, _ := NewCbc()
	for _, tc := range cases {
		sol, err := s.ReadSolution(strings.NewReader(tc.line+"\n"), nil)
		require.NoError(t, err, "line %q", tc.line)
		require.Equal(t, tc.expected, sol.Status, "line %q", tc.line)
	}
}

func TestCbcMalformedLines(t *testing.T) {
	s, _ := NewCbc()

	_, err := s.ReadSolution(strings.NewReader("Optimal\n0 a 5\n"), nil)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)

	_, err = s.ReadSolution(strings.NewReader("Optimal\n0 a five 0\n"), nil)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "a", parseErr.Field)

	_, err = s.ReadSolution(strings.NewReader(""), nil)
	require.Error(t, err)
	require.False(t, errors.As(err, &parseErr))
}
