// golp renders and solves linear/integer optimization problems described in
// a JSON model file, using whichever external engine is installed.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lp-solvers/golp/logger"
	"github.com/lp-solvers/golp/lp"
	"github.com/lp-solvers/golp/solver"
)

var (
	flagVerbose   bool
	flagSolver    string
	flagCommand   string
	flagTimeLimit uint32
	flagThreads   uint32
	flagGap       float64
)

var rootCmd = &cobra.Command{
	Use:           "golp",
	Short:         "golp solves LP/MILP models with an external engine",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		// .env may carry GOLP_<ENGINE>_CMD executable overrides
		_ = godotenv.Load()
		if !flagVerbose {
			logger.Set(logger.Logger().Level(zerolog.InfoLevel))
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <model.json>",
	Short: "Print the LP document for a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0])
		if err != nil {
			return err
		}
		return lp.Write(cmd.OutOrStdout(), m)
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <model.json>",
	Short: "Solve a model and print the variable values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(args[0])
		if err != nil {
			return err
		}
		s, err := buildSolver()
		if err != nil {
			return err
		}
		sol, err := s.Solve(m)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "status: %s\n", sol.Status)
		names := make([]string, 0, len(sol.Results))
		for name := range sol.Results {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "%s = %g\n", name, sol.Results[name])
		}
		return nil
	},
}

func buildSolver() (solver.Solver, error) {
	if flagSolver == "auto" {
		return solver.All(), nil
	}
	id := solver.IDFromString(flagSolver)
	if id == solver.UNKNOWN {
		return nil, fmt.Errorf("unknown solver %q (want auto, cbc, glpk, gurobi or cplex)", flagSolver)
	}
	var opts []solver.Option
	if cmd := engineCommand(id); cmd != "" {
		opts = append(opts, solver.WithCommand(cmd))
	}
	if flagTimeLimit != 0 {
		opts = append(opts, solver.WithMaxSeconds(flagTimeLimit))
	}
	if flagThreads != 0 {
		opts = append(opts, solver.WithThreads(flagThreads))
	}
	if flagGap != 0 {
		opts = append(opts, solver.WithRelativeGap(flagGap))
	}
	return solver.New(id, opts...)
}

// engineCommand resolves the engine executable: the --command flag wins,
// then a GOLP_<ENGINE>_CMD environment variable.
func engineCommand(id solver.ID) string {
	if flagCommand != "" {
		return flagCommand
	}
	return os.Getenv("GOLP_" + strings.ToUpper(id.String()) + "_CMD")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	solveCmd.Flags().StringVar(&flagSolver, "solver", "auto", "engine to use: auto, cbc, glpk, gurobi or cplex")
	solveCmd.Flags().StringVar(&flagCommand, "command", "", "override the engine executable")
	solveCmd.Flags().Uint32Var(&flagTimeLimit, "time-limit", 0, "maximum runtime in seconds, passed to the engine")
	solveCmd.Flags().Uint32Var(&flagThreads, "threads", 0, "number of threads, passed to the engine")
	solveCmd.Flags().Float64Var(&flagGap, "gap", 0, "relative optimality gap, passed to the engine")
	rootCmd.AddCommand(renderCmd, solveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
