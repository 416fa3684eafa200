package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve <input-file> <output-file>",
	Short: "Solve a cube given as a facelet net",
	Long: `Solve reads the 9-line facelet net in input-file, runs the
two-phase search, and writes the quarter-turn solution as a single
line in output-file. An empty line means the cube was already solved
or no solution was found within the time budget.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, outputPath := args[0], args[1]
		timeout, _ := cmd.Flags().GetDuration("timeout")
		maxTotal, _ := cmd.Flags().GetInt("max-total")

		c, err := readNetFile(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "solve: %v\n", err)
			os.Exit(1)
		}

		opts := []kociemba.Option{kociemba.WithMaxTotal(maxTotal)}
		if timeout > 0 {
			opts = append(opts, kociemba.WithTimeout(timeout))
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			opts = append(opts, kociemba.WithProgress(os.Stderr))
		}
		solver := kociemba.NewSolver(opts...)

		moves, err := solver.Solve(c)
		if err != nil && err != kociemba.ErrTimeout && err != kociemba.ErrNoSolution {
			fmt.Fprintf(os.Stderr, "solve: %v\n", err)
			os.Exit(1)
		}

		if err := writeSolutionFile(outputPath, moves); err != nil {
			fmt.Fprintf(os.Stderr, "solve: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().Duration("timeout", 9*time.Second, "wall-clock deadline for the search")
	solveCmd.Flags().Int("max-total", 40, "largest total quarter-turn bound the outer iterative-deepening loop will try")
	solveCmd.Flags().BoolP("verbose", "v", false, "print the move count and elapsed time of a successful solve to stderr")
}
