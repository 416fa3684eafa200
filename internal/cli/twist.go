package cli

import (
	"fmt"
	"os"

	"github.com/armin-ahmadii/kociemba/internal/facelet"
	"github.com/armin-ahmadii/kociemba/internal/kociemba"
	"github.com/armin-ahmadii/kociemba/internal/notation"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves> [input-file]",
	Short: "Apply a move sequence to a cube and print the resulting net",
	Long: `Apply a Singmaster move sequence ({U,D,L,R,F,B} with '/2
modifiers) to a cube and print the resulting facelet net. Starts from
input-file if given, otherwise from the solved cube. This command does
not search for a solution — it just applies the moves.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" scramble.net`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var c kociemba.Cube
		if len(args) == 2 {
			var err error
			c, err = readNetFile(args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "twist: %v\n", err)
				os.Exit(1)
			}
		} else {
			c = kociemba.Solved()
		}

		moves, err := notation.Parse(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "twist: %v\n", err)
			os.Exit(1)
		}
		kociemba.ApplyMoves(&c, moves)

		fmt.Print(facelet.Print(c))
		if kociemba.IsSolved(c) {
			fmt.Fprintln(os.Stderr, "status: solved")
		}
		return nil
	},
}
